// Package classifier maps free-form user input to the kind of on-chain entity
// it most likely names.
//
// Classification is a pure function over an ordered rule table: rules are
// evaluated top to bottom and the first match wins. Looser hex patterns sit
// below stricter ones so that, for example, a 64-digit digest is never taken
// for an object id.
package classifier

import (
	"regexp"
	"strings"

	"github.com/vietddude/suiscope/internal/core/domain"
)

var (
	base58Digest      = regexp.MustCompile(`^[123456789ABCDEFGHJKLMNPQRSTUVWXYZabcdefghijkmnopqrstuvwxyz]{40,50}$`)
	base64Digest      = regexp.MustCompile(`^[A-Za-z0-9+/]{43}=$`)
	prefixedHexDigest = regexp.MustCompile(`^0x[a-fA-F0-9]{64}$`)
	bareHexDigest     = regexp.MustCompile(`^[a-fA-F0-9]{64}$`)
	shortAddress      = regexp.MustCompile(`^0x[a-fA-F0-9]{40}$`)
	longObjectID      = regexp.MustCompile(`^0x[a-fA-F0-9]{40,64}$`)
	shortObjectID     = regexp.MustCompile(`^0x[a-fA-F0-9]{1,39}$`)
)

// Rule is one entry of the classification table.
type Rule struct {
	Name       string
	Kind       domain.EntityKind
	Confidence float64
	Match      func(input string) bool
}

// rules is ordered by precedence. Do not reorder.
var rules = []Rule{
	{Name: "base58-digest", Kind: domain.EntityKindTransaction, Confidence: 0.95, Match: base58Digest.MatchString},
	{Name: "base64-digest", Kind: domain.EntityKindTransaction, Confidence: 0.90, Match: base64Digest.MatchString},
	{Name: "prefixed-hex-digest", Kind: domain.EntityKindTransaction, Confidence: 0.85, Match: prefixedHexDigest.MatchString},
	{Name: "hex-digest", Kind: domain.EntityKindTransaction, Confidence: 0.80, Match: bareHexDigest.MatchString},
	{Name: "address", Kind: domain.EntityKindAddress, Confidence: 0.85, Match: shortAddress.MatchString},
	{Name: "object-id", Kind: domain.EntityKindObject, Confidence: 0.70, Match: longObjectID.MatchString},
	{Name: "short-object-id", Kind: domain.EntityKindObject, Confidence: 0.60, Match: shortObjectID.MatchString},
	// Anything else behind a 0x prefix may still be mid-typing.
	{Name: "partial-hex", Kind: domain.EntityKindUnknown, Confidence: 0.30, Match: func(s string) bool {
		return strings.HasPrefix(s, "0x")
	}},
}

// Rules returns a copy of the classification table in precedence order.
func Rules() []Rule {
	out := make([]Rule, len(rules))
	copy(out, rules)
	return out
}

// Classify trims input and returns the result of the first matching rule.
// It never fails: unmatched and blank input yield Unknown with confidence 0.
func Classify(input string) domain.ClassificationResult {
	res, _ := ClassifyWithRule(input)
	return res
}

// ClassifyWithRule is Classify that also reports the name of the matching
// rule, or "" when none matched.
func ClassifyWithRule(input string) (domain.ClassificationResult, string) {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return unknown(), ""
	}

	for _, r := range rules {
		if r.Match(trimmed) {
			return domain.ClassificationResult{Kind: r.Kind, Confidence: r.Confidence}, r.Name
		}
	}
	return unknown(), ""
}

func unknown() domain.ClassificationResult {
	return domain.ClassificationResult{Kind: domain.EntityKindUnknown, Confidence: 0}
}
