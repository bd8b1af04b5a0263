package classifier

import (
	"math/rand/v2"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vietddude/suiscope/internal/core/domain"
)

const hexDigits = "0123456789abcdefABCDEF"

func randomHex(r *rand.Rand, n int) string {
	var sb strings.Builder
	for i := 0; i < n; i++ {
		sb.WriteByte(hexDigits[r.IntN(len(hexDigits))])
	}
	return sb.String()
}

func TestClassify_Table(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		kind       domain.EntityKind
		confidence float64
		rule       string
	}{
		{"empty", "", domain.EntityKindUnknown, 0, ""},
		{"whitespace", "   \t\n", domain.EntityKindUnknown, 0, ""},
		{"base58 digest", "HP2mvVRHsQXMaDqLDkekhgcCTFTYLAXkjvysigJJqk9X", domain.EntityKindTransaction, 0.95, "base58-digest"},
		{"base58 digest padded", "  HP2mvVRHsQXMaDqLDkekhgcCTFTYLAXkjvysigJJqk9X  ", domain.EntityKindTransaction, 0.95, "base58-digest"},
		{"base64 digest", "AAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAA+/0=", domain.EntityKindTransaction, 0.90, "base64-digest"},
		{"prefixed hex digest", "0x" + strings.Repeat("a", 64), domain.EntityKindTransaction, 0.85, "prefixed-hex-digest"},
		{"bare hex digest", strings.Repeat("0f", 32), domain.EntityKindTransaction, 0.80, "hex-digest"},
		{"address", "0x" + strings.Repeat("1", 40), domain.EntityKindAddress, 0.85, "address"},
		{"object id 41 digits", "0x" + strings.Repeat("b", 41), domain.EntityKindObject, 0.70, "object-id"},
		{"object id 63 digits", "0x" + strings.Repeat("c", 63), domain.EntityKindObject, 0.70, "object-id"},
		{"short object id", "0x2", domain.EntityKindObject, 0.60, "short-object-id"},
		{"bare prefix", "0x", domain.EntityKindUnknown, 0.30, "partial-hex"},
		{"65 hex digits", "0x" + strings.Repeat("d", 65), domain.EntityKindUnknown, 0.30, "partial-hex"},
		{"address with trailing junk", "0x" + strings.Repeat("1", 40) + "zz", domain.EntityKindUnknown, 0.30, "partial-hex"},
		{"invalid hex", "0x0404875630cc1b09ee2d5dbf8c239f1d05f38d29f1a1499cc1b318e8cbdfb35cg", domain.EntityKindUnknown, 0.30, "partial-hex"},
		{"random word", "randomstring", domain.EntityKindUnknown, 0, ""},
		{"base58 too short", "HP2mvVRHsQXMaDqLDkek", domain.EntityKindUnknown, 0, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, rule := ClassifyWithRule(tt.input)
			assert.Equal(t, tt.kind, res.Kind)
			assert.InDelta(t, tt.confidence, res.Confidence, 1e-9)
			assert.Equal(t, tt.rule, rule)
		})
	}
}

func TestClassify_HexDigestsAreTransactions(t *testing.T) {
	r := rand.New(rand.NewPCG(1, 2))
	for i := 0; i < 500; i++ {
		digest := randomHex(r, 64)

		bare := Classify(digest)
		require.Equal(t, domain.EntityKindTransaction, bare.Kind, digest)
		require.GreaterOrEqual(t, bare.Confidence, 0.8)

		prefixed := Classify("0x" + digest)
		require.Equal(t, domain.EntityKindTransaction, prefixed.Kind, digest)
		require.GreaterOrEqual(t, prefixed.Confidence, 0.8)
	}
}

func TestClassify_FortyHexDigitsAreAddresses(t *testing.T) {
	r := rand.New(rand.NewPCG(3, 4))
	for i := 0; i < 500; i++ {
		addr := "0x" + randomHex(r, 40)
		res := Classify(addr)
		require.Equal(t, domain.EntityKindAddress, res.Kind, addr)
		require.GreaterOrEqual(t, res.Confidence, 0.8)
		require.LessOrEqual(t, res.Confidence, 0.9)
	}
}

func TestClassify_Deterministic(t *testing.T) {
	inputs := []string{"", "0x", "0x1", "HP2mvVRHsQXMaDqLDkekhgcCTFTYLAXkjvysigJJqk9X", "hello", "0x" + strings.Repeat("e", 40)}
	for _, in := range inputs {
		assert.Equal(t, Classify(in), Classify(in), in)
	}
}

func TestClassify_ConfidenceRanking(t *testing.T) {
	// base58 > base64 > hex-with-prefix among digest formats
	b58 := Classify("HP2mvVRHsQXMaDqLDkekhgcCTFTYLAXkjvysigJJqk9X").Confidence
	b64 := Classify("AAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAA+/0=").Confidence
	hex := Classify("0x" + strings.Repeat("a", 64)).Confidence

	assert.Greater(t, b58, b64)
	assert.Greater(t, b64, hex)
}

func TestRules_ReturnsCopy(t *testing.T) {
	rs := Rules()
	require.NotEmpty(t, rs)
	rs[0].Confidence = 0

	assert.InDelta(t, 0.95, Rules()[0].Confidence, 1e-9)
}
