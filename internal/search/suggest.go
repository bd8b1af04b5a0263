package search

import (
	"strings"

	"github.com/vietddude/suiscope/internal/core/domain"
	"github.com/vietddude/suiscope/internal/search/classifier"
)

const (
	minSuggestLength      = 3
	minKnownSuggestLength = 8
	unknownSuggestLabel   = "Address/Object"
)

// Suggest returns autocomplete hints for a partially typed query. It does no I/O.
func Suggest(query string) []domain.Suggestion {
	query = strings.TrimSpace(query)
	if len(query) < minSuggestLength {
		return []domain.Suggestion{}
	}

	result := classifier.Classify(query)
	if result.IsKnown() {
		if len(query) < minKnownSuggestLength {
			return []domain.Suggestion{}
		}
		return []domain.Suggestion{{
			Text:  query,
			Kind:  result.Kind,
			Label: result.Kind.Label(),
		}}
	}

	text := query
	if !strings.HasPrefix(text, "0x") {
		text = "0x" + text
	}
	return []domain.Suggestion{{
		Text:  text,
		Kind:  domain.EntityKindUnknown,
		Label: unknownSuggestLabel,
	}}
}

// Suggest returns autocomplete hints for query.
func (o *Orchestrator) Suggest(query string) []domain.Suggestion {
	return Suggest(query)
}
