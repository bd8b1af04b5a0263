package domain

// Payload is the typed data carried by a SearchEntry: *TransactionBlock,
// *AddressView or *ObjectResponse.
type Payload interface {
	EntityKind() EntityKind
}

// SearchEntry is one typed result of a search.
type SearchEntry struct {
	Kind      EntityKind `json:"type"`
	Payload   Payload    `json:"data"`
	Relevance int        `json:"relevance"`
}

// SearchResultEnvelope is the merged result of one search.
type SearchResultEnvelope struct {
	Query      string        `json:"query"`
	Entries    []SearchEntry `json:"entries"`
	TotalCount int           `json:"totalCount"`
}

// Suggestion is an autocomplete hint derived from the query's classification.
type Suggestion struct {
	Text  string     `json:"text"`
	Kind  EntityKind `json:"kind"`
	Label string     `json:"label"`
}
