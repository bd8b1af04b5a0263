package domain

// Page is a cursor-paginated list as returned by suix_* listing methods.
type Page[T any] struct {
	Data        []T     `json:"data"`
	HasNextPage bool    `json:"hasNextPage"`
	NextCursor  *string `json:"nextCursor"`
}

// EmptyPage is the sentinel returned when a listing lookup fails:
// {data: [], hasNextPage: false, nextCursor: null}.
func EmptyPage[T any]() Page[T] {
	return Page[T]{Data: []T{}}
}
