package domain

// Page is a fixed-size slice of a listing.
type Page[T any] struct {
	Items []T `json:"items"`
	Page  int `json:"page"`
	Size  int `json:"size"`
}

const PageSize = 10

// Offset returns the row offset of a 1-based page number; pages below 1 are treated as 1.
func Offset(page int) int {
	if page < 1 {
		page = 1
	}
	return (page - 1) * PageSize
}
