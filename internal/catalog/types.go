// Package catalog provides a client for the OpenLibrary search API.
package catalog

// Book is one bibliographic record as returned by the search endpoint.
// Fields absent upstream stay at their zero value.
type Book struct {
	Title            string   `json:"title" validate:"omitempty"`
	Authors          []string `json:"author_name" validate:"omitempty,dive,required"`
	Subjects         []string `json:"subject" validate:"omitempty,dive,required"`
	FirstPublishYear int      `json:"first_publish_year" validate:"gte=0,lte=2100"` // 0 = unknown
	MedianPages      int      `json:"number_of_pages_median" validate:"gte=0"`      // 0 = unknown
}

// HasYear reports whether the record carries a usable publication year.
func (b Book) HasYear() bool {
	return b.FirstPublishYear > 0
}

// SearchParams defines parameters for a catalog search.
type SearchParams struct {
	Subject  string // Subject facet, e.g. "space opera"
	Language string // ISO 639-2 language code, e.g. "eng"
	Limit    int    // Max results (default 50, max 100)
}
