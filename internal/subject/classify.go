package subject

import (
	"strings"

	"github.com/spacetrawl/spacetrawl/internal/catalog"
)

// Group is the classification bucket a book falls into.
type Group string

const (
	GroupStarWars Group = "star-wars"
	GroupOther    Group = "other"
)

// franchiseKeyword identifies Star Wars books by substring match.
const franchiseKeyword = "star wars"

// Classify assigns a book to a group. A book is Star Wars if the keyword
// appears in its title or in any raw subject tag; classification looks at
// subjects before filtering so that franchise tags the filter would drop
// still count.
func Classify(book catalog.Book) Group {
	if strings.Contains(strings.ToLower(book.Title), franchiseKeyword) {
		return GroupStarWars
	}
	for _, s := range book.Subjects {
		if strings.Contains(strings.ToLower(s), franchiseKeyword) {
			return GroupStarWars
		}
	}
	return GroupOther
}

// Split partitions books into the Star Wars group and the remainder,
// preserving input order within each group.
func Split(books []catalog.Book) (starWars, other []catalog.Book) {
	for _, b := range books {
		if Classify(b) == GroupStarWars {
			starWars = append(starWars, b)
		} else {
			other = append(other, b)
		}
	}
	return starWars, other
}
