// Package subject implements the subject-tag denoising, classification,
// and aggregation pipeline.
//
// OpenLibrary subject tags are dominated by near-duplicate genre
// restatements and award/bestseller metadata; the filter here strips those
// so that aggregation reflects actual topical signal.
package subject

import (
	"strings"

	"github.com/spacetrawl/spacetrawl/internal/catalog"
)

// genericPhrases are genre terms that carry no information for a corpus
// that is entirely space opera. Order matters: longer phrases must be
// stripped before "fiction" alone.
var genericPhrases = []string{
	"science fiction",
	"science-fiction",
	"fiction",
	"space opera",
	"general",
}

// punctuation is the ASCII punctuation set stripped after phrase removal.
const punctuation = "!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~"

// genericCatalogTag is a boilerplate tag that slips past the phrase rules.
const genericCatalogTag = "fiction in english, 1900- texts"

// ShouldRemove reports whether a subject tag is noise. Matching is
// case-insensitive throughout.
func ShouldRemove(subject string) bool {
	s := strings.ToLower(subject)

	// Fictional characters and places.
	if strings.Contains(s, "(fictitious character)") {
		return true
	}
	if strings.Contains(s, "(imaginary place)") {
		return true
	}

	// Bestseller-list and award metadata.
	if strings.Contains(s, "nyt:") || strings.Contains(s, "new york times") {
		return true
	}
	if strings.Contains(s, "hugo award") || strings.Contains(s, "hugo_award") || strings.Contains(s, "award:") {
		return true
	}

	if s == genericCatalogTag {
		return true
	}

	// Strip every generic phrase first, then all punctuation. If nothing is
	// left the tag only restated the genre.
	for _, phrase := range genericPhrases {
		s = strings.ReplaceAll(s, phrase, "")
	}
	s = strings.Map(func(r rune) rune {
		if strings.ContainsRune(punctuation, r) {
			return -1
		}
		return r
	}, s)

	return strings.TrimSpace(s) == ""
}

// FilterSubjects returns the book's subjects with noise removed, in their
// original order.
func FilterSubjects(book catalog.Book) []string {
	filtered := make([]string, 0, len(book.Subjects))
	for _, s := range book.Subjects {
		if !ShouldRemove(s) {
			filtered = append(filtered, s)
		}
	}
	return filtered
}
