package subject

import (
	"golang.org/x/text/cases"

	"github.com/spacetrawl/spacetrawl/internal/catalog"
)

// MinCount is the minimum number of occurrences a subject needs to be
// reported at all.
const MinCount = 3

// Stat is the aggregated view of one subject tag across a group of books.
type Stat struct {
	Subject string  // first-seen casing, for display
	Count   int     // occurrences across books with a known year
	MinYear int     // earliest publication year seen
	MaxYear int     // latest publication year seen
	AvgYear float64 // midpoint of (MinYear, MaxYear), the chart sort key
}

// Result maps a case-folded subject key to its statistics. Iteration order
// is unspecified; the chart package owns ordering.
type Result map[string]Stat

// Key returns the case-folded form under which a subject is aggregated.
func Key(subject string) string {
	return cases.Fold().String(subject)
}

// Aggregate builds per-subject statistics for a group of books. Books
// without a publication year are skipped entirely. Subjects are matched
// case-insensitively; the casing first seen is kept for display. AvgYear is
// deliberately the midpoint of the observed range, not a mean of all
// occurrences: downstream ordering depends on the span, not on how often a
// subject recurs within it.
func Aggregate(books []catalog.Book) Result {
	type running struct {
		display string
		count   int
		minYear int
		maxYear int
	}

	fold := cases.Fold()
	acc := make(map[string]*running)

	for _, b := range books {
		if !b.HasYear() {
			continue
		}
		year := b.FirstPublishYear
		for _, s := range FilterSubjects(b) {
			key := fold.String(s)
			r, ok := acc[key]
			if !ok {
				acc[key] = &running{display: s, count: 1, minYear: year, maxYear: year}
				continue
			}
			r.count++
			if year < r.minYear {
				r.minYear = year
			}
			if year > r.maxYear {
				r.maxYear = year
			}
		}
	}

	result := make(Result)
	for key, r := range acc {
		if r.count < MinCount {
			continue
		}
		result[key] = Stat{
			Subject: r.display,
			Count:   r.count,
			MinYear: r.minYear,
			MaxYear: r.maxYear,
			AvgYear: float64(r.minYear+r.maxYear) / 2.0,
		}
	}
	return result
}
