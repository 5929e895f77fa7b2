package subject_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spacetrawl/spacetrawl/internal/catalog"
	"github.com/spacetrawl/spacetrawl/internal/subject"
)

func tagged(year int, subjects ...string) catalog.Book {
	return catalog.Book{Title: "t", Subjects: subjects, FirstPublishYear: year}
}

func TestAggregateEndToEnd(t *testing.T) {
	books := []catalog.Book{
		tagged(1977, "Galactic empire"),
		tagged(1980, "Galactic empire"),
		tagged(1983, "Galactic empire"),
	}

	result := subject.Aggregate(books)
	require.Len(t, result, 1)

	stat, ok := result[subject.Key("Galactic empire")]
	require.True(t, ok)
	assert.Equal(t, "Galactic empire", stat.Subject)
	assert.Equal(t, 3, stat.Count)
	assert.Equal(t, 1977, stat.MinYear)
	assert.Equal(t, 1983, stat.MaxYear)
	assert.InDelta(t, 1980.0, stat.AvgYear, 0.0001)
}

func TestAggregateThresholdBoundary(t *testing.T) {
	twice := []catalog.Book{
		tagged(1980, "Space pirates"),
		tagged(1990, "Space pirates"),
	}
	assert.Empty(t, subject.Aggregate(twice))

	thrice := append(twice, tagged(2000, "Space pirates"))
	result := subject.Aggregate(thrice)
	require.Len(t, result, 1)
	assert.Equal(t, 3, result[subject.Key("Space pirates")].Count)
}

func TestAggregateSkipsBooksWithoutYear(t *testing.T) {
	books := []catalog.Book{
		tagged(1980, "Galactic empire"),
		tagged(1985, "Galactic empire"),
		{Title: "no year", Subjects: []string{"Galactic empire"}},
	}

	// The year-less book never contributes, so the count stays below the
	// threshold.
	assert.Empty(t, subject.Aggregate(books))
}

func TestAggregateFiltersNoiseSubjects(t *testing.T) {
	books := []catalog.Book{
		tagged(1980, "Space Opera", "Galactic empire"),
		tagged(1985, "Space Opera", "Galactic empire"),
		tagged(1990, "Space Opera", "Galactic empire"),
	}

	result := subject.Aggregate(books)
	require.Len(t, result, 1)
	_, ok := result[subject.Key("Space Opera")]
	assert.False(t, ok)
}

func TestAggregateCaseInsensitiveKeys(t *testing.T) {
	books := []catalog.Book{
		tagged(1977, "Galactic Empire"),
		tagged(1980, "galactic empire"),
		tagged(1983, "GALACTIC EMPIRE"),
	}

	result := subject.Aggregate(books)
	require.Len(t, result, 1)

	stat := result[subject.Key("galactic empire")]
	assert.Equal(t, 3, stat.Count)
	// Display casing is whichever variant appeared first.
	assert.Equal(t, "Galactic Empire", stat.Subject)
}

func TestAggregateMidpointNotMean(t *testing.T) {
	books := []catalog.Book{
		tagged(1970, "Terraforming"),
		tagged(1971, "Terraforming"),
		tagged(2020, "Terraforming"),
	}

	stat := subject.Aggregate(books)[subject.Key("Terraforming")]
	// Midpoint of the range, not the mean of 1970, 1971, 2020.
	assert.InDelta(t, 1995.0, stat.AvgYear, 0.0001)
}

func TestAggregateIdempotent(t *testing.T) {
	books := []catalog.Book{
		tagged(1977, "Galactic empire", "Interstellar warfare"),
		tagged(1980, "Galactic empire", "Interstellar warfare"),
		tagged(1983, "Galactic empire", "Interstellar warfare"),
		{Title: "no year", Subjects: []string{"Galactic empire"}},
	}

	first := subject.Aggregate(books)
	second := subject.Aggregate(books)
	assert.Equal(t, first, second)
}

func TestAggregateSingleYearSpan(t *testing.T) {
	books := []catalog.Book{
		tagged(1999, "Clone troopers"),
		tagged(1999, "Clone troopers"),
		tagged(1999, "Clone troopers"),
	}

	stat := subject.Aggregate(books)[subject.Key("Clone troopers")]
	assert.Equal(t, stat.MinYear, stat.MaxYear)
	assert.InDelta(t, 1999.0, stat.AvgYear, 0.0001)
}
