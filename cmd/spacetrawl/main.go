// Command spacetrawl fetches space opera records from OpenLibrary, splits
// them into Star Wars vs. other, and charts subject usage over time for
// each group.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/samber/do/v2"

	"github.com/spacetrawl/spacetrawl/internal/catalog"
	"github.com/spacetrawl/spacetrawl/internal/chart"
	"github.com/spacetrawl/spacetrawl/internal/di"
	"github.com/spacetrawl/spacetrawl/internal/subject"
)

const (
	searchSubject  = "space opera"
	searchLanguage = "eng"
	resultLimit    = 50

	starWarsChart = "star_wars_subjects.png"
	otherChart    = "other_space_opera_subjects.png"

	runTimeout = 2 * time.Minute
)

func main() {
	injector := di.NewContainer()
	logger := do.MustInvoke[*slog.Logger](injector)

	if err := run(injector, logger); err != nil {
		logger.Error("run failed", "error", err)
		os.Exit(1)
	}
}

func run(injector do.Injector, logger *slog.Logger) error {
	client := do.MustInvoke[*catalog.Client](injector)
	defer client.Close()
	renderer := do.MustInvoke[*chart.Renderer](injector)

	ctx, cancel := context.WithTimeout(context.Background(), runTimeout)
	defer cancel()

	fmt.Println("Fetching data from OpenLibrary...")
	books, err := client.Search(ctx, catalog.SearchParams{
		Subject:  searchSubject,
		Language: searchLanguage,
		Limit:    resultLimit,
	})
	if err != nil {
		return fmt.Errorf("fetch records: %w", err)
	}
	fmt.Printf("Found %d books\n", len(books))

	starWars, other := subject.Split(books)
	fmt.Printf("\nStar Wars books: %d\n", len(starWars))
	fmt.Printf("Other books: %d\n", len(other))

	fmt.Println("\nAnalyzing Star Wars books...")
	starWarsStats := subject.Aggregate(starWars)
	printStats(starWarsStats)
	fmt.Printf("Found %d subjects (appearing %d+ times)\n", len(starWarsStats), subject.MinCount)

	fmt.Println("\nAnalyzing other books...")
	otherStats := subject.Aggregate(other)
	printStats(otherStats)
	fmt.Printf("Found %d subjects (appearing %d+ times)\n", len(otherStats), subject.MinCount)

	fmt.Println("\nGenerating charts...")
	if err := renderer.Render(starWarsStats, "Star Wars Books - Subject Trends Over Time", starWarsChart); err != nil {
		return fmt.Errorf("render %s: %w", starWarsChart, err)
	}
	if err := renderer.Render(otherStats, "Non-Star Wars Space Opera Books - Subject Trends Over Time", otherChart); err != nil {
		return fmt.Errorf("render %s: %w", otherChart, err)
	}

	logger.Info("analysis complete",
		"books", len(books),
		"star_wars", len(starWars),
		"other", len(other),
	)
	fmt.Println("\nAnalysis complete!")
	return nil
}

// printStats lists per-subject statistics in chart order.
func printStats(result subject.Result) {
	for _, stat := range chart.SortStats(result) {
		fmt.Printf("Subject: %s\n", stat.Subject)
		fmt.Printf("  Count: %d\n", stat.Count)
		fmt.Printf("  Min Year: %d\n", stat.MinYear)
		fmt.Printf("  Max Year: %d\n", stat.MaxYear)
		fmt.Printf("  Avg Year: %.2f\n", stat.AvgYear)
	}
}
