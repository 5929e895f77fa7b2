// Package di wires the application's components together.
package di

import (
	"log/slog"
	"os"

	"github.com/samber/do/v2"

	"github.com/spacetrawl/spacetrawl/internal/catalog"
	"github.com/spacetrawl/spacetrawl/internal/chart"
	"github.com/spacetrawl/spacetrawl/internal/id"
	"github.com/spacetrawl/spacetrawl/internal/logger"
	"github.com/spacetrawl/spacetrawl/internal/validation"
)

// NewContainer creates the DI container with all providers.
func NewContainer() *do.RootScope {
	injector := do.New()

	do.Provide(injector, provideLogger)
	do.Provide(injector, provideValidator)
	do.Provide(injector, provideCatalogClient)
	do.Provide(injector, provideRenderer)

	return injector
}

// provideLogger builds the shared logger. LOG_LEVEL and LOG_FORMAT tune
// output only; every record carries the run ID.
func provideLogger(do.Injector) (*slog.Logger, error) {
	log := logger.New(logger.Config{
		Format: os.Getenv("LOG_FORMAT"),
		Level:  logger.ParseLevel(os.Getenv("LOG_LEVEL")),
	})
	return log.With("run", id.Run()), nil
}

func provideValidator(do.Injector) (*validation.Validator, error) {
	return validation.New(), nil
}

func provideCatalogClient(i do.Injector) (*catalog.Client, error) {
	return catalog.New(
		do.MustInvoke[*slog.Logger](i),
		do.MustInvoke[*validation.Validator](i),
	), nil
}

func provideRenderer(i do.Injector) (*chart.Renderer, error) {
	return chart.New(do.MustInvoke[*slog.Logger](i)), nil
}
