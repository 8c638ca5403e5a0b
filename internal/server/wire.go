//go:build wireinject
// +build wireinject

package server

import (
	"context"

	"github.com/google/wire"

	"github.com/honeycarbs/career-hunter/internal/cache"
	"github.com/honeycarbs/career-hunter/internal/config"
	"github.com/honeycarbs/career-hunter/internal/domain/job"
	"github.com/honeycarbs/career-hunter/internal/mcp"
	"github.com/honeycarbs/career-hunter/pkg/logging"
)

var searchSet = wire.NewSet(
	provideVocabulary,
	job.NewRelevanceFilter,
	provideCache,
	wire.Bind(new(job.Cache), new(*cache.Cache)),
	provideJobProviders,
	job.NewServiceWithDeps,
	provideSheetsExporter,
)

// InitializeApp wires the HTTP server and cache janitor
func InitializeApp(ctx context.Context, cfg config.Config, logger *logging.Logger) (*App, error) {
	wire.Build(
		searchSet,
		provideJanitor,
		mcp.NewServer,
		mcp.NewHandler,
		NewHandler,
		NewServer,
		newApp,
	)

	return &App{}, nil
}

// InitializeSearch wires the search service and exporter for one-shot CLI use
func InitializeSearch(ctx context.Context, cfg config.Config, logger *logging.Logger) (*Search, error) {
	wire.Build(
		searchSet,
		newSearch,
	)

	return &Search{}, nil
}
