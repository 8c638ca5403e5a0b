// Package cli implements the hunter command line tool.
package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/honeycarbs/career-hunter/internal/config"
	"github.com/honeycarbs/career-hunter/internal/server"
	"github.com/honeycarbs/career-hunter/pkg/logging"
)

// Builder wires the search dependencies for one invocation
type Builder func(ctx context.Context, logLevel string) (*server.Search, func(), error)

// NewRootCmd builds the hunter command tree; build is called lazily by commands that search
func NewRootCmd(build Builder) *cobra.Command {
	var logLevel string

	root := &cobra.Command{
		Use:           "hunter",
		Short:         "Search job boards for a role and salary range",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "log level written to stderr (debug, info, warn, error)")

	root.AddCommand(newSearchCmd(func(ctx context.Context) (*server.Search, func(), error) {
		return build(ctx, logLevel)
	}))

	return root
}

// DefaultBuilder loads configuration from the environment and wires real sources
func DefaultBuilder(ctx context.Context, logLevel string) (*server.Search, func(), error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}

	logger := logging.NewDevelopment(logLevel)
	search, err := server.InitializeSearch(ctx, cfg, logger)
	if err != nil {
		_ = logger.Sync()
		return nil, nil, err
	}

	return search, func() { _ = logger.Sync() }, nil
}
