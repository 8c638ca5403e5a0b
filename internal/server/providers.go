package server

import (
	"context"
	"fmt"

	"github.com/honeycarbs/career-hunter/internal/cache"
	"github.com/honeycarbs/career-hunter/internal/config"
	"github.com/honeycarbs/career-hunter/internal/domain/job"
	adzunaProvider "github.com/honeycarbs/career-hunter/internal/domain/job/providers/adzuna"
	jobspyProvider "github.com/honeycarbs/career-hunter/internal/domain/job/providers/jobspy"
	seekProvider "github.com/honeycarbs/career-hunter/internal/domain/job/providers/seek"
	"github.com/honeycarbs/career-hunter/internal/export"
	"github.com/honeycarbs/career-hunter/internal/mcp/tools"
	"github.com/honeycarbs/career-hunter/internal/scheduler"
	"github.com/honeycarbs/career-hunter/pkg/adzuna"
	"github.com/honeycarbs/career-hunter/pkg/jobspy"
	"github.com/honeycarbs/career-hunter/pkg/logging"
	"github.com/honeycarbs/career-hunter/pkg/seek"
	sheetsclient "github.com/honeycarbs/career-hunter/pkg/sheets"
)

// App is everything cmd/server starts and stops
type App struct {
	Server  *Server
	Janitor *scheduler.Janitor
}

// Search is what the CLI needs to run and export a search
type Search struct {
	Service  job.Service
	Exporter tools.SheetsExporter
}

func newApp(srv *Server, janitor *scheduler.Janitor) *App {
	return &App{Server: srv, Janitor: janitor}
}

func newSearch(svc job.Service, exporter tools.SheetsExporter) *Search {
	return &Search{Service: svc, Exporter: exporter}
}

// provideVocabulary loads VOCABULARY_FILE or the built-in tables
func provideVocabulary(cfg config.Config) (job.Vocabulary, error) {
	return config.LoadVocabulary(cfg.VocabularyFile)
}

// provideCache builds the result cache from config
func provideCache(cfg config.Config) *cache.Cache {
	return cache.New(cfg.Cache.MaxSize, cfg.Cache.TTL)
}

// provideJobProviders creates the enabled sources in merge order: Seek, JobSpy, then Adzuna
func provideJobProviders(cfg config.Config, logger *logging.Logger) ([]job.Provider, error) {
	var providers []job.Provider

	if cfg.Seek.Enabled {
		client, err := seek.NewClient(seek.Config{
			BaseURL:   cfg.Seek.BaseURL,
			UserAgent: cfg.Seek.UserAgent,
			Timeout:   cfg.Seek.Timeout,
		})
		if err != nil {
			return nil, fmt.Errorf("seek client: %w", err)
		}
		p, err := seekProvider.NewProvider(client)
		if err != nil {
			return nil, err
		}
		providers = append(providers, p)
		logger.Info("Seek provider initialized")
	}

	if cfg.JobSpy.URL != "" {
		client, err := jobspy.NewClient(jobspy.Config{
			BaseURL: cfg.JobSpy.URL,
			APIKey:  cfg.JobSpy.APIKey,
			Timeout: cfg.JobSpy.Timeout,
		})
		if err != nil {
			return nil, fmt.Errorf("jobspy client: %w", err)
		}
		p, err := jobspyProvider.NewProvider(client, jobspyProvider.Options{
			Sites:    cfg.JobSpy.Sites,
			HoursOld: cfg.JobSpy.HoursOld,
			Proxies:  cfg.JobSpy.Proxies,
		})
		if err != nil {
			return nil, err
		}
		providers = append(providers, p)
		logger.Info("JobSpy provider initialized", "url", cfg.JobSpy.URL)
	}

	if cfg.AdzunaEnabled() {
		client, err := adzuna.NewClient(adzuna.Config{
			AppID:   cfg.Adzuna.AppID,
			AppKey:  cfg.Adzuna.AppKey,
			Timeout: cfg.Adzuna.Timeout,
		})
		if err != nil {
			return nil, fmt.Errorf("adzuna client: %w", err)
		}
		p, err := adzunaProvider.NewProvider(client)
		if err != nil {
			return nil, err
		}
		providers = append(providers, p)
		logger.Info("Adzuna provider initialized")
	}

	return providers, nil
}

// provideJanitor schedules cache purging
func provideJanitor(cfg config.Config, c *cache.Cache, logger *logging.Logger) (*scheduler.Janitor, error) {
	return scheduler.NewJanitor(cfg.Cache.PurgeSpec, c, logger)
}

// provideSheetsExporter returns nil when no credentials are configured
func provideSheetsExporter(ctx context.Context, cfg config.Config, logger *logging.Logger) tools.SheetsExporter {
	if cfg.Sheets.CredentialsPath == "" {
		return nil
	}

	client, err := sheetsclient.NewClient(ctx, sheetsclient.Config{CredentialsPath: cfg.Sheets.CredentialsPath})
	if err != nil {
		logger.Warn("failed to initialize Google Sheets client", "err", err)
		return nil
	}

	logger.Info("Google Sheets client initialized")
	return export.NewSheets(client)
}
