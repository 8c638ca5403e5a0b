package job

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/honeycarbs/career-hunter/internal/domain"
	"github.com/honeycarbs/career-hunter/pkg/logging"
)

type Service interface {
	Search(ctx context.Context, q domain.SearchQuery) ([]domain.JobListing, error)
	ClearCache() int
}

// Cache stores filtered results by query fingerprint
type Cache interface {
	Key(q domain.SearchQuery) string
	Get(q domain.SearchQuery) ([]domain.JobListing, bool)
	Put(q domain.SearchQuery, listings []domain.JobListing)
	Clear() int
}

// Option configures Service
type Option func(*config)

type config struct {
	providers []Provider
	cache     Cache
	relevance *RelevanceFilter
	logger    *logging.Logger
}

// WithProviders sets job providers; results are merged in this order
func WithProviders(providers ...Provider) Option {
	return func(c *config) {
		c.providers = providers
	}
}

// WithCache sets the result cache
func WithCache(cache Cache) Option {
	return func(c *config) {
		c.cache = cache
	}
}

// WithRelevanceFilter sets the title matcher
func WithRelevanceFilter(f *RelevanceFilter) Option {
	return func(c *config) {
		c.relevance = f
	}
}

// WithLogger sets the logger
func WithLogger(l *logging.Logger) Option {
	return func(c *config) {
		c.logger = l
	}
}

// NewService builds Service from options
func NewService(opts ...Option) (Service, error) {
	cfg := &config{}
	for _, opt := range opts {
		opt(cfg)
	}

	if cfg.relevance == nil {
		cfg.relevance = NewRelevanceFilter(DefaultVocabulary())
	}
	return NewServiceWithDeps(cfg.providers, cfg.cache, cfg.relevance, cfg.logger)
}

// NewServiceWithDeps creates a Service with direct dependencies (Wire-compatible)
func NewServiceWithDeps(
	providers []Provider,
	cache Cache,
	relevance *RelevanceFilter,
	logger *logging.Logger,
) (Service, error) {
	if len(providers) == 0 {
		return nil, fmt.Errorf("job.Service: at least one provider is required")
	}
	if cache == nil {
		return nil, fmt.Errorf("job.Service: cache is required")
	}
	if relevance == nil {
		return nil, fmt.Errorf("job.Service: relevance filter is required")
	}
	if logger == nil {
		logger = logging.NewNop()
	}

	return &service{
		providers: providers,
		cache:     cache,
		relevance: relevance,
		logger:    logger,
	}, nil
}

type service struct {
	providers []Provider
	cache     Cache
	relevance *RelevanceFilter
	logger    *logging.Logger
	flight    singleflight.Group
}

// Search validates q, serves it from cache when fresh, otherwise queries every provider
func (s *service) Search(ctx context.Context, q domain.SearchQuery) ([]domain.JobListing, error) {
	q = q.WithDefaults()

	if err := q.Validate(); err != nil {
		return nil, err
	}

	salary, err := ParseSalaryRange(q.Salary)
	if err != nil {
		return nil, err
	}

	log := s.logger.With("role", q.Role, "country", q.Country, "work_type", q.WorkType)

	if cached, ok := s.cache.Get(q); ok {
		log.Debug("search served from cache", "jobs", len(cached))
		return cached, nil
	}

	key := s.cache.Key(q)
	v, _, shared := s.flight.Do(key, func() (any, error) {
		// waiters share this result, so an abandoned leader must not cancel it
		listings := s.collect(context.WithoutCancel(ctx), q, salary, log)
		s.cache.Put(q, listings)
		return listings, nil
	})
	if shared {
		log.Debug("search joined in-flight request")
	}

	return domain.CloneListings(v.([]domain.JobListing)), nil
}

func (s *service) ClearCache() int {
	n := s.cache.Clear()
	s.logger.Info("search cache cleared", "entries", n)
	return n
}

func (s *service) collect(
	ctx context.Context,
	q domain.SearchQuery,
	salary domain.SalaryRange,
	log *logging.Logger,
) []domain.JobListing {
	results := s.dispatch(ctx, newSourceRequest(q, salary))

	var merged []domain.JobListing
	failed := 0
	for _, r := range results {
		if !r.OK() {
			failed++
			log.Warn("job source failed", "source", r.Source, "duration", r.Duration, "err", r.Err)
			continue
		}
		log.Info("job source answered", "source", r.Source, "jobs", len(r.Listings), "duration", r.Duration)
		merged = append(merged, r.Listings...)
	}
	if failed == len(results) {
		log.Error("all job sources failed", "sources", len(results))
	}

	relevant := s.relevance.Filter(merged, q.Role)
	filtered := FilterByWorkType(relevant, q.WorkType)

	log.Info("search completed",
		"fetched", len(merged),
		"irrelevant", len(merged)-len(relevant),
		"work_type_excluded", len(relevant)-len(filtered),
		"returned", len(filtered),
	)

	return filtered
}

// dispatch runs every provider concurrently; results keep provider order
func (s *service) dispatch(ctx context.Context, req SourceRequest) []SourceResult {
	results := make([]SourceResult, len(s.providers))

	var wg sync.WaitGroup
	for i, p := range s.providers {
		wg.Add(1)
		go func(i int, p Provider) {
			defer wg.Done()
			results[i] = runProvider(ctx, p, req)
		}(i, p)
	}
	wg.Wait()

	return results
}

func runProvider(ctx context.Context, p Provider, req SourceRequest) (res SourceResult) {
	start := time.Now()
	res.Source = p.Name()

	defer func() {
		if rec := recover(); rec != nil {
			res.Listings = nil
			res.Err = fmt.Errorf("%w: %s panicked: %v", domain.ErrSourceUnavailable, res.Source, rec)
		}
		res.Duration = time.Since(start)
	}()

	listings, err := p.Search(ctx, req)
	if err != nil {
		if !errors.Is(err, domain.ErrSourceUnavailable) {
			err = fmt.Errorf("%w: %s: %w", domain.ErrSourceUnavailable, res.Source, err)
		}
		res.Err = err
		return res
	}

	res.Listings = listings
	return res
}
