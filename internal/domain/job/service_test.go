package job_test

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/honeycarbs/career-hunter/internal/cache"
	"github.com/honeycarbs/career-hunter/internal/domain"
	"github.com/honeycarbs/career-hunter/internal/domain/job"
)

type fakeProvider struct {
	name     string
	listings []domain.JobListing
	err      error
	panics   bool
	gate     chan struct{}

	calls atomic.Int32
	mu    sync.Mutex
	last  job.SourceRequest
}

func (p *fakeProvider) Name() string { return p.name }

func (p *fakeProvider) Search(ctx context.Context, req job.SourceRequest) ([]domain.JobListing, error) {
	p.calls.Add(1)
	p.mu.Lock()
	p.last = req
	p.mu.Unlock()

	if p.gate != nil {
		<-p.gate
	}
	if p.panics {
		panic("scraper exploded")
	}
	if p.err != nil {
		return nil, p.err
	}
	return domain.CloneListings(p.listings), nil
}

func (p *fakeProvider) lastRequest() job.SourceRequest {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.last
}

func listing(id, title string) domain.JobListing {
	return domain.JobListing{ID: id, Title: title, Company: "Acme", JobURL: "https://example.com/" + id}
}

func newService(t *testing.T, providers ...job.Provider) job.Service {
	t.Helper()
	svc, err := job.NewService(
		job.WithProviders(providers...),
		job.WithCache(cache.New(10, time.Hour)),
	)
	require.NoError(t, err)
	return svc
}

func query(role, salary string) domain.SearchQuery {
	return domain.SearchQuery{Role: role, Country: "AU", Salary: salary}
}

func ids(jobs []domain.JobListing) []string {
	out := make([]string, 0, len(jobs))
	for _, j := range jobs {
		out = append(out, j.ID)
	}
	return out
}

func TestService_EndToEndRelevance(t *testing.T) {
	src := &fakeProvider{name: "seek", listings: []domain.JobListing{
		listing("1", "Engineering Manager"),
		listing("2", "Tech Lead"),
		listing("3", "Software Engineer"),
	}}
	svc := newService(t, src)

	got, err := svc.Search(context.Background(), query("Engineer Manager", "100k-150k"))
	require.NoError(t, err)

	require.Len(t, got, 1)
	assert.Equal(t, "Engineering Manager", got[0].Title)
}

func TestService_PassesParsedSalaryAndDefaults(t *testing.T) {
	src := &fakeProvider{name: "seek"}
	svc := newService(t, src)

	_, err := svc.Search(context.Background(), domain.SearchQuery{Role: "engineer", Salary: "140k-200k"})
	require.NoError(t, err)

	assert.Equal(t, job.SourceRequest{
		Role:      "engineer",
		Country:   domain.DefaultCountry,
		Location:  domain.DefaultLocation,
		SalaryMin: 140000,
		SalaryMax: 200000,
		Limit:     domain.DefaultLimit,
	}, src.lastRequest())
}

func TestService_MergesInProviderOrder(t *testing.T) {
	slow := &fakeProvider{name: "slow", listings: []domain.JobListing{listing("s1", "Go Developer")}, gate: make(chan struct{})}
	fast := &fakeProvider{name: "fast", listings: []domain.JobListing{listing("f1", "Go Engineer"), listing("f2", "Go Programmer")}}
	svc := newService(t, slow, fast)

	go func() {
		for fast.calls.Load() == 0 {
			time.Sleep(time.Millisecond)
		}
		close(slow.gate)
	}()

	got, err := svc.Search(context.Background(), query("go developer", "1-2"))
	require.NoError(t, err)
	assert.Equal(t, []string{"s1", "f1", "f2"}, ids(got))
}

func TestService_FailingSourceContributesNothing(t *testing.T) {
	tests := []struct {
		name   string
		broken *fakeProvider
	}{
		{name: "error", broken: &fakeProvider{name: "jobspy", err: errors.New("connection refused")}},
		{name: "panic", broken: &fakeProvider{name: "jobspy", panics: true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ok := &fakeProvider{name: "seek", listings: []domain.JobListing{listing("1", "Data Engineer")}}
			svc := newService(t, ok, tt.broken)

			got, err := svc.Search(context.Background(), query("data engineer", "100k-120k"))
			require.NoError(t, err)
			assert.Equal(t, []string{"1"}, ids(got))
		})
	}
}

func TestService_AllSourcesFailedReturnsEmpty(t *testing.T) {
	svc := newService(t,
		&fakeProvider{name: "a", err: errors.New("boom")},
		&fakeProvider{name: "b", err: errors.New("boom")},
	)

	got, err := svc.Search(context.Background(), query("engineer", "1k-2k"))
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestService_CacheHitSkipsSources(t *testing.T) {
	src := &fakeProvider{name: "seek", listings: []domain.JobListing{listing("1", "Engineer")}}
	svc := newService(t, src)
	ctx := context.Background()

	first, err := svc.Search(ctx, query("Engineer", "100k-200k"))
	require.NoError(t, err)

	second, err := svc.Search(ctx, domain.SearchQuery{Role: "  engineer ", Country: "au", Salary: "100k-200k"})
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, int32(1), src.calls.Load())
}

func TestService_ResultsAreIsolatedFromCache(t *testing.T) {
	src := &fakeProvider{name: "seek", listings: []domain.JobListing{listing("1", "Engineer")}}
	svc := newService(t, src)
	ctx := context.Background()

	first, err := svc.Search(ctx, query("engineer", "1k-2k"))
	require.NoError(t, err)
	first[0].Title = "mutated"

	second, err := svc.Search(ctx, query("engineer", "1k-2k"))
	require.NoError(t, err)
	assert.Equal(t, "Engineer", second[0].Title)
}

func TestService_InvalidInputSkipsSources(t *testing.T) {
	tests := []struct {
		name    string
		q       domain.SearchQuery
		wantErr error
	}{
		{name: "bad salary", q: query("engineer", "lots"), wantErr: domain.ErrInvalidFormat},
		{name: "single salary", q: query("engineer", "100k"), wantErr: domain.ErrInvalidFormat},
		{name: "missing role", q: query(" ", "1k-2k"), wantErr: domain.ErrInvalidQuery},
		{name: "missing salary", q: query("engineer", ""), wantErr: domain.ErrInvalidQuery},
		{name: "limit too high", q: domain.SearchQuery{Role: "engineer", Salary: "1k-2k", Limit: 101}, wantErr: domain.ErrInvalidQuery},
		{name: "negative limit", q: domain.SearchQuery{Role: "engineer", Salary: "1k-2k", Limit: -1}, wantErr: domain.ErrInvalidQuery},
		{name: "bad work type", q: domain.SearchQuery{Role: "engineer", Salary: "1k-2k", WorkType: "sometimes"}, wantErr: domain.ErrInvalidQuery},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src := &fakeProvider{name: "seek"}
			svc := newService(t, src)

			_, err := svc.Search(context.Background(), tt.q)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Zero(t, src.calls.Load())
		})
	}
}

func TestService_WorkTypeFilter(t *testing.T) {
	yes := true
	src := &fakeProvider{name: "seek", listings: []domain.JobListing{
		{ID: "r", Title: "Engineer", Location: "Sydney", IsRemote: &yes},
		{ID: "h", Title: "Engineer", Location: "Melbourne (Hybrid)"},
		{ID: "o", Title: "Engineer", Location: "Perth"},
	}}
	svc := newService(t, src)

	for wt, want := range map[domain.WorkType][]string{
		domain.WorkTypeAll:    {"r", "h", "o"},
		domain.WorkTypeRemote: {"r"},
		domain.WorkTypeHybrid: {"h"},
		domain.WorkTypeOnsite: {"o"},
	} {
		q := query("engineer", "1k-2k")
		q.WorkType = wt

		got, err := svc.Search(context.Background(), q)
		require.NoError(t, err)
		assert.Equal(t, want, ids(got), string(wt))
	}
}

func TestService_MixedCaseWorkType(t *testing.T) {
	remote := true
	src := &fakeProvider{name: "seek", listings: []domain.JobListing{
		{ID: "1", Title: "Go Engineer", Location: "Remote", IsRemote: &remote},
		{ID: "2", Title: "Go Engineer", Location: "Sydney NSW"},
	}}
	svc := newService(t, src)

	for _, wt := range []domain.WorkType{"Remote", "remote", " REMOTE "} {
		q := query("Go Engineer", "100k-150k")
		q.WorkType = wt

		got, err := svc.Search(context.Background(), q)
		require.NoError(t, err, wt)
		assert.Equal(t, []string{"1"}, ids(got), "work type %q", wt)
	}
	assert.EqualValues(t, 1, src.calls.Load(), "spellings share one cache entry")
}

func TestService_ConcurrentIdenticalSearchesShareDispatch(t *testing.T) {
	gate := make(chan struct{})
	src := &fakeProvider{name: "seek", listings: []domain.JobListing{listing("1", "Engineer")}, gate: gate}
	svc := newService(t, src)

	const callers = 8
	var wg sync.WaitGroup
	results := make([][]domain.JobListing, callers)
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			got, err := svc.Search(context.Background(), query("engineer", "1k-2k"))
			assert.NoError(t, err)
			results[i] = got
		}(i)
	}

	require.Eventually(t, func() bool { return src.calls.Load() == 1 }, time.Second, time.Millisecond)
	time.Sleep(20 * time.Millisecond)
	close(gate)
	wg.Wait()

	assert.Equal(t, int32(1), src.calls.Load())
	for _, r := range results {
		assert.Equal(t, []string{"1"}, ids(r))
	}
}

func TestService_ClearCache(t *testing.T) {
	src := &fakeProvider{name: "seek", listings: []domain.JobListing{listing("1", "Engineer")}}
	svc := newService(t, src)
	ctx := context.Background()

	_, err := svc.Search(ctx, query("engineer", "1k-2k"))
	require.NoError(t, err)
	_, err = svc.Search(ctx, query("developer", "1k-2k"))
	require.NoError(t, err)

	assert.Equal(t, 2, svc.ClearCache())
	assert.Equal(t, 0, svc.ClearCache())

	_, err = svc.Search(ctx, query("engineer", "1k-2k"))
	require.NoError(t, err)
	assert.Equal(t, int32(3), src.calls.Load())
}

func TestNewServiceWithDeps_Validation(t *testing.T) {
	c := cache.New(1, time.Minute)
	rf := job.NewRelevanceFilter(job.DefaultVocabulary())
	p := &fakeProvider{name: "seek"}

	_, err := job.NewServiceWithDeps(nil, c, rf, nil)
	assert.Error(t, err)

	_, err = job.NewServiceWithDeps([]job.Provider{p}, nil, rf, nil)
	assert.Error(t, err)

	_, err = job.NewServiceWithDeps([]job.Provider{p}, c, nil, nil)
	assert.Error(t, err)
}
