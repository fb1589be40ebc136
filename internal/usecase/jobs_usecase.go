package usecase

import (
	"context"
	"fmt"
	"log"
	"strings"
	"sync/atomic"
	"time"

	"skillsync-ai/internal/infrastructure/cache"
	"skillsync-ai/internal/repository"
	"skillsync-ai/internal/ws"

	"github.com/google/uuid"
)

const refreshLockTTL = 15 * time.Minute

type JobListParams struct {
	Query    string
	Location string
	Limit    int
	Offset   int
}

type JobItem struct {
	ID       uuid.UUID  `json:"id"`
	Title    string     `json:"title"`
	Company  string     `json:"company"`
	Location string     `json:"location"`
	Summary  string     `json:"summary"`
	URL      string     `json:"url"`
	PostedAt *time.Time `json:"posted_at"`
}

// JobSourceScraper is one external job board; implementations live in
// the scraper package.
type JobSourceScraper interface {
	Source() string
	Scrape(ctx context.Context, query string, workers int) (int, error)
}

type JobsUsecase interface {
	ListJobs(ctx context.Context, p JobListParams) ([]JobItem, error)
	RefreshJobs(query string) error
}

type Jobs struct {
	repo     repository.JobRepository
	cache    *cache.Redis
	scrapers []JobSourceScraper
	logger   *log.Logger

	refreshing atomic.Bool
}

func NewJobsUsecase(repo repository.JobRepository, c *cache.Redis, scrapers []JobSourceScraper, logger *log.Logger) *Jobs {
	if logger == nil {
		logger = log.Default()
	}
	return &Jobs{repo: repo, cache: c, scrapers: scrapers, logger: logger}
}

func (u *Jobs) ListJobs(ctx context.Context, p JobListParams) ([]JobItem, error) {
	if p.Limit < 0 || p.Offset < 0 {
		return nil, ErrInvalidInput
	}
	if p.Limit == 0 || p.Limit > 100 {
		p.Limit = 20
	}

	key := jobListCacheKey(p)
	var cached []JobItem
	if ok, _ := u.cache.GetJSON(ctx, key, &cached); ok {
		return cached, nil
	}

	rows, err := u.repo.List(ctx, repository.JobListFilter{
		Query:    p.Query,
		Location: p.Location,
		Limit:    p.Limit,
		Offset:   p.Offset,
	})
	if err != nil {
		return nil, ErrInternal
	}

	out := make([]JobItem, 0, len(rows))
	for _, r := range rows {
		out = append(out, JobItem{
			ID:       r.ID,
			Title:    r.Title,
			Company:  r.Company,
			Location: r.Location,
			Summary:  r.Summary,
			URL:      r.URL,
			PostedAt: r.PostedAt,
		})
	}

	_ = u.cache.SetJSON(ctx, key, out, 0)
	return out, nil
}

// RefreshJobs kicks off one scrape pass over every configured source.
// The pass runs in the background; only one runs at a time.
func (u *Jobs) RefreshJobs(query string) error {
	if len(u.scrapers) == 0 {
		return ErrInternal
	}
	if !u.refreshing.CompareAndSwap(false, true) {
		return ErrRefreshInProgress
	}

	// Cross-instance guard; the atomic above only covers this process.
	if ok, _ := u.cache.SetIfNotExists(context.Background(), "jobs:refresh:lock", "1", refreshLockTTL); !ok {
		u.refreshing.Store(false)
		return ErrRefreshInProgress
	}

	go func() {
		defer u.refreshing.Store(false)

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
		defer cancel()
		defer func() {
			_ = u.cache.Delete(ctx, "jobs:refresh:lock")
		}()

		for _, s := range u.scrapers {
			count, err := s.Scrape(ctx, query, 4)
			if err != nil {
				u.logger.Printf("[Jobs] %s refresh failed: %v", s.Source(), err)
				continue
			}
			u.logger.Printf("[Jobs] %s refreshed %d jobs", s.Source(), count)
			if count > 0 {
				_ = u.cache.InvalidateJobListings(ctx)
				ws.NotifyJobsUpdated(s.Source(), count)
			}
		}
	}()

	return nil
}

func jobListCacheKey(p JobListParams) string {
	return fmt.Sprintf(
		"jobs:list:%s:%s:%d:%d",
		strings.ToLower(strings.TrimSpace(p.Query)),
		strings.ToLower(strings.TrimSpace(p.Location)),
		p.Limit,
		p.Offset,
	)
}
