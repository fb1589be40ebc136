package scraper

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strings"
	"sync/atomic"
	"time"

	"skillsync-ai/internal/repository"

	"github.com/google/uuid"
)

const (
	remoteOKSourceName = "RemoteOK"
	remoteOKBaseURL    = "https://remoteok.com"
)

// RemoteOKScraper pulls the public RemoteOK JSON feed. The feed is a
// single page; the query is applied client-side against title and tags.
type RemoteOKScraper struct {
	jobs    repository.JobRepository
	client  *http.Client
	apiBase string
	logger  *log.Logger
}

func NewRemoteOKScraper(jobs repository.JobRepository, logger *log.Logger) *RemoteOKScraper {
	if logger == nil {
		logger = log.Default()
	}
	return &RemoteOKScraper{
		jobs:    jobs,
		client:  &http.Client{Timeout: 25 * time.Second},
		apiBase: remoteOKBaseURL,
		logger:  logger,
	}
}

type remoteOKListing struct {
	ID       json.Number `json:"id"`
	Position string      `json:"position"`
	Company  string      `json:"company"`
	Location string      `json:"location"`
	Tags     []string    `json:"tags"`
	Date     string      `json:"date"`
	URL      string      `json:"url"`
	Desc     string      `json:"description"`

	// The feed's first element is a legal notice carrying this field.
	Legal string `json:"legal"`
}

func (s *RemoteOKScraper) Source() string { return remoteOKSourceName }

func (s *RemoteOKScraper) Scrape(ctx context.Context, query string, workers int) (int, error) {
	if s == nil || s.jobs == nil {
		return 0, fmt.Errorf("nil scraper/repository")
	}

	sourceID, err := s.jobs.EnsureSource(ctx, remoteOKSourceName, remoteOKBaseURL)
	if err != nil {
		return 0, err
	}

	listings, err := s.fetchListings(ctx)
	if err != nil {
		return 0, err
	}

	pool := NewWorkerPool(workers, workers*2)
	pool.SetRateLimit(8)
	results := pool.Run(ctx)

	var upserted atomic.Int64
	for _, it := range listings {
		it := it
		if it.Legal != "" || strings.TrimSpace(it.URL) == "" {
			continue
		}
		if !matchesQuery(query, append([]string{it.Position}, it.Tags...)...) {
			continue
		}
		accepted := pool.Submit(ctx, func(ctx context.Context) error {
			err := s.jobs.Upsert(ctx, repository.Job{
				ID:       uuid.New(),
				SourceID: sourceID,
				Title:    strings.TrimSpace(it.Position),
				Company:  strings.TrimSpace(it.Company),
				Location: pickNonEmpty(it.Location, "Remote"),
				Summary:  summarize(it.Desc),
				URL:      strings.TrimSpace(it.URL),
				PostedAt: parseTimeOrNil(time.RFC3339, it.Date),
			})
			if err == nil {
				upserted.Add(1)
			}
			return err
		})
		if !accepted {
			break
		}
	}

	pool.Close()
	for res := range results {
		if res.Err != nil {
			s.logger.Printf("[Scraper] remoteok item: %v", res.Err)
		}
	}

	return int(upserted.Load()), nil
}

func (s *RemoteOKScraper) fetchListings(ctx context.Context) ([]remoteOKListing, error) {
	url := strings.TrimRight(s.apiBase, "/") + "/api"
	body, err := httpGetWithRetry(ctx, s.client, url, 3)
	if err != nil {
		return nil, err
	}
	var out []remoteOKListing
	if err := json.Unmarshal(body, &out); err != nil {
		return nil, err
	}
	return out, nil
}
