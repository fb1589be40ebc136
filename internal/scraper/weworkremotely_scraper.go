package scraper

import (
	"context"
	"fmt"
	"log"
	"net"
	"net/url"
	"strings"
	"sync/atomic"
	"time"

	"skillsync-ai/internal/repository"

	"github.com/gocolly/colly/v2"
	"github.com/google/uuid"
)

const (
	wwrSourceName = "We Work Remotely"
	wwrBaseURL    = "https://weworkremotely.com"
)

// WWRScraper crawls We Work Remotely listing pages with colly and
// follows each posting for its description.
type WWRScraper struct {
	jobs        repository.JobRepository
	baseURL     string
	allowedHost string
	logger      *log.Logger
}

func NewWWRScraper(jobs repository.JobRepository, logger *log.Logger) *WWRScraper {
	if logger == nil {
		logger = log.Default()
	}
	s := &WWRScraper{jobs: jobs, baseURL: wwrBaseURL, logger: logger}
	s.allowedHost = hostFromBaseURL(s.baseURL)
	return s
}

type wwrListItem struct {
	Title    string
	Company  string
	Location string
	Link     string
}

func (s *WWRScraper) Source() string { return wwrSourceName }

func (s *WWRScraper) Scrape(ctx context.Context, query string, workers int) (int, error) {
	if s == nil || s.jobs == nil {
		return 0, fmt.Errorf("nil scraper/repository")
	}

	sourceID, err := s.jobs.EnsureSource(ctx, wwrSourceName, s.baseURL)
	if err != nil {
		return 0, err
	}

	listURL := strings.TrimRight(s.baseURL, "/") + "/remote-jobs"
	if q := strings.TrimSpace(query); q != "" {
		listURL = strings.TrimRight(s.baseURL, "/") + "/remote-jobs/search?term=" + url.QueryEscape(q)
	}

	items, err := s.scrapeListingPage(ctx, listURL)
	if err != nil {
		return 0, err
	}

	pool := NewWorkerPool(workers, workers*2)
	pool.SetRateLimit(2)
	results := pool.Run(ctx)

	var upserted atomic.Int64
	for _, it := range items {
		it := it
		if strings.TrimSpace(it.Link) == "" {
			continue
		}
		accepted := pool.Submit(ctx, func(ctx context.Context) error {
			summary, postedAt, err := s.scrapeDetailPage(ctx, it.Link)
			if err != nil {
				return err
			}
			err = s.jobs.Upsert(ctx, repository.Job{
				ID:       uuid.New(),
				SourceID: sourceID,
				Title:    it.Title,
				Company:  it.Company,
				Location: pickNonEmpty(it.Location, "Remote"),
				Summary:  summary,
				URL:      it.Link,
				PostedAt: postedAt,
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
			s.logger.Printf("[Scraper] weworkremotely item: %v", res.Err)
		}
	}

	return int(upserted.Load()), nil
}

func (s *WWRScraper) scrapeListingPage(ctx context.Context, listURL string) ([]wwrListItem, error) {
	c := colly.NewCollector(colly.AllowedDomains(s.allowedHost))
	_ = c.Limit(&colly.LimitRule{DomainGlob: "*weworkremotely.com*", Parallelism: 2, Delay: 400 * time.Millisecond, RandomDelay: 600 * time.Millisecond})

	items := make([]wwrListItem, 0)

	c.OnRequest(func(r *colly.Request) {
		r.Headers.Set("User-Agent", userAgent)
	})

	c.OnHTML("section.jobs li", func(e *colly.HTMLElement) {
		href := strings.TrimSpace(e.ChildAttr("a[href*='/remote-jobs/']", "href"))
		if href == "" {
			return
		}
		abs := e.Request.AbsoluteURL(href)
		if abs == "" {
			return
		}
		items = append(items, wwrListItem{
			Title:    strings.TrimSpace(e.ChildText("span.title")),
			Company:  strings.TrimSpace(e.ChildText("span.company")),
			Location: strings.TrimSpace(e.ChildText("span.region")),
			Link:     abs,
		})
	})

	var reqErr error
	c.OnError(func(r *colly.Response, err error) {
		reqErr = err
	})

	if ctx.Err() != nil {
		return nil, ctx.Err()
	}
	if err := c.Visit(listURL); err != nil {
		return nil, err
	}
	c.Wait()
	if reqErr != nil {
		return nil, reqErr
	}

	dedup := map[string]struct{}{}
	out := make([]wwrListItem, 0, len(items))
	for _, it := range items {
		if it.Title == "" {
			continue
		}
		if _, ok := dedup[it.Link]; ok {
			continue
		}
		dedup[it.Link] = struct{}{}
		out = append(out, it)
	}
	return out, nil
}

func (s *WWRScraper) scrapeDetailPage(ctx context.Context, jobURL string) (string, *time.Time, error) {
	c := colly.NewCollector(colly.AllowedDomains(s.allowedHost))
	_ = c.Limit(&colly.LimitRule{DomainGlob: "*weworkremotely.com*", Parallelism: 2, Delay: 450 * time.Millisecond, RandomDelay: 600 * time.Millisecond})

	var description string
	var postedAt *time.Time
	var reqErr error

	c.OnRequest(func(r *colly.Request) {
		r.Headers.Set("User-Agent", userAgent)
	})

	c.OnHTML("div.listing-container", func(e *colly.HTMLElement) {
		if description == "" {
			description = strings.TrimSpace(e.Text)
		}
	})

	c.OnHTML("time[datetime]", func(e *colly.HTMLElement) {
		if postedAt == nil {
			postedAt = parseTimeOrNil(time.RFC3339, e.Attr("datetime"))
		}
	})

	c.OnError(func(r *colly.Response, err error) {
		reqErr = err
	})

	if ctx.Err() != nil {
		return "", nil, ctx.Err()
	}
	if err := c.Visit(jobURL); err != nil {
		return "", nil, err
	}
	c.Wait()
	if reqErr != nil {
		return "", nil, reqErr
	}

	return summarize(description), postedAt, nil
}

func hostFromBaseURL(base string) string {
	u, err := url.Parse(strings.TrimSpace(base))
	if err != nil || u.Host == "" {
		return "weworkremotely.com"
	}
	host := u.Host
	if h, _, err := net.SplitHostPort(host); err == nil {
		return h
	}
	return host
}
