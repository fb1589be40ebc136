package scraper

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"skillsync-ai/internal/repository"

	"github.com/google/uuid"
)

type fakeJobRepo struct {
	mu       sync.Mutex
	upserted []repository.Job
	sourceID uuid.UUID
}

func (f *fakeJobRepo) Upsert(_ context.Context, j repository.Job) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.upserted = append(f.upserted, j)
	return nil
}

func (f *fakeJobRepo) List(context.Context, repository.JobListFilter) ([]repository.Job, error) {
	return nil, nil
}

func (f *fakeJobRepo) EnsureSource(context.Context, string, string) (uuid.UUID, error) {
	if f.sourceID == uuid.Nil {
		f.sourceID = uuid.New()
	}
	return f.sourceID, nil
}

func TestWorkerPool_SubmitAfterCancel(t *testing.T) {
	pool := NewWorkerPool(1, 0)
	ctx, cancel := context.WithCancel(context.Background())
	results := pool.Run(ctx)
	cancel()

	// Once the worker observes the cancel, nobody drains the unbuffered
	// task channel; Submit must bail out instead of blocking the producer.
	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := 0; i < 4; i++ {
			pool.Submit(ctx, func(context.Context) error { return nil })
		}
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("producer still blocked in Submit after cancel")
	}

	pool.Close()
	for range results {
	}
}

func TestSummarize(t *testing.T) {
	if got := summarize("  hello\n\t world  "); got != "hello world" {
		t.Fatalf("expected collapsed whitespace, got %q", got)
	}

	long := strings.Repeat("go ", 400)
	got := summarize(long)
	if len([]rune(got)) > maxSummaryLen+3 {
		t.Fatalf("summary too long: %d runes", len([]rune(got)))
	}
	if !strings.HasSuffix(got, "...") {
		t.Fatalf("expected ellipsis suffix, got %q", got[len(got)-10:])
	}
}

func TestMatchesQuery(t *testing.T) {
	if !matchesQuery("", "anything") {
		t.Fatalf("empty query must match everything")
	}
	if !matchesQuery("python", "Senior Python Engineer") {
		t.Fatalf("expected case-insensitive title match")
	}
	if !matchesQuery("golang", "Backend Engineer", "golang", "postgres") {
		t.Fatalf("expected tag match")
	}
	if matchesQuery("rust", "Backend Engineer", "golang") {
		t.Fatalf("unexpected match")
	}
}

func TestRemoteOKScraper_Scrape(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[
			{"legal":"API terms apply"},
			{"id":101,"position":"Senior Python Engineer","company":"Acme","location":"Worldwide","tags":["python","sql"],"date":"2025-08-01T10:00:00Z","url":"https://remoteok.com/remote-jobs/101","description":"Build APIs"},
			{"id":102,"position":"Rust Developer","company":"Oxide","location":"","tags":["rust"],"date":"2025-08-02T10:00:00Z","url":"https://remoteok.com/remote-jobs/102","description":"Systems work"}
		]`))
	}))
	defer srv.Close()

	repo := &fakeJobRepo{}
	s := NewRemoteOKScraper(repo, nil)
	s.apiBase = srv.URL

	count, err := s.Scrape(context.Background(), "python", 2)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if count != 1 {
		t.Fatalf("expected 1 upsert, got %d", count)
	}
	if len(repo.upserted) != 1 {
		t.Fatalf("expected 1 stored job, got %d", len(repo.upserted))
	}

	job := repo.upserted[0]
	if job.Title != "Senior Python Engineer" {
		t.Fatalf("unexpected title: %q", job.Title)
	}
	if job.SourceID != repo.sourceID {
		t.Fatalf("job not linked to source")
	}
	if job.PostedAt == nil {
		t.Fatalf("expected parsed posted_at")
	}
	if job.Summary != "Build APIs" {
		t.Fatalf("unexpected summary: %q", job.Summary)
	}
}

func TestRemoteOKScraper_Scrape_AllWhenNoQuery(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[
			{"legal":"API terms apply"},
			{"id":1,"position":"A","company":"x","url":"https://remoteok.com/remote-jobs/1"},
			{"id":2,"position":"B","company":"y","url":"https://remoteok.com/remote-jobs/2"}
		]`))
	}))
	defer srv.Close()

	repo := &fakeJobRepo{}
	s := NewRemoteOKScraper(repo, nil)
	s.apiBase = srv.URL

	count, err := s.Scrape(context.Background(), "", 1)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if count != 2 {
		t.Fatalf("expected 2 upserts, got %d", count)
	}
	for _, j := range repo.upserted {
		if j.Location != "Remote" {
			t.Fatalf("expected empty location to default to Remote, got %q", j.Location)
		}
	}
}
