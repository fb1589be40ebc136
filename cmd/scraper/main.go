package main

import (
	"context"
	"flag"
	"log"
	"os"
	"strings"
	"time"

	"skillsync-ai/internal/config"
	"skillsync-ai/internal/database"
	dbpostgres "skillsync-ai/internal/database/postgres"
	"skillsync-ai/internal/infrastructure/cache"
	"skillsync-ai/internal/repository"
	"skillsync-ai/internal/scraper"

	"github.com/joho/godotenv"
)

type jobScraper interface {
	Source() string
	Scrape(ctx context.Context, query string, workers int) (int, error)
}

func main() {
	source := flag.String("source", "all", "job source: remoteok, weworkremotely or all")
	query := flag.String("query", "", "search query applied per source")
	workers := flag.Int("workers", 4, "concurrent fetch workers per source")
	timeout := flag.Duration("timeout", 10*time.Minute, "overall run timeout")
	flag.Parse()

	_ = godotenv.Load()

	logger := log.New(os.Stdout, "[SkillSync] ", log.LstdFlags)

	cfg, err := config.Load()
	if err != nil {
		logger.Fatalf("failed to load config: %v", err)
	}
	if !cfg.HasDatabase() {
		logger.Fatalf("scraper requires a database, set DB_HOST")
	}

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	db, err := dbpostgres.Connect(ctx, cfg.Database)
	if err != nil {
		logger.Fatalf("failed to connect to database: %v", err)
	}
	defer func() {
		_ = db.Close()
	}()

	if err := database.EnsureSchema(ctx, db); err != nil {
		logger.Fatalf("failed to ensure schema: %v", err)
	}

	jobs := repository.NewPostgresJobRepository(db)
	redis := cache.NewRedis(logger)

	scrapers, err := buildScrapers(strings.ToLower(strings.TrimSpace(*source)), jobs, logger)
	if err != nil {
		logger.Fatalf("%v", err)
	}

	for _, s := range scrapers {
		count, err := s.Scrape(ctx, *query, *workers)
		if err != nil {
			logger.Printf("[Scraper] %s run failed: %v", s.Source(), err)
			continue
		}
		logger.Printf("[Scraper] %s upserted %d jobs", s.Source(), count)
		if count > 0 {
			_ = redis.InvalidateJobListings(ctx)
		}
	}
}

func buildScrapers(source string, jobs repository.JobRepository, logger *log.Logger) ([]jobScraper, error) {
	switch source {
	case "remoteok":
		return []jobScraper{scraper.NewRemoteOKScraper(jobs, logger)}, nil
	case "weworkremotely":
		return []jobScraper{scraper.NewWWRScraper(jobs, logger)}, nil
	case "all", "":
		return []jobScraper{
			scraper.NewRemoteOKScraper(jobs, logger),
			scraper.NewWWRScraper(jobs, logger),
		}, nil
	default:
		return nil, &unknownSourceError{source: source}
	}
}

type unknownSourceError struct {
	source string
}

func (e *unknownSourceError) Error() string {
	return "unknown source " + e.source + ", expected remoteok, weworkremotely or all"
}
