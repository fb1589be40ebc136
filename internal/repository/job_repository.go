package repository

import (
	"context"
	"strings"
	"time"

	"skillsync-ai/internal/database"

	"github.com/google/uuid"
)

type Job struct {
	ID       uuid.UUID
	SourceID uuid.UUID
	Title    string
	Company  string
	Location string
	Summary  string
	URL      string
	PostedAt *time.Time
}

type JobListFilter struct {
	Query    string
	Location string
	Limit    int
	Offset   int
}

type JobRepository interface {
	Upsert(ctx context.Context, j Job) error
	List(ctx context.Context, f JobListFilter) ([]Job, error)
	EnsureSource(ctx context.Context, name, baseURL string) (uuid.UUID, error)
}

type PostgresJobRepository struct {
	db database.DB
}

func NewPostgresJobRepository(db database.DB) *PostgresJobRepository {
	return &PostgresJobRepository{db: db}
}

func (r *PostgresJobRepository) EnsureSource(ctx context.Context, name, baseURL string) (uuid.UUID, error) {
	id := uuid.New()
	_, err := r.db.Exec(
		ctx,
		`INSERT INTO job_sources (id, name, base_url) VALUES ($1, $2, $3) ON CONFLICT (name) DO NOTHING`,
		id, name, baseURL,
	)
	if err != nil {
		return uuid.Nil, err
	}

	var existing uuid.UUID
	if err := r.db.QueryRow(ctx, `SELECT id FROM job_sources WHERE name = $1`, name).Scan(&existing); err != nil {
		return uuid.Nil, err
	}
	return existing, nil
}

func (r *PostgresJobRepository) Upsert(ctx context.Context, j Job) error {
	_, err := r.db.Exec(
		ctx,
		`INSERT INTO jobs (id, source_id, title, company, location, summary, url, posted_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		 ON CONFLICT (url) DO UPDATE SET
		   title = EXCLUDED.title,
		   company = EXCLUDED.company,
		   location = EXCLUDED.location,
		   summary = EXCLUDED.summary,
		   posted_at = EXCLUDED.posted_at,
		   updated_at = now()`,
		j.ID, j.SourceID, j.Title, j.Company, j.Location, j.Summary, j.URL, j.PostedAt,
	)
	return err
}

func (r *PostgresJobRepository) List(ctx context.Context, f JobListFilter) ([]Job, error) {
	limit := f.Limit
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	offset := f.Offset
	if offset < 0 {
		offset = 0
	}

	q := "%" + strings.ToLower(strings.TrimSpace(f.Query)) + "%"
	loc := "%" + strings.ToLower(strings.TrimSpace(f.Location)) + "%"

	rows, err := r.db.Query(
		ctx,
		`SELECT id, source_id, title, company, location, summary, url, posted_at
		 FROM jobs
		 WHERE (lower(title) LIKE $1 OR lower(summary) LIKE $1)
		   AND lower(location) LIKE $2
		 ORDER BY posted_at DESC NULLS LAST
		 LIMIT $3 OFFSET $4`,
		q, loc, limit, offset,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Job, 0, limit)
	for rows.Next() {
		var j Job
		if err := rows.Scan(&j.ID, &j.SourceID, &j.Title, &j.Company, &j.Location, &j.Summary, &j.URL, &j.PostedAt); err != nil {
			return nil, err
		}
		out = append(out, j)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
