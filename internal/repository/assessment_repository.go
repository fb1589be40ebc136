package repository

import (
	"context"
	"time"

	"skillsync-ai/internal/database"

	"github.com/google/uuid"
)

type Assessment struct {
	ID                uuid.UUID
	UserID            uuid.UUID
	SkillsDescription string
	AIAssessment      string
	AIProvider        string
	CreatedAt         time.Time
}

type AssessmentRepository interface {
	Create(ctx context.Context, a Assessment) error
	ListByUserID(ctx context.Context, userID uuid.UUID) ([]Assessment, error)
}

type PostgresAssessmentRepository struct {
	db database.DB
}

func NewPostgresAssessmentRepository(db database.DB) *PostgresAssessmentRepository {
	return &PostgresAssessmentRepository{db: db}
}

func (r *PostgresAssessmentRepository) Create(ctx context.Context, a Assessment) error {
	_, err := r.db.Exec(
		ctx,
		`INSERT INTO assessments (id, user_id, skills_description, ai_assessment, ai_provider, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		a.ID, a.UserID, a.SkillsDescription, a.AIAssessment, a.AIProvider, a.CreatedAt,
	)
	return err
}

func (r *PostgresAssessmentRepository) ListByUserID(ctx context.Context, userID uuid.UUID) ([]Assessment, error) {
	rows, err := r.db.Query(
		ctx,
		`SELECT id, user_id, skills_description, ai_assessment, ai_provider, created_at
		 FROM assessments WHERE user_id = $1 ORDER BY created_at DESC`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Assessment, 0)
	for rows.Next() {
		var a Assessment
		if err := rows.Scan(&a.ID, &a.UserID, &a.SkillsDescription, &a.AIAssessment, &a.AIProvider, &a.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
