package repository

import (
	"context"
	"time"

	"skillsync-ai/internal/database"

	"github.com/google/uuid"
)

type UserSkill struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Name      string
	Level     int
	Category  string
	CreatedAt time.Time
}

type UserSkillRepository interface {
	ListByUserID(ctx context.Context, userID uuid.UUID) ([]UserSkill, error)
	Create(ctx context.Context, s UserSkill) error
}

type PostgresUserSkillRepository struct {
	db database.DB
}

func NewPostgresUserSkillRepository(db database.DB) *PostgresUserSkillRepository {
	return &PostgresUserSkillRepository{db: db}
}

func (r *PostgresUserSkillRepository) ListByUserID(ctx context.Context, userID uuid.UUID) ([]UserSkill, error) {
	rows, err := r.db.Query(
		ctx,
		`SELECT id, user_id, name, level, category, created_at FROM user_skills WHERE user_id = $1 ORDER BY created_at ASC`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]UserSkill, 0)
	for rows.Next() {
		var s UserSkill
		if err := rows.Scan(&s.ID, &s.UserID, &s.Name, &s.Level, &s.Category, &s.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresUserSkillRepository) Create(ctx context.Context, s UserSkill) error {
	_, err := r.db.Exec(
		ctx,
		`INSERT INTO user_skills (id, user_id, name, level, category, created_at) VALUES ($1, $2, $3, $4, $5, $6)`,
		s.ID, s.UserID, s.Name, s.Level, s.Category, s.CreatedAt,
	)
	return err
}
