package dto

import (
	"time"

	"github.com/google/uuid"
)

type UserResponse struct {
	ID        uuid.UUID `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	CreatedAt string    `json:"created_at"`
}

type UserSkillResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Level     int       `json:"level"`
	Category  string    `json:"category"`
	CreatedAt string    `json:"created_at"`
}

type AssessmentResponse struct {
	ID                uuid.UUID `json:"id"`
	SkillsDescription string    `json:"skills_description"`
	AIAssessment      string    `json:"ai_assessment"`
	AIProvider        string    `json:"ai_provider"`
	CreatedAt         string    `json:"created_at"`
}

// FormatTime matches the original API's ISO-8601 timestamps.
func FormatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}
