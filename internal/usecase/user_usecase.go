package usecase

import (
	"context"
	"strings"
	"time"

	"skillsync-ai/internal/repository"

	"github.com/google/uuid"
)

type CreateUserInput struct {
	Username string
	Email    string
}

type UserItem struct {
	ID        uuid.UUID
	Username  string
	Email     string
	CreatedAt time.Time
}

type AddUserSkillInput struct {
	Name     string
	Level    int
	Category string
}

type UserSkillItem struct {
	ID        uuid.UUID
	Name      string
	Level     int
	Category  string
	CreatedAt time.Time
}

type AssessmentItem struct {
	ID                uuid.UUID
	SkillsDescription string
	AIAssessment      string
	AIProvider        string
	CreatedAt         time.Time
}

type UserUsecase interface {
	CreateUser(ctx context.Context, in CreateUserInput) (UserItem, error)
	ListUserSkills(ctx context.Context, userID uuid.UUID) ([]UserSkillItem, error)
	AddUserSkill(ctx context.Context, userID uuid.UUID, in AddUserSkillInput) (UserSkillItem, error)
	ListAssessments(ctx context.Context, userID uuid.UUID) ([]AssessmentItem, error)
}

type User struct {
	users       repository.UserRepository
	skills      repository.UserSkillRepository
	assessments repository.AssessmentRepository
}

func NewUserUsecase(users repository.UserRepository, skills repository.UserSkillRepository, assessments repository.AssessmentRepository) *User {
	return &User{users: users, skills: skills, assessments: assessments}
}

func (u *User) CreateUser(ctx context.Context, in CreateUserInput) (UserItem, error) {
	username := strings.TrimSpace(in.Username)
	email := strings.ToLower(strings.TrimSpace(in.Email))
	if username == "" || email == "" || !strings.Contains(email, "@") {
		return UserItem{}, ErrInvalidInput
	}

	exists, err := u.users.ExistsByEmail(ctx, email)
	if err != nil {
		return UserItem{}, ErrInternal
	}
	if exists {
		return UserItem{}, ErrEmailAlreadyRegistered
	}

	item := UserItem{
		ID:        uuid.New(),
		Username:  username,
		Email:     email,
		CreatedAt: time.Now().UTC(),
	}
	err = u.users.Create(ctx, repository.User{
		ID:        item.ID,
		Username:  item.Username,
		Email:     item.Email,
		CreatedAt: item.CreatedAt,
	})
	if err != nil {
		return UserItem{}, ErrInternal
	}
	return item, nil
}

func (u *User) ListUserSkills(ctx context.Context, userID uuid.UUID) ([]UserSkillItem, error) {
	if err := u.requireUser(ctx, userID); err != nil {
		return nil, err
	}

	items, err := u.skills.ListByUserID(ctx, userID)
	if err != nil {
		return nil, ErrInternal
	}

	out := make([]UserSkillItem, 0, len(items))
	for _, it := range items {
		out = append(out, UserSkillItem{
			ID:        it.ID,
			Name:      it.Name,
			Level:     it.Level,
			Category:  it.Category,
			CreatedAt: it.CreatedAt,
		})
	}
	return out, nil
}

func (u *User) AddUserSkill(ctx context.Context, userID uuid.UUID, in AddUserSkillInput) (UserSkillItem, error) {
	if err := u.requireUser(ctx, userID); err != nil {
		return UserSkillItem{}, err
	}

	name := strings.TrimSpace(in.Name)
	category := strings.TrimSpace(in.Category)
	if name == "" || category == "" {
		return UserSkillItem{}, ErrInvalidInput
	}
	// Proficiency is the original platform's 1-10 scale.
	if in.Level < 1 || in.Level > 10 {
		return UserSkillItem{}, ErrInvalidSkillLevel
	}

	item := UserSkillItem{
		ID:        uuid.New(),
		Name:      name,
		Level:     in.Level,
		Category:  category,
		CreatedAt: time.Now().UTC(),
	}
	err := u.skills.Create(ctx, repository.UserSkill{
		ID:        item.ID,
		UserID:    userID,
		Name:      item.Name,
		Level:     item.Level,
		Category:  item.Category,
		CreatedAt: item.CreatedAt,
	})
	if err != nil {
		return UserSkillItem{}, ErrInternal
	}
	return item, nil
}

func (u *User) ListAssessments(ctx context.Context, userID uuid.UUID) ([]AssessmentItem, error) {
	if err := u.requireUser(ctx, userID); err != nil {
		return nil, err
	}

	items, err := u.assessments.ListByUserID(ctx, userID)
	if err != nil {
		return nil, ErrInternal
	}

	out := make([]AssessmentItem, 0, len(items))
	for _, it := range items {
		out = append(out, AssessmentItem{
			ID:                it.ID,
			SkillsDescription: it.SkillsDescription,
			AIAssessment:      it.AIAssessment,
			AIProvider:        it.AIProvider,
			CreatedAt:         it.CreatedAt,
		})
	}
	return out, nil
}

func (u *User) requireUser(ctx context.Context, userID uuid.UUID) error {
	if userID == uuid.Nil {
		return ErrInvalidInput
	}
	exists, err := u.users.ExistsByID(ctx, userID)
	if err != nil {
		return ErrInternal
	}
	if !exists {
		return ErrUserNotFound
	}
	return nil
}
