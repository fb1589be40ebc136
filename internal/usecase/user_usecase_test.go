package usecase

import (
	"context"
	"errors"
	"testing"

	"skillsync-ai/internal/repository"

	"github.com/google/uuid"
)

type mockUserRepo struct {
	created    []repository.User
	emailTaken bool
	existing   map[uuid.UUID]bool
	byEmail    map[string]repository.User
	err        error
}

func (m *mockUserRepo) Create(_ context.Context, u repository.User) error {
	if m.err != nil {
		return m.err
	}
	m.created = append(m.created, u)
	return nil
}

func (m *mockUserRepo) ExistsByEmail(context.Context, string) (bool, error) {
	return m.emailTaken, m.err
}

func (m *mockUserRepo) ExistsByID(_ context.Context, id uuid.UUID) (bool, error) {
	if m.err != nil {
		return false, m.err
	}
	return m.existing[id], nil
}

func (m *mockUserRepo) FindByEmail(_ context.Context, email string) (repository.User, error) {
	if m.err != nil {
		return repository.User{}, m.err
	}
	u, ok := m.byEmail[email]
	if !ok {
		return repository.User{}, repository.ErrUserNotFound
	}
	return u, nil
}

type mockSkillRepo struct {
	created []repository.UserSkill
	items   []repository.UserSkill
	err     error
}

func (m *mockSkillRepo) ListByUserID(context.Context, uuid.UUID) ([]repository.UserSkill, error) {
	return m.items, m.err
}

func (m *mockSkillRepo) Create(_ context.Context, s repository.UserSkill) error {
	if m.err != nil {
		return m.err
	}
	m.created = append(m.created, s)
	return nil
}

type mockAssessmentRepo struct {
	created []repository.Assessment
	items   []repository.Assessment
	err     error
}

func (m *mockAssessmentRepo) Create(_ context.Context, a repository.Assessment) error {
	if m.err != nil {
		return m.err
	}
	m.created = append(m.created, a)
	return nil
}

func (m *mockAssessmentRepo) ListByUserID(context.Context, uuid.UUID) ([]repository.Assessment, error) {
	return m.items, m.err
}

func TestUserUsecase_CreateUser(t *testing.T) {
	repo := &mockUserRepo{}
	uc := NewUserUsecase(repo, &mockSkillRepo{}, &mockAssessmentRepo{})

	item, err := uc.CreateUser(context.Background(), CreateUserInput{Username: "ari", Email: "Ari@Example.com"})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if item.Email != "ari@example.com" {
		t.Fatalf("expected lowercased email, got %s", item.Email)
	}
	if len(repo.created) != 1 {
		t.Fatalf("expected 1 created user, got %d", len(repo.created))
	}
}

func TestUserUsecase_CreateUser_EmailTaken(t *testing.T) {
	uc := NewUserUsecase(&mockUserRepo{emailTaken: true}, &mockSkillRepo{}, &mockAssessmentRepo{})

	_, err := uc.CreateUser(context.Background(), CreateUserInput{Username: "ari", Email: "ari@example.com"})
	if !errors.Is(err, ErrEmailAlreadyRegistered) {
		t.Fatalf("expected ErrEmailAlreadyRegistered, got %v", err)
	}
}

func TestUserUsecase_CreateUser_InvalidEmail(t *testing.T) {
	uc := NewUserUsecase(&mockUserRepo{}, &mockSkillRepo{}, &mockAssessmentRepo{})

	_, err := uc.CreateUser(context.Background(), CreateUserInput{Username: "ari", Email: "not-an-email"})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestUserUsecase_AddUserSkill_InvalidLevel(t *testing.T) {
	userID := uuid.New()
	uc := NewUserUsecase(
		&mockUserRepo{existing: map[uuid.UUID]bool{userID: true}},
		&mockSkillRepo{},
		&mockAssessmentRepo{},
	)

	for _, level := range []int{0, 11, -3} {
		_, err := uc.AddUserSkill(context.Background(), userID, AddUserSkillInput{Name: "Go", Level: level, Category: "backend"})
		if !errors.Is(err, ErrInvalidSkillLevel) {
			t.Fatalf("level %d: expected ErrInvalidSkillLevel, got %v", level, err)
		}
	}
}

func TestUserUsecase_AddUserSkill(t *testing.T) {
	userID := uuid.New()
	skills := &mockSkillRepo{}
	uc := NewUserUsecase(
		&mockUserRepo{existing: map[uuid.UUID]bool{userID: true}},
		skills,
		&mockAssessmentRepo{},
	)

	item, err := uc.AddUserSkill(context.Background(), userID, AddUserSkillInput{Name: "Go", Level: 7, Category: "backend"})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if item.Level != 7 {
		t.Fatalf("expected level 7, got %d", item.Level)
	}
	if len(skills.created) != 1 || skills.created[0].UserID != userID {
		t.Fatalf("skill not persisted for user")
	}
}

func TestUserUsecase_ListAssessments_UserNotFound(t *testing.T) {
	uc := NewUserUsecase(&mockUserRepo{existing: map[uuid.UUID]bool{}}, &mockSkillRepo{}, &mockAssessmentRepo{})

	_, err := uc.ListAssessments(context.Background(), uuid.New())
	if !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}
