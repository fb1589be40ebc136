package usecase

import (
	"context"
	"errors"
	"testing"

	"skillsync-ai/internal/infrastructure/ai"

	"github.com/google/uuid"
)

type mockAIClient struct {
	completion ai.Completion
	err        error
	calls      int
}

func (m *mockAIClient) Complete(context.Context, string, string) (ai.Completion, error) {
	m.calls++
	if m.err != nil {
		return ai.Completion{}, m.err
	}
	return m.completion, nil
}

func (m *mockAIClient) Provider() string { return "mock" }

func TestAssessUsecase_AssessSkills_NoClient(t *testing.T) {
	uc := NewAssessUsecase(nil, &mockUserRepo{}, &mockAssessmentRepo{}, nil, nil)

	_, err := uc.AssessSkills(context.Background(), AssessInput{SkillsDescription: "python, flask"})
	if !errors.Is(err, ErrAIUnavailable) {
		t.Fatalf("expected ErrAIUnavailable, got %v", err)
	}
}

func TestAssessUsecase_AssessSkills_EmptyDescription(t *testing.T) {
	uc := NewAssessUsecase(&mockAIClient{}, &mockUserRepo{}, &mockAssessmentRepo{}, nil, nil)

	_, err := uc.AssessSkills(context.Background(), AssessInput{SkillsDescription: "   "})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestAssessUsecase_AssessSkills_Anonymous(t *testing.T) {
	client := &mockAIClient{completion: ai.Completion{Text: "solid backend profile", Provider: "mock", TokensUsed: 42}}
	assessments := &mockAssessmentRepo{}
	uc := NewAssessUsecase(client, &mockUserRepo{}, assessments, nil, nil)

	out, err := uc.AssessSkills(context.Background(), AssessInput{SkillsDescription: "python, flask"})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if out.Assessment != "solid backend profile" || out.TokensUsed != 42 {
		t.Fatalf("unexpected output: %+v", out)
	}
	if len(assessments.created) != 0 {
		t.Fatalf("anonymous assessment must not be persisted")
	}
}

func TestAssessUsecase_AssessSkills_PersistsForUser(t *testing.T) {
	userID := uuid.New()
	client := &mockAIClient{completion: ai.Completion{Text: "result", Provider: "mock"}}
	assessments := &mockAssessmentRepo{}
	uc := NewAssessUsecase(
		client,
		&mockUserRepo{existing: map[uuid.UUID]bool{userID: true}},
		assessments,
		nil,
		nil,
	)

	_, err := uc.AssessSkills(context.Background(), AssessInput{SkillsDescription: "python", UserID: &userID})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(assessments.created) != 1 {
		t.Fatalf("expected 1 persisted assessment, got %d", len(assessments.created))
	}
	if assessments.created[0].UserID != userID {
		t.Fatalf("assessment persisted for wrong user")
	}
}

func TestAssessUsecase_AssessSkills_UserNotFound(t *testing.T) {
	userID := uuid.New()
	uc := NewAssessUsecase(
		&mockAIClient{completion: ai.Completion{Text: "result"}},
		&mockUserRepo{existing: map[uuid.UUID]bool{}},
		&mockAssessmentRepo{},
		nil,
		nil,
	)

	_, err := uc.AssessSkills(context.Background(), AssessInput{SkillsDescription: "python", UserID: &userID})
	if !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestAssessUsecase_CareerGuidance(t *testing.T) {
	client := &mockAIClient{completion: ai.Completion{Text: "become a staff engineer", Provider: "mock"}}
	uc := NewAssessUsecase(client, &mockUserRepo{}, &mockAssessmentRepo{}, nil, nil)

	out, err := uc.CareerGuidance(context.Background(), GuidanceInput{
		CurrentRole: "backend developer",
		CareerGoals: "engineering leadership",
	})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if out.Guidance != "become a staff engineer" {
		t.Fatalf("unexpected guidance: %q", out.Guidance)
	}
}

func TestAssessUsecase_CareerGuidance_MissingFields(t *testing.T) {
	uc := NewAssessUsecase(&mockAIClient{}, &mockUserRepo{}, &mockAssessmentRepo{}, nil, nil)

	_, err := uc.CareerGuidance(context.Background(), GuidanceInput{CurrentRole: "", CareerGoals: "growth"})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}
