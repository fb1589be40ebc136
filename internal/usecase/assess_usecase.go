package usecase

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"log"
	"strings"
	"time"

	"skillsync-ai/internal/infrastructure/ai"
	"skillsync-ai/internal/infrastructure/cache"
	"skillsync-ai/internal/repository"
	"skillsync-ai/internal/ws"

	"github.com/google/uuid"
)

const assessSystemPrompt = `You are an expert career advisor and skills assessor.
Analyze the provided skills description and provide:
1. Skill categories and proficiency levels (1-10 scale)
2. Strengths and areas for improvement
3. Career recommendations
4. Learning path suggestions
5. Market demand insights

Provide structured, actionable insights.`

const guidanceSystemPrompt = `You are a career guidance expert. Provide personalized career advice including:
1. Career transition roadmap
2. Skills gap analysis
3. Industry insights and trends
4. Networking recommendations
5. Timeline and milestones

Be specific, actionable, and encouraging.`

type AssessInput struct {
	SkillsDescription string
	UserID            *uuid.UUID
}

type AssessOutput struct {
	Assessment string
	Provider   string
	TokensUsed int
	Cached     bool
}

type GuidanceInput struct {
	CurrentRole       string
	CareerGoals       string
	AdditionalContext string
}

type GuidanceOutput struct {
	Guidance string
	Provider string
}

type AssessUsecase interface {
	AssessSkills(ctx context.Context, in AssessInput) (AssessOutput, error)
	CareerGuidance(ctx context.Context, in GuidanceInput) (GuidanceOutput, error)
}

type Assess struct {
	client      ai.Client
	users       repository.UserRepository
	assessments repository.AssessmentRepository
	cache       *cache.Redis
	logger      *log.Logger
}

func NewAssessUsecase(client ai.Client, users repository.UserRepository, assessments repository.AssessmentRepository, c *cache.Redis, logger *log.Logger) *Assess {
	if logger == nil {
		logger = log.Default()
	}
	return &Assess{client: client, users: users, assessments: assessments, cache: c, logger: logger}
}

func (u *Assess) AssessSkills(ctx context.Context, in AssessInput) (AssessOutput, error) {
	desc := strings.TrimSpace(in.SkillsDescription)
	if desc == "" {
		return AssessOutput{}, ErrInvalidInput
	}
	if u.client == nil {
		return AssessOutput{}, ErrAIUnavailable
	}

	if in.UserID != nil {
		if u.users == nil || u.assessments == nil {
			return AssessOutput{}, ErrInternal
		}
		exists, err := u.users.ExistsByID(ctx, *in.UserID)
		if err != nil {
			return AssessOutput{}, ErrInternal
		}
		if !exists {
			return AssessOutput{}, ErrUserNotFound
		}
	}

	key := assessCacheKey(u.client.Provider(), desc)
	var cached AssessOutput
	if ok, _ := u.cache.GetJSON(ctx, key, &cached); ok && cached.Assessment != "" {
		cached.Cached = true
		out := cached
		if err := u.persist(ctx, in.UserID, desc, out); err != nil {
			return AssessOutput{}, err
		}
		return out, nil
	}

	completion, err := u.client.Complete(ctx, assessSystemPrompt, "Please assess these skills and provide detailed analysis: "+desc)
	if err != nil {
		u.logger.Printf("[AI] skills assessment failed: %v", err)
		return AssessOutput{}, ErrInternal
	}

	out := AssessOutput{
		Assessment: completion.Text,
		Provider:   completion.Provider,
		TokensUsed: completion.TokensUsed,
	}

	_ = u.cache.SetJSON(ctx, key, out, 0)

	if err := u.persist(ctx, in.UserID, desc, out); err != nil {
		return AssessOutput{}, err
	}
	return out, nil
}

func (u *Assess) persist(ctx context.Context, userID *uuid.UUID, desc string, out AssessOutput) error {
	if userID == nil {
		return nil
	}
	err := u.assessments.Create(ctx, repository.Assessment{
		ID:                uuid.New(),
		UserID:            *userID,
		SkillsDescription: desc,
		AIAssessment:      out.Assessment,
		AIProvider:        out.Provider,
		CreatedAt:         time.Now().UTC(),
	})
	if err != nil {
		return ErrInternal
	}
	ws.NotifyAssessmentCompleted(*userID, out.Provider)
	return nil
}

func (u *Assess) CareerGuidance(ctx context.Context, in GuidanceInput) (GuidanceOutput, error) {
	currentRole := strings.TrimSpace(in.CurrentRole)
	goals := strings.TrimSpace(in.CareerGoals)
	if currentRole == "" || goals == "" {
		return GuidanceOutput{}, ErrInvalidInput
	}
	if u.client == nil {
		return GuidanceOutput{}, ErrAIUnavailable
	}

	extra := strings.TrimSpace(in.AdditionalContext)
	if extra == "" {
		extra = "None provided"
	}

	prompt := "Current role: " + currentRole + ". Career goals: " + goals + ". Additional context: " + extra
	completion, err := u.client.Complete(ctx, guidanceSystemPrompt, prompt)
	if err != nil {
		u.logger.Printf("[AI] career guidance failed: %v", err)
		return GuidanceOutput{}, ErrInternal
	}

	return GuidanceOutput{Guidance: completion.Text, Provider: completion.Provider}, nil
}

func assessCacheKey(provider, desc string) string {
	sum := sha256.Sum256([]byte(desc))
	return "ai:assess:" + strings.ToLower(strings.ReplaceAll(provider, " ", "-")) + ":" + hex.EncodeToString(sum[:])
}
