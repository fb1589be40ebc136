package handler

import (
	"errors"
	"strings"
	"time"

	"skillsync-ai/internal/delivery/http/middleware"
	"skillsync-ai/internal/pkg/response"
	"skillsync-ai/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

type AIHandler struct {
	uc usecase.AssessUsecase
}

type assessSkillsRequest struct {
	SkillsDescription string `json:"skills_description"`
	UserID            string `json:"user_id"`
}

type careerGuidanceRequest struct {
	CurrentRole       string `json:"current_role"`
	CareerGoals       string `json:"career_goals"`
	AdditionalContext string `json:"additional_context"`
}

type assessSkillsResponse struct {
	Assessment string `json:"assessment"`
	AIProvider string `json:"ai_provider"`
	Timestamp  string `json:"timestamp"`
	TokensUsed int    `json:"tokens_used"`
}

type careerGuidanceResponse struct {
	CareerGuidance string `json:"career_guidance"`
	AIProvider     string `json:"ai_provider"`
	Timestamp      string `json:"timestamp"`
}

func NewAIHandler(uc usecase.AssessUsecase) *AIHandler {
	return &AIHandler{uc: uc}
}

func (h *AIHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	grp := r.Group("/ai")
	grp.Post("/assess-skills", h.AssessSkills)
	grp.Post("/career-guidance", h.CareerGuidance)
}

func (h *AIHandler) AssessSkills(c fiber.Ctx) error {
	var req assessSkillsRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "invalid request body", err)
	}
	if strings.TrimSpace(req.SkillsDescription) == "" {
		return middleware.NewAppError(fiber.StatusBadRequest, "skills description is required", nil)
	}

	in := usecase.AssessInput{SkillsDescription: req.SkillsDescription}
	if strings.TrimSpace(req.UserID) != "" {
		id, err := uuid.Parse(req.UserID)
		if err != nil {
			return middleware.NewAppError(fiber.StatusBadRequest, "invalid user_id", err)
		}
		in.UserID = &id
	}

	out, err := h.uc.AssessSkills(c.Context(), in)
	if err != nil {
		return mapAssessError(err)
	}

	return response.JSON(c, fiber.StatusOK, assessSkillsResponse{
		Assessment: out.Assessment,
		AIProvider: out.Provider,
		Timestamp:  time.Now().UTC().Format(time.RFC3339),
		TokensUsed: out.TokensUsed,
	})
}

func (h *AIHandler) CareerGuidance(c fiber.Ctx) error {
	var req careerGuidanceRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "invalid request body", err)
	}
	if strings.TrimSpace(req.CurrentRole) == "" || strings.TrimSpace(req.CareerGoals) == "" {
		return middleware.NewAppError(fiber.StatusBadRequest, "current role and career goals are required", nil)
	}

	out, err := h.uc.CareerGuidance(c.Context(), usecase.GuidanceInput{
		CurrentRole:       req.CurrentRole,
		CareerGoals:       req.CareerGoals,
		AdditionalContext: req.AdditionalContext,
	})
	if err != nil {
		return mapAssessError(err)
	}

	return response.JSON(c, fiber.StatusOK, careerGuidanceResponse{
		CareerGuidance: out.Guidance,
		AIProvider:     out.Provider,
		Timestamp:      time.Now().UTC().Format(time.RFC3339),
	})
}

func mapAssessError(err error) error {
	switch {
	case errors.Is(err, usecase.ErrInvalidInput):
		return middleware.NewAppError(fiber.StatusBadRequest, response.MessageBadRequest, err)
	case errors.Is(err, usecase.ErrUserNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "user not found", err)
	case errors.Is(err, usecase.ErrAIUnavailable):
		return middleware.NewAppError(fiber.StatusServiceUnavailable, "ai provider not configured", err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, err)
	}
}
