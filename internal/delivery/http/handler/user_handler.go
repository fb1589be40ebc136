package handler

import (
	"errors"

	"skillsync-ai/internal/delivery/http/dto"
	"skillsync-ai/internal/delivery/http/middleware"
	"skillsync-ai/internal/pkg/response"
	"skillsync-ai/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

type UserHandler struct {
	uc usecase.UserUsecase
}

type createUserRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
}

type addUserSkillRequest struct {
	Name     string `json:"name"`
	Level    int    `json:"level"`
	Category string `json:"category"`
}

type userSkillListResponse struct {
	Skills []dto.UserSkillResponse `json:"skills"`
}

type assessmentListResponse struct {
	Assessments []dto.AssessmentResponse `json:"assessments"`
}

func NewUserHandler(uc usecase.UserUsecase) *UserHandler {
	return &UserHandler{uc: uc}
}

func (h *UserHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Post("/users", h.CreateUser)
	r.Get("/users/:user_id/skills", h.ListSkills)
	r.Post("/users/:user_id/skills", h.AddSkill)
	r.Get("/users/:user_id/assessments", h.ListAssessments)
}

func (h *UserHandler) CreateUser(c fiber.Ctx) error {
	var req createUserRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "invalid request body", err)
	}

	item, err := h.uc.CreateUser(c.Context(), usecase.CreateUserInput{
		Username: req.Username,
		Email:    req.Email,
	})
	if err != nil {
		return mapUserError(err)
	}

	return response.JSON(c, fiber.StatusCreated, dto.UserResponse{
		ID:        item.ID,
		Username:  item.Username,
		Email:     item.Email,
		CreatedAt: dto.FormatTime(item.CreatedAt),
	})
}

func (h *UserHandler) ListSkills(c fiber.Ctx) error {
	userID, err := parseUserID(c)
	if err != nil {
		return err
	}

	items, err := h.uc.ListUserSkills(c.Context(), userID)
	if err != nil {
		return mapUserError(err)
	}

	out := make([]dto.UserSkillResponse, 0, len(items))
	for _, it := range items {
		out = append(out, dto.UserSkillResponse{
			ID:        it.ID,
			Name:      it.Name,
			Level:     it.Level,
			Category:  it.Category,
			CreatedAt: dto.FormatTime(it.CreatedAt),
		})
	}
	return response.JSON(c, fiber.StatusOK, userSkillListResponse{Skills: out})
}

func (h *UserHandler) AddSkill(c fiber.Ctx) error {
	userID, err := parseUserID(c)
	if err != nil {
		return err
	}

	var req addUserSkillRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "invalid request body", err)
	}

	item, err := h.uc.AddUserSkill(c.Context(), userID, usecase.AddUserSkillInput{
		Name:     req.Name,
		Level:    req.Level,
		Category: req.Category,
	})
	if err != nil {
		return mapUserError(err)
	}

	return response.JSON(c, fiber.StatusCreated, dto.UserSkillResponse{
		ID:        item.ID,
		Name:      item.Name,
		Level:     item.Level,
		Category:  item.Category,
		CreatedAt: dto.FormatTime(item.CreatedAt),
	})
}

func (h *UserHandler) ListAssessments(c fiber.Ctx) error {
	userID, err := parseUserID(c)
	if err != nil {
		return err
	}

	items, err := h.uc.ListAssessments(c.Context(), userID)
	if err != nil {
		return mapUserError(err)
	}

	out := make([]dto.AssessmentResponse, 0, len(items))
	for _, it := range items {
		out = append(out, dto.AssessmentResponse{
			ID:                it.ID,
			SkillsDescription: it.SkillsDescription,
			AIAssessment:      it.AIAssessment,
			AIProvider:        it.AIProvider,
			CreatedAt:         dto.FormatTime(it.CreatedAt),
		})
	}
	return response.JSON(c, fiber.StatusOK, assessmentListResponse{Assessments: out})
}

func parseUserID(c fiber.Ctx) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Params("user_id"))
	if err != nil {
		return uuid.Nil, middleware.NewAppError(fiber.StatusBadRequest, "invalid user_id", err)
	}
	return id, nil
}

func mapUserError(err error) error {
	switch {
	case errors.Is(err, usecase.ErrInvalidSkillLevel):
		return middleware.NewAppError(fiber.StatusBadRequest, "skill level must be between 1 and 10", err)
	case errors.Is(err, usecase.ErrInvalidInput):
		return middleware.NewAppError(fiber.StatusBadRequest, response.MessageBadRequest, err)
	case errors.Is(err, usecase.ErrUserNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "user not found", err)
	case errors.Is(err, usecase.ErrEmailAlreadyRegistered):
		return middleware.NewAppError(fiber.StatusConflict, "email already registered", err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, err)
	}
}
