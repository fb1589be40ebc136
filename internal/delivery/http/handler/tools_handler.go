package handler

import (
	"errors"

	"skillsync-ai/internal/delivery/http/dto"
	"skillsync-ai/internal/delivery/http/middleware"
	"skillsync-ai/internal/domain/skillgap"
	"skillsync-ai/internal/pkg/response"
	"skillsync-ai/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type ToolsHandler struct {
	uc usecase.ToolsUsecase
}

type skillGapRequest struct {
	TargetRole      string `json:"target_role"`
	CurrentSkills   string `json:"current_skills"`
	ExperienceLevel string `json:"experience_level"`
}

type salaryRequest struct {
	TargetRole      string `json:"target_role"`
	ExperienceLevel string `json:"experience_level"`
	Location        string `json:"location"`
}

func NewToolsHandler(uc usecase.ToolsUsecase) *ToolsHandler {
	return &ToolsHandler{uc: uc}
}

func (h *ToolsHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	grp := r.Group("/tools")
	grp.Get("/roles", h.ListRoles)
	grp.Post("/skill-gap-analyzer", h.AnalyzeSkillGap)
	grp.Post("/salary-calculator", h.CalculateSalary)
}

type rolesResponse struct {
	Roles []string `json:"roles"`
}

// ListRoles backs the role dropdowns; the set is the closed enumeration
// both tools validate against.
func (h *ToolsHandler) ListRoles(c fiber.Ctx) error {
	return response.JSON(c, fiber.StatusOK, rolesResponse{Roles: skillgap.RoleIDs()})
}

func (h *ToolsHandler) AnalyzeSkillGap(c fiber.Ctx) error {
	var req skillGapRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "invalid request body", err)
	}

	res, err := h.uc.AnalyzeSkillGap(c.Context(), usecase.SkillGapInput{
		TargetRole:      req.TargetRole,
		CurrentSkills:   req.CurrentSkills,
		ExperienceLevel: req.ExperienceLevel,
	})
	if err != nil {
		if errors.Is(err, skillgap.ErrUnknownRole) {
			return middleware.NewAppError(fiber.StatusBadRequest, err.Error(), err)
		}
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, err)
	}

	return response.JSON(c, fiber.StatusOK, dto.SkillGapResponse{
		MatchScore:      res.MatchScore,
		MatchingSkills:  res.MatchingSkills,
		MissingSkills:   res.MissingSkills,
		SuggestedSkills: res.SuggestedSkills,
	})
}

func (h *ToolsHandler) CalculateSalary(c fiber.Ctx) error {
	var req salaryRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "invalid request body", err)
	}

	est, err := h.uc.CalculateSalary(c.Context(), usecase.SalaryInput{
		TargetRole:      req.TargetRole,
		ExperienceLevel: req.ExperienceLevel,
		Location:        req.Location,
	})
	if err != nil {
		if errors.Is(err, skillgap.ErrUnknownRole) {
			return middleware.NewAppError(fiber.StatusBadRequest, err.Error(), err)
		}
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, err)
	}

	return response.JSON(c, fiber.StatusOK, dto.SalaryResponse{
		Currency:       est.Currency,
		MinSalary:      est.Min,
		MedianSalary:   est.Median,
		MaxSalary:      est.Max,
		LocationFactor: est.LocationFactor,
	})
}
