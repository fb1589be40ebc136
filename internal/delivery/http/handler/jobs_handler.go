package handler

import (
	"errors"
	"strconv"
	"strings"

	"skillsync-ai/internal/delivery/http/middleware"
	"skillsync-ai/internal/pkg/response"
	"skillsync-ai/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type JobsHandler struct {
	uc usecase.JobsUsecase
}

type jobListResponse struct {
	Jobs  []usecase.JobItem `json:"jobs"`
	Count int               `json:"count"`
}

func NewJobsHandler(uc usecase.JobsUsecase) *JobsHandler {
	return &JobsHandler{uc: uc}
}

// RegisterRoutes mounts the listing behind auth when a token service is
// configured; without one the listing stays open and refresh is not
// exposed at all.
func (h *JobsHandler) RegisterRoutes(r fiber.Router, requireAuth fiber.Handler) {
	if r == nil {
		return
	}
	if requireAuth != nil {
		r.Get("/jobs", h.ListJobs, requireAuth)
		r.Post("/jobs/refresh", h.RefreshJobs, requireAuth)
		return
	}
	r.Get("/jobs", h.ListJobs)
}

func (h *JobsHandler) ListJobs(c fiber.Ctx) error {
	limit, err := parseQueryInt(c, "limit", 20)
	if err != nil {
		return err
	}
	offset, err := parseQueryInt(c, "offset", 0)
	if err != nil {
		return err
	}

	items, err := h.uc.ListJobs(c.Context(), usecase.JobListParams{
		Query:    c.Query("q"),
		Location: c.Query("location"),
		Limit:    limit,
		Offset:   offset,
	})
	if err != nil {
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, err)
	}

	return response.JSON(c, fiber.StatusOK, jobListResponse{Jobs: items, Count: len(items)})
}

type refreshResponse struct {
	Status string `json:"status"`
}

func (h *JobsHandler) RefreshJobs(c fiber.Ctx) error {
	if err := h.uc.RefreshJobs(c.Query("q")); err != nil {
		if errors.Is(err, usecase.ErrRefreshInProgress) {
			return middleware.NewAppError(fiber.StatusConflict, err.Error(), err)
		}
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, err)
	}
	return response.JSON(c, fiber.StatusAccepted, refreshResponse{Status: "refresh started"})
}

func parseQueryInt(c fiber.Ctx, name string, def int) (int, error) {
	raw := strings.TrimSpace(c.Query(name))
	if raw == "" {
		return def, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v < 0 {
		return 0, middleware.NewAppError(fiber.StatusBadRequest, "invalid "+name, err)
	}
	return v, nil
}
