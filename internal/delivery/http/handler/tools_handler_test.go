package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"skillsync-ai/internal/delivery/http/middleware"
	"skillsync-ai/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

func newToolsTestApp() *fiber.App {
	app := fiber.New()
	app.Use(middleware.NewErrorMiddleware(nil).Middleware())
	NewToolsHandler(usecase.NewToolsUsecase()).RegisterRoutes(app.Group("/api"))
	return app
}

func postJSON(t *testing.T, app *fiber.App, path string, payload any) *http.Response {
	t.Helper()
	body, err := json.Marshal(payload)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	return resp
}

func TestToolsHandler_SkillGap(t *testing.T) {
	app := newToolsTestApp()

	resp := postJSON(t, app, "/api/tools/skill-gap-analyzer", map[string]string{
		"target_role":      "backend",
		"current_skills":   "python, sql, Git",
		"experience_level": "intermediate",
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	var out struct {
		MatchScore      int      `json:"match_score"`
		MatchingSkills  []string `json:"matching_skills"`
		MissingSkills   []string `json:"missing_skills"`
		SuggestedSkills []string `json:"suggested_skills"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if out.MatchScore != 67 {
		t.Fatalf("expected score 67, got %d", out.MatchScore)
	}
	if len(out.MatchingSkills) != 2 || out.MatchingSkills[0] != "Python" || out.MatchingSkills[1] != "SQL" {
		t.Fatalf("unexpected matching skills: %v", out.MatchingSkills)
	}
	if len(out.MissingSkills) != 1 || out.MissingSkills[0] != "REST APIs" {
		t.Fatalf("unexpected missing skills: %v", out.MissingSkills)
	}
	for _, s := range out.SuggestedSkills {
		if s != "Docker" && s != "Kubernetes" {
			t.Fatalf("suggested skill %q outside optional set", s)
		}
	}
}

func TestToolsHandler_SkillGap_UnknownRole(t *testing.T) {
	app := newToolsTestApp()

	resp := postJSON(t, app, "/api/tools/skill-gap-analyzer", map[string]string{
		"target_role":    "astronaut",
		"current_skills": "python",
	})
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.StatusCode)
	}

	var out map[string]string
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(out) != 1 {
		t.Fatalf("error body must carry only the error field, got %v", out)
	}
	if out["error"] != `unknown role: "astronaut"` {
		t.Fatalf("unexpected error message: %q", out["error"])
	}
}

func TestToolsHandler_Salary(t *testing.T) {
	app := newToolsTestApp()

	resp := postJSON(t, app, "/api/tools/salary-calculator", map[string]string{
		"target_role":      "backend",
		"experience_level": "intermediate",
		"location":         "europe",
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	var out struct {
		Currency       string  `json:"currency"`
		MinSalary      int     `json:"min_salary"`
		MedianSalary   int     `json:"median_salary"`
		MaxSalary      int     `json:"max_salary"`
		LocationFactor float64 `json:"location_factor"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if out.Currency != "USD" {
		t.Fatalf("expected USD, got %s", out.Currency)
	}
	if out.LocationFactor != 0.95 {
		t.Fatalf("expected factor 0.95, got %v", out.LocationFactor)
	}
	if !(out.MinSalary < out.MedianSalary && out.MedianSalary < out.MaxSalary) {
		t.Fatalf("expected ascending band, got %d %d %d", out.MinSalary, out.MedianSalary, out.MaxSalary)
	}
}

func TestToolsHandler_ListRoles(t *testing.T) {
	app := newToolsTestApp()

	req := httptest.NewRequest(http.MethodGet, "/api/tools/roles", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	var out struct {
		Roles []string `json:"roles"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(out.Roles) != 7 {
		t.Fatalf("expected 7 roles, got %d", len(out.Roles))
	}
	for i := 1; i < len(out.Roles); i++ {
		if out.Roles[i-1] >= out.Roles[i] {
			t.Fatalf("roles not sorted: %v", out.Roles)
		}
	}
}

func TestToolsHandler_Salary_UnknownRole(t *testing.T) {
	app := newToolsTestApp()

	resp := postJSON(t, app, "/api/tools/salary-calculator", map[string]string{
		"target_role": "wizard",
	})
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.StatusCode)
	}
}
