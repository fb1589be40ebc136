package app

import (
	"fmt"
	"strings"

	"skillsync-ai/internal/delivery/http/handler"
	"skillsync-ai/internal/delivery/http/middleware"
	"skillsync-ai/internal/delivery/http/routes"
	"skillsync-ai/internal/repository"
	"skillsync-ai/internal/scraper"
	"skillsync-ai/internal/usecase"
	"skillsync-ai/internal/ws"

	"github.com/gofiber/fiber/v3"
)

type App struct {
	Fiber     *fiber.App
	Container *Container
}

func New(c *Container) *App {
	f := fiber.New(fiber.Config{
		AppName: c.Config.App.AppName,
	})

	registerGlobalMiddleware(f, c)
	routes.Register(f, buildRouteDeps(c))

	return &App{Fiber: f, Container: c}
}

func registerGlobalMiddleware(f *fiber.App, c *Container) {
	if f == nil {
		return
	}
	f.Use(middleware.NewAccessLogMiddleware(c.Logger).Middleware())
	f.Use(middleware.NewErrorMiddleware(c.Logger).Middleware())
}

func buildRouteDeps(c *Container) routes.Deps {
	deps := routes.Deps{
		Health: handler.NewHealthHandler(c.AIStatus),
		Tools:  handler.NewToolsHandler(usecase.NewToolsUsecase()),
		WS:     ws.NewHandler(c.Hub, c.Logger),
	}

	var users repository.UserRepository
	var assessments repository.AssessmentRepository
	if c.DB != nil {
		users = repository.NewPostgresUserRepository(c.DB)
		assessments = repository.NewPostgresAssessmentRepository(c.DB)
	}

	deps.AI = handler.NewAIHandler(usecase.NewAssessUsecase(c.AI, users, assessments, c.Cache, c.Logger))

	if c.DB != nil {
		skills := repository.NewPostgresUserSkillRepository(c.DB)
		jobs := repository.NewPostgresJobRepository(c.DB)
		scrapers := []usecase.JobSourceScraper{
			scraper.NewRemoteOKScraper(jobs, c.Logger),
			scraper.NewWWRScraper(jobs, c.Logger),
		}

		deps.Users = handler.NewUserHandler(usecase.NewUserUsecase(users, skills, assessments))
		deps.Jobs = handler.NewJobsHandler(usecase.NewJobsUsecase(jobs, c.Cache, scrapers, c.Logger))

		if c.JWT != nil {
			deps.Auth = handler.NewAuthHandler(usecase.NewAuthUsecase(users, c.JWT))
			deps.RequireAuth = middleware.NewAuthMiddleware(c.JWT).Middleware()
		}
	}

	return deps
}

func ListenAddr(port string) (string, error) {
	p := strings.TrimSpace(port)
	if p == "" {
		return "", fmt.Errorf("empty HTTP port")
	}
	if strings.HasPrefix(p, ":") {
		return p, nil
	}
	return ":" + p, nil
}
