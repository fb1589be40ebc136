package app

import (
	"context"
	"log"
	"time"

	"skillsync-ai/internal/config"
	"skillsync-ai/internal/database"
	dbpostgres "skillsync-ai/internal/database/postgres"
	"skillsync-ai/internal/infrastructure/ai"
	"skillsync-ai/internal/infrastructure/cache"
	"skillsync-ai/internal/pkg/jwt"
	"skillsync-ai/internal/ws"
)

const (
	aiStatusGrokReady   = "xAI Grok Ready"
	aiStatusGeminiReady = "Gemini Ready"
	aiStatusKeyRequired = "AI API Key Required"
)

type Container struct {
	Config config.Config
	Logger *log.Logger

	// DB is nil when no database is configured; the server then serves
	// only the stateless routes.
	DB    database.DB
	Cache *cache.Redis
	JWT   jwt.Service
	Hub   *ws.Hub

	AI       ai.Client
	AIStatus string
}

func NewContainer(ctx context.Context, cfg config.Config, logger *log.Logger) (*Container, error) {
	if logger == nil {
		logger = log.Default()
	}

	c := &Container{
		Config:   cfg,
		Logger:   logger,
		Cache:    cache.NewRedis(logger),
		Hub:      ws.NewHub(logger),
		AIStatus: aiStatusKeyRequired,
	}

	if cfg.HasDatabase() {
		connCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
		defer cancel()

		db, err := dbpostgres.Connect(connCtx, cfg.Database)
		if err != nil {
			return nil, err
		}
		c.DB = db
	} else {
		logger.Printf("[App] no database configured, persistence routes disabled")
	}

	if cfg.JWT.AccessSecret != "" && cfg.JWT.RefreshSecret != "" {
		c.JWT = jwt.NewHMACService(
			cfg.JWT.AccessSecret,
			cfg.JWT.RefreshSecret,
			cfg.JWT.AccessExpiresIn,
			cfg.JWT.RefreshExpiresIn,
		)
	}

	switch {
	case cfg.AI.XAIAPIKey != "":
		c.AI = ai.NewGrokClient(cfg.AI.XAIAPIKey, cfg.AI.XAIModel, logger)
		c.AIStatus = aiStatusGrokReady
	case cfg.AI.GeminiAPIKey != "":
		client, err := ai.NewGeminiClient(ctx, cfg.AI.GeminiAPIKey, cfg.AI.GeminiModel)
		if err != nil {
			return nil, err
		}
		c.AI = client
		c.AIStatus = aiStatusGeminiReady
	}

	ws.SetDefaultHub(c.Hub)

	return c, nil
}

func (c *Container) Close() error {
	if c == nil || c.DB == nil {
		return nil
	}
	return c.DB.Close()
}
