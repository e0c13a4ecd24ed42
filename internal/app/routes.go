package app

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/paperdeck/core/internal/modules/ai"
	"github.com/paperdeck/core/internal/modules/flashcards"
	"github.com/paperdeck/core/internal/modules/normalize"
	"github.com/paperdeck/core/internal/modules/summary"
	"github.com/paperdeck/core/internal/pkg/response"
	"github.com/paperdeck/core/internal/web"
)

func (a *App) registerRoutes(aiClient *ai.Client, normalizeSvc *normalize.Service) {
	r := a.router

	r.NoRoute(func(c *gin.Context) {
		response.NotFound(c)
	})
	r.NoMethod(func(c *gin.Context) {
		response.MethodNotAllowed(c)
	})

	web.RegisterRoutes(r)

	summarySvc := summary.NewService(aiClient, a.cfg.AI)
	flashcardsSvc := flashcards.NewService(aiClient, a.cfg.AI)

	api := r.Group("/api/v1")

	api.GET("/health", func(c *gin.Context) {
		response.OK(c, gin.H{
			"name":    "paperdeck-core",
			"version": "1.0.0",
			"uptime":  time.Since(processStart).Truncate(time.Second).String(),
		})
	})

	normalize.NewHandler(normalizeSvc).RegisterRoutes(api)
	summary.NewHandler(summarySvc, normalizeSvc).RegisterRoutes(api)
	flashcards.NewHandler(flashcardsSvc, normalizeSvc).RegisterRoutes(api)
	ai.NewHandler(aiClient).RegisterRoutes(api)
}
