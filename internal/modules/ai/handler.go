package ai

import (
	"github.com/gin-gonic/gin"

	"github.com/paperdeck/core/internal/pkg/response"
)

type Handler struct{ client *Client }

func NewHandler(client *Client) *Handler { return &Handler{client: client} }

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	g := rg.Group("/ai")
	g.GET("/models", h.listModels)
}

// GET /ai/models — enumerate configured providers and their model lists.
func (h *Handler) listModels(c *gin.Context) {
	response.OK(c, h.client.ListProviderModels())
}
