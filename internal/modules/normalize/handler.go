package normalize

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/paperdeck/core/internal/pkg/response"
)

type Handler struct{ svc *Service }

func NewHandler(svc *Service) *Handler { return &Handler{svc: svc} }

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/normalize", h.normalizeInput)
}

type normalizeDTO struct {
	Input string `json:"input" binding:"required"`
}

// POST /normalize {input} — resolve an arXiv link or pass raw text through.
func (h *Handler) normalizeInput(c *gin.Context) {
	var dto normalizeDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	paper, err := h.svc.Normalize(c.Request.Context(), dto.Input)
	if err != nil {
		switch {
		case errors.Is(err, ErrEmptyInput):
			response.BadRequest(c, err.Error())
		case errors.Is(err, ErrFetch):
			response.BadGateway(c, err)
		default:
			response.InternalError(c, err)
		}
		return
	}

	response.OK(c, paper)
}
