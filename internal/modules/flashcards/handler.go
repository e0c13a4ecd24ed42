package flashcards

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/paperdeck/core/internal/modules/normalize"
	"github.com/paperdeck/core/internal/pkg/response"
)

type Handler struct {
	svc        *Service
	normalizer *normalize.Service
}

func NewHandler(svc *Service, normalizer *normalize.Service) *Handler {
	return &Handler{svc: svc, normalizer: normalizer}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/flashcards", h.createFlashcards)
}

// POST /flashcards {input, count?}
func (h *Handler) createFlashcards(c *gin.Context) {
	var dto extractDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	paper, err := h.normalizer.Normalize(c.Request.Context(), dto.Input)
	if err != nil {
		switch {
		case errors.Is(err, normalize.ErrEmptyInput):
			response.BadRequest(c, err.Error())
		case errors.Is(err, normalize.ErrFetch):
			response.BadGateway(c, err)
		default:
			response.InternalError(c, err)
		}
		return
	}

	cards, err := h.svc.Extract(c.Request.Context(), paper, dto.Count)
	if err != nil {
		response.BadGateway(c, err)
		return
	}

	response.OK(c, cards)
}
