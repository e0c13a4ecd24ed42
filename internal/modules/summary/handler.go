package summary

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/paperdeck/core/internal/modules/normalize"
	"github.com/paperdeck/core/internal/pkg/markdown"
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
	rg.POST("/summaries", h.createSummary)
}

// POST /summaries {input, level}
func (h *Handler) createSummary(c *gin.Context) {
	var dto summarizeDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	level, err := ParseLevel(dto.Level)
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	paper, err := h.normalizer.Normalize(c.Request.Context(), dto.Input)
	if err != nil {
		writeNormalizeError(c, err)
		return
	}

	result, err := h.svc.Summarize(c.Request.Context(), paper, level)
	if err != nil {
		response.BadGateway(c, err)
		return
	}

	response.OK(c, summaryResponse{
		Level:   result.Level,
		Text:    result.Text,
		HTML:    markdown.Render(result.Text),
		Title:   paper.Title,
		ArxivID: paper.ArxivID,
	})
}

func writeNormalizeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, normalize.ErrEmptyInput):
		response.BadRequest(c, err.Error())
	case errors.Is(err, normalize.ErrFetch):
		response.BadGateway(c, err)
	default:
		response.InternalError(c, err)
	}
}
