package http

import (
	"github.com/gin-gonic/gin"
	"github.com/guttosm/spool-service/internal/domain/dto"
	"github.com/guttosm/spool-service/internal/service"
)

// SummaryHandler serves the inventory summary.
type SummaryHandler struct {
	summary service.SummaryService
}

// NewSummaryHandler creates a new SummaryHandler instance.
func NewSummaryHandler(summary service.SummaryService) *SummaryHandler {
	return &SummaryHandler{summary: summary}
}

// Summary handles GET /api/summary requests.
//
// @Summary      Remaining filament grouped by material and color
// @Description  Groups active spools by material and color signature and totals their remaining weight. Vendor and filament names only label a group.
// @Tags         Summary
// @Produce      json
// @Success      200 {object} dto.SuccessResponse{data=dto.SummaryResponse}
// @Failure      503 {object} dto.ErrorResponse "Database unavailable"
// @Security     ApiKeyAuth
// @Router       /api/summary [get]
func (h *SummaryHandler) Summary(c *gin.Context) {
	builder := NewResponseBuilder(c)

	summary, err := h.summary.Summary(c.Request.Context())
	if err != nil {
		respondError(builder, err, "")
		return
	}
	builder.SuccessOK(dto.NewSummaryResponse(summary))
}
