package http

import (
	"github.com/gin-gonic/gin"
	"github.com/guttosm/spool-service/internal/domain/dto"
	"github.com/guttosm/spool-service/internal/domain/model"
	"github.com/guttosm/spool-service/internal/i18n"
	"github.com/guttosm/spool-service/internal/middleware"
	"github.com/guttosm/spool-service/internal/service"
)

// SpoolHandler serves /api/spools.
type SpoolHandler struct {
	spools service.SpoolService
}

// NewSpoolHandler creates a new SpoolHandler instance.
func NewSpoolHandler(spools service.SpoolService) *SpoolHandler {
	return &SpoolHandler{spools: spools}
}

// List handles GET /api/spools requests.
//
// @Summary      List spools
// @Description  Returns spools with filament and vendor expanded. Archived spools are hidden unless allow_archived is set.
// @Tags         Spools
// @Produce      json
// @Param        allow_archived query bool   false "Include archived spools"
// @Param        filament_id    query string false "Only spools of this filament"
// @Param        limit          query int    false "Page size (default 100, max 1000)"
// @Param        offset         query int    false "Number of spools to skip"
// @Success      200 {object} dto.SuccessResponse{data=[]model.Spool}
// @Failure      400 {object} dto.ErrorResponse "Invalid query parameter"
// @Security     ApiKeyAuth
// @Router       /api/spools [get]
func (h *SpoolHandler) List(c *gin.Context) {
	builder := NewResponseBuilder(c)

	limit, offset, err := pageParams(c, "offset")
	if err != nil {
		respondError(builder, err, "")
		return
	}
	archived, err := boolQuery(c, "allow_archived")
	if err != nil {
		respondError(builder, err, "")
		return
	}
	filamentID, err := idQuery(c, "filament_id")
	if err != nil {
		respondError(builder, err, "")
		return
	}

	spools, err := h.spools.List(c.Request.Context(), model.SpoolQuery{
		FilamentID:      filamentID,
		IncludeArchived: archived,
		Limit:           limit,
		Skip:            offset,
	})
	if err != nil {
		respondError(builder, err, "")
		return
	}
	builder.SuccessOK(spools)
}

// Get handles GET /api/spools/{id} requests.
//
// @Summary      Get spool
// @Tags         Spools
// @Produce      json
// @Param        id path string true "Spool ID"
// @Success      200 {object} dto.SuccessResponse{data=model.Spool}
// @Failure      400 {object} dto.ErrorResponse "Malformed ID"
// @Failure      404 {object} dto.ErrorResponse "Spool not found"
// @Security     ApiKeyAuth
// @Router       /api/spools/{id} [get]
func (h *SpoolHandler) Get(c *gin.Context) {
	builder := NewResponseBuilder(c)

	id, err := pathID(c)
	if err != nil {
		respondError(builder, err, "")
		return
	}

	spool, err := h.spools.Get(c.Request.Context(), id)
	if err != nil {
		respondError(builder, err, "")
		return
	}
	builder.SuccessOK(spool)
}

// Create handles POST /api/spools requests.
//
// @Summary      Create spool
// @Description  remaining_weight defaults to the filament's net weight
// @Tags         Spools
// @Accept       json
// @Produce      json
// @Param        Idempotency-Key header string false "Replay protection key"
// @Param        request body dto.CreateSpoolRequest true "Spool"
// @Success      201 {object} dto.SuccessResponse{data=model.Spool}
// @Failure      400 {object} dto.ErrorResponse "Validation failed"
// @Failure      404 {object} dto.ErrorResponse "Filament not found"
// @Security     ApiKeyAuth
// @Router       /api/spools [post]
func (h *SpoolHandler) Create(c *gin.Context) {
	builder := NewResponseBuilder(c)

	req, err := BindJSON[dto.CreateSpoolRequest](c)
	if err != nil {
		respondBindError(builder, err)
		return
	}

	spool, err := h.spools.Create(c.Request.Context(), *req)
	if err != nil {
		respondError(builder, err, "")
		return
	}

	middleware.Audit(c, middleware.AuditEvent{
		Action:     "create_spool",
		Resource:   "spool",
		ResourceID: spool.ID.Hex(),
		Message:    "Spool created",
		Fields: map[string]interface{}{
			"filament_id":      spool.FilamentID.Hex(),
			"remaining_weight": model.ValueOrZero(spool.RemainingWeight),
		},
	})
	builder.Created(c.FullPath()+"/"+spool.ID.Hex(), spool)
}

// Update handles PATCH /api/spools/{id} requests.
//
// @Summary      Update spool
// @Description  Also archives or restores a spool through the archived field
// @Tags         Spools
// @Accept       json
// @Produce      json
// @Param        id path string true "Spool ID"
// @Param        request body dto.UpdateSpoolRequest true "Fields to change"
// @Success      200 {object} dto.SuccessResponse{data=model.Spool}
// @Failure      400 {object} dto.ErrorResponse "Validation failed"
// @Failure      404 {object} dto.ErrorResponse "Spool or filament not found"
// @Security     ApiKeyAuth
// @Router       /api/spools/{id} [patch]
func (h *SpoolHandler) Update(c *gin.Context) {
	builder := NewResponseBuilder(c)

	id, err := pathID(c)
	if err != nil {
		respondError(builder, err, "")
		return
	}
	req, err := BindJSON[dto.UpdateSpoolRequest](c)
	if err != nil {
		respondBindError(builder, err)
		return
	}

	spool, err := h.spools.Update(c.Request.Context(), id, *req)
	if err != nil {
		respondError(builder, err, "")
		return
	}

	action := "update_spool"
	if req.Archived != nil {
		if *req.Archived {
			action = "archive_spool"
		} else {
			action = "restore_spool"
		}
	}
	middleware.Audit(c, middleware.AuditEvent{
		Action:     action,
		Resource:   "spool",
		ResourceID: id.Hex(),
		Message:    "Spool updated",
	})
	builder.SuccessOK(spool)
}

// Use handles POST /api/spools/{id}/use requests.
//
// @Summary      Use filament
// @Description  Subtracts use_weight grams from the spool. The remaining weight stops at zero.
// @Tags         Spools
// @Accept       json
// @Produce      json
// @Param        id path string true "Spool ID"
// @Param        Idempotency-Key header string false "Replay protection key"
// @Param        request body dto.UseSpoolRequest true "Consumed grams"
// @Success      200 {object} dto.SuccessResponse{data=model.Spool}
// @Failure      400 {object} dto.ErrorResponse "use_weight must be positive"
// @Failure      404 {object} dto.ErrorResponse "Spool not found"
// @Failure      409 {object} dto.ErrorResponse "Spool is archived"
// @Security     ApiKeyAuth
// @Router       /api/spools/{id}/use [post]
func (h *SpoolHandler) Use(c *gin.Context) {
	builder := NewResponseBuilder(c)

	id, err := pathID(c)
	if err != nil {
		respondError(builder, err, "")
		return
	}
	req, err := BindJSON[dto.UseSpoolRequest](c)
	if err != nil {
		respondBindError(builder, err)
		return
	}

	ev := middleware.AuditEvent{
		Action:     "use_spool",
		Resource:   "spool",
		ResourceID: id.Hex(),
		Message:    i18n.GetTranslator().Translate(i18n.SuccessKeySpoolUsed, i18n.DefaultLocale),
		Fields:     map[string]interface{}{"use_weight": req.UseWeight},
	}
	spool, err := h.spools.Use(c.Request.Context(), id, req.UseWeight)
	if err != nil {
		middleware.AuditError(c, ev, err)
		respondError(builder, err, i18n.ErrKeySpoolArchived)
		return
	}

	ev.Fields["remaining_weight"] = model.ValueOrZero(spool.RemainingWeight)
	middleware.Audit(c, ev)
	builder.SuccessOK(spool)
}

// Delete handles DELETE /api/spools/{id} requests.
//
// @Summary      Delete spool
// @Tags         Spools
// @Param        id path string true "Spool ID"
// @Success      204
// @Failure      404 {object} dto.ErrorResponse "Spool not found"
// @Security     ApiKeyAuth
// @Router       /api/spools/{id} [delete]
func (h *SpoolHandler) Delete(c *gin.Context) {
	builder := NewResponseBuilder(c)

	id, err := pathID(c)
	if err != nil {
		respondError(builder, err, "")
		return
	}

	if err := h.spools.Delete(c.Request.Context(), id); err != nil {
		respondError(builder, err, "")
		return
	}

	middleware.Audit(c, middleware.AuditEvent{
		Action:     "delete_spool",
		Resource:   "spool",
		ResourceID: id.Hex(),
		Message:    "Spool deleted",
	})
	builder.NoContent()
}
