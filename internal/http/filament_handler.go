package http

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/spool-service/internal/domain/dto"
	"github.com/guttosm/spool-service/internal/domain/model"
	"github.com/guttosm/spool-service/internal/i18n"
	"github.com/guttosm/spool-service/internal/middleware"
	"github.com/guttosm/spool-service/internal/service"
)

// FilamentHandler serves /api/filaments.
type FilamentHandler struct {
	filaments service.FilamentService
}

// NewFilamentHandler creates a new FilamentHandler instance.
func NewFilamentHandler(filaments service.FilamentService) *FilamentHandler {
	return &FilamentHandler{filaments: filaments}
}

// List handles GET /api/filaments requests.
//
// @Summary      List filaments
// @Description  Returns filaments with their vendor expanded
// @Tags         Filaments
// @Produce      json
// @Param        vendor_id query string false "Only filaments of this vendor"
// @Param        material  query string false "Only filaments of this material"
// @Param        limit     query int    false "Page size (default 100, max 1000)"
// @Param        offset    query int    false "Number of filaments to skip"
// @Success      200 {object} dto.SuccessResponse{data=[]model.Filament}
// @Failure      400 {object} dto.ErrorResponse "Invalid query parameter"
// @Security     ApiKeyAuth
// @Router       /api/filaments [get]
func (h *FilamentHandler) List(c *gin.Context) {
	builder := NewResponseBuilder(c)

	limit, offset, err := pageParams(c, "offset")
	if err != nil {
		respondError(builder, err, "")
		return
	}
	vendorID, err := idQuery(c, "vendor_id")
	if err != nil {
		respondError(builder, err, "")
		return
	}

	filaments, err := h.filaments.List(c.Request.Context(), model.FilamentQuery{
		VendorID: vendorID,
		Material: strings.TrimSpace(c.Query("material")),
		Limit:    limit,
		Skip:     offset,
	})
	if err != nil {
		respondError(builder, err, "")
		return
	}
	builder.SuccessOK(filaments)
}

// Get handles GET /api/filaments/{id} requests.
//
// @Summary      Get filament
// @Tags         Filaments
// @Produce      json
// @Param        id path string true "Filament ID"
// @Success      200 {object} dto.SuccessResponse{data=model.Filament}
// @Failure      400 {object} dto.ErrorResponse "Malformed ID"
// @Failure      404 {object} dto.ErrorResponse "Filament not found"
// @Security     ApiKeyAuth
// @Router       /api/filaments/{id} [get]
func (h *FilamentHandler) Get(c *gin.Context) {
	builder := NewResponseBuilder(c)

	id, err := pathID(c)
	if err != nil {
		respondError(builder, err, "")
		return
	}

	filament, err := h.filaments.Get(c.Request.Context(), id)
	if err != nil {
		respondError(builder, err, "")
		return
	}
	builder.SuccessOK(filament)
}

// Create handles POST /api/filaments requests.
//
// @Summary      Create filament
// @Description  Color hex values are stored without '#' and upper-cased
// @Tags         Filaments
// @Accept       json
// @Produce      json
// @Param        Idempotency-Key header string false "Replay protection key"
// @Param        request body dto.CreateFilamentRequest true "Filament"
// @Success      201 {object} dto.SuccessResponse{data=model.Filament}
// @Failure      400 {object} dto.ErrorResponse "Validation failed"
// @Failure      404 {object} dto.ErrorResponse "Vendor not found"
// @Security     ApiKeyAuth
// @Router       /api/filaments [post]
func (h *FilamentHandler) Create(c *gin.Context) {
	builder := NewResponseBuilder(c)

	req, err := BindJSON[dto.CreateFilamentRequest](c)
	if err != nil {
		respondBindError(builder, err)
		return
	}

	filament, err := h.filaments.Create(c.Request.Context(), *req)
	if err != nil {
		respondError(builder, err, "")
		return
	}

	middleware.Audit(c, middleware.AuditEvent{
		Action:     "create_filament",
		Resource:   "filament",
		ResourceID: filament.ID.Hex(),
		Message:    "Filament created",
		Fields: map[string]interface{}{
			"name":     filament.Name,
			"material": filament.Material,
		},
	})
	builder.Created(c.FullPath()+"/"+filament.ID.Hex(), filament)
}

// Update handles PATCH /api/filaments/{id} requests.
//
// @Summary      Update filament
// @Tags         Filaments
// @Accept       json
// @Produce      json
// @Param        id path string true "Filament ID"
// @Param        request body dto.UpdateFilamentRequest true "Fields to change"
// @Success      200 {object} dto.SuccessResponse{data=model.Filament}
// @Failure      400 {object} dto.ErrorResponse "Validation failed"
// @Failure      404 {object} dto.ErrorResponse "Filament or vendor not found"
// @Security     ApiKeyAuth
// @Router       /api/filaments/{id} [patch]
func (h *FilamentHandler) Update(c *gin.Context) {
	builder := NewResponseBuilder(c)

	id, err := pathID(c)
	if err != nil {
		respondError(builder, err, "")
		return
	}
	req, err := BindJSON[dto.UpdateFilamentRequest](c)
	if err != nil {
		respondBindError(builder, err)
		return
	}

	filament, err := h.filaments.Update(c.Request.Context(), id, *req)
	if err != nil {
		respondError(builder, err, "")
		return
	}

	middleware.Audit(c, middleware.AuditEvent{
		Action:     "update_filament",
		Resource:   "filament",
		ResourceID: id.Hex(),
		Message:    "Filament updated",
	})
	builder.SuccessOK(filament)
}

// Delete handles DELETE /api/filaments/{id} requests.
//
// @Summary      Delete filament
// @Description  Fails with 409 while spools still reference the filament
// @Tags         Filaments
// @Param        id path string true "Filament ID"
// @Success      204
// @Failure      404 {object} dto.ErrorResponse "Filament not found"
// @Failure      409 {object} dto.ErrorResponse "Filament in use"
// @Security     ApiKeyAuth
// @Router       /api/filaments/{id} [delete]
func (h *FilamentHandler) Delete(c *gin.Context) {
	builder := NewResponseBuilder(c)

	id, err := pathID(c)
	if err != nil {
		respondError(builder, err, "")
		return
	}

	ev := middleware.AuditEvent{
		Action:     "delete_filament",
		Resource:   "filament",
		ResourceID: id.Hex(),
		Message:    "Filament deleted",
	}
	if err := h.filaments.Delete(c.Request.Context(), id); err != nil {
		middleware.AuditError(c, ev, err)
		respondError(builder, err, i18n.ErrKeyFilamentInUse)
		return
	}

	middleware.Audit(c, ev)
	builder.NoContent()
}
