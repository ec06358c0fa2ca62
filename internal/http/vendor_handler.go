package http

import (
	"github.com/gin-gonic/gin"
	"github.com/guttosm/spool-service/internal/domain/dto"
	"github.com/guttosm/spool-service/internal/i18n"
	"github.com/guttosm/spool-service/internal/middleware"
	"github.com/guttosm/spool-service/internal/service"
)

// VendorHandler serves /api/vendors.
type VendorHandler struct {
	vendors service.VendorService
}

// NewVendorHandler creates a new VendorHandler instance.
func NewVendorHandler(vendors service.VendorService) *VendorHandler {
	return &VendorHandler{vendors: vendors}
}

// List handles GET /api/vendors requests.
//
// @Summary      List vendors
// @Description  Returns vendors sorted by name
// @Tags         Vendors
// @Produce      json
// @Param        limit  query int false "Page size (default 100, max 1000)"
// @Param        offset query int false "Number of vendors to skip"
// @Success      200 {object} dto.SuccessResponse{data=[]model.Vendor}
// @Failure      400 {object} dto.ErrorResponse "Invalid query parameter"
// @Failure      503 {object} dto.ErrorResponse "Database unavailable"
// @Security     ApiKeyAuth
// @Router       /api/vendors [get]
func (h *VendorHandler) List(c *gin.Context) {
	builder := NewResponseBuilder(c)

	limit, offset, err := pageParams(c, "offset")
	if err != nil {
		respondError(builder, err, "")
		return
	}

	vendors, err := h.vendors.List(c.Request.Context(), limit, offset)
	if err != nil {
		respondError(builder, err, "")
		return
	}
	builder.SuccessOK(vendors)
}

// Get handles GET /api/vendors/{id} requests.
//
// @Summary      Get vendor
// @Tags         Vendors
// @Produce      json
// @Param        id path string true "Vendor ID"
// @Success      200 {object} dto.SuccessResponse{data=model.Vendor}
// @Failure      400 {object} dto.ErrorResponse "Malformed ID"
// @Failure      404 {object} dto.ErrorResponse "Vendor not found"
// @Security     ApiKeyAuth
// @Router       /api/vendors/{id} [get]
func (h *VendorHandler) Get(c *gin.Context) {
	builder := NewResponseBuilder(c)

	id, err := pathID(c)
	if err != nil {
		respondError(builder, err, "")
		return
	}

	vendor, err := h.vendors.Get(c.Request.Context(), id)
	if err != nil {
		respondError(builder, err, "")
		return
	}
	builder.SuccessOK(vendor)
}

// Create handles POST /api/vendors requests.
//
// @Summary      Create vendor
// @Tags         Vendors
// @Accept       json
// @Produce      json
// @Param        Idempotency-Key header string false "Replay protection key"
// @Param        request body dto.CreateVendorRequest true "Vendor"
// @Success      201 {object} dto.SuccessResponse{data=model.Vendor}
// @Failure      400 {object} dto.ErrorResponse "Validation failed"
// @Security     ApiKeyAuth
// @Router       /api/vendors [post]
func (h *VendorHandler) Create(c *gin.Context) {
	builder := NewResponseBuilder(c)

	req, err := BindJSON[dto.CreateVendorRequest](c)
	if err != nil {
		respondBindError(builder, err)
		return
	}

	vendor, err := h.vendors.Create(c.Request.Context(), *req)
	if err != nil {
		respondError(builder, err, "")
		return
	}

	middleware.Audit(c, middleware.AuditEvent{
		Action:     "create_vendor",
		Resource:   "vendor",
		ResourceID: vendor.ID.Hex(),
		Message:    "Vendor created",
		Fields:     map[string]interface{}{"name": vendor.Name},
	})
	builder.Created(c.FullPath()+"/"+vendor.ID.Hex(), vendor)
}

// Update handles PATCH /api/vendors/{id} requests.
//
// @Summary      Update vendor
// @Tags         Vendors
// @Accept       json
// @Produce      json
// @Param        id path string true "Vendor ID"
// @Param        request body dto.UpdateVendorRequest true "Fields to change"
// @Success      200 {object} dto.SuccessResponse{data=model.Vendor}
// @Failure      400 {object} dto.ErrorResponse "Validation failed"
// @Failure      404 {object} dto.ErrorResponse "Vendor not found"
// @Security     ApiKeyAuth
// @Router       /api/vendors/{id} [patch]
func (h *VendorHandler) Update(c *gin.Context) {
	builder := NewResponseBuilder(c)

	id, err := pathID(c)
	if err != nil {
		respondError(builder, err, "")
		return
	}
	req, err := BindJSON[dto.UpdateVendorRequest](c)
	if err != nil {
		respondBindError(builder, err)
		return
	}

	vendor, err := h.vendors.Update(c.Request.Context(), id, *req)
	if err != nil {
		respondError(builder, err, "")
		return
	}

	middleware.Audit(c, middleware.AuditEvent{
		Action:     "update_vendor",
		Resource:   "vendor",
		ResourceID: id.Hex(),
		Message:    "Vendor updated",
	})
	builder.SuccessOK(vendor)
}

// Delete handles DELETE /api/vendors/{id} requests.
//
// @Summary      Delete vendor
// @Description  Fails with 409 while filaments still reference the vendor
// @Tags         Vendors
// @Param        id path string true "Vendor ID"
// @Success      204
// @Failure      404 {object} dto.ErrorResponse "Vendor not found"
// @Failure      409 {object} dto.ErrorResponse "Vendor in use"
// @Security     ApiKeyAuth
// @Router       /api/vendors/{id} [delete]
func (h *VendorHandler) Delete(c *gin.Context) {
	builder := NewResponseBuilder(c)

	id, err := pathID(c)
	if err != nil {
		respondError(builder, err, "")
		return
	}

	ev := middleware.AuditEvent{
		Action:     "delete_vendor",
		Resource:   "vendor",
		ResourceID: id.Hex(),
		Message:    "Vendor deleted",
	}
	if err := h.vendors.Delete(c.Request.Context(), id); err != nil {
		middleware.AuditError(c, ev, err)
		respondError(builder, err, i18n.ErrKeyVendorInUse)
		return
	}

	middleware.Audit(c, ev)
	builder.NoContent()
}
