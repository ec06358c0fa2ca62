package http

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/spool-service/internal/domain/dto"
	"github.com/guttosm/spool-service/internal/domain/model"
	"github.com/guttosm/spool-service/internal/middleware"
	"github.com/guttosm/spool-service/internal/service"
)

// TotalCountHeader carries the number of matches behind a paged listing.
const TotalCountHeader = "X-Total-Count"

// PrintJobHandler serves /api/print-jobs.
type PrintJobHandler struct {
	jobs service.PrintJobService
}

// NewPrintJobHandler creates a new PrintJobHandler instance.
func NewPrintJobHandler(jobs service.PrintJobService) *PrintJobHandler {
	return &PrintJobHandler{jobs: jobs}
}

// List handles GET /api/print-jobs requests.
//
// @Summary      List print jobs
// @Description  Newest first. name matches case-insensitively anywhere in the job name.
// @Tags         Print jobs
// @Produce      json
// @Param        spool_id query string false "Only jobs of this spool"
// @Param        name     query string false "Part of the job name"
// @Param        limit    query int    false "Page size (default 100, max 1000)"
// @Param        offset   query int    false "Number of jobs to skip"
// @Success      200 {object} dto.SuccessResponse{data=dto.PrintJobListResponse}
// @Header       200 {integer} X-Total-Count "Matching jobs without paging"
// @Failure      400 {object} dto.ErrorResponse "Invalid query parameter"
// @Security     ApiKeyAuth
// @Router       /api/print-jobs [get]
func (h *PrintJobHandler) List(c *gin.Context) {
	builder := NewResponseBuilder(c)

	limit, offset, err := pageParams(c, "offset")
	if err != nil {
		respondError(builder, err, "")
		return
	}
	spoolID, err := idQuery(c, "spool_id")
	if err != nil {
		respondError(builder, err, "")
		return
	}

	jobs, total, err := h.jobs.Find(c.Request.Context(), model.PrintJobQuery{
		SpoolID: spoolID,
		Name:    strings.TrimSpace(c.Query("name")),
		Limit:   limit,
		Skip:    offset,
	})
	if err != nil {
		respondError(builder, err, "")
		return
	}
	if jobs == nil {
		jobs = []model.PrintJob{}
	}

	c.Header(TotalCountHeader, strconv.FormatInt(total, 10))
	builder.SuccessOK(dto.PrintJobListResponse{Jobs: jobs, Total: total})
}

// Get handles GET /api/print-jobs/{id} requests.
//
// @Summary      Get print job
// @Tags         Print jobs
// @Produce      json
// @Param        id path string true "Print job ID"
// @Success      200 {object} dto.SuccessResponse{data=model.PrintJob}
// @Failure      400 {object} dto.ErrorResponse "Malformed ID"
// @Failure      404 {object} dto.ErrorResponse "Print job not found"
// @Security     ApiKeyAuth
// @Router       /api/print-jobs/{id} [get]
func (h *PrintJobHandler) Get(c *gin.Context) {
	builder := NewResponseBuilder(c)

	id, err := pathID(c)
	if err != nil {
		respondError(builder, err, "")
		return
	}

	job, err := h.jobs.Get(c.Request.Context(), id)
	if err != nil {
		respondError(builder, err, "")
		return
	}
	builder.SuccessOK(job)
}

// Create handles POST /api/print-jobs requests.
//
// @Summary      Record print job
// @Description  Without a cost, one is derived from the spool price over its initial weight, else the filament price over its weight
// @Tags         Print jobs
// @Accept       json
// @Produce      json
// @Param        Idempotency-Key header string false "Replay protection key"
// @Param        request body dto.CreatePrintJobRequest true "Print job"
// @Success      201 {object} dto.SuccessResponse{data=model.PrintJob}
// @Failure      400 {object} dto.ErrorResponse "Validation failed"
// @Failure      404 {object} dto.ErrorResponse "Spool not found"
// @Security     ApiKeyAuth
// @Router       /api/print-jobs [post]
func (h *PrintJobHandler) Create(c *gin.Context) {
	builder := NewResponseBuilder(c)

	req, err := BindJSON[dto.CreatePrintJobRequest](c)
	if err != nil {
		respondBindError(builder, err)
		return
	}

	job, err := h.jobs.Create(c.Request.Context(), *req)
	if err != nil {
		respondError(builder, err, "")
		return
	}

	fields := map[string]interface{}{
		"spool_id":    job.SpoolID.Hex(),
		"weight_used": job.WeightUsed,
	}
	if job.Cost != nil {
		fields["cost"] = *job.Cost
	}
	middleware.Audit(c, middleware.AuditEvent{
		Action:     "create_print_job",
		Resource:   service.ResourcePrintJob,
		ResourceID: job.ID.Hex(),
		Message:    "Print job recorded",
		Fields:     fields,
	})
	builder.Created(c.FullPath()+"/"+job.ID.Hex(), job)
}

// Update handles PATCH /api/print-jobs/{id} requests.
//
// @Summary      Update print job
// @Description  Only the fields present change. The cost is not recomputed.
// @Tags         Print jobs
// @Accept       json
// @Produce      json
// @Param        id path string true "Print job ID"
// @Param        request body dto.UpdatePrintJobRequest true "Fields to change"
// @Success      200 {object} dto.SuccessResponse{data=model.PrintJob}
// @Failure      400 {object} dto.ErrorResponse "Validation failed"
// @Failure      404 {object} dto.ErrorResponse "Print job or spool not found"
// @Security     ApiKeyAuth
// @Router       /api/print-jobs/{id} [patch]
func (h *PrintJobHandler) Update(c *gin.Context) {
	builder := NewResponseBuilder(c)

	id, err := pathID(c)
	if err != nil {
		respondError(builder, err, "")
		return
	}
	req, err := BindJSON[dto.UpdatePrintJobRequest](c)
	if err != nil {
		respondBindError(builder, err)
		return
	}

	job, err := h.jobs.Update(c.Request.Context(), id, *req)
	if err != nil {
		respondError(builder, err, "")
		return
	}

	middleware.Audit(c, middleware.AuditEvent{
		Action:     "update_print_job",
		Resource:   service.ResourcePrintJob,
		ResourceID: id.Hex(),
		Message:    "Print job updated",
	})
	builder.SuccessOK(job)
}

// Delete handles DELETE /api/print-jobs/{id} requests.
//
// @Summary      Delete print job
// @Tags         Print jobs
// @Param        id path string true "Print job ID"
// @Success      204
// @Failure      404 {object} dto.ErrorResponse "Print job not found"
// @Security     ApiKeyAuth
// @Router       /api/print-jobs/{id} [delete]
func (h *PrintJobHandler) Delete(c *gin.Context) {
	builder := NewResponseBuilder(c)

	id, err := pathID(c)
	if err != nil {
		respondError(builder, err, "")
		return
	}

	ev := middleware.AuditEvent{
		Action:     "delete_print_job",
		Resource:   service.ResourcePrintJob,
		ResourceID: id.Hex(),
		Message:    "Print job deleted",
	}
	if err := h.jobs.Delete(c.Request.Context(), id); err != nil {
		middleware.AuditError(c, ev, err)
		respondError(builder, err, "")
		return
	}

	middleware.Audit(c, ev)
	builder.NoContent()
}
