package http

import (
	"github.com/gin-gonic/gin"
	"github.com/guttosm/spool-service/internal/domain/dto"
	"github.com/guttosm/spool-service/internal/domain/model"
	"github.com/guttosm/spool-service/internal/service"
	"golang.org/x/sync/errgroup"
)

// LogsHandler serves the persisted request and audit log.
type LogsHandler struct {
	logs service.LoggingService
}

// NewLogsHandler creates a new LogsHandler instance.
func NewLogsHandler(logs service.LoggingService) *LogsHandler {
	return &LogsHandler{logs: logs}
}

// Query handles GET /api/logs requests.
//
// @Summary      Query logs
// @Description  Returns log entries, newest first, with the total matching count
// @Tags         Logs
// @Produce      json
// @Param        level       query string false "Log level" Enums(info, warn, error)
// @Param        request_id  query string false "Request ID"
// @Param        action_type query string false "Audit action, e.g. use_spool"
// @Param        resource    query string false "Audited resource" Enums(vendor, filament, spool)
// @Param        resource_id query string false "Resource ID, requires resource"
// @Param        since       query string false "Earliest timestamp (RFC3339)"
// @Param        until       query string false "Latest timestamp (RFC3339)"
// @Param        limit       query int    false "Page size (default 100, max 1000)"
// @Param        skip        query int    false "Number of entries to skip"
// @Success      200 {object} dto.SuccessResponse{data=dto.LogListResponse}
// @Failure      400 {object} dto.ErrorResponse "Invalid query parameter"
// @Security     ApiKeyAuth
// @Router       /api/logs [get]
func (h *LogsHandler) Query(c *gin.Context) {
	builder := NewResponseBuilder(c)

	limit, skip, err := pageParams(c, "skip")
	if err != nil {
		respondError(builder, err, "")
		return
	}
	since, err := timeQuery(c, "since")
	if err != nil {
		respondError(builder, err, "")
		return
	}
	until, err := timeQuery(c, "until")
	if err != nil {
		respondError(builder, err, "")
		return
	}
	opts := model.LogQueryOptions{
		Level:      c.Query("level"),
		RequestID:  c.Query("request_id"),
		ActionType: c.Query("action_type"),
		Resource:   c.Query("resource"),
		ResourceID: c.Query("resource_id"),
		StartTime:  since,
		EndTime:    until,
		Limit:      limit,
		Skip:       skip,
	}

	var (
		entries []model.LogEntry
		total   int64
	)
	g, ctx := errgroup.WithContext(c.Request.Context())
	g.Go(func() error {
		var err error
		entries, err = h.logs.QueryLogs(ctx, opts)
		return err
	})
	g.Go(func() error {
		var err error
		total, err = h.logs.CountLogs(ctx, opts)
		return err
	})
	if err := g.Wait(); err != nil {
		respondError(builder, err, "")
		return
	}

	if entries == nil {
		entries = []model.LogEntry{}
	}
	builder.SuccessOK(dto.LogListResponse{Entries: entries, Total: total})
}

// History returns a handler for GET /api/{resource}s/:id/history.
//
// @Summary      Resource history
// @Description  Returns the audit trail of a vendor, filament or spool, newest first
// @Tags         Logs
// @Produce      json
// @Param        id    path  string true  "Resource ID"
// @Param        limit query int    false "Page size (default 100, max 1000)"
// @Success      200 {object} dto.SuccessResponse{data=[]model.LogEntry}
// @Failure      400 {object} dto.ErrorResponse "Invalid ID"
// @Security     ApiKeyAuth
// @Router       /api/spools/{id}/history [get]
// @Router       /api/filaments/{id}/history [get]
// @Router       /api/vendors/{id}/history [get]
func (h *LogsHandler) History(resource string) gin.HandlerFunc {
	return func(c *gin.Context) {
		builder := NewResponseBuilder(c)

		id, err := pathID(c)
		if err != nil {
			respondError(builder, err, "")
			return
		}
		limit, err := intQuery(c, "limit", defaultPageLimit)
		if err != nil {
			respondError(builder, err, "")
			return
		}
		entries, err := h.logs.History(c.Request.Context(), resource, id.Hex(), limit)
		if err != nil {
			respondError(builder, err, "")
			return
		}
		if entries == nil {
			entries = []model.LogEntry{}
		}
		builder.SuccessOK(entries)
	}
}
