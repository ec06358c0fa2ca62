package dto

import "github.com/guttosm/spool-service/internal/domain/model"

// LogListResponse is the body of GET /api/logs.
//
// @Description Page of audit and request log entries
type LogListResponse struct {
	Entries []model.LogEntry `json:"entries"`
	Total   int64            `json:"total" example:"42"`
} // @name LogListResponse

// PrintJobListResponse is the body of GET /api/print-jobs.
//
// @Description Page of print jobs, newest first
type PrintJobListResponse struct {
	Jobs  []model.PrintJob `json:"jobs"`
	Total int64            `json:"total" example:"12"`
} // @name PrintJobListResponse
