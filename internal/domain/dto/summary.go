package dto

import (
	"math"

	"github.com/guttosm/spool-service/internal/domain/model"
)

// SummaryRow is one filament group as rendered in the inventory summary.
//
// @Description Filament group with presentation fields
type SummaryRow struct {
	model.FilamentGroup
	ColorLabel       string        `json:"color_label" example:"#FF0000"`
	Swatch           *model.Swatch `json:"swatch"`
	DisplayName      string        `json:"display_name" example:"Prusament - Galaxy Black"`
	RemainingPercent float64       `json:"remaining_percent" example:"37.5"`
} // @name SummaryRow

// SummaryFooter totals the rows of the summary table.
type SummaryFooter struct {
	SpoolCount      int     `json:"spool_count"`
	RemainingWeight float64 `json:"remaining_weight"`
} // @name SummaryFooter

// SummaryResponse is the body of GET /api/summary.
//
// @Description Active spools grouped by material and color
type SummaryResponse struct {
	ActiveSpools         int           `json:"active_spools" example:"12"`
	TotalRemainingWeight float64       `json:"total_remaining_weight" example:"8450.5"`
	TotalRemainingKg     float64       `json:"total_remaining_kg" example:"8.45"`
	GroupCount           int           `json:"group_count" example:"5"`
	Groups               []SummaryRow  `json:"groups"`
	Footer               SummaryFooter `json:"footer"`
} // @name SummaryResponse

// NewSummaryResponse renders a summary for the API.
func NewSummaryResponse(summary model.FilamentSummary) SummaryResponse {
	resp := SummaryResponse{
		ActiveSpools:         summary.TotalSpools,
		TotalRemainingWeight: summary.TotalRemainingWeight,
		TotalRemainingKg:     round(summary.TotalRemainingWeight/1000, 2),
		GroupCount:           len(summary.Groups),
		Groups:               make([]SummaryRow, 0, len(summary.Groups)),
	}

	for _, group := range summary.Groups {
		resp.Groups = append(resp.Groups, SummaryRow{
			FilamentGroup:    group,
			ColorLabel:       group.ColorLabel(),
			Swatch:           group.Swatch(),
			DisplayName:      DisplayName(group.VendorName, group.Name),
			RemainingPercent: RemainingPercent(group.TotalRemainingWeight, group.TotalFilamentWeight),
		})
		resp.Footer.SpoolCount += group.SpoolCount
		resp.Footer.RemainingWeight += group.TotalRemainingWeight
	}
	return resp
}

// DisplayName joins vendor and filament name, skipping whichever is empty.
func DisplayName(vendor, name string) string {
	switch {
	case vendor == "":
		return name
	case name == "":
		return vendor
	default:
		return vendor + " - " + name
	}
}

// RemainingPercent returns remaining as a share of total, rounded to one
// decimal. A zero total yields 0.
func RemainingPercent(remaining, total float64) float64 {
	if total <= 0 {
		return 0
	}
	return round(remaining/total*100, 1)
}

func round(v float64, places int) float64 {
	p := math.Pow(10, float64(places))
	return math.Round(v*p) / p
}
