// Package dto defines Data Transfer Objects for HTTP request and response handling.
//
// DTOs are used to decouple the HTTP layer from the domain model,
// providing validation and serialization for API communication.
// Field rules live in gin binding tags; Validate methods only cover what
// tags cannot express.
package dto

import (
	"strings"
	"time"
)

// ValidationError represents a field validation error.
type ValidationError struct {
	Field   string
	Message string
}

// Error returns the error message for ValidationError.
func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

var (
	// ErrNameRequired is returned when a name is blank.
	ErrNameRequired = &ValidationError{Field: "name", Message: "is required"}
	// ErrFilamentIDRequired is returned when a spool update clears its filament.
	ErrFilamentIDRequired = &ValidationError{Field: "filament_id", Message: "is required"}
	// ErrSpoolIDRequired is returned when a print job update clears its spool.
	ErrSpoolIDRequired = &ValidationError{Field: "spool_id", Message: "is required"}
	// ErrInvalidUseWeight is returned when use_weight is not positive.
	ErrInvalidUseWeight = &ValidationError{Field: "use_weight", Message: "must be a positive number"}
	// ErrEmptyPatch is returned when an update carries no fields.
	ErrEmptyPatch = &ValidationError{Field: "body", Message: "no fields to update"}
)

// blank reports whether a set optional string holds only whitespace.
func blank(v *string) bool {
	return v != nil && strings.TrimSpace(*v) == ""
}

// CreateVendorRequest is the body of POST /api/vendors.
//
// @Description Request to register a filament vendor
type CreateVendorRequest struct {
	Name    string `json:"name" binding:"required" example:"Prusament"`
	Comment string `json:"comment,omitempty"`
} // @name CreateVendorRequest

// Validate rejects whitespace-only names, which pass the required tag.
func (r *CreateVendorRequest) Validate() error {
	if blank(&r.Name) {
		return ErrNameRequired
	}
	return nil
}

// UpdateVendorRequest is the body of PATCH /api/vendors/{id}. Nil fields are left unchanged.
//
// @Description Partial vendor update
type UpdateVendorRequest struct {
	Name    *string `json:"name,omitempty"`
	Comment *string `json:"comment,omitempty"`
} // @name UpdateVendorRequest

func (r *UpdateVendorRequest) Validate() error {
	if r.Name == nil && r.Comment == nil {
		return ErrEmptyPatch
	}
	if blank(r.Name) {
		return ErrNameRequired
	}
	return nil
}

// CreateFilamentRequest is the body of POST /api/filaments.
//
// @Description Request to register a filament type
type CreateFilamentRequest struct {
	VendorID            string   `json:"vendor_id,omitempty" example:"665f1c2e8b3e4a0012345678"`
	Name                string   `json:"name,omitempty" example:"Galaxy Black"`
	Material            string   `json:"material,omitempty" example:"PLA"`
	ColorHex            string   `json:"color_hex,omitempty" example:"#1a1a1a"`
	MultiColorHexes     string   `json:"multi_color_hexes,omitempty" example:"FF0000,00FF00"`
	MultiColorDirection string   `json:"multi_color_direction,omitempty" example:"coaxial"`
	Weight              *float64 `json:"weight,omitempty" binding:"omitempty,gte=0" example:"1000"`
	SpoolWeight         *float64 `json:"spool_weight,omitempty" binding:"omitempty,gte=0" example:"200"`
	Density             float64  `json:"density,omitempty" binding:"gte=0" example:"1.24"`
	Diameter            float64  `json:"diameter,omitempty" binding:"gte=0" example:"1.75"`
	Price               *float64 `json:"price,omitempty" binding:"omitempty,gte=0" example:"24.99"`
	Comment             string   `json:"comment,omitempty"`
} // @name CreateFilamentRequest

// UpdateFilamentRequest is the body of PATCH /api/filaments/{id}. Nil fields
// are left unchanged; an empty string clears a text field.
//
// @Description Partial filament update
type UpdateFilamentRequest struct {
	VendorID            *string  `json:"vendor_id,omitempty"`
	Name                *string  `json:"name,omitempty"`
	Material            *string  `json:"material,omitempty"`
	ColorHex            *string  `json:"color_hex,omitempty"`
	MultiColorHexes     *string  `json:"multi_color_hexes,omitempty"`
	MultiColorDirection *string  `json:"multi_color_direction,omitempty"`
	Weight              *float64 `json:"weight,omitempty" binding:"omitempty,gte=0"`
	SpoolWeight         *float64 `json:"spool_weight,omitempty" binding:"omitempty,gte=0"`
	Density             *float64 `json:"density,omitempty" binding:"omitempty,gte=0"`
	Diameter            *float64 `json:"diameter,omitempty" binding:"omitempty,gte=0"`
	Price               *float64 `json:"price,omitempty" binding:"omitempty,gte=0"`
	Comment             *string  `json:"comment,omitempty"`
} // @name UpdateFilamentRequest

func (r *UpdateFilamentRequest) Validate() error {
	if r.VendorID == nil && r.Name == nil && r.Material == nil && r.ColorHex == nil &&
		r.MultiColorHexes == nil && r.MultiColorDirection == nil && r.Weight == nil &&
		r.SpoolWeight == nil && r.Density == nil && r.Diameter == nil && r.Price == nil &&
		r.Comment == nil {
		return ErrEmptyPatch
	}
	return nil
}

// CreateSpoolRequest is the body of POST /api/spools.
//
// @Description Request to register a physical spool
type CreateSpoolRequest struct {
	FilamentID      string   `json:"filament_id" binding:"required" example:"665f1c2e8b3e4a0012345678"`
	RemainingWeight *float64 `json:"remaining_weight,omitempty" binding:"omitempty,gte=0" example:"750"`
	InitialWeight   *float64 `json:"initial_weight,omitempty" binding:"omitempty,gte=0" example:"1000"`
	Price           *float64 `json:"price,omitempty" binding:"omitempty,gte=0" example:"21.5"`
	Location        string   `json:"location,omitempty" example:"Shelf A"`
	LotNr           string   `json:"lot_nr,omitempty"`
	Comment         string   `json:"comment,omitempty"`
	Archived        bool     `json:"archived,omitempty"`
} // @name CreateSpoolRequest

// UpdateSpoolRequest is the body of PATCH /api/spools/{id}.
//
// @Description Partial spool update
type UpdateSpoolRequest struct {
	FilamentID      *string  `json:"filament_id,omitempty"`
	RemainingWeight *float64 `json:"remaining_weight,omitempty" binding:"omitempty,gte=0"`
	InitialWeight   *float64 `json:"initial_weight,omitempty" binding:"omitempty,gte=0"`
	Price           *float64 `json:"price,omitempty" binding:"omitempty,gte=0"`
	Location        *string  `json:"location,omitempty"`
	LotNr           *string  `json:"lot_nr,omitempty"`
	Comment         *string  `json:"comment,omitempty"`
	Archived        *bool    `json:"archived,omitempty"`
} // @name UpdateSpoolRequest

func (r *UpdateSpoolRequest) Validate() error {
	if r.FilamentID == nil && r.RemainingWeight == nil && r.InitialWeight == nil &&
		r.Price == nil && r.Location == nil && r.LotNr == nil && r.Comment == nil &&
		r.Archived == nil {
		return ErrEmptyPatch
	}
	if blank(r.FilamentID) {
		return ErrFilamentIDRequired
	}
	return nil
}

// UseSpoolRequest is the body of POST /api/spools/{id}/use.
//
// @Description Consume filament from a spool
type UseSpoolRequest struct {
	UseWeight float64 `json:"use_weight" binding:"required,gt=0" example:"12.5"`
} // @name UseSpoolRequest

// CreatePrintJobRequest is the body of POST /api/print-jobs. Without a cost,
// one is derived from the spool or filament price when weight_used is positive.
//
// @Description Request to record a print job
type CreatePrintJobRequest struct {
	SpoolID           string     `json:"spool_id" binding:"required" example:"665f1c2e8b3e4a0012345678"`
	Name              string     `json:"name" binding:"required,max=128" example:"Benchy"`
	WeightUsed        *float64   `json:"weight_used" binding:"required,gte=0" example:"15.5"`
	StartedAt         *time.Time `json:"started_at,omitempty"`
	CompletedAt       *time.Time `json:"completed_at,omitempty"`
	Cost              *float64   `json:"cost,omitempty" binding:"omitempty,gte=0" example:"0.31"`
	Revenue           *float64   `json:"revenue,omitempty" binding:"omitempty,gte=0" example:"5"`
	Notes             string     `json:"notes,omitempty" binding:"max=1024"`
	ExternalReference string     `json:"external_reference,omitempty" binding:"max=256" example:"benchy_v2.gcode"`
} // @name CreatePrintJobRequest

// UpdatePrintJobRequest is the body of PATCH /api/print-jobs/{id}. Nil fields
// are left unchanged. The cost is never recomputed.
//
// @Description Partial print job update
type UpdatePrintJobRequest struct {
	SpoolID           *string    `json:"spool_id,omitempty"`
	Name              *string    `json:"name,omitempty" binding:"omitempty,max=128"`
	WeightUsed        *float64   `json:"weight_used,omitempty" binding:"omitempty,gte=0"`
	StartedAt         *time.Time `json:"started_at,omitempty"`
	CompletedAt       *time.Time `json:"completed_at,omitempty"`
	Cost              *float64   `json:"cost,omitempty" binding:"omitempty,gte=0"`
	Revenue           *float64   `json:"revenue,omitempty" binding:"omitempty,gte=0"`
	Notes             *string    `json:"notes,omitempty" binding:"omitempty,max=1024"`
	ExternalReference *string    `json:"external_reference,omitempty" binding:"omitempty,max=256"`
} // @name UpdatePrintJobRequest

func (r *UpdatePrintJobRequest) Validate() error {
	if r.SpoolID == nil && r.Name == nil && r.WeightUsed == nil && r.StartedAt == nil &&
		r.CompletedAt == nil && r.Cost == nil && r.Revenue == nil && r.Notes == nil &&
		r.ExternalReference == nil {
		return ErrEmptyPatch
	}
	if blank(r.SpoolID) {
		return ErrSpoolIDRequired
	}
	return nil
}
