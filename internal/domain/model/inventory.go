// Package model defines the core domain entities for the spool service.
package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MultiColorLongitudinal is the multi-color direction for filaments whose
// colors run along the strand. Any other value (including empty) is coextruded.
const MultiColorLongitudinal = "longitudinal"

// Vendor is a filament manufacturer.
//
// @Description Filament manufacturer
type Vendor struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id" swaggertype:"string" example:"665f1c2e8b3e4a0012345678"`
	Name       string             `bson:"name" json:"name" example:"Prusament"`
	Comment    string             `bson:"comment,omitempty" json:"comment,omitempty"`
	Registered time.Time          `bson:"registered" json:"registered"`
} // @name Vendor

// Filament is the material specification shared by spools of the same purchase.
//
// Text fields use the empty string for "not set". Weight is the net filament
// weight of a full spool in grams.
//
// @Description Filament type, color and vendor
type Filament struct {
	ID                  primitive.ObjectID  `bson:"_id,omitempty" json:"id" swaggertype:"string"`
	VendorID            *primitive.ObjectID `bson:"vendor_id,omitempty" json:"vendor_id,omitempty" swaggertype:"string"`
	Name                string              `bson:"name,omitempty" json:"name,omitempty" example:"Galaxy Black"`
	Material            string              `bson:"material,omitempty" json:"material,omitempty" example:"PLA"`
	ColorHex            string              `bson:"color_hex,omitempty" json:"color_hex,omitempty" example:"FF0000"`
	MultiColorHexes     string              `bson:"multi_color_hexes,omitempty" json:"multi_color_hexes,omitempty" example:"FF0000,00FF00"`
	MultiColorDirection string              `bson:"multi_color_direction,omitempty" json:"multi_color_direction,omitempty" example:"longitudinal"`
	Weight              *float64            `bson:"weight,omitempty" json:"weight,omitempty" example:"1000"`
	SpoolWeight         *float64            `bson:"spool_weight,omitempty" json:"spool_weight,omitempty" example:"200"`
	Density             float64             `bson:"density,omitempty" json:"density,omitempty" example:"1.24"`
	Diameter            float64             `bson:"diameter,omitempty" json:"diameter,omitempty" example:"1.75"`
	Price               *float64            `bson:"price,omitempty" json:"price,omitempty" example:"24.99"`
	Comment             string              `bson:"comment,omitempty" json:"comment,omitempty"`
	Registered          time.Time           `bson:"registered" json:"registered"`
	// Vendor is populated on reads that expand the vendor reference.
	Vendor *Vendor `bson:"vendor,omitempty" json:"vendor,omitempty"`
} // @name Filament

// VendorName returns the vendor name or "" when no vendor is attached.
func (f *Filament) VendorName() string {
	if f == nil || f.Vendor == nil {
		return ""
	}
	return f.Vendor.Name
}

// Spool is a physical roll of filament with a tracked remaining weight.
//
// @Description Physical spool of filament
type Spool struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"id" swaggertype:"string"`
	FilamentID      primitive.ObjectID `bson:"filament_id" json:"filament_id" swaggertype:"string"`
	RemainingWeight *float64           `bson:"remaining_weight,omitempty" json:"remaining_weight,omitempty" example:"750"`
	InitialWeight   *float64           `bson:"initial_weight,omitempty" json:"initial_weight,omitempty" example:"1000"`
	Price           *float64           `bson:"price,omitempty" json:"price,omitempty" example:"21.5"`
	Location        string             `bson:"location,omitempty" json:"location,omitempty" example:"Shelf A"`
	LotNr           string             `bson:"lot_nr,omitempty" json:"lot_nr,omitempty"`
	Comment         string             `bson:"comment,omitempty" json:"comment,omitempty"`
	Archived        bool               `bson:"archived" json:"archived"`
	Registered      time.Time          `bson:"registered" json:"registered"`
	FirstUsed       *time.Time         `bson:"first_used,omitempty" json:"first_used,omitempty"`
	LastUsed        *time.Time         `bson:"last_used,omitempty" json:"last_used,omitempty"`
	// Filament is populated on reads that expand the filament reference.
	Filament *Filament `bson:"filament,omitempty" json:"filament,omitempty"`
} // @name Spool

// PricePerGram is what one gram of the spool's filament cost: the spool price
// over its initial weight, else the filament price over its net weight.
// ok is false when neither pair is usable.
func (s *Spool) PricePerGram() (perGram float64, ok bool) {
	if s.Price != nil && s.InitialWeight != nil && *s.InitialWeight > 0 {
		return *s.Price / *s.InitialWeight, true
	}
	if f := s.Filament; f != nil && f.Price != nil && f.Weight != nil && *f.Weight > 0 {
		return *f.Price / *f.Weight, true
	}
	return 0, false
}

// SpoolQuery filters spool listings.
type SpoolQuery struct {
	FilamentID      *primitive.ObjectID
	IncludeArchived bool
	Limit           int
	Skip            int
}

// FilamentQuery filters filament listings.
type FilamentQuery struct {
	VendorID *primitive.ObjectID
	Material string
	Limit    int
	Skip     int
}

// Float returns a pointer to v. Handy for optional weights.
func Float(v float64) *float64 {
	return &v
}

// ValueOrZero dereferences an optional weight, treating nil as 0.
func ValueOrZero(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}
