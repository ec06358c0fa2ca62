package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// PrintJob records filament consumed by one print, with its cost and revenue.
// Times are stored in UTC.
//
// @Description Print job drawing filament from a spool
type PrintJob struct {
	ID                primitive.ObjectID `bson:"_id,omitempty" json:"id" swaggertype:"string"`
	SpoolID           primitive.ObjectID `bson:"spool_id" json:"spool_id" swaggertype:"string"`
	Name              string             `bson:"name" json:"name" example:"Benchy"`
	WeightUsed        float64            `bson:"weight_used" json:"weight_used" example:"15.5"`
	StartedAt         *time.Time         `bson:"started_at,omitempty" json:"started_at,omitempty"`
	CompletedAt       *time.Time         `bson:"completed_at,omitempty" json:"completed_at,omitempty"`
	Cost              *float64           `bson:"cost,omitempty" json:"cost,omitempty" example:"0.31"`
	Revenue           *float64           `bson:"revenue,omitempty" json:"revenue,omitempty" example:"5"`
	Notes             string             `bson:"notes,omitempty" json:"notes,omitempty"`
	ExternalReference string             `bson:"external_reference,omitempty" json:"external_reference,omitempty" example:"benchy_v2.gcode"`
	Registered        time.Time          `bson:"registered" json:"registered"`
	// Spool is populated on reads, with its filament expanded.
	Spool *Spool `bson:"spool,omitempty" json:"spool,omitempty"`
} // @name PrintJob

// PrintJobQuery filters print job listings. Name matches case-insensitively
// anywhere in the job name.
type PrintJobQuery struct {
	SpoolID *primitive.ObjectID
	Name    string
	Limit   int
	Skip    int
}
