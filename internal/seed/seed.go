// Package seed loads an initial inventory from a YAML file into an empty database.
package seed

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"

	"github.com/guttosm/spool-service/internal/domain/dto"
	"github.com/guttosm/spool-service/internal/service"
)

// File is the YAML document layout. Filaments reference vendors by name and
// spools reference filaments by name.
type File struct {
	Vendors   []Vendor   `yaml:"vendors"`
	Filaments []Filament `yaml:"filaments"`
	Spools    []Spool    `yaml:"spools"`
}

// Vendor is a seeded vendor.
type Vendor struct {
	Name    string `yaml:"name"`
	Comment string `yaml:"comment"`
}

// Filament is a seeded filament.
type Filament struct {
	Name                string   `yaml:"name"`
	Vendor              string   `yaml:"vendor"`
	Material            string   `yaml:"material"`
	ColorHex            string   `yaml:"color_hex"`
	MultiColorHexes     string   `yaml:"multi_color_hexes"`
	MultiColorDirection string   `yaml:"multi_color_direction"`
	Weight              *float64 `yaml:"weight"`
	SpoolWeight         *float64 `yaml:"spool_weight"`
	Density             float64  `yaml:"density"`
	Diameter            float64  `yaml:"diameter"`
	Price               *float64 `yaml:"price"`
	Comment             string   `yaml:"comment"`
}

// Spool is a seeded spool.
type Spool struct {
	Filament        string   `yaml:"filament"`
	RemainingWeight *float64 `yaml:"remaining_weight"`
	InitialWeight   *float64 `yaml:"initial_weight"`
	Price           *float64 `yaml:"price"`
	Location        string   `yaml:"location"`
	LotNr           string   `yaml:"lot_nr"`
	Comment         string   `yaml:"comment"`
	Archived        bool     `yaml:"archived"`
}

// SpoolCounter reports how many spools are stored.
type SpoolCounter interface {
	Count(ctx context.Context) (int64, error)
}

// Loader writes a seed file through the inventory services so the same
// validation and normalization apply as for API writes.
type Loader struct {
	Spools      SpoolCounter
	VendorSvc   service.VendorService
	FilamentSvc service.FilamentService
	SpoolSvc    service.SpoolService
}

// Result counts what a seed run created.
type Result struct {
	Vendors   int
	Filaments int
	Spools    int
}

// Parse decodes a seed document. Unknown keys are rejected.
func Parse(data []byte) (*File, error) {
	var f File
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("parse seed file: %w", err)
	}
	return &f, nil
}

// LoadFile reads path and applies it when the inventory has no spools.
// An empty path is a no-op.
func (l *Loader) LoadFile(ctx context.Context, path string) (Result, error) {
	if path == "" {
		return Result{}, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Result{}, fmt.Errorf("read seed file: %w", err)
	}
	f, err := Parse(data)
	if err != nil {
		return Result{}, err
	}
	return l.Apply(ctx, f)
}

// Apply creates the vendors, filaments and spools of f in order. It does
// nothing when spools already exist.
func (l *Loader) Apply(ctx context.Context, f *File) (Result, error) {
	var res Result

	count, err := l.Spools.Count(ctx)
	if err != nil {
		return res, fmt.Errorf("count spools: %w", err)
	}
	if count > 0 {
		log.Info().Int64("spools", count).Msg("Inventory not empty; skipping seed")
		return res, nil
	}

	vendorIDs := make(map[string]string, len(f.Vendors))
	for _, v := range f.Vendors {
		created, err := l.VendorSvc.Create(ctx, dto.CreateVendorRequest{Name: v.Name, Comment: v.Comment})
		if err != nil {
			return res, fmt.Errorf("seed vendor %q: %w", v.Name, err)
		}
		vendorIDs[v.Name] = created.ID.Hex()
		res.Vendors++
	}

	filamentIDs := make(map[string]string, len(f.Filaments))
	for _, fl := range f.Filaments {
		req := dto.CreateFilamentRequest{
			Name:                fl.Name,
			Material:            fl.Material,
			ColorHex:            fl.ColorHex,
			MultiColorHexes:     fl.MultiColorHexes,
			MultiColorDirection: fl.MultiColorDirection,
			Weight:              fl.Weight,
			SpoolWeight:         fl.SpoolWeight,
			Density:             fl.Density,
			Diameter:            fl.Diameter,
			Price:               fl.Price,
			Comment:             fl.Comment,
		}
		if fl.Vendor != "" {
			id, ok := vendorIDs[fl.Vendor]
			if !ok {
				return res, fmt.Errorf("seed filament %q: unknown vendor %q", fl.Name, fl.Vendor)
			}
			req.VendorID = id
		}
		created, err := l.FilamentSvc.Create(ctx, req)
		if err != nil {
			return res, fmt.Errorf("seed filament %q: %w", fl.Name, err)
		}
		filamentIDs[fl.Name] = created.ID.Hex()
		res.Filaments++
	}

	for i, s := range f.Spools {
		id, ok := filamentIDs[s.Filament]
		if !ok {
			return res, fmt.Errorf("seed spool %d: unknown filament %q", i, s.Filament)
		}
		_, err := l.SpoolSvc.Create(ctx, dto.CreateSpoolRequest{
			FilamentID:      id,
			RemainingWeight: s.RemainingWeight,
			InitialWeight:   s.InitialWeight,
			Price:           s.Price,
			Location:        s.Location,
			LotNr:           s.LotNr,
			Comment:         s.Comment,
			Archived:        s.Archived,
		})
		if err != nil {
			return res, fmt.Errorf("seed spool %d: %w", i, err)
		}
		res.Spools++
	}

	log.Info().
		Int("vendors", res.Vendors).
		Int("filaments", res.Filaments).
		Int("spools", res.Spools).
		Msg("Inventory seeded")
	return res, nil
}
