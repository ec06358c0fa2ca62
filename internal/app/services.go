// Package app provides service initialization.
package app

import (
	"context"

	"github.com/guttosm/spool-service/config"
	"github.com/guttosm/spool-service/internal/repository"
	"github.com/guttosm/spool-service/internal/seed"
	"github.com/guttosm/spool-service/internal/service"
	"github.com/rs/zerolog/log"
)

// ServiceComponents holds the inventory services.
type ServiceComponents struct {
	Vendors   service.VendorService
	Filaments service.FilamentService
	Spools    service.SpoolService
	PrintJobs service.PrintJobService
	Summary   service.SummaryService
	Logging   service.LoggingService
}

// InitializeServices builds the inventory services on top of db. A nil db
// leaves every repository unset and the services report
// service.ErrRepositoryNotConfigured.
func InitializeServices(db *DatabaseComponents, cfg config.InventoryConfig) *ServiceComponents {
	var (
		vendors   repository.VendorRepositoryInterface
		filaments repository.FilamentRepositoryInterface
		spools    repository.SpoolRepositoryInterface
		jobs      repository.PrintJobRepositoryInterface
		logs      repository.LogsRepositoryInterface
	)
	if db != nil {
		vendors, filaments, spools, jobs, logs = db.Vendors, db.Filaments, db.Spools, db.PrintJobs, db.Logs
	}

	summaryCache := service.NewSummaryCache(cfg.SummaryCacheTTL)
	summary := service.NewSummaryService(spools, summaryCache, cfg.ListCeiling)

	return &ServiceComponents{
		Vendors:   service.NewVendorService(vendors, filaments, summary),
		Filaments: service.NewFilamentService(filaments, vendors, spools, summary),
		Spools:    service.NewSpoolService(spools, filaments, jobs, summary),
		PrintJobs: service.NewPrintJobService(jobs, spools),
		Summary:   summary,
		Logging:   service.NewLoggingService(logs),
	}
}

// SeedInventory loads the configured seed file into an empty inventory.
// Failures are logged and do not stop startup.
func SeedInventory(ctx context.Context, db *DatabaseComponents, svcs *ServiceComponents, path string) {
	if path == "" || db == nil {
		return
	}

	ctx, cancel := context.WithTimeout(ctx, setupTimeout)
	defer cancel()

	loader := &seed.Loader{
		Spools:      db.Spools,
		VendorSvc:   svcs.Vendors,
		FilamentSvc: svcs.Filaments,
		SpoolSvc:    svcs.Spools,
	}
	res, err := loader.LoadFile(ctx, path)
	if err != nil {
		log.Warn().Err(err).Str("file", path).Msg("Failed to seed inventory")
		return
	}
	log.Info().
		Str("file", path).
		Int("vendors", res.Vendors).
		Int("filaments", res.Filaments).
		Int("spools", res.Spools).
		Msg("Seeded inventory")
}
