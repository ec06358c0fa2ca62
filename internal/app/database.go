// Package app provides database initialization and setup.
package app

import (
	"context"
	"time"

	"github.com/guttosm/spool-service/config"
	"github.com/guttosm/spool-service/internal/circuitbreaker"
	"github.com/guttosm/spool-service/internal/metrics"
	"github.com/guttosm/spool-service/internal/repository"
	"github.com/rs/zerolog/log"
)

const setupTimeout = 10 * time.Second

// Breaker names, also used as health check keys.
const (
	breakerVendors   = "mongodb-vendors"
	breakerFilaments = "mongodb-filaments"
	breakerSpools    = "mongodb-spools"
	breakerPrintJobs = "mongodb-print-jobs"
	breakerLogs      = "mongodb-logs"
)

// DatabaseComponents holds the MongoDB connection and the breaker-wrapped
// repositories built on it.
type DatabaseComponents struct {
	DB        *repository.MongoDB
	Vendors   repository.VendorRepositoryInterface
	Filaments repository.FilamentRepositoryInterface
	Spools    repository.SpoolRepositoryInterface
	PrintJobs repository.PrintJobRepositoryInterface
	Logs      repository.LogsRepositoryInterface
	// Breakers is keyed by breaker name.
	Breakers map[string]*circuitbreaker.CircuitBreaker
}

// InitializeDatabase connects to MongoDB and creates the inventory and
// audit repositories. Returns nil if the connection fails; the service then
// runs without storage and data endpoints answer 503.
func InitializeDatabase(cfg config.DatabaseConfig) *DatabaseComponents {
	db, err := repository.NewMongoDB(cfg.URI, cfg.DatabaseName)
	if err != nil {
		log.Error().Err(err).Msg("Failed to connect to MongoDB - continuing without database")
		return nil
	}
	log.Info().Str("database", cfg.DatabaseName).Msg("Connected to MongoDB")

	ctx, cancel := context.WithTimeout(context.Background(), setupTimeout)
	defer cancel()
	if err := db.SetLogsTTL(ctx, cfg.LogsTTL); err != nil {
		log.Warn().Err(err).Msg("Failed to set logs TTL index")
	}

	return newDatabaseComponents(db, cfg)
}

func newDatabaseComponents(db *repository.MongoDB, cfg config.DatabaseConfig) *DatabaseComponents {
	breakers := make(map[string]*circuitbreaker.CircuitBreaker, 5)
	for _, name := range []string{breakerVendors, breakerFilaments, breakerSpools, breakerPrintJobs, breakerLogs} {
		breakers[name] = newBreaker(name, cfg)
	}

	return &DatabaseComponents{
		DB:        db,
		Vendors:   repository.NewVendorRepositoryWithCircuitBreaker(repository.NewVendorRepository(db), breakers[breakerVendors]),
		Filaments: repository.NewFilamentRepositoryWithCircuitBreaker(repository.NewFilamentRepository(db), breakers[breakerFilaments]),
		Spools:    repository.NewSpoolRepositoryWithCircuitBreaker(repository.NewSpoolRepository(db), breakers[breakerSpools]),
		PrintJobs: repository.NewPrintJobRepositoryWithCircuitBreaker(repository.NewPrintJobRepository(db), breakers[breakerPrintJobs]),
		Logs:      repository.NewLogsRepositoryWithCircuitBreaker(repository.NewLogsRepository(db), breakers[breakerLogs]),
		Breakers:  breakers,
	}
}

func newBreaker(name string, cfg config.DatabaseConfig) *circuitbreaker.CircuitBreaker {
	metrics.SetCircuitBreakerState(name, int(circuitbreaker.StateClosed))
	return circuitbreaker.New(circuitbreaker.Config{
		FailureThreshold: cfg.CircuitBreakerFailureThreshold,
		SuccessThreshold: cfg.CircuitBreakerSuccessThreshold,
		Timeout:          cfg.CircuitBreakerTimeout,
		Name:             name,
		OnStateChange:    onBreakerStateChange,
	})
}

func onBreakerStateChange(name string, from, to circuitbreaker.State) {
	metrics.SetCircuitBreakerState(name, int(to))
	log.Warn().
		Str("breaker", name).
		Str("from", from.String()).
		Str("to", to.String()).
		Msg("Circuit breaker state changed")
}

// Close disconnects from MongoDB.
func (d *DatabaseComponents) Close(ctx context.Context) error {
	if d == nil || d.DB == nil {
		return nil
	}
	return d.DB.Close(ctx)
}
