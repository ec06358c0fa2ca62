// Package app provides application initialization and dependency injection.
package app

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/spool-service/config"
	"github.com/guttosm/spool-service/internal/http"
)

// App is the wired application.
type App struct {
	Router   *gin.Engine
	Database *DatabaseComponents
	Services *ServiceComponents
	routing  *RouterComponents
}

// InitializeApp creates and wires all application dependencies: storage,
// inventory services, optional seed data and the HTTP router.
func InitializeApp(ctx context.Context, cfg config.Config) *App {
	InitializeLogger(cfg.Log)

	db := InitializeDatabase(cfg.Database)
	services := InitializeServices(db, cfg.Inventory)
	SeedInventory(ctx, db, services, cfg.Inventory.SeedFile)

	routing := InitializeRouter(db, services, cfg)

	return &App{
		Router:   http.NewRouter(routing.HealthHandler, routing.Config),
		Database: db,
		Services: services,
		routing:  routing,
	}
}

// Close stops background workers, flushing pending audit entries, and then
// disconnects from MongoDB.
func (a *App) Close(ctx context.Context) error {
	if a.routing != nil {
		a.routing.Stop()
	}
	return a.Database.Close(ctx)
}
