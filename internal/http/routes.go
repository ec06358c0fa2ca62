package http

import (
	"github.com/gin-gonic/gin"
	"github.com/guttosm/spool-service/internal/service"
)

// RouteGroup defines a group of routes that can be registered.
type RouteGroup interface {
	// RegisterRoutes registers routes to the given router group.
	RegisterRoutes(rg *gin.RouterGroup)
}

// InventoryRoutes registers the vendor, filament, spool, print job and
// summary endpoints. Nil handlers are skipped.
type InventoryRoutes struct {
	Vendors   *VendorHandler
	Filaments *FilamentHandler
	Spools    *SpoolHandler
	PrintJobs *PrintJobHandler
	Summary   *SummaryHandler
}

// NewInventoryRoutes builds the inventory handlers from the router's services.
func NewInventoryRoutes(cfg *RouterConfig) *InventoryRoutes {
	r := &InventoryRoutes{}
	if cfg.VendorService != nil {
		r.Vendors = NewVendorHandler(cfg.VendorService)
	}
	if cfg.FilamentService != nil {
		r.Filaments = NewFilamentHandler(cfg.FilamentService)
	}
	if cfg.SpoolService != nil {
		r.Spools = NewSpoolHandler(cfg.SpoolService)
	}
	if cfg.PrintJobService != nil {
		r.PrintJobs = NewPrintJobHandler(cfg.PrintJobService)
	}
	if cfg.SummaryService != nil {
		r.Summary = NewSummaryHandler(cfg.SummaryService)
	}
	return r
}

// RegisterRoutes implements RouteGroup.
func (r *InventoryRoutes) RegisterRoutes(rg *gin.RouterGroup) {
	if r.Vendors != nil {
		vendors := rg.Group("/vendors")
		vendors.GET("", r.Vendors.List)
		vendors.POST("", r.Vendors.Create)
		vendors.GET("/:id", r.Vendors.Get)
		vendors.PATCH("/:id", r.Vendors.Update)
		vendors.DELETE("/:id", r.Vendors.Delete)
	}

	if r.Filaments != nil {
		filaments := rg.Group("/filaments")
		filaments.GET("", r.Filaments.List)
		filaments.POST("", r.Filaments.Create)
		filaments.GET("/:id", r.Filaments.Get)
		filaments.PATCH("/:id", r.Filaments.Update)
		filaments.DELETE("/:id", r.Filaments.Delete)
	}

	if r.Spools != nil {
		spools := rg.Group("/spools")
		spools.GET("", r.Spools.List)
		spools.POST("", r.Spools.Create)
		spools.GET("/:id", r.Spools.Get)
		spools.PATCH("/:id", r.Spools.Update)
		spools.DELETE("/:id", r.Spools.Delete)
		spools.POST("/:id/use", r.Spools.Use)
	}

	if r.PrintJobs != nil {
		jobs := rg.Group("/print-jobs")
		jobs.GET("", r.PrintJobs.List)
		jobs.POST("", r.PrintJobs.Create)
		jobs.GET("/:id", r.PrintJobs.Get)
		jobs.PATCH("/:id", r.PrintJobs.Update)
		jobs.DELETE("/:id", r.PrintJobs.Delete)
	}

	if r.Summary != nil {
		rg.GET("/summary", r.Summary.Summary)
	}
}

// LogRoutes registers the log query and per-resource history endpoints.
type LogRoutes struct {
	Logs *LogsHandler
}

// RegisterRoutes implements RouteGroup.
func (r *LogRoutes) RegisterRoutes(rg *gin.RouterGroup) {
	if r.Logs != nil {
		rg.GET("/logs", r.Logs.Query)
		rg.GET("/vendors/:id/history", r.Logs.History(service.ResourceVendor))
		rg.GET("/filaments/:id/history", r.Logs.History(service.ResourceFilament))
		rg.GET("/spools/:id/history", r.Logs.History(service.ResourceSpool))
		rg.GET("/print-jobs/:id/history", r.Logs.History(service.ResourcePrintJob))
	}
}
