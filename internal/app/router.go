package app

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	_ "github.com/noah-isme/park-maintenance-api/api/swagger"
	"github.com/noah-isme/park-maintenance-api/internal/handler"
	internalmiddleware "github.com/noah-isme/park-maintenance-api/internal/middleware"
	"github.com/noah-isme/park-maintenance-api/internal/models"
	"github.com/noah-isme/park-maintenance-api/pkg/config"
	"github.com/noah-isme/park-maintenance-api/pkg/logger"
	corsmiddleware "github.com/noah-isme/park-maintenance-api/pkg/middleware/cors"
	reqidmiddleware "github.com/noah-isme/park-maintenance-api/pkg/middleware/requestid"
)

// NewRouter mounts the planner API on a gin engine.
func NewRouter(cfg *config.Config, logr *zap.Logger, comps *Components) *gin.Engine {
	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(logr))
	r.Use(corsmiddleware.New(cfg.CORS.AllowedOrigins))
	r.Use(internalmiddleware.Metrics(comps.Metrics, "/metrics", "/health", "/ready"))
	r.Use(internalmiddleware.WithResponseMeta())

	metricsHandler := handler.NewMetricsHandler(comps.Metrics, comps.Readiness)
	r.GET("/health", metricsHandler.Health)
	r.GET("/ready", metricsHandler.Ready)
	r.GET("/metrics", metricsHandler.Prometheus)

	if cfg.Env != config.EnvProduction {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	schedules := handler.NewScheduleHandler(comps.Planner, comps.Exporter)
	profiles := handler.NewProfileHandler(comps.Profiles)
	batches := handler.NewBatchHandler(comps.Batches)
	catalog := handler.NewCatalogHandler(comps.Catalog)

	// allow returns the role guard for a route; with auth disabled every
	// caller is trusted.
	allow := func(roles ...string) gin.HandlerFunc {
		if !cfg.JWT.Enabled {
			return func(c *gin.Context) { c.Next() }
		}
		return internalmiddleware.RBAC(roles...)
	}
	planner := string(models.RolePlanner)
	employee := string(models.RoleEmployee)

	api := r.Group(cfg.APIPrefix)
	if cfg.JWT.Enabled {
		api.Use(internalmiddleware.JWT(comps.Tokens))
	}

	api.POST("/schedules", allow(planner, employee), schedules.Generate)
	api.POST("/schedules/batch", allow(planner), batches.Enqueue)
	api.GET("/schedules/batch/:id", allow(planner), batches.Status)
	api.GET("/schedules/:name", allow(planner, internalmiddleware.Self), schedules.Latest)
	api.GET("/schedules/:name/export", allow(planner, internalmiddleware.Self), schedules.Export)

	api.GET("/employees/:name/profile", allow(planner, internalmiddleware.Self), profiles.Get)
	api.PUT("/employees/:name/profile", allow(planner), profiles.Upsert)

	api.PUT("/catalog/tasks", allow(planner), catalog.Import)

	return r
}
