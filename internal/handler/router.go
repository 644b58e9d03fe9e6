package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"jobtrack/internal/handler/api"
	"jobtrack/internal/handler/middleware"
	"jobtrack/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

func NewRouter(engine *gin.Engine, cfg config.Config, jobHandler *api.JobHandler, migrationHandler *api.MigrationHandler, extractHandler *api.ExtractHandler, authMiddleware *middleware.AuthMiddleware) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, jobHandler, migrationHandler, extractHandler, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, jobHandler *api.JobHandler, migrationHandler *api.MigrationHandler, extractHandler *api.ExtractHandler, authMiddleware *middleware.AuthMiddleware) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		// Job routes work signed-in or anonymous; the backend is picked per
		// request from the (optional) bearer identity.
		jobs := apiGroup.Group("/jobs")
		jobs.Use(authMiddleware.OptionalAuth())
		{
			addRoutes(jobs, []route{
				{Method: http.MethodPost, Path: "", Handler: jobHandler.CreateJob},
				{Method: http.MethodGet, Path: "", Handler: jobHandler.ListJobs},
				{Method: http.MethodGet, Path: "/:id", Handler: jobHandler.GetJob},
				{Method: http.MethodPatch, Path: "/:id", Handler: jobHandler.UpdateJob},
				{Method: http.MethodDelete, Path: "/:id", Handler: jobHandler.DeleteJob},
			})
		}

		migration := apiGroup.Group("/migration")
		{
			addRoutes(migration, []route{
				{Method: http.MethodGet, Path: "/status", Handler: migrationHandler.Status},
			})

			authRequired := migration.Group("")
			authRequired.Use(authMiddleware.RequireAuth())
			addRoutes(authRequired, []route{
				{Method: http.MethodPost, Path: "/run", Handler: migrationHandler.Run},
				{Method: http.MethodPost, Path: "/clear", Handler: migrationHandler.Clear},
			})
		}

		addRoutes(apiGroup, []route{
			{Method: http.MethodPost, Path: "/extract", Handler: extractHandler.Extract},
		})
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
