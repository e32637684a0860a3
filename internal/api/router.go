// Package api wires the HTTP surface of the calculator.
package api

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/eltechldn-adm/BatteryBluePrint-sub001/internal/api/handlers"
	"github.com/eltechldn-adm/BatteryBluePrint-sub001/internal/api/middleware"
	"github.com/eltechldn-adm/BatteryBluePrint-sub001/internal/api/models"
	"github.com/eltechldn-adm/BatteryBluePrint-sub001/internal/presets"
	"github.com/eltechldn-adm/BatteryBluePrint-sub001/internal/sizing"
	"github.com/eltechldn-adm/BatteryBluePrint-sub001/internal/tracking"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// Dependencies are constructed once in main and threaded through.
type Dependencies struct {
	Resolver *presets.Resolver
	Tracker  tracking.Tracker
	Logger   zerolog.Logger
	Origins  []string
	// StaticDir is optional; when it exists the SPA is served for non-API routes.
	StaticDir string
}

// NewRouter builds the gin engine with middleware and routes.
func NewRouter(deps Dependencies) *gin.Engine {
	router := gin.New()

	router.Use(middleware.CORS(deps.Origins))
	router.Use(middleware.Logger(deps.Logger))
	router.Use(middleware.ErrorHandler(deps.Logger))

	sizingHandler := handlers.NewSizingHandler(sizing.New(deps.Resolver), deps.Tracker)
	presetHandler := handlers.NewPresetHandler(deps.Resolver, deps.Tracker)
	eventHandler := handlers.NewEventHandler(deps.Tracker)

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := router.Group("/api/v1")
	{
		api.POST("/size", sizingHandler.Size)
		api.POST("/size/compare", sizingHandler.Compare)
		api.POST("/estimate-load", sizingHandler.EstimateLoad)

		api.GET("/presets", presetHandler.ListPresets)
		api.GET("/presets/:code", presetHandler.GetPreset)

		api.POST("/events", eventHandler.Track)
	}

	serveStatic(router, deps)
	return router
}

func serveStatic(router *gin.Engine, deps Dependencies) {
	notFound := func(c *gin.Context) {
		c.JSON(http.StatusNotFound, models.ErrorResponse{
			Error: models.ErrorDetail{Code: "NOT_FOUND", Message: "Not found"},
		})
	}

	info, err := os.Stat(deps.StaticDir)
	if deps.StaticDir == "" || err != nil || !info.IsDir() {
		deps.Logger.Info().Str("static_dir", deps.StaticDir).Msg("static directory not found, skipping static file serving")
		router.NoRoute(notFound)
		return
	}

	router.Static("/assets", filepath.Join(deps.StaticDir, "assets"))
	router.StaticFile("/favicon.ico", filepath.Join(deps.StaticDir, "favicon.ico"))

	index := filepath.Join(deps.StaticDir, "index.html")
	router.NoRoute(func(c *gin.Context) {
		if strings.HasPrefix(c.Request.URL.Path, "/api") {
			notFound(c)
			return
		}
		c.File(index)
	})
	deps.Logger.Info().Str("static_dir", deps.StaticDir).Msg("serving static files")
}
