package main

import (
	"flag"
	"os"

	"github.com/eltechldn-adm/BatteryBluePrint-sub001/internal/api"
	"github.com/eltechldn-adm/BatteryBluePrint-sub001/internal/config"
	"github.com/eltechldn-adm/BatteryBluePrint-sub001/internal/presets"
	"github.com/eltechldn-adm/BatteryBluePrint-sub001/internal/tracking"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

func main() {
	configPath := flag.String("config", "", "Optional YAML config file")
	flag.Parse()

	logger := zerolog.New(os.Stdout).With().Timestamp().Str("service", "api").Logger()

	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to load config")
	}
	logger = logger.Level(cfg.Level())

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	resolver, err := presets.Load(cfg.PresetsFile)
	if err != nil {
		logger.Fatal().Err(err).Str("presets_file", cfg.PresetsFile).Msg("failed to load presets")
	}
	logger.Info().Int("presets", len(resolver.List())).Str("presets_file", cfg.PresetsFile).Msg("presets loaded")

	tracker := tracking.NewLogTracker(logger, map[string]any{
		"site_url": cfg.SiteURL,
		"env":      cfg.Env,
	})

	router := api.NewRouter(api.Dependencies{
		Resolver:  resolver,
		Tracker:   tracker,
		Logger:    logger,
		Origins:   cfg.Origins(),
		StaticDir: cfg.StaticDir,
	})

	logger.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("starting API server")
	if err := router.Run(":" + cfg.Port); err != nil {
		logger.Fatal().Err(err).Msg("server stopped")
	}
}
