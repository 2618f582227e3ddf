package main

import (
	"fmt"
	"log/slog"

	"github.com/phrazzld/taskboard/internal/config"
	"github.com/spf13/pflag"
)

// loadAppConfig loads the application configuration from defaults, files,
// environment variables and flags.
// Returns the loaded config and any loading error.
func loadAppConfig(configFile, envFile string, flags *pflag.FlagSet) (*config.Config, error) {
	cfg, err := config.Load(config.LoadOptions{
		ConfigFile: configFile,
		DotEnvFile: envFile,
		Flags:      flags,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	return cfg, nil
}

// logConfig records the effective configuration once the logger is ready.
func logConfig(l *slog.Logger, cfg *config.Config) {
	l.Info("Server configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel,
		"shutdown_timeout", cfg.Server.ShutdownTimeout.String())
	l.Debug("CORS configuration",
		"allowed_origins", cfg.CORS.AllowedOrigins,
		"max_age", cfg.CORS.MaxAge)
	l.Debug("Metrics configuration",
		"enabled", cfg.Metrics.Enabled,
		"path", cfg.Metrics.Path)
}
