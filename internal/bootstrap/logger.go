package bootstrap

import (
	"log/slog"

	"github.com/osse101/TowerIdle_Go/internal/config"
	"github.com/osse101/TowerIdle_Go/internal/logger"
)

// SetupLogger initializes the default slog logger from the application config
// and logs the startup banner. Level and format from the config override the
// environment's defaults.
func SetupLogger(cfg *config.Config) {
	logCfg := logger.ForEnvironment(cfg.Environment)
	logCfg.ServiceName = cfg.ServiceName
	logCfg.Version = cfg.Version
	if cfg.LogLevel != "" {
		logCfg.Level = cfg.LogLevel
	}
	if cfg.LogFormat != "" {
		logCfg.Format = cfg.LogFormat
	}
	logger.InitLogger(logCfg)

	slog.Info(LogMsgLoggingInitialized, "level", cfg.LogLevel, "format", cfg.LogFormat)
	slog.Info(LogMsgStarting,
		"environment", cfg.Environment,
		"version", cfg.Version)

	slog.Debug(LogMsgConfigurationLoaded,
		"port", cfg.Port,
		"store_driver", cfg.StoreDriver,
		"game_config", cfg.GameConfigPath,
		"session_cache_size", cfg.SessionCacheSize,
		"session_idle_ttl", cfg.SessionIdleTTL)

	for _, w := range cfg.Warnings() {
		slog.Warn(LogMsgConfigWarning, "detail", w)
	}
}
