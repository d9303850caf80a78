package bootstrap

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/osse101/foundry90/internal/config"
	"github.com/osse101/foundry90/internal/logger"
)

// SetupLogger initializes the application logger with stdout and rotating
// file output. The returned closer flushes the file and must be closed on exit.
func SetupLogger(cfg *config.Config) (io.Closer, error) {
	if err := os.MkdirAll(cfg.LogDir, DirPermission); err != nil {
		return nil, fmt.Errorf("%s: %w", LogMsgFailedCreateLogsDir, err)
	}

	rotator := &lumberjack.Logger{
		Filename:   filepath.Join(cfg.LogDir, LogFileName),
		MaxSize:    cfg.LogMaxSizeMB,
		MaxBackups: cfg.LogMaxBackups,
		MaxAge:     cfg.LogMaxAgeDays,
		Compress:   true,
	}

	// Source locations only in dev
	addSource := cfg.Environment == config.EnvDev
	loggerConfig := logger.NewConfig(
		cfg.LogLevel,
		cfg.LogFormat,
		cfg.ServiceName,
		cfg.Version,
		cfg.Environment,
		addSource,
	)
	logger.InitLoggerWithWriter(loggerConfig, io.MultiWriter(os.Stdout, rotator))

	logger.Info(LogMsgLoggingInitialized, "level", cfg.LogLevel, "file", rotator.Filename)
	logger.Info(LogMsgStartingService,
		"environment", cfg.Environment,
		"log_format", cfg.LogFormat,
		"version", cfg.Version)
	logger.Debug(LogMsgConfigurationLoaded,
		"store_driver", cfg.StoreDriver,
		"db_host", cfg.DBHost,
		"db_port", cfg.DBPort,
		"db_name", cfg.DBName,
		"port", cfg.Port,
		"program_length_days", cfg.ProgramLengthDays,
		"unlock_default_delay", cfg.UnlockDefaultDelay,
		"unlock_minimum_rest", cfg.UnlockMinimumRest)

	return rotator, nil
}
