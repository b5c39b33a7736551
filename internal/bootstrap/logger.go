package bootstrap

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/osse101/MuForge_Go/internal/config"
	"github.com/osse101/MuForge_Go/internal/logger"
)

// SetupLogger initializes the application logger. When cfg.LogDir is set the
// output also goes to a timestamped file there, and the oldest files beyond
// the retention limit are removed. The returned file (nil without LogDir)
// must be closed by the caller.
func SetupLogger(cfg *config.Config) (*os.File, error) {
	var (
		out     io.Writer = os.Stdout
		logFile *os.File
	)

	if cfg.LogDir != "" {
		if err := os.MkdirAll(cfg.LogDir, DirPermission); err != nil {
			return nil, fmt.Errorf("%s: %w", LogMsgFailedCreateLogsDir, err)
		}

		cleanupLogs(cfg.LogDir)

		name := filepath.Join(cfg.LogDir, fmt.Sprintf(LogFileNamePattern, time.Now().Format(LogFileTimestampFormat)))
		f, err := os.OpenFile(name, os.O_CREATE|os.O_WRONLY|os.O_APPEND, LogFilePermission)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", LogMsgFailedOpenLogFile, err)
		}
		logFile = f
		out = io.MultiWriter(os.Stdout, logFile)
	}

	// Source locations only in dev
	addSource := cfg.Environment == EnvironmentDev || cfg.Environment == EnvironmentDevelopment

	logger.InitLoggerWithWriter(logger.NewConfig(
		cfg.LogLevel,
		cfg.LogFormat,
		cfg.ServiceName,
		cfg.Version,
		cfg.Environment,
		addSource,
	), out)

	slog.Info(LogMsgStarting,
		"environment", cfg.Environment,
		"log_level", cfg.LogLevel,
		"log_format", cfg.LogFormat,
		"version", cfg.Version)

	slog.Debug(LogMsgConfigurationLoaded,
		"port", cfg.Port,
		"session_store", cfg.SessionStore,
		"defeat_policy", cfg.DefeatPolicy,
		"game_tables", cfg.GameTablesPath)

	return logFile, nil
}

// cleanupLogs removes old log files so that, with the file about to be
// created, at most LogFileRetentionLimit remain.
func cleanupLogs(logDir string) {
	entries, err := os.ReadDir(logDir)
	if err != nil {
		return
	}

	var logFiles []string
	for _, entry := range entries {
		if !entry.IsDir() && strings.HasSuffix(entry.Name(), LogFileExtension) {
			logFiles = append(logFiles, entry.Name())
		}
	}
	// Timestamped names sort chronologically
	slices.Sort(logFiles)

	if len(logFiles) < LogFileRetentionLimit {
		return
	}
	for _, name := range logFiles[:len(logFiles)-LogFileRetentionCount] {
		if err := os.Remove(filepath.Join(logDir, name)); err != nil {
			slog.Warn(LogMsgFailedDeleteOldLog, "file", name, "error", err)
		}
	}
}
