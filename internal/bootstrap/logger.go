package bootstrap

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/osse101/SmsAuto_Go/internal/config"
	"github.com/osse101/SmsAuto_Go/internal/logger"
)

// SetupLogger initializes the default logger. Output always goes to stdout;
// when LOG_DIR is set it also goes to a per-session file there, and older
// session files beyond the retention count are removed. The returned closer
// is nil when no file was opened.
func SetupLogger(cfg *config.Config) (io.Closer, error) {
	var out io.Writer = os.Stdout
	var logFile *os.File

	if cfg.LogDir != "" {
		if err := os.MkdirAll(cfg.LogDir, DirPermission); err != nil {
			return nil, fmt.Errorf("%s: %w", LogMsgFailedCreateLogsDir, err)
		}

		cleanupLogs(cfg.LogDir, LogFileRetentionCount-1)

		name := filepath.Join(cfg.LogDir, fmt.Sprintf(LogFileNamePattern, time.Now().Format(LogFileTimestampFormat)))
		f, err := os.OpenFile(name, os.O_CREATE|os.O_WRONLY|os.O_APPEND, LogFilePermission)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", LogMsgFailedOpenLogFile, err)
		}
		logFile = f
		out = io.MultiWriter(os.Stdout, f)
	}

	logCfg := logger.NewConfig(cfg.LogLevel, cfg.LogFormat, cfg.ServiceName, cfg.Version, cfg.Environment, false)
	logger.InitLoggerWithWriter(logCfg, out)

	logger.Info(LogMsgLoggingInitialized, "level", logCfg.LogLevel().String(), "format", logCfg.Format)
	logger.Info(LogMsgStarting,
		"environment", cfg.Environment,
		"version", cfg.Version,
		"record_path", cfg.RecordPath)
	logger.Debug(LogMsgConfigurationLoaded,
		"port", cfg.Port,
		"ingest", cfg.IngestEnabled,
		"termux", cfg.TermuxEnabled,
		"discord", cfg.DiscordEnabled(),
		"history", cfg.HistoryEnabled)

	if logFile == nil {
		return nil, nil
	}
	return logFile, nil
}

// cleanupLogs removes the oldest session logs so that at most keep remain.
// Session file names sort chronologically.
func cleanupLogs(logDir string, keep int) {
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
	if len(logFiles) <= keep {
		return
	}

	sort.Strings(logFiles)
	for _, name := range logFiles[:len(logFiles)-keep] {
		if err := os.Remove(filepath.Join(logDir, name)); err != nil {
			logger.Warn(LogMsgFailedDeleteOldLog, "file", name, "error", err)
		}
	}
}
