// Package logger holds the process-wide structured logger. Until Init runs
// every call is discarded, so packages can log unconditionally.
package logger

import (
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/julianstephens/flowmind/internal/constants"
)

// Rotation limits for the log file.
const (
	maxSizeMB  = 10
	maxBackups = 3
	maxAgeDays = 28
)

// Logger is replaced by Init.
var Logger = log.New(io.Discard)

// Config controls where and how much is logged. Dir is the directory that
// holds the database, or the default config directory when the database
// is not a local file. Logs go to Dir/logs.
type Config struct {
	Debug bool
	Dir   string
	// Stderr receives a copy of every line in debug mode. Nil means
	// os.Stderr.
	Stderr io.Writer
}

// Path returns the log file Init writes to for dir.
func Path(dir string) string {
	return filepath.Join(dir, "logs", constants.AppName+".log")
}

// Init swaps in a logger that writes to a rotating file. Debug mode lowers
// the level to debug and mirrors output to Stderr; otherwise the terminal
// stays clean for the TUI.
func Init(cfg Config) error {
	file := Path(cfg.Dir)
	if err := os.MkdirAll(filepath.Dir(file), 0755); err != nil {
		return err
	}

	var w io.Writer = &lumberjack.Logger{
		Filename:   file,
		MaxSize:    maxSizeMB,
		MaxBackups: maxBackups,
		MaxAge:     maxAgeDays,
		Compress:   true,
	}
	level := log.WarnLevel
	if cfg.Debug {
		level = log.DebugLevel
		stderr := cfg.Stderr
		if stderr == nil {
			stderr = os.Stderr
		}
		w = io.MultiWriter(stderr, w)
	}

	Logger = log.NewWithOptions(w, log.Options{
		ReportCaller:    cfg.Debug,
		ReportTimestamp: true,
		Level:           level,
		Prefix:          constants.AppName,
	})
	return nil
}

// Session returns a child logger tagged with the timer interval it reports
// on.
func Session(mode string, sessions int) *log.Logger {
	return Logger.With("mode", mode, "sessions", sessions)
}

func Debug(msg string, keyvals ...any) { Logger.Debug(msg, keyvals...) }

func Info(msg string, keyvals ...any) { Logger.Info(msg, keyvals...) }

func Warn(msg string, keyvals ...any) { Logger.Warn(msg, keyvals...) }

func Error(msg string, keyvals ...any) { Logger.Error(msg, keyvals...) }
