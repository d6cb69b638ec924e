package logger

import (
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/julianstephens/datefmt/internal/constants"
)

// Logger is the process logger. It stays nil until Init is called, and the
// package helpers are no-ops while it is nil.
var Logger *log.Logger

const (
	logFileName   = "datefmt.log"
	maxLogSizeMB  = 5
	maxLogBackups = 3
	maxLogAgeDays = 14
)

// Config holds logger configuration
type Config struct {
	Debug bool
	// Dir is the directory that receives logs/datefmt.log
	Dir string
	// Console gets a copy of every record in debug mode; defaults to os.Stderr
	Console io.Writer
}

// Init sets up the rotating log file and the global Logger. The returned
// closer releases the log file.
func Init(cfg Config) (io.Closer, error) {
	logDir := filepath.Join(cfg.Dir, "logs")
	if err := os.MkdirAll(logDir, 0o755); err != nil {
		return nil, err
	}

	file := &lumberjack.Logger{
		Filename:   filepath.Join(logDir, logFileName),
		MaxSize:    maxLogSizeMB,
		MaxBackups: maxLogBackups,
		MaxAge:     maxLogAgeDays,
		Compress:   true,
	}

	level := log.WarnLevel
	var writer io.Writer = file
	if cfg.Debug {
		level = log.DebugLevel
		console := cfg.Console
		if console == nil {
			console = os.Stderr
		}
		writer = io.MultiWriter(console, file)
	}

	Logger = log.NewWithOptions(writer, log.Options{
		ReportCaller:    cfg.Debug,
		ReportTimestamp: true,
		Level:           level,
		Prefix:          constants.AppName,
	})

	return file, nil
}

func Debug(msg string, keyvals ...interface{}) {
	if Logger != nil {
		Logger.Debug(msg, keyvals...)
	}
}

func Info(msg string, keyvals ...interface{}) {
	if Logger != nil {
		Logger.Info(msg, keyvals...)
	}
}

func Warn(msg string, keyvals ...interface{}) {
	if Logger != nil {
		Logger.Warn(msg, keyvals...)
	}
}

func Error(msg string, keyvals ...interface{}) {
	if Logger != nil {
		Logger.Error(msg, keyvals...)
	}
}
