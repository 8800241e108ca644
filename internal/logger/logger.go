package logger

import (
	"fmt"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	log   *zap.Logger
	level = zap.NewAtomicLevelAt(zapcore.InfoLevel)
)

// Init builds the global logger. Production gets JSON on stdout, every other
// environment gets the coloured development encoder.
func Init(env string) {
	var cfg zap.Config

	switch env {
	case "production":
		cfg = zap.NewProductionConfig()
		cfg.Encoding = "json"
		cfg.EncoderConfig.TimeKey = "timestamp"
		cfg.EncoderConfig.MessageKey = "message"
		cfg.EncoderConfig.LevelKey = "level"
		cfg.EncoderConfig.CallerKey = "caller"
		cfg.EncoderConfig.EncodeLevel = zapcore.LowercaseLevelEncoder
		cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
		cfg.OutputPaths = []string{"stdout"}
		level.SetLevel(zapcore.InfoLevel)
	case "test":
		log = zap.NewNop()
		return
	default:
		cfg = zap.NewDevelopmentConfig()
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		level.SetLevel(zapcore.DebugLevel)
	}
	cfg.Level = level

	var err error
	log, err = cfg.Build(zap.AddCaller())
	if err != nil {
		panic(err)
	}
}

// L returns the global logger.
func L() *zap.Logger {
	if log == nil {
		Init(os.Getenv("APP_ENV"))
	}
	return log
}

// Replace swaps the global logger and returns a func restoring the previous one.
func Replace(l *zap.Logger) func() {
	prev := log
	log = l
	return func() { log = prev }
}

// SetLevel changes the minimum level of the global logger at runtime.
func SetLevel(name string) error {
	var lvl zapcore.Level
	if err := lvl.UnmarshalText([]byte(name)); err != nil {
		return fmt.Errorf("invalid log level %q: %w", name, err)
	}
	level.SetLevel(lvl)
	return nil
}

// Sync flushes logs.
func Sync() {
	if log != nil {
		_ = log.Sync()
	}
}
