package logger

import (
	"fmt"

	"github.com/GlebRadaev/tennisclub/internal/config"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	serviceName = "tennisclub"
	timeLayout  = "15:04:05 02-01-2006"
)

var logLvlMap = map[string]zapcore.Level{
	"debug": zapcore.DebugLevel,
	"info":  zapcore.InfoLevel,
	"warn":  zapcore.WarnLevel,
	"error": zapcore.ErrorLevel,
}

// encoderConfigs maps LOG_FORMAT to the zap encoding and its key layout.
// Console output is for a terminal, json is for log shippers.
var encoderConfigs = map[string]func() zapcore.EncoderConfig{
	"console": consoleEncoderConfig,
	"json":    jsonEncoderConfig,
}

func consoleEncoderConfig() zapcore.EncoderConfig {
	return zapcore.EncoderConfig{
		TimeKey:        "ts",
		LevelKey:       "level",
		NameKey:        "logger",
		MessageKey:     "msg",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeTime:     zapcore.TimeEncoderOfLayout(timeLayout),
		EncodeDuration: zapcore.MillisDurationEncoder,
		EncodeLevel:    zapcore.CapitalColorLevelEncoder,
	}
}

func jsonEncoderConfig() zapcore.EncoderConfig {
	return zapcore.EncoderConfig{
		TimeKey:        "time",
		LevelKey:       "level",
		NameKey:        "logger",
		CallerKey:      "caller",
		MessageKey:     "msg",
		StacktraceKey:  "stacktrace",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeTime:     zapcore.ISO8601TimeEncoder,
		EncodeDuration: zapcore.MillisDurationEncoder,
		EncodeLevel:    zapcore.LowercaseLevelEncoder,
		EncodeCaller:   zapcore.ShortCallerEncoder,
	}
}

// Build creates a zap logger from the log settings of conf without touching
// the global logger.
func Build(conf *config.Config) (*zap.Logger, error) {
	lvl, ok := logLvlMap[conf.LogLvl]
	if !ok {
		return nil, fmt.Errorf("unsupported log lvl: %s", conf.LogLvl)
	}

	format := conf.LogFormat
	if format == "" {
		format = "console"
	}
	encoderConfig, ok := encoderConfigs[format]
	if !ok {
		return nil, fmt.Errorf("unsupported log format: %s", conf.LogFormat)
	}

	c := zap.Config{
		Level:             zap.NewAtomicLevelAt(lvl),
		Encoding:          format,
		EncoderConfig:     encoderConfig(),
		DisableCaller:     format == "console",
		DisableStacktrace: format == "console",
		OutputPaths:       conf.OutputPaths(),
		ErrorOutputPaths:  []string{"stderr"},
		InitialFields:     map[string]any{"service": serviceName},
	}

	logger, err := c.Build()
	if err != nil {
		return nil, fmt.Errorf("unable to create zap logger, error: %w", err)
	}
	return logger, nil
}

// InitLogger builds the logger and installs it as zap.L().
func InitLogger(conf *config.Config) error {
	logger, err := Build(conf)
	if err != nil {
		return err
	}

	zap.ReplaceGlobals(logger)

	return nil
}
