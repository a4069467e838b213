//Package logging builds the zap logger used for diagnostics on stderr
package logging

import (
	"go.uber.org/zap"
)

//Config holds logging configuration
type Config struct {
	Level string
	//Format is either "json" or "console"
	Format     string
	OutputPath string
	Fields     map[string]string
}

//NewLogger creates a zap logger from config. An unparsable level falls back to info
func NewLogger(config Config) (*zap.Logger, error) {
	zapConfig := zap.NewProductionConfig()

	level, err := zap.ParseAtomicLevel(config.Level)
	if err != nil {
		level = zap.NewAtomicLevelAt(zap.InfoLevel)
	}
	zapConfig.Level = level

	if config.Format == "console" {
		zapConfig.Encoding = "console"
	} else {
		zapConfig.Encoding = "json"
	}

	if config.OutputPath != "" {
		zapConfig.OutputPaths = []string{config.OutputPath}
	} else {
		zapConfig.OutputPaths = []string{"stderr"}
	}
	zapConfig.ErrorOutputPaths = []string{"stderr"}

	logger, err := zapConfig.Build()
	if err != nil {
		return nil, err
	}

	fields := make([]zap.Field, 0, len(config.Fields))
	for k, v := range config.Fields {
		fields = append(fields, zap.String(k, v))
	}
	return logger.With(fields...), nil
}

//NewDefaultLogger logs at info level in console format to stderr. If building fails it falls back to zap's
//production logger
func NewDefaultLogger(component string) *zap.Logger {
	logger, err := NewLogger(Config{
		Level:  "info",
		Format: "console",
		Fields: map[string]string{"component": component},
	})
	if err != nil {
		fallback, fallbackErr := zap.NewProduction()
		if fallbackErr != nil {
			return zap.NewNop()
		}
		return fallback.With(zap.String("component", component))
	}
	return logger
}
