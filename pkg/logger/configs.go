package logger

import "os"

// Log levels accepted by Config.Level.
const (
	Debug   = "debug"
	Info    = "info"
	Warning = "warning"
	Error   = "error"
)

// Config controls logger construction.
type Config struct {
	// Level is the minimum level that will be emitted.
	// One of: debug, info, warning, error. Default: info.
	Level string

	// ServiceName is attached to every log entry as the "service" field.
	ServiceName string
}

// NewConfig reads logger settings from the environment.
//
// Variables:
//   - LOG_LEVEL     (default "info")
//   - SERVICE_NAME  (default "embedgate")
func NewConfig() Config {
	level := os.Getenv("LOG_LEVEL")
	if level == "" {
		level = Info
	}
	service := os.Getenv("SERVICE_NAME")
	if service == "" {
		service = "embedgate"
	}
	return Config{
		Level:       level,
		ServiceName: service,
	}
}
