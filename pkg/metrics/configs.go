package metrics

import (
	"os"
	"strconv"
)

// DefaultMetricsAddress is used when no address is configured.
const DefaultMetricsAddress = ":9090"

// Config controls the Prometheus metrics server.
type Config struct {
	// Address is the listen address of the metrics HTTP server.
	// Default: ":9090".
	Address string

	// EnableDefaultCollectors registers the built-in Go runtime and
	// process collectors. Default: true.
	EnableDefaultCollectors bool

	// ServiceName is attached as a "service" label to every metric.
	ServiceName string
}

// NewConfig reads metrics settings from the environment.
//
// Variables:
//   - METRICS_ADDRESS                    (default ":9090")
//   - METRICS_ENABLE_DEFAULT_COLLECTORS  (default true)
//   - SERVICE_NAME                       (default "embedgate")
func NewConfig() Config {
	addr := os.Getenv("METRICS_ADDRESS")
	if addr == "" {
		addr = DefaultMetricsAddress
	}

	enableDefaults := true
	if v := os.Getenv("METRICS_ENABLE_DEFAULT_COLLECTORS"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			enableDefaults = b
		}
	}

	service := os.Getenv("SERVICE_NAME")
	if service == "" {
		service = "embedgate"
	}

	return Config{
		Address:                 addr,
		EnableDefaultCollectors: enableDefaults,
		ServiceName:             service,
	}
}
