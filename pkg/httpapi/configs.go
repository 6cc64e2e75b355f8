package httpapi

import "os"

// DefaultAddress is used when no listen address is configured.
const DefaultAddress = ":8000"

// Config controls the REST server.
type Config struct {
	// Address is the listen address. Default: ":8000".
	Address string
}

// NewConfig reads REST server settings from the environment.
//
// Variables:
//   - HTTP_ADDRESS (default ":8000")
func NewConfig() Config {
	addr := os.Getenv("HTTP_ADDRESS")
	if addr == "" {
		addr = DefaultAddress
	}
	return Config{Address: addr}
}
