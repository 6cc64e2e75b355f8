package backend

import (
	"fmt"
	"os"
	"strconv"
)

// Config holds inference backend settings.
type Config struct {
	// Endpoint is the base URL of the OpenAI-compatible inference service
	// (no /v1/embeddings appended; the provider appends paths itself).
	Endpoint string

	// ServiceToken authenticates against the inference service. Optional.
	ServiceToken string

	// HTTPTimeoutS is the HTTP timeout in seconds. Default: 120 —
	// embedding batches can take a while on cold models.
	HTTPTimeoutS int

	// ModelConfigPath points at the YAML file describing model aliases.
	// Default: models.yaml.
	ModelConfigPath string
}

// NewConfig reads backend settings from the environment.
//
// Variables:
//   - BACKEND_ENDPOINT
//   - BACKEND_SERVICE_TOKEN
//   - BACKEND_HTTP_TIMEOUT_SECONDS (default 120)
//   - MODEL_CONFIG_PATH            (default models.yaml)
func NewConfig() Config {
	timeout := 120
	if v := os.Getenv("BACKEND_HTTP_TIMEOUT_SECONDS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			timeout = n
		}
	}

	path := os.Getenv("MODEL_CONFIG_PATH")
	if path == "" {
		path = "models.yaml"
	}

	return Config{
		Endpoint:        os.Getenv("BACKEND_ENDPOINT"),
		ServiceToken:    os.Getenv("BACKEND_SERVICE_TOKEN"),
		HTTPTimeoutS:    timeout,
		ModelConfigPath: path,
	}
}

// Validate ensures required fields are present.
func (c Config) Validate() error {
	if c.Endpoint == "" {
		return fmt.Errorf("backend: missing BACKEND_ENDPOINT")
	}
	return nil
}
