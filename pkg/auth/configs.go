package auth

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Mode selects the auth policy evaluated on every request.
type Mode string

const (
	// ModeOpen disables authentication; every request is anonymous.
	ModeOpen Mode = "NONE"

	// ModeSharedSecret accepts a single shared secret via the X-API-Key
	// header or as a bearer credential.
	ModeSharedSecret Mode = "KEY"

	// ModeBearer requires a signed access token with a registered client id.
	ModeBearer Mode = "JWT"
)

// Config holds the auth policy settings.
type Config struct {
	// Mode is the active auth policy. Default: ModeOpen.
	Mode Mode

	// APIKey is the shared master secret. Accepted via the X-API-Key header
	// or as a bearer credential, in any mode, by ResolveMaster.
	APIKey string

	// JWTSecret signs and verifies access tokens (HMAC-SHA256).
	JWTSecret string

	// TokenTTL is the lifetime of issued access tokens. Default: 60 minutes.
	TokenTTL time.Duration

	// RegisteredClientIDs is the allowlist of client ids accepted inside
	// bearer tokens. Membership is checked on every request, not at issue
	// time, so revoking a client id takes effect immediately.
	RegisteredClientIDs map[string]struct{}
}

// NewConfig reads auth settings from the environment.
//
// Variables:
//   - AUTH_MODE                    NONE | KEY | JWT (default NONE)
//   - API_KEY                      shared master secret (default "changeme")
//   - JWT_SECRET                   token signing secret
//   - ACCESS_TOKEN_EXPIRE_MINUTES  token lifetime (default 60)
//   - REGISTERED_CLIENT_IDS        JSON array or comma-separated list
//     (default "default_client")
func NewConfig() Config {
	mode := Mode(strings.ToUpper(os.Getenv("AUTH_MODE")))
	switch mode {
	case ModeOpen, ModeSharedSecret, ModeBearer:
	default:
		mode = ModeOpen
	}

	apiKey := os.Getenv("API_KEY")
	if apiKey == "" {
		apiKey = "changeme"
	}

	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		secret = "please_change_this_secret_in_production"
	}

	ttl := 60 * time.Minute
	if v := os.Getenv("ACCESS_TOKEN_EXPIRE_MINUTES"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			ttl = time.Duration(n) * time.Minute
		}
	}

	clientIDs := os.Getenv("REGISTERED_CLIENT_IDS")
	if clientIDs == "" {
		clientIDs = "default_client"
	}

	return Config{
		Mode:                mode,
		APIKey:              apiKey,
		JWTSecret:           secret,
		TokenTTL:            ttl,
		RegisteredClientIDs: parseClientIDs(clientIDs),
	}
}

// parseClientIDs accepts either a JSON array ("[\"a\",\"b\"]") or a
// comma-separated list ("a,b"). Blank entries are dropped.
func parseClientIDs(raw string) map[string]struct{} {
	out := make(map[string]struct{})

	trimmed := strings.TrimSpace(raw)
	if strings.HasPrefix(trimmed, "[") {
		var parsed []string
		if err := json.Unmarshal([]byte(trimmed), &parsed); err == nil {
			for _, id := range parsed {
				if id = strings.TrimSpace(id); id != "" {
					out[id] = struct{}{}
				}
			}
			return out
		}
		// Fall through to comma splitting on malformed JSON.
	}

	for _, id := range strings.Split(trimmed, ",") {
		if id = strings.TrimSpace(id); id != "" {
			out[id] = struct{}{}
		}
	}
	return out
}

// Validate checks settings that would make the configured mode unusable.
func (c Config) Validate() error {
	if c.Mode == ModeBearer && c.JWTSecret == "" {
		return fmt.Errorf("auth: JWT mode requires JWT_SECRET")
	}
	if c.Mode == ModeSharedSecret && c.APIKey == "" {
		return fmt.Errorf("auth: KEY mode requires API_KEY")
	}
	return nil
}
