package auth

import (
	"github.com/veldtlabs/embedgate/pkg/fault"
)

// Resolver evaluates the configured auth policy against request credentials
// and produces the caller's Identity. It is stateless and safe for
// concurrent use.
type Resolver struct {
	cfg    Config
	issuer *Issuer
}

// NewResolver constructs a Resolver. The Issuer is used to verify bearer
// tokens under ModeBearer.
func NewResolver(cfg Config, issuer *Issuer) *Resolver {
	return &Resolver{cfg: cfg, issuer: issuer}
}

// Mode returns the active auth mode.
func (r *Resolver) Mode() Mode {
	return r.cfg.Mode
}

// Resolve evaluates the active mode against the given credentials.
//
//   - ModeOpen: always Anonymous; credentials are ignored.
//   - ModeSharedSecret: the secret is accepted via either the dedicated
//     header or a bearer credential. Any match resolves to Master.
//   - ModeBearer: requires a bearer token with a valid signature, an
//     unexpired lifetime, and a client id present in the allowlist.
//     Resolves to {user, subject}.
//
// Failures carry fault.Auth.
func (r *Resolver) Resolve(creds Credentials) (Identity, error) {
	switch r.cfg.Mode {
	case ModeOpen:
		return Anonymous, nil

	case ModeSharedSecret:
		if r.secretMatches(creds) {
			return Master, nil
		}
		return Identity{}, fault.New(fault.Auth, "invalid API key")

	case ModeBearer:
		if creds.Bearer == "" {
			return Identity{}, fault.New(fault.Auth, "missing bearer token")
		}
		claims, err := r.issuer.DecodeToken(creds.Bearer)
		if err != nil {
			return Identity{}, fault.Wrap(fault.Auth, "invalid or expired token", err)
		}
		if claims.ClientID == "" {
			return Identity{}, fault.New(fault.Auth, "token has no client id")
		}
		if _, ok := r.cfg.RegisteredClientIDs[claims.ClientID]; !ok {
			return Identity{}, fault.Errorf(fault.Auth, "client id %q is not registered", claims.ClientID)
		}
		return Identity{Kind: KindUser, ID: claims.Subject}, nil
	}

	return Identity{}, fault.New(fault.Auth, "authentication misconfigured")
}

// ResolveMaster accepts only the shared secret, via either header,
// independent of the active mode. Administrative actions and token issuance
// must never be gated by bearer-token policy alone.
func (r *Resolver) ResolveMaster(creds Credentials) (Identity, error) {
	if r.secretMatches(creds) {
		return Master, nil
	}
	return Identity{}, fault.New(fault.Auth, "invalid master API key")
}

func (r *Resolver) secretMatches(creds Credentials) bool {
	if r.cfg.APIKey == "" {
		return false
	}
	if creds.APIKey != "" && creds.APIKey == r.cfg.APIKey {
		return true
	}
	return creds.Bearer != "" && creds.Bearer == r.cfg.APIKey
}
