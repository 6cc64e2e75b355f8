package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims is the payload carried by issued access tokens.
type Claims struct {
	// ClientID is the registered client that requested the token. The
	// allowlist check happens at resolve time, not at issue time.
	ClientID string `json:"client_id"`

	jwt.RegisteredClaims
}

// Issuer creates and verifies signed access tokens (HMAC-SHA256).
type Issuer struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewIssuer constructs an Issuer from Config.
func NewIssuer(cfg Config) *Issuer {
	return &Issuer{
		secret: []byte(cfg.JWTSecret),
		ttl:    cfg.TokenTTL,
		now:    time.Now,
	}
}

// TTL returns the configured token lifetime.
func (i *Issuer) TTL() time.Duration {
	return i.ttl
}

// IssueToken signs an access token for the given subject and client id.
func (i *Issuer) IssueToken(subject, clientID string) (string, error) {
	now := i.now()
	claims := Claims{
		ClientID: clientID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			ExpiresAt: jwt.NewNumericDate(now.Add(i.ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(i.secret)
	if err != nil {
		return "", fmt.Errorf("auth: sign token: %w", err)
	}
	return signed, nil
}

// DecodeToken verifies the signature and expiry of a token and returns its
// claims. The caller is responsible for the client-id allowlist check.
func (i *Issuer) DecodeToken(raw string) (*Claims, error) {
	claims := &Claims{}
	_, err := jwt.ParseWithClaims(raw, claims,
		func(t *jwt.Token) (interface{}, error) {
			return i.secret, nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return nil, fmt.Errorf("auth: decode token: %w", err)
	}
	return claims, nil
}
