// Package auth resolves request credentials into caller identities.
//
// # Overview
//
// The gateway supports three auth policies, selected by AUTH_MODE:
//
//   - NONE: every request resolves to the anonymous identity.
//   - KEY: a single shared secret, accepted via the X-API-Key header or as
//     a bearer credential. Matching requests resolve to the master identity.
//   - JWT: requests must carry a signed access token. The token's signature
//     and expiry are verified and its client id must be in the registered
//     allowlist; the resolved identity is {user, subject}.
//
// Identity is produced exactly once per request and then used as the
// rate-limit key and for downstream authorization decisions.
//
// # Master-only resolution
//
// ResolveMaster accepts only the shared secret, regardless of the active
// mode. Token issuance (/auth/token) uses it so that a bearer token can
// never mint further tokens.
//
// # Tokens
//
// Access tokens are HMAC-SHA256 JWTs carrying subject, client_id, and
// expiry. The client-id allowlist is consulted on every request rather than
// baked into the token, so removing a client id revokes its tokens
// immediately.
package auth
