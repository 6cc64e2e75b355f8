package auth

// IdentityKind classifies the resolved caller principal.
type IdentityKind string

const (
	// KindAnonymous is produced under ModeOpen.
	KindAnonymous IdentityKind = "anonymous"

	// KindMaster is produced when the shared secret matched.
	KindMaster IdentityKind = "master"

	// KindClient identifies a registered API client.
	KindClient IdentityKind = "client"

	// KindUser identifies a token subject under ModeBearer.
	KindUser IdentityKind = "user"
)

// Identity is the resolved caller principal. It is produced once per request
// and used as the rate-limit key and for downstream authorization decisions.
// Two identities are equal iff both Kind and ID match.
type Identity struct {
	Kind IdentityKind
	ID   string
}

// RateKey returns the key under which this identity is rate limited.
// Distinct identities never share a key, even when they originate from the
// same network address.
func (i Identity) RateKey() string {
	return string(i.Kind) + ":" + i.ID
}

// Anonymous is the identity every request resolves to under ModeOpen.
var Anonymous = Identity{Kind: KindAnonymous, ID: "anonymous"}

// Master is the identity resolved for the shared secret.
var Master = Identity{Kind: KindMaster, ID: "master"}

// Credentials carries the raw credential material extracted by a protocol
// front. Either field may be empty. The REST front fills APIKey from the
// X-API-Key header and Bearer from the Authorization header; the gRPC front
// reads the equivalent metadata keys.
type Credentials struct {
	APIKey string
	Bearer string
}
