package auth

import (
	"testing"
	"time"

	"github.com/veldtlabs/embedgate/pkg/fault"
)

func testConfig(mode Mode) Config {
	return Config{
		Mode:      mode,
		APIKey:    "master-secret",
		JWTSecret: "test-signing-secret",
		TokenTTL:  time.Hour,
		RegisteredClientIDs: map[string]struct{}{
			"registered-client": {},
		},
	}
}

func newTestResolver(mode Mode) (*Resolver, *Issuer) {
	cfg := testConfig(mode)
	issuer := NewIssuer(cfg)
	return NewResolver(cfg, issuer), issuer
}

func TestResolve_OpenMode(t *testing.T) {
	r, _ := newTestResolver(ModeOpen)

	for _, creds := range []Credentials{
		{},
		{APIKey: "anything"},
		{Bearer: "garbage"},
		{APIKey: "wrong", Bearer: "also-wrong"},
	} {
		id, err := r.Resolve(creds)
		if err != nil {
			t.Fatalf("open mode must never fail, got %v", err)
		}
		if id != Anonymous {
			t.Errorf("expected anonymous identity, got %+v", id)
		}
	}
}

func TestResolve_SharedSecretViaHeader(t *testing.T) {
	r, _ := newTestResolver(ModeSharedSecret)

	id, err := r.Resolve(Credentials{APIKey: "master-secret"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if id != Master {
		t.Errorf("expected master identity, got %+v", id)
	}
}

func TestResolve_SharedSecretViaBearer(t *testing.T) {
	r, _ := newTestResolver(ModeSharedSecret)

	id, err := r.Resolve(Credentials{Bearer: "master-secret"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if id != Master {
		t.Errorf("expected master identity, got %+v", id)
	}
}

func TestResolve_SharedSecretRejectsWrongValue(t *testing.T) {
	r, _ := newTestResolver(ModeSharedSecret)

	for _, creds := range []Credentials{
		{},
		{APIKey: "wrong"},
		{Bearer: "wrong"},
	} {
		_, err := r.Resolve(creds)
		if err == nil {
			t.Fatalf("expected auth error for %+v", creds)
		}
		if !fault.IsAuth(err) {
			t.Errorf("expected fault.Auth, got %v", err)
		}
	}
}

func TestResolve_BearerHappyPath(t *testing.T) {
	r, issuer := newTestResolver(ModeBearer)

	token, err := issuer.IssueToken("alice", "registered-client")
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}

	id, err := r.Resolve(Credentials{Bearer: token})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if id.Kind != KindUser || id.ID != "alice" {
		t.Errorf("expected {user alice}, got %+v", id)
	}
}

func TestResolve_BearerMissingToken(t *testing.T) {
	r, _ := newTestResolver(ModeBearer)

	_, err := r.Resolve(Credentials{})
	if !fault.IsAuth(err) {
		t.Errorf("expected fault.Auth, got %v", err)
	}
}

func TestResolve_BearerMalformedToken(t *testing.T) {
	r, _ := newTestResolver(ModeBearer)

	_, err := r.Resolve(Credentials{Bearer: "not-a-jwt"})
	if !fault.IsAuth(err) {
		t.Errorf("expected fault.Auth, got %v", err)
	}
}

func TestResolve_BearerExpiredToken(t *testing.T) {
	cfg := testConfig(ModeBearer)
	issuer := NewIssuer(cfg)
	issuer.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }
	r := NewResolver(cfg, issuer)

	token, err := issuer.IssueToken("alice", "registered-client")
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}

	_, err = r.Resolve(Credentials{Bearer: token})
	if !fault.IsAuth(err) {
		t.Errorf("expected fault.Auth for expired token, got %v", err)
	}
}

func TestResolve_BearerUnregisteredClientID(t *testing.T) {
	r, issuer := newTestResolver(ModeBearer)

	// Valid signature, valid expiry, but the client id is not allowlisted.
	token, err := issuer.IssueToken("bob", "rogue-client")
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}

	_, err = r.Resolve(Credentials{Bearer: token})
	if !fault.IsAuth(err) {
		t.Errorf("expected fault.Auth for unregistered client id, got %v", err)
	}
}

func TestResolve_DistinctSubjectsDistinctIdentities(t *testing.T) {
	r, issuer := newTestResolver(ModeBearer)

	tokenA, _ := issuer.IssueToken("alice", "registered-client")
	tokenB, _ := issuer.IssueToken("bob", "registered-client")

	idA, err := r.Resolve(Credentials{Bearer: tokenA})
	if err != nil {
		t.Fatalf("resolve alice: %v", err)
	}
	idB, err := r.Resolve(Credentials{Bearer: tokenB})
	if err != nil {
		t.Fatalf("resolve bob: %v", err)
	}

	if idA == idB {
		t.Error("different subjects must resolve to distinct identities")
	}
	if idA.RateKey() == idB.RateKey() {
		t.Error("different subjects must be throttled independently")
	}
}

func TestResolveMaster_IndependentOfMode(t *testing.T) {
	for _, mode := range []Mode{ModeOpen, ModeSharedSecret, ModeBearer} {
		r, _ := newTestResolver(mode)

		id, err := r.ResolveMaster(Credentials{APIKey: "master-secret"})
		if err != nil {
			t.Fatalf("mode %s: unexpected error: %v", mode, err)
		}
		if id != Master {
			t.Errorf("mode %s: expected master identity, got %+v", mode, id)
		}
	}
}

func TestResolveMaster_RejectsBearerToken(t *testing.T) {
	r, issuer := newTestResolver(ModeBearer)

	// A perfectly valid user token must not pass the master-only gate.
	token, _ := issuer.IssueToken("alice", "registered-client")

	_, err := r.ResolveMaster(Credentials{Bearer: token})
	if !fault.IsAuth(err) {
		t.Errorf("expected fault.Auth, got %v", err)
	}
}

func TestParseClientIDs(t *testing.T) {
	got := parseClientIDs(`["a", "b"]`)
	if len(got) != 2 {
		t.Errorf("JSON list: expected 2 ids, got %v", got)
	}

	got = parseClientIDs("a, b ,c")
	if len(got) != 3 {
		t.Errorf("comma list: expected 3 ids, got %v", got)
	}
	if _, ok := got["b"]; !ok {
		t.Error("comma list entries should be trimmed")
	}

	got = parseClientIDs("")
	if len(got) != 0 {
		t.Errorf("empty input: expected no ids, got %v", got)
	}
}
