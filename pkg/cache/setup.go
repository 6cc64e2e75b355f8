package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"sync"

	"github.com/redis/go-redis/v9"

	"github.com/veldtlabs/embedgate/pkg/logger"
)

// Remote is the narrow slice of the Redis capability the store needs:
// GET and SETEX. The production implementation is a go-redis client; tests
// substitute a fake.
type Remote interface {
	Get(ctx context.Context, key string) (string, error)
	SetEX(ctx context.Context, key, value string, ttl int) error
}

// Store implements cache-aside storage for embedding vectors.
//
// Reads consult the external store first and fall back to a bounded
// in-process map. Any external-store failure is logged and degraded, never
// surfaced to the caller. Writes attempt the external store with the
// configured TTL and unconditionally also write the in-process fallback.
//
// Known limitation: the fallback's eviction is a wholesale reset once the
// map exceeds its capacity, not an LRU. This keeps the hot path to a single
// map operation and is acceptable because the fallback only serves requests
// while the external store is unreachable.
type Store struct {
	cfg    Config
	remote Remote
	log    *logger.Logger

	mu    sync.Mutex
	local map[string][]float32
}

// NewStore constructs a Store. remote may be nil, in which case only the
// in-process fallback operates.
func NewStore(cfg Config, remote Remote, log *logger.Logger) *Store {
	return &Store{
		cfg:    cfg,
		remote: remote,
		log:    log,
		local:  make(map[string][]float32),
	}
}

// Key derives the deterministic cache key for a (model, text) pair. The
// derivation is stable across process restarts so a warm external cache is
// reusable: hex(sha256(model + ":" + text)).
func Key(model, text string) string {
	sum := sha256.Sum256([]byte(model + ":" + text))
	return hex.EncodeToString(sum[:])
}

// Get returns the cached vector for (model, text), or false on a miss.
func (s *Store) Get(ctx context.Context, model, text string) ([]float32, bool) {
	if !s.cfg.Enabled {
		return nil, false
	}

	key := Key(model, text)

	if s.remote != nil {
		raw, err := s.remote.Get(ctx, key)
		switch {
		case errors.Is(err, redis.Nil):
			// Plain miss, fall through to the local map.
		case err != nil:
			s.log.Error("cache: external store get failed", err, map[string]interface{}{
				"key": key,
			})
		default:
			var vec []float32
			if jsonErr := json.Unmarshal([]byte(raw), &vec); jsonErr == nil {
				return vec, true
			}
			s.log.Warn("cache: discarding undecodable entry", nil, map[string]interface{}{
				"key": key,
			})
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	vec, ok := s.local[key]
	return vec, ok
}

// Set stores the vector for (model, text). External-store failures are
// logged and swallowed; the in-process fallback is always written.
func (s *Store) Set(ctx context.Context, model, text string, vec []float32) {
	if !s.cfg.Enabled {
		return
	}

	key := Key(model, text)

	if s.remote != nil {
		if raw, err := json.Marshal(vec); err == nil {
			if err := s.remote.SetEX(ctx, key, string(raw), int(s.cfg.TTL.Seconds())); err != nil {
				s.log.Error("cache: external store set failed", err, map[string]interface{}{
					"key": key,
				})
			}
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.local) > s.cfg.LocalCapacity {
		// Full reset, not LRU. See the type comment.
		s.local = make(map[string][]float32)
	}
	s.local[key] = vec
}

// LocalLen reports the fallback map size. Exposed for tests and diagnostics.
func (s *Store) LocalLen() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.local)
}
