package embedder

import (
	"context"
	"time"

	"github.com/veldtlabs/embedgate/pkg/backend"
	"github.com/veldtlabs/embedgate/pkg/cache"
	"github.com/veldtlabs/embedgate/pkg/chunker"
	"github.com/veldtlabs/embedgate/pkg/fault"
	"github.com/veldtlabs/embedgate/pkg/logger"
	"github.com/veldtlabs/embedgate/pkg/metrics"
)

// Service is the cache-aside embedding pipeline. Given texts it probes the
// cache, batches all misses into a single backend call, writes the new
// vectors back, and assembles the result in input order.
type Service struct {
	store   *cache.Store
	encoder backend.Encoder
	chunks  *chunker.Chunker
	log     *logger.Logger
	metrics *metrics.Metrics
}

// NewService constructs the pipeline. metrics may be nil in tests.
func NewService(store *cache.Store, encoder backend.Encoder, chunks *chunker.Chunker, log *logger.Logger, m *metrics.Metrics) *Service {
	return &Service{
		store:   store,
		encoder: encoder,
		chunks:  chunks,
		log:     log,
		metrics: m,
	}
}

// GetEmbeddings returns one vector per input text, in input order. Cached
// texts are served without compute; all misses go to the backend in one
// batched call. A backend failure for any part of the batch fails the
// whole call — there is no partial success. Cache writes performed before
// a failure remain valid.
//
// Two concurrent calls missing on the identical (model, text) pair both
// reach the backend; the duplicate write is an idempotent overwrite.
func (s *Service) GetEmbeddings(ctx context.Context, modelAlias string, texts []string) ([][]float32, error) {
	vectors := make([][]float32, len(texts))

	var missedTexts []string
	var missedIndices []int

	for i, text := range texts {
		if vec, ok := s.store.Get(ctx, modelAlias, text); ok {
			vectors[i] = vec
			s.countHit()
			continue
		}
		missedTexts = append(missedTexts, text)
		missedIndices = append(missedIndices, i)
		s.countMiss()
	}

	if len(missedTexts) > 0 {
		start := time.Now()
		computed, err := s.encoder.Encode(ctx, modelAlias, missedTexts)
		s.observeBackend(time.Since(start))
		if err != nil {
			if backend.IsUnknownModel(err) {
				return nil, fault.Wrap(fault.Validation, "unknown model alias", err)
			}
			s.log.Error("embedder: backend encode failed", err, map[string]interface{}{
				"model": modelAlias,
				"batch": len(missedTexts),
			})
			return nil, fault.Wrap(fault.Backend, "encode failed", err)
		}
		if len(computed) != len(missedTexts) {
			return nil, fault.Errorf(fault.Backend, "backend returned %d vectors for %d texts", len(computed), len(missedTexts))
		}

		for j, vec := range computed {
			vectors[missedIndices[j]] = vec
			s.store.Set(ctx, modelAlias, missedTexts[j], vec)
		}
	}

	return vectors, nil
}

// ChunkAndEmbed splits every input text according to spec, flattens all
// chunks preserving per-text then per-chunk order, and embeds the flat
// sequence. It returns the chunk texts and their vectors, same length and
// order. An empty flattened list short-circuits without contacting the
// backend.
func (s *Service) ChunkAndEmbed(ctx context.Context, modelAlias string, texts []string, spec chunker.Spec) ([]string, [][]float32, error) {
	if err := spec.Validate(); err != nil {
		return nil, nil, err
	}

	allChunks := []string{}
	for _, text := range texts {
		chunks, err := s.chunks.Chunk(text, spec)
		if err != nil {
			return nil, nil, err
		}
		allChunks = append(allChunks, chunks...)
	}

	if len(allChunks) == 0 {
		return []string{}, [][]float32{}, nil
	}

	vectors, err := s.GetEmbeddings(ctx, modelAlias, allChunks)
	if err != nil {
		return nil, nil, err
	}
	return allChunks, vectors, nil
}

func (s *Service) countHit() {
	if s.metrics != nil {
		s.metrics.CacheHitsTotal.Inc()
	}
}

func (s *Service) countMiss() {
	if s.metrics != nil {
		s.metrics.CacheMissesTotal.Inc()
	}
}

func (s *Service) observeBackend(d time.Duration) {
	if s.metrics != nil {
		s.metrics.BackendDuration.Observe(d.Seconds())
	}
}
