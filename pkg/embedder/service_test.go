package embedder

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/veldtlabs/embedgate/pkg/backend"
	"github.com/veldtlabs/embedgate/pkg/cache"
	"github.com/veldtlabs/embedgate/pkg/chunker"
	"github.com/veldtlabs/embedgate/pkg/fault"
	"github.com/veldtlabs/embedgate/pkg/logger"
)

// fakeEncoder returns a deterministic vector per text and records every
// batch it receives.
type fakeEncoder struct {
	batches [][]string
	err     error
}

func (f *fakeEncoder) Encode(ctx context.Context, modelAlias string, texts []string) ([][]float32, error) {
	f.batches = append(f.batches, append([]string(nil), texts...))
	if f.err != nil {
		return nil, f.err
	}
	out := make([][]float32, len(texts))
	for i, text := range texts {
		out[i] = []float32{float32(len(text)), float32(len(modelAlias))}
	}
	return out, nil
}

// runeTokenizer tokenizes each rune, good enough for chunking in tests.
type runeTokenizer struct{ runes []rune }

func (r *runeTokenizer) Encode(text string) []int {
	r.runes = []rune(text)
	ids := make([]int, len(r.runes))
	for i := range ids {
		ids[i] = i
	}
	return ids
}

func (r *runeTokenizer) Decode(tokens []int) string {
	var b strings.Builder
	for _, id := range tokens {
		b.WriteRune(r.runes[id])
	}
	return b.String()
}

func newTestService(enc backend.Encoder) (*Service, *cache.Store) {
	store := cache.NewStore(cache.Config{
		Enabled:       true,
		TTL:           time.Hour,
		LocalCapacity: 1000,
	}, nil, logger.NewNop())
	svc := NewService(store, enc, chunker.NewChunker(&runeTokenizer{}), logger.NewNop(), nil)
	return svc, store
}

func TestGetEmbeddings_OrderAndLength(t *testing.T) {
	enc := &fakeEncoder{}
	svc, _ := newTestService(enc)

	texts := []string{"aa", "bbbb", "c"}
	vectors, err := svc.GetEmbeddings(context.Background(), "minilm", texts)
	require.NoError(t, err)
	require.Len(t, vectors, len(texts))

	// Vector i encodes len(texts[i]); order must match input order.
	assert.Equal(t, float32(2), vectors[0][0])
	assert.Equal(t, float32(4), vectors[1][0])
	assert.Equal(t, float32(1), vectors[2][0])
}

func TestGetEmbeddings_SecondCallServedFromCache(t *testing.T) {
	enc := &fakeEncoder{}
	svc, _ := newTestService(enc)
	ctx := context.Background()

	texts := []string{"alpha", "beta"}
	first, err := svc.GetEmbeddings(ctx, "minilm", texts)
	require.NoError(t, err)
	require.Len(t, enc.batches, 1)

	second, err := svc.GetEmbeddings(ctx, "minilm", texts)
	require.NoError(t, err)

	assert.Len(t, enc.batches, 1, "fully cached call must not invoke the backend")
	assert.Equal(t, first, second)
}

func TestGetEmbeddings_PartialHitsBatchOnlyMisses(t *testing.T) {
	enc := &fakeEncoder{}
	svc, _ := newTestService(enc)
	ctx := context.Background()

	_, err := svc.GetEmbeddings(ctx, "minilm", []string{"cached"})
	require.NoError(t, err)

	vectors, err := svc.GetEmbeddings(ctx, "minilm", []string{"new-1", "cached", "new-2"})
	require.NoError(t, err)
	require.Len(t, vectors, 3)

	// The second backend call must contain exactly the misses, in order.
	require.Len(t, enc.batches, 2)
	assert.Equal(t, []string{"new-1", "new-2"}, enc.batches[1])

	// The cached entry landed at its original index.
	assert.Equal(t, float32(len("cached")), vectors[1][0])
}

func TestGetEmbeddings_CacheIsPerModel(t *testing.T) {
	enc := &fakeEncoder{}
	svc, _ := newTestService(enc)
	ctx := context.Background()

	_, err := svc.GetEmbeddings(ctx, "minilm", []string{"text"})
	require.NoError(t, err)
	_, err = svc.GetEmbeddings(ctx, "mpnet", []string{"text"})
	require.NoError(t, err)

	assert.Len(t, enc.batches, 2, "same text under a different model is a distinct cache entry")
}

func TestGetEmbeddings_UnknownModelIsValidation(t *testing.T) {
	enc := &fakeEncoder{err: fmt.Errorf("resolve: %w", backend.ErrUnknownModel)}
	svc, _ := newTestService(enc)

	_, err := svc.GetEmbeddings(context.Background(), "nope", []string{"text"})
	require.Error(t, err)
	assert.True(t, fault.IsValidation(err), "unknown model must surface as a validation fault")
}

func TestGetEmbeddings_BackendFailureFailsWholeBatch(t *testing.T) {
	enc := &fakeEncoder{err: errors.New("cuda out of memory")}
	svc, _ := newTestService(enc)

	vectors, err := svc.GetEmbeddings(context.Background(), "minilm", []string{"a", "b"})
	require.Error(t, err)
	assert.True(t, fault.IsBackend(err))
	assert.Nil(t, vectors, "no partial vectors on backend failure")
}

func TestGetEmbeddings_EarlierCacheWritesSurviveFailure(t *testing.T) {
	enc := &fakeEncoder{}
	svc, store := newTestService(enc)
	ctx := context.Background()

	_, err := svc.GetEmbeddings(ctx, "minilm", []string{"survivor"})
	require.NoError(t, err)

	enc.err = errors.New("backend down")
	_, err = svc.GetEmbeddings(ctx, "minilm", []string{"survivor", "fresh"})
	require.Error(t, err)

	// The earlier write is still valid; cache entries are never rolled back.
	_, ok := store.Get(ctx, "minilm", "survivor")
	assert.True(t, ok)
}

func TestGetEmbeddings_EmptyInput(t *testing.T) {
	enc := &fakeEncoder{}
	svc, _ := newTestService(enc)

	vectors, err := svc.GetEmbeddings(context.Background(), "minilm", nil)
	require.NoError(t, err)
	assert.Empty(t, vectors)
	assert.Empty(t, enc.batches)
}

func TestChunkAndEmbed_FlattensInOrder(t *testing.T) {
	enc := &fakeEncoder{}
	svc, _ := newTestService(enc)

	spec := chunker.Spec{Method: chunker.MethodChar, Size: 5, Overlap: 0}
	chunks, vectors, err := svc.ChunkAndEmbed(context.Background(), "minilm", []string{"abcdefghij", "xyz"}, spec)
	require.NoError(t, err)

	assert.Equal(t, []string{"abcde", "fghij", "xyz"}, chunks)
	require.Len(t, vectors, 3)
	require.Len(t, enc.batches, 1, "all chunks go to the backend in one batch")
}

func TestChunkAndEmbed_EmptyInputShortCircuits(t *testing.T) {
	enc := &fakeEncoder{}
	svc, _ := newTestService(enc)

	spec := chunker.Spec{Method: chunker.MethodChar, Size: 5, Overlap: 0}
	chunks, vectors, err := svc.ChunkAndEmbed(context.Background(), "minilm", []string{}, spec)
	require.NoError(t, err)

	assert.Empty(t, chunks)
	assert.Empty(t, vectors)
	assert.Empty(t, enc.batches, "empty input must not contact the backend")
}

func TestChunkAndEmbed_InvalidSpecFailsBeforeBackend(t *testing.T) {
	enc := &fakeEncoder{}
	svc, _ := newTestService(enc)

	spec := chunker.Spec{Method: chunker.MethodChar, Size: 3, Overlap: 3}
	_, _, err := svc.ChunkAndEmbed(context.Background(), "minilm", []string{"abcdef"}, spec)
	require.Error(t, err)
	assert.True(t, fault.IsValidation(err))
	assert.Empty(t, enc.batches)
}
