package grpcapi

import (
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	"github.com/veldtlabs/embedgate/pkg/admission"
	"github.com/veldtlabs/embedgate/pkg/auth"
	"github.com/veldtlabs/embedgate/pkg/cache"
	"github.com/veldtlabs/embedgate/pkg/chunker"
	"github.com/veldtlabs/embedgate/pkg/embedder"
	"github.com/veldtlabs/embedgate/pkg/grpcapi/embedv1"
	"github.com/veldtlabs/embedgate/pkg/logger"
	"github.com/veldtlabs/embedgate/pkg/ratelimit"
)

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
		out[i] = []float32{float32(len(text)), 1}
	}
	return out, nil
}

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

func newTestService(encErr error) (*Service, *fakeEncoder) {
	enc := &fakeEncoder{err: encErr}
	log := logger.NewNop()
	store := cache.NewStore(cache.Config{Enabled: true, TTL: time.Hour, LocalCapacity: 1000}, nil, log)
	pipeline := embedder.NewService(store, enc, chunker.NewChunker(&runeTokenizer{}), log, nil)
	return NewService(admission.NewController(admission.Config{MaxInflight: 4}), pipeline, nil, log), enc
}

type fakeBidiStream struct {
	grpc.ServerStream
	ctx context.Context
	in  []*embedv1.EmbedRequest
	out []*embedv1.EmbedResponse
}

func (f *fakeBidiStream) Context() context.Context {
	return f.ctx
}

func (f *fakeBidiStream) Recv() (*embedv1.EmbedRequest, error) {
	if len(f.in) == 0 {
		return nil, io.EOF
	}
	req := f.in[0]
	f.in = f.in[1:]
	return req, nil
}

func (f *fakeBidiStream) Send(resp *embedv1.EmbedResponse) error {
	f.out = append(f.out, resp)
	return nil
}

func TestEmbed_ReturnsVectorsInOrder(t *testing.T) {
	svc, _ := newTestService(nil)

	resp, err := svc.Embed(context.Background(), &embedv1.EmbedRequest{
		Model: "minilm",
		Input: []string{"aa", "bbbb"},
	})
	require.NoError(t, err)

	assert.Equal(t, "minilm", resp.GetModel())
	assert.Equal(t, int32(2), resp.GetDims())
	require.Len(t, resp.GetVectors(), 2)
	assert.Equal(t, float32(2), resp.GetVectors()[0].GetValues()[0])
	assert.Equal(t, float32(4), resp.GetVectors()[1].GetValues()[0])
}

func TestEmbed_MissingModelIsInvalidArgument(t *testing.T) {
	svc, _ := newTestService(nil)

	_, err := svc.Embed(context.Background(), &embedv1.EmbedRequest{Input: []string{"x"}})
	require.Error(t, err)
	assert.Equal(t, codes.InvalidArgument, status.Code(err))
}

func TestEmbed_BackendFailureIsInternalAndMasked(t *testing.T) {
	svc, _ := newTestService(assert.AnError)

	_, err := svc.Embed(context.Background(), &embedv1.EmbedRequest{
		Model: "minilm",
		Input: []string{"x"},
	})
	require.Error(t, err)
	st, ok := status.FromError(err)
	require.True(t, ok)
	assert.Equal(t, codes.Internal, st.Code())
	assert.Equal(t, "internal error", st.Message(), "backend details must not leak")
}

func TestChunkAndEmbed_ReturnsChunksAndVectors(t *testing.T) {
	svc, _ := newTestService(nil)

	resp, err := svc.ChunkAndEmbed(context.Background(), &embedv1.ChunkRequest{
		Model:  "minilm",
		Input:  []string{"abcdefghij"},
		Method: "char",
		Size:   5,
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"abcde", "fghij"}, resp.GetChunks())
	assert.Len(t, resp.GetVectors(), 2)
}

func TestChunkAndEmbed_InvalidSpecIsInvalidArgument(t *testing.T) {
	svc, enc := newTestService(nil)

	_, err := svc.ChunkAndEmbed(context.Background(), &embedv1.ChunkRequest{
		Model:   "minilm",
		Input:   []string{"abcdef"},
		Method:  "char",
		Size:    3,
		Overlap: 3,
	})
	require.Error(t, err)
	assert.Equal(t, codes.InvalidArgument, status.Code(err))
	assert.Empty(t, enc.batches)
}

func TestEmbedStream_PerMessageIndependence(t *testing.T) {
	svc, _ := newTestService(nil)

	stream := &fakeBidiStream{
		ctx: context.Background(),
		in: []*embedv1.EmbedRequest{
			{Model: "minilm", Input: []string{"first"}},
			{Input: []string{"no model"}},
			{Model: "minilm", Input: []string{"third"}},
		},
	}
	require.NoError(t, svc.EmbedStream(stream))
	require.Len(t, stream.out, 3)

	assert.Empty(t, stream.out[0].GetError())
	assert.Len(t, stream.out[0].GetVectors(), 1)

	// The bad message fails alone; the stream continues past it.
	assert.NotEmpty(t, stream.out[1].GetError())
	assert.Empty(t, stream.out[1].GetVectors())

	assert.Empty(t, stream.out[2].GetError())
	assert.Len(t, stream.out[2].GetVectors(), 1)
}

func newTestServer(t *testing.T, authCfg auth.Config, rateCfg ratelimit.Config) *Server {
	t.Helper()

	svc, _ := newTestService(nil)
	issuer := auth.NewIssuer(authCfg)
	return NewServer(
		Config{Address: ":0"},
		auth.NewResolver(authCfg, issuer),
		ratelimit.NewLimiter(rateCfg),
		svc,
		nil,
		logger.NewNop(),
	)
}

func TestAdmit_SharedSecretMetadata(t *testing.T) {
	srv := newTestServer(t,
		auth.Config{Mode: auth.ModeSharedSecret, APIKey: "s3cret", TokenTTL: time.Hour},
		ratelimit.Config{MaxRequests: 100, Window: time.Minute},
	)

	_, err := srv.admit(context.Background())
	require.Error(t, err)
	assert.Equal(t, codes.PermissionDenied, status.Code(err))

	ctx := metadata.NewIncomingContext(context.Background(), metadata.Pairs("x-api-key", "s3cret"))
	admitted, err := srv.admit(ctx)
	require.NoError(t, err)

	id, ok := IdentityFrom(admitted)
	require.True(t, ok)
	assert.Equal(t, auth.Master, id)
}

func TestAdmit_RateLimitIsResourceExhausted(t *testing.T) {
	srv := newTestServer(t,
		auth.Config{Mode: auth.ModeOpen, TokenTTL: time.Hour},
		ratelimit.Config{MaxRequests: 1, Window: time.Minute},
	)

	_, err := srv.admit(context.Background())
	require.NoError(t, err)

	_, err = srv.admit(context.Background())
	require.Error(t, err)
	assert.Equal(t, codes.ResourceExhausted, status.Code(err))
}
