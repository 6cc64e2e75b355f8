package grpcapi

import (
	"context"
	"errors"
	"io"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/veldtlabs/embedgate/pkg/admission"
	"github.com/veldtlabs/embedgate/pkg/chunker"
	"github.com/veldtlabs/embedgate/pkg/embedder"
	"github.com/veldtlabs/embedgate/pkg/fault"
	"github.com/veldtlabs/embedgate/pkg/grpcapi/embedv1"
	"github.com/veldtlabs/embedgate/pkg/logger"
	"github.com/veldtlabs/embedgate/pkg/metrics"
)

// Service implements embedgate.v1.EmbeddingService on top of the same
// pipeline and admission pool the REST front uses.
type Service struct {
	embedv1.UnimplementedEmbeddingServiceServer

	pool     *admission.Controller
	pipeline *embedder.Service
	metrics  *metrics.Metrics
	log      *logger.Logger
}

// NewService constructs the RPC service. metrics may be nil in tests.
func NewService(pool *admission.Controller, pipeline *embedder.Service, m *metrics.Metrics, log *logger.Logger) *Service {
	return &Service{
		pool:     pool,
		pipeline: pipeline,
		metrics:  m,
		log:      log,
	}
}

// Embed returns one vector per input text, in input order.
func (s *Service) Embed(ctx context.Context, req *embedv1.EmbedRequest) (*embedv1.EmbedResponse, error) {
	vectors, err := s.embed(ctx, req.GetModel(), req.GetInput())
	s.count("Embed", err)
	if err != nil {
		return nil, statusFromFault(ctx, err)
	}
	return &embedv1.EmbedResponse{
		Model:   req.GetModel(),
		Dims:    int32(dimsOf(vectors)),
		Vectors: toProtoVectors(vectors),
	}, nil
}

// EmbedStream handles each request message independently: a failure is
// reported in that message's response and the stream keeps going.
func (s *Service) EmbedStream(stream embedv1.EmbeddingService_EmbedStreamServer) error {
	for {
		req, err := stream.Recv()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}

		resp := &embedv1.EmbedResponse{Model: req.GetModel()}
		vectors, err := s.embed(stream.Context(), req.GetModel(), req.GetInput())
		s.count("EmbedStream", err)
		if err != nil {
			if ctxErr := stream.Context().Err(); ctxErr != nil {
				return status.FromContextError(ctxErr).Err()
			}
			resp.Error = errorDetail(err)
		} else {
			resp.Dims = int32(dimsOf(vectors))
			resp.Vectors = toProtoVectors(vectors)
		}

		if err := stream.Send(resp); err != nil {
			return err
		}
	}
}

// ChunkAndEmbed splits the inputs and embeds the flattened chunks.
func (s *Service) ChunkAndEmbed(ctx context.Context, req *embedv1.ChunkRequest) (*embedv1.ChunkResponse, error) {
	run := func() (*embedv1.ChunkResponse, error) {
		if req.GetModel() == "" {
			return nil, fault.New(fault.Validation, "model is required")
		}

		spec := chunker.Spec{
			Method:  chunker.Method(req.GetMethod()),
			Size:    int(req.GetSize()),
			Overlap: int(req.GetOverlap()),
		}
		if req.GetMethod() == "" {
			spec.Method = chunker.DefaultMethod
		}
		if req.GetSize() == 0 {
			spec.Size = chunker.DefaultSize
		}

		ticket, err := s.pool.Acquire(ctx)
		if err != nil {
			return nil, err
		}
		defer ticket.Release()

		chunks, vectors, err := s.pipeline.ChunkAndEmbed(ctx, req.GetModel(), req.GetInput(), spec)
		if err != nil {
			return nil, err
		}
		return &embedv1.ChunkResponse{
			Model:   req.GetModel(),
			Chunks:  chunks,
			Vectors: toProtoVectors(vectors),
		}, nil
	}

	resp, err := run()
	s.count("ChunkAndEmbed", err)
	if err != nil {
		return nil, statusFromFault(ctx, err)
	}
	return resp, nil
}

// embed is the shared unary/stream path: validate, admit, compute.
func (s *Service) embed(ctx context.Context, model string, input []string) ([][]float32, error) {
	if model == "" {
		return nil, fault.New(fault.Validation, "model is required")
	}

	ticket, err := s.pool.Acquire(ctx)
	if err != nil {
		return nil, err
	}
	defer ticket.Release()

	return s.pipeline.GetEmbeddings(ctx, model, input)
}

func (s *Service) count(method string, err error) {
	if s.metrics == nil {
		return
	}
	kind := ""
	if err != nil {
		kind = fault.KindOf(err).String()
	}
	s.metrics.RequestsTotal.WithLabelValues("grpc", method, kind).Inc()
}

// statusFromFault is the single fault-kind to status-code mapping of the
// RPC front.
func statusFromFault(ctx context.Context, err error) error {
	if ctxErr := ctx.Err(); ctxErr != nil {
		return status.FromContextError(ctxErr).Err()
	}
	switch {
	case fault.IsValidation(err):
		return status.Error(codes.InvalidArgument, err.Error())
	case fault.IsAuth(err):
		return status.Error(codes.PermissionDenied, err.Error())
	case fault.IsRateLimit(err):
		return status.Error(codes.ResourceExhausted, err.Error())
	default:
		return status.Error(codes.Internal, errorDetail(err))
	}
}

// errorDetail hides backend internals from callers, same as the REST front.
func errorDetail(err error) string {
	if fault.IsValidation(err) || fault.IsAuth(err) || fault.IsRateLimit(err) {
		return err.Error()
	}
	return "internal error"
}

func toProtoVectors(vectors [][]float32) []*embedv1.Vector {
	out := make([]*embedv1.Vector, len(vectors))
	for i, vec := range vectors {
		out[i] = &embedv1.Vector{Values: vec}
	}
	return out
}

func dimsOf(vectors [][]float32) int {
	if len(vectors) == 0 {
		return 0
	}
	return len(vectors[0])
}
