package httpapi

import (
	"encoding/json"
	"net/http"

	"github.com/veldtlabs/embedgate/pkg/chunker"
	"github.com/veldtlabs/embedgate/pkg/fault"
)

func decodeBody(r *http.Request, dst interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return fault.Wrap(fault.Validation, "invalid request body", err)
	}
	return nil
}

// count records one handled request on the shared counter. kind is empty
// for success.
func (s *Server) count(route string, err error) {
	if s.metrics == nil {
		return
	}
	kind := ""
	if err != nil {
		kind = fault.KindOf(err).String()
	}
	s.metrics.RequestsTotal.WithLabelValues("http", route, kind).Inc()
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, StatusResponse{Status: "ok"})
}

func (s *Server) handleReady(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, ReadyResponse{
		Status:       "ready",
		ModelsLoaded: s.registry.Loaded(),
	})
}

func (s *Server) handleIssueToken(w http.ResponseWriter, r *http.Request) {
	const route = "/auth/token"

	var req TokenRequest
	if err := decodeBody(r, &req); err != nil {
		s.count(route, err)
		writeError(w, statusFor(err), err)
		return
	}
	if req.ClientID == "" {
		err := fault.New(fault.Validation, "client_id is required")
		s.count(route, err)
		writeError(w, statusFor(err), err)
		return
	}
	subject := req.Subject
	if subject == "" {
		subject = req.ClientID
	}

	token, err := s.issuer.IssueToken(subject, req.ClientID)
	if err != nil {
		s.count(route, err)
		s.log.Error("httpapi: token issuance failed", err, nil)
		writeError(w, http.StatusInternalServerError, err)
		return
	}

	s.count(route, nil)
	writeJSON(w, http.StatusOK, TokenResponse{
		AccessToken: token,
		TokenType:   "bearer",
		ExpiresIn:   int(s.issuer.TTL().Seconds()),
	})
}

func (s *Server) handleEmbed(w http.ResponseWriter, r *http.Request) {
	const route = "/embed"

	var req EmbedRequest
	if err := decodeBody(r, &req); err != nil {
		s.count(route, err)
		writeError(w, statusFor(err), err)
		return
	}
	texts, err := s.validateEmbedRequest(req.Model, req.Input)
	if err != nil {
		s.count(route, err)
		writeError(w, statusFor(err), err)
		return
	}

	ticket, err := s.pool.Acquire(r.Context())
	if err != nil {
		return
	}
	defer ticket.Release()

	vectors, err := s.service.GetEmbeddings(r.Context(), req.Model, texts)
	if err != nil {
		s.count(route, err)
		writeError(w, statusFor(err), err)
		return
	}

	s.count(route, nil)
	writeJSON(w, http.StatusOK, EmbedResponse{
		Model:   req.Model,
		Dims:    dimsOf(vectors),
		Vectors: vectors,
	})
}

func (s *Server) handleChunk(w http.ResponseWriter, r *http.Request) {
	const route = "/embed/chunk"

	var req ChunkRequest
	if err := decodeBody(r, &req); err != nil {
		s.count(route, err)
		writeError(w, statusFor(err), err)
		return
	}
	texts, err := s.validateEmbedRequest(req.Model, req.Input)
	if err != nil {
		s.count(route, err)
		writeError(w, statusFor(err), err)
		return
	}

	spec := chunker.Spec{
		Method:  chunker.Method(req.Method),
		Size:    req.Size,
		Overlap: req.Overlap,
	}
	if req.Method == "" {
		spec.Method = chunker.DefaultMethod
	}
	if req.Size == 0 {
		spec.Size = chunker.DefaultSize
	}

	ticket, err := s.pool.Acquire(r.Context())
	if err != nil {
		return
	}
	defer ticket.Release()

	chunks, vectors, err := s.service.ChunkAndEmbed(r.Context(), req.Model, texts, spec)
	if err != nil {
		s.count(route, err)
		writeError(w, statusFor(err), err)
		return
	}

	s.count(route, nil)
	writeJSON(w, http.StatusOK, ChunkResponse{
		Model:   req.Model,
		Chunks:  chunks,
		Vectors: vectors,
	})
}

// handleOpenAIEmbeddings serves the OpenAI-compatible surface. Its error
// contract differs from the native routes: every caller mistake is a 400.
func (s *Server) handleOpenAIEmbeddings(w http.ResponseWriter, r *http.Request) {
	const route = "/v1/embeddings"

	var req OpenAIEmbedRequest
	if err := decodeBody(r, &req); err != nil {
		s.count(route, err)
		writeError(w, http.StatusBadRequest, err)
		return
	}
	if req.Model == "" {
		err := fault.New(fault.Validation, "model is required")
		s.count(route, err)
		writeError(w, http.StatusBadRequest, err)
		return
	}
	texts, err := normalizeOpenAIInput(req.Input)
	if err != nil {
		s.count(route, err)
		writeError(w, http.StatusBadRequest, err)
		return
	}

	ticket, err := s.pool.Acquire(r.Context())
	if err != nil {
		return
	}
	defer ticket.Release()

	vectors, err := s.service.GetEmbeddings(r.Context(), req.Model, texts)
	if err != nil {
		status := statusFor(err)
		if status == http.StatusUnprocessableEntity {
			status = http.StatusBadRequest
		}
		s.count(route, err)
		writeError(w, status, err)
		return
	}

	data := make([]OpenAIEmbeddingObject, len(vectors))
	tokens := 0
	for i, vec := range vectors {
		data[i] = OpenAIEmbeddingObject{Object: "embedding", Embedding: vec, Index: i}
		tokens += s.chunks.CountTokens(texts[i])
	}

	s.count(route, nil)
	writeJSON(w, http.StatusOK, OpenAIEmbedResponse{
		Object: "list",
		Data:   data,
		Model:  req.Model,
		Usage:  OpenAIUsage{PromptTokens: tokens, TotalTokens: tokens},
	})
}

func (s *Server) handleLoadModel(w http.ResponseWriter, r *http.Request) {
	const route = "/admin/load-model"

	var req LoadModelRequest
	if err := decodeBody(r, &req); err != nil {
		s.count(route, err)
		writeError(w, statusFor(err), err)
		return
	}
	if req.Alias == "" {
		err := fault.New(fault.Validation, "alias is required")
		s.count(route, err)
		writeError(w, statusFor(err), err)
		return
	}

	if err := s.registry.Load(req.Alias, req.ModelName, req.Device); err != nil {
		s.count(route, err)
		writeError(w, http.StatusBadRequest, err)
		return
	}

	s.count(route, nil)
	writeJSON(w, http.StatusOK, StatusResponse{Status: "ok", Message: "model loaded: " + req.Alias})
}

func (s *Server) handleUnloadModel(w http.ResponseWriter, r *http.Request) {
	const route = "/admin/unload-model"

	var req UnloadModelRequest
	if err := decodeBody(r, &req); err != nil {
		s.count(route, err)
		writeError(w, statusFor(err), err)
		return
	}
	if req.Alias == "" {
		err := fault.New(fault.Validation, "alias is required")
		s.count(route, err)
		writeError(w, statusFor(err), err)
		return
	}

	s.registry.Unload(req.Alias)
	s.count(route, nil)
	writeJSON(w, http.StatusOK, StatusResponse{Status: "ok", Message: "model unloaded: " + req.Alias})
}

// validateEmbedRequest checks the shared model/input contract of the
// native embedding routes.
func (s *Server) validateEmbedRequest(model string, input json.RawMessage) ([]string, error) {
	if model == "" {
		return nil, fault.New(fault.Validation, "model is required")
	}
	return normalizeInput(input)
}

func dimsOf(vectors [][]float32) int {
	if len(vectors) == 0 {
		return 0
	}
	return len(vectors[0])
}
