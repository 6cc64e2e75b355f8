package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"
)

// InferenceProvider computes embeddings through an OpenAI-compatible
// inference service. It resolves the model alias through the Registry
// first, so an unknown alias fails before any HTTP work.
//
// InferenceProvider implements Encoder.
type InferenceProvider struct {
	baseURL      string
	serviceToken string
	registry     *Registry
	httpClient   *http.Client
}

// NewInferenceProvider constructs the provider from Config.
func NewInferenceProvider(cfg Config, registry *Registry) (*InferenceProvider, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &InferenceProvider{
		baseURL:      strings.TrimRight(cfg.Endpoint, "/"),
		serviceToken: cfg.ServiceToken,
		registry:     registry,
		httpClient:   &http.Client{Timeout: time.Duration(cfg.HTTPTimeoutS) * time.Second},
	}, nil
}

// Encode computes one vector per text via the /v1/embeddings endpoint.
func (p *InferenceProvider) Encode(ctx context.Context, modelAlias string, texts []string) ([][]float32, error) {
	if len(texts) == 0 {
		return [][]float32{}, nil
	}

	spec, err := p.registry.Resolve(modelAlias)
	if err != nil {
		return nil, err
	}

	reqBody := map[string]any{
		"model": spec.Name,
		"input": texts,
	}

	var parsed struct {
		Data []struct {
			Embedding []float32 `json:"embedding"`
			Index     int       `json:"index"`
		} `json:"data"`
	}

	url := fmt.Sprintf("%s/v1/embeddings", p.baseURL)
	if err := p.postJSON(ctx, url, reqBody, &parsed); err != nil {
		return nil, err
	}

	if len(parsed.Data) != len(texts) {
		return nil, fmt.Errorf("backend: expected %d embeddings, got %d", len(texts), len(parsed.Data))
	}

	out := make([][]float32, len(texts))
	for _, d := range parsed.Data {
		if d.Index < 0 || d.Index >= len(out) {
			return nil, fmt.Errorf("backend: embedding index %d out of range", d.Index)
		}
		out[d.Index] = d.Embedding
	}
	return out, nil
}

// postJSON sends a POST request, handles HTTP error codes, and decodes the
// response JSON into out.
func (p *InferenceProvider) postJSON(ctx context.Context, url string, body, out any) error {
	data, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("backend: encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("backend: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if p.serviceToken != "" {
		req.Header.Set("Authorization", "Bearer "+p.serviceToken)
	}

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("backend: http error: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return fmt.Errorf("backend: http %d for %s", resp.StatusCode, url)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("backend: decode response: %w", err)
	}
	return nil
}
