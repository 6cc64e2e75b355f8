package httpapi

import "encoding/json"

// TokenRequest asks for a short-lived access token. Subject defaults to
// the client ID when omitted.
type TokenRequest struct {
	ClientID string `json:"client_id"`
	Subject  string `json:"subject,omitempty"`
}

// TokenResponse carries an issued access token.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int    `json:"expires_in"`
}

// EmbedRequest is the native embedding request. Input is deferred to
// normalization because it accepts a string, a structured document, or a
// list mixing both.
type EmbedRequest struct {
	Model string          `json:"model"`
	Input json.RawMessage `json:"input"`
}

// EmbedResponse carries the computed vectors in input order.
type EmbedResponse struct {
	Model   string      `json:"model"`
	Dims    int         `json:"dims"`
	Vectors [][]float32 `json:"vectors"`
}

// ChunkRequest asks for chunking plus embedding in one call.
type ChunkRequest struct {
	Model   string          `json:"model"`
	Input   json.RawMessage `json:"input"`
	Method  string          `json:"method"`
	Size    int             `json:"size"`
	Overlap int             `json:"overlap"`
}

// ChunkResponse carries the flat chunk list and one vector per chunk.
type ChunkResponse struct {
	Model   string      `json:"model"`
	Chunks  []string    `json:"chunks"`
	Vectors [][]float32 `json:"vectors"`
}

// LoadModelRequest registers a model alias at runtime.
type LoadModelRequest struct {
	Alias     string `json:"alias"`
	ModelName string `json:"model_name"`
	Device    string `json:"device,omitempty"`
}

// UnloadModelRequest removes a model alias.
type UnloadModelRequest struct {
	Alias string `json:"alias"`
}

// StatusResponse is the generic admin/status reply.
type StatusResponse struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

// ReadyResponse reports which model aliases are loaded.
type ReadyResponse struct {
	Status       string   `json:"status"`
	ModelsLoaded []string `json:"models_loaded"`
}

// OpenAIEmbedRequest follows the OpenAI embeddings API shape. Only string
// and list-of-string inputs are supported.
type OpenAIEmbedRequest struct {
	Model          string          `json:"model"`
	Input          json.RawMessage `json:"input"`
	EncodingFormat string          `json:"encoding_format,omitempty"`
	User           string          `json:"user,omitempty"`
}

// OpenAIEmbeddingObject is one entry of the OpenAI response data list.
type OpenAIEmbeddingObject struct {
	Object    string    `json:"object"`
	Embedding []float32 `json:"embedding"`
	Index     int       `json:"index"`
}

// OpenAIUsage reports token usage computed with the fixed reference
// tokenizer, independent of the backend's own tokenization.
type OpenAIUsage struct {
	PromptTokens int `json:"prompt_tokens"`
	TotalTokens  int `json:"total_tokens"`
}

// OpenAIEmbedResponse follows the OpenAI embeddings API shape.
type OpenAIEmbedResponse struct {
	Object string                  `json:"object"`
	Data   []OpenAIEmbeddingObject `json:"data"`
	Model  string                  `json:"model"`
	Usage  OpenAIUsage             `json:"usage"`
}

// ErrorResponse is the uniform error body.
type ErrorResponse struct {
	Detail string `json:"detail"`
}
