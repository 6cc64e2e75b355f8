// Package httpapi is the REST front of the gateway.
//
// It exposes the native embedding routes, an OpenAI-compatible
// /v1/embeddings surface, token issuance, model administration, and the
// health and readiness probes. Identity resolution and rate limiting run
// as middleware on everything except the probes; admission control brackets
// only the compute sections of the handlers so that cheap requests never
// queue behind expensive ones.
package httpapi
