// Package grpcapi is the RPC front of the gateway.
//
// It serves embedgate.v1.EmbeddingService over the same pipeline,
// admission pool, and rate limiter as the REST front. Credentials arrive
// as metadata ("x-api-key", "authorization"); identity resolution and the
// sliding window run in interceptors, so handlers only ever see admitted
// callers. The bidirectional stream treats every request message as an
// independent unit: a failed message carries its error in the response and
// leaves the stream open.
package grpcapi
