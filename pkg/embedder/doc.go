// Package embedder implements the cache-aside computation pipeline at the
// heart of the gateway.
//
// Caching and computation are deliberately separated so that all cache
// misses of one request can be batched into a single backend call instead
// of one call per missing text. Within one call, output order always
// matches input order regardless of how hits and misses interleave.
//
// The pipeline never rolls back cache writes: vectors cached before a
// later failure stay valid, since entries are content-addressed by
// (model, text) and a recomputed value is identical.
package embedder
