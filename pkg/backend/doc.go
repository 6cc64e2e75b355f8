// Package backend fronts the embedding compute service.
//
// The rest of the gateway depends only on the Encoder interface — a single
// Encode call that turns a batch of texts into vectors. The concrete
// implementation here is an HTTP client for an OpenAI-compatible inference
// service; swapping in any other compute (a local runtime, a different
// provider, a test double) means implementing one method.
//
// Model aliases are indirections over upstream model names, managed by the
// Registry. Aliases come from a YAML file at startup (optionally preloaded)
// and can be loaded and unloaded at runtime through the admin surface. Only
// loaded aliases are usable; everything else fails with ErrUnknownModel
// before any compute is attempted.
package backend
