package chunker

import "go.uber.org/fx"

// FXModule wires the chunker into Fx.
//
// It provides:
//   - Tokenizer  (the shared cl100k_base encoding)
//   - *Chunker
var FXModule = fx.Module("chunker",
	fx.Provide(
		func() (Tokenizer, error) { return NewTiktokenTokenizer() },
		NewChunker,
	),
)
