package chunker

import (
	"github.com/veldtlabs/embedgate/pkg/fault"
)

// Method selects how a text is windowed.
type Method string

const (
	// MethodChar windows over character (rune) positions.
	MethodChar Method = "char"

	// MethodToken windows over the text's tokenized form and detokenizes
	// each window back to text.
	MethodToken Method = "token"
)

// Default chunking parameters.
const (
	DefaultSize   = 512
	DefaultMethod = MethodToken
)

// Spec describes one chunking request.
type Spec struct {
	Method  Method
	Size    int
	Overlap int
}

// Validate rejects specs that cannot produce a terminating window sequence.
func (s Spec) Validate() error {
	if s.Method != MethodChar && s.Method != MethodToken {
		return fault.Errorf(fault.Validation, "unknown chunking method: %s", s.Method)
	}
	if s.Size <= 0 {
		return fault.Errorf(fault.Validation, "chunk size must be positive, got %d", s.Size)
	}
	if s.Overlap < 0 {
		return fault.Errorf(fault.Validation, "chunk overlap must not be negative, got %d", s.Overlap)
	}
	if s.Size <= s.Overlap {
		return fault.New(fault.Validation, "chunk size must be greater than overlap")
	}
	return nil
}

// Tokenizer is the fixed tokenization capability used for token-based
// chunking and usage accounting. The production implementation is the
// shared cl100k_base encoding; tests substitute a deterministic fake.
type Tokenizer interface {
	Encode(text string) []int
	Decode(tokens []int) string
}

// Chunker splits texts into bounded, possibly overlapping sub-texts.
type Chunker struct {
	tokenizer Tokenizer
}

// NewChunker constructs a Chunker over the given tokenizer.
func NewChunker(tokenizer Tokenizer) *Chunker {
	return &Chunker{tokenizer: tokenizer}
}

// Chunk splits text according to spec. Empty input yields an empty slice;
// any non-empty input yields at least one chunk, and the final chunk ends
// exactly at the text end.
func (c *Chunker) Chunk(text string, spec Spec) ([]string, error) {
	if err := spec.Validate(); err != nil {
		return nil, err
	}
	if text == "" {
		return []string{}, nil
	}

	switch spec.Method {
	case MethodChar:
		return chunkRunes([]rune(text), spec), nil
	default:
		return c.chunkTokens(text, spec), nil
	}
}

// CountTokens reports the token count of text under the shared tokenizer.
// Used for OpenAI-compatible usage accounting, independent of whatever
// tokenization the backend applies internally.
func (c *Chunker) CountTokens(text string) int {
	return len(c.tokenizer.Encode(text))
}

func chunkRunes(runes []rune, spec Spec) []string {
	var chunks []string
	stride := spec.Size - spec.Overlap

	for start := 0; start < len(runes); start += stride {
		end := start + spec.Size
		if end > len(runes) {
			end = len(runes)
		}
		chunks = append(chunks, string(runes[start:end]))
		if end == len(runes) {
			break
		}
	}
	return chunks
}

func (c *Chunker) chunkTokens(text string, spec Spec) []string {
	tokens := c.tokenizer.Encode(text)
	if len(tokens) == 0 {
		return []string{}
	}

	var chunks []string
	stride := spec.Size - spec.Overlap

	for start := 0; start < len(tokens); start += stride {
		end := start + spec.Size
		if end > len(tokens) {
			end = len(tokens)
		}
		chunks = append(chunks, c.tokenizer.Decode(tokens[start:end]))
		if end == len(tokens) {
			break
		}
	}
	return chunks
}
