package chunker

import (
	"fmt"

	"github.com/pkoukk/tiktoken-go"
)

// encodingName is the fixed reference encoding shared by token chunking and
// OpenAI usage accounting.
const encodingName = "cl100k_base"

// TiktokenTokenizer adapts the cl100k_base BPE encoding to the Tokenizer
// interface. One instance is constructed at startup and shared; the
// underlying encoder is safe for concurrent use.
type TiktokenTokenizer struct {
	enc *tiktoken.Tiktoken
}

// NewTiktokenTokenizer loads the shared cl100k_base encoding.
func NewTiktokenTokenizer() (*TiktokenTokenizer, error) {
	enc, err := tiktoken.GetEncoding(encodingName)
	if err != nil {
		return nil, fmt.Errorf("chunker: load %s encoding: %w", encodingName, err)
	}
	return &TiktokenTokenizer{enc: enc}, nil
}

// Encode tokenizes text into BPE token ids.
func (t *TiktokenTokenizer) Encode(text string) []int {
	return t.enc.Encode(text, nil, nil)
}

// Decode reassembles token ids into text.
func (t *TiktokenTokenizer) Decode(tokens []int) string {
	return t.enc.Decode(tokens)
}
