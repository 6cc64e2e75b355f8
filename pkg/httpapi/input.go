package httpapi

import (
	"bytes"
	"encoding/json"
	"strings"

	"github.com/veldtlabs/embedgate/pkg/fault"
)

// structuredInput is the document form of an embedding input. Title, tags
// and metadata are optional; body is mandatory. Metadata is accepted and
// ignored, it never influences the embedded text.
type structuredInput struct {
	Title    string                 `json:"title"`
	Body     *string                `json:"body"`
	Tags     []string               `json:"tags"`
	Metadata map[string]interface{} `json:"metadata"`
}

// flatten renders a structured document as the text that gets embedded:
// an optional "Title: ..." line, the body, and an optional "Tags: ..."
// line, joined with newlines.
func flatten(doc structuredInput) string {
	parts := make([]string, 0, 3)
	if doc.Title != "" {
		parts = append(parts, "Title: "+doc.Title)
	}
	parts = append(parts, *doc.Body)
	if len(doc.Tags) > 0 {
		parts = append(parts, "Tags: "+strings.Join(doc.Tags, ", "))
	}
	return strings.Join(parts, "\n")
}

// normalizeInput turns the polymorphic input field into a flat text list.
// Accepted shapes: a single string, a single structured document, or a
// list mixing both. Anything else is a validation fault.
func normalizeInput(raw json.RawMessage) ([]string, error) {
	trimmed := bytes.TrimLeft(raw, " \t\r\n")
	if len(trimmed) == 0 {
		return nil, fault.New(fault.Validation, "input is required")
	}

	switch trimmed[0] {
	case '"', '{':
		text, err := normalizeItem(trimmed)
		if err != nil {
			return nil, err
		}
		return []string{text}, nil
	case '[':
		var items []json.RawMessage
		if err := json.Unmarshal(trimmed, &items); err != nil {
			return nil, fault.Wrap(fault.Validation, "input list is malformed", err)
		}
		out := make([]string, 0, len(items))
		for _, item := range items {
			text, err := normalizeItem(bytes.TrimLeft(item, " \t\r\n"))
			if err != nil {
				return nil, err
			}
			out = append(out, text)
		}
		return out, nil
	default:
		return nil, fault.New(fault.Validation, "input must be a string, an object, or a list of either")
	}
}

func normalizeItem(raw json.RawMessage) (string, error) {
	if len(raw) == 0 {
		return "", fault.New(fault.Validation, "input item is empty")
	}
	switch raw[0] {
	case '"':
		var text string
		if err := json.Unmarshal(raw, &text); err != nil {
			return "", fault.Wrap(fault.Validation, "input string is malformed", err)
		}
		return text, nil
	case '{':
		var doc structuredInput
		if err := json.Unmarshal(raw, &doc); err != nil {
			return "", fault.Wrap(fault.Validation, "input document is malformed", err)
		}
		if doc.Body == nil {
			return "", fault.New(fault.Validation, "input document requires a body field")
		}
		return flatten(doc), nil
	default:
		return "", fault.New(fault.Validation, "input items must be strings or objects")
	}
}

// normalizeOpenAIInput accepts the OpenAI input shapes this gateway
// supports: a single string or a list of strings. Token-ID arrays are
// rejected.
func normalizeOpenAIInput(raw json.RawMessage) ([]string, error) {
	trimmed := bytes.TrimLeft(raw, " \t\r\n")
	if len(trimmed) == 0 {
		return nil, fault.New(fault.Validation, "input is required")
	}

	switch trimmed[0] {
	case '"':
		var text string
		if err := json.Unmarshal(trimmed, &text); err != nil {
			return nil, fault.Wrap(fault.Validation, "input string is malformed", err)
		}
		return []string{text}, nil
	case '[':
		var texts []string
		if err := json.Unmarshal(trimmed, &texts); err != nil {
			return nil, fault.New(fault.Validation, "input must be a string or an array of strings")
		}
		return texts, nil
	default:
		return nil, fault.New(fault.Validation, "input must be a string or an array of strings")
	}
}
