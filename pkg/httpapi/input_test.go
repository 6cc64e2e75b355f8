package httpapi

import (
	"encoding/json"
	"reflect"
	"testing"

	"github.com/veldtlabs/embedgate/pkg/fault"
)

func TestNormalizeInput_SingleString(t *testing.T) {
	got, err := normalizeInput(json.RawMessage(`"hello world"`))
	if err != nil {
		t.Fatalf("normalizeInput failed: %v", err)
	}
	if !reflect.DeepEqual(got, []string{"hello world"}) {
		t.Errorf("got %v", got)
	}
}

func TestNormalizeInput_StructuredDocument(t *testing.T) {
	raw := json.RawMessage(`{"title":"Release notes","body":"All fixed.","tags":["ops","infra"],"metadata":{"team":"core"}}`)
	got, err := normalizeInput(raw)
	if err != nil {
		t.Fatalf("normalizeInput failed: %v", err)
	}
	want := []string{"Title: Release notes\nAll fixed.\nTags: ops, infra"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestNormalizeInput_DocumentWithoutOptionalFields(t *testing.T) {
	got, err := normalizeInput(json.RawMessage(`{"body":"just a body"}`))
	if err != nil {
		t.Fatalf("normalizeInput failed: %v", err)
	}
	if !reflect.DeepEqual(got, []string{"just a body"}) {
		t.Errorf("got %q", got)
	}
}

func TestNormalizeInput_MixedList(t *testing.T) {
	raw := json.RawMessage(`["plain", {"title":"T","body":"B"}]`)
	got, err := normalizeInput(raw)
	if err != nil {
		t.Fatalf("normalizeInput failed: %v", err)
	}
	want := []string{"plain", "Title: T\nB"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestNormalizeInput_MissingBody(t *testing.T) {
	_, err := normalizeInput(json.RawMessage(`{"title":"no body"}`))
	if err == nil {
		t.Fatal("expected error for document without body")
	}
	if !fault.IsValidation(err) {
		t.Errorf("expected validation fault, got %v", err)
	}
}

func TestNormalizeInput_RejectsOtherShapes(t *testing.T) {
	for _, raw := range []string{`42`, `true`, `[1,2,3]`, ``} {
		if _, err := normalizeInput(json.RawMessage(raw)); err == nil {
			t.Errorf("input %q: expected validation error", raw)
		}
	}
}

func TestNormalizeOpenAIInput(t *testing.T) {
	got, err := normalizeOpenAIInput(json.RawMessage(`"one"`))
	if err != nil {
		t.Fatalf("string input failed: %v", err)
	}
	if !reflect.DeepEqual(got, []string{"one"}) {
		t.Errorf("got %v", got)
	}

	got, err = normalizeOpenAIInput(json.RawMessage(`["one","two"]`))
	if err != nil {
		t.Fatalf("list input failed: %v", err)
	}
	if !reflect.DeepEqual(got, []string{"one", "two"}) {
		t.Errorf("got %v", got)
	}
}

func TestNormalizeOpenAIInput_RejectsTokenIDs(t *testing.T) {
	_, err := normalizeOpenAIInput(json.RawMessage(`[101, 102, 103]`))
	if err == nil {
		t.Fatal("expected error for token-id array")
	}
	if !fault.IsValidation(err) {
		t.Errorf("expected validation fault, got %v", err)
	}
}
