package backend

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/veldtlabs/embedgate/pkg/logger"
)

func writeModelsFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "models.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestNewRegistry_PreloadsMarkedAliases(t *testing.T) {
	path := writeModelsFile(t, `
models:
  minilm:
    name: sentence-transformers/all-MiniLM-L6-v2
    preload: true
  mpnet:
    name: sentence-transformers/all-mpnet-base-v2
    preload: false
`)

	r, err := NewRegistry(Config{ModelConfigPath: path}, logger.NewNop())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got := r.Loaded(); !reflect.DeepEqual(got, []string{"minilm"}) {
		t.Errorf("expected only minilm preloaded, got %v", got)
	}

	spec, err := r.Resolve("minilm")
	if err != nil {
		t.Fatalf("resolve minilm: %v", err)
	}
	if spec.Name != "sentence-transformers/all-MiniLM-L6-v2" {
		t.Errorf("unexpected spec: %+v", spec)
	}
}

func TestNewRegistry_MissingFileStartsEmpty(t *testing.T) {
	r, err := NewRegistry(Config{ModelConfigPath: "does/not/exist.yaml"}, logger.NewNop())
	if err != nil {
		t.Fatalf("missing file should not error: %v", err)
	}
	if len(r.Loaded()) != 0 {
		t.Errorf("expected empty registry, got %v", r.Loaded())
	}
}

func TestRegistry_ResolveUnloadedAlias(t *testing.T) {
	path := writeModelsFile(t, `
models:
  mpnet:
    name: sentence-transformers/all-mpnet-base-v2
    preload: false
`)
	r, err := NewRegistry(Config{ModelConfigPath: path}, logger.NewNop())
	if err != nil {
		t.Fatal(err)
	}

	// Configured but not loaded: still unknown to callers.
	if _, err := r.Resolve("mpnet"); !IsUnknownModel(err) {
		t.Errorf("expected ErrUnknownModel, got %v", err)
	}

	// Loading by alias alone works because the spec is in configuration.
	if err := r.Load("mpnet", "", ""); err != nil {
		t.Fatalf("load configured alias: %v", err)
	}
	if _, err := r.Resolve("mpnet"); err != nil {
		t.Errorf("resolve after load: %v", err)
	}
}

func TestRegistry_LoadAdHocAlias(t *testing.T) {
	r, _ := NewRegistry(Config{ModelConfigPath: "missing.yaml"}, logger.NewNop())

	if err := r.Load("custom", "", ""); !IsUnknownModel(err) {
		t.Errorf("loading an unconfigured alias without a name must fail, got %v", err)
	}

	if err := r.Load("custom", "org/custom-model", "cuda"); err != nil {
		t.Fatalf("load with explicit name: %v", err)
	}
	spec, err := r.Resolve("custom")
	if err != nil {
		t.Fatal(err)
	}
	if spec.Name != "org/custom-model" || spec.Device != "cuda" {
		t.Errorf("unexpected spec: %+v", spec)
	}
}

func TestRegistry_Unload(t *testing.T) {
	r, _ := NewRegistry(Config{ModelConfigPath: "missing.yaml"}, logger.NewNop())
	if err := r.Load("m", "org/m", ""); err != nil {
		t.Fatal(err)
	}

	r.Unload("m")
	if _, err := r.Resolve("m"); !IsUnknownModel(err) {
		t.Errorf("expected ErrUnknownModel after unload, got %v", err)
	}

	// Unloading again is a no-op, not a panic.
	r.Unload("m")
}
