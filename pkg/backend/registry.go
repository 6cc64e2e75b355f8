package backend

import (
	"fmt"
	"os"
	"sort"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/veldtlabs/embedgate/pkg/logger"
)

// ModelSpec describes one model alias.
type ModelSpec struct {
	// Name is the upstream model identifier the alias resolves to.
	Name string `yaml:"name"`

	// Device is an optional placement hint forwarded to the backend.
	Device string `yaml:"device"`

	// Preload marks the alias as available at startup.
	Preload bool `yaml:"preload"`
}

// modelsFile is the on-disk shape of the model configuration.
type modelsFile struct {
	Models map[string]ModelSpec `yaml:"models"`
}

// Registry maps model aliases to specs and tracks which aliases are
// currently loaded. Admin operations mutate it at runtime; readiness
// reporting reads it. Safe for concurrent use.
type Registry struct {
	log *logger.Logger

	mu     sync.RWMutex
	specs  map[string]ModelSpec
	loaded map[string]struct{}
}

// NewRegistry builds a Registry from the YAML file named in cfg. A missing
// file yields an empty registry; aliases can still be loaded through the
// admin surface.
func NewRegistry(cfg Config, log *logger.Logger) (*Registry, error) {
	r := &Registry{
		log:    log,
		specs:  make(map[string]ModelSpec),
		loaded: make(map[string]struct{}),
	}

	raw, err := os.ReadFile(cfg.ModelConfigPath)
	if os.IsNotExist(err) {
		log.Warn("backend: model config file not found, starting empty", nil, map[string]interface{}{
			"path": cfg.ModelConfigPath,
		})
		return r, nil
	}
	if err != nil {
		return nil, fmt.Errorf("backend: read model config: %w", err)
	}

	var file modelsFile
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("backend: parse model config: %w", err)
	}

	for alias, spec := range file.Models {
		r.specs[alias] = spec
		if spec.Preload {
			r.loaded[alias] = struct{}{}
			log.Info("backend: preloaded model alias", nil, map[string]interface{}{
				"alias": alias,
				"model": spec.Name,
			})
		}
	}
	return r, nil
}

// Resolve returns the spec for a loaded alias. Unknown or unloaded aliases
// fail with ErrUnknownModel.
func (r *Registry) Resolve(alias string) (ModelSpec, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if _, ok := r.loaded[alias]; !ok {
		return ModelSpec{}, fmt.Errorf("%w: %q", ErrUnknownModel, alias)
	}
	return r.specs[alias], nil
}

// Load registers an alias and marks it loaded. When modelName is empty the
// alias must already exist in the configuration.
func (r *Registry) Load(alias, modelName, device string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.loaded[alias]; ok {
		return nil
	}

	spec, known := r.specs[alias]
	if modelName == "" && !known {
		return fmt.Errorf("%w: %q not in configuration and no model name given", ErrUnknownModel, alias)
	}
	if modelName != "" {
		spec = ModelSpec{Name: modelName, Device: device}
	} else if device != "" {
		spec.Device = device
	}

	r.specs[alias] = spec
	r.loaded[alias] = struct{}{}
	r.log.Info("backend: model alias loaded", nil, map[string]interface{}{
		"alias":  alias,
		"model":  spec.Name,
		"device": spec.Device,
	})
	return nil
}

// Unload removes an alias from the loaded set. Unloading an alias that is
// not loaded is a logged no-op.
func (r *Registry) Unload(alias string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.loaded[alias]; !ok {
		r.log.Warn("backend: unload of alias that is not loaded", nil, map[string]interface{}{
			"alias": alias,
		})
		return
	}
	delete(r.loaded, alias)
	r.log.Info("backend: model alias unloaded", nil, map[string]interface{}{
		"alias": alias,
	})
}

// Loaded returns the sorted list of loaded aliases, for readiness reporting.
func (r *Registry) Loaded() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]string, 0, len(r.loaded))
	for alias := range r.loaded {
		out = append(out, alias)
	}
	sort.Strings(out)
	return out
}
