package backend

import (
	"context"
	"errors"
)

// ErrUnknownModel is returned when a model alias is not registered. The
// orchestrator maps it to a validation fault so fronts report it as a
// client error.
var ErrUnknownModel = errors.New("backend: unknown model alias")

// Encoder is the narrow compute capability the orchestrator depends on.
// It may block for non-trivial time. Implementations must be safe for
// concurrent use; test doubles substitute freely.
type Encoder interface {
	// Encode computes one vector per input text, in input order.
	Encode(ctx context.Context, modelAlias string, texts []string) ([][]float32, error)
}

// IsUnknownModel reports whether the error chain carries ErrUnknownModel.
func IsUnknownModel(err error) bool {
	return errors.Is(err, ErrUnknownModel)
}
