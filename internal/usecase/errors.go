package usecase

import (
	"errors"
	"fmt"

	"github.com/soccerstatsqc/league-dashboard/internal/platform/resilience"
)

var (
	ErrInvalidInput          = errors.New("invalid input")
	ErrNotFound              = errors.New("resource not found")
	ErrDependencyUnavailable = errors.New("dependency unavailable")
)

// repositoryError wraps a storage failure. An open circuit is reported as
// ErrDependencyUnavailable so callers can back off.
func repositoryError(op string, err error) error {
	if errors.Is(err, resilience.ErrCircuitOpen) {
		return fmt.Errorf("%w: %s: %v", ErrDependencyUnavailable, op, err)
	}
	return fmt.Errorf("%s: %w", op, err)
}
