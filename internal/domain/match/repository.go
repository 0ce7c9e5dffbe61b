package match

import "context"

// Repository exposes match read operations.
type Repository interface {
	List(ctx context.Context) ([]Record, error)
	GetByID(ctx context.Context, matchID string) (Record, bool, error)
}
