// Package guarded puts a circuit breaker in front of a match store so a
// failing database is not hammered by every request.
package guarded

import (
	"context"

	"github.com/soccerstatsqc/league-dashboard/internal/domain/match"
	"github.com/soccerstatsqc/league-dashboard/internal/platform/resilience"
)

type MatchRepository struct {
	next    match.Repository
	breaker *resilience.CircuitBreaker
}

func NewMatchRepository(next match.Repository, breaker *resilience.CircuitBreaker) *MatchRepository {
	return &MatchRepository{next: next, breaker: breaker}
}

func (r *MatchRepository) List(ctx context.Context) ([]match.Record, error) {
	if err := r.breaker.Allow(); err != nil {
		return nil, err
	}

	items, err := r.next.List(ctx)
	r.record(ctx, err)
	return items, err
}

func (r *MatchRepository) GetByID(ctx context.Context, matchID string) (match.Record, bool, error) {
	if err := r.breaker.Allow(); err != nil {
		return match.Record{}, false, err
	}

	item, exists, err := r.next.GetByID(ctx, matchID)
	r.record(ctx, err)
	return item, exists, err
}

// record skips failures caused by the caller giving up.
func (r *MatchRepository) record(ctx context.Context, err error) {
	switch {
	case err == nil:
		r.breaker.RecordSuccess()
	case ctx.Err() != nil:
		r.breaker.RecordSuccess()
	default:
		r.breaker.RecordFailure()
	}
}
