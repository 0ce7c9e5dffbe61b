package cache

import (
	"context"

	"github.com/soccerstatsqc/league-dashboard/internal/domain/match"
	basecache "github.com/soccerstatsqc/league-dashboard/internal/platform/cache"
)

const (
	matchListKey     = "match:list"
	matchByIDKeyBase = "match:id:"
)

type MatchRepository struct {
	next  match.Repository
	cache *basecache.Store
}

func NewMatchRepository(next match.Repository, cache *basecache.Store) *MatchRepository {
	return &MatchRepository{next: next, cache: cache}
}

func (r *MatchRepository) List(ctx context.Context) ([]match.Record, error) {
	v, err := r.cache.GetOrLoad(ctx, matchListKey, func(ctx context.Context) (any, error) {
		items, err := r.next.List(ctx)
		if err != nil {
			return nil, err
		}
		return append([]match.Record(nil), items...), nil
	})
	if err != nil {
		return nil, err
	}

	items, _ := v.([]match.Record)
	return append([]match.Record(nil), items...), nil
}

func (r *MatchRepository) GetByID(ctx context.Context, matchID string) (match.Record, bool, error) {
	v, err := r.cache.GetOrLoad(ctx, matchByIDKeyBase+matchID, func(ctx context.Context) (any, error) {
		item, exists, err := r.next.GetByID(ctx, matchID)
		if err != nil {
			return nil, err
		}
		return cachedMatchByID{value: item, exists: exists}, nil
	})
	if err != nil {
		return match.Record{}, false, err
	}

	cached, _ := v.(cachedMatchByID)
	return cached.value, cached.exists, nil
}

// Invalidate drops every cached match entry.
func (r *MatchRepository) Invalidate(ctx context.Context) {
	r.cache.Delete(ctx, matchListKey)
	r.cache.DeletePrefix(ctx, matchByIDKeyBase)
}

type cachedMatchByID struct {
	value  match.Record
	exists bool
}
