package memory

import (
	"context"
	"sync"

	"github.com/soccerstatsqc/league-dashboard/internal/domain/match"
)

type MatchRepository struct {
	mu      sync.RWMutex
	records []match.Record
	byID    map[string]int
}

func NewMatchRepository(records []match.Record) *MatchRepository {
	repo := &MatchRepository{byID: make(map[string]int, len(records))}
	for _, item := range records {
		if idx, ok := repo.byID[item.ID]; ok {
			repo.records[idx] = item
			continue
		}
		repo.byID[item.ID] = len(repo.records)
		repo.records = append(repo.records, item)
	}

	return repo
}

func (r *MatchRepository) List(_ context.Context) ([]match.Record, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]match.Record, 0, len(r.records))
	out = append(out, r.records...)

	return out, nil
}

func (r *MatchRepository) GetByID(_ context.Context, matchID string) (match.Record, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	idx, ok := r.byID[matchID]
	if !ok {
		return match.Record{}, false, nil
	}

	return r.records[idx], true, nil
}
