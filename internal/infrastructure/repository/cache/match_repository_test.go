package cache

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/soccerstatsqc/league-dashboard/internal/domain/match"
	basecache "github.com/soccerstatsqc/league-dashboard/internal/platform/cache"
)

type countingRepository struct {
	lists atomic.Int32
	gets  atomic.Int32
	fail  bool
}

func (r *countingRepository) List(_ context.Context) ([]match.Record, error) {
	r.lists.Add(1)
	if r.fail {
		return nil, errors.New("boom")
	}
	time.Sleep(5 * time.Millisecond)
	return []match.Record{{ID: "m1"}, {ID: "m2"}}, nil
}

func (r *countingRepository) GetByID(_ context.Context, matchID string) (match.Record, bool, error) {
	r.gets.Add(1)
	if matchID != "m1" {
		return match.Record{}, false, nil
	}
	return match.Record{ID: "m1"}, true, nil
}

func TestMatchRepository_ListIsLoadedOnce(t *testing.T) {
	next := &countingRepository{}
	repo := NewMatchRepository(next, basecache.NewStore(time.Minute))

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			items, err := repo.List(context.Background())
			if err != nil || len(items) != 2 {
				t.Errorf("unexpected list result: items=%v err=%v", items, err)
			}
		}()
	}
	wg.Wait()

	if got := next.lists.Load(); got != 1 {
		t.Fatalf("unexpected loader calls: got=%d want=1", got)
	}
}

func TestMatchRepository_ListReturnsCopies(t *testing.T) {
	repo := NewMatchRepository(&countingRepository{}, basecache.NewStore(time.Minute))

	first, _ := repo.List(context.Background())
	first[0].ID = "mutated"

	second, _ := repo.List(context.Background())
	if second[0].ID != "m1" {
		t.Fatalf("cached slice was mutated: %+v", second)
	}
}

func TestMatchRepository_CachesMissingMatch(t *testing.T) {
	next := &countingRepository{}
	repo := NewMatchRepository(next, basecache.NewStore(time.Minute))

	for i := 0; i < 3; i++ {
		_, exists, err := repo.GetByID(context.Background(), "missing")
		if err != nil || exists {
			t.Fatalf("unexpected result: exists=%v err=%v", exists, err)
		}
	}
	if got := next.gets.Load(); got != 1 {
		t.Fatalf("unexpected loader calls: got=%d want=1", got)
	}

	repo.Invalidate(context.Background())
	_, _, _ = repo.GetByID(context.Background(), "missing")
	if got := next.gets.Load(); got != 2 {
		t.Fatalf("expected reload after invalidate: got=%d want=2", got)
	}
}

func TestMatchRepository_ErrorsAreNotCached(t *testing.T) {
	next := &countingRepository{fail: true}
	repo := NewMatchRepository(next, basecache.NewStore(time.Minute))

	for i := 0; i < 2; i++ {
		if _, err := repo.List(context.Background()); err == nil {
			t.Fatalf("expected error")
		}
	}
	if got := next.lists.Load(); got != 2 {
		t.Fatalf("unexpected loader calls: got=%d want=2", got)
	}
}
