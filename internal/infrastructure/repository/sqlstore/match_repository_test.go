package sqlstore

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/soccerstatsqc/league-dashboard/internal/domain/match"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestDB(t *testing.T) *MatchRepository {
	t.Helper()

	db, err := OpenSQLite(context.Background(), filepath.Join(t.TempDir(), "league.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	return NewMatchRepository(db)
}

func sampleRecord(id string, day int) match.Record {
	return match.Record{
		ID:             id,
		Date:           time.Date(2025, 6, day, 19, 30, 0, 0, time.UTC),
		HomeTeam:       "CS Laval",
		AwayTeam:       "AS Blainville",
		GoalsFor:       match.ParseEventField("Roy,10;Morin,45+1"),
		GoalsAgainst:   match.ParseEventField("-1,-1"),
		YellowCardsFor: match.ParseEventField("Roy,12"),
		ChangesFor:     match.ParseEventField("Morin,Fortin,70"),
		Stats:          match.Stats{ShotsHome: 7, CornersAway: 3, PassesAway: 120},
	}
}

func TestMatchRepository_RoundTrip(t *testing.T) {
	repo := openTestDB(t)
	ctx := context.Background()

	require.NoError(t, repo.Upsert(ctx, []match.Record{sampleRecord("m1", 1), sampleRecord("m2", 8)}))

	items, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "m2", items[0].ID, "newest first")

	got, exists, err := repo.GetByID(ctx, "m1")
	require.NoError(t, err)
	require.True(t, exists)

	want := sampleRecord("m1", 1)
	assert.True(t, want.Date.Equal(got.Date))
	assert.Equal(t, want.GoalsFor, got.GoalsFor)
	assert.False(t, got.GoalsAgainst.Present())
	assert.False(t, got.RedCardsFor.Present())
	assert.Equal(t, want.Stats, got.Stats)
	assert.Equal(t, match.Decode(want), match.Decode(got))
}

func TestMatchRepository_GetByIDMissing(t *testing.T) {
	repo := openTestDB(t)

	_, exists, err := repo.GetByID(context.Background(), "nope")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestMatchRepository_UpsertReplaces(t *testing.T) {
	repo := openTestDB(t)
	ctx := context.Background()

	record := sampleRecord("m1", 1)
	require.NoError(t, repo.Upsert(ctx, []match.Record{record}))

	record.Score = "3-0"
	require.NoError(t, repo.Upsert(ctx, []match.Record{record}))

	items, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "3-0", items[0].Score)
}

func TestBootstrapSeed_OnlyFillsEmptyTable(t *testing.T) {
	repo := openTestDB(t)
	ctx := context.Background()

	require.NoError(t, BootstrapSeed(ctx, repo.db, []match.Record{sampleRecord("m1", 1)}))
	require.NoError(t, BootstrapSeed(ctx, repo.db, []match.Record{sampleRecord("m2", 2)}))

	items, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "m1", items[0].ID)
}
