package usecase

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/soccerstatsqc/league-dashboard/internal/domain/match"
	"github.com/soccerstatsqc/league-dashboard/internal/domain/timeline"
	matchmock "github.com/soccerstatsqc/league-dashboard/internal/mocks/domain/match"
	"github.com/soccerstatsqc/league-dashboard/internal/platform/resilience"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func fixtureRecords() []match.Record {
	day := func(d int) time.Time { return time.Date(2025, 6, d, 19, 0, 0, 0, time.UTC) }
	return []match.Record{
		{
			ID: "m1", Date: day(1), HomeTeam: "CS Mont-Royal", AwayTeam: "AS Blainville",
			GoalsFor:     match.ParseEventField("Dupont,23;Tremblay,45"),
			GoalsAgainst: match.ParseEventField("-1,-1"),
		},
		{
			ID: "m2", Date: day(8), HomeTeam: "CS Laval", AwayTeam: "CS Mont-Royal",
			GoalsFor:     match.ParseEventField("Roy,10"),
			GoalsAgainst: match.ParseEventField("11,70"),
		},
		{
			ID: "m3", Date: day(4), HomeTeam: "AS Blainville", AwayTeam: "CS Laval",
			GoalsFor:     match.ParseEventField("-1"),
			GoalsAgainst: match.ParseEventField("-1"),
		},
	}
}

func anyContext() any {
	return mock.MatchedBy(func(context.Context) bool { return true })
}

func TestMatchService_ListResults_NewestFirstWithHighlight(t *testing.T) {
	t.Parallel()

	repo := matchmock.NewRepository(t)
	repo.On("List", anyContext()).Return(fixtureRecords(), nil).Once()

	service := NewMatchService(repo, timeline.DefaultOptions(), 2, nil)
	rows, err := service.ListResults(context.Background(), "CS Mont-Royal")
	if err != nil {
		t.Fatalf("list results: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("unexpected row count: got=%d want=2", len(rows))
	}
	if rows[0].MatchID != "m2" || rows[1].MatchID != "m1" {
		t.Fatalf("unexpected order: got=%s,%s want=m2,m1", rows[0].MatchID, rows[1].MatchID)
	}
	if rows[0].Score != "1-2" || rows[0].Away != "**CS Mont-Royal**" {
		t.Fatalf("unexpected away win row: %+v", rows[0])
	}
	if rows[1].Score != "2-0" || rows[1].Home != "**CS Mont-Royal**" {
		t.Fatalf("unexpected home win row: %+v", rows[1])
	}
}

func TestMatchService_ListTeams(t *testing.T) {
	t.Parallel()

	repo := matchmock.NewRepository(t)
	repo.On("List", anyContext()).Return(fixtureRecords(), nil).Once()

	teams, err := NewMatchService(repo, timeline.DefaultOptions(), 0, nil).ListTeams(context.Background())
	require.NoError(t, err)
	require.Equal(t, []string{"AS Blainville", "CS Laval", "CS Mont-Royal"}, teams)
}

func TestMatchService_GetTimeline(t *testing.T) {
	t.Parallel()

	t.Run("lays out decoded events", func(t *testing.T) {
		t.Parallel()

		repo := matchmock.NewRepository(t)
		repo.On("GetByID", anyContext(), "m1").Return(fixtureRecords()[0], true, nil).Once()

		got, err := NewMatchService(repo, timeline.DefaultOptions(), 1, nil).GetTimeline(context.Background(), " m1 ")
		require.NoError(t, err)
		require.Len(t, got.Markers, 2)
		require.Equal(t, "Scorer: Dupont", got.Markers[0].Event.Tooltip)
		require.Equal(t, "CS Mont-Royal", got.Home.Name)
	})

	t.Run("missing match", func(t *testing.T) {
		t.Parallel()

		repo := matchmock.NewRepository(t)
		repo.On("GetByID", anyContext(), "nope").Return(match.Record{}, false, nil).Once()

		_, err := NewMatchService(repo, timeline.DefaultOptions(), 1, nil).GetTimeline(context.Background(), "nope")
		if !errors.Is(err, ErrNotFound) {
			t.Fatalf("expected ErrNotFound, got %v", err)
		}
	})

	t.Run("blank id", func(t *testing.T) {
		t.Parallel()

		repo := matchmock.NewRepository(t)
		_, err := NewMatchService(repo, timeline.DefaultOptions(), 1, nil).GetTimeline(context.Background(), "  ")
		if !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("expected ErrInvalidInput, got %v", err)
		}
	})

	t.Run("open circuit", func(t *testing.T) {
		t.Parallel()

		repo := matchmock.NewRepository(t)
		repo.On("GetByID", anyContext(), "m1").
			Return(match.Record{}, false, fmt.Errorf("get match: %w", resilience.ErrCircuitOpen)).
			Once()

		_, err := NewMatchService(repo, timeline.DefaultOptions(), 1, nil).GetTimeline(context.Background(), "m1")
		if !errors.Is(err, ErrDependencyUnavailable) {
			t.Fatalf("expected ErrDependencyUnavailable, got %v", err)
		}
	})
}

func TestMatchService_GetDetails(t *testing.T) {
	t.Parallel()

	record := fixtureRecords()[1]
	record.Stats = match.Stats{ShotsHome: 5, ShotsAway: 9}

	repo := matchmock.NewRepository(t)
	repo.On("GetByID", anyContext(), "m2").Return(record, true, nil).Once()

	got, err := NewMatchService(repo, timeline.DefaultOptions(), 1, nil).GetDetails(context.Background(), "m2")
	require.NoError(t, err)
	require.Equal(t, "1-2", got.Result.Score)
	require.Len(t, got.Stats, 8)
	require.True(t, got.Stats[2].AwayBold)
	require.Len(t, got.Timeline.Groups, 3)

	// 10' and 11' collide.
	require.True(t, got.Timeline.Groups[1].Adjusted)
}

func TestMatchService_ListTeamTimelines_KeepsResultOrder(t *testing.T) {
	t.Parallel()

	records := fixtureRecords()
	day := time.Date(2025, 7, 1, 19, 0, 0, 0, time.UTC)
	for i := 0; i < 20; i++ {
		records = append(records, match.Record{
			ID:       fmt.Sprintf("x%02d", i),
			Date:     day.AddDate(0, 0, i),
			HomeTeam: "CS Laval",
			AwayTeam: "FC Boisbriand",
			GoalsFor: match.ParseEventField(fmt.Sprintf("Roy,%d", i+1)),
		})
	}

	repo := matchmock.NewRepository(t)
	repo.On("List", anyContext()).Return(records, nil).Once()

	got, err := NewMatchService(repo, timeline.DefaultOptions(), 4, nil).ListTeamTimelines(context.Background(), "CS Laval")
	require.NoError(t, err)
	require.Len(t, got, 22)

	for i := 1; i < len(got); i++ {
		if got[i].Result.Date.After(got[i-1].Result.Date) {
			t.Fatalf("timelines out of order at %d: %s after %s", i, got[i].Result.ID, got[i-1].Result.ID)
		}
	}
	require.Equal(t, "x19", got[0].Result.ID)
	require.Len(t, got[0].Timeline.Markers, 1)
	require.Equal(t, "20", got[0].Timeline.Markers[0].Event.Minute)
}

func TestMatchService_ListTeamTimelines_Validation(t *testing.T) {
	t.Parallel()

	repo := matchmock.NewRepository(t)
	service := NewMatchService(repo, timeline.DefaultOptions(), 1, nil)

	if _, err := service.ListTeamTimelines(context.Background(), ""); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}

	repo.On("List", anyContext()).Return(fixtureRecords(), nil).Once()
	if _, err := service.ListTeamTimelines(context.Background(), "Unknown FC"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestMatchService_ListResults_RepositoryFailure(t *testing.T) {
	t.Parallel()

	repo := matchmock.NewRepository(t)
	repo.On("List", anyContext()).Return(nil, errors.New("connection reset")).Once()

	_, err := NewMatchService(repo, timeline.DefaultOptions(), 1, nil).ListResults(context.Background(), "")
	if err == nil || errors.Is(err, ErrDependencyUnavailable) {
		t.Fatalf("expected plain repository error, got %v", err)
	}
}
