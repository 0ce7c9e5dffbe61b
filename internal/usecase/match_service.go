package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/panjf2000/ants/v2"
	"github.com/soccerstatsqc/league-dashboard/internal/domain/match"
	"github.com/soccerstatsqc/league-dashboard/internal/domain/scoreboard"
	"github.com/soccerstatsqc/league-dashboard/internal/domain/timeline"
	"github.com/soccerstatsqc/league-dashboard/internal/platform/logging"
)

const defaultTimelineWorkers = 4

type MatchDetails struct {
	Result   match.Result
	Timeline timeline.Timeline
	Stats    []match.StatRow
}

type TeamTimeline struct {
	Result   match.Result
	Timeline timeline.Timeline
}

type MatchService struct {
	matchRepo match.Repository
	options   timeline.Options
	workers   int
	logger    *logging.Logger
}

func NewMatchService(
	matchRepo match.Repository,
	options timeline.Options,
	workers int,
	logger *logging.Logger,
) *MatchService {
	if workers <= 0 {
		workers = defaultTimelineWorkers
	}
	if logger == nil {
		logger = logging.Default()
	}

	return &MatchService{
		matchRepo: matchRepo,
		options:   options.Normalize(),
		workers:   workers,
		logger:    logger,
	}
}

// ListResults returns the results table, newest first, filtered to team
// when it is not empty.
func (s *MatchService) ListResults(ctx context.Context, team string) ([]scoreboard.Row, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.ListResults")
	defer span.End()

	records, err := s.matchRepo.List(ctx)
	if err != nil {
		return nil, repositoryError("list matches", err)
	}

	sortNewestFirst(records)
	results := make([]match.Result, 0, len(records))
	for _, record := range records {
		results = append(results, record.Result())
	}

	return scoreboard.Highlight(results, team), nil
}

// ListTeams returns every team that played at least once, sorted by name.
func (s *MatchService) ListTeams(ctx context.Context) ([]string, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.ListTeams")
	defer span.End()

	records, err := s.matchRepo.List(ctx)
	if err != nil {
		return nil, repositoryError("list matches", err)
	}

	seen := make(map[string]struct{}, len(records))
	teams := make([]string, 0, len(records))
	for _, record := range records {
		for _, name := range []string{record.HomeTeam, record.AwayTeam} {
			name = strings.TrimSpace(name)
			if name == "" {
				continue
			}
			if _, ok := seen[name]; ok {
				continue
			}
			seen[name] = struct{}{}
			teams = append(teams, name)
		}
	}
	sort.Strings(teams)

	return teams, nil
}

func (s *MatchService) GetTimeline(ctx context.Context, matchID string) (timeline.Timeline, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.GetTimeline")
	defer span.End()

	record, err := s.getRecord(ctx, matchID)
	if err != nil {
		return timeline.Timeline{}, err
	}

	return s.layout(ctx, record), nil
}

func (s *MatchService) GetDetails(ctx context.Context, matchID string) (MatchDetails, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.GetDetails")
	defer span.End()

	record, err := s.getRecord(ctx, matchID)
	if err != nil {
		return MatchDetails{}, err
	}

	return MatchDetails{
		Result:   record.Result(),
		Timeline: s.layout(ctx, record),
		Stats:    match.BuildStatRows(record.Stats),
	}, nil
}

// ListTeamTimelines lays out every match of team on the worker pool. The
// output follows the results table order.
func (s *MatchService) ListTeamTimelines(ctx context.Context, team string) ([]TeamTimeline, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.ListTeamTimelines")
	defer span.End()

	team = strings.TrimSpace(team)
	if team == "" {
		return nil, fmt.Errorf("%w: team is required", ErrInvalidInput)
	}

	records, err := s.matchRepo.List(ctx)
	if err != nil {
		return nil, repositoryError("list matches", err)
	}

	selected := make([]match.Record, 0, len(records))
	for _, record := range records {
		if record.Involves(team) {
			selected = append(selected, record)
		}
	}
	if len(selected) == 0 {
		return nil, fmt.Errorf("%w: team=%s", ErrNotFound, team)
	}
	sortNewestFirst(selected)

	workerCount := s.workers
	if workerCount > len(selected) {
		workerCount = len(selected)
	}
	pool, err := ants.NewPool(workerCount)
	if err != nil {
		return nil, fmt.Errorf("create worker pool: %w", err)
	}
	defer pool.Release()

	out := make([]TeamTimeline, len(selected))
	var workers sync.WaitGroup
	for i, record := range selected {
		if err := ctx.Err(); err != nil {
			workers.Wait()
			return nil, err
		}

		i, record := i, record
		workers.Add(1)
		if err := pool.Submit(func() {
			defer workers.Done()
			out[i] = TeamTimeline{
				Result:   record.Result(),
				Timeline: s.layout(ctx, record),
			}
		}); err != nil {
			workers.Done()
			workers.Wait()
			return nil, fmt.Errorf("submit timeline to worker pool: %w", err)
		}
	}
	workers.Wait()

	return out, nil
}

func (s *MatchService) getRecord(ctx context.Context, matchID string) (match.Record, error) {
	matchID = strings.TrimSpace(matchID)
	if matchID == "" {
		return match.Record{}, fmt.Errorf("%w: match id is required", ErrInvalidInput)
	}

	record, exists, err := s.matchRepo.GetByID(ctx, matchID)
	if err != nil {
		return match.Record{}, repositoryError("get match by id", err)
	}
	if !exists {
		return match.Record{}, fmt.Errorf("%w: match=%s", ErrNotFound, matchID)
	}

	return record, nil
}

func (s *MatchService) layout(ctx context.Context, record match.Record) timeline.Timeline {
	events := match.DecodeWithObserver(record, func(d match.Drop) {
		s.logger.DebugContext(ctx, "drop malformed event entry",
			"match_id", record.ID,
			"field", d.Field,
			"entry", d.Entry,
			"reason", d.Reason,
		)
	})

	return timeline.LayoutWithOptions(events, record.HomeTeam, record.AwayTeam, s.options)
}

func sortNewestFirst(records []match.Record) {
	sort.SliceStable(records, func(i, j int) bool {
		if !records[i].Date.Equal(records[j].Date) {
			return records[i].Date.After(records[j].Date)
		}
		return records[i].ID < records[j].ID
	})
}
