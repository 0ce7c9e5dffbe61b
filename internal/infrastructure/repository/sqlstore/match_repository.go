package sqlstore

import (
	"context"
	"database/sql"

	crerr "github.com/cockroachdb/errors"
	"github.com/jmoiron/sqlx"
	"github.com/soccerstatsqc/league-dashboard/internal/domain/match"
	qb "github.com/soccerstatsqc/league-dashboard/internal/platform/querybuilder"
)

// MatchRepository reads matches from postgres or sqlite. Queries are built
// with "?" markers and rebound for the connection's driver.
type MatchRepository struct {
	db *sqlx.DB
}

func NewMatchRepository(db *sqlx.DB) *MatchRepository {
	return &MatchRepository{db: db}
}

func (r *MatchRepository) List(ctx context.Context) ([]match.Record, error) {
	query, args, err := qb.Select(matchColumns...).From(matchesTable).
		Where(qb.IsNull("deleted_at")).
		OrderBy("played_at DESC", "public_id").
		ToSQL()
	if err != nil {
		return nil, crerr.Wrap(err, "build select matches query")
	}

	var rows []matchTableModel
	if err := r.db.SelectContext(ctx, &rows, r.db.Rebind(query), args...); err != nil {
		return nil, crerr.Wrap(err, "select matches")
	}

	out := make([]match.Record, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}

	return out, nil
}

func (r *MatchRepository) GetByID(ctx context.Context, matchID string) (match.Record, bool, error) {
	query, args, err := qb.Select(matchColumns...).From(matchesTable).
		Where(
			qb.Eq("public_id", matchID),
			qb.IsNull("deleted_at"),
		).
		Limit(1).
		ToSQL()
	if err != nil {
		return match.Record{}, false, crerr.Wrap(err, "build select match by id query")
	}

	var row matchTableModel
	if err := r.db.GetContext(ctx, &row, r.db.Rebind(query), args...); err != nil {
		if crerr.Is(err, sql.ErrNoRows) {
			return match.Record{}, false, nil
		}
		return match.Record{}, false, crerr.Wrapf(err, "select match by id=%s", matchID)
	}

	return row.toDomain(), true, nil
}

// Upsert writes records, replacing rows with the same public id.
func (r *MatchRepository) Upsert(ctx context.Context, records []match.Record) error {
	if len(records) == 0 {
		return nil
	}

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return crerr.Wrap(err, "begin upsert matches tx")
	}
	defer func() {
		_ = tx.Rollback()
	}()

	for _, record := range records {
		query, args, err := qb.InsertModel(matchesTable, matchModelFromDomain(record), upsertMatchSuffix)
		if err != nil {
			return crerr.Wrapf(err, "build upsert match %s query", record.ID)
		}
		if _, err := tx.ExecContext(ctx, tx.Rebind(query), args...); err != nil {
			return crerr.Wrapf(err, "upsert match %s", record.ID)
		}
	}

	if err := tx.Commit(); err != nil {
		return crerr.Wrap(err, "commit upsert matches tx")
	}
	return nil
}

// ON CONFLICT ... EXCLUDED is understood by both postgres and sqlite.
const upsertMatchSuffix = `ON CONFLICT (public_id) DO UPDATE SET
	played_at = EXCLUDED.played_at,
	home_team = EXCLUDED.home_team,
	away_team = EXCLUDED.away_team,
	score = EXCLUDED.score,
	goals_for = EXCLUDED.goals_for,
	goals_against = EXCLUDED.goals_against,
	yellow_cards_for = EXCLUDED.yellow_cards_for,
	yellow_cards_against = EXCLUDED.yellow_cards_against,
	red_cards_for = EXCLUDED.red_cards_for,
	red_cards_against = EXCLUDED.red_cards_against,
	changes_for = EXCLUDED.changes_for,
	changes_against = EXCLUDED.changes_against,
	shots_home = EXCLUDED.shots_home,
	shots_away = EXCLUDED.shots_away,
	shots_on_target_home = EXCLUDED.shots_on_target_home,
	shots_on_target_away = EXCLUDED.shots_on_target_away,
	passes_forward = EXCLUDED.passes_forward,
	passes_backward = EXCLUDED.passes_backward,
	passes_left = EXCLUDED.passes_left,
	passes_right = EXCLUDED.passes_right,
	passes_away = EXCLUDED.passes_away,
	offsides_home = EXCLUDED.offsides_home,
	offsides_away = EXCLUDED.offsides_away,
	fouls_home = EXCLUDED.fouls_home,
	fouls_away = EXCLUDED.fouls_away,
	free_kicks_home = EXCLUDED.free_kicks_home,
	free_kicks_away = EXCLUDED.free_kicks_away,
	corners_home = EXCLUDED.corners_home,
	corners_away = EXCLUDED.corners_away,
	deleted_at = NULL`
