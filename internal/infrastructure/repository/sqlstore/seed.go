package sqlstore

import (
	"context"

	crerr "github.com/cockroachdb/errors"
	"github.com/jmoiron/sqlx"
	"github.com/soccerstatsqc/league-dashboard/internal/domain/match"
)

// BootstrapSeed loads records into an empty matches table. A table that
// already holds rows is left untouched.
func BootstrapSeed(ctx context.Context, db *sqlx.DB, records []match.Record) error {
	var count int
	if err := db.GetContext(ctx, &count, `SELECT COUNT(1) FROM matches WHERE deleted_at IS NULL`); err != nil {
		return crerr.Wrap(err, "count matches for bootstrap seed")
	}
	if count > 0 {
		return nil
	}

	return NewMatchRepository(db).Upsert(ctx, records)
}
