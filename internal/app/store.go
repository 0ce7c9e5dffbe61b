package app

import (
	"context"
	"fmt"
	"time"

	crerr "github.com/cockroachdb/errors"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/soccerstatsqc/league-dashboard/internal/config"
	"github.com/soccerstatsqc/league-dashboard/internal/domain/match"
	cacherepo "github.com/soccerstatsqc/league-dashboard/internal/infrastructure/repository/cache"
	"github.com/soccerstatsqc/league-dashboard/internal/infrastructure/repository/guarded"
	"github.com/soccerstatsqc/league-dashboard/internal/infrastructure/repository/memory"
	"github.com/soccerstatsqc/league-dashboard/internal/infrastructure/repository/sqlstore"
	"github.com/soccerstatsqc/league-dashboard/internal/platform/cache"
	"github.com/soccerstatsqc/league-dashboard/internal/platform/logging"
	"github.com/soccerstatsqc/league-dashboard/internal/platform/resilience"
	"github.com/uptrace/opentelemetry-go-extra/otelsql"
	"github.com/uptrace/opentelemetry-go-extra/otelsqlx"
)

const dbPingTimeout = 5 * time.Second

// OpenMatchRepository opens the configured store and stacks the circuit
// breaker and the read cache on top of it when enabled.
func OpenMatchRepository(ctx context.Context, cfg config.Config, logger *logging.Logger) (match.Repository, func() error, error) {
	if logger == nil {
		logger = logging.Default()
	}

	var (
		repo    match.Repository
		cleanup = func() error { return nil }
	)

	switch cfg.StoreDriver {
	case config.StoreMemory:
		var records []match.Record
		if cfg.SeedOnStart {
			records = memory.SeedMatches()
		}
		repo = memory.NewMatchRepository(records)
		logger.Info("match store ready", "driver", cfg.StoreDriver, "records", len(records))
	case config.StorePostgres, config.StoreSQLite:
		db, err := openSQL(ctx, cfg)
		if err != nil {
			return nil, nil, err
		}
		cleanup = db.Close

		if cfg.SeedOnStart {
			if err := sqlstore.BootstrapSeed(ctx, db, memory.SeedMatches()); err != nil {
				_ = db.Close()
				return nil, nil, err
			}
		}
		repo = sqlstore.NewMatchRepository(db)
		logger.Info("match store ready", "driver", cfg.StoreDriver, "seeded", cfg.SeedOnStart)
	default:
		return nil, nil, fmt.Errorf("unsupported store driver %q", cfg.StoreDriver)
	}

	breaker := resilience.NewCircuitBreakerFromConfig(resilience.CircuitBreakerConfig{
		Enabled:          cfg.DBCircuitEnabled && cfg.StoreDriver != config.StoreMemory,
		FailureThreshold: cfg.DBCircuitFailureCount,
		OpenTimeout:      cfg.DBCircuitOpenTimeout,
		HalfOpenMaxReq:   cfg.DBCircuitHalfOpenMaxReq,
	}, func(from, to resilience.CircuitState) {
		logger.Warn("match store circuit state changed", "from", from, "to", to)
	})
	if breaker != nil {
		repo = guarded.NewMatchRepository(repo, breaker)
	}

	if cfg.CacheEnabled {
		repo = cacherepo.NewMatchRepository(repo, cache.NewStore(cfg.CacheTTL))
	}

	return repo, cleanup, nil
}

func openSQL(ctx context.Context, cfg config.Config) (*sqlx.DB, error) {
	if cfg.StoreDriver == config.StoreSQLite {
		return sqlstore.OpenSQLite(ctx, cfg.SQLitePath,
			otelsql.WithDBName(cfg.SQLitePath),
			otelsql.WithQueryFormatter(formatDBQueryForTrace),
		)
	}

	db, err := otelsqlx.Open("postgres", normalizeDBURL(cfg.DBURL, cfg.DBDisablePreparedBinary),
		otelsql.WithDBSystem("postgresql"),
		otelsql.WithDBName(dbNameFromURL(cfg.DBURL)),
		otelsql.WithQueryFormatter(formatDBQueryForTrace),
	)
	if err != nil {
		return nil, crerr.Wrap(err, "open postgres")
	}

	pingCtx, cancel := context.WithTimeout(ctx, dbPingTimeout)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		_ = db.Close()
		return nil, crerr.Wrap(err, "ping postgres")
	}

	return db, nil
}
