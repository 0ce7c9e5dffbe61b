package sqlstore

import (
	"context"
	_ "embed"
	"fmt"
	"strings"

	crerr "github.com/cockroachdb/errors"
	"github.com/jmoiron/sqlx"
	"github.com/uptrace/opentelemetry-go-extra/otelsql"
	"github.com/uptrace/opentelemetry-go-extra/otelsqlx"
	_ "modernc.org/sqlite"
)

const sqliteDriverName = "sqlite"

//go:embed schema.sql
var sqliteSchema string

func init() {
	sqlx.BindDriver(sqliteDriverName, sqlx.QUESTION)
}

// OpenSQLite opens (or creates) a league file and applies the schema. A
// single connection is kept since sqlite allows one writer.
func OpenSQLite(ctx context.Context, path string, opts ...otelsql.Option) (*sqlx.DB, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return nil, crerr.New("sqlite path is required")
	}

	dsn := sqliteDSN(path)
	opts = append([]otelsql.Option{otelsql.WithDBSystem(sqliteDriverName)}, opts...)
	db, err := otelsqlx.Open(sqliteDriverName, dsn, opts...)
	if err != nil {
		return nil, crerr.Wrapf(err, "open sqlite %s", path)
	}
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	if _, err := db.ExecContext(ctx, sqliteSchema); err != nil {
		_ = db.Close()
		return nil, crerr.Wrap(err, "apply sqlite schema")
	}

	return db, nil
}

func sqliteDSN(path string) string {
	if path == ":memory:" {
		return "file::memory:?_pragma=foreign_keys(1)&_time_format=sqlite"
	}
	return fmt.Sprintf("file:%s?_pragma=foreign_keys(1)&_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)&_time_format=sqlite", path)
}
