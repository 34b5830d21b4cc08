package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-user-gateway/internal/logger"
	"github.com/MKhiriev/go-user-gateway/migrations"
	"github.com/Masterminds/squirrel"
	"github.com/sethvargo/go-retry"
)

// Dialect names a supported SQL backend. The values double as goose
// dialect names.
type Dialect string

const (
	DialectPostgres Dialect = "postgres"
	DialectSQLite   Dialect = "sqlite3"
)

const (
	dbRetries   = 3
	dbRetryBase = 50 * time.Millisecond
)

// DB wraps *sql.DB with the dialect-specific query builder and error
// classification.
type DB struct {
	*sql.DB
	dialect            Dialect
	builder            squirrel.StatementBuilderType
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

func newDB(conn *sql.DB, dialect Dialect, classificator ErrorClassificator, log *logger.Logger) *DB {
	return &DB{
		DB:                 conn,
		dialect:            dialect,
		builder:            statementBuilder(dialect),
		errorClassificator: classificator,
		logger:             log,
	}
}

// statementBuilder returns a squirrel builder with the placeholder format of
// dialect: $n for PostgreSQL, ? for SQLite.
func statementBuilder(dialect Dialect) squirrel.StatementBuilderType {
	if dialect == DialectPostgres {
		return squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	}
	return squirrel.StatementBuilder.PlaceholderFormat(squirrel.Question)
}

// Dialect returns the backend of the connection.
func (db *DB) Dialect() Dialect {
	return db.dialect
}

// Migrate applies the embedded migrations of the connection's dialect.
func (db *DB) Migrate(ctx context.Context) error {
	return migrations.Migrate(ctx, db.DB, string(db.dialect))
}

// withRetry runs op and repeats it with exponential backoff while the
// classificator reports the failure as retryable.
func (db *DB) withRetry(ctx context.Context, op func(ctx context.Context) error) error {
	b := retry.WithMaxRetries(dbRetries, retry.NewExponential(dbRetryBase))

	return retry.Do(ctx, b, func(ctx context.Context) error {
		err := op(ctx)
		if err != nil && db.errorClassificator.Classify(err) == Retryable {
			logger.FromContext(ctx).Warn().Err(err).Msg("retrying database operation")
			return retry.RetryableError(err)
		}
		return err
	})
}

// DialectFromDSN picks the backend from the DSN: postgres:// or
// postgresql:// URLs and key=value strings with a host select PostgreSQL;
// file: URIs, :memory: and paths ending in .db, .sqlite or .sqlite3 select
// SQLite.
func DialectFromDSN(dsn string) (Dialect, error) {
	lower := strings.ToLower(strings.TrimSpace(dsn))

	switch {
	case strings.HasPrefix(lower, "postgres://"), strings.HasPrefix(lower, "postgresql://"):
		return DialectPostgres, nil
	case strings.Contains(lower, "host=") && strings.Contains(lower, "dbname="):
		return DialectPostgres, nil
	case strings.HasPrefix(lower, "file:"), lower == ":memory:":
		return DialectSQLite, nil
	}

	path, _, _ := strings.Cut(lower, "?")
	for _, ext := range []string{".db", ".sqlite", ".sqlite3"} {
		if strings.HasSuffix(path, ext) {
			return DialectSQLite, nil
		}
	}

	return "", fmt.Errorf("%w: %q", ErrUnsupportedDSN, dsn)
}
