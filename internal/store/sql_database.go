package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-manifest-sync/internal/config"
	"github.com/MKhiriev/go-manifest-sync/internal/logger"
	"github.com/MKhiriev/go-manifest-sync/migrations"
)

// Supported database dialects.
const (
	DialectSQLite   = "sqlite3"
	DialectPostgres = "pgx"
)

// DB wraps *sql.DB with the dialect specific pieces the repositories need.
type DB struct {
	*sql.DB
	dialect            string
	builder            sq.StatementBuilderType
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// NewDB opens the database described by cfg.DSN: a postgres:// or
// postgresql:// URL selects PostgreSQL, anything else is a SQLite file path.
// Migrations are applied before returning.
func NewDB(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	var (
		db  *DB
		err error
	)

	if isPostgresDSN(cfg.DSN) {
		db, err = NewConnectPostgres(ctx, cfg, log)
	} else {
		db, err = NewConnectSQLite(ctx, cfg, log)
	}
	if err != nil {
		return nil, err
	}

	if err = db.Migrate(); err != nil {
		_ = db.Close()
		return nil, err
	}

	return db, nil
}

func isPostgresDSN(dsn string) bool {
	dsn = strings.ToLower(strings.TrimSpace(dsn))
	return strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://")
}

func newDB(conn *sql.DB, dialect string, classifier ErrorClassificator, log *logger.Logger) *DB {
	var placeholder sq.PlaceholderFormat = sq.Question
	if dialect == DialectPostgres {
		placeholder = sq.Dollar
	}

	return &DB{
		DB:                 conn,
		dialect:            dialect,
		builder:            sq.StatementBuilder.PlaceholderFormat(placeholder),
		errorClassificator: classifier,
		logger:             log,
	}
}

// Migrate applies the embedded schema migrations for the DB's dialect.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, db.dialect)
}

// Dialect returns DialectSQLite or DialectPostgres.
func (db *DB) Dialect() string {
	return db.dialect
}

// classify joins err with ErrRetryable when the dialect's classifier deems
// it transient.
func (db *DB) classify(err error) error {
	if err == nil || db.errorClassificator == nil {
		return err
	}
	if db.errorClassificator.Classify(err) == Retryable {
		return errors.Join(ErrRetryable, err)
	}
	return err
}

func wrapDBError(sentinel, err error) error {
	return fmt.Errorf("%w: %w", sentinel, err)
}
