// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package store implements persistence of users, access tokens, articles
// and comments on top of database/sql. The same repositories serve
// PostgreSQL (pgx) and SQLite (go-sqlite3); queries are built with squirrel
// so placeholders follow the connected dialect.
package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-blog-api/internal/config"
	"github.com/MKhiriev/go-blog-api/internal/logger"
	"github.com/MKhiriev/go-blog-api/migrations"
)

// Dialect names the SQL driver behind a [DB]. Values double as the
// database/sql driver name and the goose dialect.
type Dialect string

const (
	DialectPostgres Dialect = "pgx"
	DialectSQLite   Dialect = "sqlite3"
)

// retryDelays are the pauses between attempts of an operation that failed
// with a [Retryable] error.
var retryDelays = []time.Duration{50 * time.Millisecond, 200 * time.Millisecond}

// DB is a database handle bound to a dialect-aware query builder and error
// classifier.
type DB struct {
	*sql.DB
	dialect            Dialect
	builder            sq.StatementBuilderType
	errorClassificator ErrorClassificator
	logger             *logger.Logger
	now                func() time.Time
}

// newDB wraps an opened connection pool.
func newDB(conn *sql.DB, dialect Dialect, log *logger.Logger) *DB {
	db := &DB{
		DB:      conn,
		dialect: dialect,
		logger:  log,
		now:     func() time.Time { return time.Now().UTC() },
	}

	switch dialect {
	case DialectPostgres:
		db.builder = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
		db.errorClassificator = NewPostgresErrorClassifier()
	default:
		db.builder = sq.StatementBuilder.PlaceholderFormat(sq.Question)
		db.errorClassificator = NewSQLiteErrorClassifier()
	}

	return db
}

// NewConnect opens the database named by cfg.DSN, choosing the driver from
// the DSN scheme.
func NewConnect(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	switch {
	case config.IsPostgresDSN(cfg.DSN):
		return NewConnectPostgres(ctx, cfg, log)
	case config.IsSQLiteDSN(cfg.DSN):
		return NewConnectSQLite(ctx, cfg, log)
	default:
		return nil, ErrUnsupportedDSN
	}
}

// Dialect returns the dialect of the connection.
func (db *DB) Dialect() Dialect {
	return db.dialect
}

// Migrate applies the embedded migrations of the connection dialect.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, string(db.dialect))
}

// queryRow runs q and hands its single row to scan.
func (db *DB) queryRow(ctx context.Context, q sq.Sqlizer, scan func(row *sql.Row) error) error {
	query, args, err := q.ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return db.retry(ctx, func() error {
		return scan(db.QueryRowContext(ctx, query, args...))
	})
}

// query runs q and returns its rows. The caller closes them.
func (db *DB) query(ctx context.Context, q sq.Sqlizer) (*sql.Rows, error) {
	query, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var rows *sql.Rows
	err = db.retry(ctx, func() error {
		var queryErr error
		rows, queryErr = db.QueryContext(ctx, query, args...)
		return queryErr
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return rows, nil
}

// exec runs the statement q.
func (db *DB) exec(ctx context.Context, q sq.Sqlizer) (sql.Result, error) {
	query, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var res sql.Result
	err = db.retry(ctx, func() error {
		var execErr error
		res, execErr = db.ExecContext(ctx, query, args...)
		return execErr
	})

	return res, err
}

// retry runs op until it succeeds, fails with a non-retryable error, or the
// retry budget is exhausted.
func (db *DB) retry(ctx context.Context, op func() error) error {
	for attempt := 0; ; attempt++ {
		err := op()
		if err == nil || attempt >= len(retryDelays) || db.errorClassificator.Classify(err) != Retryable {
			return err
		}

		logger.FromContext(ctx).Warn().Err(err).Int("attempt", attempt+1).Msg("retrying database operation")

		select {
		case <-ctx.Done():
			return errors.Join(err, ctx.Err())
		case <-time.After(retryDelays[attempt]):
		}
	}
}
