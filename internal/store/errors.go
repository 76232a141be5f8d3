// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrLoginAlreadyExists is returned when an attempt to register a new user
	// fails because a user with the same login already exists in the database.
	ErrLoginAlreadyExists = errors.New("login already exists")

	// ErrNoUserWasFound is returned when a query expected to match a user
	// record produces an empty result set.
	ErrNoUserWasFound = errors.New("no user was found")

	// ErrProviderMismatch is returned when an OAuth login tries to take over
	// a login owned by a different provider.
	ErrProviderMismatch = errors.New("login is owned by another provider")

	// ErrAccessTokenNotFound is returned when no access token matches the
	// lookup.
	ErrAccessTokenNotFound = errors.New("access token was not found")

	// ErrTokenCollision is returned when a freshly generated token value is
	// already bound to another user.
	ErrTokenCollision = errors.New("access token value already exists")

	// ErrArticleNotFound is returned when an article does not exist, or does
	// not exist within the owner scope the operation was restricted to.
	ErrArticleNotFound = errors.New("article was not found")

	// ErrSlugAlreadyExists is returned when an article slug is already taken.
	ErrSlugAlreadyExists = errors.New("slug already exists")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT or similar
	// read-only query against the database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, UPDATE, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to execute statement")

	// ErrScanningRows is returned when scanning column values during
	// multi-row iteration fails.
	ErrScanningRows = errors.New("failed to scan rows")

	// ErrUnsupportedDSN is returned by [NewConnect] for a DSN that names
	// neither PostgreSQL nor SQLite.
	ErrUnsupportedDSN = errors.New("unsupported database dsn")
)
