// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-blog-api/internal/logger"
	"github.com/MKhiriev/go-blog-api/models"
)

var fixedNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

// newTestDB returns a postgres-flavoured DB over sqlmock.
func newTestDB(t *testing.T) (*DB, sqlmock.Sqlmock) {
	t.Helper()
	conn, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	db := newDB(conn, DialectPostgres, logger.Nop())
	db.now = func() time.Time { return fixedNow }
	return db, mock
}

func newTestUserRepo(t *testing.T) (*userRepository, sqlmock.Sqlmock) {
	db, mock := newTestDB(t)
	return &userRepository{db: db, logger: logger.Nop()}, mock
}

func pgError(code string) error {
	return &pgconn.PgError{Code: code}
}

func userRows() *sqlmock.Rows {
	return sqlmock.NewRows(userColumns)
}

func TestCreateUser_Success(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	user := models.User{Login: "john", PasswordDigest: "digest", Provider: models.ProviderStandard}

	mock.ExpectQuery("INSERT INTO users").
		WithArgs("john", sqlmock.AnyArg(), models.ProviderStandard, "", "", "", fixedNow).
		WillReturnRows(userRows().AddRow(1, "john", "digest", models.ProviderStandard, "", "", "", fixedNow))

	created, err := repo.CreateUser(context.Background(), user)
	require.NoError(t, err)
	assert.Equal(t, int64(1), created.UserID)
	assert.Equal(t, "digest", created.PasswordDigest)
	assert.Equal(t, fixedNow, created.CreatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateUser_UniqueViolation(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	mock.ExpectQuery("INSERT INTO users").
		WillReturnError(pgError(pgerrcode.UniqueViolation))

	_, err := repo.CreateUser(context.Background(), models.User{Login: "john"})
	assert.ErrorIs(t, err, ErrLoginAlreadyExists)
}

func TestCreateUser_UnexpectedDBError(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	mock.ExpectQuery("INSERT INTO users").
		WillReturnError(errors.New("db network error"))

	_, err := repo.CreateUser(context.Background(), models.User{Login: "john"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unexpected DB error")
}

func TestFindUserByLogin_Success(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	mock.ExpectQuery("SELECT user_id, login, password_digest").
		WithArgs("john").
		WillReturnRows(userRows().AddRow(1, "john", "digest", models.ProviderStandard, "John", "", "", fixedNow))

	found, err := repo.FindUserByLogin(context.Background(), "john")
	require.NoError(t, err)
	assert.Equal(t, int64(1), found.UserID)
	assert.Equal(t, "John", found.Name)
}

func TestFindUserByLogin_NullDigest(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	mock.ExpectQuery("SELECT user_id").
		WithArgs("octocat").
		WillReturnRows(userRows().AddRow(2, "octocat", nil, "github", "", "", "", fixedNow))

	found, err := repo.FindUserByLogin(context.Background(), "octocat")
	require.NoError(t, err)
	assert.Empty(t, found.PasswordDigest)
	assert.Equal(t, "github", found.Provider)
}

func TestFindUserByLogin_NotFound(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	mock.ExpectQuery("SELECT user_id").
		WithArgs("ghost").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.FindUserByLogin(context.Background(), "ghost")
	assert.ErrorIs(t, err, ErrNoUserWasFound)
}

func TestUpsertProviderUser_Success(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	user := models.User{Login: "octocat", Provider: "github", Name: "Octo", URL: "https://github.com/octocat", AvatarURL: "https://a/1.png"}

	mock.ExpectQuery(`INSERT INTO users .* ON CONFLICT \(login\) DO UPDATE SET .* WHERE users.provider = EXCLUDED.provider RETURNING`).
		WithArgs("octocat", "github", "Octo", user.URL, user.AvatarURL, fixedNow).
		WillReturnRows(userRows().AddRow(5, "octocat", nil, "github", "Octo", user.URL, user.AvatarURL, fixedNow))

	upserted, err := repo.UpsertProviderUser(context.Background(), user)
	require.NoError(t, err)
	assert.Equal(t, int64(5), upserted.UserID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpsertProviderUser_ProviderMismatch(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	mock.ExpectQuery("INSERT INTO users").
		WillReturnRows(userRows())

	_, err := repo.UpsertProviderUser(context.Background(), models.User{Login: "alice", Provider: "github"})
	assert.ErrorIs(t, err, ErrProviderMismatch)
}
