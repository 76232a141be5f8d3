// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"database/sql"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-blog-api/models"
)

var (
	userColumns        = []string{"user_id", "login", "password_digest", "provider", "name", "url", "avatar_url", "created_at"}
	accessTokenColumns = []string{"access_token_id", "token", "user_id", "created_at"}
	articleColumns     = []string{"article_id", "user_id", "title", "content", "slug", "created_at", "updated_at"}
	commentColumns     = []string{"comment_id", "article_id", "user_id", "content", "created_at"}
)

// recent-first ordering of collections, ties broken by id
var (
	articleOrder = []string{"created_at DESC", "article_id DESC"}
	commentOrder = []string{"created_at DESC", "comment_id DESC"}
)

func returning(columns []string) string {
	return "RETURNING " + strings.Join(columns, ", ")
}

func prefixed(alias string, columns []string) []string {
	out := make([]string, len(columns))
	for i, c := range columns {
		out[i] = alias + "." + c
	}
	return out
}

// ── users ─────────────────────────────────────────────────────────────────────

func nullableString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

func insertUserQuery(b sq.StatementBuilderType, user models.User) sq.InsertBuilder {
	return b.Insert(user.TableName()).
		Columns("login", "password_digest", "provider", "name", "url", "avatar_url", "created_at").
		Values(user.Login, nullableString(user.PasswordDigest), user.Provider, user.Name, user.URL, user.AvatarURL, user.CreatedAt).
		Suffix(returning(userColumns))
}

// upsertProviderUserQuery inserts a provider user or refreshes its profile.
// A row owned by another provider is left untouched and no row is returned.
func upsertProviderUserQuery(b sq.StatementBuilderType, user models.User) sq.InsertBuilder {
	return b.Insert(user.TableName()).
		Columns("login", "provider", "name", "url", "avatar_url", "created_at").
		Values(user.Login, user.Provider, user.Name, user.URL, user.AvatarURL, user.CreatedAt).
		Suffix("ON CONFLICT (login) DO UPDATE SET " +
			"name = EXCLUDED.name, url = EXCLUDED.url, avatar_url = EXCLUDED.avatar_url " +
			"WHERE users.provider = EXCLUDED.provider " +
			returning(userColumns))
}

func selectUserByLoginQuery(b sq.StatementBuilderType, login string) sq.SelectBuilder {
	return b.Select(userColumns...).
		From(models.User{}.TableName()).
		Where(sq.Eq{"login": login})
}

func selectUserByTokenQuery(b sq.StatementBuilderType, token string) sq.SelectBuilder {
	return b.Select(prefixed("u", userColumns)...).
		From("users u").
		Join("access_tokens t ON t.user_id = u.user_id").
		Where(sq.Eq{"t.token": token})
}

func scanUser(row interface{ Scan(...any) error }) (models.User, error) {
	var (
		user   models.User
		digest sql.NullString
	)
	err := row.Scan(&user.UserID, &user.Login, &digest, &user.Provider, &user.Name, &user.URL, &user.AvatarURL, &user.CreatedAt)
	user.PasswordDigest = digest.String
	return user, err
}

// ── access tokens ─────────────────────────────────────────────────────────────

// insertAccessTokenQuery is a no-op when the user already owns a token, so
// concurrent first logins converge on a single row.
func insertAccessTokenQuery(b sq.StatementBuilderType, token models.AccessToken) sq.InsertBuilder {
	return b.Insert(token.TableName()).
		Columns("token", "user_id", "created_at").
		Values(token.Token, token.UserID, token.CreatedAt).
		Suffix("ON CONFLICT (user_id) DO NOTHING")
}

func selectAccessTokenByUserIDQuery(b sq.StatementBuilderType, userID int64) sq.SelectBuilder {
	return b.Select(accessTokenColumns...).
		From(models.AccessToken{}.TableName()).
		Where(sq.Eq{"user_id": userID})
}

func deleteAccessTokenQuery(b sq.StatementBuilderType, token string) sq.DeleteBuilder {
	return b.Delete(models.AccessToken{}.TableName()).
		Where(sq.Eq{"token": token})
}

// ── articles ──────────────────────────────────────────────────────────────────

func selectArticlesQuery(b sq.StatementBuilderType, limit, offset int) sq.SelectBuilder {
	return b.Select(articleColumns...).
		From(models.Article{}.TableName()).
		OrderBy(articleOrder...).
		Limit(uint64(limit)).
		Offset(uint64(offset))
}

func countArticlesQuery(b sq.StatementBuilderType) sq.SelectBuilder {
	return b.Select("COUNT(*)").From(models.Article{}.TableName())
}

func selectArticleQuery(b sq.StatementBuilderType, where sq.Eq) sq.SelectBuilder {
	return b.Select(articleColumns...).
		From(models.Article{}.TableName()).
		Where(where)
}

func selectArticleIDBySlugQuery(b sq.StatementBuilderType, slug string, exceptID int64) sq.SelectBuilder {
	q := b.Select("article_id").
		From(models.Article{}.TableName()).
		Where(sq.Eq{"slug": slug})
	if exceptID != 0 {
		q = q.Where(sq.NotEq{"article_id": exceptID})
	}
	return q.Limit(1)
}

func insertArticleQuery(b sq.StatementBuilderType, article models.Article) sq.InsertBuilder {
	return b.Insert(article.TableName()).
		Columns("user_id", "title", "content", "slug", "created_at", "updated_at").
		Values(article.UserID, article.Title, article.Content, article.Slug, article.CreatedAt, article.UpdatedAt).
		Suffix(returning(articleColumns))
}

// updateOwnedArticleQuery sets only the attributes present in update.
func updateOwnedArticleQuery(b sq.StatementBuilderType, ownerID, articleID int64, update models.ArticleUpdate, updatedAt time.Time) sq.UpdateBuilder {
	set := sq.Eq{"updated_at": updatedAt}
	if update.Title != nil {
		set["title"] = *update.Title
	}
	if update.Content != nil {
		set["content"] = *update.Content
	}
	if update.Slug != nil {
		set["slug"] = *update.Slug
	}

	return b.Update(models.Article{}.TableName()).
		SetMap(set).
		Where(sq.Eq{"article_id": articleID, "user_id": ownerID}).
		Suffix(returning(articleColumns))
}

func deleteOwnedArticleQuery(b sq.StatementBuilderType, ownerID, articleID int64) sq.DeleteBuilder {
	return b.Delete(models.Article{}.TableName()).
		Where(sq.Eq{"article_id": articleID, "user_id": ownerID})
}

func scanArticle(row interface{ Scan(...any) error }) (models.Article, error) {
	var a models.Article
	err := row.Scan(&a.ArticleID, &a.UserID, &a.Title, &a.Content, &a.Slug, &a.CreatedAt, &a.UpdatedAt)
	return a, err
}

// ── comments ──────────────────────────────────────────────────────────────────

func selectCommentsQuery(b sq.StatementBuilderType, articleID int64, limit, offset int) sq.SelectBuilder {
	return b.Select(commentColumns...).
		From(models.Comment{}.TableName()).
		Where(sq.Eq{"article_id": articleID}).
		OrderBy(commentOrder...).
		Limit(uint64(limit)).
		Offset(uint64(offset))
}

func countCommentsQuery(b sq.StatementBuilderType, articleID int64) sq.SelectBuilder {
	return b.Select("COUNT(*)").
		From(models.Comment{}.TableName()).
		Where(sq.Eq{"article_id": articleID})
}

func insertCommentQuery(b sq.StatementBuilderType, comment models.Comment) sq.InsertBuilder {
	return b.Insert(comment.TableName()).
		Columns("article_id", "user_id", "content", "created_at").
		Values(comment.ArticleID, comment.UserID, comment.Content, comment.CreatedAt).
		Suffix(returning(commentColumns))
}

func scanComment(row interface{ Scan(...any) error }) (models.Comment, error) {
	var c models.Comment
	err := row.Scan(&c.CommentID, &c.ArticleID, &c.UserID, &c.Content, &c.CreatedAt)
	return c, err
}
