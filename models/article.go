// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Article is a blog post owned by a single user.
type Article struct {
	ArticleID int64     `json:"-"`
	UserID    int64     `json:"-"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Slug      string    `json:"slug"`
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}

// TableName returns the name of the database table
// associated with the Article model.
func (a Article) TableName() string {
	return "articles"
}

// ArticleUpdate is a partial update of an [Article].
// Only non-nil fields are applied.
type ArticleUpdate struct {
	Title   *string `json:"title,omitempty"`
	Content *string `json:"content,omitempty"`
	Slug    *string `json:"slug,omitempty"`
}

// Apply returns a copy of article with the non-nil fields of u applied.
func (u ArticleUpdate) Apply(article Article) Article {
	if u.Title != nil {
		article.Title = *u.Title
	}
	if u.Content != nil {
		article.Content = *u.Content
	}
	if u.Slug != nil {
		article.Slug = *u.Slug
	}
	return article
}
