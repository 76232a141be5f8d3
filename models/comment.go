// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Comment is an immutable note left by a user on an article.
type Comment struct {
	CommentID int64     `json:"-"`
	ArticleID int64     `json:"-"`
	UserID    int64     `json:"-"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"-"`
}

// TableName returns the name of the database table
// associated with the Comment model.
func (c Comment) TableName() string {
	return "comments"
}
