// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"

	"github.com/MKhiriev/go-blog-api/models"
)

// CommentValidator checks presence of the comment content.
type CommentValidator struct{}

func NewCommentValidator() Validator {
	return &CommentValidator{}
}

func (v *CommentValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	var comment models.Comment
	switch value := obj.(type) {
	case models.Comment:
		comment = value
	case *models.Comment:
		comment = *value
	default:
		return ErrUnsupportedType
	}

	s, err := newScope([]string{FieldContent}, fields)
	if err != nil {
		return err
	}

	var errs models.ValidationErrors
	if s.has(FieldContent) && isBlank(comment.Content) {
		errs.Add(FieldContent, models.MsgBlank)
	}
	if errs.Empty() {
		return nil
	}
	return errs
}
