// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-blog-api/internal/store"
	"github.com/MKhiriev/go-blog-api/models"
)

var registrationFields = []string{FieldLogin, FieldPassword}

// MaxPasswordBytes is the longest password bcrypt accepts.
const MaxPasswordBytes = 72

// LoginFinder looks a user up by login. store.UserRepository satisfies it.
type LoginFinder interface {
	FindUserByLogin(ctx context.Context, login string) (models.User, error)
}

// RegistrationValidator checks a standard user before it is registered:
// login presence and uniqueness, then password presence and length.
type RegistrationValidator struct {
	users LoginFinder
}

func NewRegistrationValidator(users LoginFinder) Validator {
	return &RegistrationValidator{users: users}
}

func (v *RegistrationValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.User:
		return v.validateUser(ctx, value, fields...)
	case *models.User:
		return v.validateUser(ctx, *value, fields...)
	default:
		return ErrUnsupportedType
	}
}

func (v *RegistrationValidator) validateUser(ctx context.Context, user models.User, fields ...string) error {
	s, err := newScope(registrationFields, fields)
	if err != nil {
		return err
	}

	var errs models.ValidationErrors
	if s.has(FieldLogin) {
		switch {
		case isBlank(user.Login):
			errs.Add(FieldLogin, models.MsgBlank)
		default:
			_, err := v.users.FindUserByLogin(ctx, user.Login)
			switch {
			case err == nil:
				errs.Add(FieldLogin, models.MsgTaken)
			case !errors.Is(err, store.ErrNoUserWasFound):
				return fmt.Errorf("%w: %w", ErrUniquenessCheck, err)
			}
		}
	}
	// the password is not trimmed, whitespace is a valid password
	if s.has(FieldPassword) {
		switch {
		case user.Password == "":
			errs.Add(FieldPassword, models.MsgBlank)
		case len(user.Password) > MaxPasswordBytes:
			errs.Add(FieldPassword, models.MsgPasswordTooLong)
		}
	}

	if errs.Empty() {
		return nil
	}
	return errs
}
