// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/go-blog-api/internal/adapter"
	"github.com/MKhiriev/go-blog-api/internal/service"
	"github.com/MKhiriev/go-blog-api/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// loginCapturing returns an AuthService whose Login records the credentials
// it got. It fails with err when set, and issues a token to alice otherwise.
func loginCapturing(got *models.Credentials, err error) *fakeAuthService {
	return &fakeAuthService{
		authorizeFn: authorizeAlice,
		loginFn: func(_ context.Context, creds models.Credentials) (models.User, models.AccessToken, error) {
			*got = creds
			if err != nil {
				return models.User{}, models.AccessToken{}, err
			}
			return alice, models.AccessToken{AccessTokenID: 3, Token: "issued", UserID: alice.UserID}, nil
		},
	}
}

func TestLogin_CredentialForms(t *testing.T) {
	tests := []struct {
		name string
		body string
		want models.Credentials
	}{
		{
			name: "top level code",
			body: `{"code":"abc"}`,
			want: models.Credentials{Code: "abc"},
		},
		{
			name: "login and password attributes",
			body: `{"data":{"attributes":{"login":"alice","password":"secret"}}}`,
			want: models.Credentials{Login: "alice", Password: "secret"},
		},
		{
			name: "code attribute",
			body: `{"data":{"attributes":{"code":"xyz"}}}`,
			want: models.Credentials{Code: "xyz"},
		},
		{
			name: "top level code wins",
			body: `{"code":"top","data":{"attributes":{"code":"nested"}}}`,
			want: models.Credentials{Code: "top"},
		},
		{
			name: "empty body",
			body: "",
			want: models.Credentials{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got models.Credentials
			h := newTestHandler(t, &service.Services{AuthService: loginCapturing(&got, nil)})

			rec := serve(h, http.MethodPost, "/login", tt.body)

			require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
			assert.Equal(t, tt.want, got)

			data := decodeBody(t, rec)["data"].(map[string]any)
			assert.Equal(t, "3", data["id"])
			assert.Equal(t, "access_token", data["type"])
			assert.Equal(t, map[string]any{"token": "issued"}, data["attributes"])
		})
	}
}

func TestLogin_AuthenticationFailureIs401(t *testing.T) {
	tests := []struct {
		name string
		err  error
	}{
		{name: "wrong password", err: service.ErrAuthentication},
		{name: "rejected code", err: fmt.Errorf("%w: %w", service.ErrAuthentication, adapter.ErrCodeRejected)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got models.Credentials
			h := newTestHandler(t, &service.Services{AuthService: loginCapturing(&got, tt.err)})

			rec := serve(h, http.MethodPost, "/login", `{"code":"bad"}`)

			assertErrorEnvelope(t, rec, http.StatusUnauthorized, "/code", "Authentication code is invalid")
			assert.Contains(t, rec.Body.String(), "You must provide a valid code in order to exchange it for token")
		})
	}
}

func TestLogin_ProviderOutageIs500(t *testing.T) {
	var got models.Credentials
	h := newTestHandler(t, &service.Services{AuthService: loginCapturing(&got, adapter.ErrBadGateway)})

	rec := serve(h, http.MethodPost, "/login", `{"code":"abc"}`)

	assertErrorEnvelope(t, rec, http.StatusInternalServerError, "", "Something went wrong")
}

func TestLogin_InvalidJSONIs400(t *testing.T) {
	var got models.Credentials
	h := newTestHandler(t, &service.Services{AuthService: loginCapturing(&got, nil)})

	rec := serve(h, http.MethodPost, "/login", `{"code":`)

	assertErrorEnvelope(t, rec, http.StatusBadRequest, "/data", "Bad Request")
}

func TestLogout(t *testing.T) {
	var revoked string
	auth := &fakeAuthService{
		authorizeFn: authorizeAlice,
		revokeFn: func(_ context.Context, token string) error {
			revoked = token
			return nil
		},
	}
	h := newTestHandler(t, &service.Services{AuthService: auth})

	rec := serveAuthorized(h, http.MethodDelete, "/logout", "")

	require.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Body.String())
	assert.Equal(t, testToken, revoked)
}

func TestLogout_WithoutTokenIs403(t *testing.T) {
	auth := &fakeAuthService{
		authorizeFn: authorizeAlice,
		revokeFn: func(context.Context, string) error {
			t.Fatal("revoke must not be called")
			return nil
		},
	}
	h := newTestHandler(t, &service.Services{AuthService: auth})

	rec := serve(h, http.MethodDelete, "/logout", "")

	assertErrorEnvelope(t, rec, http.StatusForbidden, "/headers/authorization", "Not authorized")
}

func TestLogout_RevokedConcurrentlyIs403(t *testing.T) {
	auth := &fakeAuthService{
		authorizeFn: authorizeAlice,
		revokeFn: func(context.Context, string) error {
			return service.ErrAuthorization
		},
	}
	h := newTestHandler(t, &service.Services{AuthService: auth})

	rec := serveAuthorized(h, http.MethodDelete, "/logout", "")

	assertErrorEnvelope(t, rec, http.StatusForbidden, "/headers/authorization", "Not authorized")
}

func TestLogout_NoTokenInContextIs403(t *testing.T) {
	h := newTestHandler(t, &service.Services{})

	rec := httptest.NewRecorder()
	h.logout(rec, httptest.NewRequest(http.MethodDelete, "/logout", nil))

	assertErrorEnvelope(t, rec, http.StatusForbidden, "/headers/authorization", "Not authorized")
}

func TestRegister(t *testing.T) {
	var got models.User
	registration := &fakeRegistrationService{
		registerFn: func(_ context.Context, user models.User) (models.User, error) {
			got = user
			return models.User{UserID: 12, Login: user.Login, Provider: models.ProviderStandard}, nil
		},
	}
	h := newTestHandler(t, &service.Services{RegistrationService: registration})

	rec := serve(h, http.MethodPost, "/users", `{"data":{"type":"user","attributes":{"login":"bob","password":"pw","provider":"github"}}}`)

	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	assert.Equal(t, models.User{Login: "bob", Password: "pw"}, got, "provider is never taken from the body")

	data := decodeBody(t, rec)["data"].(map[string]any)
	assert.Equal(t, "12", data["id"])
	assert.Equal(t, "user", data["type"])
	attributes := data["attributes"].(map[string]any)
	assert.Equal(t, "bob", attributes["login"])
	assert.Equal(t, "standard", attributes["provider"])
	assert.NotContains(t, attributes, "password")
	assert.NotContains(t, attributes, "password_digest")
}

func TestRegister_ValidationIs422(t *testing.T) {
	registration := &fakeRegistrationService{
		registerFn: func(context.Context, models.User) (models.User, error) {
			return models.User{}, models.ValidationErrors{
				{Attribute: "login", Message: models.MsgTaken},
				{Attribute: "password", Message: models.MsgBlank},
			}
		},
	}
	h := newTestHandler(t, &service.Services{RegistrationService: registration})

	rec := serve(h, http.MethodPost, "/users", `{"data":{"attributes":{"login":"bob"}}}`)

	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.JSONEq(t, `{"errors":[
		{"source":{"pointer":"/data/attributes/login"},"detail":"has already been taken"},
		{"source":{"pointer":"/data/attributes/password"},"detail":"can't be blank"}
	]}`, rec.Body.String())
}

func TestRegister_InvalidJSONIs400(t *testing.T) {
	h := newTestHandler(t, &service.Services{RegistrationService: &fakeRegistrationService{}})

	rec := serve(h, http.MethodPost, "/users", `[1,2]`)

	assertErrorEnvelope(t, rec, http.StatusBadRequest, "/data", "Bad Request")
}
