// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/go-blog-api/internal/logger"
	"github.com/MKhiriev/go-blog-api/internal/metrics"
	"github.com/MKhiriev/go-blog-api/internal/service"
	"github.com/MKhiriev/go-blog-api/internal/utils"
	"github.com/MKhiriev/go-blog-api/models"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newBareHandler returns a Handler holding only what the middleware needs.
func newBareHandler(l *logger.Logger) *Handler {
	return &Handler{
		services: &service.Services{},
		metrics:  metrics.Nop{},
		limiter:  newIPRateLimiter(0, 0),
		traceIDs: utils.NewUUIDGenerator(),
		logger:   l,
	}
}

func okHandler(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
}

// ---- withTraceID ----

func TestWithTraceID(t *testing.T) {
	tests := []struct {
		name          string
		requestHeader string
		wantGenerated bool
	}{
		{name: "trace id from request header is reused", requestHeader: "my-trace-id"},
		{name: "trace id is generated", wantGenerated: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			h := newBareHandler(&logger.Logger{Logger: zerolog.New(&buf)})

			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				logger.FromRequest(r).Info().Msg("inside")
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodGet, "/test", nil)
			if tt.requestHeader != "" {
				req.Header.Set(traceIDHeader, tt.requestHeader)
			}
			rec := httptest.NewRecorder()
			h.withTraceID(next).ServeHTTP(rec, req)

			traceID := rec.Header().Get(traceIDHeader)
			if tt.wantGenerated {
				_, err := uuid.Parse(traceID)
				assert.NoError(t, err)
			} else {
				assert.Equal(t, tt.requestHeader, traceID)
			}

			var line map[string]any
			require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
			assert.Equal(t, traceID, line["trace_id"])
		})
	}
}

// ---- withLogging ----

func TestWithLogging_WritesAccessLine(t *testing.T) {
	var buf bytes.Buffer
	l := zerolog.New(&buf)
	h := newBareHandler(logger.Nop())

	next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte("hello"))
	})

	req := httptest.NewRequest(http.MethodPost, "/articles?x=1", nil)
	req = req.WithContext(l.WithContext(req.Context()))
	rec := httptest.NewRecorder()
	h.withLogging(next).ServeHTTP(rec, req)

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "/articles?x=1", line["uri"])
	assert.Equal(t, "POST", line["method"])
	assert.Equal(t, float64(http.StatusCreated), line["status"])
	assert.Equal(t, float64(5), line["size"])
	assert.Contains(t, line, "duration")
}

// ---- responseWriter ----

func TestResponseWriter(t *testing.T) {
	rec := httptest.NewRecorder()
	w := newResponseWriter(rec)
	assert.Equal(t, http.StatusOK, w.Status(), "nothing written yet")

	w.WriteHeader(http.StatusAccepted)
	w.WriteHeader(http.StatusTeapot)
	_, err := w.Write([]byte("abc"))
	require.NoError(t, err)

	assert.Equal(t, http.StatusAccepted, w.Status())
	assert.Equal(t, http.StatusAccepted, rec.Code)
	assert.Equal(t, 3, w.size)
	assert.Same(t, rec, w.Unwrap())
}

// ---- recoverer ----

func TestRecoverer_PanicIs500Envelope(t *testing.T) {
	h := newBareHandler(logger.Nop())

	next := http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	})

	rec := httptest.NewRecorder()
	h.recoverer(next).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assertErrorEnvelope(t, rec, http.StatusInternalServerError, "", "Something went wrong")
	assert.NotContains(t, rec.Body.String(), "boom")
}

func TestRecoverer_RepanicsAbortHandler(t *testing.T) {
	h := newBareHandler(logger.Nop())

	next := http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic(http.ErrAbortHandler)
	})

	assert.PanicsWithValue(t, http.ErrAbortHandler, func() {
		h.recoverer(next).ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
	})
}

// ---- auth ----

func TestAuth_StoresCurrentUser(t *testing.T) {
	h := newBareHandler(logger.Nop())
	h.services.AuthService = &fakeAuthService{authorizeFn: authorizeAlice}

	var gotUser models.User
	var gotToken string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUser, _ = utils.CurrentUserFromContext(r.Context())
		gotToken, _ = utils.AccessTokenFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	})

	for _, scheme := range []string{"Bearer", "bearer", "BEARER"} {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", scheme+" "+testToken)
		rec := httptest.NewRecorder()
		h.auth(next).ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code, scheme)
		assert.Equal(t, alice, gotUser)
		assert.Equal(t, testToken, gotToken)
	}
}

func TestAuth_StorageFailureIs500(t *testing.T) {
	h := newBareHandler(logger.Nop())
	h.services.AuthService = &fakeAuthService{
		authorizeFn: func(context.Context, string) (models.User, error) {
			return models.User{}, assert.AnError
		},
	}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+testToken)
	rec := httptest.NewRecorder()
	h.auth(http.HandlerFunc(okHandler)).ServeHTTP(rec, req)

	assertErrorEnvelope(t, rec, http.StatusInternalServerError, "", "Something went wrong")
}

// ---- rate limiting ----

func TestRateLimited_RejectsAfterBurst(t *testing.T) {
	h := newBareHandler(logger.Nop())
	h.limiter = newIPRateLimiter(1, 2)

	handler := h.rateLimited(http.HandlerFunc(okHandler))
	send := func(remoteAddr string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/login", nil)
		req.RemoteAddr = remoteAddr
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		return rec
	}

	assert.Equal(t, http.StatusOK, send("10.0.0.1:1111").Code)
	assert.Equal(t, http.StatusOK, send("10.0.0.1:2222").Code)

	rec := send("10.0.0.1:3333")
	assertErrorEnvelope(t, rec, http.StatusTooManyRequests, "", "Too Many Requests")
	assert.Equal(t, "60", rec.Header().Get("Retry-After"))

	// other clients have their own bucket
	assert.Equal(t, http.StatusOK, send("10.0.0.2:1111").Code)
}

func TestIPRateLimiter_Disabled(t *testing.T) {
	l := newIPRateLimiter(0, 0)
	for range 1000 {
		require.True(t, l.allow("10.0.0.1"))
	}
	assert.Zero(t, l.size())
}

func TestIPRateLimiter_SweepsIdleClients(t *testing.T) {
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	l := newIPRateLimiter(60, 1)
	l.now = func() time.Time { return now }

	require.True(t, l.allow("a"))
	require.True(t, l.allow("b"))
	assert.Equal(t, 2, l.size())

	now = now.Add(2 * limiterTTL)
	require.True(t, l.allow("c"))
	assert.Equal(t, 1, l.size())
}

func TestClientIP(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)

	req.RemoteAddr = "192.0.2.1:1234"
	assert.Equal(t, "192.0.2.1", clientIP(req))

	req.RemoteAddr = "192.0.2.9"
	assert.Equal(t, "192.0.2.9", clientIP(req))
}

func TestRouter_RateLimitsCredentialEndpointsOnly(t *testing.T) {
	h := newTestHandler(t, &service.Services{
		ArticleService: &fakeArticleService{
			getFn: func(context.Context, int64) (models.Article, error) {
				return models.Article{ArticleID: 1}, nil
			},
		},
		RegistrationService: &fakeRegistrationService{
			registerFn: func(context.Context, models.User) (models.User, error) {
				return models.User{}, models.ValidationErrors{{Attribute: "login", Message: models.MsgBlank}}
			},
		},
	})
	h.limiter = newIPRateLimiter(1, 1)

	assert.Equal(t, http.StatusUnprocessableEntity, serve(h, http.MethodPost, "/users", `{}`, "X-Real-IP", "198.51.100.7").Code)
	assert.Equal(t, http.StatusTooManyRequests, serve(h, http.MethodPost, "/users", `{}`, "X-Real-IP", "198.51.100.7").Code)
	assert.Equal(t, http.StatusTooManyRequests, serve(h, http.MethodPost, "/login", `{}`, "X-Real-IP", "198.51.100.7").Code)

	for range 3 {
		assert.Equal(t, http.StatusOK, serve(h, http.MethodGet, "/articles/1", "", "X-Real-IP", "198.51.100.7").Code)
	}

	rec := serve(h, http.MethodGet, "/metrics", "")
	assert.True(t, strings.Contains(rec.Body.String(), `blog_rate_limited_total{route="/users"} 1`), rec.Body.String())
}

func TestRouter_OversizedBodyIs400(t *testing.T) {
	articles := &fakeArticleService{
		createFn: func(context.Context, int64, models.Article) (models.Article, error) {
			t.Fatal("create must not be called")
			return models.Article{}, nil
		},
	}
	h := newTestHandler(t, &service.Services{ArticleService: articles})

	body := `{"data":{"attributes":{"title":"t","slug":"s","content":"` + strings.Repeat("a", maxBodyBytes) + `"}}}`
	rec := serveAuthorized(h, http.MethodPost, "/articles", body)

	assertErrorEnvelope(t, rec, http.StatusBadRequest, "/data", "Bad Request")
}

func TestRouter_BodyUnderLimitIsAccepted(t *testing.T) {
	var got models.Article
	articles := &fakeArticleService{
		createFn: func(_ context.Context, ownerID int64, article models.Article) (models.Article, error) {
			got = article
			article.ArticleID, article.UserID = 1, ownerID
			return article, nil
		},
	}
	h := newTestHandler(t, &service.Services{ArticleService: articles})

	content := strings.Repeat("a", maxBodyBytes/2)
	body := `{"data":{"attributes":{"title":"t","slug":"s","content":"` + content + `"}}}`
	rec := serveAuthorized(h, http.MethodPost, "/articles", body)

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, content, got.Content)
}
