// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"math"
	"net"
	"net/http"
	"strconv"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// limiterTTL is how long the limiter of an idle client is kept.
const limiterTTL = 10 * time.Minute

type clientLimiter struct {
	limiter    *rate.Limiter
	lastAccess time.Time
}

// ipRateLimiter keeps one token bucket per client IP. Idle buckets are swept
// on access, at most once per limiterTTL.
type ipRateLimiter struct {
	limit rate.Limit
	burst int

	mu        sync.Mutex
	clients   map[string]*clientLimiter
	lastSweep time.Time

	now func() time.Time
}

// newIPRateLimiter allows perMinute requests per minute and client with the
// given burst. A non-positive perMinute disables limiting.
func newIPRateLimiter(perMinute, burst int) *ipRateLimiter {
	limit := rate.Inf
	if perMinute > 0 {
		limit = rate.Limit(float64(perMinute) / 60)
	}
	if burst < 1 {
		burst = 1
	}

	return &ipRateLimiter{
		limit:   limit,
		burst:   burst,
		clients: make(map[string]*clientLimiter),
		now:     time.Now,
	}
}

func (l *ipRateLimiter) allow(client string) bool {
	if l.limit == rate.Inf {
		return true
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	l.sweep(now)

	c, ok := l.clients[client]
	if !ok {
		c = &clientLimiter{limiter: rate.NewLimiter(l.limit, l.burst)}
		l.clients[client] = c
	}
	c.lastAccess = now

	return c.limiter.AllowN(now, 1)
}

func (l *ipRateLimiter) sweep(now time.Time) {
	if now.Sub(l.lastSweep) < limiterTTL {
		return
	}
	l.lastSweep = now

	for client, c := range l.clients {
		if now.Sub(c.lastAccess) > limiterTTL {
			delete(l.clients, client)
		}
	}
}

func (l *ipRateLimiter) size() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.clients)
}

// retryAfter is the number of seconds until one token is refilled.
func (l *ipRateLimiter) retryAfter() int {
	if l.limit == rate.Inf || l.limit <= 0 {
		return 1
	}
	return max(int(math.Ceil(1/float64(l.limit))), 1)
}

// rateLimited guards the credential endpoints against brute force. The client
// is identified by its IP as resolved by the RealIP middleware.
func (h *Handler) rateLimited(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !h.limiter.allow(clientIP(r)) {
			h.metrics.RecordRateLimited(r.URL.Path)
			w.Header().Set("Retry-After", strconv.Itoa(h.limiter.retryAfter()))
			h.writeError(w, r, errRateLimited)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
