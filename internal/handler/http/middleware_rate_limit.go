// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Procurio

package http

import (
	"context"
	"net"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/procurio/purchasing-automation/internal/logger"
	"github.com/procurio/purchasing-automation/internal/utils"
	"github.com/procurio/purchasing-automation/models"
)

// rateLimiter counts requests per client IP per calendar day. Counters from
// previous days are discarded on rollover, so memory stays bounded by the
// number of distinct clients seen today.
type rateLimiter struct {
	mu     sync.Mutex
	limit  int
	day    string
	counts map[string]int
}

func newRateLimiter(limit int) *rateLimiter {
	return &rateLimiter{
		limit:  limit,
		counts: make(map[string]int),
	}
}

// allow records one request from ip at the given time and reports whether it
// is within today's quota. A non-positive limit disables limiting.
func (l *rateLimiter) allow(ip string, now time.Time) bool {
	if l.limit <= 0 {
		return true
	}

	day := now.Format("2006-01-02")

	l.mu.Lock()
	defer l.mu.Unlock()

	if day != l.day {
		l.day = day
		l.counts = make(map[string]int)
	}

	l.counts[ip]++
	return l.counts[ip] <= l.limit
}

// withRateLimit enforces the per-IP daily quota on protected routes and
// stores the resolved client IP in the request context.
func (h *Handler) withRateLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ip := clientIP(r)
		ctx := context.WithValue(r.Context(), utils.ClientIPCtxKey, ip)
		r = r.WithContext(ctx)

		if !h.rateLimiter.allow(ip, time.Now()) {
			logger.FromRequest(r).Warn().Str("client_ip", ip).Msg("daily rate limit exceeded")
			failure := &models.Failure{
				Kind:      models.FailureValidation,
				Message:   "daily request limit exceeded, try again tomorrow",
				Details:   []models.FieldViolation{},
				Retryable: true,
			}
			if _, err := utils.WriteJSON(w, failure.Response(), http.StatusTooManyRequests); err != nil {
				logger.FromRequest(r).Error().Err(err).Msg("cannot write rate limit response")
			}
			return
		}

		next.ServeHTTP(w, r)
	})
}

// clientIP resolves the caller address, preferring the first entry of
// X-Forwarded-For when a proxy sits in front.
func clientIP(r *http.Request) string {
	if forwarded := r.Header.Get("X-Forwarded-For"); forwarded != "" {
		parts := strings.Split(forwarded, ",")
		return strings.TrimSpace(parts[0])
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
