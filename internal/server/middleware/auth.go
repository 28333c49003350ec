// Package middleware provides HTTP middleware for API key authentication.
package middleware

import (
	"context"
	"crypto/subtle"
	"net/http"
	"strings"
)

// ContextKey is a typed key for context values to avoid collisions.
type ContextKey string

// clientKey is the context key for storing the authenticated client name.
const clientKey ContextKey = "client"

// DefaultClient names keys configured without an explicit client name.
const DefaultClient = "default"

// Keys maps API keys to client names.
type Keys map[string]string

// ParseKeys parses "name=key" entries. A bare key is assigned DefaultClient.
func ParseKeys(entries []string) Keys {
	keys := make(Keys)
	for _, entry := range entries {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}
		name, key, ok := strings.Cut(entry, "=")
		if !ok {
			name, key = DefaultClient, entry
		}
		name, key = strings.TrimSpace(name), strings.TrimSpace(key)
		if key != "" {
			keys[key] = name
		}
	}
	return keys
}

// lookup compares the presented key against every configured key in constant time.
func (k Keys) lookup(presented string) (string, bool) {
	var (
		client string
		found  bool
	)
	for key, name := range k {
		if subtle.ConstantTimeCompare([]byte(key), []byte(presented)) == 1 {
			client, found = name, true
		}
	}
	return client, found
}

// APIKeyAuth creates middleware that requires a configured API key in an
// "Authorization: Bearer" or "X-API-Key" header. With no keys configured every
// request passes. Paths listed in public are never checked.
func APIKeyAuth(keys Keys, public ...string) func(http.Handler) http.Handler {
	open := make(map[string]bool, len(public))
	for _, p := range public {
		open[p] = true
	}

	return func(next http.Handler) http.Handler {
		if len(keys) == 0 {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if open[r.URL.Path] {
				next.ServeHTTP(w, r)
				return
			}

			presented, ok := extractKey(r)
			if !ok {
				unauthorized(w)
				return
			}
			client, ok := keys.lookup(presented)
			if !ok {
				unauthorized(w)
				return
			}

			ctx := context.WithValue(r.Context(), clientKey, client)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func extractKey(r *http.Request) (string, bool) {
	if key := strings.TrimSpace(r.Header.Get("X-API-Key")); key != "" {
		return key, true
	}

	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return "", false
	}
	// Handle case-insensitive "Bearer" prefix
	parts := strings.Fields(authHeader)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", false
	}
	return parts[1], true
}

func unauthorized(w http.ResponseWriter) {
	w.Header().Set("WWW-Authenticate", `Bearer realm="resume-screener"`)
	http.Error(w, "Unauthorized", http.StatusUnauthorized)
}

// Client returns the authenticated client name from the request context, or "".
func Client(r *http.Request) string {
	client, _ := r.Context().Value(clientKey).(string)
	return client
}
