package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func echoClient() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(Client(r)))
	})
}

func TestParseKeys(t *testing.T) {
	keys := ParseKeys([]string{"ats=secret-1", "  bare-key ", "", "empty="})
	assert.Equal(t, Keys{"secret-1": "ats", "bare-key": DefaultClient}, keys)
}

func TestAPIKeyAuth(t *testing.T) {
	handler := APIKeyAuth(ParseKeys([]string{"ats=secret-1", "hr=secret-2"}), "/health")(echoClient())

	tests := []struct {
		name       string
		path       string
		headers    map[string]string
		wantStatus int
		wantClient string
	}{
		{"bearer", "/score", map[string]string{"Authorization": "Bearer secret-1"}, http.StatusOK, "ats"},
		{"lowercase bearer", "/score", map[string]string{"Authorization": "bearer secret-2"}, http.StatusOK, "hr"},
		{"x-api-key", "/score", map[string]string{"X-API-Key": "secret-2"}, http.StatusOK, "hr"},
		{"missing", "/score", nil, http.StatusUnauthorized, ""},
		{"wrong key", "/score", map[string]string{"Authorization": "Bearer nope"}, http.StatusUnauthorized, ""},
		{"wrong scheme", "/score", map[string]string{"Authorization": "Basic secret-1"}, http.StatusUnauthorized, ""},
		{"extra parts", "/score", map[string]string{"Authorization": "Bearer secret-1 extra"}, http.StatusUnauthorized, ""},
		{"public path", "/health", nil, http.StatusOK, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, tt.path, nil)
			for k, v := range tt.headers {
				req.Header.Set(k, v)
			}
			w := httptest.NewRecorder()
			handler.ServeHTTP(w, req)

			require.Equal(t, tt.wantStatus, w.Code)
			if tt.wantStatus == http.StatusOK {
				assert.Equal(t, tt.wantClient, w.Body.String())
			} else {
				assert.NotEmpty(t, w.Header().Get("WWW-Authenticate"))
			}
		})
	}
}

func TestAPIKeyAuth_NoKeysPassesThrough(t *testing.T) {
	handler := APIKeyAuth(nil)(echoClient())

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/jobs/1/scores", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, w.Body.String())
}
