package api

import (
	"net/http"
	"net/http/httptest"
	"testing"

	echo "github.com/labstack/echo/v5"
	"github.com/stretchr/testify/assert"
)

func TestExtractAuthor(t *testing.T) {
	tests := []struct {
		name    string
		headers map[string]string
		want    string
	}{
		{
			name:    "X-Forwarded-User wins",
			headers: map[string]string{"X-Forwarded-User": "alice", "X-Forwarded-Email": "alice@example.com"},
			want:    "alice",
		},
		{
			name:    "falls back to X-Forwarded-Email",
			headers: map[string]string{"X-Forwarded-Email": "bob@example.com"},
			want:    "bob@example.com",
		},
		{
			name:    "falls back to X-Remote-User",
			headers: map[string]string{"X-Remote-User": "carol"},
			want:    "carol",
		},
		{
			name: "no headers",
			want: "api-client",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			for k, v := range tt.headers {
				req.Header.Set(k, v)
			}
			c := e.NewContext(req, httptest.NewRecorder())

			assert.Equal(t, tt.want, extractAuthor(c))
		})
	}
}

func TestExtractBearerToken(t *testing.T) {
	tests := []struct {
		name   string
		header string
		want   string
	}{
		{name: "bearer token", header: "Bearer tok-123", want: "tok-123"},
		{name: "case-insensitive scheme", header: "bearer tok-456", want: "tok-456"},
		{name: "no header", header: "", want: ""},
		{name: "wrong scheme", header: "Basic dXNlcg==", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			c := e.NewContext(req, httptest.NewRecorder())

			assert.Equal(t, tt.want, extractBearerToken(c))
		})
	}
}
