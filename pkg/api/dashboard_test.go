package api

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	echo "github.com/labstack/echo/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newDashboardTestServer creates a minimal Server with an Echo instance and
// dummy API + health routes, mimicking the real route registration order
// (API routes first, then dashboard routes via SetDashboardDir).
func newDashboardTestServer(t *testing.T) *Server {
	t.Helper()
	e := echo.New()
	s := &Server{echo: e}

	e.GET("/health", func(c *echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})
	e.GET("/api/v1/test", func(c *echo.Context) error {
		return c.String(http.StatusOK, "api-response")
	})
	return s
}

func writeDashboardFiles(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, content := range files {
		p := filepath.Join(dir, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(p), 0o755))
		require.NoError(t, os.WriteFile(p, []byte(content), 0o644))
	}
	return dir
}

func TestSetupDashboardRoutes(t *testing.T) {
	t.Run("no dashboard dir — no SPA fallback", func(t *testing.T) {
		s := newDashboardTestServer(t)
		s.setupDashboardRoutes()

		rec := httptest.NewRecorder()
		s.echo.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

		assert.NotEqual(t, http.StatusOK, rec.Code)
	})

	t.Run("dashboard dir without index.html — skips", func(t *testing.T) {
		s := newDashboardTestServer(t)
		s.dashboardDir = t.TempDir()
		s.setupDashboardRoutes()

		rec := httptest.NewRecorder()
		s.echo.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

		assert.NotEqual(t, http.StatusOK, rec.Code)
	})

	t.Run("SPA fallback serves index.html for unknown paths", func(t *testing.T) {
		dir := writeDashboardFiles(t, map[string]string{
			"index.html": "<html><body>showroom</body></html>",
		})
		s := newDashboardTestServer(t)
		s.SetDashboardDir(dir)

		for _, p := range []string{"/", "/environments/abc", "/builder"} {
			rec := httptest.NewRecorder()
			s.echo.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, p, nil))

			assert.Equal(t, http.StatusOK, rec.Code, p)
			assert.Contains(t, rec.Body.String(), "showroom")
			assert.Equal(t, "no-cache", rec.Header().Get("Cache-Control"),
				"SPA fallback should set no-cache so browsers pick up new asset hashes after deployments")
		}
	})

	t.Run("serves exact file when it exists on disk", func(t *testing.T) {
		dir := writeDashboardFiles(t, map[string]string{
			"index.html":  "<html>index</html>",
			"favicon.ico": "icon-data",
		})
		s := newDashboardTestServer(t)
		s.SetDashboardDir(dir)

		rec := httptest.NewRecorder()
		s.echo.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/favicon.ico", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "icon-data")
	})

	t.Run("serves Vite assets with immutable cache", func(t *testing.T) {
		dir := writeDashboardFiles(t, map[string]string{
			"index.html":        "<html>index</html>",
			"assets/app-abc.js": "console.log('app')",
		})
		s := newDashboardTestServer(t)
		s.SetDashboardDir(dir)

		rec := httptest.NewRecorder()
		s.echo.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/assets/app-abc.js", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "public, max-age=31536000, immutable", rec.Header().Get("Cache-Control"),
			"hashed Vite assets should have aggressive cache headers")
	})

	t.Run("API routes take priority over SPA fallback", func(t *testing.T) {
		dir := writeDashboardFiles(t, map[string]string{
			"index.html": "<html>index</html>",
		})
		s := newDashboardTestServer(t)
		s.SetDashboardDir(dir)

		rec := httptest.NewRecorder()
		s.echo.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/test", nil))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "api-response", rec.Body.String())

		// Unregistered /api/ paths must not resolve to index.html.
		rec = httptest.NewRecorder()
		s.echo.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/nonexistent", nil))
		assert.NotContains(t, rec.Body.String(), "index")

		rec = httptest.NewRecorder()
		s.echo.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "ok", rec.Body.String())
	})
}
