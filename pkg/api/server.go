// Package api exposes the HTTP surface of the demo service: environment
// lifecycle, conversation turns, approvals, autopilot, custom demo configs,
// and the realtime WebSocket endpoint.
package api

import (
	"context"
	"net"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"

	echo "github.com/labstack/echo/v5"

	"github.com/showroom-hq/showroom/pkg/config"
	"github.com/showroom-hq/showroom/pkg/database"
	"github.com/showroom-hq/showroom/pkg/events"
	"github.com/showroom-hq/showroom/pkg/services"
	"github.com/showroom-hq/showroom/pkg/session"
)

// Server is the HTTP server. Optional collaborators (demos, connManager,
// dbClient) are wired via Set* calls; handlers degrade to 503 when absent.
type Server struct {
	echo       *echo.Echo
	httpServer *http.Server

	cfg          *config.Config
	dbClient     *database.Client
	sessions     *session.Manager
	demos        *services.CustomDemoService
	connManager  *events.ConnectionManager
	dashboardDir string
}

// NewServer creates the server and registers all API routes.
func NewServer(cfg *config.Config, dbClient *database.Client, sessions *session.Manager, connManager *events.ConnectionManager) *Server {
	s := &Server{
		echo:        echo.New(),
		cfg:         cfg,
		dbClient:    dbClient,
		sessions:    sessions,
		connManager: connManager,
	}
	s.setupRoutes()
	return s
}

// SetCustomDemoService wires the custom demo persistence used by /api/v1/demos.
func (s *Server) SetCustomDemoService(demos *services.CustomDemoService) {
	s.demos = demos
}

// SetDashboardDir enables serving the built frontend from dir.
func (s *Server) SetDashboardDir(dir string) {
	s.dashboardDir = dir
	s.setupDashboardRoutes()
}

func (s *Server) setupRoutes() {
	e := s.echo
	e.Use(securityHeaders())

	e.GET("/health", s.healthHandler)

	v1 := e.Group("/api/v1")

	v1.GET("/templates", s.listTemplatesHandler)
	v1.GET("/templates/:id", s.getTemplateHandler)
	v1.GET("/tools", s.listToolsHandler)

	v1.POST("/environments", s.createEnvironmentHandler)
	v1.GET("/environments", s.listEnvironmentsHandler)
	v1.GET("/environments/:id", s.getEnvironmentHandler)
	v1.DELETE("/environments/:id", s.deleteEnvironmentHandler)
	v1.POST("/environments/:id/reset", s.resetEnvironmentHandler)

	v1.POST("/environments/:id/messages", s.sendMessageHandler)
	v1.GET("/environments/:id/messages", s.getMessagesHandler)
	v1.GET("/environments/:id/timeline", s.getTimelineHandler)

	v1.GET("/environments/:id/approval", s.getApprovalHandler)
	v1.POST("/environments/:id/approval", s.resolveApprovalHandler)

	v1.GET("/environments/:id/autopilot", s.autopilotStatusHandler)
	v1.POST("/environments/:id/autopilot/start", s.autopilotStartHandler)
	v1.POST("/environments/:id/autopilot/advance", s.autopilotAdvanceHandler)
	v1.POST("/environments/:id/autopilot/stop", s.autopilotStopHandler)

	v1.POST("/demos", s.saveDemoHandler)
	v1.GET("/demos", s.listDemosHandler)
	v1.GET("/demos/:id", s.getDemoHandler)
	v1.DELETE("/demos/:id", s.deleteDemoHandler)

	v1.GET("/ws", s.wsHandler)
}

// setupDashboardRoutes registers static file serving and the SPA fallback.
// No-op when no dashboard directory is configured or index.html is missing,
// so API-only deployments work unchanged.
func (s *Server) setupDashboardRoutes() {
	if s.dashboardDir == "" {
		return
	}
	index := filepath.Join(s.dashboardDir, "index.html")
	if _, err := os.Stat(index); err != nil {
		return
	}

	// Hashed Vite bundles are content-addressed and safe to cache forever.
	s.echo.GET("/assets/*", func(c *echo.Context) error {
		c.Response().Header().Set("Cache-Control", "public, max-age=31536000, immutable")
		return c.File(filepath.Join(s.dashboardDir, path.Clean(c.Request().URL.Path)))
	})

	s.echo.GET("/*", func(c *echo.Context) error {
		p := c.Request().URL.Path
		if strings.HasPrefix(p, "/api/") || p == "/health" {
			return echo.NewHTTPError(http.StatusNotFound, "not found")
		}
		c.Response().Header().Set("Cache-Control", "no-cache")

		f := filepath.Join(s.dashboardDir, path.Clean(p))
		if st, err := os.Stat(f); err == nil && !st.IsDir() {
			return c.File(f)
		}
		return c.File(index)
	})
}

// Start runs the server on addr, blocking until shutdown.
func (s *Server) Start(addr string) error {
	s.httpServer = &http.Server{Addr: addr, Handler: s.echo}
	return s.httpServer.ListenAndServe()
}

// StartWithListener runs the server on an existing listener (tests use a
// random port).
func (s *Server) StartWithListener(ln net.Listener) error {
	s.httpServer = &http.Server{Handler: s.echo}
	return s.httpServer.Serve(ln)
}

// Shutdown gracefully stops the server.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpServer == nil {
		return nil
	}
	return s.httpServer.Shutdown(ctx)
}
