package api

import (
	"context"
	"net/http"
	"time"

	echo "github.com/labstack/echo/v5"

	"github.com/showroom-hq/showroom/pkg/database"
	"github.com/showroom-hq/showroom/pkg/version"
)

const (
	healthStatusHealthy   = "healthy"
	healthStatusDegraded  = "degraded"
	healthStatusUnhealthy = "unhealthy"
)

// healthHandler handles GET /health.
// The database is a mirror, not a dependency: a dead database degrades the
// service (no catchup, no persistence) but demos keep running on memory, so
// it never reports unhealthy here.
func (s *Server) healthHandler(c *echo.Context) error {
	reqCtx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	resp := &HealthResponse{
		Status:  healthStatusHealthy,
		Version: version.GitCommit,
		Configuration: ConfigurationStats{
			Tools:     s.cfg.Stats().Tools,
			Templates: s.cfg.Stats().Templates,
		},
		Environments: len(s.sessions.List()),
	}

	if s.dbClient != nil {
		dbHealth, err := database.Health(reqCtx, s.dbClient.DB())
		resp.Database = dbHealth
		if err != nil {
			resp.Status = healthStatusDegraded
		}
	}

	return c.JSON(http.StatusOK, resp)
}
