package api

import (
	"net/http"

	echo "github.com/labstack/echo/v5"
)

// getTimelineHandler handles GET /api/v1/environments/:id/timeline.
// Events are returned newest-first, matching the sidebar rendering order.
func (s *Server) getTimelineHandler(c *echo.Context) error {
	env, err := s.environment(c)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, env.Orch.TimelineEvents())
}
