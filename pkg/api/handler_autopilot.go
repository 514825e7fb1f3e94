package api

import (
	"net/http"

	echo "github.com/labstack/echo/v5"

	"github.com/showroom-hq/showroom/pkg/session"
)

// autopilotStatusHandler handles GET /api/v1/environments/:id/autopilot.
func (s *Server) autopilotStatusHandler(c *echo.Context) error {
	env, err := s.environment(c)
	if err != nil {
		return err
	}
	if env.Autopilot == nil {
		return echo.NewHTTPError(http.StatusNotFound, "this demo has no guided walkthrough")
	}
	return c.JSON(http.StatusOK, autopilotResponse(env))
}

// autopilotStartHandler handles POST /api/v1/environments/:id/autopilot/start.
// Starting again rewinds the walkthrough to the first step.
func (s *Server) autopilotStartHandler(c *echo.Context) error {
	env, err := s.environment(c)
	if err != nil {
		return err
	}
	if env.Autopilot == nil {
		return echo.NewHTTPError(http.StatusNotFound, "this demo has no guided walkthrough")
	}

	env.Autopilot.Start()
	return c.JSON(http.StatusOK, autopilotResponse(env))
}

// autopilotAdvanceHandler handles POST /api/v1/environments/:id/autopilot/advance.
// Plays the next scripted turn synchronously. When the orchestrator is busy
// (agent turn in flight or approval outstanding) the step is not consumed.
func (s *Server) autopilotAdvanceHandler(c *echo.Context) error {
	env, err := s.environment(c)
	if err != nil {
		return err
	}
	if env.Autopilot == nil {
		return echo.NewHTTPError(http.StatusNotFound, "this demo has no guided walkthrough")
	}
	if !env.Autopilot.Active() {
		return echo.NewHTTPError(http.StatusConflict, "autopilot is not running")
	}

	s.sessions.TouchInteraction(c.Request().Context(), env.ID)

	step, accepted := env.Autopilot.Advance(c.Request().Context(), extractBearerToken(c))
	resp := autopilotResponse(env)
	resp.Step = step
	resp.Accepted = accepted
	return c.JSON(http.StatusOK, resp)
}

// autopilotStopHandler handles POST /api/v1/environments/:id/autopilot/stop.
func (s *Server) autopilotStopHandler(c *echo.Context) error {
	env, err := s.environment(c)
	if err != nil {
		return err
	}
	if env.Autopilot == nil {
		return echo.NewHTTPError(http.StatusNotFound, "this demo has no guided walkthrough")
	}

	env.Autopilot.Stop()
	return c.JSON(http.StatusOK, autopilotResponse(env))
}

func autopilotResponse(env *session.Environment) *AutopilotResponse {
	ap := env.Autopilot
	return &AutopilotResponse{
		Active:    ap.Active(),
		Waiting:   ap.Waiting(),
		StepIndex: ap.StepIndex(),
		Remaining: ap.Remaining(),
	}
}
