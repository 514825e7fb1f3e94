package api

import (
	"net/http"
	"sort"

	echo "github.com/labstack/echo/v5"

	"github.com/showroom-hq/showroom/pkg/session"
)

// createEnvironmentHandler handles POST /api/v1/environments.
// Bootstraps a live environment from a template, optionally with builder
// overrides (a "custom" demo).
func (s *Server) createEnvironmentHandler(c *echo.Context) error {
	var req CreateEnvironmentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	env, err := s.sessions.CreateEnvironment(c.Request().Context(), req.TemplateID, extractAuthor(c), req.Overrides)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	return c.JSON(http.StatusCreated, environmentResponse(env))
}

// listEnvironmentsHandler handles GET /api/v1/environments.
func (s *Server) listEnvironmentsHandler(c *echo.Context) error {
	envs := s.sessions.List()
	sort.Slice(envs, func(i, j int) bool { return envs[i].CreatedAt.Before(envs[j].CreatedAt) })

	out := make([]*EnvironmentResponse, 0, len(envs))
	for _, env := range envs {
		out = append(out, environmentResponse(env))
	}
	return c.JSON(http.StatusOK, out)
}

// getEnvironmentHandler handles GET /api/v1/environments/:id.
func (s *Server) getEnvironmentHandler(c *echo.Context) error {
	env, err := s.environment(c)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, environmentResponse(env))
}

// resetEnvironmentHandler handles POST /api/v1/environments/:id/reset.
// The local wipe always succeeds; repeating it is harmless.
func (s *Server) resetEnvironmentHandler(c *echo.Context) error {
	env, err := s.environment(c)
	if err != nil {
		return err
	}

	if err := s.sessions.Reset(c.Request().Context(), env.ID); err != nil {
		return mapServiceError(err)
	}

	return c.JSON(http.StatusOK, &ResetResponse{
		EnvID:      env.ID,
		Generation: env.Orch.Generation(),
	})
}

// deleteEnvironmentHandler handles DELETE /api/v1/environments/:id.
func (s *Server) deleteEnvironmentHandler(c *echo.Context) error {
	envID := c.Param("id")
	if envID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "environment id is required")
	}

	if err := s.sessions.Remove(c.Request().Context(), envID); err != nil {
		return mapServiceError(err)
	}
	return c.NoContent(http.StatusNoContent)
}

// environment resolves the :id path param to a live environment.
func (s *Server) environment(c *echo.Context) (*session.Environment, error) {
	envID := c.Param("id")
	if envID == "" {
		return nil, echo.NewHTTPError(http.StatusBadRequest, "environment id is required")
	}
	env, err := s.sessions.Get(envID)
	if err != nil {
		return nil, mapServiceError(err)
	}
	return env, nil
}

func environmentResponse(env *session.Environment) *EnvironmentResponse {
	return &EnvironmentResponse{
		EnvID:           env.ID,
		TemplateID:      env.Template.ID,
		TemplateName:    env.Template.Name,
		State:           env.Orch.State(),
		HasAutopilot:    env.Autopilot != nil,
		PendingApproval: env.Orch.PendingApproval(),
		CreatedAt:       env.CreatedAt,
	}
}
