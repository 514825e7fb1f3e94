package api

import (
	"net/http"
	"strconv"

	echo "github.com/labstack/echo/v5"

	"github.com/showroom-hq/showroom/pkg/models"
)

// saveDemoHandler handles POST /api/v1/demos.
// Upserts the custom demo configuration for an environment.
func (s *Server) saveDemoHandler(c *echo.Context) error {
	if s.demos == nil {
		return echo.NewHTTPError(http.StatusServiceUnavailable, "custom demos are not available")
	}

	var req SaveDemoRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if req.EnvID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "env_id is required")
	}
	if req.TemplateID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "template_id is required")
	}
	if _, err := s.cfg.GetTemplate(req.TemplateID); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "unknown template: "+req.TemplateID)
	}

	demo, err := s.demos.SaveCustomDemo(c.Request().Context(), models.SaveCustomDemoRequest{
		EnvID:           req.EnvID,
		TemplateID:      req.TemplateID,
		ConfigOverrides: req.ConfigOverrides,
		CreatedBy:       extractAuthor(c),
	})
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, demo)
}

// listDemosHandler handles GET /api/v1/demos.
func (s *Server) listDemosHandler(c *echo.Context) error {
	if s.demos == nil {
		return echo.NewHTTPError(http.StatusServiceUnavailable, "custom demos are not available")
	}

	limit := 50
	if v := c.QueryParam("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 || n > 200 {
			return echo.NewHTTPError(http.StatusBadRequest, "limit must be between 1 and 200")
		}
		limit = n
	}

	demos, err := s.demos.ListCustomDemos(c.Request().Context(), limit)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, demos)
}

// getDemoHandler handles GET /api/v1/demos/:id.
func (s *Server) getDemoHandler(c *echo.Context) error {
	if s.demos == nil {
		return echo.NewHTTPError(http.StatusServiceUnavailable, "custom demos are not available")
	}

	demoID := c.Param("id")
	if demoID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "demo id is required")
	}

	demo, err := s.demos.GetCustomDemo(c.Request().Context(), demoID)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, demo)
}

// deleteDemoHandler handles DELETE /api/v1/demos/:id.
func (s *Server) deleteDemoHandler(c *echo.Context) error {
	if s.demos == nil {
		return echo.NewHTTPError(http.StatusServiceUnavailable, "custom demos are not available")
	}

	demoID := c.Param("id")
	if demoID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "demo id is required")
	}

	if err := s.demos.DeleteCustomDemo(c.Request().Context(), demoID); err != nil {
		return mapServiceError(err)
	}
	return c.NoContent(http.StatusNoContent)
}
