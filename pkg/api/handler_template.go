package api

import (
	"net/http"

	echo "github.com/labstack/echo/v5"

	"github.com/showroom-hq/showroom/pkg/config"
)

// listTemplatesHandler handles GET /api/v1/templates.
func (s *Server) listTemplatesHandler(c *echo.Context) error {
	ids := s.cfg.TemplateRegistry.TemplateIDs()
	out := make([]*config.DemoTemplate, 0, len(ids))
	for _, id := range ids {
		tmpl, err := s.cfg.GetTemplate(id)
		if err != nil {
			continue
		}
		out = append(out, tmpl)
	}
	return c.JSON(http.StatusOK, out)
}

// getTemplateHandler handles GET /api/v1/templates/:id.
func (s *Server) getTemplateHandler(c *echo.Context) error {
	templateID := c.Param("id")
	if templateID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "template id is required")
	}

	tmpl, err := s.cfg.GetTemplate(templateID)
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	}
	return c.JSON(http.StatusOK, tmpl)
}

// listToolsHandler handles GET /api/v1/tools. The full catalog, for the
// custom demo builder's tool picker.
func (s *Server) listToolsHandler(c *echo.Context) error {
	ids := s.cfg.ToolRegistry.ToolIDs()
	out := make([]*config.ToolDef, 0, len(ids))
	for _, id := range ids {
		tool, err := s.cfg.GetTool(id)
		if err != nil {
			continue
		}
		out = append(out, tool)
	}
	return c.JSON(http.StatusOK, out)
}
