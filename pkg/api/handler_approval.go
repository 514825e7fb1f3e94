package api

import (
	"errors"
	"net/http"

	echo "github.com/labstack/echo/v5"

	"github.com/showroom-hq/showroom/pkg/orchestrator"
)

// getApprovalHandler handles GET /api/v1/environments/:id/approval.
// Returns the outstanding approval request, or 204 when there is none.
func (s *Server) getApprovalHandler(c *echo.Context) error {
	env, err := s.environment(c)
	if err != nil {
		return err
	}

	req := env.Orch.PendingApproval()
	if req == nil {
		return c.NoContent(http.StatusNoContent)
	}
	return c.JSON(http.StatusOK, req)
}

// resolveApprovalHandler handles POST /api/v1/environments/:id/approval.
// Records the decision and resumes the suspended turn synchronously.
// A duplicate submission after the request was already resolved returns
// resolved=false rather than an error.
func (s *Server) resolveApprovalHandler(c *echo.Context) error {
	env, err := s.environment(c)
	if err != nil {
		return err
	}

	var req ResolveApprovalRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if req.RequestID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "request_id is required")
	}
	if !req.Decision.Valid() {
		return echo.NewHTTPError(http.StatusBadRequest, "decision must be approved or denied")
	}

	s.sessions.TouchInteraction(c.Request().Context(), env.ID)

	resolved, err := env.Orch.ResolveApproval(c.Request().Context(), req.RequestID, req.Decision, extractBearerToken(c))
	if err != nil {
		if errors.Is(err, orchestrator.ErrDecisionMismatch) {
			return echo.NewHTTPError(http.StatusConflict, err.Error())
		}
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	return c.JSON(http.StatusOK, &ResolveApprovalResponse{
		Resolved: resolved,
		State:    env.Orch.State(),
	})
}
