package api

import (
	"net/http"

	echo "github.com/labstack/echo/v5"
)

// maxMessageLength caps user message size.
const maxMessageLength = 10_000

// sendMessageHandler handles POST /api/v1/environments/:id/messages.
// Runs the full conversation turn synchronously: the response arrives once
// the agent has replied or the turn is suspended on an approval. Realtime
// consumers see the same progression over the WebSocket.
func (s *Server) sendMessageHandler(c *echo.Context) error {
	env, err := s.environment(c)
	if err != nil {
		return err
	}

	var req SendMessageRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if req.Content == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "content is required")
	}
	if len(req.Content) > maxMessageLength {
		return echo.NewHTTPError(http.StatusBadRequest, "content exceeds maximum length")
	}

	s.sessions.TouchInteraction(c.Request().Context(), env.ID)

	// A message during an in-flight turn or pending approval is a quiet
	// no-op, not an error: double-clicks and eager SEs are normal here.
	accepted := env.Orch.SendUserMessage(c.Request().Context(), req.Content, extractBearerToken(c))

	return c.JSON(http.StatusOK, &TurnResponse{
		Accepted:        accepted,
		State:           env.Orch.State(),
		ToolCalls:       env.Orch.TurnToolCalls(),
		PendingApproval: env.Orch.PendingApproval(),
	})
}

// getMessagesHandler handles GET /api/v1/environments/:id/messages.
// Serves the live transcript; the database mirror is for catchup only.
func (s *Server) getMessagesHandler(c *echo.Context) error {
	env, err := s.environment(c)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, env.Orch.Messages())
}
