package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/fintrack/personal-finance/internal/api/metrics"
	"github.com/fintrack/personal-finance/internal/core/ports"
)

type AssistantHandler struct {
	assistant ports.AssistantService
}

func NewAssistantHandler(assistant ports.AssistantService) *AssistantHandler {
	return &AssistantHandler{assistant: assistant}
}

// Ask handles POST /v1/assistant.
//
// @Summary      Ask the finance assistant
// @Tags         assistant
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      askRequest  true  "Question"
// @Success      200   {object}  answerResponse
// @Failure      400   {object}  ErrorResponse
// @Failure      401   {object}  ErrorResponse
// @Router       /v1/assistant [post]
func (h *AssistantHandler) Ask(c echo.Context) error {
	var req askRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	answer, err := h.assistant.Ask(c.Request().Context(), req.Query)
	if err != nil {
		return err
	}
	metrics.AssistantQueriesTotal.WithLabelValues(answer.Intent).Inc()

	return c.JSON(http.StatusOK, answerResponse{Intent: answer.Intent, Answer: answer.Text})
}
