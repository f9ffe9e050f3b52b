package api

import (
	"github.com/labstack/echo/v4"

	"github.com/AzmathBegum/finance-tracker/internal/service"
)

type InsightsHandler struct {
	insightsService *service.InsightsService
}

func NewInsightsHandler(insightsService *service.InsightsService) *InsightsHandler {
	return &InsightsHandler{insightsService: insightsService}
}

// Get returns the caller's spending summary --> GET /insights
func (h *InsightsHandler) Get(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return errorJSON(c, err)
	}

	insights, err := h.insightsService.Summarize(c.Request().Context(), userID)
	if err != nil {
		return errorJSON(c, err)
	}

	return c.JSON(200, insights)
}
