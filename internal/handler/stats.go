package handler

import (
	"net/http"

	"oncall-roster-service/internal/domain"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
)

// StatsHandler обрабатывает HTTP-запросы статистики дежурств
type StatsHandler struct {
	*BaseHandler
	statsUseCase domain.StatsUseCase
}

// NewStatsHandler создает новый экземпляр StatsHandler
func NewStatsHandler(statsUseCase domain.StatsUseCase, logger *logrus.Logger) *StatsHandler {
	return &StatsHandler{
		BaseHandler:  NewBaseHandler(logger),
		statsUseCase: statsUseCase,
	}
}

// GetStats обрабатывает получение статистики по всей сохраненной истории команды
func (h *StatsHandler) GetStats(c echo.Context, teamID string) error {
	logEntry := h.logRequest(c, "get_stats").WithField("team_id", teamID)

	stats, err := h.statsUseCase.GetGlobalStats(c.Request().Context(), teamID)
	if err != nil {
		logEntry.WithError(err).Error("Failed to get stats")
		if httpErr, exists := domain.ToHTTPError(err); exists {
			return c.JSON(getHTTPStatusCode(err), toAPIErrorResponse(httpErr))
		}
		return c.JSON(http.StatusInternalServerError, toErrorResponse("INTERNAL_ERROR", err.Error()))
	}

	return c.JSON(http.StatusOK, toAPIStats(stats))
}

// GetPlanStats обрабатывает получение статистики одного сохраненного плана
func (h *StatsHandler) GetPlanStats(c echo.Context, teamID string, planID string) error {
	logEntry := h.logRequest(c, "get_plan_stats").WithFields(logrus.Fields{
		"team_id": teamID,
		"plan_id": planID,
	})

	stats, err := h.statsUseCase.GetPlanStats(c.Request().Context(), teamID, planID)
	if err != nil {
		logEntry.WithError(err).Error("Failed to get plan stats")
		if httpErr, exists := domain.ToHTTPError(err); exists {
			return c.JSON(getHTTPStatusCode(err), toAPIErrorResponse(httpErr))
		}
		return c.JSON(http.StatusInternalServerError, toErrorResponse("INTERNAL_ERROR", err.Error()))
	}

	return c.JSON(http.StatusOK, toAPIStats(stats))
}
