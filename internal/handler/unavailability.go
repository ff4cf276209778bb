package handler

import (
	"net/http"

	"oncall-roster-service/api"
	"oncall-roster-service/internal/domain"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
)

// UnavailabilityHandler обрабатывает HTTP-запросы отметок недоступности
type UnavailabilityHandler struct {
	*BaseHandler
	unavailabilityUseCase domain.UnavailabilityUseCase
}

// NewUnavailabilityHandler создает новый экземпляр UnavailabilityHandler
func NewUnavailabilityHandler(unavailabilityUseCase domain.UnavailabilityUseCase, logger *logrus.Logger) *UnavailabilityHandler {
	return &UnavailabilityHandler{
		BaseHandler:           NewBaseHandler(logger),
		unavailabilityUseCase: unavailabilityUseCase,
	}
}

// ListUnavailabilities обрабатывает получение отметок в диапазоне дат
func (h *UnavailabilityHandler) ListUnavailabilities(c echo.Context, teamID string, params api.ListUnavailabilitiesParams) error {
	logEntry := h.logRequest(c, "list_unavailabilities").WithFields(logrus.Fields{
		"team_id":    teamID,
		"start_date": params.StartDate,
		"end_date":   params.EndDate,
	})

	marks, err := h.unavailabilityUseCase.ListUnavailabilities(c.Request().Context(), teamID, params.StartDate, params.EndDate)
	if err != nil {
		logEntry.WithError(err).Error("Failed to list unavailabilities")
		if httpErr, exists := domain.ToHTTPError(err); exists {
			return c.JSON(getHTTPStatusCode(err), toAPIErrorResponse(httpErr))
		}
		return c.JSON(http.StatusInternalServerError, toErrorResponse("INTERNAL_ERROR", err.Error()))
	}

	items := make([]api.Unavailability, len(marks))
	for i, mark := range marks {
		items[i] = toAPIUnavailability(mark)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"unavailabilities": items,
	})
}

// CreateUnavailability обрабатывает создание отметки недоступности
func (h *UnavailabilityHandler) CreateUnavailability(c echo.Context, teamID string) error {
	logEntry := h.logRequest(c, "create_unavailability").WithField("team_id", teamID)

	var req api.CreateUnavailabilityRequest
	if err := c.Bind(&req); err != nil {
		logEntry.WithError(err).Warn("Failed to bind request")
		return c.JSON(http.StatusBadRequest, toErrorResponse("INVALID_REQUEST", err.Error()))
	}

	logEntry = logEntry.WithFields(logrus.Fields{
		"member_id": req.MemberId,
		"day":       req.Day,
	})

	mark, err := h.unavailabilityUseCase.CreateUnavailability(c.Request().Context(), teamID, req.MemberId, req.Day)
	if err != nil {
		logEntry.WithError(err).Error("Failed to create unavailability")
		if httpErr, exists := domain.ToHTTPError(err); exists {
			return c.JSON(getHTTPStatusCode(err), toAPIErrorResponse(httpErr))
		}
		return c.JSON(http.StatusInternalServerError, toErrorResponse("INTERNAL_ERROR", err.Error()))
	}

	logEntry.Info("Unavailability created successfully")
	return c.JSON(http.StatusCreated, toAPIUnavailability(mark))
}

// DeleteUnavailability обрабатывает удаление отметки недоступности
func (h *UnavailabilityHandler) DeleteUnavailability(c echo.Context, teamID string, unavailabilityID string) error {
	logEntry := h.logRequest(c, "delete_unavailability").WithFields(logrus.Fields{
		"team_id":           teamID,
		"unavailability_id": unavailabilityID,
	})

	if err := h.unavailabilityUseCase.DeleteUnavailability(c.Request().Context(), teamID, unavailabilityID); err != nil {
		logEntry.WithError(err).Error("Failed to delete unavailability")
		if httpErr, exists := domain.ToHTTPError(err); exists {
			return c.JSON(getHTTPStatusCode(err), toAPIErrorResponse(httpErr))
		}
		return c.JSON(http.StatusInternalServerError, toErrorResponse("INTERNAL_ERROR", err.Error()))
	}

	logEntry.Info("Unavailability deleted successfully")
	return c.NoContent(http.StatusNoContent)
}
