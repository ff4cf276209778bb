package handler

import (
	"net/http"

	"oncall-roster-service/api"
	"oncall-roster-service/internal/domain"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
)

// TeamHandler обрабатывает HTTP-запросы для управления командами
type TeamHandler struct {
	*BaseHandler
	teamUseCase domain.TeamUseCase
}

// NewTeamHandler создает новый экземпляр TeamHandler
func NewTeamHandler(teamUseCase domain.TeamUseCase, logger *logrus.Logger) *TeamHandler {
	return &TeamHandler{
		BaseHandler: NewBaseHandler(logger),
		teamUseCase: teamUseCase,
	}
}

// CreateTeam обрабатывает создание новой команды
func (h *TeamHandler) CreateTeam(c echo.Context) error {
	logEntry := h.logRequest(c, "create_team")
	logEntry.Info("Creating team")

	var req api.CreateTeamRequest
	if err := c.Bind(&req); err != nil {
		logEntry.WithError(err).Warn("Failed to bind request")
		return c.JSON(http.StatusBadRequest, toErrorResponse("INVALID_REQUEST", err.Error()))
	}

	logEntry = logEntry.WithField("team_name", req.TeamName)

	team, err := h.teamUseCase.CreateTeam(c.Request().Context(), req.TeamName)
	if err != nil {
		logEntry.WithError(err).Error("Failed to create team")
		if httpErr, exists := domain.ToHTTPError(err); exists {
			return c.JSON(getHTTPStatusCode(err), toAPIErrorResponse(httpErr))
		}
		return c.JSON(http.StatusInternalServerError, toErrorResponse("INTERNAL_ERROR", err.Error()))
	}

	logEntry.WithField("team_id", team.ID).Info("Team created successfully")
	return c.JSON(http.StatusCreated, toAPITeam(team))
}

// GetTeam обрабатывает получение информации о команде
func (h *TeamHandler) GetTeam(c echo.Context, teamID string) error {
	logEntry := h.logRequest(c, "get_team").WithField("team_id", teamID)
	logEntry.Info("Getting team")

	team, err := h.teamUseCase.GetTeam(c.Request().Context(), teamID)
	if err != nil {
		logEntry.WithError(err).Warn("Team not found")
		if httpErr, exists := domain.ToHTTPError(err); exists {
			return c.JSON(getHTTPStatusCode(err), toAPIErrorResponse(httpErr))
		}
		return c.JSON(http.StatusInternalServerError, toErrorResponse("INTERNAL_ERROR", err.Error()))
	}

	return c.JSON(http.StatusOK, toAPITeam(team))
}
