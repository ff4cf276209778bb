package handler

import (
	"net/http"

	"oncall-roster-service/api"
	"oncall-roster-service/internal/domain"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
)

// MemberHandler обрабатывает HTTP-запросы справочника участников
type MemberHandler struct {
	*BaseHandler
	memberUseCase domain.MemberUseCase
}

// NewMemberHandler создает новый экземпляр MemberHandler
func NewMemberHandler(memberUseCase domain.MemberUseCase, logger *logrus.Logger) *MemberHandler {
	return &MemberHandler{
		BaseHandler:   NewBaseHandler(logger),
		memberUseCase: memberUseCase,
	}
}

// ListMembers обрабатывает получение списка участников команды
func (h *MemberHandler) ListMembers(c echo.Context, teamID string, params api.ListMembersParams) error {
	logEntry := h.logRequest(c, "list_members").WithField("team_id", teamID)

	status := domain.MemberStatusActive
	if params.Status != nil && *params.Status == "all" {
		status = domain.MemberStatusAll
	}

	members, err := h.memberUseCase.ListMembers(c.Request().Context(), teamID, status)
	if err != nil {
		logEntry.WithError(err).Error("Failed to list members")
		if httpErr, exists := domain.ToHTTPError(err); exists {
			return c.JSON(getHTTPStatusCode(err), toAPIErrorResponse(httpErr))
		}
		return c.JSON(http.StatusInternalServerError, toErrorResponse("INTERNAL_ERROR", err.Error()))
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"members": toAPIMemberListItems(members),
	})
}

// CreateMember обрабатывает добавление участника в команду
func (h *MemberHandler) CreateMember(c echo.Context, teamID string) error {
	logEntry := h.logRequest(c, "create_member").WithField("team_id", teamID)
	logEntry.Info("Creating member")

	var req api.CreateMemberRequest
	if err := c.Bind(&req); err != nil {
		logEntry.WithError(err).Warn("Failed to bind request")
		return c.JSON(http.StatusBadRequest, toErrorResponse("INVALID_REQUEST", err.Error()))
	}

	member, err := h.memberUseCase.CreateMember(c.Request().Context(), teamID, req.DisplayName)
	if err != nil {
		logEntry.WithError(err).Error("Failed to create member")
		if httpErr, exists := domain.ToHTTPError(err); exists {
			return c.JSON(getHTTPStatusCode(err), toAPIErrorResponse(httpErr))
		}
		return c.JSON(http.StatusInternalServerError, toErrorResponse("INTERNAL_ERROR", err.Error()))
	}

	logEntry.WithFields(logrus.Fields{
		"member_id":     member.ID,
		"initial_count": member.InitialOnCallCount,
	}).Info("Member created successfully")
	return c.JSON(http.StatusCreated, toAPIMember(member))
}

// UpdateMember обрабатывает переименование участника
func (h *MemberHandler) UpdateMember(c echo.Context, teamID string, memberID string) error {
	logEntry := h.logRequest(c, "update_member").WithFields(logrus.Fields{
		"team_id":   teamID,
		"member_id": memberID,
	})

	var req api.UpdateMemberRequest
	if err := c.Bind(&req); err != nil {
		logEntry.WithError(err).Warn("Failed to bind request")
		return c.JSON(http.StatusBadRequest, toErrorResponse("INVALID_REQUEST", err.Error()))
	}

	member, err := h.memberUseCase.RenameMember(c.Request().Context(), teamID, memberID, req.DisplayName)
	if err != nil {
		logEntry.WithError(err).Error("Failed to update member")
		if httpErr, exists := domain.ToHTTPError(err); exists {
			return c.JSON(getHTTPStatusCode(err), toAPIErrorResponse(httpErr))
		}
		return c.JSON(http.StatusInternalServerError, toErrorResponse("INTERNAL_ERROR", err.Error()))
	}

	logEntry.Info("Member updated successfully")
	return c.JSON(http.StatusOK, toAPIMember(member))
}

// DeleteMember обрабатывает вывод участника из ротации
func (h *MemberHandler) DeleteMember(c echo.Context, teamID string, memberID string) error {
	logEntry := h.logRequest(c, "delete_member").WithFields(logrus.Fields{
		"team_id":   teamID,
		"member_id": memberID,
	})
	logEntry.Info("Removing member")

	if err := h.memberUseCase.RemoveMember(c.Request().Context(), teamID, memberID); err != nil {
		logEntry.WithError(err).Error("Failed to remove member")
		if httpErr, exists := domain.ToHTTPError(err); exists {
			return c.JSON(getHTTPStatusCode(err), toAPIErrorResponse(httpErr))
		}
		return c.JSON(http.StatusInternalServerError, toErrorResponse("INTERNAL_ERROR", err.Error()))
	}

	logEntry.Info("Member removed successfully")
	return c.NoContent(http.StatusNoContent)
}
