package handler

import (
	"net/http"

	"oncall-roster-service/api"
	"oncall-roster-service/internal/domain"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
)

// PlanHandler обрабатывает HTTP-запросы планов дежурств
type PlanHandler struct {
	*BaseHandler
	planUseCase domain.PlanUseCase
}

// NewPlanHandler создает новый экземпляр PlanHandler
func NewPlanHandler(planUseCase domain.PlanUseCase, logger *logrus.Logger) *PlanHandler {
	return &PlanHandler{
		BaseHandler: NewBaseHandler(logger),
		planUseCase: planUseCase,
	}
}

// PreviewPlan обрабатывает генерацию превью плана для диапазона дат
func (h *PlanHandler) PreviewPlan(c echo.Context, teamID string) error {
	logEntry := h.logRequest(c, "preview_plan").WithField("team_id", teamID)

	var req api.PreviewPlanRequest
	if err := c.Bind(&req); err != nil {
		logEntry.WithError(err).Warn("Failed to bind request")
		return c.JSON(http.StatusBadRequest, toErrorResponse("INVALID_REQUEST", err.Error()))
	}

	logEntry = logEntry.WithFields(logrus.Fields{
		"start_date": req.StartDate,
		"end_date":   req.EndDate,
	})
	logEntry.Info("Generating plan preview")

	preview, err := h.planUseCase.GeneratePreview(c.Request().Context(), teamID, req.StartDate, req.EndDate)
	if err != nil {
		logEntry.WithError(err).Error("Failed to generate preview")
		if httpErr, exists := domain.ToHTTPError(err); exists {
			return c.JSON(getHTTPStatusCode(err), toAPIErrorResponse(httpErr))
		}
		return c.JSON(http.StatusInternalServerError, toErrorResponse("INTERNAL_ERROR", err.Error()))
	}

	logEntry.WithFields(logrus.Fields{
		"range_days":      preview.RangeDays,
		"unassigned_days": len(preview.UnassignedDays),
		"inequality":      preview.Inequality.Preview,
	}).Info("Plan preview generated")
	return c.JSON(http.StatusOK, toAPIPlanPreview(preview))
}

// SavePlan обрабатывает сохранение плана как авторитетной истории
func (h *PlanHandler) SavePlan(c echo.Context, teamID string) error {
	logEntry := h.logRequest(c, "save_plan").WithField("team_id", teamID)

	var req api.SavePlanRequest
	if err := c.Bind(&req); err != nil {
		logEntry.WithError(err).Warn("Failed to bind request")
		return c.JSON(http.StatusBadRequest, toErrorResponse("INVALID_REQUEST", err.Error()))
	}

	logEntry = logEntry.WithFields(logrus.Fields{
		"start_date": req.StartDate,
		"end_date":   req.EndDate,
	})
	logEntry.Info("Saving plan")

	cmd := domain.SavePlanCommand{
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		Assignments: toDomainDayAssignments(req.Assignments),
	}
	if req.CreatedBy != nil {
		cmd.CreatedBy = *req.CreatedBy
	}

	summary, err := h.planUseCase.SavePlan(c.Request().Context(), teamID, cmd)
	if err != nil {
		logEntry.WithError(err).Error("Failed to save plan")
		if httpErr, exists := domain.ToHTTPError(err); exists {
			return c.JSON(getHTTPStatusCode(err), toAPIErrorResponse(httpErr))
		}
		return c.JSON(http.StatusInternalServerError, toErrorResponse("INTERNAL_ERROR", err.Error()))
	}

	logEntry.WithFields(logrus.Fields{
		"plan_id":          summary.Plan.ID,
		"assignments":      summary.AssignmentsCount,
		"unassigned_count": summary.UnassignedCount,
	}).Info("Plan saved successfully")
	return c.JSON(http.StatusCreated, api.PlanSavedSummary{
		Plan:             toAPIPlan(summary.Plan),
		AssignmentsCount: summary.AssignmentsCount,
		UnassignedCount:  summary.UnassignedCount,
	})
}

// ListPlans обрабатывает получение списка сохраненных планов
func (h *PlanHandler) ListPlans(c echo.Context, teamID string, params api.ListPlansParams) error {
	logEntry := h.logRequest(c, "list_plans").WithField("team_id", teamID)

	query := domain.PlansListQuery{Limit: 50}
	if params.StartDate != nil {
		query.StartDate = *params.StartDate
	}
	if params.EndDate != nil {
		query.EndDate = *params.EndDate
	}
	if params.Sort != nil {
		query.Sort = *params.Sort
	}
	if params.Order != nil {
		query.Order = *params.Order
	}
	if params.Limit != nil {
		query.Limit = *params.Limit
	}
	if params.Offset != nil {
		query.Offset = *params.Offset
	}

	plans, total, err := h.planUseCase.ListPlans(c.Request().Context(), teamID, query)
	if err != nil {
		logEntry.WithError(err).Error("Failed to list plans")
		if httpErr, exists := domain.ToHTTPError(err); exists {
			return c.JSON(getHTTPStatusCode(err), toAPIErrorResponse(httpErr))
		}
		return c.JSON(http.StatusInternalServerError, toErrorResponse("INTERNAL_ERROR", err.Error()))
	}

	items := make([]api.Plan, len(plans))
	for i, plan := range plans {
		items[i] = toAPIPlan(plan)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"plans": items,
		"page": api.Page{
			Limit:  query.Limit,
			Offset: query.Offset,
			Total:  total,
		},
	})
}

// GetPlan обрабатывает получение сохраненного плана
func (h *PlanHandler) GetPlan(c echo.Context, teamID string, planID string) error {
	logEntry := h.logRequest(c, "get_plan").WithFields(logrus.Fields{
		"team_id": teamID,
		"plan_id": planID,
	})

	plan, err := h.planUseCase.GetPlan(c.Request().Context(), teamID, planID)
	if err != nil {
		logEntry.WithError(err).Warn("Plan not found")
		if httpErr, exists := domain.ToHTTPError(err); exists {
			return c.JSON(getHTTPStatusCode(err), toAPIErrorResponse(httpErr))
		}
		return c.JSON(http.StatusInternalServerError, toErrorResponse("INTERNAL_ERROR", err.Error()))
	}

	return c.JSON(http.StatusOK, toAPIPlan(plan))
}

// ListPlanAssignments обрабатывает постраничное получение назначений плана
func (h *PlanHandler) ListPlanAssignments(c echo.Context, teamID string, planID string, params api.ListPlanAssignmentsParams) error {
	logEntry := h.logRequest(c, "list_plan_assignments").WithFields(logrus.Fields{
		"team_id": teamID,
		"plan_id": planID,
	})

	query := domain.AssignmentsListQuery{Limit: 50}
	if params.Order != nil {
		query.Order = *params.Order
	}
	if params.Limit != nil {
		query.Limit = *params.Limit
	}
	if params.Offset != nil {
		query.Offset = *params.Offset
	}

	assignments, total, err := h.planUseCase.ListPlanAssignments(c.Request().Context(), teamID, planID, query)
	if err != nil {
		logEntry.WithError(err).Error("Failed to list plan assignments")
		if httpErr, exists := domain.ToHTTPError(err); exists {
			return c.JSON(getHTTPStatusCode(err), toAPIErrorResponse(httpErr))
		}
		return c.JSON(http.StatusInternalServerError, toErrorResponse("INTERNAL_ERROR", err.Error()))
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"assignments": toAPIPlanAssignments(assignments),
		"page": api.Page{
			Limit:  query.Limit,
			Offset: query.Offset,
			Total:  total,
		},
	})
}
