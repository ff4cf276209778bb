// Package api содержит HTTP-типы и маршрутизацию сервиса, поддерживаемые
// в стиле oapi-codegen: ServerInterface, обертка с биндингом параметров
// и регистрация хендлеров в Echo.
package api

import (
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
)

// Team определяет модель команды.
type Team struct {
	TeamId        string    `json:"team_id"`
	TeamName      string    `json:"team_name"`
	MaxSavedCount int       `json:"max_saved_count"`
	CreatedAt     time.Time `json:"created_at"`
}

// Member определяет модель участника команды.
type Member struct {
	MemberId           string    `json:"member_id"`
	TeamId             string    `json:"team_id"`
	DisplayName        string    `json:"display_name"`
	InitialOnCallCount int       `json:"initial_on_call_count"`
	IsActive           bool      `json:"is_active"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

// MemberListItem описывает участника вместе с числом сохраненных дежурств.
type MemberListItem struct {
	Member
	SavedCount int `json:"saved_count"`
}

// Unavailability определяет отметку недоступности участника на день.
type Unavailability struct {
	UnavailabilityId string    `json:"unavailability_id"`
	TeamId           string    `json:"team_id"`
	MemberId         string    `json:"member_id"`
	Day              string    `json:"day"`
	CreatedAt        time.Time `json:"created_at"`
}

// DayAssignment описывает назначение одного дня; member_id == null означает
// день без дежурного.
type DayAssignment struct {
	Day      string  `json:"day"`
	MemberId *string `json:"member_id"`
}

// PreviewCounter содержит счетчики нагрузки участника в превью.
type PreviewCounter struct {
	MemberId       string `json:"member_id"`
	DisplayName    string `json:"display_name"`
	InitialCount   int    `json:"initial_count"`
	SavedCount     int    `json:"saved_count"`
	PreviewCount   int    `json:"preview_count"`
	EffectiveCount int    `json:"effective_count"`
}

// PreviewInequality описывает разброс нагрузки по участникам.
type PreviewInequality struct {
	Historical int `json:"historical"`
	Preview    int `json:"preview"`
}

// PlanPreview представляет сгенерированное превью плана.
type PlanPreview struct {
	StartDate      string            `json:"start_date"`
	EndDate        string            `json:"end_date"`
	RangeDays      int               `json:"range_days"`
	Assignments    []DayAssignment   `json:"assignments"`
	Counters       []PreviewCounter  `json:"counters"`
	Inequality     PreviewInequality `json:"inequality"`
	UnassignedDays []string          `json:"unassigned_days"`
}

// Plan представляет сохраненный план дежурств.
type Plan struct {
	PlanId    string    `json:"plan_id"`
	TeamId    string    `json:"team_id"`
	CreatedBy string    `json:"created_by"`
	StartDate string    `json:"start_date"`
	EndDate   string    `json:"end_date"`
	CreatedAt time.Time `json:"created_at"`
}

// PlanAssignment представляет сохраненное назначение дня.
type PlanAssignment struct {
	PlanId    string    `json:"plan_id"`
	Day       string    `json:"day"`
	MemberId  *string   `json:"member_id"`
	CreatedAt time.Time `json:"created_at"`
}

// PlanSavedSummary содержит итог успешного сохранения плана.
type PlanSavedSummary struct {
	Plan             Plan `json:"plan"`
	AssignmentsCount int  `json:"assignments_count"`
	UnassignedCount  int  `json:"unassigned_count"`
}

// StatsDays содержит сводку статистики по дням.
type StatsDays struct {
	Total      int `json:"total"`
	Weekdays   int `json:"weekdays"`
	Weekends   int `json:"weekends"`
	Unassigned int `json:"unassigned"`
}

// StatsByMember содержит число дежурств одного участника.
type StatsByMember struct {
	MemberId     string `json:"member_id"`
	DisplayName  string `json:"display_name"`
	AssignedDays int    `json:"assigned_days"`
}

// StatsMembers содержит минимум, максимум и разброс по участникам.
type StatsMembers struct {
	Min        int `json:"min"`
	Max        int `json:"max"`
	Inequality int `json:"inequality"`
}

// Stats представляет агрегированную статистику дежурств.
type Stats struct {
	Days     StatsDays       `json:"days"`
	ByMember []StatsByMember `json:"by_member"`
	Members  StatsMembers    `json:"members"`
}

// Page содержит сведения о странице списка.
type Page struct {
	Limit  int `json:"limit"`
	Offset int `json:"offset"`
	Total  int `json:"total"`
}

// ErrorBody представляет тело ошибки.
type ErrorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ErrorResponse представляет ответ с ошибкой.
type ErrorResponse struct {
	Error ErrorBody `json:"error"`
}

// Тела запросов.

type CreateTeamRequest struct {
	TeamName string `json:"team_name"`
}

type CreateMemberRequest struct {
	DisplayName string `json:"display_name"`
}

type UpdateMemberRequest struct {
	DisplayName string `json:"display_name"`
}

type CreateUnavailabilityRequest struct {
	MemberId string `json:"member_id"`
	Day      string `json:"day"`
}

type PreviewPlanRequest struct {
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
}

type SavePlanRequest struct {
	StartDate   string          `json:"start_date"`
	EndDate     string          `json:"end_date"`
	CreatedBy   *string         `json:"created_by,omitempty"`
	Assignments []DayAssignment `json:"assignments"`
}

// Параметры запросов.

type ListMembersParams struct {
	Status *string `form:"status" json:"status,omitempty"`
}

type ListUnavailabilitiesParams struct {
	StartDate string `form:"start_date" json:"start_date"`
	EndDate   string `form:"end_date" json:"end_date"`
}

type ListPlansParams struct {
	StartDate *string `form:"start_date" json:"start_date,omitempty"`
	EndDate   *string `form:"end_date" json:"end_date,omitempty"`
	Sort      *string `form:"sort" json:"sort,omitempty"`
	Order     *string `form:"order" json:"order,omitempty"`
	Limit     *int    `form:"limit" json:"limit,omitempty"`
	Offset    *int    `form:"offset" json:"offset,omitempty"`
}

type ListPlanAssignmentsParams struct {
	Order  *string `form:"order" json:"order,omitempty"`
	Limit  *int    `form:"limit" json:"limit,omitempty"`
	Offset *int    `form:"offset" json:"offset,omitempty"`
}

// ServerInterface описывает серверные операции API.
type ServerInterface interface {
	// POST /teams
	CreateTeam(ctx echo.Context) error
	// GET /teams/:teamId
	GetTeam(ctx echo.Context, teamId string) error

	// GET /teams/:teamId/members
	ListMembers(ctx echo.Context, teamId string, params ListMembersParams) error
	// POST /teams/:teamId/members
	CreateMember(ctx echo.Context, teamId string) error
	// PATCH /teams/:teamId/members/:memberId
	UpdateMember(ctx echo.Context, teamId string, memberId string) error
	// DELETE /teams/:teamId/members/:memberId
	DeleteMember(ctx echo.Context, teamId string, memberId string) error

	// GET /teams/:teamId/unavailabilities
	ListUnavailabilities(ctx echo.Context, teamId string, params ListUnavailabilitiesParams) error
	// POST /teams/:teamId/unavailabilities
	CreateUnavailability(ctx echo.Context, teamId string) error
	// DELETE /teams/:teamId/unavailabilities/:unavailabilityId
	DeleteUnavailability(ctx echo.Context, teamId string, unavailabilityId string) error

	// POST /teams/:teamId/plans/preview
	PreviewPlan(ctx echo.Context, teamId string) error
	// POST /teams/:teamId/plans
	SavePlan(ctx echo.Context, teamId string) error
	// GET /teams/:teamId/plans
	ListPlans(ctx echo.Context, teamId string, params ListPlansParams) error
	// GET /teams/:teamId/plans/:planId
	GetPlan(ctx echo.Context, teamId string, planId string) error
	// GET /teams/:teamId/plans/:planId/assignments
	ListPlanAssignments(ctx echo.Context, teamId string, planId string, params ListPlanAssignmentsParams) error

	// GET /teams/:teamId/stats
	GetStats(ctx echo.Context, teamId string) error
	// GET /teams/:teamId/stats/plans/:planId
	GetPlanStats(ctx echo.Context, teamId string, planId string) error
}

// ServerInterfaceWrapper биндит параметры запроса и делегирует в ServerInterface.
type ServerInterfaceWrapper struct {
	Handler ServerInterface
}

func bindPathParam(ctx echo.Context, name string, dest *string) error {
	err := runtime.BindStyledParameterWithOptions("simple", name, ctx.Param(name), dest, runtime.BindStyledParameterOptions{
		ParamLocation: runtime.ParamLocationPath,
		Explode:       false,
		Required:      true,
	})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter %s: %s", name, err))
	}
	return nil
}

func (w *ServerInterfaceWrapper) CreateTeam(ctx echo.Context) error {
	return w.Handler.CreateTeam(ctx)
}

func (w *ServerInterfaceWrapper) GetTeam(ctx echo.Context) error {
	var teamId string
	if err := bindPathParam(ctx, "teamId", &teamId); err != nil {
		return err
	}
	return w.Handler.GetTeam(ctx, teamId)
}

func (w *ServerInterfaceWrapper) ListMembers(ctx echo.Context) error {
	var teamId string
	if err := bindPathParam(ctx, "teamId", &teamId); err != nil {
		return err
	}

	var params ListMembersParams
	if err := runtime.BindQueryParameter("form", true, false, "status", ctx.QueryParams(), &params.Status); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter status: %s", err))
	}

	return w.Handler.ListMembers(ctx, teamId, params)
}

func (w *ServerInterfaceWrapper) CreateMember(ctx echo.Context) error {
	var teamId string
	if err := bindPathParam(ctx, "teamId", &teamId); err != nil {
		return err
	}
	return w.Handler.CreateMember(ctx, teamId)
}

func (w *ServerInterfaceWrapper) UpdateMember(ctx echo.Context) error {
	var teamId, memberId string
	if err := bindPathParam(ctx, "teamId", &teamId); err != nil {
		return err
	}
	if err := bindPathParam(ctx, "memberId", &memberId); err != nil {
		return err
	}
	return w.Handler.UpdateMember(ctx, teamId, memberId)
}

func (w *ServerInterfaceWrapper) DeleteMember(ctx echo.Context) error {
	var teamId, memberId string
	if err := bindPathParam(ctx, "teamId", &teamId); err != nil {
		return err
	}
	if err := bindPathParam(ctx, "memberId", &memberId); err != nil {
		return err
	}
	return w.Handler.DeleteMember(ctx, teamId, memberId)
}

func (w *ServerInterfaceWrapper) ListUnavailabilities(ctx echo.Context) error {
	var teamId string
	if err := bindPathParam(ctx, "teamId", &teamId); err != nil {
		return err
	}

	var params ListUnavailabilitiesParams
	if err := runtime.BindQueryParameter("form", true, true, "start_date", ctx.QueryParams(), &params.StartDate); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter start_date: %s", err))
	}
	if err := runtime.BindQueryParameter("form", true, true, "end_date", ctx.QueryParams(), &params.EndDate); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter end_date: %s", err))
	}

	return w.Handler.ListUnavailabilities(ctx, teamId, params)
}

func (w *ServerInterfaceWrapper) CreateUnavailability(ctx echo.Context) error {
	var teamId string
	if err := bindPathParam(ctx, "teamId", &teamId); err != nil {
		return err
	}
	return w.Handler.CreateUnavailability(ctx, teamId)
}

func (w *ServerInterfaceWrapper) DeleteUnavailability(ctx echo.Context) error {
	var teamId, unavailabilityId string
	if err := bindPathParam(ctx, "teamId", &teamId); err != nil {
		return err
	}
	if err := bindPathParam(ctx, "unavailabilityId", &unavailabilityId); err != nil {
		return err
	}
	return w.Handler.DeleteUnavailability(ctx, teamId, unavailabilityId)
}

func (w *ServerInterfaceWrapper) PreviewPlan(ctx echo.Context) error {
	var teamId string
	if err := bindPathParam(ctx, "teamId", &teamId); err != nil {
		return err
	}
	return w.Handler.PreviewPlan(ctx, teamId)
}

func (w *ServerInterfaceWrapper) SavePlan(ctx echo.Context) error {
	var teamId string
	if err := bindPathParam(ctx, "teamId", &teamId); err != nil {
		return err
	}
	return w.Handler.SavePlan(ctx, teamId)
}

func (w *ServerInterfaceWrapper) ListPlans(ctx echo.Context) error {
	var teamId string
	if err := bindPathParam(ctx, "teamId", &teamId); err != nil {
		return err
	}

	var params ListPlansParams
	queryParams := ctx.QueryParams()
	if err := runtime.BindQueryParameter("form", true, false, "start_date", queryParams, &params.StartDate); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter start_date: %s", err))
	}
	if err := runtime.BindQueryParameter("form", true, false, "end_date", queryParams, &params.EndDate); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter end_date: %s", err))
	}
	if err := runtime.BindQueryParameter("form", true, false, "sort", queryParams, &params.Sort); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter sort: %s", err))
	}
	if err := runtime.BindQueryParameter("form", true, false, "order", queryParams, &params.Order); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter order: %s", err))
	}
	if err := runtime.BindQueryParameter("form", true, false, "limit", queryParams, &params.Limit); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter limit: %s", err))
	}
	if err := runtime.BindQueryParameter("form", true, false, "offset", queryParams, &params.Offset); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter offset: %s", err))
	}

	return w.Handler.ListPlans(ctx, teamId, params)
}

func (w *ServerInterfaceWrapper) GetPlan(ctx echo.Context) error {
	var teamId, planId string
	if err := bindPathParam(ctx, "teamId", &teamId); err != nil {
		return err
	}
	if err := bindPathParam(ctx, "planId", &planId); err != nil {
		return err
	}
	return w.Handler.GetPlan(ctx, teamId, planId)
}

func (w *ServerInterfaceWrapper) ListPlanAssignments(ctx echo.Context) error {
	var teamId, planId string
	if err := bindPathParam(ctx, "teamId", &teamId); err != nil {
		return err
	}
	if err := bindPathParam(ctx, "planId", &planId); err != nil {
		return err
	}

	var params ListPlanAssignmentsParams
	queryParams := ctx.QueryParams()
	if err := runtime.BindQueryParameter("form", true, false, "order", queryParams, &params.Order); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter order: %s", err))
	}
	if err := runtime.BindQueryParameter("form", true, false, "limit", queryParams, &params.Limit); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter limit: %s", err))
	}
	if err := runtime.BindQueryParameter("form", true, false, "offset", queryParams, &params.Offset); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter offset: %s", err))
	}

	return w.Handler.ListPlanAssignments(ctx, teamId, planId, params)
}

func (w *ServerInterfaceWrapper) GetStats(ctx echo.Context) error {
	var teamId string
	if err := bindPathParam(ctx, "teamId", &teamId); err != nil {
		return err
	}
	return w.Handler.GetStats(ctx, teamId)
}

func (w *ServerInterfaceWrapper) GetPlanStats(ctx echo.Context) error {
	var teamId, planId string
	if err := bindPathParam(ctx, "teamId", &teamId); err != nil {
		return err
	}
	if err := bindPathParam(ctx, "planId", &planId); err != nil {
		return err
	}
	return w.Handler.GetPlanStats(ctx, teamId, planId)
}

// RegisterHandlers регистрирует маршруты API в Echo.
func RegisterHandlers(router *echo.Echo, si ServerInterface) {
	wrapper := ServerInterfaceWrapper{Handler: si}

	router.POST("/teams", wrapper.CreateTeam)
	router.GET("/teams/:teamId", wrapper.GetTeam)

	router.GET("/teams/:teamId/members", wrapper.ListMembers)
	router.POST("/teams/:teamId/members", wrapper.CreateMember)
	router.PATCH("/teams/:teamId/members/:memberId", wrapper.UpdateMember)
	router.DELETE("/teams/:teamId/members/:memberId", wrapper.DeleteMember)

	router.GET("/teams/:teamId/unavailabilities", wrapper.ListUnavailabilities)
	router.POST("/teams/:teamId/unavailabilities", wrapper.CreateUnavailability)
	router.DELETE("/teams/:teamId/unavailabilities/:unavailabilityId", wrapper.DeleteUnavailability)

	router.POST("/teams/:teamId/plans/preview", wrapper.PreviewPlan)
	router.POST("/teams/:teamId/plans", wrapper.SavePlan)
	router.GET("/teams/:teamId/plans", wrapper.ListPlans)
	router.GET("/teams/:teamId/plans/:planId", wrapper.GetPlan)
	router.GET("/teams/:teamId/plans/:planId/assignments", wrapper.ListPlanAssignments)

	router.GET("/teams/:teamId/stats", wrapper.GetStats)
	router.GET("/teams/:teamId/stats/plans/:planId", wrapper.GetPlanStats)
}
