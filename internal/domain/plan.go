package domain

import (
	"context"
	"time"
)

// Plan представляет сохраненный (авторитетный) план дежурств.
// После сохранения план неизменяем.
type Plan struct {
	ID        string
	TeamID    string
	CreatedBy string
	StartDate string
	EndDate   string
	CreatedAt time.Time
}

// DayAssignment описывает назначение одного дня. MemberID == nil означает,
// что на этот день не нашлось ни одного доступного участника.
type DayAssignment struct {
	Day      string
	MemberID *string
}

// PlanAssignment представляет сохраненное назначение дня в рамках конкретного плана.
type PlanAssignment struct {
	PlanID    string
	TeamID    string
	Day       string
	MemberID  *string
	CreatedAt time.Time
}

// PreviewCounter содержит счетчики нагрузки участника на момент превью.
// EffectiveCount всегда равен Initial + Saved + Preview.
type PreviewCounter struct {
	MemberID       string
	DisplayName    string
	InitialCount   int
	SavedCount     int
	PreviewCount   int
	EffectiveCount int
}

// PreviewInequality описывает разброс нагрузки (max - min) по участникам:
// Historical считается только по сохраненным дежурствам,
// Preview считается по эффективной нагрузке с учетом превью.
type PreviewInequality struct {
	Historical int
	Preview    int
}

// PlanPreview представляет несохраненный план с прогнозом справедливости.
// Эфемерный результат генерации; не персистится.
type PlanPreview struct {
	StartDate      string
	EndDate        string
	RangeDays      int
	Assignments    []DayAssignment
	Counters       []PreviewCounter
	Inequality     PreviewInequality
	UnassignedDays []string
}

// SavePlanCommand содержит команду сохранения плана: точный ростер,
// который вызывающая сторона видела в превью.
type SavePlanCommand struct {
	StartDate   string
	EndDate     string
	CreatedBy   string
	Assignments []DayAssignment
}

// PlanSavedSummary содержит итог успешного сохранения плана.
type PlanSavedSummary struct {
	Plan             *Plan
	AssignmentsCount int
	UnassignedCount  int
}

// PlansListQuery содержит параметры выборки сохраненных планов.
type PlansListQuery struct {
	StartDate string
	EndDate   string
	Sort      string // "createdAt" | "startDate"
	Order     string // "asc" | "desc"
	Limit     int
	Offset    int
}

// AssignmentsListQuery содержит параметры постраничной выборки назначений плана.
type AssignmentsListQuery struct {
	Order  string // "asc" | "desc"
	Limit  int
	Offset int
}

// PlanRepository определяет контракт боундари сохранения планов.
// CreateWithAssignments обязан атомарно записать план, его назначения
// и пересчитанный MaxSavedCount команды, либо ничего; пересечение
// диапазонов с уже сохраненным планом возвращается как ErrPlanOverlap.
type PlanRepository interface {
	CreateWithAssignments(ctx context.Context, plan *Plan, assignments []DayAssignment) error
	GetByID(ctx context.Context, teamID, planID string) (*Plan, error)
	List(ctx context.Context, teamID string, query PlansListQuery) ([]*Plan, int, error)
	ListAssignments(ctx context.Context, teamID, planID string, query AssignmentsListQuery) ([]*PlanAssignment, int, error)
	GetSavedCounts(ctx context.Context, teamID string) (map[string]int, error)
}
