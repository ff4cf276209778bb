package domain

import "context"

// DaysStat содержит сводку по дням: всего, будни, выходные, без дежурного.
type DaysStat struct {
	Total      int
	Weekdays   int
	Weekends   int
	Unassigned int
}

// MemberDaysStat содержит число назначенных дней конкретного участника.
type MemberDaysStat struct {
	MemberID     string
	DisplayName  string
	AssignedDays int
}

// MembersSummaryStat содержит минимум, максимум и разброс нагрузки по участникам.
type MembersSummaryStat struct {
	Min        int
	Max        int
	Inequality int
}

// Stats содержит агрегированную статистику: по всей истории команды
// либо по одному сохраненному плану.
type Stats struct {
	Days     DaysStat
	ByMember []MemberDaysStat
	Members  MembersSummaryStat
}

// AssignmentStat представляет сырое назначение для агрегации статистики.
type AssignmentStat struct {
	Day      string
	MemberID *string
}

// StatsRepository определяет контракт для чтения статистических данных.
type StatsRepository interface {
	ListAssignments(ctx context.Context, teamID string) ([]*AssignmentStat, error)
	ListPlanAssignments(ctx context.Context, teamID, planID string) ([]*AssignmentStat, error)
}
