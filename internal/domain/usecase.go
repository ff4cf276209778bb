package domain

import "context"

// TeamUseCase определяет бизнес-логику для работы с командами.
type TeamUseCase interface {
	CreateTeam(ctx context.Context, name string) (*Team, error)
	GetTeam(ctx context.Context, teamID string) (*Team, error)
}

// MemberUseCase определяет бизнес-логику для справочника участников.
type MemberUseCase interface {
	ListMembers(ctx context.Context, teamID string, status MemberStatusFilter) ([]*MemberWithSavedCount, error)
	CreateMember(ctx context.Context, teamID, displayName string) (*Member, error)
	RenameMember(ctx context.Context, teamID, memberID, displayName string) (*Member, error)
	RemoveMember(ctx context.Context, teamID, memberID string) error
}

// UnavailabilityUseCase определяет бизнес-логику для отметок недоступности.
type UnavailabilityUseCase interface {
	ListUnavailabilities(ctx context.Context, teamID, startDate, endDate string) ([]*Unavailability, error)
	CreateUnavailability(ctx context.Context, teamID, memberID, day string) (*Unavailability, error)
	DeleteUnavailability(ctx context.Context, teamID, unavailabilityID string) error
}

// PlanUseCase определяет бизнес-логику планов дежурств: генерацию превью
// и сохранение плана как авторитетной истории.
type PlanUseCase interface {
	GeneratePreview(ctx context.Context, teamID, startDate, endDate string) (*PlanPreview, error)
	SavePlan(ctx context.Context, teamID string, cmd SavePlanCommand) (*PlanSavedSummary, error)
	ListPlans(ctx context.Context, teamID string, query PlansListQuery) ([]*Plan, int, error)
	GetPlan(ctx context.Context, teamID, planID string) (*Plan, error)
	ListPlanAssignments(ctx context.Context, teamID, planID string, query AssignmentsListQuery) ([]*PlanAssignment, int, error)
}

// StatsUseCase определяет бизнес-логику для статистики дежурств.
type StatsUseCase interface {
	GetGlobalStats(ctx context.Context, teamID string) (*Stats, error)
	GetPlanStats(ctx context.Context, teamID, planID string) (*Stats, error)
}
