package usecase

import (
	"context"

	"oncall-roster-service/internal/dates"
	"oncall-roster-service/internal/domain"
)

// StatsUseCase реализует бизнес-логику статистики дежурств.
type StatsUseCase struct {
	statsRepo  domain.StatsRepository
	memberRepo domain.MemberRepository
	planRepo   domain.PlanRepository
	teamRepo   domain.TeamRepository
}

// NewStatsUseCase создает новый экземпляр StatsUseCase.
func NewStatsUseCase(
	statsRepo domain.StatsRepository,
	memberRepo domain.MemberRepository,
	planRepo domain.PlanRepository,
	teamRepo domain.TeamRepository,
) domain.StatsUseCase {
	return &StatsUseCase{
		statsRepo:  statsRepo,
		memberRepo: memberRepo,
		planRepo:   planRepo,
		teamRepo:   teamRepo,
	}
}

// GetGlobalStats агрегирует все сохраненные дежурства команды.
func (uc *StatsUseCase) GetGlobalStats(ctx context.Context, teamID string) (*domain.Stats, error) {
	if teamID == "" {
		return nil, domain.ErrInvalidTeamID
	}

	exists, err := uc.teamRepo.ExistsTeam(ctx, teamID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, domain.ErrTeamNotFound
	}

	assignments, err := uc.statsRepo.ListAssignments(ctx, teamID)
	if err != nil {
		return nil, err
	}

	return uc.buildStats(ctx, teamID, assignments)
}

// GetPlanStats агрегирует дежурства одного сохраненного плана.
func (uc *StatsUseCase) GetPlanStats(ctx context.Context, teamID, planID string) (*domain.Stats, error) {
	if teamID == "" {
		return nil, domain.ErrInvalidTeamID
	}
	if planID == "" {
		return nil, domain.ErrInvalidPlanID
	}

	// Проверяем, что план существует
	if _, err := uc.planRepo.GetByID(ctx, teamID, planID); err != nil {
		return nil, err
	}

	assignments, err := uc.statsRepo.ListPlanAssignments(ctx, teamID, planID)
	if err != nil {
		return nil, err
	}

	return uc.buildStats(ctx, teamID, assignments)
}

func (uc *StatsUseCase) buildStats(ctx context.Context, teamID string, assignments []*domain.AssignmentStat) (*domain.Stats, error) {
	members, err := uc.memberRepo.GetActiveMembers(ctx, teamID)
	if err != nil {
		return nil, err
	}

	days := domain.DaysStat{Total: len(assignments)}
	counts := make(map[string]int)

	for _, assignment := range assignments {
		if assignment.MemberID == nil {
			days.Unassigned++
		} else {
			counts[*assignment.MemberID]++
		}

		if dates.IsWeekend(assignment.Day) {
			days.Weekends++
		} else {
			days.Weekdays++
		}
	}

	byMember := make([]domain.MemberDaysStat, 0, len(members))
	for _, member := range members {
		byMember = append(byMember, domain.MemberDaysStat{
			MemberID:     member.ID,
			DisplayName:  member.DisplayName,
			AssignedDays: counts[member.ID],
		})
	}

	summary := domain.MembersSummaryStat{}
	if len(byMember) > 0 {
		summary.Min = byMember[0].AssignedDays
		summary.Max = byMember[0].AssignedDays
		for _, row := range byMember[1:] {
			if row.AssignedDays < summary.Min {
				summary.Min = row.AssignedDays
			}
			if row.AssignedDays > summary.Max {
				summary.Max = row.AssignedDays
			}
		}
		summary.Inequality = summary.Max - summary.Min
	}

	return &domain.Stats{
		Days:     days,
		ByMember: byMember,
		Members:  summary,
	}, nil
}
