package repository

import (
	"context"
	"fmt"

	"oncall-roster-service/internal/database"
	"oncall-roster-service/internal/dates"
	"oncall-roster-service/internal/domain"
)

// StatsRepository реализует domain.StatsRepository для чтения статистики.
type StatsRepository struct {
	queries *database.Queries
}

// NewStatsRepository создает новый экземпляр StatsRepository.
func NewStatsRepository(queries *database.Queries) domain.StatsRepository {
	return &StatsRepository{
		queries: queries,
	}
}

func toDomainAssignmentStats(rows []database.AssignmentStat) []*domain.AssignmentStat {
	stats := make([]*domain.AssignmentStat, 0, len(rows))
	for _, row := range rows {
		stat := &domain.AssignmentStat{Day: dates.Format(row.Day)}
		if row.MemberID.Valid {
			memberID := row.MemberID.String
			stat.MemberID = &memberID
		}
		stats = append(stats, stat)
	}
	return stats
}

// ListAssignments возвращает все сохраненные назначения команды.
func (r *StatsRepository) ListAssignments(ctx context.Context, teamID string) ([]*domain.AssignmentStat, error) {
	rows, err := r.queries.ListAssignmentStats(ctx, teamID)
	if err != nil {
		return nil, fmt.Errorf("failed to get assignment stats: %w", err)
	}
	return toDomainAssignmentStats(rows), nil
}

// ListPlanAssignments возвращает назначения одного сохраненного плана.
func (r *StatsRepository) ListPlanAssignments(ctx context.Context, teamID, planID string) ([]*domain.AssignmentStat, error) {
	rows, err := r.queries.ListPlanAssignmentStats(ctx, database.ListPlanAssignmentStatsParams{
		TeamID: teamID,
		PlanID: planID,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get plan assignment stats: %w", err)
	}
	return toDomainAssignmentStats(rows), nil
}
