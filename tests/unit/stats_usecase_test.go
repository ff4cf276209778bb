package usecase_test

import (
	"context"
	"testing"

	"oncall-roster-service/internal/domain"
	"oncall-roster-service/internal/usecase"
	"oncall-roster-service/tests/mocks"

	"github.com/stretchr/testify/assert"
)

func newStatsUseCase() (domain.StatsUseCase, *mocks.StatsRepository, *mocks.MemberRepository, *mocks.PlanRepository, *mocks.TeamRepository) {
	statsRepo := &mocks.StatsRepository{}
	memberRepo := &mocks.MemberRepository{}
	planRepo := &mocks.PlanRepository{}
	teamRepo := &mocks.TeamRepository{}
	uc := usecase.NewStatsUseCase(statsRepo, memberRepo, planRepo, teamRepo)
	return uc, statsRepo, memberRepo, planRepo, teamRepo
}

func stat(day, memberID string) *domain.AssignmentStat {
	if memberID == "" {
		return &domain.AssignmentStat{Day: day}
	}
	return &domain.AssignmentStat{Day: day, MemberID: &memberID}
}

func TestStatsUseCase_GetGlobalStats(t *testing.T) {
	ctx := context.Background()
	uc, statsRepo, memberRepo, _, teamRepo := newStatsUseCase()

	// 2024-03-01 пятница, 02-03 выходные, 04 понедельник
	assignments := []*domain.AssignmentStat{
		stat("2024-03-01", "m-a"),
		stat("2024-03-02", "m-b"),
		stat("2024-03-03", ""),
		stat("2024-03-04", "m-a"),
	}
	members := []*domain.Member{
		{ID: "m-a", DisplayName: "Alice", IsActive: true},
		{ID: "m-b", DisplayName: "Bob", IsActive: true},
	}

	teamRepo.On("ExistsTeam", ctx, "team-1").Return(true, nil)
	statsRepo.On("ListAssignments", ctx, "team-1").Return(assignments, nil)
	memberRepo.On("GetActiveMembers", ctx, "team-1").Return(members, nil)

	stats, err := uc.GetGlobalStats(ctx, "team-1")

	assert.NoError(t, err)
	assert.Equal(t, 4, stats.Days.Total)
	assert.Equal(t, 2, stats.Days.Weekdays)
	assert.Equal(t, 2, stats.Days.Weekends)
	assert.Equal(t, 1, stats.Days.Unassigned)

	assert.Len(t, stats.ByMember, 2)
	assert.Equal(t, 2, stats.ByMember[0].AssignedDays)
	assert.Equal(t, 1, stats.ByMember[1].AssignedDays)

	assert.Equal(t, 1, stats.Members.Min)
	assert.Equal(t, 2, stats.Members.Max)
	assert.Equal(t, 1, stats.Members.Inequality)
}

func TestStatsUseCase_GetGlobalStats_EmptyHistory(t *testing.T) {
	ctx := context.Background()
	uc, statsRepo, memberRepo, _, teamRepo := newStatsUseCase()

	teamRepo.On("ExistsTeam", ctx, "team-1").Return(true, nil)
	statsRepo.On("ListAssignments", ctx, "team-1").Return([]*domain.AssignmentStat{}, nil)
	memberRepo.On("GetActiveMembers", ctx, "team-1").Return([]*domain.Member{}, nil)

	stats, err := uc.GetGlobalStats(ctx, "team-1")

	assert.NoError(t, err)
	assert.Equal(t, 0, stats.Days.Total)
	assert.Empty(t, stats.ByMember)
	assert.Equal(t, 0, stats.Members.Inequality)
}

func TestStatsUseCase_GetPlanStats(t *testing.T) {
	ctx := context.Background()
	uc, statsRepo, memberRepo, planRepo, _ := newStatsUseCase()

	plan := &domain.Plan{ID: "p1", TeamID: "team-1", StartDate: "2024-03-01", EndDate: "2024-03-02"}
	assignments := []*domain.AssignmentStat{
		stat("2024-03-01", "m-a"),
		stat("2024-03-02", "m-a"),
	}
	members := []*domain.Member{{ID: "m-a", DisplayName: "Alice", IsActive: true}}

	planRepo.On("GetByID", ctx, "team-1", "p1").Return(plan, nil)
	statsRepo.On("ListPlanAssignments", ctx, "team-1", "p1").Return(assignments, nil)
	memberRepo.On("GetActiveMembers", ctx, "team-1").Return(members, nil)

	stats, err := uc.GetPlanStats(ctx, "team-1", "p1")

	assert.NoError(t, err)
	assert.Equal(t, 2, stats.Days.Total)
	assert.Equal(t, 2, stats.ByMember[0].AssignedDays)
}

func TestStatsUseCase_GetPlanStats_PlanNotFound(t *testing.T) {
	ctx := context.Background()
	uc, statsRepo, _, planRepo, _ := newStatsUseCase()

	planRepo.On("GetByID", ctx, "team-1", "ghost").Return(nil, domain.ErrPlanNotFound)

	_, err := uc.GetPlanStats(ctx, "team-1", "ghost")

	assert.ErrorIs(t, err, domain.ErrPlanNotFound)
	statsRepo.AssertNotCalled(t, "ListPlanAssignments", nil, "team-1", "ghost")
}
