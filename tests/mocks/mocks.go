// Package mocks содержит testify-моки репозиториев для unit-тестов.
package mocks

import (
	"context"

	"oncall-roster-service/internal/domain"

	"github.com/stretchr/testify/mock"
)

// TeamRepository реализует мок domain.TeamRepository.
type TeamRepository struct {
	mock.Mock
}

func (m *TeamRepository) Create(ctx context.Context, team *domain.Team) error {
	args := m.Called(ctx, team)
	return args.Error(0)
}

func (m *TeamRepository) GetByID(ctx context.Context, teamID string) (*domain.Team, error) {
	args := m.Called(ctx, teamID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Team), args.Error(1)
}

func (m *TeamRepository) ExistsByName(ctx context.Context, name string) (bool, error) {
	args := m.Called(ctx, name)
	return args.Bool(0), args.Error(1)
}

func (m *TeamRepository) ExistsTeam(ctx context.Context, teamID string) (bool, error) {
	args := m.Called(ctx, teamID)
	return args.Bool(0), args.Error(1)
}

// MemberRepository реализует мок domain.MemberRepository.
type MemberRepository struct {
	mock.Mock
}

func (m *MemberRepository) Create(ctx context.Context, member *domain.Member) error {
	args := m.Called(ctx, member)
	return args.Error(0)
}

func (m *MemberRepository) GetByID(ctx context.Context, teamID, memberID string) (*domain.Member, error) {
	args := m.Called(ctx, teamID, memberID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Member), args.Error(1)
}

func (m *MemberRepository) ListByTeam(ctx context.Context, teamID string, status domain.MemberStatusFilter) ([]*domain.Member, error) {
	args := m.Called(ctx, teamID, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Member), args.Error(1)
}

func (m *MemberRepository) GetActiveMembers(ctx context.Context, teamID string) ([]*domain.Member, error) {
	args := m.Called(ctx, teamID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Member), args.Error(1)
}

func (m *MemberRepository) UpdateDisplayName(ctx context.Context, teamID, memberID, displayName string) (*domain.Member, error) {
	args := m.Called(ctx, teamID, memberID, displayName)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Member), args.Error(1)
}

func (m *MemberRepository) Remove(ctx context.Context, teamID, memberID string) error {
	args := m.Called(ctx, teamID, memberID)
	return args.Error(0)
}

// UnavailabilityRepository реализует мок domain.UnavailabilityRepository.
type UnavailabilityRepository struct {
	mock.Mock
}

func (m *UnavailabilityRepository) Create(ctx context.Context, mark *domain.Unavailability) error {
	args := m.Called(ctx, mark)
	return args.Error(0)
}

func (m *UnavailabilityRepository) ListInRange(ctx context.Context, teamID, startDate, endDate string) ([]*domain.Unavailability, error) {
	args := m.Called(ctx, teamID, startDate, endDate)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Unavailability), args.Error(1)
}

func (m *UnavailabilityRepository) Delete(ctx context.Context, teamID, unavailabilityID string) error {
	args := m.Called(ctx, teamID, unavailabilityID)
	return args.Error(0)
}

// PlanRepository реализует мок domain.PlanRepository.
type PlanRepository struct {
	mock.Mock
}

func (m *PlanRepository) CreateWithAssignments(ctx context.Context, plan *domain.Plan, assignments []domain.DayAssignment) error {
	args := m.Called(ctx, plan, assignments)
	return args.Error(0)
}

func (m *PlanRepository) GetByID(ctx context.Context, teamID, planID string) (*domain.Plan, error) {
	args := m.Called(ctx, teamID, planID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Plan), args.Error(1)
}

func (m *PlanRepository) List(ctx context.Context, teamID string, query domain.PlansListQuery) ([]*domain.Plan, int, error) {
	args := m.Called(ctx, teamID, query)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]*domain.Plan), args.Int(1), args.Error(2)
}

func (m *PlanRepository) ListAssignments(ctx context.Context, teamID, planID string, query domain.AssignmentsListQuery) ([]*domain.PlanAssignment, int, error) {
	args := m.Called(ctx, teamID, planID, query)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]*domain.PlanAssignment), args.Int(1), args.Error(2)
}

func (m *PlanRepository) GetSavedCounts(ctx context.Context, teamID string) (map[string]int, error) {
	args := m.Called(ctx, teamID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]int), args.Error(1)
}

// StatsRepository реализует мок domain.StatsRepository.
type StatsRepository struct {
	mock.Mock
}

func (m *StatsRepository) ListAssignments(ctx context.Context, teamID string) ([]*domain.AssignmentStat, error) {
	args := m.Called(ctx, teamID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.AssignmentStat), args.Error(1)
}

func (m *StatsRepository) ListPlanAssignments(ctx context.Context, teamID, planID string) ([]*domain.AssignmentStat, error) {
	args := m.Called(ctx, teamID, planID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.AssignmentStat), args.Error(1)
}

// EventRepository реализует мок domain.EventRepository.
type EventRepository struct {
	mock.Mock
}

func (m *EventRepository) Insert(ctx context.Context, event *domain.Event) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}
