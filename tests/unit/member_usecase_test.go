package usecase_test

import (
	"context"
	"testing"

	"oncall-roster-service/internal/domain"
	"oncall-roster-service/internal/usecase"
	"oncall-roster-service/tests/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newMemberUseCase() (domain.MemberUseCase, *mocks.MemberRepository, *mocks.TeamRepository, *mocks.PlanRepository) {
	memberRepo := &mocks.MemberRepository{}
	teamRepo := &mocks.TeamRepository{}
	planRepo := &mocks.PlanRepository{}
	uc := usecase.NewMemberUseCase(memberRepo, teamRepo, planRepo)
	return uc, memberRepo, teamRepo, planRepo
}

func TestMemberUseCase_CreateMember_SeedsInitialCount(t *testing.T) {
	ctx := context.Background()
	uc, memberRepo, teamRepo, _ := newMemberUseCase()

	// Команда уже накопила пик в 7 сохраненных дежурств: новичок стартует
	// с него, а не с нуля
	teamRepo.On("GetByID", ctx, "team-1").Return(&domain.Team{ID: "team-1", Name: "platform", MaxSavedCount: 7}, nil)
	memberRepo.On("Create", ctx, mock.MatchedBy(func(m *domain.Member) bool {
		return m.InitialOnCallCount == 7 && m.DisplayName == "Dave" && m.TeamID == "team-1"
	})).Return(nil)

	member, err := uc.CreateMember(ctx, "team-1", "Dave")

	assert.NoError(t, err)
	assert.Equal(t, 7, member.InitialOnCallCount)
	assert.NotEmpty(t, member.ID)
	memberRepo.AssertExpectations(t)
}

func TestMemberUseCase_CreateMember_ValidationErrors(t *testing.T) {
	ctx := context.Background()
	uc, memberRepo, _, _ := newMemberUseCase()

	_, err := uc.CreateMember(ctx, "", "Dave")
	assert.ErrorIs(t, err, domain.ErrInvalidTeamID)

	_, err = uc.CreateMember(ctx, "team-1", "")
	assert.ErrorIs(t, err, domain.ErrInvalidDisplayName)

	memberRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestMemberUseCase_CreateMember_TeamNotFound(t *testing.T) {
	ctx := context.Background()
	uc, _, teamRepo, _ := newMemberUseCase()

	teamRepo.On("GetByID", ctx, "ghost").Return(nil, domain.ErrTeamNotFound)

	_, err := uc.CreateMember(ctx, "ghost", "Dave")
	assert.ErrorIs(t, err, domain.ErrTeamNotFound)
}

func TestMemberUseCase_ListMembers_MergesSavedCounts(t *testing.T) {
	ctx := context.Background()
	uc, memberRepo, teamRepo, planRepo := newMemberUseCase()

	members := []*domain.Member{
		{ID: "m-a", TeamID: "team-1", DisplayName: "Alice", IsActive: true},
		{ID: "m-b", TeamID: "team-1", DisplayName: "Bob", IsActive: true},
	}

	teamRepo.On("ExistsTeam", ctx, "team-1").Return(true, nil)
	memberRepo.On("ListByTeam", ctx, "team-1", domain.MemberStatusActive).Return(members, nil)
	planRepo.On("GetSavedCounts", ctx, "team-1").Return(map[string]int{"m-a": 5}, nil)

	items, err := uc.ListMembers(ctx, "team-1", domain.MemberStatusActive)

	assert.NoError(t, err)
	assert.Len(t, items, 2)
	assert.Equal(t, 5, items[0].SavedCount)
	assert.Equal(t, 0, items[1].SavedCount)
}

func TestMemberUseCase_RenameMember(t *testing.T) {
	ctx := context.Background()
	uc, memberRepo, _, _ := newMemberUseCase()

	renamed := &domain.Member{ID: "m-a", TeamID: "team-1", DisplayName: "Alice B.", IsActive: true}
	memberRepo.On("UpdateDisplayName", ctx, "team-1", "m-a", "Alice B.").Return(renamed, nil)

	member, err := uc.RenameMember(ctx, "team-1", "m-a", "Alice B.")

	assert.NoError(t, err)
	assert.Equal(t, "Alice B.", member.DisplayName)

	_, err = uc.RenameMember(ctx, "team-1", "m-a", "")
	assert.ErrorIs(t, err, domain.ErrInvalidDisplayName)
}

func TestMemberUseCase_RemoveMember(t *testing.T) {
	ctx := context.Background()
	uc, memberRepo, _, _ := newMemberUseCase()

	memberRepo.On("Remove", ctx, "team-1", "m-a").Return(nil)
	assert.NoError(t, uc.RemoveMember(ctx, "team-1", "m-a"))

	memberRepo.On("Remove", ctx, "team-1", "m-gone").Return(domain.ErrMemberAlreadyRemoved)
	assert.ErrorIs(t, uc.RemoveMember(ctx, "team-1", "m-gone"), domain.ErrMemberAlreadyRemoved)
}
