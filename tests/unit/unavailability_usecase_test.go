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

func newUnavailabilityUseCase() (domain.UnavailabilityUseCase, *mocks.UnavailabilityRepository, *mocks.MemberRepository, *mocks.TeamRepository) {
	unavailabilityRepo := &mocks.UnavailabilityRepository{}
	memberRepo := &mocks.MemberRepository{}
	teamRepo := &mocks.TeamRepository{}
	uc := usecase.NewUnavailabilityUseCase(unavailabilityRepo, memberRepo, teamRepo)
	return uc, unavailabilityRepo, memberRepo, teamRepo
}

func TestUnavailabilityUseCase_Create_Success(t *testing.T) {
	ctx := context.Background()
	uc, unavailabilityRepo, memberRepo, _ := newUnavailabilityUseCase()

	memberRepo.On("GetByID", ctx, "team-1", "m-a").
		Return(&domain.Member{ID: "m-a", TeamID: "team-1", DisplayName: "Alice", IsActive: true}, nil)
	unavailabilityRepo.On("Create", ctx, mock.MatchedBy(func(u *domain.Unavailability) bool {
		return u.MemberID == "m-a" && u.Day == "2024-03-05"
	})).Return(nil)

	mark, err := uc.CreateUnavailability(ctx, "team-1", "m-a", "2024-03-05")

	assert.NoError(t, err)
	assert.NotEmpty(t, mark.ID)
	assert.Equal(t, "2024-03-05", mark.Day)
	unavailabilityRepo.AssertExpectations(t)
}

func TestUnavailabilityUseCase_Create_InvalidDay(t *testing.T) {
	ctx := context.Background()
	uc, unavailabilityRepo, _, _ := newUnavailabilityUseCase()

	_, err := uc.CreateUnavailability(ctx, "team-1", "m-a", "2024-02-30")
	assert.ErrorIs(t, err, domain.ErrInvalidDateRange)

	unavailabilityRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestUnavailabilityUseCase_Create_RemovedMember(t *testing.T) {
	ctx := context.Background()
	uc, unavailabilityRepo, memberRepo, _ := newUnavailabilityUseCase()

	memberRepo.On("GetByID", ctx, "team-1", "m-gone").
		Return(&domain.Member{ID: "m-gone", TeamID: "team-1", DisplayName: "Gone", IsActive: false}, nil)

	_, err := uc.CreateUnavailability(ctx, "team-1", "m-gone", "2024-03-05")

	assert.ErrorIs(t, err, domain.ErrMemberAlreadyRemoved)
	unavailabilityRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestUnavailabilityUseCase_List(t *testing.T) {
	ctx := context.Background()
	uc, unavailabilityRepo, _, teamRepo := newUnavailabilityUseCase()

	marks := []*domain.Unavailability{
		{ID: "u1", TeamID: "team-1", MemberID: "m-a", Day: "2024-03-02"},
	}
	teamRepo.On("ExistsTeam", ctx, "team-1").Return(true, nil)
	unavailabilityRepo.On("ListInRange", ctx, "team-1", "2024-03-01", "2024-03-07").Return(marks, nil)

	result, err := uc.ListUnavailabilities(ctx, "team-1", "2024-03-01", "2024-03-07")

	assert.NoError(t, err)
	assert.Equal(t, marks, result)

	_, err = uc.ListUnavailabilities(ctx, "team-1", "2024-03-07", "2024-03-01")
	assert.ErrorIs(t, err, domain.ErrInvalidDateRange)
}

func TestUnavailabilityUseCase_Delete(t *testing.T) {
	ctx := context.Background()
	uc, unavailabilityRepo, _, _ := newUnavailabilityUseCase()

	unavailabilityRepo.On("Delete", ctx, "team-1", "u1").Return(nil)
	assert.NoError(t, uc.DeleteUnavailability(ctx, "team-1", "u1"))

	unavailabilityRepo.On("Delete", ctx, "team-1", "ghost").Return(domain.ErrUnavailabilityNotFound)
	assert.ErrorIs(t, uc.DeleteUnavailability(ctx, "team-1", "ghost"), domain.ErrUnavailabilityNotFound)
}
