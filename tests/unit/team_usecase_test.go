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

func TestTeamUseCase_CreateTeam_Success(t *testing.T) {
	ctx := context.Background()
	teamRepo := &mocks.TeamRepository{}
	uc := usecase.NewTeamUseCase(teamRepo)

	teamRepo.On("ExistsByName", ctx, "platform").Return(false, nil)
	teamRepo.On("Create", ctx, mock.Anything).Return(nil)

	team, err := uc.CreateTeam(ctx, "platform")

	assert.NoError(t, err)
	assert.Equal(t, "platform", team.Name)
	assert.NotEmpty(t, team.ID)
	assert.Equal(t, 0, team.MaxSavedCount)
	teamRepo.AssertExpectations(t)
}

func TestTeamUseCase_CreateTeam_EmptyName(t *testing.T) {
	ctx := context.Background()
	teamRepo := &mocks.TeamRepository{}
	uc := usecase.NewTeamUseCase(teamRepo)

	_, err := uc.CreateTeam(ctx, "")

	assert.ErrorIs(t, err, domain.ErrInvalidTeamName)
	teamRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestTeamUseCase_CreateTeam_NameTaken(t *testing.T) {
	ctx := context.Background()
	teamRepo := &mocks.TeamRepository{}
	uc := usecase.NewTeamUseCase(teamRepo)

	teamRepo.On("ExistsByName", ctx, "platform").Return(true, nil)

	_, err := uc.CreateTeam(ctx, "platform")

	assert.ErrorIs(t, err, domain.ErrTeamAlreadyExists)
	teamRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestTeamUseCase_GetTeam(t *testing.T) {
	ctx := context.Background()
	teamRepo := &mocks.TeamRepository{}
	uc := usecase.NewTeamUseCase(teamRepo)

	expected := &domain.Team{ID: "team-1", Name: "platform", MaxSavedCount: 4}
	teamRepo.On("GetByID", ctx, "team-1").Return(expected, nil)

	team, err := uc.GetTeam(ctx, "team-1")

	assert.NoError(t, err)
	assert.Equal(t, expected, team)

	_, err = uc.GetTeam(ctx, "")
	assert.ErrorIs(t, err, domain.ErrInvalidTeamID)
}
