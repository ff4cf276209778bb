package usecase

import (
	"context"

	"oncall-roster-service/internal/domain"

	"github.com/google/uuid"
)

// TeamUseCase реализует бизнес-логику для работы с командами.
type TeamUseCase struct {
	teamRepo domain.TeamRepository
}

// NewTeamUseCase создает новый экземпляр TeamUseCase.
func NewTeamUseCase(teamRepo domain.TeamRepository) domain.TeamUseCase {
	return &TeamUseCase{
		teamRepo: teamRepo,
	}
}

// CreateTeam создает новую команду.
func (uc *TeamUseCase) CreateTeam(ctx context.Context, name string) (*domain.Team, error) {
	// Валидация
	if name == "" {
		return nil, domain.ErrInvalidTeamName
	}

	// Проверяем, что название свободно
	exists, err := uc.teamRepo.ExistsByName(ctx, name)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, domain.ErrTeamAlreadyExists
	}

	team := &domain.Team{
		ID:   uuid.NewString(),
		Name: name,
	}

	if err := uc.teamRepo.Create(ctx, team); err != nil {
		return nil, err
	}

	return team, nil
}

// GetTeam возвращает команду по идентификатору.
func (uc *TeamUseCase) GetTeam(ctx context.Context, teamID string) (*domain.Team, error) {
	if teamID == "" {
		return nil, domain.ErrInvalidTeamID
	}

	return uc.teamRepo.GetByID(ctx, teamID)
}
