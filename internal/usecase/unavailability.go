package usecase

import (
	"context"

	"oncall-roster-service/internal/dates"
	"oncall-roster-service/internal/domain"

	"github.com/google/uuid"
)

// UnavailabilityUseCase реализует бизнес-логику отметок недоступности.
type UnavailabilityUseCase struct {
	unavailabilityRepo domain.UnavailabilityRepository
	memberRepo         domain.MemberRepository
	teamRepo           domain.TeamRepository
}

// NewUnavailabilityUseCase создает новый экземпляр UnavailabilityUseCase.
func NewUnavailabilityUseCase(
	unavailabilityRepo domain.UnavailabilityRepository,
	memberRepo domain.MemberRepository,
	teamRepo domain.TeamRepository,
) domain.UnavailabilityUseCase {
	return &UnavailabilityUseCase{
		unavailabilityRepo: unavailabilityRepo,
		memberRepo:         memberRepo,
		teamRepo:           teamRepo,
	}
}

// ListUnavailabilities возвращает отметки команды в диапазоне дат.
func (uc *UnavailabilityUseCase) ListUnavailabilities(ctx context.Context, teamID, startDate, endDate string) ([]*domain.Unavailability, error) {
	if teamID == "" {
		return nil, domain.ErrInvalidTeamID
	}
	if !dates.IsRangeValid(startDate, endDate) {
		return nil, domain.ErrInvalidDateRange
	}

	exists, err := uc.teamRepo.ExistsTeam(ctx, teamID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, domain.ErrTeamNotFound
	}

	return uc.unavailabilityRepo.ListInRange(ctx, teamID, startDate, endDate)
}

// CreateUnavailability помечает день участника как недоступный.
func (uc *UnavailabilityUseCase) CreateUnavailability(ctx context.Context, teamID, memberID, day string) (*domain.Unavailability, error) {
	if teamID == "" {
		return nil, domain.ErrInvalidTeamID
	}
	if memberID == "" {
		return nil, domain.ErrInvalidMemberID
	}
	if !dates.IsValid(day) {
		return nil, domain.ErrInvalidDateRange
	}

	// Отметка имеет смысл только для действующего участника
	member, err := uc.memberRepo.GetByID(ctx, teamID, memberID)
	if err != nil {
		return nil, err
	}
	if !member.IsActive {
		return nil, domain.ErrMemberAlreadyRemoved
	}

	mark := &domain.Unavailability{
		ID:       uuid.NewString(),
		TeamID:   teamID,
		MemberID: memberID,
		Day:      day,
	}

	if err := uc.unavailabilityRepo.Create(ctx, mark); err != nil {
		return nil, err
	}

	return mark, nil
}

// DeleteUnavailability удаляет отметку недоступности.
func (uc *UnavailabilityUseCase) DeleteUnavailability(ctx context.Context, teamID, unavailabilityID string) error {
	if teamID == "" {
		return domain.ErrInvalidTeamID
	}
	if unavailabilityID == "" {
		return domain.ErrInvalidMemberID
	}

	return uc.unavailabilityRepo.Delete(ctx, teamID, unavailabilityID)
}
