package usecase

import (
	"context"

	"oncall-roster-service/internal/domain"

	"github.com/google/uuid"
)

// MemberUseCase реализует бизнес-логику справочника участников.
type MemberUseCase struct {
	memberRepo domain.MemberRepository
	teamRepo   domain.TeamRepository
	planRepo   domain.PlanRepository
}

// NewMemberUseCase создает новый экземпляр MemberUseCase.
func NewMemberUseCase(memberRepo domain.MemberRepository, teamRepo domain.TeamRepository, planRepo domain.PlanRepository) domain.MemberUseCase {
	return &MemberUseCase{
		memberRepo: memberRepo,
		teamRepo:   teamRepo,
		planRepo:   planRepo,
	}
}

// ListMembers возвращает участников команды вместе с числом
// сохраненных дежурств каждого.
func (uc *MemberUseCase) ListMembers(ctx context.Context, teamID string, status domain.MemberStatusFilter) ([]*domain.MemberWithSavedCount, error) {
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

	members, err := uc.memberRepo.ListByTeam(ctx, teamID, status)
	if err != nil {
		return nil, err
	}

	savedCounts, err := uc.planRepo.GetSavedCounts(ctx, teamID)
	if err != nil {
		return nil, err
	}

	items := make([]*domain.MemberWithSavedCount, 0, len(members))
	for _, member := range members {
		items = append(items, &domain.MemberWithSavedCount{
			Member:     *member,
			SavedCount: savedCounts[member.ID],
		})
	}

	return items, nil
}

// CreateMember создает участника. Стартовый счетчик новичка равен пиковому
// числу сохраненных дежурств в команде, чтобы аллокатор не заваливал его
// дежурствами с первого же дня.
func (uc *MemberUseCase) CreateMember(ctx context.Context, teamID, displayName string) (*domain.Member, error) {
	if teamID == "" {
		return nil, domain.ErrInvalidTeamID
	}
	if displayName == "" {
		return nil, domain.ErrInvalidDisplayName
	}

	team, err := uc.teamRepo.GetByID(ctx, teamID)
	if err != nil {
		return nil, err
	}

	member := &domain.Member{
		ID:                 uuid.NewString(),
		TeamID:             teamID,
		DisplayName:        displayName,
		InitialOnCallCount: team.MaxSavedCount,
	}

	if err := uc.memberRepo.Create(ctx, member); err != nil {
		return nil, err
	}

	return member, nil
}

// RenameMember меняет отображаемое имя действующего участника.
func (uc *MemberUseCase) RenameMember(ctx context.Context, teamID, memberID, displayName string) (*domain.Member, error) {
	if teamID == "" {
		return nil, domain.ErrInvalidTeamID
	}
	if memberID == "" {
		return nil, domain.ErrInvalidMemberID
	}
	if displayName == "" {
		return nil, domain.ErrInvalidDisplayName
	}

	return uc.memberRepo.UpdateDisplayName(ctx, teamID, memberID, displayName)
}

// RemoveMember выводит участника из ротации. История его дежурств
// сохраняется и продолжает учитываться в счетчиках.
func (uc *MemberUseCase) RemoveMember(ctx context.Context, teamID, memberID string) error {
	if teamID == "" {
		return domain.ErrInvalidTeamID
	}
	if memberID == "" {
		return domain.ErrInvalidMemberID
	}

	return uc.memberRepo.Remove(ctx, teamID, memberID)
}
