package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"oncall-roster-service/internal/database"
	"oncall-roster-service/internal/domain"
)

// MemberRepository реализует справочник участников в PostgreSQL.
type MemberRepository struct {
	db      *sql.DB
	queries *database.Queries
}

// NewMemberRepository создает новый экземпляр MemberRepository.
func NewMemberRepository(db *sql.DB, queries *database.Queries) domain.MemberRepository {
	return &MemberRepository{
		db:      db,
		queries: queries,
	}
}

func toDomainMember(m database.Member) *domain.Member {
	return &domain.Member{
		ID:                 m.MemberID,
		TeamID:             m.TeamID,
		DisplayName:        m.DisplayName,
		InitialOnCallCount: m.InitialOnCallCount,
		IsActive:           m.IsActive,
		CreatedAt:          m.CreatedAt,
		UpdatedAt:          m.UpdatedAt,
	}
}

func toDomainMembers(rows []database.Member) []*domain.Member {
	members := make([]*domain.Member, 0, len(rows))
	for _, row := range rows {
		members = append(members, toDomainMember(row))
	}
	return members
}

// Create создает участника с зафиксированным стартовым счетчиком.
func (r *MemberRepository) Create(ctx context.Context, member *domain.Member) error {
	created, err := r.queries.CreateMember(ctx, database.CreateMemberParams{
		MemberID:           member.ID,
		TeamID:             member.TeamID,
		DisplayName:        member.DisplayName,
		InitialOnCallCount: member.InitialOnCallCount,
	})
	if err != nil {
		return fmt.Errorf("failed to create member: %w", err)
	}

	member.IsActive = created.IsActive
	member.CreatedAt = created.CreatedAt
	member.UpdatedAt = created.UpdatedAt
	return nil
}

// GetByID возвращает участника по идентификатору в рамках команды.
func (r *MemberRepository) GetByID(ctx context.Context, teamID, memberID string) (*domain.Member, error) {
	dbMember, err := r.queries.GetMemberByID(ctx, database.GetMemberByIDParams{
		TeamID:   teamID,
		MemberID: memberID,
	})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrMemberNotFound
		}
		return nil, fmt.Errorf("failed to get member: %w", err)
	}

	return toDomainMember(dbMember), nil
}

// ListByTeam возвращает участников команды, активных либо всех.
func (r *MemberRepository) ListByTeam(ctx context.Context, teamID string, status domain.MemberStatusFilter) ([]*domain.Member, error) {
	var (
		rows []database.Member
		err  error
	)
	if status == domain.MemberStatusAll {
		rows, err = r.queries.ListMembersByTeam(ctx, teamID)
	} else {
		rows, err = r.queries.ListActiveMembersByTeam(ctx, teamID)
	}
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return []*domain.Member{}, nil
		}
		return nil, fmt.Errorf("failed to list members: %w", err)
	}

	return toDomainMembers(rows), nil
}

// GetActiveMembers возвращает действующих участников команды,
// упорядоченных по идентификатору.
func (r *MemberRepository) GetActiveMembers(ctx context.Context, teamID string) ([]*domain.Member, error) {
	rows, err := r.queries.ListActiveMembersByTeam(ctx, teamID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return []*domain.Member{}, nil
		}
		return nil, fmt.Errorf("failed to get active members: %w", err)
	}

	return toDomainMembers(rows), nil
}

// UpdateDisplayName переименовывает действующего участника.
func (r *MemberRepository) UpdateDisplayName(ctx context.Context, teamID, memberID, displayName string) (*domain.Member, error) {
	dbMember, err := r.queries.UpdateMemberDisplayName(ctx, database.UpdateMemberDisplayNameParams{
		TeamID:      teamID,
		MemberID:    memberID,
		DisplayName: displayName,
	})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrMemberNotFound
		}
		return nil, fmt.Errorf("failed to update member: %w", err)
	}

	return toDomainMember(dbMember), nil
}

// Remove снимает флаг активности участника. Повторное удаление возвращает конфликт.
func (r *MemberRepository) Remove(ctx context.Context, teamID, memberID string) error {
	_, err := r.queries.DeactivateMember(ctx, database.DeactivateMemberParams{
		TeamID:   teamID,
		MemberID: memberID,
	})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			// Либо участника нет, либо он уже снят. Различаем отдельным чтением.
			if _, getErr := r.GetByID(ctx, teamID, memberID); getErr != nil {
				return getErr
			}
			return domain.ErrMemberAlreadyRemoved
		}
		return fmt.Errorf("failed to remove member: %w", err)
	}
	return nil
}
