package domain

import (
	"context"
	"time"
)

// Member представляет участника команды. InitialOnCallCount задает стартовое
// смещение нагрузки, фиксируется при создании участника и выравнивает
// новичков с самым нагруженным участником команды.
type Member struct {
	ID                 string
	TeamID             string
	DisplayName        string
	InitialOnCallCount int
	IsActive           bool
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// MemberWithSavedCount дополняет участника числом сохраненных дежурств.
type MemberWithSavedCount struct {
	Member
	SavedCount int
}

// MemberStatusFilter управляет выборкой участников по флагу активности.
type MemberStatusFilter string

const (
	MemberStatusActive MemberStatusFilter = "active"
	MemberStatusAll    MemberStatusFilter = "all"
)

// MemberRepository определяет контракт для работы со справочником участников.
type MemberRepository interface {
	Create(ctx context.Context, member *Member) error
	GetByID(ctx context.Context, teamID, memberID string) (*Member, error)
	ListByTeam(ctx context.Context, teamID string, status MemberStatusFilter) ([]*Member, error)
	GetActiveMembers(ctx context.Context, teamID string) ([]*Member, error)
	UpdateDisplayName(ctx context.Context, teamID, memberID, displayName string) (*Member, error)
	Remove(ctx context.Context, teamID, memberID string) error
}
