package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"oncall-roster-service/internal/database"
	"oncall-roster-service/internal/domain"

	"github.com/jackc/pgx/v5/pgconn"
)

// Коды ошибок PostgreSQL, на которые завязана доменная семантика.
const (
	pgUniqueViolation    = "23505"
	pgExclusionViolation = "23P01"
)

func pgErrorCode(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	return ""
}

// TeamRepository реализует взаимодействие с данными команд в PostgreSQL.
type TeamRepository struct {
	db      *sql.DB
	queries *database.Queries
}

// NewTeamRepository создает новый экземпляр TeamRepository.
func NewTeamRepository(db *sql.DB, queries *database.Queries) domain.TeamRepository {
	return &TeamRepository{
		db:      db,
		queries: queries,
	}
}

// Create создает команду.
func (r *TeamRepository) Create(ctx context.Context, team *domain.Team) error {
	created, err := r.queries.CreateTeam(ctx, database.CreateTeamParams{
		TeamID:   team.ID,
		TeamName: team.Name,
	})
	if err != nil {
		if pgErrorCode(err) == pgUniqueViolation {
			return domain.ErrTeamAlreadyExists
		}
		return fmt.Errorf("failed to create team: %w", err)
	}

	team.MaxSavedCount = created.MaxSavedCount
	team.CreatedAt = created.CreatedAt
	return nil
}

// GetByID возвращает команду по идентификатору.
func (r *TeamRepository) GetByID(ctx context.Context, teamID string) (*domain.Team, error) {
	dbTeam, err := r.queries.GetTeamByID(ctx, teamID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrTeamNotFound
		}
		return nil, fmt.Errorf("failed to get team: %w", err)
	}

	return &domain.Team{
		ID:            dbTeam.TeamID,
		Name:          dbTeam.TeamName,
		MaxSavedCount: dbTeam.MaxSavedCount,
		CreatedAt:     dbTeam.CreatedAt,
	}, nil
}

// ExistsByName проверяет занятость названия команды.
func (r *TeamRepository) ExistsByName(ctx context.Context, name string) (bool, error) {
	count, err := r.queries.TeamExistsByName(ctx, name)
	if err != nil {
		return false, fmt.Errorf("failed to check team name: %w", err)
	}
	return count > 0, nil
}

// ExistsTeam проверяет существование команды.
func (r *TeamRepository) ExistsTeam(ctx context.Context, teamID string) (bool, error) {
	count, err := r.queries.TeamExists(ctx, teamID)
	if err != nil {
		return false, fmt.Errorf("failed to check team existence: %w", err)
	}
	return count > 0, nil
}
