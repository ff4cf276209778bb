package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"oncall-roster-service/internal/database"
	"oncall-roster-service/internal/dates"
	"oncall-roster-service/internal/domain"
)

// UnavailabilityRepository реализует хранение отметок недоступности в PostgreSQL.
type UnavailabilityRepository struct {
	db      *sql.DB
	queries *database.Queries
}

// NewUnavailabilityRepository создает новый экземпляр UnavailabilityRepository.
func NewUnavailabilityRepository(db *sql.DB, queries *database.Queries) domain.UnavailabilityRepository {
	return &UnavailabilityRepository{
		db:      db,
		queries: queries,
	}
}

// Create создает отметку недоступности. Дубликат пары (участник, день)
// возвращает конфликт.
func (r *UnavailabilityRepository) Create(ctx context.Context, mark *domain.Unavailability) error {
	created, err := r.queries.CreateUnavailability(ctx, database.CreateUnavailabilityParams{
		UnavailabilityID: mark.ID,
		TeamID:           mark.TeamID,
		MemberID:         mark.MemberID,
		Day:              mark.Day,
	})
	if err != nil {
		if pgErrorCode(err) == pgUniqueViolation {
			return domain.ErrUnavailabilityExists
		}
		return fmt.Errorf("failed to create unavailability: %w", err)
	}

	mark.CreatedAt = created.CreatedAt
	return nil
}

// ListInRange возвращает отметки недоступности команды в диапазоне дат.
func (r *UnavailabilityRepository) ListInRange(ctx context.Context, teamID, startDate, endDate string) ([]*domain.Unavailability, error) {
	rows, err := r.queries.ListUnavailabilitiesInRange(ctx, database.ListUnavailabilitiesInRangeParams{
		TeamID:    teamID,
		StartDate: startDate,
		EndDate:   endDate,
	})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return []*domain.Unavailability{}, nil
		}
		return nil, fmt.Errorf("failed to list unavailabilities: %w", err)
	}

	marks := make([]*domain.Unavailability, 0, len(rows))
	for _, row := range rows {
		marks = append(marks, &domain.Unavailability{
			ID:        row.UnavailabilityID,
			TeamID:    row.TeamID,
			MemberID:  row.MemberID,
			Day:       dates.Format(row.Day),
			CreatedAt: row.CreatedAt,
		})
	}

	return marks, nil
}

// Delete удаляет отметку недоступности.
func (r *UnavailabilityRepository) Delete(ctx context.Context, teamID, unavailabilityID string) error {
	_, err := r.queries.DeleteUnavailability(ctx, database.DeleteUnavailabilityParams{
		TeamID:           teamID,
		UnavailabilityID: unavailabilityID,
	})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.ErrUnavailabilityNotFound
		}
		return fmt.Errorf("failed to delete unavailability: %w", err)
	}
	return nil
}
