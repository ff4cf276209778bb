package repository

import (
	"context"
	"database/sql"
	"fmt"

	"oncall-roster-service/internal/database"
	"oncall-roster-service/internal/domain"
)

// EventRepository реализует запись журнала аудита в PostgreSQL.
type EventRepository struct {
	queries *database.Queries
}

// NewEventRepository создает новый экземпляр EventRepository.
func NewEventRepository(queries *database.Queries) domain.EventRepository {
	return &EventRepository{
		queries: queries,
	}
}

// Insert записывает событие аудита.
func (r *EventRepository) Insert(ctx context.Context, event *domain.Event) error {
	membersCount := sql.NullInt32{}
	if event.MembersCount != nil {
		membersCount = sql.NullInt32{Int32: int32(*event.MembersCount), Valid: true}
	}
	inequality := sql.NullInt32{}
	if event.Inequality != nil {
		inequality = sql.NullInt32{Int32: int32(*event.Inequality), Valid: true}
	}

	err := r.queries.InsertEvent(ctx, database.InsertEventParams{
		TeamID:          event.TeamID,
		EventType:       event.EventType,
		StartDate:       event.StartDate,
		EndDate:         event.EndDate,
		RangeDays:       event.RangeDays,
		MembersCount:    membersCount,
		UnassignedCount: event.UnassignedCount,
		Inequality:      inequality,
	})
	if err != nil {
		return fmt.Errorf("failed to insert event: %w", err)
	}
	return nil
}
