package domain

import (
	"context"
	"time"
)

// Event types записываемые в журнал аудита.
const (
	EventPlanGenerated = "plan_generated"
	EventPlanSaved     = "plan_saved"
)

// Event представляет строку журнала аудита генерации и сохранения планов.
// Запись best-effort: сбой записи логируется, но не прерывает операцию.
type Event struct {
	ID              int64
	TeamID          string
	EventType       string
	StartDate       string
	EndDate         string
	RangeDays       int
	MembersCount    *int
	UnassignedCount int
	Inequality      *int
	CreatedAt       time.Time
}

// EventRepository определяет контракт для записи журнала аудита.
type EventRepository interface {
	Insert(ctx context.Context, event *Event) error
}
