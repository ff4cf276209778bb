package domain

import (
	"context"
	"time"
)

// Team представляет команду, арендатора, в рамках которого изолированы
// участники, недоступности и планы дежурств. MaxSavedCount хранит пиковое
// число сохраненных дежурств среди участников и служит стартовым счетчиком
// для новых участников.
type Team struct {
	ID            string
	Name          string
	MaxSavedCount int
	CreatedAt     time.Time
}

// TeamRepository определяет контракт для работы с хранилищем команд.
type TeamRepository interface {
	Create(ctx context.Context, team *Team) error
	GetByID(ctx context.Context, teamID string) (*Team, error)
	ExistsByName(ctx context.Context, name string) (bool, error)
	ExistsTeam(ctx context.Context, teamID string) (bool, error)
}
