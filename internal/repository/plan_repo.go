package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"oncall-roster-service/internal/database"
	"oncall-roster-service/internal/dates"
	"oncall-roster-service/internal/domain"

	"github.com/google/uuid"
)

// PlanRepository реализует боундари сохранения планов в PostgreSQL.
type PlanRepository struct {
	db      *sql.DB
	queries *database.Queries
}

// NewPlanRepository создает новый экземпляр PlanRepository.
func NewPlanRepository(db *sql.DB, queries *database.Queries) domain.PlanRepository {
	return &PlanRepository{
		db:      db,
		queries: queries,
	}
}

// CreateWithAssignments атомарно записывает план, его назначения и
// пересчитанный max_saved_count команды. Пересечение диапазонов ловится
// EXCLUDE-констрейнтом таблицы plans и возвращается как ErrPlanOverlap.
func (r *PlanRepository) CreateWithAssignments(ctx context.Context, plan *domain.Plan, assignments []domain.DayAssignment) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	txQueries := r.queries.WithTx(tx)

	if plan.ID == "" {
		plan.ID = uuid.NewString()
	}

	// 1. Создаем план
	created, err := txQueries.CreatePlan(ctx, database.CreatePlanParams{
		PlanID:    plan.ID,
		TeamID:    plan.TeamID,
		CreatedBy: plan.CreatedBy,
		StartDate: plan.StartDate,
		EndDate:   plan.EndDate,
	})
	if err != nil {
		if pgErrorCode(err) == pgExclusionViolation {
			return domain.ErrPlanOverlap
		}
		return fmt.Errorf("failed to create plan: %w", err)
	}
	plan.CreatedAt = created.CreatedAt

	// 2. Записываем назначения по дням
	for _, assignment := range assignments {
		memberID := sql.NullString{}
		if assignment.MemberID != nil {
			memberID = sql.NullString{String: *assignment.MemberID, Valid: true}
		}
		err = txQueries.CreatePlanAssignment(ctx, database.CreatePlanAssignmentParams{
			PlanID:   plan.ID,
			TeamID:   plan.TeamID,
			Day:      assignment.Day,
			MemberID: memberID,
		})
		if err != nil {
			return fmt.Errorf("failed to create assignment for %s: %w", assignment.Day, err)
		}
	}

	// 3. Пересчитываем пиковый счетчик команды в той же транзакции:
	//    он сидирует стартовую нагрузку участников, добавленных позже.
	counts, err := txQueries.GetSavedCountsByMember(ctx, plan.TeamID)
	if err != nil {
		return fmt.Errorf("failed to recompute saved counts: %w", err)
	}

	maxCount := 0
	for _, c := range counts {
		if int(c.SavedCount) > maxCount {
			maxCount = int(c.SavedCount)
		}
	}

	err = txQueries.UpdateTeamMaxSavedCount(ctx, database.UpdateTeamMaxSavedCountParams{
		TeamID:        plan.TeamID,
		MaxSavedCount: maxCount,
	})
	if err != nil {
		return fmt.Errorf("failed to update team max saved count: %w", err)
	}

	// 4. Коммитим транзакцию
	if err = tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// GetByID возвращает сохраненный план.
func (r *PlanRepository) GetByID(ctx context.Context, teamID, planID string) (*domain.Plan, error) {
	dbPlan, err := r.queries.GetPlanByID(ctx, database.GetPlanByIDParams{
		TeamID: teamID,
		PlanID: planID,
	})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrPlanNotFound
		}
		return nil, fmt.Errorf("failed to get plan: %w", err)
	}

	return toDomainPlan(dbPlan), nil
}

func toDomainPlan(p database.Plan) *domain.Plan {
	return &domain.Plan{
		ID:        p.PlanID,
		TeamID:    p.TeamID,
		CreatedBy: p.CreatedBy,
		StartDate: dates.Format(p.StartDate),
		EndDate:   dates.Format(p.EndDate),
		CreatedAt: p.CreatedAt,
	}
}

// List возвращает страницу сохраненных планов и общее число.
// Фильтры диапазона отбирают планы, пересекающиеся с [StartDate, EndDate].
func (r *PlanRepository) List(ctx context.Context, teamID string, query domain.PlansListQuery) ([]*domain.Plan, int, error) {
	where := "WHERE team_id = $1"
	args := []interface{}{teamID}

	if query.StartDate != "" {
		args = append(args, query.StartDate)
		where += fmt.Sprintf(" AND end_date >= $%d::date", len(args))
	}
	if query.EndDate != "" {
		args = append(args, query.EndDate)
		where += fmt.Sprintf(" AND start_date <= $%d::date", len(args))
	}

	var total int
	countSQL := "SELECT count(*) FROM plans " + where
	if err := r.db.QueryRowContext(ctx, countSQL, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count plans: %w", err)
	}

	sortColumn := "created_at"
	if query.Sort == "startDate" {
		sortColumn = "start_date"
	}
	direction := "DESC"
	if query.Order == "asc" {
		direction = "ASC"
	}

	args = append(args, query.Limit, query.Offset)
	listSQL := fmt.Sprintf(
		"SELECT plan_id, team_id, created_by, start_date, end_date, created_at FROM plans %s ORDER BY %s %s LIMIT $%d OFFSET $%d",
		where, sortColumn, direction, len(args)-1, len(args),
	)

	rows, err := r.db.QueryContext(ctx, listSQL, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list plans: %w", err)
	}
	defer rows.Close()

	plans := make([]*domain.Plan, 0)
	for rows.Next() {
		var p database.Plan
		if err := rows.Scan(&p.PlanID, &p.TeamID, &p.CreatedBy, &p.StartDate, &p.EndDate, &p.CreatedAt); err != nil {
			return nil, 0, fmt.Errorf("failed to scan plan: %w", err)
		}
		plans = append(plans, toDomainPlan(p))
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to list plans: %w", err)
	}

	return plans, total, nil
}

// ListAssignments возвращает страницу назначений плана, упорядоченных по дню.
func (r *PlanRepository) ListAssignments(ctx context.Context, teamID, planID string, query domain.AssignmentsListQuery) ([]*domain.PlanAssignment, int, error) {
	var total int
	countSQL := "SELECT count(*) FROM plan_assignments WHERE team_id = $1 AND plan_id = $2"
	if err := r.db.QueryRowContext(ctx, countSQL, teamID, planID).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count assignments: %w", err)
	}

	direction := "ASC"
	if query.Order == "desc" {
		direction = "DESC"
	}

	listSQL := fmt.Sprintf(
		"SELECT plan_id, team_id, day, member_id, created_at FROM plan_assignments WHERE team_id = $1 AND plan_id = $2 ORDER BY day %s LIMIT $3 OFFSET $4",
		direction,
	)

	rows, err := r.db.QueryContext(ctx, listSQL, teamID, planID, query.Limit, query.Offset)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list assignments: %w", err)
	}
	defer rows.Close()

	assignments := make([]*domain.PlanAssignment, 0)
	for rows.Next() {
		var a database.PlanAssignment
		if err := rows.Scan(&a.PlanID, &a.TeamID, &a.Day, &a.MemberID, &a.CreatedAt); err != nil {
			return nil, 0, fmt.Errorf("failed to scan assignment: %w", err)
		}
		assignment := &domain.PlanAssignment{
			PlanID:    a.PlanID,
			TeamID:    a.TeamID,
			Day:       dates.Format(a.Day),
			CreatedAt: a.CreatedAt,
		}
		if a.MemberID.Valid {
			memberID := a.MemberID.String
			assignment.MemberID = &memberID
		}
		assignments = append(assignments, assignment)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to list assignments: %w", err)
	}

	return assignments, total, nil
}

// GetSavedCounts возвращает число сохраненных дежурств каждого участника.
// Участники без единого дежурства в карте отсутствуют.
func (r *PlanRepository) GetSavedCounts(ctx context.Context, teamID string) (map[string]int, error) {
	rows, err := r.queries.GetSavedCountsByMember(ctx, teamID)
	if err != nil {
		return nil, fmt.Errorf("failed to get saved counts: %w", err)
	}

	counts := make(map[string]int, len(rows))
	for _, row := range rows {
		counts[row.MemberID] = int(row.SavedCount)
	}
	return counts, nil
}
