package usecase

import (
	"context"
	"strings"
	"sync"

	"oncall-roster-service/internal/dates"
	"oncall-roster-service/internal/domain"
	"oncall-roster-service/internal/roster"

	"github.com/sirupsen/logrus"
)

// PlanUseCase реализует бизнес-логику планов дежурств: генерацию превью
// и сохранение плана как авторитетной истории.
type PlanUseCase struct {
	planRepo           domain.PlanRepository
	memberRepo         domain.MemberRepository
	unavailabilityRepo domain.UnavailabilityRepository
	teamRepo           domain.TeamRepository
	eventRepo          domain.EventRepository
	logger             *logrus.Logger

	// Кэш последнего превью на ключ (команда, диапазон). Живет в памяти
	// процесса и не разделяется между инстансами: нужен лишь для того,
	// чтобы цикл генерации, просмотра и сохранения возвращал ровно
	// тот ростер, который был показан.
	previewMu    sync.Mutex
	previewCache map[string]*domain.PlanPreview
}

// NewPlanUseCase создает новый экземпляр PlanUseCase.
func NewPlanUseCase(
	planRepo domain.PlanRepository,
	memberRepo domain.MemberRepository,
	unavailabilityRepo domain.UnavailabilityRepository,
	teamRepo domain.TeamRepository,
	eventRepo domain.EventRepository,
	logger *logrus.Logger,
) domain.PlanUseCase {
	return &PlanUseCase{
		planRepo:           planRepo,
		memberRepo:         memberRepo,
		unavailabilityRepo: unavailabilityRepo,
		teamRepo:           teamRepo,
		eventRepo:          eventRepo,
		logger:             logger,
		previewCache:       make(map[string]*domain.PlanPreview),
	}
}

func previewKey(teamID, startDate, endDate string) string {
	return teamID + "|" + startDate + "|" + endDate
}

// GeneratePreview строит превью плана для диапазона [startDate, endDate].
// Повторный запрос того же диапазона возвращает закэшированный результат
// без повторного прогона аллокатора.
func (uc *PlanUseCase) GeneratePreview(ctx context.Context, teamID, startDate, endDate string) (*domain.PlanPreview, error) {
	if teamID == "" {
		return nil, domain.ErrInvalidTeamID
	}

	// 1. Диапазон проверяется до какой-либо аллокации
	if !dates.IsRangeValid(startDate, endDate) {
		return nil, domain.ErrInvalidDateRange
	}

	key := previewKey(teamID, startDate, endDate)
	uc.previewMu.Lock()
	cached := uc.previewCache[key]
	uc.previewMu.Unlock()
	if cached != nil {
		return cached, nil
	}

	exists, err := uc.teamRepo.ExistsTeam(ctx, teamID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, domain.ErrTeamNotFound
	}

	// 2. Консистентный снимок входов: участники, недоступности, история
	members, err := uc.memberRepo.GetActiveMembers(ctx, teamID)
	if err != nil {
		return nil, err
	}

	marks, err := uc.unavailabilityRepo.ListInRange(ctx, teamID, startDate, endDate)
	if err != nil {
		return nil, err
	}

	savedCounts, err := uc.planRepo.GetSavedCounts(ctx, teamID)
	if err != nil {
		return nil, err
	}

	// 3. Жадный проход аллокатора
	result := roster.Allocate(startDate, endDate, members, savedCounts, roster.UnavailabilityByDay(marks))

	rangeDays, _ := dates.DiffDaysInclusive(startDate, endDate)
	preview := &domain.PlanPreview{
		StartDate:      startDate,
		EndDate:        endDate,
		RangeDays:      rangeDays,
		Assignments:    result.Assignments,
		Counters:       result.Counters,
		Inequality:     result.Inequality,
		UnassignedDays: result.UnassignedDays,
	}

	uc.previewMu.Lock()
	uc.previewCache[key] = preview
	uc.previewMu.Unlock()

	membersCount := len(members)
	inequality := result.Inequality.Preview
	uc.recordEvent(ctx, &domain.Event{
		TeamID:          teamID,
		EventType:       domain.EventPlanGenerated,
		StartDate:       startDate,
		EndDate:         endDate,
		RangeDays:       rangeDays,
		MembersCount:    &membersCount,
		UnassignedCount: len(result.UnassignedDays),
		Inequality:      &inequality,
	})

	return preview, nil
}

// SavePlan валидирует предложенный ростер и делает его авторитетным.
// Порядок проверок фиксирован, любая неудача терминальна; запись с
// пересекающимся диапазоном отклоняется персистентным слоем как конфликт.
func (uc *PlanUseCase) SavePlan(ctx context.Context, teamID string, cmd domain.SavePlanCommand) (*domain.PlanSavedSummary, error) {
	if teamID == "" {
		return nil, domain.ErrInvalidTeamID
	}

	// 1. Диапазон валиден и не длиннее года
	if !dates.IsRangeValid(cmd.StartDate, cmd.EndDate) {
		return nil, domain.ErrInvalidDateRange
	}

	// 2. Множество дней ростера совпадает с перечислением диапазона
	if err := roster.ValidateAssignments(cmd.StartDate, cmd.EndDate, cmd.Assignments); err != nil {
		return nil, err
	}

	// 3. Каждое назначение ссылается на действующего участника;
	//    состав команды перечитывается, а не берется из превью
	exists, err := uc.teamRepo.ExistsTeam(ctx, teamID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, domain.ErrTeamNotFound
	}

	members, err := uc.memberRepo.GetActiveMembers(ctx, teamID)
	if err != nil {
		return nil, err
	}
	activeIDs := make(map[string]bool, len(members))
	for _, m := range members {
		activeIDs[m.ID] = true
	}
	if err := roster.ValidateMemberRefs(cmd.Assignments, activeIDs); err != nil {
		return nil, err
	}

	// 4. Атомарная запись плана, назначений и пикового счетчика
	createdBy := cmd.CreatedBy
	if createdBy == "" {
		createdBy = "system"
	}
	plan := &domain.Plan{
		TeamID:    teamID,
		CreatedBy: createdBy,
		StartDate: cmd.StartDate,
		EndDate:   cmd.EndDate,
	}
	if err := uc.planRepo.CreateWithAssignments(ctx, plan, cmd.Assignments); err != nil {
		return nil, err
	}

	// Все закэшированные превью команды после сохранения устарели
	uc.invalidateTeamPreviews(teamID)

	unassignedCount := 0
	for _, assignment := range cmd.Assignments {
		if assignment.MemberID == nil {
			unassignedCount++
		}
	}

	rangeDays, _ := dates.DiffDaysInclusive(cmd.StartDate, cmd.EndDate)
	uc.recordEvent(ctx, &domain.Event{
		TeamID:          teamID,
		EventType:       domain.EventPlanSaved,
		StartDate:       cmd.StartDate,
		EndDate:         cmd.EndDate,
		RangeDays:       rangeDays,
		UnassignedCount: unassignedCount,
	})

	return &domain.PlanSavedSummary{
		Plan:             plan,
		AssignmentsCount: len(cmd.Assignments),
		UnassignedCount:  unassignedCount,
	}, nil
}

// ListPlans возвращает страницу сохраненных планов команды.
func (uc *PlanUseCase) ListPlans(ctx context.Context, teamID string, query domain.PlansListQuery) ([]*domain.Plan, int, error) {
	if teamID == "" {
		return nil, 0, domain.ErrInvalidTeamID
	}

	exists, err := uc.teamRepo.ExistsTeam(ctx, teamID)
	if err != nil {
		return nil, 0, err
	}
	if !exists {
		return nil, 0, domain.ErrTeamNotFound
	}

	if query.Limit <= 0 {
		query.Limit = 50
	}
	if query.Offset < 0 {
		query.Offset = 0
	}

	return uc.planRepo.List(ctx, teamID, query)
}

// GetPlan возвращает сохраненный план.
func (uc *PlanUseCase) GetPlan(ctx context.Context, teamID, planID string) (*domain.Plan, error) {
	if teamID == "" {
		return nil, domain.ErrInvalidTeamID
	}
	if planID == "" {
		return nil, domain.ErrInvalidPlanID
	}

	return uc.planRepo.GetByID(ctx, teamID, planID)
}

// ListPlanAssignments возвращает страницу назначений сохраненного плана.
func (uc *PlanUseCase) ListPlanAssignments(ctx context.Context, teamID, planID string, query domain.AssignmentsListQuery) ([]*domain.PlanAssignment, int, error) {
	if teamID == "" {
		return nil, 0, domain.ErrInvalidTeamID
	}
	if planID == "" {
		return nil, 0, domain.ErrInvalidPlanID
	}

	// Проверяем, что план существует
	if _, err := uc.planRepo.GetByID(ctx, teamID, planID); err != nil {
		return nil, 0, err
	}

	if query.Limit <= 0 {
		query.Limit = 50
	}
	if query.Offset < 0 {
		query.Offset = 0
	}

	return uc.planRepo.ListAssignments(ctx, teamID, planID, query)
}

func (uc *PlanUseCase) invalidateTeamPreviews(teamID string) {
	prefix := teamID + "|"
	uc.previewMu.Lock()
	for key := range uc.previewCache {
		if strings.HasPrefix(key, prefix) {
			delete(uc.previewCache, key)
		}
	}
	uc.previewMu.Unlock()
}

// recordEvent пишет событие аудита best-effort: сбой записи логируется
// и не прерывает основную операцию.
func (uc *PlanUseCase) recordEvent(ctx context.Context, event *domain.Event) {
	if err := uc.eventRepo.Insert(ctx, event); err != nil {
		uc.logger.WithFields(logrus.Fields{
			"team_id":    event.TeamID,
			"event_type": event.EventType,
		}).WithError(err).Warn("Failed to record audit event")
	}
}
