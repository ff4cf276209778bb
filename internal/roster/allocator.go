package roster

import (
	"oncall-roster-service/internal/dates"
	"oncall-roster-service/internal/domain"
)

// Result содержит итог одного прохода аллокатора по диапазону дат.
type Result struct {
	Assignments    []domain.DayAssignment
	Counters       []domain.PreviewCounter
	Inequality     domain.PreviewInequality
	UnassignedDays []string
}

// UnavailabilityByDay индексирует отметки недоступности: день → множество
// идентификаторов участников, которые в этот день недоступны.
func UnavailabilityByDay(marks []*domain.Unavailability) map[string]map[string]bool {
	byDay := make(map[string]map[string]bool)
	for _, mark := range marks {
		if byDay[mark.Day] == nil {
			byDay[mark.Day] = make(map[string]bool)
		}
		byDay[mark.Day][mark.MemberID] = true
	}
	return byDay
}

// Allocate раздает дни диапазона [startDate, endDate] по одному участнику
// на день. Для каждого дня выбирается доступный участник с наименьшей
// эффективной нагрузкой, при равенстве берется меньший id, так что повторные
// прогоны по одинаковым входам дают идентичный ростер. День без единого
// доступного участника получает nil и попадает в UnassignedDays, это
// штатный исход, а не ошибка.
//
// Алгоритм жадный и строго последовательный по дням: выбор каждого дня
// зависит от превью-счетчиков, накопленных предыдущими днями прохода.
func Allocate(
	startDate, endDate string,
	members []*domain.Member,
	savedCounts map[string]int,
	unavailableByDay map[string]map[string]bool,
) *Result {
	days := dates.EnumerateDays(startDate, endDate)
	ledger := NewLoadLedger(members, savedCounts)

	assignments := make([]domain.DayAssignment, 0, len(days))
	unassignedDays := make([]string, 0)

	for _, day := range days {
		unavailable := unavailableByDay[day]

		var chosen *domain.Member
		for _, m := range members {
			if unavailable[m.ID] {
				continue
			}
			if chosen == nil {
				chosen = m
				continue
			}
			mCount := ledger.EffectiveCount(m.ID)
			chosenCount := ledger.EffectiveCount(chosen.ID)
			if mCount < chosenCount || (mCount == chosenCount && m.ID < chosen.ID) {
				chosen = m
			}
		}

		if chosen == nil {
			assignments = append(assignments, domain.DayAssignment{Day: day})
			unassignedDays = append(unassignedDays, day)
			continue
		}

		ledger.Assign(chosen.ID)
		memberID := chosen.ID
		assignments = append(assignments, domain.DayAssignment{Day: day, MemberID: &memberID})
	}

	counters := ledger.Counters()

	return &Result{
		Assignments:    assignments,
		Counters:       counters,
		Inequality:     ComputeInequality(counters),
		UnassignedDays: unassignedDays,
	}
}
