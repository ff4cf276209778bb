package roster

import (
	"sort"

	"oncall-roster-service/internal/domain"
)

// LoadLedger ведет счетчики нагрузки участников в рамках одного прохода
// аллокатора. SavedCount фиксируется один раз при создании и в течение
// прохода не меняется; PreviewCount растет по мере раздачи дней.
// Эффективная нагрузка всегда вычисляется, а не хранится.
type LoadLedger struct {
	members  []*domain.Member
	saved    map[string]int
	preview  map[string]int
	initials map[string]int
	names    map[string]string
}

// NewLoadLedger создает леджер для прохода по команде.
// savedCounts содержит снимок сохраненной истории на момент старта прохода.
func NewLoadLedger(members []*domain.Member, savedCounts map[string]int) *LoadLedger {
	l := &LoadLedger{
		members:  members,
		saved:    make(map[string]int, len(members)),
		preview:  make(map[string]int, len(members)),
		initials: make(map[string]int, len(members)),
		names:    make(map[string]string, len(members)),
	}
	for _, m := range members {
		l.saved[m.ID] = savedCounts[m.ID]
		l.initials[m.ID] = m.InitialOnCallCount
		l.names[m.ID] = m.DisplayName
	}
	return l
}

// EffectiveCount возвращает текущую эффективную нагрузку участника:
// initial + saved + preview.
func (l *LoadLedger) EffectiveCount(memberID string) int {
	return l.initials[memberID] + l.saved[memberID] + l.preview[memberID]
}

// Assign засчитывает участнику один день превью.
func (l *LoadLedger) Assign(memberID string) {
	l.preview[memberID]++
}

// Counters возвращает счетчики всех участников, упорядоченные по id.
func (l *LoadLedger) Counters() []domain.PreviewCounter {
	counters := make([]domain.PreviewCounter, 0, len(l.members))
	for _, m := range l.members {
		counters = append(counters, domain.PreviewCounter{
			MemberID:       m.ID,
			DisplayName:    m.DisplayName,
			InitialCount:   m.InitialOnCallCount,
			SavedCount:     l.saved[m.ID],
			PreviewCount:   l.preview[m.ID],
			EffectiveCount: l.EffectiveCount(m.ID),
		})
	}
	sort.Slice(counters, func(i, j int) bool {
		return counters[i].MemberID < counters[j].MemberID
	})
	return counters
}
