package roster_test

import (
	"testing"

	"oncall-roster-service/internal/domain"
	"oncall-roster-service/internal/roster"

	"github.com/stretchr/testify/assert"
)

func member(id, name string, initial int) *domain.Member {
	return &domain.Member{
		ID:                 id,
		TeamID:             "team-1",
		DisplayName:        name,
		InitialOnCallCount: initial,
		IsActive:           true,
	}
}

func assignedIDs(assignments []domain.DayAssignment) []string {
	ids := make([]string, len(assignments))
	for i, a := range assignments {
		if a.MemberID != nil {
			ids[i] = *a.MemberID
		}
	}
	return ids
}

func TestAllocate_AlternatesEqualMembers(t *testing.T) {
	members := []*domain.Member{
		member("m-a", "Alice", 0),
		member("m-b", "Bob", 0),
	}

	result := roster.Allocate("2024-03-01", "2024-03-07", members, nil, nil)

	// Семь дней на двоих: при равных счетчиках каждый день выигрывает
	// участник с меньшим id, после чего его нагрузка растет и ход
	// переходит ко второму.
	assert.Equal(t,
		[]string{"m-a", "m-b", "m-a", "m-b", "m-a", "m-b", "m-a"},
		assignedIDs(result.Assignments))
	assert.Empty(t, result.UnassignedDays)

	assert.Equal(t, 0, result.Inequality.Historical)
	assert.Equal(t, 1, result.Inequality.Preview)
}

func TestAllocate_Deterministic(t *testing.T) {
	members := []*domain.Member{
		member("m-c", "Carol", 1),
		member("m-a", "Alice", 0),
		member("m-b", "Bob", 0),
	}
	saved := map[string]int{"m-a": 2, "m-b": 1}
	unavailable := roster.UnavailabilityByDay([]*domain.Unavailability{
		{MemberID: "m-b", Day: "2024-03-03"},
	})

	first := roster.Allocate("2024-03-01", "2024-03-10", members, saved, unavailable)
	second := roster.Allocate("2024-03-01", "2024-03-10", members, saved, unavailable)

	assert.Equal(t, first.Assignments, second.Assignments)
	assert.Equal(t, first.Counters, second.Counters)
	assert.Equal(t, first.Inequality, second.Inequality)
}

func TestAllocate_PrefersSmallestEffectiveCount(t *testing.T) {
	members := []*domain.Member{
		member("m-a", "Alice", 0),
		member("m-b", "Bob", 0),
	}
	// Алиса уже отдежурила три дня в сохраненной истории
	saved := map[string]int{"m-a": 3}

	result := roster.Allocate("2024-03-01", "2024-03-03", members, saved, nil)

	assert.Equal(t, []string{"m-b", "m-b", "m-b"}, assignedIDs(result.Assignments))
	assert.Equal(t, 3, result.Inequality.Historical)
	assert.Equal(t, 0, result.Inequality.Preview)
}

func TestAllocate_InitialCountShieldsNewcomer(t *testing.T) {
	members := []*domain.Member{
		member("m-new", "Newbie", 5),
		member("m-old", "Veteran", 0),
	}
	saved := map[string]int{"m-old": 5}

	result := roster.Allocate("2024-03-01", "2024-03-04", members, saved, nil)

	// Эффективные нагрузки равны (5 и 5), дальше обычное чередование по id
	assert.Equal(t, []string{"m-new", "m-old", "m-new", "m-old"}, assignedIDs(result.Assignments))
}

func TestAllocate_SkipsUnavailableMembers(t *testing.T) {
	members := []*domain.Member{
		member("m-a", "Alice", 0),
		member("m-b", "Bob", 0),
	}
	unavailable := roster.UnavailabilityByDay([]*domain.Unavailability{
		{MemberID: "m-a", Day: "2024-03-01"},
		{MemberID: "m-a", Day: "2024-03-02"},
	})

	result := roster.Allocate("2024-03-01", "2024-03-03", members, nil, unavailable)

	assert.Equal(t, []string{"m-b", "m-b", "m-a"}, assignedIDs(result.Assignments))
	assert.Empty(t, result.UnassignedDays)
}

func TestAllocate_FullyUnavailableDayStaysUnassigned(t *testing.T) {
	members := []*domain.Member{
		member("m-a", "Alice", 0),
		member("m-b", "Bob", 0),
	}
	unavailable := roster.UnavailabilityByDay([]*domain.Unavailability{
		{MemberID: "m-a", Day: "2024-03-02"},
		{MemberID: "m-b", Day: "2024-03-02"},
	})

	result := roster.Allocate("2024-03-01", "2024-03-03", members, nil, unavailable)

	assert.Len(t, result.Assignments, 3)
	assert.Nil(t, result.Assignments[1].MemberID)
	assert.Equal(t, []string{"2024-03-02"}, result.UnassignedDays)

	// Незакрытый день не засчитывается никому
	for _, c := range result.Counters {
		assert.Equal(t, 1, c.PreviewCount)
	}
}

func TestAllocate_NoMembers(t *testing.T) {
	result := roster.Allocate("2024-03-01", "2024-03-03", nil, nil, nil)

	assert.Len(t, result.Assignments, 3)
	assert.Len(t, result.UnassignedDays, 3)
	assert.Empty(t, result.Counters)
	assert.Equal(t, domain.PreviewInequality{}, result.Inequality)
}

func TestAllocate_CounterIdentity(t *testing.T) {
	members := []*domain.Member{
		member("m-a", "Alice", 2),
		member("m-b", "Bob", 0),
		member("m-c", "Carol", 1),
	}
	saved := map[string]int{"m-a": 1, "m-c": 4}

	result := roster.Allocate("2024-03-01", "2024-03-14", members, saved, nil)

	totalPreview := 0
	for _, c := range result.Counters {
		assert.Equal(t, c.InitialCount+c.SavedCount+c.PreviewCount, c.EffectiveCount)
		totalPreview += c.PreviewCount
	}
	assert.Equal(t, 14, totalPreview)

	// Счетчики упорядочены по id участника
	assert.Equal(t, "m-a", result.Counters[0].MemberID)
	assert.Equal(t, "m-b", result.Counters[1].MemberID)
	assert.Equal(t, "m-c", result.Counters[2].MemberID)
}
