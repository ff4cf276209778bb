package roster

import (
	"oncall-roster-service/internal/dates"
	"oncall-roster-service/internal/domain"
)

// ValidateAssignments проверяет предложенный ростер против точного множества
// дней диапазона [startDate, endDate]: то же число дней, без дубликатов,
// без дней за пределами диапазона. Порядок проверок фиксирован, первая
// неудача терминальна.
func ValidateAssignments(startDate, endDate string, assignments []domain.DayAssignment) error {
	days := dates.EnumerateDays(startDate, endDate)
	if len(days) == 0 {
		return domain.ErrInvalidDateRange
	}

	if len(assignments) != len(days) {
		return domain.ErrRosterCoverage
	}

	expected := make(map[string]bool, len(days))
	for _, day := range days {
		expected[day] = true
	}

	seen := make(map[string]bool, len(assignments))
	for _, assignment := range assignments {
		if !expected[assignment.Day] {
			return domain.ErrRosterDayOutOfRange
		}
		if seen[assignment.Day] {
			return domain.ErrRosterDuplicateDay
		}
		seen[assignment.Day] = true
	}

	return nil
}

// ValidateMemberRefs проверяет, что каждое непустое назначение ссылается
// на действующего участника из activeIDs.
func ValidateMemberRefs(assignments []domain.DayAssignment, activeIDs map[string]bool) error {
	for _, assignment := range assignments {
		if assignment.MemberID == nil {
			continue
		}
		if !activeIDs[*assignment.MemberID] {
			return domain.ErrRosterUnknownMember
		}
	}
	return nil
}
