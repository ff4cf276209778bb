package roster_test

import (
	"testing"

	"oncall-roster-service/internal/domain"
	"oncall-roster-service/internal/roster"

	"github.com/stretchr/testify/assert"
)

func day(d string, memberID string) domain.DayAssignment {
	if memberID == "" {
		return domain.DayAssignment{Day: d}
	}
	return domain.DayAssignment{Day: d, MemberID: &memberID}
}

func TestValidateAssignments_Success(t *testing.T) {
	assignments := []domain.DayAssignment{
		day("2024-03-01", "m-a"),
		day("2024-03-02", ""),
		day("2024-03-03", "m-b"),
	}

	err := roster.ValidateAssignments("2024-03-01", "2024-03-03", assignments)
	assert.NoError(t, err)
}

func TestValidateAssignments_Errors(t *testing.T) {
	testCases := []struct {
		name        string
		start       string
		end         string
		assignments []domain.DayAssignment
		expected    error
	}{
		{
			name:        "Invalid range",
			start:       "2024-03-03",
			end:         "2024-03-01",
			assignments: []domain.DayAssignment{day("2024-03-01", "m-a")},
			expected:    domain.ErrInvalidDateRange,
		},
		{
			name:        "Missing day",
			start:       "2024-03-01",
			end:         "2024-03-03",
			assignments: []domain.DayAssignment{day("2024-03-01", "m-a"), day("2024-03-02", "m-b")},
			expected:    domain.ErrRosterCoverage,
		},
		{
			name:  "Duplicate day",
			start: "2024-03-01",
			end:   "2024-03-03",
			assignments: []domain.DayAssignment{
				day("2024-03-01", "m-a"),
				day("2024-03-02", "m-b"),
				day("2024-03-02", "m-a"),
			},
			expected: domain.ErrRosterDuplicateDay,
		},
		{
			name:  "Day outside range",
			start: "2024-03-01",
			end:   "2024-03-03",
			assignments: []domain.DayAssignment{
				day("2024-03-01", "m-a"),
				day("2024-03-02", "m-b"),
				day("2024-03-04", "m-a"),
			},
			expected: domain.ErrRosterDayOutOfRange,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := roster.ValidateAssignments(tc.start, tc.end, tc.assignments)
			assert.ErrorIs(t, err, tc.expected)
		})
	}
}

func TestValidateMemberRefs(t *testing.T) {
	active := map[string]bool{"m-a": true, "m-b": true}

	assignments := []domain.DayAssignment{
		day("2024-03-01", "m-a"),
		day("2024-03-02", ""),
		day("2024-03-03", "m-b"),
	}
	assert.NoError(t, roster.ValidateMemberRefs(assignments, active))

	withStranger := append(assignments, day("2024-03-04", "m-ghost"))
	assert.ErrorIs(t, roster.ValidateMemberRefs(withStranger, active), domain.ErrRosterUnknownMember)
}

func TestComputeInequality(t *testing.T) {
	counters := []domain.PreviewCounter{
		{MemberID: "m-a", SavedCount: 5, EffectiveCount: 8},
		{MemberID: "m-b", SavedCount: 2, EffectiveCount: 7},
		{MemberID: "m-c", SavedCount: 4, EffectiveCount: 9},
	}

	inequality := roster.ComputeInequality(counters)
	assert.Equal(t, 3, inequality.Historical)
	assert.Equal(t, 2, inequality.Preview)
}

func TestComputeInequality_Empty(t *testing.T) {
	assert.Equal(t, domain.PreviewInequality{}, roster.ComputeInequality(nil))
}
