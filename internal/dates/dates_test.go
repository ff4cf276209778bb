package dates_test

import (
	"testing"

	"oncall-roster-service/internal/dates"

	"github.com/stretchr/testify/assert"
)

func TestParse_RejectsNonCalendarDates(t *testing.T) {
	testCases := []struct {
		name  string
		value string
	}{
		{name: "February 30", value: "2024-02-30"},
		{name: "Month 13", value: "2024-13-01"},
		{name: "Day zero", value: "2024-01-00"},
		{name: "Missing leading zeros", value: "2024-1-5"},
		{name: "Empty string", value: ""},
		{name: "Timestamp instead of date", value: "2024-01-05T00:00:00Z"},
		{name: "Garbage", value: "not-a-date"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := dates.Parse(tc.value)
			assert.ErrorIs(t, err, dates.ErrInvalidDate)
			assert.False(t, dates.IsValid(tc.value))
		})
	}
}

func TestParse_AcceptsLeapDay(t *testing.T) {
	parsed, err := dates.Parse("2024-02-29")
	assert.NoError(t, err)
	assert.Equal(t, "2024-02-29", dates.Format(parsed))

	// 2023 не високосный
	assert.False(t, dates.IsValid("2023-02-29"))
}

func TestDiffDaysInclusive(t *testing.T) {
	testCases := []struct {
		name     string
		start    string
		end      string
		expected int
	}{
		{name: "Single day", start: "2024-03-01", end: "2024-03-01", expected: 1},
		{name: "One week", start: "2024-03-01", end: "2024-03-07", expected: 7},
		{name: "Across leap day", start: "2024-02-28", end: "2024-03-01", expected: 3},
		{name: "Across year boundary", start: "2024-12-30", end: "2025-01-02", expected: 4},
		{name: "Full year", start: "2024-01-01", end: "2024-12-30", expected: 365},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			count, err := dates.DiffDaysInclusive(tc.start, tc.end)
			assert.NoError(t, err)
			assert.Equal(t, tc.expected, count)
		})
	}
}

func TestDiffDaysInclusive_Errors(t *testing.T) {
	_, err := dates.DiffDaysInclusive("2024-03-07", "2024-03-01")
	assert.ErrorIs(t, err, dates.ErrInvalidDate)

	_, err = dates.DiffDaysInclusive("2024-02-30", "2024-03-01")
	assert.ErrorIs(t, err, dates.ErrInvalidDate)
}

func TestEnumerateDays(t *testing.T) {
	days := dates.EnumerateDays("2024-02-28", "2024-03-02")
	assert.Equal(t, []string{"2024-02-28", "2024-02-29", "2024-03-01", "2024-03-02"}, days)

	assert.Empty(t, dates.EnumerateDays("2024-03-02", "2024-02-28"))
	assert.Empty(t, dates.EnumerateDays("bad", "2024-03-02"))
}

func TestAddDays(t *testing.T) {
	next, err := dates.AddDays("2024-02-28", 1)
	assert.NoError(t, err)
	assert.Equal(t, "2024-02-29", next)

	prev, err := dates.AddDays("2025-01-01", -1)
	assert.NoError(t, err)
	assert.Equal(t, "2024-12-31", prev)
}

func TestIsWeekend(t *testing.T) {
	// 2024-03-02 суббота, 2024-03-03 воскресенье, 2024-03-04 понедельник
	assert.True(t, dates.IsWeekend("2024-03-02"))
	assert.True(t, dates.IsWeekend("2024-03-03"))
	assert.False(t, dates.IsWeekend("2024-03-04"))
}

func TestIsRangeValid_Bounds(t *testing.T) {
	// Минимальный диапазон в один день
	assert.True(t, dates.IsRangeValid("2024-03-01", "2024-03-01"))

	// Ровно 365 дней
	assert.True(t, dates.IsRangeValid("2024-01-01", "2024-12-30"))

	// 366 дней уже много
	assert.False(t, dates.IsRangeValid("2024-01-01", "2024-12-31"))

	// Перевернутый и невалидный диапазоны
	assert.False(t, dates.IsRangeValid("2024-03-02", "2024-03-01"))
	assert.False(t, dates.IsRangeValid("2024-02-30", "2024-03-01"))
}
