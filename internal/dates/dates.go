package dates

import (
	"errors"
	"time"
)

// Layout определяет формат календарной даты во всей системе.
// Все даты интерпретируются строго в UTC.
const Layout = "2006-01-02"

// MaxRangeDays ограничивает длину диапазона плана.
const MaxRangeDays = 365

var ErrInvalidDate = errors.New("invalid calendar date")

// Parse разбирает строку YYYY-MM-DD в полночь UTC.
func Parse(value string) (time.Time, error) {
	if len(value) != len(Layout) {
		return time.Time{}, ErrInvalidDate
	}
	t, err := time.ParseInLocation(Layout, value, time.UTC)
	if err != nil {
		return time.Time{}, ErrInvalidDate
	}
	return t, nil
}

// IsValid проверяет, что строка является реальной календарной датой
// (например, 30 февраля отклоняется).
func IsValid(value string) bool {
	_, err := Parse(value)
	return err == nil
}

// Format приводит момент времени к строке YYYY-MM-DD в UTC.
func Format(t time.Time) string {
	return t.UTC().Format(Layout)
}

// DiffDaysInclusive возвращает количество дней диапазона, включая обе границы.
// Возвращает ошибку, если любая из дат невалидна или start позже end.
func DiffDaysInclusive(start, end string) (int, error) {
	startT, err := Parse(start)
	if err != nil {
		return 0, err
	}
	endT, err := Parse(end)
	if err != nil {
		return 0, err
	}
	if startT.After(endT) {
		return 0, ErrInvalidDate
	}
	return int(endT.Sub(startT).Hours()/24) + 1, nil
}

// EnumerateDays перечисляет каждый день диапазона [start, end] по порядку.
// Для невалидного диапазона возвращает пустой срез.
func EnumerateDays(start, end string) []string {
	count, err := DiffDaysInclusive(start, end)
	if err != nil {
		return nil
	}

	startT, _ := Parse(start)
	days := make([]string, 0, count)
	for i := 0; i < count; i++ {
		days = append(days, Format(startT.AddDate(0, 0, i)))
	}
	return days
}

// AddDays сдвигает дату на n календарных дней (n может быть отрицательным).
func AddDays(value string, n int) (string, error) {
	t, err := Parse(value)
	if err != nil {
		return "", err
	}
	return Format(t.AddDate(0, 0, n)), nil
}

// TodayUTC возвращает текущую дату в UTC.
func TodayUTC() string {
	return Format(time.Now())
}

// IsWeekend сообщает, приходится ли день на субботу или воскресенье (UTC).
func IsWeekend(value string) bool {
	t, err := Parse(value)
	if err != nil {
		return false
	}
	wd := t.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}

// IsRangeValid проверяет диапазон целиком: обе даты валидны,
// start не позже end и длина в пределах 1..MaxRangeDays.
func IsRangeValid(start, end string) bool {
	count, err := DiffDaysInclusive(start, end)
	if err != nil {
		return false
	}
	return count >= 1 && count <= MaxRangeDays
}
