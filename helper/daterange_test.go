package helper

import (
	"testing"
	"time"

	"cinema_scheduler/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestExpandDateRangeDaily(t *testing.T) {
	dates, err := ExpandDateRange(day(2025, 1, 1), day(2025, 1, 3), model.RepeatDaily, nil)
	require.NoError(t, err)
	assert.Equal(t, []time.Time{day(2025, 1, 1), day(2025, 1, 2), day(2025, 1, 3)}, dates)
}

func TestExpandDateRangeSingleDay(t *testing.T) {
	dates, err := ExpandDateRange(day(2025, 1, 1), day(2025, 1, 1), model.RepeatDaily, nil)
	require.NoError(t, err)
	assert.Equal(t, []time.Time{day(2025, 1, 1)}, dates)
}

func TestExpandDateRangeWeeklyAnchorsOnStartWeekday(t *testing.T) {
	// 2025-01-01 is a Wednesday.
	dates, err := ExpandDateRange(day(2025, 1, 1), day(2025, 1, 15), model.RepeatWeekly, nil)
	require.NoError(t, err)
	assert.Equal(t, []time.Time{day(2025, 1, 1), day(2025, 1, 8), day(2025, 1, 15)}, dates)
}

func TestExpandDateRangeWeeklyShortRange(t *testing.T) {
	dates, err := ExpandDateRange(day(2025, 1, 1), day(2025, 1, 7), model.RepeatWeekly, nil)
	require.NoError(t, err)
	assert.Equal(t, []time.Time{day(2025, 1, 1)}, dates)
}

func TestExpandDateRangeCustomWeekdays(t *testing.T) {
	// 2025-01-01 Wed .. 2025-01-12 Sun, Mondays and Fridays only.
	dates, err := ExpandDateRange(day(2025, 1, 1), day(2025, 1, 12), model.RepeatCustomWeekdays,
		[]time.Weekday{time.Monday, time.Friday})
	require.NoError(t, err)
	assert.Equal(t, []time.Time{day(2025, 1, 3), day(2025, 1, 6), day(2025, 1, 10)}, dates)
}

func TestExpandDateRangeEmptyMatchIsValid(t *testing.T) {
	// Wed..Fri with only Mondays selected matches nothing.
	dates, err := ExpandDateRange(day(2025, 1, 1), day(2025, 1, 3), model.RepeatCustomWeekdays,
		[]time.Weekday{time.Monday})
	require.NoError(t, err)
	assert.Empty(t, dates)
}

func TestExpandDateRangeStartAfterEnd(t *testing.T) {
	_, err := ExpandDateRange(day(2025, 1, 10), day(2025, 1, 1), model.RepeatDaily, nil)
	require.ErrorIs(t, err, model.ErrInvalidRange)
}

func TestExpandDateRangeCustomWithoutWeekdays(t *testing.T) {
	_, err := ExpandDateRange(day(2025, 1, 1), day(2025, 1, 10), model.RepeatCustomWeekdays, nil)
	require.ErrorIs(t, err, model.ErrMissingWeekdaySelection)
}
