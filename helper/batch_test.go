package helper

import (
	"testing"
	"time"

	"cinema_scheduler/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func batchRequest() model.ScheduleRequest {
	req := testRequest()
	req.StartDate = day(2025, 1, 6) // Monday
	req.EndDate = day(2025, 1, 8)
	req.TimeSlots = []string{"19:00", "10:00"}
	req.RepeatType = model.RepeatDaily
	return req
}

func TestExpandBatch(t *testing.T) {
	result, err := ExpandBatch(batchRequest(), testContext())
	require.NoError(t, err)

	// 3 days x 2 slots.
	assert.Equal(t, 6, result.TotalRequested)
	require.Len(t, result.Accepted, 6)
	assert.Empty(t, result.Rejected)

	// Slots were normalized ascending before materialization.
	assert.Equal(t, time.Date(2025, 1, 6, 10, 0, 0, 0, time.UTC), result.Accepted[0].StartTime)
	assert.Equal(t, time.Date(2025, 1, 6, 19, 0, 0, 0, time.UTC), result.Accepted[1].StartTime)
	assert.Equal(t, time.Date(2025, 1, 8, 19, 0, 0, 0, time.UTC), result.Accepted[5].StartTime)
}

func TestExpandBatchDeterministic(t *testing.T) {
	first, err := ExpandBatch(batchRequest(), testContext())
	require.NoError(t, err)
	second, err := ExpandBatch(batchRequest(), testContext())
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestExpandBatchSkipsConflictsAndKeepsRest(t *testing.T) {
	ctx := testContext()
	ctx.Existing = []model.ExistingShowtime{
		{ShowtimeId: 42, HallId: 7, StartTime: at(2025, 1, 7, 18, 0), EndTime: at(2025, 1, 7, 21, 0)},
	}

	result, err := ExpandBatch(batchRequest(), ctx)
	require.NoError(t, err)

	assert.Equal(t, 6, result.TotalRequested)
	assert.Len(t, result.Accepted, 5)
	require.Len(t, result.Rejected, 1)
	assert.Equal(t, model.RejectHallTimeOverlap, result.Rejected[0].Reason)
	assert.Equal(t, time.Date(2025, 1, 7, 19, 0, 0, 0, time.UTC), result.Rejected[0].Candidate.StartTime)
}

func TestExpandBatchInvalidSlotIsFatal(t *testing.T) {
	req := batchRequest()
	req.TimeSlots = []string{"19:00", "25:00"}

	result, err := ExpandBatch(req, testContext())
	require.ErrorIs(t, err, model.ErrInvalidTimeSlot)
	assert.Zero(t, result.TotalRequested)
	assert.Empty(t, result.Accepted)
}

func TestExpandBatchInvalidRangeIsFatal(t *testing.T) {
	req := batchRequest()
	req.StartDate = day(2025, 1, 10)
	req.EndDate = day(2025, 1, 6)

	_, err := ExpandBatch(req, testContext())
	require.ErrorIs(t, err, model.ErrInvalidRange)
}

func TestExpandBatchCustomWeekdaysNeedsSelection(t *testing.T) {
	req := batchRequest()
	req.RepeatType = model.RepeatCustomWeekdays
	req.Weekdays = nil

	_, err := ExpandBatch(req, testContext())
	require.ErrorIs(t, err, model.ErrMissingWeekdaySelection)
}

func TestExpandBatchCustomWeekdays(t *testing.T) {
	req := batchRequest()
	req.EndDate = day(2025, 1, 12) // Mon 6th .. Sun 12th
	req.RepeatType = model.RepeatCustomWeekdays
	req.Weekdays = []time.Weekday{time.Saturday, time.Sunday}

	result, err := ExpandBatch(req, testContext())
	require.NoError(t, err)

	// Sat 11th and Sun 12th, two slots each.
	assert.Equal(t, 4, result.TotalRequested)
	require.Len(t, result.Accepted, 4)
	for _, cand := range result.Accepted {
		assert.Equal(t, model.DayTypeWeekend, cand.DayType)
	}
}

func TestExpandBatchEmptyScheduleIsValid(t *testing.T) {
	req := batchRequest()
	req.StartDate = day(2025, 1, 7) // Tue..Thu, Mondays only
	req.EndDate = day(2025, 1, 9)
	req.RepeatType = model.RepeatCustomWeekdays
	req.Weekdays = []time.Weekday{time.Monday}

	result, err := ExpandBatch(req, testContext())
	require.NoError(t, err)
	assert.Zero(t, result.TotalRequested)
	assert.Empty(t, result.Accepted)
	assert.Empty(t, result.Rejected)
}
