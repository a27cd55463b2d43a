package helper

import (
	"testing"
	"time"

	"cinema_scheduler/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testContext() model.BatchContext {
	return model.BatchContext{
		RuntimeMinutes:       120,
		CleanupBufferMinutes: 15,
		ReleaseStart:         day(2025, 1, 1),
		ReleaseEnd:           day(2025, 12, 31),
		Location:             time.UTC,
	}
}

func testRequest() model.ScheduleRequest {
	return model.ScheduleRequest{
		MovieId:        1,
		MovieReleaseId: 1,
		CinemaId:       1,
		HallId:         7,
		Format:         "2D",
		Language:       "EN",
		Subtitles:      []string{"VI"},
	}
}

func TestMaterializeShowtimesEndTime(t *testing.T) {
	candidates := MaterializeShowtimes(testRequest(), []time.Time{day(2025, 1, 6)}, []int{19 * 60}, testContext())
	require.Len(t, candidates, 1)

	cand := candidates[0]
	assert.Equal(t, time.Date(2025, 1, 6, 19, 0, 0, 0, time.UTC), cand.StartTime)
	// 120 min runtime + 15 min cleanup.
	assert.Equal(t, time.Date(2025, 1, 6, 21, 15, 0, 0, time.UTC), cand.EndTime)
	assert.Equal(t, uint(7), cand.HallId)
	assert.Equal(t, "2D", cand.Format)
}

func TestMaterializeShowtimesOrdering(t *testing.T) {
	dates := []time.Time{day(2025, 1, 6), day(2025, 1, 7)}
	slots := []int{10 * 60, 19 * 60}

	candidates := MaterializeShowtimes(testRequest(), dates, slots, testContext())
	require.Len(t, candidates, 4)

	// Dates outer ascending, slots inner ascending.
	assert.Equal(t, time.Date(2025, 1, 6, 10, 0, 0, 0, time.UTC), candidates[0].StartTime)
	assert.Equal(t, time.Date(2025, 1, 6, 19, 0, 0, 0, time.UTC), candidates[1].StartTime)
	assert.Equal(t, time.Date(2025, 1, 7, 10, 0, 0, 0, time.UTC), candidates[2].StartTime)
	assert.Equal(t, time.Date(2025, 1, 7, 19, 0, 0, 0, time.UTC), candidates[3].StartTime)

	for i := 1; i < len(candidates); i++ {
		assert.True(t, candidates[i-1].StartTime.Before(candidates[i].StartTime))
	}
}

func TestMaterializeShowtimesStampsDayType(t *testing.T) {
	ctx := testContext()
	ctx.Holidays = model.NewHolidayCalendar([]model.Holiday{
		{Name: "Tết Dương Lịch", Date: day(2025, 1, 1), IsRecurring: true},
	})

	// Wed 2025-01-01 (holiday), Sat 2025-01-04, Mon 2025-01-06.
	dates := []time.Time{day(2025, 1, 1), day(2025, 1, 4), day(2025, 1, 6)}
	candidates := MaterializeShowtimes(testRequest(), dates, []int{19 * 60}, ctx)
	require.Len(t, candidates, 3)

	assert.Equal(t, model.DayTypeHoliday, candidates[0].DayType)
	assert.Equal(t, model.DayTypeWeekend, candidates[1].DayType)
	assert.Equal(t, model.DayTypeWeekday, candidates[2].DayType)
}

func TestMaterializeShowtimesEmptyInputs(t *testing.T) {
	assert.Empty(t, MaterializeShowtimes(testRequest(), nil, []int{19 * 60}, testContext()))
	assert.Empty(t, MaterializeShowtimes(testRequest(), []time.Time{day(2025, 1, 6)}, nil, testContext()))
}
