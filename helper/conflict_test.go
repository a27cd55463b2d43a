package helper

import (
	"testing"
	"time"

	"cinema_scheduler/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func at(y int, m time.Month, d, hour, min int) time.Time {
	return time.Date(y, m, d, hour, min, 0, 0, time.UTC)
}

func candidate(d time.Time, startHour, startMin, blockMinutes int, hallId uint) model.CandidateShowtime {
	start := time.Date(d.Year(), d.Month(), d.Day(), startHour, startMin, 0, 0, time.UTC)
	return model.CandidateShowtime{
		Date:      d,
		StartTime: start,
		EndTime:   start.Add(time.Duration(blockMinutes) * time.Minute),
		HallId:    hallId,
	}
}

func TestOverlapsHalfOpen(t *testing.T) {
	// Back-to-back is not a conflict: [10:00,12:00) then [12:00,14:00).
	assert.False(t, Overlaps(
		at(2025, 1, 6, 10, 0), at(2025, 1, 6, 12, 0),
		at(2025, 1, 6, 12, 0), at(2025, 1, 6, 14, 0)))

	// One minute of overlap is.
	assert.True(t, Overlaps(
		at(2025, 1, 6, 10, 0), at(2025, 1, 6, 12, 1),
		at(2025, 1, 6, 12, 0), at(2025, 1, 6, 14, 0)))

	// Containment.
	assert.True(t, Overlaps(
		at(2025, 1, 6, 10, 0), at(2025, 1, 6, 14, 0),
		at(2025, 1, 6, 11, 0), at(2025, 1, 6, 12, 0)))
}

func TestResolveConflictsAgainstExisting(t *testing.T) {
	ctx := testContext()
	ctx.Existing = []model.ExistingShowtime{
		{ShowtimeId: 42, HallId: 7, StartTime: at(2025, 1, 6, 18, 0), EndTime: at(2025, 1, 6, 20, 0)},
	}

	candidates := []model.CandidateShowtime{
		candidate(day(2025, 1, 6), 19, 0, 135, 7), // overlaps showtime 42
		candidate(day(2025, 1, 6), 20, 0, 135, 7), // back-to-back, fine
	}

	result := ResolveConflicts(candidates, ctx)
	require.Len(t, result.Accepted, 1)
	require.Len(t, result.Rejected, 1)
	assert.Equal(t, 2, result.TotalRequested)

	rejected := result.Rejected[0]
	assert.Equal(t, model.RejectHallTimeOverlap, rejected.Reason)
	require.NotNil(t, rejected.ConflictingShowtimeId)
	assert.Equal(t, uint(42), *rejected.ConflictingShowtimeId)

	assert.Equal(t, at(2025, 1, 6, 20, 0), result.Accepted[0].StartTime)
}

func TestResolveConflictsIgnoresOtherHalls(t *testing.T) {
	ctx := testContext()
	ctx.Existing = []model.ExistingShowtime{
		{ShowtimeId: 42, HallId: 3, StartTime: at(2025, 1, 6, 18, 0), EndTime: at(2025, 1, 6, 20, 0)},
	}

	result := ResolveConflicts([]model.CandidateShowtime{
		candidate(day(2025, 1, 6), 19, 0, 135, 7),
	}, ctx)

	assert.Len(t, result.Accepted, 1)
	assert.Empty(t, result.Rejected)
}

func TestResolveConflictsWithinBatch(t *testing.T) {
	// 135 min block: 18:00 runs to 20:15, so a 19:00 start collides with it.
	candidates := []model.CandidateShowtime{
		candidate(day(2025, 1, 6), 18, 0, 135, 7),
		candidate(day(2025, 1, 6), 19, 0, 135, 7),
	}

	result := ResolveConflicts(candidates, testContext())
	require.Len(t, result.Accepted, 1)
	require.Len(t, result.Rejected, 1)

	// Earlier candidate wins; the in-batch loser has no persisted id to blame.
	assert.Equal(t, at(2025, 1, 6, 18, 0), result.Accepted[0].StartTime)
	assert.Equal(t, model.RejectHallTimeOverlap, result.Rejected[0].Reason)
	assert.Nil(t, result.Rejected[0].ConflictingShowtimeId)
}

func TestResolveConflictsReleaseWindow(t *testing.T) {
	ctx := testContext()
	ctx.ReleaseStart = day(2025, 1, 10)
	ctx.ReleaseEnd = day(2025, 1, 20)

	candidates := []model.CandidateShowtime{
		candidate(day(2025, 1, 9), 19, 0, 135, 7),  // day before window
		candidate(day(2025, 1, 10), 19, 0, 135, 7), // first day, inclusive
		candidate(day(2025, 1, 20), 19, 0, 135, 7), // last day, inclusive
		candidate(day(2025, 1, 21), 19, 0, 135, 7), // day after window
	}

	result := ResolveConflicts(candidates, ctx)
	require.Len(t, result.Accepted, 2)
	require.Len(t, result.Rejected, 2)

	for _, rejected := range result.Rejected {
		assert.Equal(t, model.RejectOutsideReleaseWindow, rejected.Reason)
		assert.Nil(t, rejected.ConflictingShowtimeId)
	}
}

func TestResolveConflictsReleaseWindowCheckedFirst(t *testing.T) {
	ctx := testContext()
	ctx.ReleaseStart = day(2025, 2, 1)
	ctx.ReleaseEnd = day(2025, 2, 28)
	ctx.Existing = []model.ExistingShowtime{
		{ShowtimeId: 42, HallId: 7, StartTime: at(2025, 1, 6, 18, 0), EndTime: at(2025, 1, 6, 21, 0)},
	}

	// Both outside the window and overlapping: window reason wins.
	result := ResolveConflicts([]model.CandidateShowtime{
		candidate(day(2025, 1, 6), 19, 0, 135, 7),
	}, ctx)

	require.Len(t, result.Rejected, 1)
	assert.Equal(t, model.RejectOutsideReleaseWindow, result.Rejected[0].Reason)
}

func TestResolveConflictsEmptyInput(t *testing.T) {
	result := ResolveConflicts(nil, testContext())
	assert.NotNil(t, result.Accepted)
	assert.NotNil(t, result.Rejected)
	assert.Empty(t, result.Accepted)
	assert.Empty(t, result.Rejected)
	assert.Zero(t, result.TotalRequested)
}
