package handler

import (
	"testing"
	"time"

	"cinema_scheduler/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func showtimeAt(movieId uint, title string, start time.Time, dayType model.DayType) model.Showtime {
	return model.Showtime{
		StartTime: start,
		EndTime:   start.Add(2 * time.Hour),
		DayType:   dayType,
		MovieId:   movieId,
		Movie:     model.Movie{Title: title},
	}
}

func TestGroupShowtimesByMovie(t *testing.T) {
	showtimes := []model.Showtime{
		showtimeAt(2, "Mai", time.Date(2025, 1, 7, 19, 0, 0, 0, time.UTC), model.DayTypeWeekday),
		showtimeAt(1, "Dune", time.Date(2025, 1, 6, 21, 0, 0, 0, time.UTC), model.DayTypeWeekday),
		showtimeAt(1, "Dune", time.Date(2025, 1, 6, 10, 0, 0, 0, time.UTC), model.DayTypeWeekday),
		showtimeAt(1, "Dune", time.Date(2025, 1, 11, 19, 0, 0, 0, time.UTC), model.DayTypeWeekend),
	}

	groups := GroupShowtimesByMovie(showtimes)
	require.Len(t, groups, 2)

	// Movies sorted by title.
	assert.Equal(t, "Dune", groups[0].Title)
	assert.Equal(t, "Mai", groups[1].Title)

	dune := groups[0]
	require.Len(t, dune.Days, 2)
	assert.Equal(t, "2025-01-06", dune.Days[0].Date)
	assert.Equal(t, "2025-01-11", dune.Days[1].Date)
	assert.Equal(t, model.DayTypeWeekend, dune.Days[1].DayType)

	// Within a day, showtimes ascend by start time.
	monday := dune.Days[0]
	require.Len(t, monday.Showtimes, 2)
	assert.True(t, monday.Showtimes[0].StartTime.Before(monday.Showtimes[1].StartTime))
}

func TestGroupShowtimesByMovieEmpty(t *testing.T) {
	groups := GroupShowtimesByMovie(nil)
	assert.NotNil(t, groups)
	assert.Empty(t, groups)
}
