package helper

import (
	"time"

	"cinema_scheduler/model"
)

// MaterializeShowtimes builds the cross product of dates x slots into
// candidate showtimes. Output order is part of the contract: dates ascending
// in the outer loop, slots ascending in the inner loop.
func MaterializeShowtimes(req model.ScheduleRequest, dates []time.Time, slots []int, ctx model.BatchContext) []model.CandidateShowtime {
	blockMinutes := ctx.RuntimeMinutes + ctx.CleanupBufferMinutes

	candidates := make([]model.CandidateShowtime, 0, len(dates)*len(slots))
	for _, date := range dates {
		dayType := ClassifyDay(date, ctx.Holidays)
		for _, slot := range slots {
			start := time.Date(date.Year(), date.Month(), date.Day(), slot/60, slot%60, 0, 0, ctx.Location)
			candidates = append(candidates, model.CandidateShowtime{
				Date:      date,
				StartTime: start,
				EndTime:   start.Add(time.Duration(blockMinutes) * time.Minute),
				DayType:   dayType,
				HallId:    req.HallId,
				Format:    req.Format,
				Language:  req.Language,
				Subtitles: req.Subtitles,
			})
		}
	}
	return candidates
}
