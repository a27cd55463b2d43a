package helper

import (
	"time"

	"cinema_scheduler/model"
)

// ExpandDateRange walks [start, end] day by day and keeps the dates the
// repeat rule selects. WEEKLY anchors on start's weekday. A rule that
// matches nothing is a valid empty result, not an error.
func ExpandDateRange(start, end time.Time, repeat model.RepeatType, weekdays []time.Weekday) ([]time.Time, error) {
	if start.After(end) {
		return nil, model.ErrInvalidRange
	}

	var match func(time.Time) bool
	switch repeat {
	case model.RepeatWeekly:
		anchor := start.Weekday()
		match = func(d time.Time) bool { return d.Weekday() == anchor }
	case model.RepeatCustomWeekdays:
		if len(weekdays) == 0 {
			return nil, model.ErrMissingWeekdaySelection
		}
		selected := make(map[time.Weekday]bool, len(weekdays))
		for _, w := range weekdays {
			selected[w] = true
		}
		match = func(d time.Time) bool { return selected[d.Weekday()] }
	default: // DAILY
		match = func(time.Time) bool { return true }
	}

	var dates []time.Time
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		if match(d) {
			dates = append(dates, d)
		}
	}
	return dates, nil
}
