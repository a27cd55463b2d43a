package helper

import "cinema_scheduler/model"

// ExpandBatch runs the whole expansion pipeline: normalize slots, expand the
// date range, materialize candidates, resolve conflicts. Structural input
// errors abort before any candidate exists; per-candidate conflicts come
// back as data in the result. The call is pure apart from its inputs, so
// identical inputs always produce identical results.
func ExpandBatch(req model.ScheduleRequest, ctx model.BatchContext) (model.BatchResult, error) {
	slots, err := NormalizeTimeSlots(req.TimeSlots)
	if err != nil {
		return model.BatchResult{}, err
	}

	dates, err := ExpandDateRange(req.StartDate, req.EndDate, req.RepeatType, req.Weekdays)
	if err != nil {
		return model.BatchResult{}, err
	}

	candidates := MaterializeShowtimes(req, dates, slots, ctx)
	return ResolveConflicts(candidates, ctx), nil
}
