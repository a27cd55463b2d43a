package helper

import (
	"time"

	"cinema_scheduler/model"
)

// Overlaps reports whether the half-open intervals [aStart, aEnd) and
// [bStart, bEnd) intersect. Back-to-back showtimes do not overlap.
func Overlaps(aStart, aEnd, bStart, bEnd time.Time) bool {
	return aStart.Before(bEnd) && bStart.Before(aEnd)
}

// ResolveConflicts gives every candidate exactly one outcome. The release
// window is checked first; then the candidate is tested against existing
// same-hall showtimes and against the candidates already accepted earlier in
// this batch.
func ResolveConflicts(candidates []model.CandidateShowtime, ctx model.BatchContext) model.BatchResult {
	result := model.BatchResult{
		Accepted:       []model.CandidateShowtime{},
		Rejected:       []model.RejectedShowtime{},
		TotalRequested: len(candidates),
	}

	for _, cand := range candidates {
		if cand.Date.Before(ctx.ReleaseStart) || cand.Date.After(ctx.ReleaseEnd) {
			result.Rejected = append(result.Rejected, model.RejectedShowtime{
				Candidate: cand,
				Reason:    model.RejectOutsideReleaseWindow,
			})
			continue
		}

		if rejected := findOverlap(cand, ctx.Existing, result.Accepted); rejected != nil {
			result.Rejected = append(result.Rejected, *rejected)
			continue
		}

		result.Accepted = append(result.Accepted, cand)
	}
	return result
}

func findOverlap(cand model.CandidateShowtime, existing []model.ExistingShowtime, accepted []model.CandidateShowtime) *model.RejectedShowtime {
	for _, ex := range existing {
		if ex.HallId != cand.HallId {
			continue
		}
		if Overlaps(cand.StartTime, cand.EndTime, ex.StartTime, ex.EndTime) {
			id := ex.ShowtimeId
			return &model.RejectedShowtime{
				Candidate:             cand,
				Reason:                model.RejectHallTimeOverlap,
				ConflictingShowtimeId: &id,
			}
		}
	}
	for _, acc := range accepted {
		if Overlaps(cand.StartTime, cand.EndTime, acc.StartTime, acc.EndTime) {
			return &model.RejectedShowtime{
				Candidate: cand,
				Reason:    model.RejectHallTimeOverlap,
			}
		}
	}
	return nil
}
