package model

import "time"

type RepeatType string

const (
	RepeatDaily          RepeatType = "DAILY"
	RepeatWeekly         RepeatType = "WEEKLY"
	RepeatCustomWeekdays RepeatType = "CUSTOM_WEEKDAYS"
)

// BatchCreateShowtimesInput is the wire shape posted by the dashboard's
// batch dialog.
type BatchCreateShowtimesInput struct {
	MovieId        uint       `json:"movieId" validate:"required"`
	MovieReleaseId uint       `json:"movieReleaseId" validate:"required"`
	CinemaId       uint       `json:"cinemaId" validate:"required"`
	HallId         uint       `json:"hallId" validate:"required"`
	StartDate      string     `json:"startDate" validate:"required,datetime=2006-01-02"`
	EndDate        string     `json:"endDate" validate:"required,datetime=2006-01-02"`
	TimeSlots      []string   `json:"timeSlots" validate:"required,min=1,dive,required"` // ["18:30", "20:45"]
	RepeatType     RepeatType `json:"repeatType" validate:"required,oneof=DAILY WEEKLY CUSTOM_WEEKDAYS"`
	Weekdays       []int      `json:"weekdays" validate:"omitempty,dive,min=0,max=6"` // 0 = Sunday
	Format         string     `json:"format" validate:"required,oneof=2D 3D IMAX 4DX"`
	Language       string     `json:"language" validate:"required"`
	Subtitles      []string   `json:"subtitles" validate:"omitempty,dive,required"`
}

// ScheduleRequest is the validated, immutable form of a batch request.
// StartDate and EndDate are midnights in the cinema's location.
type ScheduleRequest struct {
	MovieId        uint
	MovieReleaseId uint
	CinemaId       uint
	HallId         uint
	StartDate      time.Time
	EndDate        time.Time
	TimeSlots      []string
	RepeatType     RepeatType
	Weekdays       []time.Weekday
	Format         string
	Language       string
	Subtitles      []string
}

// ExistingShowtime is the read-only view of a booked hall slot, owned by the
// booking system. Only used for conflict checks.
type ExistingShowtime struct {
	ShowtimeId uint
	HallId     uint
	StartTime  time.Time
	EndTime    time.Time
}

// BatchContext carries every collaborator value the expansion needs, fetched
// up front so the pipeline itself performs no I/O.
type BatchContext struct {
	RuntimeMinutes       int
	CleanupBufferMinutes int
	ReleaseStart         time.Time // midnight in Location, inclusive
	ReleaseEnd           time.Time // midnight in Location, inclusive
	Location             *time.Location
	Existing             []ExistingShowtime
	Holidays             *HolidayCalendar
}

// CandidateShowtime is one provisional (date, slot) showtime. Immutable once
// materialized.
type CandidateShowtime struct {
	Date      time.Time `json:"date"`
	StartTime time.Time `json:"startTime"`
	EndTime   time.Time `json:"endTime"`
	DayType   DayType   `json:"dayType"`
	HallId    uint      `json:"hallId"`
	Format    string    `json:"format"`
	Language  string    `json:"language"`
	Subtitles []string  `json:"subtitles"`
}

type RejectReason string

const (
	RejectHallTimeOverlap      RejectReason = "HALL_TIME_OVERLAP"
	RejectOutsideReleaseWindow RejectReason = "OUTSIDE_RELEASE_WINDOW"
)

type RejectedShowtime struct {
	Candidate CandidateShowtime `json:"candidate"`
	Reason    RejectReason      `json:"reason"`
	// Set when the conflict is against a persisted showtime; nil for
	// release-window rejections and in-batch overlaps.
	ConflictingShowtimeId *uint `json:"conflictingShowtimeId,omitempty"`
}

type BatchResult struct {
	Accepted       []CandidateShowtime `json:"accepted"`
	Rejected       []RejectedShowtime  `json:"rejected"`
	TotalRequested int                 `json:"totalRequested"`
}
