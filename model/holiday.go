package model

import "time"

type Holiday struct {
	DTO
	Name        string    `gorm:"size:100;not null" json:"name"`
	Date        time.Time `gorm:"type:date;not null" json:"date"`
	IsRecurring bool      `gorm:"default:true" json:"isRecurring"` // repeats every year on the same month/day
}

type CreateHolidayInput struct {
	Name        string `json:"name" validate:"required,min=2,max=100"`
	Date        string `json:"date" validate:"required,datetime=2006-01-02"`
	IsRecurring *bool  `json:"isRecurring" validate:"omitempty"`
}

type UpdateHolidayInput struct {
	Name        *string `json:"name" validate:"omitempty,min=2,max=100"`
	Date        *string `json:"date" validate:"omitempty,datetime=2006-01-02"`
	IsRecurring *bool   `json:"isRecurring" validate:"omitempty"`
}

type HolidayFilter struct {
	Pagination
	Year *int `query:"year"`
}

// HolidayCalendar is an in-memory view of the holidays table, handed to the
// day classifier so the expansion core never touches the database. A nil
// calendar matches nothing.
type HolidayCalendar struct {
	dates     map[string]bool // "2006-01-02"
	recurring map[string]bool // "01-02"
}

func NewHolidayCalendar(holidays []Holiday) *HolidayCalendar {
	cal := &HolidayCalendar{
		dates:     make(map[string]bool),
		recurring: make(map[string]bool),
	}
	for _, h := range holidays {
		if h.IsRecurring {
			cal.recurring[h.Date.Format("01-02")] = true
		} else {
			cal.dates[h.Date.Format("2006-01-02")] = true
		}
	}
	return cal
}

func (cal *HolidayCalendar) Contains(date time.Time) bool {
	if cal == nil {
		return false
	}
	if cal.dates[date.Format("2006-01-02")] {
		return true
	}
	return cal.recurring[date.Format("01-02")]
}
