package model

import "errors"

// Fatal request errors. Any of these aborts batch expansion before a single
// candidate is generated.
var (
	ErrInvalidTimeSlot         = errors.New("invalid time slot")
	ErrInvalidRange            = errors.New("start date is after end date")
	ErrMissingWeekdaySelection = errors.New("custom weekday repeat requires at least one weekday")
)
