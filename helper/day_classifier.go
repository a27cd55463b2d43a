package helper

import (
	"time"

	"cinema_scheduler/database"
	"cinema_scheduler/model"
)

// ClassifyDay maps a calendar date to its day type. Holidays win over
// weekends; Saturday and Sunday are weekend; everything else is weekday.
func ClassifyDay(date time.Time, holidays *model.HolidayCalendar) model.DayType {
	if holidays.Contains(date) {
		return model.DayTypeHoliday
	}
	switch date.Weekday() {
	case time.Saturday, time.Sunday:
		return model.DayTypeWeekend
	}
	return model.DayTypeWeekday
}

// LoadHolidayCalendar reads the holidays overlapping [from, to] plus every
// recurring holiday, regardless of year, into an in-memory calendar.
func LoadHolidayCalendar(from, to time.Time) (*model.HolidayCalendar, error) {
	var holidays []model.Holiday
	err := database.DB.
		Where("is_recurring = true").
		Or("date BETWEEN ? AND ?", from.Format("2006-01-02"), to.Format("2006-01-02")).
		Find(&holidays).Error
	if err != nil {
		return nil, err
	}
	return model.NewHolidayCalendar(holidays), nil
}
