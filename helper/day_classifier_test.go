package helper

import (
	"testing"
	"time"

	"cinema_scheduler/model"

	"github.com/stretchr/testify/assert"
)

func TestClassifyDay(t *testing.T) {
	cal := model.NewHolidayCalendar([]model.Holiday{
		{Name: "Tết Dương Lịch", Date: day(2025, 1, 1), IsRecurring: true},
		{Name: "One-off closure", Date: day(2025, 1, 4), IsRecurring: false}, // a Saturday
	})

	tests := []struct {
		name string
		date time.Time
		want model.DayType
	}{
		{"regular wednesday", day(2025, 1, 8), model.DayTypeWeekday},
		{"saturday", day(2025, 1, 11), model.DayTypeWeekend},
		{"sunday", day(2025, 1, 12), model.DayTypeWeekend},
		{"holiday on a weekday", day(2025, 1, 1), model.DayTypeHoliday},
		{"holiday wins over weekend", day(2025, 1, 4), model.DayTypeHoliday},
		{"recurring holiday next year", day(2026, 1, 1), model.DayTypeHoliday},
		{"one-off does not recur", day(2026, 1, 4), model.DayTypeWeekend},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ClassifyDay(tt.date, cal))
		})
	}
}

func TestClassifyDayNilCalendar(t *testing.T) {
	assert.Equal(t, model.DayTypeWeekday, ClassifyDay(day(2025, 1, 8), nil))
	assert.Equal(t, model.DayTypeWeekend, ClassifyDay(day(2025, 1, 11), nil))
}
