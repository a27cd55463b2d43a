package handler

import (
	"cinema_scheduler/database"
	"cinema_scheduler/model"
	"cinema_scheduler/utils"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type statusCount struct {
	Status string `json:"status"`
	Count  int64  `json:"count"`
}

type dayTypeCount struct {
	DayType string `json:"dayType"`
	Count   int64  `json:"count"`
}

type cinemaCount struct {
	CinemaId uint   `json:"cinemaId"`
	Name     string `json:"name"`
	Count    int64  `json:"count"`
}

// GetSummary returns the dashboard overview: totals plus showtime breakdowns
// by status, day type and cinema, optionally narrowed to a date range.
func GetSummary(c *fiber.Ctx) error {
	db := database.DB

	showtimeQuery := db.Model(&model.Showtime{})
	if from := c.Query("from"); from != "" {
		day, err := time.Parse("2006-01-02", from)
		if err != nil {
			return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, "Invalid from date", err, "from")
		}
		showtimeQuery = showtimeQuery.Where("start_time >= ?", day)
	}
	if to := c.Query("to"); to != "" {
		day, err := time.Parse("2006-01-02", to)
		if err != nil {
			return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, "Invalid to date", err, "to")
		}
		showtimeQuery = showtimeQuery.Where("start_time < ?", day.AddDate(0, 0, 1))
	}

	var totalShowtimes int64
	if err := showtimeQuery.Session(&gorm.Session{}).Count(&totalShowtimes).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Count failed", err)
	}

	var byStatus []statusCount
	showtimeQuery.Session(&gorm.Session{}).
		Select("status, COUNT(*) AS count").Group("status").Scan(&byStatus)

	var byDayType []dayTypeCount
	showtimeQuery.Session(&gorm.Session{}).
		Select("day_type, COUNT(*) AS count").Group("day_type").Scan(&byDayType)

	var byCinema []cinemaCount
	showtimeQuery.Session(&gorm.Session{}).
		Select("showtimes.cinema_id, cinemas.name, COUNT(*) AS count").
		Joins("JOIN cinemas ON cinemas.id = showtimes.cinema_id").
		Group("showtimes.cinema_id, cinemas.name").
		Scan(&byCinema)

	var totalCinemas, totalHalls, totalMovies, activeReleases int64
	db.Model(&model.Cinema{}).Count(&totalCinemas)
	db.Model(&model.Hall{}).Count(&totalHalls)
	db.Model(&model.Movie{}).Count(&totalMovies)
	db.Model(&model.MovieRelease{}).Where("status = ?", model.ReleaseActive).Count(&activeReleases)

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"totalCinemas":      totalCinemas,
		"totalHalls":        totalHalls,
		"totalMovies":       totalMovies,
		"activeReleases":    activeReleases,
		"totalShowtimes":    totalShowtimes,
		"showtimesByStatus": byStatus,
		"showtimesByDay":    byDayType,
		"showtimesByCinema": byCinema,
	})
}
