package validate

import (
	"cinema_scheduler/config"
	"cinema_scheduler/constants"
	"cinema_scheduler/database"
	"cinema_scheduler/model"
	"cinema_scheduler/utils"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
)

func GetShowtimeById(key string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		params := c.Params(key)
		valueKey, err := strconv.Atoi(params)
		if err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.DATA_INPUT_IS_NOT_NUMBER, errors.New("params invalid"))
		}

		var showtime model.Showtime
		if err := database.DB.Where("id = ?", valueKey).First(&showtime).Error; err != nil {
			return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, constants.SHOWTIME_NOT_FOUND, err, "showtimeId")
		}

		c.Locals("showtimeId", uint(valueKey))
		return c.Next()
	}
}

func EditShowtime(key string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		params := c.Params(key)
		valueKey, err := strconv.Atoi(params)
		if err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.DATA_INPUT_IS_NOT_NUMBER, errors.New("params invalid"))
		}

		var input model.UpdateShowtimeInput
		if err := c.BodyParser(&input); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": fmt.Sprintf("Invalid input %s", err.Error()),
			})
		}

		if err := validate.Struct(input); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": err.Error(),
			})
		}

		var showtime model.Showtime
		if err := database.DB.Preload("Movie").Where("id = ?", valueKey).First(&showtime).Error; err != nil {
			return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, constants.SHOWTIME_NOT_FOUND, err, "showtimeId")
		}

		if showtime.Status == model.ShowtimeCancelled {
			return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, "Cancelled showtimes cannot be edited", nil, "status")
		}

		hallId := showtime.HallId
		if input.HallId != nil {
			var hall model.Hall
			if err := database.DB.Where("id = ? AND status = ?", *input.HallId, model.HallActive).First(&hall).Error; err != nil {
				return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, "Hall does not exist or is not active", err, "hallId")
			}
			if hall.CinemaId != showtime.CinemaId {
				return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, "Hall belongs to a different cinema", nil, "hallId")
			}
			hallId = *input.HallId
		}

		startTime := showtime.StartTime
		endTime := showtime.EndTime
		if input.StartTime != nil {
			startTime = *input.StartTime
			endTime = startTime.Add(time.Duration(showtime.Movie.Runtime+config.CleanupBufferMinutes()) * time.Minute)
		}

		// Half-open interval check against every other booked slot in the hall.
		var conflictCount int64
		if err := database.DB.Model(&model.Showtime{}).
			Where("hall_id = ? AND id != ? AND status != ? AND start_time < ? AND ? < end_time",
				hallId, valueKey, model.ShowtimeCancelled, endTime, startTime).
			Count(&conflictCount).Error; err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": fmt.Sprintf("conflict check failed: %s", err.Error()),
			})
		}
		if conflictCount > 0 {
			return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, "Hall is already booked in this time range", nil, "startTime")
		}

		c.Locals("input", input)
		c.Locals("showtime", showtime)
		c.Locals("newStartTime", startTime)
		c.Locals("newEndTime", endTime)
		return c.Next()
	}
}

func UpdateShowtimeStatus(key string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		params := c.Params(key)
		valueKey, err := strconv.Atoi(params)
		if err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.DATA_INPUT_IS_NOT_NUMBER, errors.New("params invalid"))
		}

		var input model.UpdateShowtimeStatusInput
		if err := c.BodyParser(&input); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": fmt.Sprintf("Invalid input %s", err.Error()),
			})
		}

		if err := validate.Struct(input); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": err.Error(),
			})
		}

		var showtime model.Showtime
		if err := database.DB.Where("id = ?", valueKey).First(&showtime).Error; err != nil {
			return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, constants.SHOWTIME_NOT_FOUND, err, "showtimeId")
		}

		// CANCELLED is terminal.
		if showtime.Status == model.ShowtimeCancelled && input.Status != model.ShowtimeCancelled {
			return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, "Cancelled showtimes cannot change status", nil, "status")
		}

		c.Locals("input", input)
		c.Locals("showtime", showtime)
		return c.Next()
	}
}

// CreateShowtimeBatch validates the batch request and loads every entity the
// expansion needs, so the handler works from locals only.
func CreateShowtimeBatch() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.BatchCreateShowtimesInput

		if err := c.BodyParser(&input); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": fmt.Sprintf("Invalid input %s", err.Error()),
			})
		}

		if err := validate.Struct(input); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": err.Error(),
			})
		}

		var movie model.Movie
		if err := database.DB.Where("id = ?", input.MovieId).First(&movie).Error; err != nil {
			return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, constants.MOVIE_NOT_FOUND, err, "movieId")
		}

		var release model.MovieRelease
		if err := database.DB.Where("id = ? AND movie_id = ?", input.MovieReleaseId, input.MovieId).First(&release).Error; err != nil {
			return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, "Release does not exist or belongs to another movie", err, "movieReleaseId")
		}
		if release.Status == model.ReleaseEnded {
			return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, "Release has already ended", nil, "movieReleaseId")
		}

		var cinema model.Cinema
		if err := database.DB.Where("id = ? AND status = ?", input.CinemaId, model.CinemaActive).First(&cinema).Error; err != nil {
			return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, "Cinema does not exist or is not active", err, "cinemaId")
		}

		var hall model.Hall
		if err := database.DB.Where("id = ? AND cinema_id = ? AND status = ?", input.HallId, input.CinemaId, model.HallActive).First(&hall).Error; err != nil {
			return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, "Hall does not exist in this cinema or is not active", err, "hallId")
		}

		tz := cinema.Timezone
		if tz == "" {
			tz = config.DefaultTimezone()
		}
		loc, err := time.LoadLocation(tz)
		if err != nil {
			loc, _ = time.LoadLocation(config.DefaultTimezone())
		}

		startDate, err := time.ParseInLocation("2006-01-02", input.StartDate, loc)
		if err != nil {
			return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, "Invalid start date", err, "startDate")
		}
		endDate, err := time.ParseInLocation("2006-01-02", input.EndDate, loc)
		if err != nil {
			return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, "Invalid end date", err, "endDate")
		}

		c.Locals("input", input)
		c.Locals("movie", movie)
		c.Locals("release", release)
		c.Locals("cinema", cinema)
		c.Locals("hall", hall)
		c.Locals("location", loc)
		c.Locals("startDate", startDate)
		c.Locals("endDate", endDate)
		return c.Next()
	}
}
