package handler

import (
	"cinema_scheduler/config"
	"cinema_scheduler/constants"
	"cinema_scheduler/database"
	"cinema_scheduler/helper"
	"cinema_scheduler/middleware"
	"cinema_scheduler/model"
	"cinema_scheduler/utils"
	"errors"
	"sort"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

func GetShowtimes(c *fiber.Ctx) error {
	filterInput := new(model.FilterShowtimeInput)
	if err := c.QueryParser(filterInput); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
	}

	query := database.DB.Model(&model.Showtime{}).
		Preload("Movie").
		Preload("Cinema").
		Preload("Hall")

	if filterInput.MovieId != 0 {
		query = query.Where("movie_id = ?", filterInput.MovieId)
	}
	if filterInput.CinemaId != 0 {
		query = query.Where("cinema_id = ?", filterInput.CinemaId)
	}
	if filterInput.HallId != 0 {
		query = query.Where("hall_id = ?", filterInput.HallId)
	}
	if filterInput.Status != "" {
		query = query.Where("status = ?", filterInput.Status)
	}
	if filterInput.Date != "" {
		day, err := time.Parse("2006-01-02", filterInput.Date)
		if err != nil {
			return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, "Invalid date filter", err, "date")
		}
		query = query.Where("start_time >= ? AND start_time < ?", day, day.AddDate(0, 0, 1))
	}
	if filterInput.Search != "" {
		search := "%" + strings.ToLower(strings.TrimSpace(filterInput.Search)) + "%"
		query = query.Joins("JOIN movies ON movies.id = showtimes.movie_id").
			Where("LOWER(movies.title) LIKE ?", search)
	}

	var totalCount int64
	if err := query.Count(&totalCount).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Count failed", err)
	}

	var showtimes []model.Showtime
	query = utils.ApplyPagination(query, filterInput.Limit, filterInput.Page)
	if err := query.Order("start_time").Find(&showtimes).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Query failed", err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, &model.ResponseCustom{
		Rows:       showtimes,
		Limit:      filterInput.Limit,
		Page:       filterInput.Page,
		TotalCount: totalCount,
	})
}

type ShowtimeDayGroup struct {
	Date      string           `json:"date"`
	DayType   model.DayType    `json:"dayType"`
	Showtimes []model.Showtime `json:"showtimes"`
}

type ShowtimeMovieGroup struct {
	MovieId uint               `json:"movieId"`
	Title   string             `json:"title"`
	Days    []ShowtimeDayGroup `json:"days"`
}

// GroupShowtimesByMovie arranges a flat listing into movie -> day groups,
// movies by title, days ascending, showtimes within a day by start time.
func GroupShowtimesByMovie(showtimes []model.Showtime) []ShowtimeMovieGroup {
	byMovie := make(map[uint][]model.Showtime)
	for _, st := range showtimes {
		byMovie[st.MovieId] = append(byMovie[st.MovieId], st)
	}

	groups := make([]ShowtimeMovieGroup, 0, len(byMovie))
	for movieId, items := range byMovie {
		sort.Slice(items, func(i, j int) bool {
			return items[i].StartTime.Before(items[j].StartTime)
		})

		byDay := make(map[string][]model.Showtime)
		for _, st := range items {
			key := st.StartTime.Format("2006-01-02")
			byDay[key] = append(byDay[key], st)
		}

		days := make([]ShowtimeDayGroup, 0, len(byDay))
		for key, dayItems := range byDay {
			days = append(days, ShowtimeDayGroup{
				Date:      key,
				DayType:   dayItems[0].DayType,
				Showtimes: dayItems,
			})
		}
		sort.Slice(days, func(i, j int) bool { return days[i].Date < days[j].Date })

		groups = append(groups, ShowtimeMovieGroup{
			MovieId: movieId,
			Title:   items[0].Movie.Title,
			Days:    days,
		})
	}
	sort.Slice(groups, func(i, j int) bool { return groups[i].Title < groups[j].Title })
	return groups
}

func GetGroupedShowtimes(c *fiber.Ctx) error {
	query := database.DB.Model(&model.Showtime{}).
		Preload("Movie").
		Preload("Hall").
		Where("status != ?", model.ShowtimeCancelled)

	if cinemaId := c.QueryInt("cinemaId"); cinemaId > 0 {
		query = query.Where("cinema_id = ?", cinemaId)
	}
	if date := c.Query("date"); date != "" {
		day, err := time.Parse("2006-01-02", date)
		if err != nil {
			return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, "Invalid date filter", err, "date")
		}
		query = query.Where("start_time >= ? AND start_time < ?", day, day.AddDate(0, 0, 1))
	}

	var showtimes []model.Showtime
	if err := query.Order("start_time").Find(&showtimes).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Query failed", err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, GroupShowtimesByMovie(showtimes))
}

func GetShowtimeById(c *fiber.Ctx) error {
	showtimeId, ok := c.Locals("showtimeId").(uint)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, nil)
	}

	var showtime model.Showtime
	if err := database.DB.
		Preload("Movie").
		Preload("Release").
		Preload("Cinema").
		Preload("Hall").
		Where("id = ?", showtimeId).First(&showtime).Error; err != nil {
		return utils.ErrorResponseHaveKey(c, fiber.StatusNotFound, constants.SHOWTIME_NOT_FOUND, err, "showtimeId")
	}

	return utils.SuccessResponse(c, fiber.StatusOK, showtime)
}

func EditShowtime(c *fiber.Ctx) error {
	input, okInput := c.Locals("input").(model.UpdateShowtimeInput)
	showtime, okShowtime := c.Locals("showtime").(model.Showtime)
	if !okInput || !okShowtime {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, nil)
	}

	if startTime, ok := c.Locals("newStartTime").(time.Time); ok {
		showtime.StartTime = startTime
	}
	if endTime, ok := c.Locals("newEndTime").(time.Time); ok {
		showtime.EndTime = endTime
	}
	if input.HallId != nil {
		showtime.HallId = *input.HallId
	}
	if input.Format != nil {
		showtime.Format = *input.Format
	}
	if input.Language != nil {
		showtime.Language = *input.Language
	}
	if input.Subtitles != nil {
		showtime.Subtitles = *input.Subtitles
	}

	if err := database.DB.Save(&showtime).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_EDIT, err)
	}

	middleware.InvalidateShowtimeCache(c.Context())
	return utils.SuccessResponse(c, fiber.StatusOK, showtime)
}

func UpdateShowtimeStatus(c *fiber.Ctx) error {
	input, okInput := c.Locals("input").(model.UpdateShowtimeStatusInput)
	showtime, okShowtime := c.Locals("showtime").(model.Showtime)
	if !okInput || !okShowtime {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, nil)
	}

	showtime.Status = input.Status
	if err := database.DB.Save(&showtime).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_EDIT, err)
	}

	middleware.InvalidateShowtimeCache(c.Context())
	return utils.SuccessResponse(c, fiber.StatusOK, showtime)
}

func DeleteShowtimes(c *fiber.Ctx) error {
	input, ok := c.Locals("deleteIds").(model.ArrayId)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, nil)
	}

	if err := database.DB.Delete(&model.Showtime{}, input.IDs).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Cannot delete showtimes", err)
	}

	middleware.InvalidateShowtimeCache(c.Context())
	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"deleted": len(input.IDs)})
}

// CreateShowtimeBatch expands a recurring request into concrete showtimes.
// Accepted candidates are persisted in one transaction; rejected ones come
// back as diagnostics so the dashboard can show what was skipped and why.
func CreateShowtimeBatch(c *fiber.Ctx) error {
	input, okInput := c.Locals("input").(model.BatchCreateShowtimesInput)
	movie, okMovie := c.Locals("movie").(model.Movie)
	release, okRelease := c.Locals("release").(model.MovieRelease)
	cinema, okCinema := c.Locals("cinema").(model.Cinema)
	hall, okHall := c.Locals("hall").(model.Hall)
	loc, okLoc := c.Locals("location").(*time.Location)
	startDate, okStart := c.Locals("startDate").(time.Time)
	endDate, okEnd := c.Locals("endDate").(time.Time)
	if !okInput || !okMovie || !okRelease || !okCinema || !okHall || !okLoc || !okStart || !okEnd {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, nil)
	}

	weekdays := make([]time.Weekday, 0, len(input.Weekdays))
	for _, wd := range input.Weekdays {
		weekdays = append(weekdays, time.Weekday(wd))
	}

	req := model.ScheduleRequest{
		MovieId:        movie.ID,
		MovieReleaseId: release.ID,
		CinemaId:       cinema.ID,
		HallId:         hall.ID,
		StartDate:      startDate,
		EndDate:        endDate,
		TimeSlots:      input.TimeSlots,
		RepeatType:     input.RepeatType,
		Weekdays:       weekdays,
		Format:         input.Format,
		Language:       input.Language,
		Subtitles:      input.Subtitles,
	}

	// Booked slots in the hall over the window, with slack past the end
	// date for slots running over midnight.
	var existingRows []model.Showtime
	if err := database.DB.
		Where("hall_id = ? AND status != ?", hall.ID, model.ShowtimeCancelled).
		Where("end_time > ? AND start_time < ?", startDate, endDate.AddDate(0, 0, 2)).
		Find(&existingRows).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Cannot load booked showtimes", err)
	}
	existing := make([]model.ExistingShowtime, 0, len(existingRows))
	for _, st := range existingRows {
		existing = append(existing, model.ExistingShowtime{
			ShowtimeId: st.ID,
			HallId:     st.HallId,
			StartTime:  st.StartTime,
			EndTime:    st.EndTime,
		})
	}

	holidays, err := helper.LoadHolidayCalendar(startDate, endDate)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Cannot load holiday calendar", err)
	}

	ctx := model.BatchContext{
		RuntimeMinutes:       movie.Runtime,
		CleanupBufferMinutes: config.CleanupBufferMinutes(),
		ReleaseStart:         release.StartDate.InLocation(loc),
		ReleaseEnd:           release.EndDate.InLocation(loc),
		Location:             loc,
		Existing:             existing,
		Holidays:             holidays,
	}

	result, err := helper.ExpandBatch(req, ctx)
	if err != nil {
		switch {
		case errors.Is(err, model.ErrInvalidTimeSlot):
			return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, "Invalid time slot", err, "timeSlots")
		case errors.Is(err, model.ErrInvalidRange):
			return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, "Start date is after end date", err, "startDate")
		case errors.Is(err, model.ErrMissingWeekdaySelection):
			return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, "Select at least one weekday", err, "weekdays")
		default:
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Expansion failed", err)
		}
	}

	created := make([]model.Showtime, 0, len(result.Accepted))
	err = database.DB.Transaction(func(tx *gorm.DB) error {
		for _, cand := range result.Accepted {
			showtime := model.Showtime{
				PublicCode:     "ST-" + uuid.NewString()[:8],
				StartTime:      cand.StartTime,
				EndTime:        cand.EndTime,
				DayType:        cand.DayType,
				Format:         cand.Format,
				Language:       cand.Language,
				Subtitles:      cand.Subtitles,
				Status:         model.ShowtimeSelling,
				MovieId:        req.MovieId,
				MovieReleaseId: req.MovieReleaseId,
				CinemaId:       req.CinemaId,
				HallId:         cand.HallId,
			}
			if err := tx.Create(&showtime).Error; err != nil {
				return err
			}
			created = append(created, showtime)
		}
		return nil
	})
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Cannot save showtimes", err)
	}

	middleware.InvalidateShowtimeCache(c.Context())

	return utils.SuccessResponse(c, fiber.StatusCreated, fiber.Map{
		"created":        len(created),
		"skipped":        len(result.Rejected),
		"totalRequested": result.TotalRequested,
		"showtimes":      created,
		"rejected":       result.Rejected,
	})
}
