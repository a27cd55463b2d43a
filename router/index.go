package router

import (
	"cinema_scheduler/handler"
	"cinema_scheduler/middleware"
	"cinema_scheduler/validate"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func SetupRoutes(app *fiber.App) {
	api := app.Group("/api", logger.New())
	v1 := api.Group("/v1", logger.New())

	cinema := v1.Group("/cinema", logger.New())
	cinema.Get("/", handler.GetCinemas)
	cinema.Get("/:cinemaId", validate.GetById("cinemaId"), handler.GetCinemaById)
	cinema.Post("/", validate.CreateCinema(), handler.CreateCinema)
	cinema.Put("/:cinemaId", validate.GetById("cinemaId"), validate.EditCinema(), handler.EditCinema)
	cinema.Delete("/", validate.Delete(), handler.DeleteCinemas)
	cinema.Get("/:cinemaId/halls", validate.GetById("cinemaId"), handler.GetHallsByCinemaId)

	hall := v1.Group("/hall", logger.New())
	hall.Get("/", handler.GetHalls)
	hall.Get("/:hallId", validate.GetById("hallId"), handler.GetHallById)
	hall.Post("/", validate.CreateHall(), handler.CreateHall)
	hall.Put("/:hallId", validate.GetById("hallId"), validate.EditHall(), handler.EditHall)
	hall.Patch("/:hallId/status", validate.GetById("hallId"), handler.UpdateHallStatus)
	hall.Delete("/", validate.Delete(), handler.DeleteHalls)

	movie := v1.Group("/movie", logger.New())
	movie.Get("/", handler.GetMovies)
	movie.Get("/:movieId", validate.GetById("movieId"), handler.GetMovieById)
	movie.Post("/", validate.CreateMovie(), handler.CreateMovie)
	movie.Put("/:movieId", validate.GetById("movieId"), validate.EditMovie(), handler.EditMovie)
	movie.Delete("/", validate.Delete(), handler.DeleteMovies)

	release := v1.Group("/release", logger.New())
	release.Get("/", handler.GetReleases)
	release.Get("/:releaseId", validate.GetById("releaseId"), handler.GetReleaseById)
	release.Post("/", validate.CreateRelease(), handler.CreateRelease)
	release.Put("/:releaseId", validate.GetById("releaseId"), validate.UpdateRelease(), handler.UpdateRelease)
	release.Delete("/", validate.Delete(), handler.DeleteReleases)

	holiday := v1.Group("/holidays", logger.New())
	holiday.Get("/", handler.GetHolidays)
	holiday.Post("/", validate.CreateHoliday(), handler.CreateHoliday)
	holiday.Put("/:holidayId", validate.GetById("holidayId"), validate.UpdateHoliday(), handler.UpdateHoliday)
	holiday.Delete("/", validate.Delete(), handler.DeleteHolidays)

	showtime := v1.Group("/showtime", logger.New())
	showtime.Get("/", middleware.CacheShowtimeList(), handler.GetShowtimes)
	showtime.Get("/grouped", middleware.CacheShowtimeList(), handler.GetGroupedShowtimes)
	showtime.Get("/:showtimeId", validate.GetShowtimeById("showtimeId"), handler.GetShowtimeById)
	showtime.Post("/batch", validate.CreateShowtimeBatch(), handler.CreateShowtimeBatch)
	showtime.Put("/:showtimeId", validate.EditShowtime("showtimeId"), handler.EditShowtime)
	showtime.Patch("/:showtimeId/status", validate.UpdateShowtimeStatus("showtimeId"), handler.UpdateShowtimeStatus)
	showtime.Delete("/", validate.Delete(), handler.DeleteShowtimes)

	report := v1.Group("/report", logger.New())
	report.Get("/summary", handler.GetSummary)
}
