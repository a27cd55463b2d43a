package handler

import (
	"cinema_scheduler/constants"
	"cinema_scheduler/database"
	"cinema_scheduler/helper"
	"cinema_scheduler/model"
	"cinema_scheduler/utils"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/jinzhu/copier"
)

func GetMovies(c *fiber.Ctx) error {
	filterInput := new(model.FilterMovie)
	if err := c.QueryParser(filterInput); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
	}

	query := database.DB.Model(&model.Movie{})
	if filterInput.SearchKey != "" {
		search := "%" + strings.ToLower(strings.TrimSpace(filterInput.SearchKey)) + "%"
		query = query.Where("LOWER(title) LIKE ? OR LOWER(original_title) LIKE ? OR LOWER(director) LIKE ?", search, search, search)
	}
	if filterInput.Status != "" {
		query = query.Where("status_movie = ?", filterInput.Status)
	}
	if filterInput.Genre != "" {
		query = query.Where("LOWER(genre) LIKE ?", "%"+strings.ToLower(filterInput.Genre)+"%")
	}

	var totalCount int64
	if err := query.Count(&totalCount).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Count failed", err)
	}

	var movies model.Movies
	query = utils.ApplyPagination(query, filterInput.Limit, filterInput.Page)
	if err := query.Order("date_release DESC").Find(&movies).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Query failed", err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, &model.ResponseCustom{
		Rows:       movies,
		Limit:      filterInput.Limit,
		Page:       filterInput.Page,
		TotalCount: totalCount,
	})
}

func GetMovieById(c *fiber.Ctx) error {
	inputId, ok := c.Locals("inputId").(int)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, nil)
	}

	var movie model.Movie
	if err := database.DB.Preload("Releases").Where("id = ?", inputId).First(&movie).Error; err != nil {
		return utils.ErrorResponseHaveKey(c, fiber.StatusNotFound, constants.MOVIE_NOT_FOUND, err, "movieId")
	}

	return utils.SuccessResponse(c, fiber.StatusOK, movie)
}

func CreateMovie(c *fiber.Ctx) error {
	input, ok := c.Locals("input").(model.CreateMovieInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, nil)
	}

	var movie model.Movie
	if err := copier.Copy(&movie, &input); err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Cannot map input", err)
	}

	dateRelease, err := time.Parse("2006-01-02", input.DateRelease)
	if err != nil {
		return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, "Invalid release date", err, "dateRelease")
	}
	movie.DateRelease = utils.CustomDate{Time: dateRelease}
	movie.Slug = helper.GenerateUniqueMovieSlug(database.DB, input.Title)
	movie.StatusMovie = "COMING_SOON"
	if !dateRelease.After(time.Now()) {
		movie.StatusMovie = "NOW_SHOWING"
	}

	if err := database.DB.Create(&movie).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Cannot create movie", err)
	}

	return utils.SuccessResponse(c, fiber.StatusCreated, movie)
}

func EditMovie(c *fiber.Ctx) error {
	input, okInput := c.Locals("input").(model.EditMovieInput)
	movie, okMovie := c.Locals("movie").(model.Movie)
	if !okInput || !okMovie {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, nil)
	}

	if input.Title != nil && *input.Title != movie.Title {
		movie.Title = *input.Title
		movie.Slug = helper.GenerateUniqueMovieSlug(database.DB, *input.Title)
	}
	if input.OriginalTitle != nil {
		movie.OriginalTitle = *input.OriginalTitle
	}
	if input.Genre != nil {
		movie.Genre = *input.Genre
	}
	if input.Runtime != nil {
		movie.Runtime = *input.Runtime
	}
	if input.Overview != nil {
		movie.Overview = *input.Overview
	}
	if input.Language != nil {
		movie.Language = *input.Language
	}
	if input.Country != nil {
		movie.Country = *input.Country
	}
	if input.Director != nil {
		movie.Director = *input.Director
	}
	if input.AgeRating != nil {
		movie.AgeRating = *input.AgeRating
	}
	if input.PosterUrl != nil {
		movie.PosterUrl = *input.PosterUrl
	}
	if input.TrailerUrl != nil {
		movie.TrailerUrl = *input.TrailerUrl
	}
	if input.DateRelease != nil {
		dateRelease, err := time.Parse("2006-01-02", *input.DateRelease)
		if err != nil {
			return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, "Invalid release date", err, "dateRelease")
		}
		movie.DateRelease = utils.CustomDate{Time: dateRelease}
	}
	if input.StatusMovie != nil {
		movie.StatusMovie = *input.StatusMovie
	}

	if err := database.DB.Save(&movie).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_EDIT, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, movie)
}

func DeleteMovies(c *fiber.Ctx) error {
	input, ok := c.Locals("deleteIds").(model.ArrayId)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, nil)
	}

	var count int64
	database.DB.Model(&model.Showtime{}).Where("movie_id IN ? AND status != ?", input.IDs, model.ShowtimeCancelled).Count(&count)
	if count > 0 {
		return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, "Movie still has scheduled showtimes", nil, "ids")
	}

	if err := database.DB.Delete(&model.Movie{}, input.IDs).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Cannot delete movies", err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"deleted": len(input.IDs)})
}
