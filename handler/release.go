package handler

import (
	"cinema_scheduler/constants"
	"cinema_scheduler/database"
	"cinema_scheduler/model"
	"cinema_scheduler/utils"
	"time"

	"github.com/gofiber/fiber/v2"
)

func GetReleases(c *fiber.Ctx) error {
	filterInput := new(model.Pagination)
	if err := c.QueryParser(filterInput); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
	}

	query := database.DB.Model(&model.MovieRelease{}).Preload("Movie")
	if movieId := c.QueryInt("movieId"); movieId > 0 {
		query = query.Where("movie_id = ?", movieId)
	}
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}

	var totalCount int64
	if err := query.Count(&totalCount).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Count failed", err)
	}

	var releases []model.MovieRelease
	query = utils.ApplyPagination(query, filterInput.Limit, filterInput.Page)
	if err := query.Order("start_date DESC").Find(&releases).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Query failed", err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, &model.ResponseCustom{
		Rows:       releases,
		Limit:      filterInput.Limit,
		Page:       filterInput.Page,
		TotalCount: totalCount,
	})
}

func GetReleaseById(c *fiber.Ctx) error {
	inputId, ok := c.Locals("inputId").(int)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, nil)
	}

	var release model.MovieRelease
	if err := database.DB.Preload("Movie").Where("id = ?", inputId).First(&release).Error; err != nil {
		return utils.ErrorResponseHaveKey(c, fiber.StatusNotFound, constants.RELEASE_NOT_FOUND, err, "releaseId")
	}

	return utils.SuccessResponse(c, fiber.StatusOK, release)
}

func CreateRelease(c *fiber.Ctx) error {
	input, ok := c.Locals("input").(model.CreateReleaseInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, nil)
	}

	startDate, _ := time.Parse("2006-01-02", input.StartDate)
	endDate, _ := time.Parse("2006-01-02", input.EndDate)

	release := model.MovieRelease{
		MovieId:   input.MovieId,
		StartDate: utils.CustomDate{Time: startDate},
		EndDate:   utils.CustomDate{Time: endDate},
		Note:      input.Note,
		Status:    model.ReleaseUpcoming,
	}
	today := time.Now().Format("2006-01-02")
	if input.StartDate <= today {
		release.Status = model.ReleaseActive
	}
	if input.EndDate < today {
		release.Status = model.ReleaseEnded
	}

	if err := database.DB.Create(&release).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Cannot create release", err)
	}

	return utils.SuccessResponse(c, fiber.StatusCreated, release)
}

func UpdateRelease(c *fiber.Ctx) error {
	input, okInput := c.Locals("input").(model.UpdateReleaseInput)
	release, okRelease := c.Locals("release").(model.MovieRelease)
	if !okInput || !okRelease {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, nil)
	}

	if input.StartDate != nil {
		startDate, err := time.Parse("2006-01-02", *input.StartDate)
		if err != nil {
			return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, "Invalid start date", err, "startDate")
		}
		release.StartDate = utils.CustomDate{Time: startDate}
	}
	if input.EndDate != nil {
		endDate, err := time.Parse("2006-01-02", *input.EndDate)
		if err != nil {
			return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, "Invalid end date", err, "endDate")
		}
		release.EndDate = utils.CustomDate{Time: endDate}
	}
	if input.Note != nil {
		release.Note = *input.Note
	}

	// Window moves recompute the status immediately instead of waiting for
	// the nightly roll.
	today := time.Now().Format("2006-01-02")
	switch {
	case release.EndDate.String() < today:
		release.Status = model.ReleaseEnded
	case release.StartDate.String() <= today:
		release.Status = model.ReleaseActive
	default:
		release.Status = model.ReleaseUpcoming
	}

	if err := database.DB.Save(&release).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_EDIT, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, release)
}

func DeleteReleases(c *fiber.Ctx) error {
	input, ok := c.Locals("deleteIds").(model.ArrayId)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, nil)
	}

	var count int64
	database.DB.Model(&model.Showtime{}).Where("movie_release_id IN ? AND status != ?", input.IDs, model.ShowtimeCancelled).Count(&count)
	if count > 0 {
		return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, "Release still has scheduled showtimes", nil, "ids")
	}

	if err := database.DB.Delete(&model.MovieRelease{}, input.IDs).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Cannot delete releases", err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"deleted": len(input.IDs)})
}
