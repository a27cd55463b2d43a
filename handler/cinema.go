package handler

import (
	"cinema_scheduler/constants"
	"cinema_scheduler/database"
	"cinema_scheduler/helper"
	"cinema_scheduler/model"
	"cinema_scheduler/utils"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/jinzhu/copier"
	"gorm.io/gorm"
)

type cinemaWithHallCount struct {
	model.Cinema
	HallTotal int64 `gorm:"column:hall_total"`
}

func GetCinemas(c *fiber.Ctx) error {
	filterInput := new(model.FilterCinema)
	if err := c.QueryParser(filterInput); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
	}

	db := database.DB

	limit := 10
	page := 1
	if filterInput.Limit != nil && *filterInput.Limit > 0 {
		limit = *filterInput.Limit
		if limit > 500 {
			limit = 500
		}
	}
	if filterInput.Page != nil && *filterInput.Page > 0 {
		page = *filterInput.Page
	}
	offset := (page - 1) * limit

	baseQuery := db.Model(&model.Cinema{}).
		Select("cinemas.*, COALESCE(COUNT(DISTINCT halls.id), 0) AS hall_total").
		Joins("LEFT JOIN halls ON halls.cinema_id = cinemas.id")

	if filterInput.SearchKey != "" {
		search := "%" + strings.ToLower(strings.TrimSpace(filterInput.SearchKey)) + "%"
		baseQuery = baseQuery.Where(
			db.Where("LOWER(cinemas.name) LIKE ?", search).
				Or("LOWER(cinemas.address) LIKE ?", search).
				Or("LOWER(cinemas.city) LIKE ?", search).
				Or("LOWER(cinemas.district) LIKE ?", search),
		)
	}
	if filterInput.City != "" {
		baseQuery = baseQuery.Where("LOWER(cinemas.city) LIKE ?", "%"+strings.ToLower(filterInput.City)+"%")
	}
	if filterInput.Status != "" {
		baseQuery = baseQuery.Where("cinemas.status = ?", filterInput.Status)
	}

	var totalCount int64
	countQuery := baseQuery.Session(&gorm.Session{})
	if err := countQuery.Group("cinemas.id").Count(&totalCount).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Count failed", err)
	}

	var rows []cinemaWithHallCount
	err := baseQuery.
		Group("cinemas.id").
		Offset(offset).
		Limit(limit).
		Order("cinemas.id DESC").
		Find(&rows).Error
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Query failed", err)
	}

	var result []model.Cinema
	for _, item := range rows {
		cinema := item.Cinema
		cinema.HallCount = item.HallTotal
		cinema.Halls = nil
		result = append(result, cinema)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, &model.ResponseCustom{
		Rows:       result,
		Limit:      &limit,
		Page:       &page,
		TotalCount: totalCount,
	})
}

func GetCinemaById(c *fiber.Ctx) error {
	inputId, ok := c.Locals("inputId").(int)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, nil)
	}

	var cinema model.Cinema
	if err := database.DB.Preload("Halls").Where("id = ?", inputId).First(&cinema).Error; err != nil {
		return utils.ErrorResponseHaveKey(c, fiber.StatusNotFound, constants.CINEMA_NOT_FOUND, err, "cinemaId")
	}
	cinema.HallCount = int64(len(cinema.Halls))

	return utils.SuccessResponse(c, fiber.StatusOK, cinema)
}

func CreateCinema(c *fiber.Ctx) error {
	input, ok := c.Locals("input").(model.CreateCinemaInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, nil)
	}

	var cinema model.Cinema
	if err := copier.Copy(&cinema, &input); err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Cannot map input", err)
	}
	cinema.Slug = helper.GenerateUniqueCinemaSlug(database.DB, input.Name)
	cinema.Status = model.CinemaActive

	if err := database.DB.Create(&cinema).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Cannot create cinema", err)
	}

	return utils.SuccessResponse(c, fiber.StatusCreated, cinema)
}

func EditCinema(c *fiber.Ctx) error {
	input, okInput := c.Locals("input").(model.EditCinemaInput)
	cinema, okCinema := c.Locals("cinema").(model.Cinema)
	if !okInput || !okCinema {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, nil)
	}

	if input.Name != nil && *input.Name != cinema.Name {
		cinema.Name = *input.Name
		cinema.Slug = helper.GenerateUniqueCinemaSlug(database.DB, *input.Name)
	}
	if input.Address != nil {
		cinema.Address = *input.Address
	}
	if input.City != nil {
		cinema.City = *input.City
	}
	if input.District != nil {
		cinema.District = *input.District
	}
	if input.Phone != nil {
		cinema.Phone = *input.Phone
	}
	if input.Email != nil {
		cinema.Email = *input.Email
	}
	if input.Description != nil {
		cinema.Description = input.Description
	}
	if input.Timezone != nil {
		cinema.Timezone = *input.Timezone
	}
	if input.Status != nil {
		cinema.Status = *input.Status
	}

	if err := database.DB.Save(&cinema).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_EDIT, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, cinema)
}

func DeleteCinemas(c *fiber.Ctx) error {
	input, ok := c.Locals("deleteIds").(model.ArrayId)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, nil)
	}

	var count int64
	database.DB.Model(&model.Hall{}).Where("cinema_id IN ?", input.IDs).Count(&count)
	if count > 0 {
		return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, "Cinema still has halls", nil, "ids")
	}

	if err := database.DB.Delete(&model.Cinema{}, input.IDs).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Cannot delete cinemas", err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"deleted": len(input.IDs)})
}
