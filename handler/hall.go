package handler

import (
	"cinema_scheduler/constants"
	"cinema_scheduler/database"
	"cinema_scheduler/model"
	"cinema_scheduler/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/jinzhu/copier"
)

func GetHalls(c *fiber.Ctx) error {
	filterInput := new(model.FilterHall)
	if err := c.QueryParser(filterInput); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
	}

	query := database.DB.Model(&model.Hall{}).Preload("Cinema")
	if filterInput.CinemaId != 0 {
		query = query.Where("cinema_id = ?", filterInput.CinemaId)
	}
	if filterInput.Status != "" {
		query = query.Where("status = ?", filterInput.Status)
	}

	var totalCount int64
	if err := query.Count(&totalCount).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Count failed", err)
	}

	var halls []model.Hall
	query = utils.ApplyPagination(query, filterInput.Limit, filterInput.Page)
	if err := query.Order("id").Find(&halls).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Query failed", err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, &model.ResponseCustom{
		Rows:       halls,
		Limit:      filterInput.Limit,
		Page:       filterInput.Page,
		TotalCount: totalCount,
	})
}

func GetHallsByCinemaId(c *fiber.Ctx) error {
	inputId, ok := c.Locals("inputId").(int)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, nil)
	}

	var cinema model.Cinema
	if err := database.DB.Where("id = ?", inputId).First(&cinema).Error; err != nil {
		return utils.ErrorResponseHaveKey(c, fiber.StatusNotFound, constants.CINEMA_NOT_FOUND, err, "cinemaId")
	}

	var halls []model.Hall
	if err := database.DB.Where("cinema_id = ?", inputId).Order("name").Find(&halls).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Query failed", err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, halls)
}

func GetHallById(c *fiber.Ctx) error {
	inputId, ok := c.Locals("inputId").(int)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, nil)
	}

	var hall model.Hall
	if err := database.DB.Preload("Cinema").Where("id = ?", inputId).First(&hall).Error; err != nil {
		return utils.ErrorResponseHaveKey(c, fiber.StatusNotFound, constants.HALL_NOT_FOUND, err, "hallId")
	}

	return utils.SuccessResponse(c, fiber.StatusOK, hall)
}

func CreateHall(c *fiber.Ctx) error {
	input, ok := c.Locals("input").(model.CreateHallInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, nil)
	}

	var hall model.Hall
	if err := copier.Copy(&hall, &input); err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Cannot map input", err)
	}
	if hall.Type == "" {
		hall.Type = model.HallStandard
	}
	hall.Status = model.HallActive

	if err := database.DB.Create(&hall).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Cannot create hall", err)
	}

	return utils.SuccessResponse(c, fiber.StatusCreated, hall)
}

func EditHall(c *fiber.Ctx) error {
	input, okInput := c.Locals("input").(model.EditHallInput)
	hall, okHall := c.Locals("hall").(model.Hall)
	if !okInput || !okHall {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, nil)
	}

	if input.Name != nil {
		hall.Name = *input.Name
	}
	if input.Type != nil {
		hall.Type = *input.Type
	}
	if input.Capacity != nil {
		hall.Capacity = *input.Capacity
	}
	if input.Rows != nil {
		hall.Rows = *input.Rows
	}
	if input.ScreenType != nil {
		hall.ScreenType = *input.ScreenType
	}
	if input.SoundSystem != nil {
		hall.SoundSystem = *input.SoundSystem
	}

	if err := database.DB.Save(&hall).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_EDIT, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, hall)
}

// UpdateHallStatus flips a hall between ACTIVE, MAINTENANCE and CLOSED.
// Closed halls keep their showtimes; the batch validator refuses new ones.
func UpdateHallStatus(c *fiber.Ctx) error {
	inputId, ok := c.Locals("inputId").(int)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, nil)
	}

	var body struct {
		Status model.HallStatus `json:"status" validate:"required,oneof=ACTIVE MAINTENANCE CLOSED"`
	}
	if err := c.BodyParser(&body); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
	}
	switch body.Status {
	case model.HallActive, model.HallMaintenance, model.HallClosed:
	default:
		return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, "Unknown hall status", nil, "status")
	}

	var hall model.Hall
	if err := database.DB.Where("id = ?", inputId).First(&hall).Error; err != nil {
		return utils.ErrorResponseHaveKey(c, fiber.StatusNotFound, constants.HALL_NOT_FOUND, err, "hallId")
	}

	hall.Status = body.Status
	if err := database.DB.Save(&hall).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_EDIT, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, hall)
}

func DeleteHalls(c *fiber.Ctx) error {
	input, ok := c.Locals("deleteIds").(model.ArrayId)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, nil)
	}

	var count int64
	database.DB.Model(&model.Showtime{}).Where("hall_id IN ? AND status != ?", input.IDs, model.ShowtimeCancelled).Count(&count)
	if count > 0 {
		return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, "Hall still has scheduled showtimes", nil, "ids")
	}

	if err := database.DB.Delete(&model.Hall{}, input.IDs).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Cannot delete halls", err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"deleted": len(input.IDs)})
}
