package handler

import (
	"cinema_scheduler/constants"
	"cinema_scheduler/database"
	"cinema_scheduler/model"
	"cinema_scheduler/utils"
	"time"

	"github.com/gofiber/fiber/v2"
)

func GetHolidays(c *fiber.Ctx) error {
	filterInput := new(model.HolidayFilter)
	if err := c.QueryParser(filterInput); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
	}

	query := database.DB.Model(&model.Holiday{})
	if filterInput.Year != nil {
		from := time.Date(*filterInput.Year, 1, 1, 0, 0, 0, 0, time.UTC)
		to := time.Date(*filterInput.Year, 12, 31, 0, 0, 0, 0, time.UTC)
		// Recurring holidays apply to every year.
		query = query.Where("is_recurring = true OR (date BETWEEN ? AND ?)", from, to)
	}

	var totalCount int64
	if err := query.Count(&totalCount).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Count failed", err)
	}

	var holidays []model.Holiday
	query = utils.ApplyPagination(query, filterInput.Limit, filterInput.Page)
	if err := query.Order("date").Find(&holidays).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Query failed", err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, &model.ResponseCustom{
		Rows:       holidays,
		Limit:      filterInput.Limit,
		Page:       filterInput.Page,
		TotalCount: totalCount,
	})
}

func CreateHoliday(c *fiber.Ctx) error {
	input, ok := c.Locals("input").(model.CreateHolidayInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, nil)
	}

	date, _ := time.Parse("2006-01-02", input.Date)
	holiday := model.Holiday{
		Name:        input.Name,
		Date:        date,
		IsRecurring: true,
	}
	if input.IsRecurring != nil {
		holiday.IsRecurring = *input.IsRecurring
	}

	if err := database.DB.Create(&holiday).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Cannot create holiday", err)
	}

	return utils.SuccessResponse(c, fiber.StatusCreated, holiday)
}

func UpdateHoliday(c *fiber.Ctx) error {
	input, okInput := c.Locals("input").(model.UpdateHolidayInput)
	holiday, okHoliday := c.Locals("holiday").(model.Holiday)
	if !okInput || !okHoliday {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, nil)
	}

	if input.Name != nil {
		holiday.Name = *input.Name
	}
	if input.Date != nil {
		date, err := time.Parse("2006-01-02", *input.Date)
		if err != nil {
			return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, "Invalid date", err, "date")
		}
		holiday.Date = date
	}
	if input.IsRecurring != nil {
		holiday.IsRecurring = *input.IsRecurring
	}

	if err := database.DB.Save(&holiday).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_EDIT, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, holiday)
}

func DeleteHolidays(c *fiber.Ctx) error {
	input, ok := c.Locals("deleteIds").(model.ArrayId)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, nil)
	}

	if err := database.DB.Delete(&model.Holiday{}, input.IDs).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Cannot delete holidays", err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"deleted": len(input.IDs)})
}
