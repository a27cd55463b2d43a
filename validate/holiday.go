package validate

import (
	"cinema_scheduler/constants"
	"cinema_scheduler/database"
	"cinema_scheduler/model"
	"cinema_scheduler/utils"
	"fmt"

	"github.com/gofiber/fiber/v2"
)

func CreateHoliday() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.CreateHolidayInput

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

		var count int64
		database.DB.Model(&model.Holiday{}).Where("name = ? AND date = ?", input.Name, input.Date).Count(&count)
		if count > 0 {
			return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, "Holiday already exists on this date", nil, "date")
		}

		c.Locals("input", input)
		return c.Next()
	}
}

func UpdateHoliday() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.UpdateHolidayInput

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

		inputId, ok := c.Locals("inputId").(int)
		if !ok {
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, nil)
		}

		var holiday model.Holiday
		if err := database.DB.Where("id = ?", inputId).First(&holiday).Error; err != nil {
			return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, constants.HOLIDAY_NOT_FOUND, err, "holidayId")
		}

		c.Locals("input", input)
		c.Locals("holiday", holiday)
		return c.Next()
	}
}
