package validate

import (
	"cinema_scheduler/constants"
	"cinema_scheduler/database"
	"cinema_scheduler/model"
	"cinema_scheduler/utils"
	"fmt"

	"github.com/gofiber/fiber/v2"
)

func CreateHall() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.CreateHallInput

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

		var cinema model.Cinema
		if err := database.DB.Where("id = ?", input.CinemaId).First(&cinema).Error; err != nil {
			return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, constants.CINEMA_NOT_FOUND, err, "cinemaId")
		}

		var count int64
		database.DB.Model(&model.Hall{}).Where("cinema_id = ? AND name = ?", input.CinemaId, input.Name).Count(&count)
		if count > 0 {
			return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, "Hall name already used in this cinema", nil, "name")
		}

		c.Locals("input", input)
		return c.Next()
	}
}

func EditHall() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.EditHallInput

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

		var hall model.Hall
		if err := database.DB.Where("id = ?", inputId).First(&hall).Error; err != nil {
			return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, constants.HALL_NOT_FOUND, err, "hallId")
		}

		c.Locals("input", input)
		c.Locals("hall", hall)
		return c.Next()
	}
}
