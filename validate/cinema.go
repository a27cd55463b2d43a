package validate

import (
	"cinema_scheduler/constants"
	"cinema_scheduler/database"
	"cinema_scheduler/model"
	"cinema_scheduler/utils"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
)

func CreateCinema() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.CreateCinemaInput

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
		database.DB.Model(&model.Cinema{}).Where("name = ? AND address = ?", input.Name, input.Address).Count(&count)
		if count > 0 {
			return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, "Cinema already exists at this address", nil, "name")
		}

		c.Locals("input", input)
		return c.Next()
	}
}

func EditCinema() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.EditCinemaInput

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

		if input.Timezone != nil {
			if _, err := time.LoadLocation(*input.Timezone); err != nil {
				return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, "Unknown IANA timezone", err, "timezone")
			}
		}

		inputId, ok := c.Locals("inputId").(int)
		if !ok {
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, nil)
		}

		var cinema model.Cinema
		if err := database.DB.Where("id = ?", inputId).First(&cinema).Error; err != nil {
			return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, constants.CINEMA_NOT_FOUND, err, "cinemaId")
		}

		c.Locals("input", input)
		c.Locals("cinema", cinema)
		return c.Next()
	}
}
