package validate

import (
	"cinema_scheduler/constants"
	"cinema_scheduler/database"
	"cinema_scheduler/model"
	"cinema_scheduler/utils"
	"fmt"

	"github.com/gofiber/fiber/v2"
)

func CreateRelease() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.CreateReleaseInput

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

		if input.EndDate < input.StartDate {
			return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, "End date must not be before start date", nil, "endDate")
		}

		var movie model.Movie
		if err := database.DB.Where("id = ?", input.MovieId).First(&movie).Error; err != nil {
			return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, constants.MOVIE_NOT_FOUND, err, "movieId")
		}

		c.Locals("input", input)
		return c.Next()
	}
}

func UpdateRelease() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.UpdateReleaseInput

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

		var release model.MovieRelease
		if err := database.DB.Where("id = ?", inputId).First(&release).Error; err != nil {
			return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, constants.RELEASE_NOT_FOUND, err, "releaseId")
		}

		startDate := release.StartDate.String()
		endDate := release.EndDate.String()
		if input.StartDate != nil {
			startDate = *input.StartDate
		}
		if input.EndDate != nil {
			endDate = *input.EndDate
		}
		if endDate < startDate {
			return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, "End date must not be before start date", nil, "endDate")
		}

		c.Locals("input", input)
		c.Locals("release", release)
		return c.Next()
	}
}
