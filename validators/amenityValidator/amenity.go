package amenityValidator

import (
	"stayhub/middleware"
	"stayhub/validators"

	"github.com/gofiber/fiber/v2"
)

// CreateAmenity validator middleware
func CreateAmenity() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Name string `json:"name" validate:"required,max=50"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if err := validators.Validate.Struct(reqData); err != nil {
			return middleware.ValidationErrorResponse(c, validators.Collect(err))
		}

		return c.Next()
	}
}

// UpdateAmenity validator middleware
func UpdateAmenity() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Name string `json:"name" validate:"required,max=50"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if err := validators.Validate.Struct(reqData); err != nil {
			return middleware.ValidationErrorResponse(c, validators.Collect(err))
		}

		return c.Next()
	}
}
