package placeValidator

import (
	"stayhub/middleware"
	"stayhub/validators"

	"github.com/gofiber/fiber/v2"
)

// CreatePlace validator middleware. Numeric range rules (price, latitude,
// longitude) belong to the entity validators; this only rejects malformed
// shapes early.
func CreatePlace() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Title       string   `json:"title" validate:"required,max=100"`
			Description string   `json:"description"`
			Price       *float64 `json:"price" validate:"required"`
			Latitude    *float64 `json:"latitude" validate:"required"`
			Longitude   *float64 `json:"longitude" validate:"required"`
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

// UpdatePlace validator middleware
func UpdatePlace() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Title       *string  `json:"title" validate:"omitempty,max=100"`
			Description *string  `json:"description"`
			Price       *float64 `json:"price"`
			Latitude    *float64 `json:"latitude"`
			Longitude   *float64 `json:"longitude"`
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
