package userValidator

import (
	"stayhub/middleware"
	"stayhub/validators"

	"github.com/gofiber/fiber/v2"
)

// CreateUser validator middleware
func CreateUser() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			FirstName string `json:"first_name" validate:"required,max=50"`
			LastName  string `json:"last_name" validate:"required,max=50"`
			Email     string `json:"email" validate:"required,email"`
			Password  string `json:"password" validate:"required,min=8"`
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

// UpdateUser validator middleware. All fields optional; authorization of
// email/password changes is the facade's decision, not a shape concern.
func UpdateUser() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			FirstName *string `json:"first_name" validate:"omitempty,max=50"`
			LastName  *string `json:"last_name" validate:"omitempty,max=50"`
			Email     *string `json:"email" validate:"omitempty,email"`
			Password  *string `json:"password" validate:"omitempty,min=8"`
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
