package middleware

import (
	"errors"
	"log"

	"stayhub/apperrors"

	"github.com/gofiber/fiber/v2"
)

func JsonResponse(c *fiber.Ctx, statusCode int, status bool, message string, data interface{}) error {
	return c.Status(statusCode).JSON(fiber.Map{
		"status":  status,
		"message": message,
		"data":    data,
	})
}

func ValidationErrorResponse(c *fiber.Ctx, errs map[string]string) error {
	return JsonResponse(c, fiber.StatusUnprocessableEntity, false, "Validation failed!", errs)
}

// ErrorResponse translates a tagged service error into the protocol-level
// response. Unknown errors are logged and reported as 500.
func ErrorResponse(c *fiber.Ctx, err error) error {
	var ae *apperrors.Error
	if errors.As(err, &ae) {
		switch ae.Code {
		case apperrors.CodeValidation:
			return JsonResponse(c, fiber.StatusBadRequest, false, ae.Message, fiber.Map{
				"field": ae.Field,
			})
		case apperrors.CodeNotFound:
			return JsonResponse(c, fiber.StatusNotFound, false, ae.Message, nil)
		case apperrors.CodeForbidden:
			return JsonResponse(c, fiber.StatusForbidden, false, ae.Message, nil)
		case apperrors.CodeUnauthenticated:
			return JsonResponse(c, fiber.StatusUnauthorized, false, ae.Message, nil)
		case apperrors.CodeConflict:
			return JsonResponse(c, fiber.StatusConflict, false, ae.Message, nil)
		}
	}

	log.Printf("Unexpected error: %v", err)
	return JsonResponse(c, fiber.StatusInternalServerError, false, "Something went wrong!", nil)
}

// ActorLocals reads the identity placed in the context by JWTMiddleware.
func ActorLocals(c *fiber.Ctx) (string, bool) {
	userID, _ := c.Locals("userId").(string)
	isAdmin, _ := c.Locals("isAdmin").(bool)
	return userID, isAdmin
}
