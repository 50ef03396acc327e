package authController

import (
	"stayhub/middleware"
	"stayhub/services"

	"github.com/gofiber/fiber/v2"
)

type AuthController struct {
	facade *services.Facade
}

func New(facade *services.Facade) *AuthController {
	return &AuthController{facade: facade}
}

// Login verifies credentials and issues a bearer token.
func (ac *AuthController) Login(c *fiber.Ctx) error {
	reqData := new(struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	})
	if err := c.BodyParser(reqData); err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Failed to parse request body!", nil)
	}

	user, err := ac.facade.Login(reqData.Email, reqData.Password)
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}

	token, err := middleware.GenerateJWT(user.ID, user.IsAdmin, user.Email)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to issue token!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Login successful.", fiber.Map{
		"token": token,
		"user":  user.ToMap(),
	})
}
