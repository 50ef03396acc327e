package authRoutes

import (
	authControllers "stayhub/controllers/auth"
	"stayhub/services"
	authValidators "stayhub/validators/auth"

	"github.com/gofiber/fiber/v2"
)

func SetupAuthRoutes(app *fiber.App, facade *services.Facade) {
	controller := authControllers.New(facade)

	authGroup := app.Group("/auth")

	authGroup.Post("/login", authValidators.Login(), controller.Login)
}
