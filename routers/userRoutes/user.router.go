package userRoutes

import (
	userControllers "stayhub/controllers/userControllers"
	"stayhub/middleware"
	"stayhub/services"
	userValidators "stayhub/validators/userValidator"

	"github.com/gofiber/fiber/v2"
)

func SetupUserRoutes(app *fiber.App, facade *services.Facade) {
	controller := userControllers.New(facade)

	userGroup := app.Group("/users")

	userGroup.Post("/", userValidators.CreateUser(), middleware.JWTMiddleware, controller.CreateUser)
	userGroup.Get("/", controller.ListUsers)
	userGroup.Get("/:id", controller.GetUser)
	userGroup.Put("/:id", userValidators.UpdateUser(), middleware.JWTMiddleware, controller.UpdateUser)
	userGroup.Delete("/:id", middleware.JWTMiddleware, controller.DeleteUser)
}
