package amenityRoutes

import (
	amenityControllers "stayhub/controllers/amenityControllers"
	"stayhub/middleware"
	"stayhub/services"
	amenityValidators "stayhub/validators/amenityValidator"

	"github.com/gofiber/fiber/v2"
)

func SetupAmenityRoutes(app *fiber.App, facade *services.Facade) {
	controller := amenityControllers.New(facade)

	amenityGroup := app.Group("/amenities")

	amenityGroup.Post("/", amenityValidators.CreateAmenity(), middleware.JWTMiddleware, controller.CreateAmenity)
	amenityGroup.Get("/", controller.ListAmenities)
	amenityGroup.Get("/:id", controller.GetAmenity)
	amenityGroup.Put("/:id", amenityValidators.UpdateAmenity(), middleware.JWTMiddleware, controller.UpdateAmenity)
}
