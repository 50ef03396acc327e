package placeRoutes

import (
	placeControllers "stayhub/controllers/placeControllers"
	"stayhub/middleware"
	"stayhub/services"
	placeValidators "stayhub/validators/placeValidator"

	"github.com/gofiber/fiber/v2"
)

func SetupPlaceRoutes(app *fiber.App, facade *services.Facade) {
	controller := placeControllers.New(facade)

	placeGroup := app.Group("/places")

	placeGroup.Post("/", placeValidators.CreatePlace(), middleware.JWTMiddleware, controller.CreatePlace)
	placeGroup.Get("/", controller.ListPlaces)
	placeGroup.Get("/:id", controller.GetPlace)
	placeGroup.Put("/:id", placeValidators.UpdatePlace(), middleware.JWTMiddleware, controller.UpdatePlace)
	placeGroup.Delete("/:id", middleware.JWTMiddleware, controller.DeletePlace)

	placeGroup.Get("/:id/reviews", controller.ListReviews)
	placeGroup.Get("/:id/amenities", controller.ListAmenities)
	placeGroup.Post("/:id/amenities/:amenityId", middleware.JWTMiddleware, controller.AddAmenity)
	placeGroup.Delete("/:id/amenities/:amenityId", middleware.JWTMiddleware, controller.RemoveAmenity)
}
