package reviewRoutes

import (
	reviewControllers "stayhub/controllers/reviewControllers"
	"stayhub/middleware"
	"stayhub/services"
	reviewValidators "stayhub/validators/reviewValidator"

	"github.com/gofiber/fiber/v2"
)

func SetupReviewRoutes(app *fiber.App, facade *services.Facade) {
	controller := reviewControllers.New(facade)

	reviewGroup := app.Group("/reviews")

	reviewGroup.Post("/", reviewValidators.CreateReview(), middleware.JWTMiddleware, controller.CreateReview)
	reviewGroup.Get("/", controller.ListReviews)
	reviewGroup.Get("/:id", controller.GetReview)
	reviewGroup.Put("/:id", reviewValidators.UpdateReview(), middleware.JWTMiddleware, controller.UpdateReview)
	reviewGroup.Delete("/:id", middleware.JWTMiddleware, controller.DeleteReview)
}
