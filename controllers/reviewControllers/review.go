package reviewController

import (
	"stayhub/middleware"
	"stayhub/services"

	"github.com/gofiber/fiber/v2"
)

type ReviewController struct {
	facade *services.Facade
}

func New(facade *services.Facade) *ReviewController {
	return &ReviewController{facade: facade}
}

func actorFrom(c *fiber.Ctx) services.Actor {
	id, isAdmin := middleware.ActorLocals(c)
	return services.Actor{ID: id, IsAdmin: isAdmin}
}

// CreateReview submits the actor's review of a place.
func (rc *ReviewController) CreateReview(c *fiber.Ctx) error {
	reqData := new(struct {
		PlaceID string `json:"place_id"`
		Text    string `json:"text"`
		Rating  int    `json:"rating"`
	})
	if err := c.BodyParser(reqData); err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	review, err := rc.facade.CreateReview(actorFrom(c), services.CreateReviewInput{
		PlaceID: reqData.PlaceID,
		Text:    reqData.Text,
		Rating:  reqData.Rating,
	})
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Review created successfully.", review.ToMap())
}

func (rc *ReviewController) GetReview(c *fiber.Ctx) error {
	review, err := rc.facade.GetReview(c.Params("id"))
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Review fetched!", review.ToMap())
}

func (rc *ReviewController) ListReviews(c *fiber.Ctx) error {
	reviews, err := rc.facade.ListReviews()
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}

	data := make([]map[string]interface{}, 0, len(reviews))
	for i := range reviews {
		data = append(data, reviews[i].ToMap())
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Reviews fetched!", data)
}

// UpdateReview edits text or rating. Author only.
func (rc *ReviewController) UpdateReview(c *fiber.Ctx) error {
	reqData := new(struct {
		Text   *string `json:"text"`
		Rating *int    `json:"rating"`
	})
	if err := c.BodyParser(reqData); err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	review, err := rc.facade.UpdateReview(actorFrom(c), c.Params("id"), services.UpdateReviewInput{
		Text:   reqData.Text,
		Rating: reqData.Rating,
	})
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Review updated successfully.", review.ToMap())
}

// DeleteReview removes a review. Author only.
func (rc *ReviewController) DeleteReview(c *fiber.Ctx) error {
	if err := rc.facade.DeleteReview(actorFrom(c), c.Params("id")); err != nil {
		return middleware.ErrorResponse(c, err)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Review deleted successfully.", nil)
}
