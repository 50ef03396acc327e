package placeController

import (
	"stayhub/middleware"
	"stayhub/services"

	"github.com/gofiber/fiber/v2"
)

type PlaceController struct {
	facade *services.Facade
}

func New(facade *services.Facade) *PlaceController {
	return &PlaceController{facade: facade}
}

func actorFrom(c *fiber.Ctx) services.Actor {
	id, isAdmin := middleware.ActorLocals(c)
	return services.Actor{ID: id, IsAdmin: isAdmin}
}

// CreatePlace registers a new place owned by the authenticated actor.
func (pc *PlaceController) CreatePlace(c *fiber.Ctx) error {
	actor := actorFrom(c)

	reqData := new(struct {
		Title       string  `json:"title"`
		Description string  `json:"description"`
		Price       float64 `json:"price"`
		Latitude    float64 `json:"latitude"`
		Longitude   float64 `json:"longitude"`
	})
	if err := c.BodyParser(reqData); err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	place, err := pc.facade.CreatePlace(services.CreatePlaceInput{
		Title:       reqData.Title,
		Description: reqData.Description,
		Price:       reqData.Price,
		Latitude:    reqData.Latitude,
		Longitude:   reqData.Longitude,
		OwnerID:     actor.ID,
	})
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Place created successfully.", place.ToMap())
}

func (pc *PlaceController) GetPlace(c *fiber.Ctx) error {
	place, err := pc.facade.GetPlace(c.Params("id"))
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Place fetched!", place.ToMap())
}

func (pc *PlaceController) ListPlaces(c *fiber.Ctx) error {
	places, err := pc.facade.ListPlaces()
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}

	data := make([]map[string]interface{}, 0, len(places))
	for i := range places {
		data = append(data, places[i].ToMap())
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Places fetched!", data)
}

// UpdatePlace applies a partial update (owner or admin).
func (pc *PlaceController) UpdatePlace(c *fiber.Ctx) error {
	reqData := new(struct {
		Title       *string  `json:"title"`
		Description *string  `json:"description"`
		Price       *float64 `json:"price"`
		Latitude    *float64 `json:"latitude"`
		Longitude   *float64 `json:"longitude"`
	})
	if err := c.BodyParser(reqData); err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	place, err := pc.facade.UpdatePlace(actorFrom(c), c.Params("id"), services.UpdatePlaceInput{
		Title:       reqData.Title,
		Description: reqData.Description,
		Price:       reqData.Price,
		Latitude:    reqData.Latitude,
		Longitude:   reqData.Longitude,
	})
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Place updated successfully.", place.ToMap())
}

// DeletePlace removes a place and cascades to its reviews and amenity
// links (owner or admin).
func (pc *PlaceController) DeletePlace(c *fiber.Ctx) error {
	if err := pc.facade.DeletePlace(actorFrom(c), c.Params("id")); err != nil {
		return middleware.ErrorResponse(c, err)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Place deleted successfully.", nil)
}

// AddAmenity links an amenity to the place.
func (pc *PlaceController) AddAmenity(c *fiber.Ctx) error {
	err := pc.facade.AddPlaceAmenity(actorFrom(c), c.Params("id"), c.Params("amenityId"))
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Amenity added to place.", nil)
}

// RemoveAmenity unlinks an amenity from the place.
func (pc *PlaceController) RemoveAmenity(c *fiber.Ctx) error {
	err := pc.facade.RemovePlaceAmenity(actorFrom(c), c.Params("id"), c.Params("amenityId"))
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Amenity removed from place.", nil)
}

func (pc *PlaceController) ListAmenities(c *fiber.Ctx) error {
	amenities, err := pc.facade.ListPlaceAmenities(c.Params("id"))
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}

	data := make([]map[string]interface{}, 0, len(amenities))
	for i := range amenities {
		data = append(data, amenities[i].ToMap())
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Place amenities fetched!", data)
}

func (pc *PlaceController) ListReviews(c *fiber.Ctx) error {
	reviews, err := pc.facade.ListPlaceReviews(c.Params("id"))
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}

	data := make([]map[string]interface{}, 0, len(reviews))
	for i := range reviews {
		data = append(data, reviews[i].ToMap())
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Place reviews fetched!", data)
}
