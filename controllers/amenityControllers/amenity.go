package amenityController

import (
	"stayhub/middleware"
	"stayhub/services"

	"github.com/gofiber/fiber/v2"
)

type AmenityController struct {
	facade *services.Facade
}

func New(facade *services.Facade) *AmenityController {
	return &AmenityController{facade: facade}
}

func actorFrom(c *fiber.Ctx) services.Actor {
	id, isAdmin := middleware.ActorLocals(c)
	return services.Actor{ID: id, IsAdmin: isAdmin}
}

// CreateAmenity registers a new amenity (admin only).
func (ac *AmenityController) CreateAmenity(c *fiber.Ctx) error {
	reqData := new(struct {
		Name string `json:"name"`
	})
	if err := c.BodyParser(reqData); err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	amenity, err := ac.facade.CreateAmenity(actorFrom(c), reqData.Name)
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Amenity created successfully.", amenity.ToMap())
}

// UpdateAmenity renames an amenity (admin only).
func (ac *AmenityController) UpdateAmenity(c *fiber.Ctx) error {
	reqData := new(struct {
		Name string `json:"name"`
	})
	if err := c.BodyParser(reqData); err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	amenity, err := ac.facade.UpdateAmenity(actorFrom(c), c.Params("id"), reqData.Name)
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Amenity updated successfully.", amenity.ToMap())
}

func (ac *AmenityController) GetAmenity(c *fiber.Ctx) error {
	amenity, err := ac.facade.GetAmenity(c.Params("id"))
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Amenity fetched!", amenity.ToMap())
}

func (ac *AmenityController) ListAmenities(c *fiber.Ctx) error {
	amenities, err := ac.facade.ListAmenities()
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}

	data := make([]map[string]interface{}, 0, len(amenities))
	for i := range amenities {
		data = append(data, amenities[i].ToMap())
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Amenities fetched!", data)
}
