package services

import (
	"stayhub/apperrors"
	"stayhub/models"
)

type CreatePlaceInput struct {
	Title       string
	Description string
	Price       float64
	Latitude    float64
	Longitude   float64
	OwnerID     string
}

type UpdatePlaceInput struct {
	Title       *string
	Description *string
	Price       *float64
	Latitude    *float64
	Longitude   *float64
}

// CreatePlace validates all fields, resolves the owner and persists.
// There is no uniqueness constraint on places.
func (f *Facade) CreatePlace(in CreatePlaceInput) (*models.Place, error) {
	place, err := models.NewPlace(in.Title, in.Description, in.Price, in.Latitude, in.Longitude, in.OwnerID)
	if err != nil {
		return nil, err
	}

	if _, err := f.users.Get(in.OwnerID); err != nil {
		return nil, err
	}

	if err := f.places.Add(place); err != nil {
		return nil, err
	}
	return place, nil
}

func (f *Facade) GetPlace(id string) (*models.Place, error) {
	return f.places.Get(id)
}

func (f *Facade) ListPlaces() ([]models.Place, error) {
	return f.places.ListAll()
}

// UpdatePlace applies a partial update. Only the owner or an admin may
// mutate a place.
func (f *Facade) UpdatePlace(actor Actor, id string, in UpdatePlaceInput) (*models.Place, error) {
	place, err := f.places.Get(id)
	if err != nil {
		return nil, err
	}

	if !OwnsPlace(actor, place) && !IsAdmin(actor) {
		return nil, apperrors.Forbidden("Unauthorized action")
	}

	if in.Title != nil {
		if err := models.ValidateTitle(*in.Title); err != nil {
			return nil, err
		}
		place.Title = *in.Title
	}
	if in.Description != nil {
		place.Description = *in.Description
	}
	if in.Price != nil {
		if err := models.ValidatePrice(*in.Price); err != nil {
			return nil, err
		}
		place.Price = *in.Price
	}
	if in.Latitude != nil {
		if err := models.ValidateLatitude(*in.Latitude); err != nil {
			return nil, err
		}
		place.Latitude = *in.Latitude
	}
	if in.Longitude != nil {
		if err := models.ValidateLongitude(*in.Longitude); err != nil {
			return nil, err
		}
		place.Longitude = *in.Longitude
	}

	if err := f.places.Save(place); err != nil {
		return nil, err
	}
	return place, nil
}

// DeletePlace removes a place and, by cascade, its reviews and amenity
// associations. Same authorization as update.
func (f *Facade) DeletePlace(actor Actor, id string) error {
	place, err := f.places.Get(id)
	if err != nil {
		return err
	}

	if !OwnsPlace(actor, place) && !IsAdmin(actor) {
		return apperrors.Forbidden("Unauthorized action")
	}

	return f.places.Delete(id)
}

// AddPlaceAmenity links an amenity to a place. Owner-or-admin gated like
// any other place mutation; a duplicate pair is a Conflict.
func (f *Facade) AddPlaceAmenity(actor Actor, placeID, amenityID string) error {
	place, err := f.places.Get(placeID)
	if err != nil {
		return err
	}

	if !OwnsPlace(actor, place) && !IsAdmin(actor) {
		return apperrors.Forbidden("Unauthorized action")
	}

	amenity, err := f.amenities.Get(amenityID)
	if err != nil {
		return err
	}

	linked, err := f.places.HasAmenity(placeID, amenityID)
	if err != nil {
		return err
	}
	if linked {
		return apperrors.Conflict("Amenity is already linked to this place")
	}

	return f.places.AddAmenity(place, amenity)
}

// RemovePlaceAmenity unlinks an amenity from a place.
func (f *Facade) RemovePlaceAmenity(actor Actor, placeID, amenityID string) error {
	place, err := f.places.Get(placeID)
	if err != nil {
		return err
	}

	if !OwnsPlace(actor, place) && !IsAdmin(actor) {
		return apperrors.Forbidden("Unauthorized action")
	}

	amenity, err := f.amenities.Get(amenityID)
	if err != nil {
		return err
	}

	linked, err := f.places.HasAmenity(placeID, amenityID)
	if err != nil {
		return err
	}
	if !linked {
		return apperrors.NotFound("Place amenity")
	}

	return f.places.RemoveAmenity(place, amenity)
}

// ListPlaceAmenities returns the amenities linked to a place.
func (f *Facade) ListPlaceAmenities(placeID string) ([]models.Amenity, error) {
	place, err := f.places.Get(placeID)
	if err != nil {
		return nil, err
	}
	return f.places.ListAmenities(place)
}
