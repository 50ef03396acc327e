package services

import (
	"stayhub/apperrors"
	"stayhub/models"
)

// CreateAmenity registers a new amenity. Admin-only.
func (f *Facade) CreateAmenity(actor Actor, name string) (*models.Amenity, error) {
	if !IsAdmin(actor) {
		return nil, apperrors.Forbidden("Admin access required")
	}

	amenity, err := models.NewAmenity(name)
	if err != nil {
		return nil, err
	}

	if err := f.amenities.Add(amenity); err != nil {
		return nil, err
	}
	return amenity, nil
}

// UpdateAmenity renames an amenity. Admin-only. Amenities are never
// deleted on their own; only place associations come and go.
func (f *Facade) UpdateAmenity(actor Actor, id, name string) (*models.Amenity, error) {
	if !IsAdmin(actor) {
		return nil, apperrors.Forbidden("Admin access required")
	}

	amenity, err := f.amenities.Get(id)
	if err != nil {
		return nil, err
	}

	if err := models.ValidateName("name", name); err != nil {
		return nil, err
	}
	amenity.Name = name

	if err := f.amenities.Save(amenity); err != nil {
		return nil, err
	}
	return amenity, nil
}

func (f *Facade) GetAmenity(id string) (*models.Amenity, error) {
	return f.amenities.Get(id)
}

func (f *Facade) ListAmenities() ([]models.Amenity, error) {
	return f.amenities.ListAll()
}
