package repository

import (
	"stayhub/models"

	"gorm.io/gorm"
)

type PlaceRepository struct {
	*Repository[models.Place]
	db *gorm.DB
}

func NewPlaceRepository(db *gorm.DB) *PlaceRepository {
	return &PlaceRepository{
		Repository: New[models.Place](db, "Place", "Place already exists"),
		db:         db,
	}
}

// HasAmenity reports whether the amenity is already linked to the place.
func (r *PlaceRepository) HasAmenity(placeID, amenityID string) (bool, error) {
	var count int64
	err := r.db.Table("place_amenities").
		Where("place_id = ? AND amenity_id = ?", placeID, amenityID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// AddAmenity links an amenity to a place.
func (r *PlaceRepository) AddAmenity(place *models.Place, amenity *models.Amenity) error {
	return r.db.Model(place).Association("Amenities").Append(amenity)
}

// RemoveAmenity unlinks an amenity from a place.
func (r *PlaceRepository) RemoveAmenity(place *models.Place, amenity *models.Amenity) error {
	return r.db.Model(place).Association("Amenities").Delete(amenity)
}

// ListAmenities returns the amenities linked to a place.
func (r *PlaceRepository) ListAmenities(place *models.Place) ([]models.Amenity, error) {
	var amenities []models.Amenity
	if err := r.db.Model(place).Association("Amenities").Find(&amenities); err != nil {
		return nil, err
	}
	return amenities, nil
}
