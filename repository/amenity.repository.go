package repository

import (
	"stayhub/models"

	"gorm.io/gorm"
)

type AmenityRepository struct {
	*Repository[models.Amenity]
}

func NewAmenityRepository(db *gorm.DB) *AmenityRepository {
	return &AmenityRepository{
		Repository: New[models.Amenity](db, "Amenity", "Amenity already exists"),
	}
}
