package services

import (
	"stayhub/repository"

	"gorm.io/gorm"
)

// Actor is the authenticated identity performing a request, extracted from
// the token by the middleware.
type Actor struct {
	ID      string
	IsAdmin bool
}

// Facade exposes one operation per use case, composing validation,
// authorization policy and persistence. Repositories and the hashing
// capability are injected at construction.
type Facade struct {
	users     *repository.UserRepository
	places    *repository.PlaceRepository
	reviews   *repository.ReviewRepository
	amenities *repository.AmenityRepository
	hasher    PasswordHasher
}

func NewFacade(db *gorm.DB, hasher PasswordHasher) *Facade {
	return &Facade{
		users:     repository.NewUserRepository(db),
		places:    repository.NewPlaceRepository(db),
		reviews:   repository.NewReviewRepository(db),
		amenities: repository.NewAmenityRepository(db),
		hasher:    hasher,
	}
}
