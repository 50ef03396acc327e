package repository

import (
	"errors"

	"stayhub/models"

	"gorm.io/gorm"
)

type ReviewRepository struct {
	*Repository[models.Review]
	db *gorm.DB
}

func NewReviewRepository(db *gorm.DB) *ReviewRepository {
	return &ReviewRepository{
		Repository: New[models.Review](db, "Review", "You have already reviewed this place"),
		db:         db,
	}
}

// FindByUserAndPlace returns the user's review of a place, or nil if the
// user has not reviewed it. Backs the one-review-per-pair rule.
func (r *ReviewRepository) FindByUserAndPlace(userID, placeID string) (*models.Review, error) {
	var review models.Review
	if err := r.db.First(&review, "user_id = ? AND place_id = ?", userID, placeID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &review, nil
}

// ListByPlace returns all reviews for one place.
func (r *ReviewRepository) ListByPlace(placeID string) ([]models.Review, error) {
	var reviews []models.Review
	if err := r.db.Find(&reviews, "place_id = ?", placeID).Error; err != nil {
		return nil, err
	}
	return reviews, nil
}
