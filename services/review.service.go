package services

import (
	"stayhub/apperrors"
	"stayhub/models"
)

type CreateReviewInput struct {
	PlaceID string
	Text    string
	Rating  int
}

type UpdateReviewInput struct {
	Text   *string
	Rating *int
}

// CreateReview persists the actor's review of a place. A user cannot
// review their own place and may review a place at most once; the
// composite unique index catches whatever slips past the prechecks.
func (f *Facade) CreateReview(actor Actor, in CreateReviewInput) (*models.Review, error) {
	place, err := f.places.Get(in.PlaceID)
	if err != nil {
		return nil, err
	}

	if place.OwnerID == actor.ID {
		return nil, apperrors.Conflict("You cannot review your own place")
	}

	existing, err := f.reviews.FindByUserAndPlace(actor.ID, in.PlaceID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperrors.Conflict("You have already reviewed this place")
	}

	review, err := models.NewReview(in.Text, in.Rating, in.PlaceID, actor.ID)
	if err != nil {
		return nil, err
	}

	if err := f.reviews.Add(review); err != nil {
		return nil, err
	}
	return review, nil
}

func (f *Facade) GetReview(id string) (*models.Review, error) {
	return f.reviews.Get(id)
}

func (f *Facade) ListReviews() ([]models.Review, error) {
	return f.reviews.ListAll()
}

// ListPlaceReviews returns all reviews of one place.
func (f *Facade) ListPlaceReviews(placeID string) ([]models.Review, error) {
	if _, err := f.places.Get(placeID); err != nil {
		return nil, err
	}
	return f.reviews.ListByPlace(placeID)
}

// UpdateReview applies a partial update to text and rating. Authorship is
// the sole authority here: admins get no override on reviews.
func (f *Facade) UpdateReview(actor Actor, id string, in UpdateReviewInput) (*models.Review, error) {
	review, err := f.reviews.Get(id)
	if err != nil {
		return nil, err
	}

	if !OwnsReview(actor, review) {
		return nil, apperrors.Forbidden("Only the author can modify a review")
	}

	if in.Text != nil {
		if err := models.ValidateReviewText(*in.Text); err != nil {
			return nil, err
		}
		review.Text = *in.Text
	}
	if in.Rating != nil {
		if err := models.ValidateRating(*in.Rating); err != nil {
			return nil, err
		}
		review.Rating = *in.Rating
	}

	if err := f.reviews.Save(review); err != nil {
		return nil, err
	}
	return review, nil
}

// DeleteReview removes a review. Author-only, same as update.
func (f *Facade) DeleteReview(actor Actor, id string) error {
	review, err := f.reviews.Get(id)
	if err != nil {
		return err
	}

	if !OwnsReview(actor, review) {
		return apperrors.Forbidden("Only the author can delete a review")
	}

	return f.reviews.Delete(id)
}
