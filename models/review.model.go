package models

type Review struct {
	Base
	Text   string `gorm:"type:text;not null" json:"text"`
	Rating int    `gorm:"not null;check:rating >= 1 AND rating <= 5" json:"rating"`
	// A user may review a place at most once; the composite unique index is
	// the authoritative guard against racing writers.
	PlaceID string `gorm:"type:varchar(36);not null;uniqueIndex:idx_reviews_user_place" json:"place_id"`
	UserID  string `gorm:"type:varchar(36);not null;uniqueIndex:idx_reviews_user_place" json:"user_id"`
}

// NewReview validates text and rating and builds a review. Referential and
// cross-entity checks (place exists, no self-review, no duplicate) are the
// facade's job.
func NewReview(text string, rating int, placeID, userID string) (*Review, error) {
	if err := ValidateReviewText(text); err != nil {
		return nil, err
	}
	if err := ValidateRating(rating); err != nil {
		return nil, err
	}
	return &Review{
		Base:    newBase(),
		Text:    text,
		Rating:  rating,
		PlaceID: placeID,
		UserID:  userID,
	}, nil
}

func (r *Review) ToMap() map[string]interface{} {
	m := r.baseMap()
	m["text"] = r.Text
	m["rating"] = r.Rating
	m["place_id"] = r.PlaceID
	m["user_id"] = r.UserID
	return m
}
