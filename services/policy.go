package services

import "stayhub/models"

// Authorization policy: pure decision functions over (actor, resource).
// The facade decides which operations require which checks; no operation
// is globally role-gated here.

func IsAdmin(actor Actor) bool {
	return actor.IsAdmin
}

func OwnsPlace(actor Actor, place *models.Place) bool {
	return actor.ID == place.OwnerID
}

func OwnsReview(actor Actor, review *models.Review) bool {
	return actor.ID == review.UserID
}
