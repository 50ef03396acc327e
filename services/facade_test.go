package services_test

import (
	"fmt"
	"strings"
	"testing"

	"stayhub/apperrors"
	"stayhub/database"
	"stayhub/models"
	"stayhub/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestFacade(t *testing.T) *services.Facade {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_foreign_keys=on", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	return services.NewFacade(db, services.BcryptHasher{Cost: bcrypt.MinCost})
}

var bootstrapAdmin = services.Actor{ID: "bootstrap", IsAdmin: true}

func createUser(t *testing.T, f *services.Facade, email string, isAdmin bool) *models.User {
	t.Helper()
	user, err := f.CreateUser(bootstrapAdmin, services.CreateUserInput{
		FirstName: "Test",
		LastName:  "User",
		Email:     email,
		Password:  "secret-pass",
		IsAdmin:   isAdmin,
	})
	require.NoError(t, err)
	return user
}

func createPlace(t *testing.T, f *services.Facade, ownerID string) *models.Place {
	t.Helper()
	place, err := f.CreatePlace(services.CreatePlaceInput{
		Title:     "Harbor flat",
		Price:     120,
		Latitude:  48.85,
		Longitude: 2.35,
		OwnerID:   ownerID,
	})
	require.NoError(t, err)
	return place
}

func asActor(u *models.User) services.Actor {
	return services.Actor{ID: u.ID, IsAdmin: u.IsAdmin}
}

func TestCreatePlaceRoundTrip(t *testing.T) {
	f := newTestFacade(t)
	owner := createUser(t, f, "owner@example.com", false)

	in := services.CreatePlaceInput{
		Title:       "Old mill",
		Description: "quiet, riverside",
		Price:       75.5,
		Latitude:    -33.9,
		Longitude:   18.4,
		OwnerID:     owner.ID,
	}
	created, err := f.CreatePlace(in)
	require.NoError(t, err)

	got, err := f.GetPlace(created.ID)
	require.NoError(t, err)
	assert.Equal(t, in.Title, got.Title)
	assert.Equal(t, in.Description, got.Description)
	assert.Equal(t, in.Price, got.Price)
	assert.Equal(t, in.Latitude, got.Latitude)
	assert.Equal(t, in.Longitude, got.Longitude)
	assert.Equal(t, owner.ID, got.OwnerID)
}

func TestCreatePlaceUnknownOwner(t *testing.T) {
	f := newTestFacade(t)

	_, err := f.CreatePlace(services.CreatePlaceInput{
		Title: "Ghost house", Price: 10, Latitude: 0, Longitude: 0, OwnerID: "no-such-user",
	})
	assert.Equal(t, apperrors.CodeNotFound, apperrors.CodeOf(err))
}

func TestCreatePlaceInvalidLatitude(t *testing.T) {
	f := newTestFacade(t)
	owner := createUser(t, f, "owner@example.com", false)

	_, err := f.CreatePlace(services.CreatePlaceInput{
		Title: "Flat", Price: 10, Latitude: 95.0, Longitude: 0, OwnerID: owner.ID,
	})
	require.Error(t, err)
	assert.Equal(t, apperrors.CodeValidation, apperrors.CodeOf(err))
	assert.Equal(t, "latitude", apperrors.FieldOf(err))
}

func TestUpdatePlaceAuthorization(t *testing.T) {
	f := newTestFacade(t)
	owner := createUser(t, f, "owner@example.com", false)
	stranger := createUser(t, f, "stranger@example.com", false)
	admin := createUser(t, f, "admin@example.com", true)
	place := createPlace(t, f, owner.ID)

	newPrice := 1.0

	// Non-owner, non-admin: Forbidden, fields untouched.
	_, err := f.UpdatePlace(asActor(stranger), place.ID, services.UpdatePlaceInput{Price: &newPrice})
	assert.Equal(t, apperrors.CodeForbidden, apperrors.CodeOf(err))

	unchanged, err := f.GetPlace(place.ID)
	require.NoError(t, err)
	assert.Equal(t, float64(120), unchanged.Price)

	// Owner may update.
	updated, err := f.UpdatePlace(asActor(owner), place.ID, services.UpdatePlaceInput{Price: &newPrice})
	require.NoError(t, err)
	assert.Equal(t, 1.0, updated.Price)

	// Admin override applies to places.
	title := "Renamed by admin"
	updated, err = f.UpdatePlace(asActor(admin), place.ID, services.UpdatePlaceInput{Title: &title})
	require.NoError(t, err)
	assert.Equal(t, title, updated.Title)
}

func TestUpdatePlaceRevalidatesPatch(t *testing.T) {
	f := newTestFacade(t)
	owner := createUser(t, f, "owner@example.com", false)
	place := createPlace(t, f, owner.ID)

	badLng := 200.0
	_, err := f.UpdatePlace(asActor(owner), place.ID, services.UpdatePlaceInput{Longitude: &badLng})
	require.Error(t, err)
	assert.Equal(t, "longitude", apperrors.FieldOf(err))

	got, err := f.GetPlace(place.ID)
	require.NoError(t, err)
	assert.Equal(t, 2.35, got.Longitude)
}

func TestCreateReviewInvalidRatingNotPersisted(t *testing.T) {
	f := newTestFacade(t)
	owner := createUser(t, f, "owner@example.com", false)
	guest := createUser(t, f, "guest@example.com", false)
	place := createPlace(t, f, owner.ID)

	for _, rating := range []int{0, 6, -3} {
		_, err := f.CreateReview(asActor(guest), services.CreateReviewInput{
			PlaceID: place.ID, Text: "meh", Rating: rating,
		})
		require.Error(t, err)
		assert.Equal(t, apperrors.CodeValidation, apperrors.CodeOf(err))
	}

	reviews, err := f.ListPlaceReviews(place.ID)
	require.NoError(t, err)
	assert.Empty(t, reviews)
}

func TestSelfReviewIsConflict(t *testing.T) {
	f := newTestFacade(t)
	owner := createUser(t, f, "owner@example.com", false)
	place := createPlace(t, f, owner.ID)

	_, err := f.CreateReview(asActor(owner), services.CreateReviewInput{
		PlaceID: place.ID, Text: "my place is great", Rating: 5,
	})
	assert.Equal(t, apperrors.CodeConflict, apperrors.CodeOf(err))
}

func TestDuplicateReviewIsConflict(t *testing.T) {
	f := newTestFacade(t)
	owner := createUser(t, f, "owner@example.com", false)
	guest := createUser(t, f, "guest@example.com", false)
	place := createPlace(t, f, owner.ID)

	first, err := f.CreateReview(asActor(guest), services.CreateReviewInput{
		PlaceID: place.ID, Text: "lovely", Rating: 5,
	})
	require.NoError(t, err)

	_, err = f.CreateReview(asActor(guest), services.CreateReviewInput{
		PlaceID: place.ID, Text: "changed my mind", Rating: 1,
	})
	assert.Equal(t, apperrors.CodeConflict, apperrors.CodeOf(err))

	// The first review is unmodified.
	got, err := f.GetReview(first.ID)
	require.NoError(t, err)
	assert.Equal(t, "lovely", got.Text)
	assert.Equal(t, 5, got.Rating)
}

func TestReviewMutationIsAuthorOnly(t *testing.T) {
	f := newTestFacade(t)
	owner := createUser(t, f, "owner@example.com", false)
	guest := createUser(t, f, "guest@example.com", false)
	admin := createUser(t, f, "admin@example.com", true)
	place := createPlace(t, f, owner.ID)

	review, err := f.CreateReview(asActor(guest), services.CreateReviewInput{
		PlaceID: place.ID, Text: "fine", Rating: 3,
	})
	require.NoError(t, err)

	text := "edited"

	// Admin override does NOT apply to reviews.
	_, err = f.UpdateReview(asActor(admin), review.ID, services.UpdateReviewInput{Text: &text})
	assert.Equal(t, apperrors.CodeForbidden, apperrors.CodeOf(err))

	err = f.DeleteReview(asActor(admin), review.ID)
	assert.Equal(t, apperrors.CodeForbidden, apperrors.CodeOf(err))

	// The place owner is not the author either.
	_, err = f.UpdateReview(asActor(owner), review.ID, services.UpdateReviewInput{Text: &text})
	assert.Equal(t, apperrors.CodeForbidden, apperrors.CodeOf(err))

	// The author may edit and delete.
	updated, err := f.UpdateReview(asActor(guest), review.ID, services.UpdateReviewInput{Text: &text})
	require.NoError(t, err)
	assert.Equal(t, "edited", updated.Text)

	require.NoError(t, f.DeleteReview(asActor(guest), review.ID))

	_, err = f.GetReview(review.ID)
	assert.Equal(t, apperrors.CodeNotFound, apperrors.CodeOf(err))
}

func TestCreateUserRequiresAdmin(t *testing.T) {
	f := newTestFacade(t)

	_, err := f.CreateUser(services.Actor{ID: "someone", IsAdmin: false}, services.CreateUserInput{
		FirstName: "No", LastName: "Body", Email: "nobody@example.com", Password: "secret-pass",
	})
	assert.Equal(t, apperrors.CodeForbidden, apperrors.CodeOf(err))
}

func TestDuplicateEmailIsConflict(t *testing.T) {
	f := newTestFacade(t)
	createUser(t, f, "a@b.com", false)

	_, err := f.CreateUser(bootstrapAdmin, services.CreateUserInput{
		FirstName: "Second", LastName: "User", Email: "a@b.com", Password: "secret-pass",
	})
	assert.Equal(t, apperrors.CodeConflict, apperrors.CodeOf(err))

	users, err := f.ListUsers()
	require.NoError(t, err)
	assert.Len(t, users, 1)
}

func TestCreateUserStoresDigestOnly(t *testing.T) {
	f := newTestFacade(t)
	user := createUser(t, f, "digest@example.com", false)

	assert.NotEqual(t, "secret-pass", user.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.Password), []byte("secret-pass")))
}

func TestUpdateUserSelfScope(t *testing.T) {
	f := newTestFacade(t)
	user := createUser(t, f, "self@example.com", false)
	other := createUser(t, f, "other@example.com", false)

	name := "Changed"
	updated, err := f.UpdateUser(asActor(user), user.ID, services.UpdateUserInput{FirstName: &name})
	require.NoError(t, err)
	assert.Equal(t, "Changed", updated.FirstName)

	// Email and password changes are rejected for the subject themself,
	// not silently ignored.
	email := "new@example.com"
	_, err = f.UpdateUser(asActor(user), user.ID, services.UpdateUserInput{Email: &email})
	assert.Equal(t, apperrors.CodeForbidden, apperrors.CodeOf(err))

	password := "another-pass"
	_, err = f.UpdateUser(asActor(user), user.ID, services.UpdateUserInput{Password: &password})
	assert.Equal(t, apperrors.CodeForbidden, apperrors.CodeOf(err))

	// Neither admin nor subject: Forbidden.
	_, err = f.UpdateUser(asActor(user), other.ID, services.UpdateUserInput{FirstName: &name})
	assert.Equal(t, apperrors.CodeForbidden, apperrors.CodeOf(err))
}

func TestUpdateUserAdminScope(t *testing.T) {
	f := newTestFacade(t)
	user := createUser(t, f, "subject@example.com", false)
	createUser(t, f, "taken@example.com", false)

	email := "fresh@example.com"
	password := "rotated-pass"
	updated, err := f.UpdateUser(bootstrapAdmin, user.ID, services.UpdateUserInput{
		Email: &email, Password: &password,
	})
	require.NoError(t, err)
	assert.Equal(t, "fresh@example.com", updated.Email)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(updated.Password), []byte("rotated-pass")))

	// Uniqueness is re-checked on email change.
	takenEmail := "taken@example.com"
	_, err = f.UpdateUser(bootstrapAdmin, user.ID, services.UpdateUserInput{Email: &takenEmail})
	assert.Equal(t, apperrors.CodeConflict, apperrors.CodeOf(err))
}

func TestLogin(t *testing.T) {
	f := newTestFacade(t)
	user := createUser(t, f, "login@example.com", false)

	got, err := f.Login("login@example.com", "secret-pass")
	require.NoError(t, err)
	assert.Equal(t, user.ID, got.ID)

	_, err = f.Login("login@example.com", "wrong")
	assert.Equal(t, apperrors.CodeUnauthenticated, apperrors.CodeOf(err))

	_, err = f.Login("ghost@example.com", "secret-pass")
	assert.Equal(t, apperrors.CodeUnauthenticated, apperrors.CodeOf(err))
}

func TestAmenityOperationsAreAdminGated(t *testing.T) {
	f := newTestFacade(t)
	user := createUser(t, f, "user@example.com", false)

	_, err := f.CreateAmenity(asActor(user), "Pool")
	assert.Equal(t, apperrors.CodeForbidden, apperrors.CodeOf(err))

	amenity, err := f.CreateAmenity(bootstrapAdmin, "Pool")
	require.NoError(t, err)

	_, err = f.UpdateAmenity(asActor(user), amenity.ID, "Heated pool")
	assert.Equal(t, apperrors.CodeForbidden, apperrors.CodeOf(err))

	renamed, err := f.UpdateAmenity(bootstrapAdmin, amenity.ID, "Heated pool")
	require.NoError(t, err)
	assert.Equal(t, "Heated pool", renamed.Name)

	// Reads are open.
	got, err := f.GetAmenity(amenity.ID)
	require.NoError(t, err)
	assert.Equal(t, "Heated pool", got.Name)

	all, err := f.ListAmenities()
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestPlaceAmenityAssociation(t *testing.T) {
	f := newTestFacade(t)
	owner := createUser(t, f, "owner@example.com", false)
	stranger := createUser(t, f, "stranger@example.com", false)
	place := createPlace(t, f, owner.ID)

	wifi, err := f.CreateAmenity(bootstrapAdmin, "Wi-Fi")
	require.NoError(t, err)

	err = f.AddPlaceAmenity(asActor(stranger), place.ID, wifi.ID)
	assert.Equal(t, apperrors.CodeForbidden, apperrors.CodeOf(err))

	require.NoError(t, f.AddPlaceAmenity(asActor(owner), place.ID, wifi.ID))

	// Pair is unique.
	err = f.AddPlaceAmenity(asActor(owner), place.ID, wifi.ID)
	assert.Equal(t, apperrors.CodeConflict, apperrors.CodeOf(err))

	list, err := f.ListPlaceAmenities(place.ID)
	require.NoError(t, err)
	require.Len(t, list, 1)

	require.NoError(t, f.RemovePlaceAmenity(asActor(owner), place.ID, wifi.ID))

	err = f.RemovePlaceAmenity(asActor(owner), place.ID, wifi.ID)
	assert.Equal(t, apperrors.CodeNotFound, apperrors.CodeOf(err))
}

func TestDeletePlaceCascadesReviews(t *testing.T) {
	f := newTestFacade(t)
	owner := createUser(t, f, "owner@example.com", false)
	guest := createUser(t, f, "guest@example.com", false)
	place := createPlace(t, f, owner.ID)

	review, err := f.CreateReview(asActor(guest), services.CreateReviewInput{
		PlaceID: place.ID, Text: "good", Rating: 4,
	})
	require.NoError(t, err)

	require.NoError(t, f.DeletePlace(asActor(owner), place.ID))

	_, err = f.GetReview(review.ID)
	assert.Equal(t, apperrors.CodeNotFound, apperrors.CodeOf(err))
}

func TestDeleteUserCascades(t *testing.T) {
	f := newTestFacade(t)
	owner := createUser(t, f, "owner@example.com", false)
	guest := createUser(t, f, "guest@example.com", false)
	place := createPlace(t, f, owner.ID)

	review, err := f.CreateReview(asActor(guest), services.CreateReviewInput{
		PlaceID: place.ID, Text: "good", Rating: 4,
	})
	require.NoError(t, err)

	// Deleting the owner removes their place and, transitively, its reviews.
	require.NoError(t, f.DeleteUser(bootstrapAdmin, owner.ID))

	_, err = f.GetPlace(place.ID)
	assert.Equal(t, apperrors.CodeNotFound, apperrors.CodeOf(err))

	_, err = f.GetReview(review.ID)
	assert.Equal(t, apperrors.CodeNotFound, apperrors.CodeOf(err))

	// Non-admins cannot delete users.
	err = f.DeleteUser(asActor(guest), guest.ID)
	assert.Equal(t, apperrors.CodeForbidden, apperrors.CodeOf(err))
}
