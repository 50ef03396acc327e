package repository

import (
	"errors"

	"stayhub/models"

	"gorm.io/gorm"
)

type UserRepository struct {
	*Repository[models.User]
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{
		Repository: New[models.User](db, "User", "Email is already registered"),
		db:         db,
	}
}

// FindByEmail returns the user with the given email, or nil if no such
// user exists.
func (r *UserRepository) FindByEmail(email string) (*models.User, error) {
	var user models.User
	if err := r.db.First(&user, "email = ?", email).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}
