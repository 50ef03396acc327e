package services

import (
	"stayhub/apperrors"
	"stayhub/models"
)

type CreateUserInput struct {
	FirstName string
	LastName  string
	Email     string
	Password  string
	IsAdmin   bool
}

type UpdateUserInput struct {
	FirstName *string
	LastName  *string
	Email     *string
	Password  *string
}

// CreateUser registers a new user. User creation is an admin-only
// operation; self-registration is not exposed.
func (f *Facade) CreateUser(actor Actor, in CreateUserInput) (*models.User, error) {
	if !IsAdmin(actor) {
		return nil, apperrors.Forbidden("Admin access required")
	}

	existing, err := f.users.FindByEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperrors.Conflict("Email is already registered")
	}

	digest, err := f.hasher.Hash(in.Password)
	if err != nil {
		return nil, err
	}

	user, err := models.NewUser(in.FirstName, in.LastName, in.Email, digest, in.IsAdmin)
	if err != nil {
		return nil, err
	}

	if err := f.users.Add(user); err != nil {
		return nil, err
	}
	return user, nil
}

func (f *Facade) GetUser(id string) (*models.User, error) {
	return f.users.Get(id)
}

func (f *Facade) ListUsers() ([]models.User, error) {
	return f.users.ListAll()
}

// Login verifies credentials and returns the matching user. Wrong email
// and wrong password are indistinguishable to the caller.
func (f *Facade) Login(email, password string) (*models.User, error) {
	user, err := f.users.FindByEmail(email)
	if err != nil {
		return nil, err
	}
	if user == nil || !f.hasher.Verify(password, user.Password) {
		return nil, apperrors.Unauthenticated("Invalid email or password")
	}
	return user, nil
}

// UpdateUser applies a partial update. Admins may change any field
// including email (uniqueness re-checked) and password (re-digested).
// The subject themself may change only first and last name; touching
// email or password is rejected outright rather than silently ignored.
func (f *Facade) UpdateUser(actor Actor, id string, in UpdateUserInput) (*models.User, error) {
	user, err := f.users.Get(id)
	if err != nil {
		return nil, err
	}

	if !IsAdmin(actor) {
		if actor.ID != id {
			return nil, apperrors.Forbidden("Unauthorized action")
		}
		if in.Email != nil || in.Password != nil {
			return nil, apperrors.Forbidden("You cannot modify email or password")
		}
	}

	if in.FirstName != nil {
		if err := models.ValidateName("first_name", *in.FirstName); err != nil {
			return nil, err
		}
		user.FirstName = *in.FirstName
	}
	if in.LastName != nil {
		if err := models.ValidateName("last_name", *in.LastName); err != nil {
			return nil, err
		}
		user.LastName = *in.LastName
	}
	if in.Email != nil {
		if err := models.ValidateEmail(*in.Email); err != nil {
			return nil, err
		}
		existing, err := f.users.FindByEmail(*in.Email)
		if err != nil {
			return nil, err
		}
		if existing != nil && existing.ID != id {
			return nil, apperrors.Conflict("Email is already registered")
		}
		user.Email = *in.Email
	}
	if in.Password != nil {
		digest, err := f.hasher.Hash(*in.Password)
		if err != nil {
			return nil, err
		}
		user.Password = digest
	}

	if err := f.users.Save(user); err != nil {
		return nil, err
	}
	return user, nil
}

// DeleteUser removes a user and, by cascade, their places and reviews.
func (f *Facade) DeleteUser(actor Actor, id string) error {
	if !IsAdmin(actor) {
		return apperrors.Forbidden("Admin access required")
	}
	return f.users.Delete(id)
}
