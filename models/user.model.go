package models

type User struct {
	Base
	FirstName string `gorm:"size:50;not null" json:"first_name"`
	LastName  string `gorm:"size:50;not null" json:"last_name"`
	Email     string `gorm:"size:255;uniqueIndex;not null" json:"email"`
	Password  string `gorm:"size:255;not null" json:"-"` // bcrypt digest, never plaintext
	IsAdmin   bool   `gorm:"default:false" json:"is_admin"`

	Places  []Place  `gorm:"foreignKey:OwnerID;constraint:OnDelete:CASCADE" json:"-"`
	Reviews []Review `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}

// NewUser validates every field and builds a user. The password must
// already be digested by the caller.
func NewUser(firstName, lastName, email, passwordDigest string, isAdmin bool) (*User, error) {
	if err := ValidateName("first_name", firstName); err != nil {
		return nil, err
	}
	if err := ValidateName("last_name", lastName); err != nil {
		return nil, err
	}
	if err := ValidateEmail(email); err != nil {
		return nil, err
	}
	return &User{
		Base:      newBase(),
		FirstName: firstName,
		LastName:  lastName,
		Email:     email,
		Password:  passwordDigest,
		IsAdmin:   isAdmin,
	}, nil
}

// ToMap is the serializable representation handed to the resource layer.
// The password digest is never included.
func (u *User) ToMap() map[string]interface{} {
	m := u.baseMap()
	m["first_name"] = u.FirstName
	m["last_name"] = u.LastName
	m["email"] = u.Email
	m["is_admin"] = u.IsAdmin
	return m
}
