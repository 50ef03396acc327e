package models

type Amenity struct {
	Base
	Name string `gorm:"size:50;not null" json:"name"`

	Places []Place `gorm:"many2many:place_amenities" json:"-"`
}

func NewAmenity(name string) (*Amenity, error) {
	if err := ValidateName("name", name); err != nil {
		return nil, err
	}
	return &Amenity{Base: newBase(), Name: name}, nil
}

func (a *Amenity) ToMap() map[string]interface{} {
	m := a.baseMap()
	m["name"] = a.Name
	return m
}
