package models

type Place struct {
	Base
	Title       string  `gorm:"size:100;not null" json:"title"`
	Description string  `gorm:"type:text" json:"description"`
	Price       float64 `gorm:"not null" json:"price"`
	Latitude    float64 `gorm:"not null" json:"latitude"`
	Longitude   float64 `gorm:"not null" json:"longitude"`
	OwnerID     string  `gorm:"type:varchar(36);not null;index" json:"owner_id"`

	Reviews   []Review  `gorm:"foreignKey:PlaceID;constraint:OnDelete:CASCADE" json:"-"`
	Amenities []Amenity `gorm:"many2many:place_amenities;constraint:OnDelete:CASCADE" json:"-"`
}

// NewPlace validates every field and builds a place. Owner existence is
// checked by the facade, not here.
func NewPlace(title, description string, price, latitude, longitude float64, ownerID string) (*Place, error) {
	if err := ValidateTitle(title); err != nil {
		return nil, err
	}
	if err := ValidatePrice(price); err != nil {
		return nil, err
	}
	if err := ValidateLatitude(latitude); err != nil {
		return nil, err
	}
	if err := ValidateLongitude(longitude); err != nil {
		return nil, err
	}
	return &Place{
		Base:        newBase(),
		Title:       title,
		Description: description,
		Price:       price,
		Latitude:    latitude,
		Longitude:   longitude,
		OwnerID:     ownerID,
	}, nil
}

func (p *Place) ToMap() map[string]interface{} {
	m := p.baseMap()
	m["title"] = p.Title
	m["description"] = p.Description
	m["price"] = p.Price
	m["latitude"] = p.Latitude
	m["longitude"] = p.Longitude
	m["owner_id"] = p.OwnerID
	return m
}
