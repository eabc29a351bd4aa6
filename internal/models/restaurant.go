package models

import "strings"

// Restaurant represents a place selling pizzas
type Restaurant struct {
	ID      uint   `gorm:"primaryKey" json:"id"`
	Name    string `gorm:"not null" json:"name"`
	Address string `gorm:"not null" json:"address"`

	RestaurantPizzas []RestaurantPizza `gorm:"constraint:OnDelete:CASCADE" json:"-"`
}

// RestaurantPatch carries a partial update, nil fields are left untouched
type RestaurantPatch struct {
	Name    *string `json:"name"`
	Address *string `json:"address"`
}

// Validate rejects blank values for fields that were supplied
func (p RestaurantPatch) Validate() error {
	var problems []string
	if p.Name != nil && strings.TrimSpace(*p.Name) == "" {
		problems = append(problems, "name must not be empty")
	}
	if p.Address != nil && strings.TrimSpace(*p.Address) == "" {
		problems = append(problems, "address must not be empty")
	}
	if len(problems) > 0 {
		return NewValidationError(problems...)
	}
	return nil
}

// Apply copies the supplied fields onto the restaurant
func (r *Restaurant) Apply(patch RestaurantPatch) {
	if patch.Name != nil {
		r.Name = *patch.Name
	}
	if patch.Address != nil {
		r.Address = *patch.Address
	}
}
