package models

import "strings"

// Pizza represents a pizza that restaurants can put on their menu
type Pizza struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Name        string `gorm:"not null" json:"name"`
	Ingredients string `gorm:"not null" json:"ingredients"`

	RestaurantPizzas []RestaurantPizza `gorm:"constraint:OnDelete:CASCADE" json:"-"`
}

// PizzaPatch carries a partial update, nil fields are left untouched
type PizzaPatch struct {
	Name        *string `json:"name"`
	Ingredients *string `json:"ingredients"`
}

// Validate rejects blank values for fields that were supplied
func (p PizzaPatch) Validate() error {
	var problems []string
	if p.Name != nil && strings.TrimSpace(*p.Name) == "" {
		problems = append(problems, "name must not be empty")
	}
	if p.Ingredients != nil && strings.TrimSpace(*p.Ingredients) == "" {
		problems = append(problems, "ingredients must not be empty")
	}
	if len(problems) > 0 {
		return NewValidationError(problems...)
	}
	return nil
}

// Apply copies the supplied fields onto the pizza
func (p *Pizza) Apply(patch PizzaPatch) {
	if patch.Name != nil {
		p.Name = *patch.Name
	}
	if patch.Ingredients != nil {
		p.Ingredients = *patch.Ingredients
	}
}
