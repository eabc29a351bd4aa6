package models

import (
	"gorm.io/gorm"
)

// Price bounds for a pizza on a restaurant menu, both inclusive
const (
	MinPrice = 1
	MaxPrice = 30
)

// ErrPriceOutOfRange is the message reported for a missing or out of range price
const ErrPriceOutOfRange = "Price must be between 1 and 30"

// RestaurantPizza records that a restaurant sells a pizza at a given price
type RestaurantPizza struct {
	ID           uint `gorm:"primaryKey" json:"id"`
	Price        int  `gorm:"not null" json:"price"`
	RestaurantID uint `gorm:"not null;index" json:"restaurant_id"`
	PizzaID      uint `gorm:"not null;index" json:"pizza_id"`

	Restaurant *Restaurant `json:"-"`
	Pizza      *Pizza      `json:"-"`
}

// ValidatePrice checks that a price was given and lies within [MinPrice, MaxPrice]
func ValidatePrice(price *int) error {
	if price == nil || *price < MinPrice || *price > MaxPrice {
		return NewValidationError(ErrPriceOutOfRange)
	}
	return nil
}

// NewRestaurantPizza builds an association, failing before anything is stored
// if the price or either reference is missing
func NewRestaurantPizza(price *int, restaurantID, pizzaID *uint) (RestaurantPizza, error) {
	if err := ValidatePrice(price); err != nil {
		return RestaurantPizza{}, err
	}

	var problems []string
	if restaurantID == nil || *restaurantID == 0 {
		problems = append(problems, "restaurant_id is required")
	}
	if pizzaID == nil || *pizzaID == 0 {
		problems = append(problems, "pizza_id is required")
	}
	if len(problems) > 0 {
		return RestaurantPizza{}, NewValidationError(problems...)
	}

	return RestaurantPizza{
		Price:        *price,
		RestaurantID: *restaurantID,
		PizzaID:      *pizzaID,
	}, nil
}

// BeforeSave keeps out of range prices out of the table on every write path
func (rp *RestaurantPizza) BeforeSave(tx *gorm.DB) error {
	return ValidatePrice(&rp.Price)
}
