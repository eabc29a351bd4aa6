package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/franciscosanchezn/gin-restaurant-api/internal/database"
	"github.com/franciscosanchezn/gin-restaurant-api/internal/events"
	"github.com/franciscosanchezn/gin-restaurant-api/internal/models"
	"gorm.io/gorm"
)

const restaurantPizzaEntity = "restaurant_pizza"

// RestaurantPizzaFilter narrows a listing to one restaurant and/or one pizza
type RestaurantPizzaFilter struct {
	RestaurantID *uint
	PizzaID      *uint
}

func (f RestaurantPizzaFilter) criteria() map[string]interface{} {
	criteria := map[string]interface{}{}
	if f.RestaurantID != nil {
		criteria["restaurant_id"] = *f.RestaurantID
	}
	if f.PizzaID != nil {
		criteria["pizza_id"] = *f.PizzaID
	}
	return criteria
}

// NewRestaurantPizzaInput is the raw data for a new association, fields are
// nil when the client left them out
type NewRestaurantPizzaInput struct {
	Price        *int
	RestaurantID *uint
	PizzaID      *uint
}

// RestaurantPizzaService provides methods to manage the prices restaurants set for pizzas
type RestaurantPizzaService interface {
	// GetRestaurantPizzas lists associations with their pizza and restaurant loaded
	GetRestaurantPizzas(ctx context.Context, filter RestaurantPizzaFilter) ([]models.RestaurantPizza, error)
	// CreateRestaurantPizza validates and stores a new association
	CreateRestaurantPizza(ctx context.Context, input NewRestaurantPizzaInput) (models.RestaurantPizza, error)
}

// restaurantPizzaService is the implementation of the RestaurantPizzaService interface
type restaurantPizzaService struct {
	db               *gorm.DB
	restaurants      database.Store[models.Restaurant]
	pizzas           database.Store[models.Pizza]
	restaurantPizzas database.Store[models.RestaurantPizza]
	publisher        events.Publisher
}

// NewRestaurantPizzaService creates a new instance of RestaurantPizzaService
func NewRestaurantPizzaService(db *gorm.DB, publisher events.Publisher) RestaurantPizzaService {
	return &restaurantPizzaService{
		db:               db,
		restaurants:      database.NewStore[models.Restaurant](),
		pizzas:           database.NewStore[models.Pizza](),
		restaurantPizzas: database.NewStore[models.RestaurantPizza](),
		publisher:        publisher,
	}
}

var restaurantPizzaPreloads = []string{"Pizza", "Restaurant"}

func (s *restaurantPizzaService) GetRestaurantPizzas(ctx context.Context, filter RestaurantPizzaFilter) ([]models.RestaurantPizza, error) {
	rps, err := s.restaurantPizzas.Filter(s.db.WithContext(ctx), filter.criteria(), restaurantPizzaPreloads...)
	if err != nil {
		return nil, fmt.Errorf("list restaurant pizzas: %w", err)
	}
	return rps, nil
}

func (s *restaurantPizzaService) CreateRestaurantPizza(ctx context.Context, input NewRestaurantPizzaInput) (models.RestaurantPizza, error) {
	rp, err := models.NewRestaurantPizza(input.Price, input.RestaurantID, input.PizzaID)
	if err != nil {
		return models.RestaurantPizza{}, err
	}

	var created models.RestaurantPizza
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.ensureExists(tx, rp.RestaurantID, rp.PizzaID); err != nil {
			return err
		}
		if err := s.restaurantPizzas.Create(tx, &rp); err != nil {
			return fmt.Errorf("create restaurant pizza: %w", err)
		}

		reloaded, err := s.restaurantPizzas.Get(tx, rp.ID, restaurantPizzaPreloads...)
		if err != nil {
			return fmt.Errorf("reload restaurant pizza %d: %w", rp.ID, err)
		}
		created = reloaded
		return nil
	})
	if err != nil {
		return models.RestaurantPizza{}, err
	}

	notify(ctx, s.publisher, events.NewEvent(restaurantPizzaEntity, events.ActionCreated, created.ID, created))
	return created, nil
}

// ensureExists checks both references inside the transaction so a missing
// row is reported as NotFound instead of a constraint violation
func (s *restaurantPizzaService) ensureExists(tx *gorm.DB, restaurantID, pizzaID uint) error {
	if _, err := s.restaurants.Get(tx, restaurantID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.NewRestaurantNotFound(restaurantID)
		}
		return fmt.Errorf("get restaurant %d: %w", restaurantID, err)
	}
	if _, err := s.pizzas.Get(tx, pizzaID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.NewPizzaNotFound(pizzaID)
		}
		return fmt.Errorf("get pizza %d: %w", pizzaID, err)
	}
	return nil
}
