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

const pizzaEntity = "pizza"

// PizzaService provides methods to interact with the pizza database
type PizzaService interface {
	// GetAllPizzas retrieves all pizzas without their associations
	GetAllPizzas(ctx context.Context) ([]models.Pizza, error)
	// GetPizzaByID retrieves a pizza with the restaurants selling it
	GetPizzaByID(ctx context.Context, id uint) (models.Pizza, error)
	// CreatePizza creates a new pizza in the database
	CreatePizza(ctx context.Context, pizza models.Pizza) (models.Pizza, error)
	// UpdatePizza applies a partial update to an existing pizza
	UpdatePizza(ctx context.Context, id uint, patch models.PizzaPatch) (models.Pizza, error)
	// DeletePizza deletes a pizza and every price set for it
	DeletePizza(ctx context.Context, id uint) error
}

// pizzaService is the implementation of the PizzaService interface
type pizzaService struct {
	db               *gorm.DB
	pizzas           database.Store[models.Pizza]
	restaurantPizzas database.Store[models.RestaurantPizza]
	publisher        events.Publisher
}

// NewPizzaService creates a new instance of PizzaService
func NewPizzaService(db *gorm.DB, publisher events.Publisher) PizzaService {
	return &pizzaService{
		db:               db,
		pizzas:           database.NewStore[models.Pizza](),
		restaurantPizzas: database.NewStore[models.RestaurantPizza](),
		publisher:        publisher,
	}
}

var pizzaPreloads = []string{"RestaurantPizzas.Restaurant"}

func (s *pizzaService) GetAllPizzas(ctx context.Context) ([]models.Pizza, error) {
	pizzas, err := s.pizzas.All(s.db.WithContext(ctx))
	if err != nil {
		return nil, fmt.Errorf("list pizzas: %w", err)
	}
	return pizzas, nil
}

func (s *pizzaService) GetPizzaByID(ctx context.Context, id uint) (models.Pizza, error) {
	return s.find(s.db.WithContext(ctx), id, pizzaPreloads...)
}

func (s *pizzaService) CreatePizza(ctx context.Context, pizza models.Pizza) (models.Pizza, error) {
	pizza.ID = 0
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.pizzas.Create(tx, &pizza); err != nil {
			return fmt.Errorf("create pizza: %w", err)
		}
		return nil
	})
	if err != nil {
		return models.Pizza{}, err
	}

	pizza.RestaurantPizzas = []models.RestaurantPizza{}
	notify(ctx, s.publisher, events.NewEvent(pizzaEntity, events.ActionCreated, pizza.ID, pizza))
	return pizza, nil
}

func (s *pizzaService) UpdatePizza(ctx context.Context, id uint, patch models.PizzaPatch) (models.Pizza, error) {
	var updated models.Pizza
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		pizza, err := s.find(tx, id)
		if err != nil {
			return err
		}
		if err := patch.Validate(); err != nil {
			return err
		}

		pizza.Apply(patch)
		if err := s.pizzas.Update(tx, &pizza); err != nil {
			return fmt.Errorf("update pizza %d: %w", id, err)
		}

		updated, err = s.find(tx, id, pizzaPreloads...)
		return err
	})
	if err != nil {
		return models.Pizza{}, err
	}

	notify(ctx, s.publisher, events.NewEvent(pizzaEntity, events.ActionUpdated, updated.ID, updated))
	return updated, nil
}

func (s *pizzaService) DeletePizza(ctx context.Context, id uint) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := s.find(tx, id); err != nil {
			return err
		}
		if _, err := s.restaurantPizzas.DeleteWhere(tx, map[string]interface{}{"pizza_id": id}); err != nil {
			return fmt.Errorf("delete prices of pizza %d: %w", id, err)
		}
		if err := s.pizzas.Delete(tx, id); err != nil {
			return fmt.Errorf("delete pizza %d: %w", id, err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	notify(ctx, s.publisher, events.NewEvent(pizzaEntity, events.ActionDeleted, id, nil))
	return nil
}

// find loads a pizza, turning a missing row into a NotFoundError
func (s *pizzaService) find(tx *gorm.DB, id uint, preloads ...string) (models.Pizza, error) {
	pizza, err := s.pizzas.Get(tx, id, preloads...)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Pizza{}, models.NewPizzaNotFound(id)
	}
	if err != nil {
		return models.Pizza{}, fmt.Errorf("get pizza %d: %w", id, err)
	}
	return pizza, nil
}
