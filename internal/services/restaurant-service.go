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

const restaurantEntity = "restaurant"

// RestaurantService provides methods to manage restaurants
type RestaurantService interface {
	// GetAllRestaurants retrieves all restaurants without their associations
	GetAllRestaurants(ctx context.Context) ([]models.Restaurant, error)
	// GetRestaurantByID retrieves a restaurant with its priced pizzas
	GetRestaurantByID(ctx context.Context, id uint) (models.Restaurant, error)
	// CreateRestaurant stores a new restaurant
	CreateRestaurant(ctx context.Context, restaurant models.Restaurant) (models.Restaurant, error)
	// UpdateRestaurant applies a partial update to an existing restaurant
	UpdateRestaurant(ctx context.Context, id uint, patch models.RestaurantPatch) (models.Restaurant, error)
	// DeleteRestaurant deletes a restaurant and every price it set
	DeleteRestaurant(ctx context.Context, id uint) error
}

// restaurantService is the implementation of the RestaurantService interface
type restaurantService struct {
	db               *gorm.DB
	restaurants      database.Store[models.Restaurant]
	restaurantPizzas database.Store[models.RestaurantPizza]
	publisher        events.Publisher
}

// NewRestaurantService creates a new instance of RestaurantService
func NewRestaurantService(db *gorm.DB, publisher events.Publisher) RestaurantService {
	return &restaurantService{
		db:               db,
		restaurants:      database.NewStore[models.Restaurant](),
		restaurantPizzas: database.NewStore[models.RestaurantPizza](),
		publisher:        publisher,
	}
}

var restaurantPreloads = []string{"RestaurantPizzas.Pizza"}

func (s *restaurantService) GetAllRestaurants(ctx context.Context) ([]models.Restaurant, error) {
	restaurants, err := s.restaurants.All(s.db.WithContext(ctx))
	if err != nil {
		return nil, fmt.Errorf("list restaurants: %w", err)
	}
	return restaurants, nil
}

func (s *restaurantService) GetRestaurantByID(ctx context.Context, id uint) (models.Restaurant, error) {
	return s.find(s.db.WithContext(ctx), id, restaurantPreloads...)
}

func (s *restaurantService) CreateRestaurant(ctx context.Context, restaurant models.Restaurant) (models.Restaurant, error) {
	restaurant.ID = 0
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.restaurants.Create(tx, &restaurant); err != nil {
			return fmt.Errorf("create restaurant: %w", err)
		}
		return nil
	})
	if err != nil {
		return models.Restaurant{}, err
	}

	restaurant.RestaurantPizzas = []models.RestaurantPizza{}
	notify(ctx, s.publisher, events.NewEvent(restaurantEntity, events.ActionCreated, restaurant.ID, restaurant))
	return restaurant, nil
}

func (s *restaurantService) UpdateRestaurant(ctx context.Context, id uint, patch models.RestaurantPatch) (models.Restaurant, error) {
	var updated models.Restaurant
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		restaurant, err := s.find(tx, id)
		if err != nil {
			return err
		}
		if err := patch.Validate(); err != nil {
			return err
		}

		restaurant.Apply(patch)
		if err := s.restaurants.Update(tx, &restaurant); err != nil {
			return fmt.Errorf("update restaurant %d: %w", id, err)
		}

		updated, err = s.find(tx, id, restaurantPreloads...)
		return err
	})
	if err != nil {
		return models.Restaurant{}, err
	}

	notify(ctx, s.publisher, events.NewEvent(restaurantEntity, events.ActionUpdated, updated.ID, updated))
	return updated, nil
}

func (s *restaurantService) DeleteRestaurant(ctx context.Context, id uint) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := s.find(tx, id); err != nil {
			return err
		}
		if _, err := s.restaurantPizzas.DeleteWhere(tx, map[string]interface{}{"restaurant_id": id}); err != nil {
			return fmt.Errorf("delete prices of restaurant %d: %w", id, err)
		}
		if err := s.restaurants.Delete(tx, id); err != nil {
			return fmt.Errorf("delete restaurant %d: %w", id, err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	notify(ctx, s.publisher, events.NewEvent(restaurantEntity, events.ActionDeleted, id, nil))
	return nil
}

// find loads a restaurant, turning a missing row into a NotFoundError
func (s *restaurantService) find(tx *gorm.DB, id uint, preloads ...string) (models.Restaurant, error) {
	restaurant, err := s.restaurants.Get(tx, id, preloads...)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Restaurant{}, models.NewRestaurantNotFound(id)
	}
	if err != nil {
		return models.Restaurant{}, fmt.Errorf("get restaurant %d: %w", id, err)
	}
	return restaurant, nil
}
