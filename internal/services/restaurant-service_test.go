package services

import (
	"context"
	"testing"

	"github.com/franciscosanchezn/gin-restaurant-api/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRestaurantServiceCreateAndGet(t *testing.T) {
	db := setupTestDB(t)
	publisher := &recordingPublisher{}
	svc := NewRestaurantService(db, publisher)
	ctx := context.Background()

	created, err := svc.CreateRestaurant(ctx, models.Restaurant{ID: 99, Name: "Dough Bros", Address: "1 Main St"})
	require.NoError(t, err)
	assert.NotEqual(t, uint(99), created.ID)
	assert.NotNil(t, created.RestaurantPizzas)
	assert.Empty(t, created.RestaurantPizzas)

	loaded, err := svc.GetRestaurantByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.Name, loaded.Name)
	assert.Equal(t, created.Address, loaded.Address)

	assert.Equal(t, []string{"restaurant.created"}, publisher.types())
}

func TestRestaurantServiceNotFound(t *testing.T) {
	db := setupTestDB(t)
	publisher := &recordingPublisher{}
	svc := NewRestaurantService(db, publisher)
	ctx := context.Background()

	_, err := svc.GetRestaurantByID(ctx, 0)
	var notFound *models.NotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "Restaurant not found", notFound.Error())

	_, err = svc.UpdateRestaurant(ctx, 42, models.RestaurantPatch{Name: strPtr("x")})
	assert.ErrorAs(t, err, &notFound)

	err = svc.DeleteRestaurant(ctx, 42)
	assert.ErrorAs(t, err, &notFound)

	assert.Empty(t, publisher.types())
}

func TestRestaurantServicePartialUpdate(t *testing.T) {
	db := setupTestDB(t)
	svc := NewRestaurantService(db, nil)
	ctx := context.Background()
	restaurant := createRestaurant(t, svc, "Dough Bros")

	updated, err := svc.UpdateRestaurant(ctx, restaurant.ID, models.RestaurantPatch{Name: strPtr("Crust Club")})
	require.NoError(t, err)
	assert.Equal(t, "Crust Club", updated.Name)
	assert.Equal(t, restaurant.Address, updated.Address)

	_, err = svc.UpdateRestaurant(ctx, restaurant.ID, models.RestaurantPatch{Address: strPtr("")})
	var invalid *models.ValidationError
	require.ErrorAs(t, err, &invalid)

	loaded, err := svc.GetRestaurantByID(ctx, restaurant.ID)
	require.NoError(t, err)
	assert.Equal(t, restaurant.Address, loaded.Address)
}

func TestRestaurantServiceDeleteCascades(t *testing.T) {
	db := setupTestDB(t)
	publisher := &recordingPublisher{}
	restaurants := NewRestaurantService(db, publisher)
	pizzas := NewPizzaService(db, publisher)
	prices := NewRestaurantPizzaService(db, publisher)
	ctx := context.Background()

	restaurant := createRestaurant(t, restaurants, "Dough Bros")
	other := createRestaurant(t, restaurants, "Crust Club")
	pizza := createPizza(t, pizzas, "Margherita")
	_, err := prices.CreateRestaurantPizza(ctx, NewRestaurantPizzaInput{Price: intPtr(10), RestaurantID: &restaurant.ID, PizzaID: &pizza.ID})
	require.NoError(t, err)
	_, err = prices.CreateRestaurantPizza(ctx, NewRestaurantPizzaInput{Price: intPtr(12), RestaurantID: &other.ID, PizzaID: &pizza.ID})
	require.NoError(t, err)

	require.NoError(t, restaurants.DeleteRestaurant(ctx, restaurant.ID))

	_, err = restaurants.GetRestaurantByID(ctx, restaurant.ID)
	var notFound *models.NotFoundError
	assert.ErrorAs(t, err, &notFound)

	remaining, err := prices.GetRestaurantPizzas(ctx, RestaurantPizzaFilter{})
	require.NoError(t, err)
	require.Len(t, remaining, 1)
	assert.Equal(t, other.ID, remaining[0].RestaurantID)

	assert.Contains(t, publisher.types(), "restaurant.deleted")
}

func TestRestaurantServiceListHasNoAssociations(t *testing.T) {
	db := setupTestDB(t)
	svc := NewRestaurantService(db, nil)
	createRestaurant(t, svc, "A")
	createRestaurant(t, svc, "B")

	list, err := svc.GetAllRestaurants(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "A", list[0].Name)
	assert.Nil(t, list[0].RestaurantPizzas)
}

func TestPublishFailureDoesNotFailWrite(t *testing.T) {
	db := setupTestDB(t)
	publisher := &recordingPublisher{err: errBrokerDown}
	svc := NewRestaurantService(db, publisher)

	created, err := svc.CreateRestaurant(context.Background(), models.Restaurant{Name: "Dough Bros", Address: "1 Main St"})
	require.NoError(t, err)
	assert.NotZero(t, created.ID)
	assert.Len(t, publisher.types(), 1)
}
