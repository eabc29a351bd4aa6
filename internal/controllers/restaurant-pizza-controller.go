package controllers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/franciscosanchezn/gin-restaurant-api/internal/models"
	"github.com/franciscosanchezn/gin-restaurant-api/internal/services"
	"github.com/franciscosanchezn/gin-restaurant-api/internal/views"
	"github.com/gin-gonic/gin"
)

// RestaurantPizzaController handles HTTP requests related to the prices
// restaurants set for pizzas
type RestaurantPizzaController interface {
	// GetRestaurantPizzas lists prices, optionally for one restaurant or pizza
	GetRestaurantPizzas(c *gin.Context)
	// CreateRestaurantPizza puts a pizza on a restaurant's menu
	CreateRestaurantPizza(c *gin.Context)
}

type restaurantPizzaController struct {
	service services.RestaurantPizzaService
}

// NewRestaurantPizzaController creates a new instance of RestaurantPizzaController
func NewRestaurantPizzaController(service services.RestaurantPizzaService) RestaurantPizzaController {
	return &restaurantPizzaController{service: service}
}

// GetRestaurantPizzas godoc
// @Summary Get restaurant pizzas
// @Description List prices with their pizza and restaurant, with optional filtering
// @Tags restaurant_pizzas
// @Produce json
// @Param restaurant_id query int false "Only prices set by this restaurant"
// @Param pizza_id query int false "Only prices for this pizza"
// @Success 200 {array} views.RestaurantPizza
// @Failure 400 {object} models.ValidationErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /restaurant_pizzas [get]
func (c *restaurantPizzaController) GetRestaurantPizzas(ctx *gin.Context) {
	var filter services.RestaurantPizzaFilter
	var err error
	if filter.RestaurantID, err = queryID(ctx, "restaurant_id"); err != nil {
		respondError(ctx, err)
		return
	}
	if filter.PizzaID, err = queryID(ctx, "pizza_id"); err != nil {
		respondError(ctx, err)
		return
	}

	rps, err := c.service.GetRestaurantPizzas(ctx.Request.Context(), filter)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, views.FromRestaurantPizzas(rps))
}

// CreateRestaurantPizza godoc
// @Summary Create a restaurant pizza
// @Description Sell an existing pizza at an existing restaurant for a price between 1 and 30
// @Tags restaurant_pizzas
// @Accept json
// @Produce json
// @Param restaurant_pizza body createRestaurantPizzaRequest true "Price, restaurant and pizza"
// @Success 201 {object} views.RestaurantPizza
// @Failure 400 {object} models.ValidationErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /restaurant_pizzas [post]
func (c *restaurantPizzaController) CreateRestaurantPizza(ctx *gin.Context) {
	var req createRestaurantPizzaRequest
	if err := bindJSON(ctx, &req); err != nil {
		respondError(ctx, err)
		return
	}

	rp, err := c.service.CreateRestaurantPizza(ctx.Request.Context(), services.NewRestaurantPizzaInput{
		Price:        req.Price,
		RestaurantID: req.RestaurantID,
		PizzaID:      req.PizzaID,
	})
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, views.FromRestaurantPizza(rp))
}

// queryID reads an optional id from the query string
func queryID(ctx *gin.Context, key string) (*uint, error) {
	raw, ok := ctx.GetQuery(key)
	if !ok || raw == "" {
		return nil, nil
	}
	parsed, err := strconv.ParseUint(raw, 10, 0)
	if err != nil {
		return nil, models.NewValidationError(fmt.Sprintf("%s must be an integer id", key))
	}
	id := uint(parsed)
	return &id, nil
}
