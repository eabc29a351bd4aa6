package controllers

import (
	"net/http"

	"github.com/franciscosanchezn/gin-restaurant-api/internal/models"
	"github.com/franciscosanchezn/gin-restaurant-api/internal/services"
	"github.com/franciscosanchezn/gin-restaurant-api/internal/views"
	"github.com/gin-gonic/gin"
)

// RestaurantController handles HTTP requests related to restaurants
type RestaurantController interface {
	// GetAllRestaurants retrieves all restaurants
	GetAllRestaurants(c *gin.Context)
	// GetRestaurantByID retrieves a restaurant by its ID
	GetRestaurantByID(c *gin.Context)
	// CreateRestaurant creates a new restaurant
	CreateRestaurant(c *gin.Context)
	// UpdateRestaurant partially updates an existing restaurant
	UpdateRestaurant(c *gin.Context)
	// DeleteRestaurant deletes a restaurant by its ID
	DeleteRestaurant(c *gin.Context)
}

type restaurantController struct {
	service services.RestaurantService
}

// NewRestaurantController creates a new instance of RestaurantController
func NewRestaurantController(service services.RestaurantService) RestaurantController {
	return &restaurantController{service: service}
}

// GetAllRestaurants godoc
// @Summary Get all restaurants
// @Description Get a list of all restaurants, without their pizzas
// @Tags restaurants
// @Produce json
// @Success 200 {array} views.Restaurant
// @Failure 500 {object} models.ErrorResponse
// @Router /restaurants [get]
func (c *restaurantController) GetAllRestaurants(ctx *gin.Context) {
	restaurants, err := c.service.GetAllRestaurants(ctx.Request.Context())
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, views.FromRestaurants(restaurants, views.RelRestaurantPizzas))
}

// GetRestaurantByID godoc
// @Summary Get restaurant by ID
// @Description Get a single restaurant with the pizzas it sells
// @Tags restaurants
// @Produce json
// @Param id path int true "Restaurant ID"
// @Success 200 {object} views.Restaurant
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /restaurants/{id} [get]
func (c *restaurantController) GetRestaurantByID(ctx *gin.Context) {
	id, ok := parseID(ctx, "restaurant")
	if !ok {
		return
	}

	restaurant, err := c.service.GetRestaurantByID(ctx.Request.Context(), id)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, views.FromRestaurant(restaurant))
}

// CreateRestaurant godoc
// @Summary Create a new restaurant
// @Description Create a new restaurant with the input payload
// @Tags restaurants
// @Accept json
// @Produce json
// @Param restaurant body createRestaurantRequest true "Restaurant object"
// @Success 201 {object} views.Restaurant
// @Failure 400 {object} models.ValidationErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /restaurants [post]
func (c *restaurantController) CreateRestaurant(ctx *gin.Context) {
	var req createRestaurantRequest
	if err := bindJSON(ctx, &req); err != nil {
		respondError(ctx, err)
		return
	}

	restaurant, err := c.service.CreateRestaurant(ctx.Request.Context(), models.Restaurant{
		Name:    req.Name,
		Address: req.Address,
	})
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, views.FromRestaurant(restaurant))
}

// UpdateRestaurant godoc
// @Summary Update a restaurant
// @Description Update only the supplied fields of a restaurant
// @Tags restaurants
// @Accept json
// @Produce json
// @Param id path int true "Restaurant ID"
// @Param restaurant body models.RestaurantPatch true "Fields to change"
// @Success 200 {object} views.Restaurant
// @Failure 400 {object} models.ValidationErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /restaurants/{id} [patch]
func (c *restaurantController) UpdateRestaurant(ctx *gin.Context) {
	id, ok := parseID(ctx, "restaurant")
	if !ok {
		return
	}

	var patch models.RestaurantPatch
	if err := bindJSON(ctx, &patch); err != nil {
		respondError(ctx, err)
		return
	}

	restaurant, err := c.service.UpdateRestaurant(ctx.Request.Context(), id, patch)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, views.FromRestaurant(restaurant))
}

// DeleteRestaurant godoc
// @Summary Delete a restaurant
// @Description Delete a restaurant and the prices it set
// @Tags restaurants
// @Param id path int true "Restaurant ID"
// @Success 204
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /restaurants/{id} [delete]
func (c *restaurantController) DeleteRestaurant(ctx *gin.Context) {
	id, ok := parseID(ctx, "restaurant")
	if !ok {
		return
	}

	if err := c.service.DeleteRestaurant(ctx.Request.Context(), id); err != nil {
		respondError(ctx, err)
		return
	}
	ctx.Status(http.StatusNoContent)
}
