package controllers

import (
	"net/http"

	"github.com/franciscosanchezn/gin-restaurant-api/internal/models"
	"github.com/franciscosanchezn/gin-restaurant-api/internal/services"
	"github.com/franciscosanchezn/gin-restaurant-api/internal/views"
	"github.com/gin-gonic/gin"
)

// PizzaController handles HTTP requests related to pizzas
type PizzaController interface {
	// GetAllPizzas retrieves all pizzas
	GetAllPizzas(c *gin.Context)
	// GetPizzaByID retrieves a pizza by its ID
	GetPizzaByID(c *gin.Context)
	// CreatePizza creates a new pizza
	CreatePizza(c *gin.Context)
	// UpdatePizza partially updates an existing pizza
	UpdatePizza(c *gin.Context)
	// DeletePizza deletes a pizza by its ID
	DeletePizza(c *gin.Context)
}

type pizzaController struct {
	service services.PizzaService
}

// NewPizzaController creates a new instance of PizzaController
func NewPizzaController(service services.PizzaService) PizzaController {
	return &pizzaController{service: service}
}

// GetAllPizzas godoc
// @Summary Get all pizzas
// @Description Get a list of all pizzas, without the restaurants selling them
// @Tags pizzas
// @Produce json
// @Success 200 {array} views.Pizza
// @Failure 500 {object} models.ErrorResponse
// @Router /pizzas [get]
func (c *pizzaController) GetAllPizzas(ctx *gin.Context) {
	pizzas, err := c.service.GetAllPizzas(ctx.Request.Context())
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, views.FromPizzas(pizzas, views.RelRestaurantPizzas))
}

// GetPizzaByID godoc
// @Summary Get pizza by ID
// @Description Get a single pizza with the restaurants selling it
// @Tags pizzas
// @Produce json
// @Param id path int true "Pizza ID"
// @Success 200 {object} views.Pizza
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /pizzas/{id} [get]
func (c *pizzaController) GetPizzaByID(ctx *gin.Context) {
	id, ok := parseID(ctx, "pizza")
	if !ok {
		return
	}

	pizza, err := c.service.GetPizzaByID(ctx.Request.Context(), id)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, views.FromPizza(pizza))
}

// CreatePizza godoc
// @Summary Create a new pizza
// @Description Create a new pizza with the input payload
// @Tags pizzas
// @Accept json
// @Produce json
// @Param pizza body createPizzaRequest true "Pizza object"
// @Success 201 {object} views.Pizza
// @Failure 400 {object} models.ValidationErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /pizzas [post]
func (c *pizzaController) CreatePizza(ctx *gin.Context) {
	var req createPizzaRequest
	if err := bindJSON(ctx, &req); err != nil {
		respondError(ctx, err)
		return
	}

	pizza, err := c.service.CreatePizza(ctx.Request.Context(), models.Pizza{
		Name:        req.Name,
		Ingredients: req.Ingredients,
	})
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, views.FromPizza(pizza))
}

// UpdatePizza godoc
// @Summary Update a pizza
// @Description Update only the supplied fields of a pizza
// @Tags pizzas
// @Accept json
// @Produce json
// @Param id path int true "Pizza ID"
// @Param pizza body models.PizzaPatch true "Fields to change"
// @Success 200 {object} views.Pizza
// @Failure 400 {object} models.ValidationErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /pizzas/{id} [patch]
func (c *pizzaController) UpdatePizza(ctx *gin.Context) {
	id, ok := parseID(ctx, "pizza")
	if !ok {
		return
	}

	var patch models.PizzaPatch
	if err := bindJSON(ctx, &patch); err != nil {
		respondError(ctx, err)
		return
	}

	pizza, err := c.service.UpdatePizza(ctx.Request.Context(), id, patch)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, views.FromPizza(pizza))
}

// DeletePizza godoc
// @Summary Delete a pizza
// @Description Delete a pizza and every price set for it
// @Tags pizzas
// @Param id path int true "Pizza ID"
// @Success 204
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /pizzas/{id} [delete]
func (c *pizzaController) DeletePizza(ctx *gin.Context) {
	id, ok := parseID(ctx, "pizza")
	if !ok {
		return
	}

	if err := c.service.DeletePizza(ctx.Request.Context(), id); err != nil {
		respondError(ctx, err)
		return
	}
	ctx.Status(http.StatusNoContent)
}
