package routes

import (
	"net/http"
	"time"

	_ "github.com/franciscosanchezn/gin-restaurant-api/docs" // Import generated docs
	"github.com/franciscosanchezn/gin-restaurant-api/internal/controllers"
	"github.com/franciscosanchezn/gin-restaurant-api/internal/events"
	"github.com/franciscosanchezn/gin-restaurant-api/internal/middleware"
	"github.com/franciscosanchezn/gin-restaurant-api/internal/services"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

const serviceName = "gin-restaurant-api"

// Options configures the router
type Options struct {
	Logger             *logrus.Logger
	CORSAllowedOrigins []string
}

// NewRouter builds the gin engine with middleware and every route registered
func NewRouter(db *gorm.DB, publisher events.Publisher, opts Options) *gin.Engine {
	logger := opts.Logger
	if logger == nil {
		logger = logrus.StandardLogger()
	}

	router := gin.New()
	router.Use(
		middleware.RequestID(),
		middleware.RequestLogger(logger),
		gin.Recovery(),
		middleware.CORS(opts.CORSAllowedOrigins),
	)

	RegisterRoutes(router, db, publisher)
	return router
}

// RegisterRoutes wires services and controllers and defines the routes
func RegisterRoutes(router *gin.Engine, db *gorm.DB, publisher events.Publisher) {
	restaurantController := controllers.NewRestaurantController(services.NewRestaurantService(db, publisher))
	pizzaController := controllers.NewPizzaController(services.NewPizzaService(db, publisher))
	restaurantPizzaController := controllers.NewRestaurantPizzaController(services.NewRestaurantPizzaService(db, publisher))

	router.GET("/", homeHandler)
	router.GET("/health", healthCheckHandler(db))

	restaurants := router.Group("/restaurants")
	{
		restaurants.GET("", restaurantController.GetAllRestaurants)
		restaurants.POST("", restaurantController.CreateRestaurant)
		restaurants.GET("/:id", restaurantController.GetRestaurantByID)
		restaurants.PATCH("/:id", restaurantController.UpdateRestaurant)
		restaurants.DELETE("/:id", restaurantController.DeleteRestaurant)
	}

	pizzas := router.Group("/pizzas")
	{
		pizzas.GET("", pizzaController.GetAllPizzas)
		pizzas.POST("", pizzaController.CreatePizza)
		pizzas.GET("/:id", pizzaController.GetPizzaByID)
		pizzas.PATCH("/:id", pizzaController.UpdatePizza)
		pizzas.DELETE("/:id", pizzaController.DeletePizza)
	}

	restaurantPizzas := router.Group("/restaurant_pizzas")
	{
		restaurantPizzas.GET("", restaurantPizzaController.GetRestaurantPizzas)
		restaurantPizzas.POST("", restaurantPizzaController.CreateRestaurantPizza)
	}

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}

// homeHandler serves a minimal landing page
func homeHandler(c *gin.Context) {
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte("<h1>Welcome to the Restaurant-Pizza Management System</h1>"))
}

// healthCheckHandler handles the health check endpoint
// @Summary Health check
// @Description Check if the service and its database are reachable
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Failure 503 {object} map[string]string
// @Router /health [get]
func healthCheckHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		status, code := "healthy", http.StatusOK
		if sqlDB, err := db.DB(); err != nil || sqlDB.PingContext(c.Request.Context()) != nil {
			status, code = "unhealthy", http.StatusServiceUnavailable
		}
		c.JSON(code, gin.H{
			"status":    status,
			"timestamp": time.Now().UTC().Format(time.RFC3339),
			"service":   serviceName,
		})
	}
}
