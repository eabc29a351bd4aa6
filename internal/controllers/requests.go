package controllers

// createRestaurantRequest is the body accepted by POST /restaurants
type createRestaurantRequest struct {
	Name    string `json:"name" binding:"required" example:"Dough Bros"`
	Address string `json:"address" binding:"required" example:"1 Main St"`
}

// createPizzaRequest is the body accepted by POST /pizzas
type createPizzaRequest struct {
	Name        string `json:"name" binding:"required" example:"Margherita"`
	Ingredients string `json:"ingredients" binding:"required" example:"tomato, mozzarella"`
}

// createRestaurantPizzaRequest is the body accepted by POST /restaurant_pizzas.
// Pointers tell a missing field apart from a zero value.
type createRestaurantPizzaRequest struct {
	Price        *int  `json:"price" example:"15"`
	RestaurantID *uint `json:"restaurant_id" example:"1"`
	PizzaID      *uint `json:"pizza_id" example:"1"`
}
