package routes

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/franciscosanchezn/gin-restaurant-api/internal/database"
	"github.com/franciscosanchezn/gin-restaurant-api/internal/events"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const priceError = `{"errors":["Validation error: Price must be between 1 and 30"]}`

func setupRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := database.InitDatabase(database.DatabaseConfig{Driver: "sqlite", Path: ":memory:"})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	t.Cleanup(func() { _ = database.Close(db) })

	logger, _ := test.NewNullLogger()
	return NewRouter(db, events.NewLogPublisher(logger), Options{Logger: logger})
}

func perform(router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeObject(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out), w.Body.String())
	return out
}

func decodeArray(t *testing.T, w *httptest.ResponseRecorder) []map[string]interface{} {
	t.Helper()
	var out []map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out), w.Body.String())
	return out
}

// idOf reads the numeric id of a decoded JSON object
func idOf(t *testing.T, obj map[string]interface{}) int {
	t.Helper()
	id, ok := obj["id"].(float64)
	require.True(t, ok, "id missing in %v", obj)
	return int(id)
}

func postRestaurant(t *testing.T, router *gin.Engine, name, address string) int {
	t.Helper()
	w := perform(router, http.MethodPost, "/restaurants", fmt.Sprintf(`{"name":%q,"address":%q}`, name, address))
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	return idOf(t, decodeObject(t, w))
}

func postPizza(t *testing.T, router *gin.Engine, name, ingredients string) int {
	t.Helper()
	w := perform(router, http.MethodPost, "/pizzas", fmt.Sprintf(`{"name":%q,"ingredients":%q}`, name, ingredients))
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	return idOf(t, decodeObject(t, w))
}

func postRestaurantPizza(router *gin.Engine, price interface{}, restaurantID, pizzaID int) *httptest.ResponseRecorder {
	body := fmt.Sprintf(`{"price":%v,"restaurant_id":%d,"pizza_id":%d}`, price, restaurantID, pizzaID)
	return perform(router, http.MethodPost, "/restaurant_pizzas", body)
}

func TestRestaurantPizzaLifecycle(t *testing.T) {
	router := setupRouter(t)

	w := perform(router, http.MethodPost, "/restaurants", `{"name":"Dough Bros","address":"1 Main St"}`)
	require.Equal(t, http.StatusCreated, w.Code)
	created := decodeObject(t, w)
	assert.Equal(t, "Dough Bros", created["name"])
	assert.Equal(t, "1 Main St", created["address"])
	assert.Equal(t, []interface{}{}, created["restaurant_pizzas"])
	restaurantID := idOf(t, created)

	pizzaID := postPizza(t, router, "Margherita", "tomato, mozzarella")

	w = postRestaurantPizza(router, 15, restaurantID, pizzaID)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	rp := decodeObject(t, w)
	assert.EqualValues(t, 15, rp["price"])
	assert.EqualValues(t, restaurantID, rp["restaurant_id"])
	assert.EqualValues(t, pizzaID, rp["pizza_id"])
	assert.Equal(t, "Margherita", rp["pizza"].(map[string]interface{})["name"])
	assert.Equal(t, "Dough Bros", rp["restaurant"].(map[string]interface{})["name"])
	assert.NotContains(t, rp["pizza"].(map[string]interface{}), "restaurant_pizzas")

	t.Run("restaurant embeds pizza but not itself", func(t *testing.T) {
		w := perform(router, http.MethodGet, fmt.Sprintf("/restaurants/%d", restaurantID), "")
		require.Equal(t, http.StatusOK, w.Code)
		restaurant := decodeObject(t, w)
		rps := restaurant["restaurant_pizzas"].([]interface{})
		require.Len(t, rps, 1)
		entry := rps[0].(map[string]interface{})
		assert.EqualValues(t, 15, entry["price"])
		assert.Equal(t, "Margherita", entry["pizza"].(map[string]interface{})["name"])
		assert.NotContains(t, entry, "restaurant")
		assert.NotContains(t, entry["pizza"].(map[string]interface{}), "restaurant_pizzas")
	})

	t.Run("pizza embeds restaurant but not itself", func(t *testing.T) {
		w := perform(router, http.MethodGet, fmt.Sprintf("/pizzas/%d", pizzaID), "")
		require.Equal(t, http.StatusOK, w.Code)
		pizza := decodeObject(t, w)
		rps := pizza["restaurant_pizzas"].([]interface{})
		require.Len(t, rps, 1)
		entry := rps[0].(map[string]interface{})
		assert.Equal(t, "Dough Bros", entry["restaurant"].(map[string]interface{})["name"])
		assert.NotContains(t, entry, "pizza")
	})

	t.Run("lists omit associations", func(t *testing.T) {
		for _, path := range []string{"/restaurants", "/pizzas"} {
			w := perform(router, http.MethodGet, path, "")
			require.Equal(t, http.StatusOK, w.Code)
			items := decodeArray(t, w)
			require.Len(t, items, 1)
			assert.NotContains(t, items[0], "restaurant_pizzas", path)
		}
	})

	t.Run("delete cascades to associations", func(t *testing.T) {
		w := perform(router, http.MethodDelete, fmt.Sprintf("/restaurants/%d", restaurantID), "")
		assert.Equal(t, http.StatusNoContent, w.Code)
		assert.Empty(t, w.Body.String())

		w = perform(router, http.MethodGet, fmt.Sprintf("/restaurants/%d", restaurantID), "")
		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.JSONEq(t, `{"error":"Restaurant not found"}`, w.Body.String())

		w = perform(router, http.MethodGet, "/restaurant_pizzas", "")
		require.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `[]`, w.Body.String())

		w = perform(router, http.MethodGet, fmt.Sprintf("/pizzas/%d", pizzaID), "")
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, []interface{}{}, decodeObject(t, w)["restaurant_pizzas"])
	})
}

func TestCreateRestaurantPizzaPriceValidation(t *testing.T) {
	router := setupRouter(t)
	restaurantID := postRestaurant(t, router, "Dough Bros", "1 Main St")
	pizzaID := postPizza(t, router, "Margherita", "tomato, mozzarella")

	rejected := []struct {
		name  string
		price interface{}
	}{
		{name: "zero", price: 0},
		{name: "negative", price: -3},
		{name: "above maximum", price: 31},
		{name: "string", price: `"abc"`},
		{name: "fractional", price: 15.5},
		{name: "null", price: "null"},
	}
	for _, tt := range rejected {
		t.Run(tt.name, func(t *testing.T) {
			w := postRestaurantPizza(router, tt.price, restaurantID, pizzaID)
			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.JSONEq(t, priceError, w.Body.String())
		})
	}

	t.Run("missing price", func(t *testing.T) {
		body := fmt.Sprintf(`{"restaurant_id":%d,"pizza_id":%d}`, restaurantID, pizzaID)
		w := perform(router, http.MethodPost, "/restaurant_pizzas", body)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.JSONEq(t, priceError, w.Body.String())
	})

	w := perform(router, http.MethodGet, "/restaurant_pizzas", "")
	assert.JSONEq(t, `[]`, w.Body.String(), "rejected prices must not be stored")

	for _, price := range []int{1, 30} {
		w := postRestaurantPizza(router, price, restaurantID, pizzaID)
		assert.Equal(t, http.StatusCreated, w.Code, "price %d", price)
	}
	w = perform(router, http.MethodGet, "/restaurant_pizzas", "")
	assert.Len(t, decodeArray(t, w), 2)
}

func TestCreateRestaurantPizzaReferences(t *testing.T) {
	router := setupRouter(t)
	restaurantID := postRestaurant(t, router, "Dough Bros", "1 Main St")
	pizzaID := postPizza(t, router, "Margherita", "tomato, mozzarella")

	w := postRestaurantPizza(router, 10, 999, pizzaID)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"error":"Restaurant not found"}`, w.Body.String())

	w = postRestaurantPizza(router, 10, restaurantID, 999)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"error":"Pizza 999 not found"}`, w.Body.String())

	w = perform(router, http.MethodPost, "/restaurant_pizzas", fmt.Sprintf(`{"price":10,"pizza_id":%d}`, pizzaID))
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"errors":["Validation error: restaurant_id is required"]}`, w.Body.String())
}

func TestFilterRestaurantPizzas(t *testing.T) {
	router := setupRouter(t)
	first := postRestaurant(t, router, "Dough Bros", "1 Main St")
	second := postRestaurant(t, router, "Crust Co", "2 Side St")
	margherita := postPizza(t, router, "Margherita", "tomato, mozzarella")
	pepperoni := postPizza(t, router, "Pepperoni", "tomato, pepperoni")

	require.Equal(t, http.StatusCreated, postRestaurantPizza(router, 10, first, margherita).Code)
	require.Equal(t, http.StatusCreated, postRestaurantPizza(router, 12, first, pepperoni).Code)
	require.Equal(t, http.StatusCreated, postRestaurantPizza(router, 9, second, margherita).Code)

	w := perform(router, http.MethodGet, fmt.Sprintf("/restaurant_pizzas?restaurant_id=%d", first), "")
	require.Equal(t, http.StatusOK, w.Code)
	for _, rp := range decodeArray(t, w) {
		assert.EqualValues(t, first, rp["restaurant_id"])
	}
	assert.Len(t, decodeArray(t, w), 2)

	w = perform(router, http.MethodGet, fmt.Sprintf("/restaurant_pizzas?restaurant_id=%d&pizza_id=%d", second, margherita), "")
	require.Equal(t, http.StatusOK, w.Code)
	items := decodeArray(t, w)
	require.Len(t, items, 1)
	assert.EqualValues(t, 9, items[0]["price"])

	w = perform(router, http.MethodGet, "/restaurant_pizzas?pizza_id=abc", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"errors":["Validation error: pizza_id must be an integer id"]}`, w.Body.String())
}

func TestEntityNotFound(t *testing.T) {
	router := setupRouter(t)

	testCases := []struct {
		method string
		path   string
		body   string
		want   string
	}{
		{http.MethodGet, "/restaurants/42", "", `{"error":"Restaurant not found"}`},
		{http.MethodPatch, "/restaurants/42", `{"name":"x"}`, `{"error":"Restaurant not found"}`},
		{http.MethodDelete, "/restaurants/42", "", `{"error":"Restaurant not found"}`},
		{http.MethodGet, "/pizzas/42", "", `{"error":"Pizza 42 not found"}`},
		{http.MethodPatch, "/pizzas/42", `{"name":"x"}`, `{"error":"Pizza 42 not found"}`},
		{http.MethodDelete, "/pizzas/42", "", `{"error":"Pizza 42 not found"}`},
	}
	for _, tt := range testCases {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			w := perform(router, tt.method, tt.path, tt.body)
			assert.Equal(t, http.StatusNotFound, w.Code)
			assert.JSONEq(t, tt.want, w.Body.String())
		})
	}
}

func TestInvalidPathID(t *testing.T) {
	router := setupRouter(t)

	w := perform(router, http.MethodGet, "/restaurants/abc", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error":"Invalid restaurant ID format"}`, w.Body.String())

	w = perform(router, http.MethodDelete, "/pizzas/-1", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error":"Invalid pizza ID format"}`, w.Body.String())
}

func TestPatchUpdatesOnlySuppliedFields(t *testing.T) {
	router := setupRouter(t)
	restaurantID := postRestaurant(t, router, "Dough Bros", "1 Main St")
	pizzaID := postPizza(t, router, "Margherita", "tomato, mozzarella")

	w := perform(router, http.MethodPatch, fmt.Sprintf("/restaurants/%d", restaurantID), `{"address":"2 Side St"}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	restaurant := decodeObject(t, w)
	assert.Equal(t, "Dough Bros", restaurant["name"])
	assert.Equal(t, "2 Side St", restaurant["address"])
	assert.Contains(t, restaurant, "restaurant_pizzas")

	w = perform(router, http.MethodPatch, fmt.Sprintf("/pizzas/%d", pizzaID), `{"name":"Marinara"}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	pizza := decodeObject(t, w)
	assert.Equal(t, "Marinara", pizza["name"])
	assert.Equal(t, "tomato, mozzarella", pizza["ingredients"])

	w = perform(router, http.MethodPatch, fmt.Sprintf("/restaurants/%d", restaurantID), `{"name":"  "}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"errors":["Validation error: name must not be empty"]}`, w.Body.String())

	w = perform(router, http.MethodGet, fmt.Sprintf("/restaurants/%d", restaurantID), "")
	assert.Equal(t, "Dough Bros", decodeObject(t, w)["name"])
}

func TestCreateValidation(t *testing.T) {
	router := setupRouter(t)

	w := perform(router, http.MethodPost, "/restaurants", `{"address":"1 Main St"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"errors":["Validation error: name is required"]}`, w.Body.String())

	w = perform(router, http.MethodPost, "/pizzas", `{"name":"Margherita"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"errors":["Validation error: ingredients is required"]}`, w.Body.String())

	w = perform(router, http.MethodPost, "/pizzas", `{"name":`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"errors":["Validation error: invalid request body"]}`, w.Body.String())

	w = perform(router, http.MethodGet, "/pizzas", "")
	assert.JSONEq(t, `[]`, w.Body.String())
}

func TestHomeAndHealth(t *testing.T) {
	router := setupRouter(t)

	w := perform(router, http.MethodGet, "/", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/html")
	assert.Contains(t, w.Body.String(), "Restaurant-Pizza Management System")

	w = perform(router, http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, w.Code)
	health := decodeObject(t, w)
	assert.Equal(t, "healthy", health["status"])
	assert.Equal(t, serviceName, health["service"])
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
}
