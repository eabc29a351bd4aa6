// Package views turns models into the JSON shapes returned by the API.
//
// Relations are expanded at most one hop: a related entity embedded in a view
// is always rendered flat, so the bidirectional Restaurant <-> RestaurantPizza
// <-> Pizza graph can never recurse. Callers choose which relations of the top
// level entity to drop with an exclusion set.
package views

import "github.com/franciscosanchezn/gin-restaurant-api/internal/models"

// Relation names accepted in an exclusion set
const (
	RelRestaurantPizzas = "restaurant_pizzas"
	RelPizza            = "pizza"
	RelRestaurant       = "restaurant"
)

// Restaurant is the rendered form of models.Restaurant
type Restaurant struct {
	ID               uint               `json:"id"`
	Name             string             `json:"name"`
	Address          string             `json:"address"`
	RestaurantPizzas *[]RestaurantPizza `json:"restaurant_pizzas,omitempty"`
}

// Pizza is the rendered form of models.Pizza
type Pizza struct {
	ID               uint               `json:"id"`
	Name             string             `json:"name"`
	Ingredients      string             `json:"ingredients"`
	RestaurantPizzas *[]RestaurantPizza `json:"restaurant_pizzas,omitempty"`
}

// RestaurantPizza is the rendered form of models.RestaurantPizza
type RestaurantPizza struct {
	ID           uint        `json:"id"`
	Price        int         `json:"price"`
	PizzaID      uint        `json:"pizza_id"`
	RestaurantID uint        `json:"restaurant_id"`
	Pizza        *Pizza      `json:"pizza,omitempty"`
	Restaurant   *Restaurant `json:"restaurant,omitempty"`
}

type exclusions map[string]struct{}

func exclusionSet(names []string) exclusions {
	set := make(exclusions, len(names))
	for _, n := range names {
		set[n] = struct{}{}
	}
	return set
}

func (e exclusions) has(name string) bool {
	_, ok := e[name]
	return ok
}

// FromRestaurant renders a restaurant. Unless excluded, its associations are
// included, each embedding its pizza but not the restaurant again.
func FromRestaurant(r models.Restaurant, exclude ...string) Restaurant {
	view := flatRestaurant(&r)
	if !exclusionSet(exclude).has(RelRestaurantPizzas) {
		rps := renderAll(r.RestaurantPizzas, func(rp models.RestaurantPizza) RestaurantPizza {
			return FromRestaurantPizza(rp, RelRestaurant)
		})
		view.RestaurantPizzas = &rps
	}
	return *view
}

// FromRestaurants renders a list of restaurants with the same exclusions
func FromRestaurants(rs []models.Restaurant, exclude ...string) []Restaurant {
	return renderAll(rs, func(r models.Restaurant) Restaurant {
		return FromRestaurant(r, exclude...)
	})
}

// FromPizza renders a pizza. Unless excluded, its associations are included,
// each embedding its restaurant but not the pizza again.
func FromPizza(p models.Pizza, exclude ...string) Pizza {
	view := flatPizza(&p)
	if !exclusionSet(exclude).has(RelRestaurantPizzas) {
		rps := renderAll(p.RestaurantPizzas, func(rp models.RestaurantPizza) RestaurantPizza {
			return FromRestaurantPizza(rp, RelPizza)
		})
		view.RestaurantPizzas = &rps
	}
	return *view
}

// FromPizzas renders a list of pizzas with the same exclusions
func FromPizzas(ps []models.Pizza, exclude ...string) []Pizza {
	return renderAll(ps, func(p models.Pizza) Pizza {
		return FromPizza(p, exclude...)
	})
}

// FromRestaurantPizza renders an association with its pizza and restaurant
// embedded flat, minus the excluded ones. A relation that was not loaded is
// left out.
func FromRestaurantPizza(rp models.RestaurantPizza, exclude ...string) RestaurantPizza {
	set := exclusionSet(exclude)
	view := RestaurantPizza{
		ID:           rp.ID,
		Price:        rp.Price,
		PizzaID:      rp.PizzaID,
		RestaurantID: rp.RestaurantID,
	}
	if !set.has(RelPizza) && rp.Pizza != nil {
		view.Pizza = flatPizza(rp.Pizza)
	}
	if !set.has(RelRestaurant) && rp.Restaurant != nil {
		view.Restaurant = flatRestaurant(rp.Restaurant)
	}
	return view
}

// FromRestaurantPizzas renders a list of associations with the same exclusions
func FromRestaurantPizzas(rps []models.RestaurantPizza, exclude ...string) []RestaurantPizza {
	return renderAll(rps, func(rp models.RestaurantPizza) RestaurantPizza {
		return FromRestaurantPizza(rp, exclude...)
	})
}

func flatRestaurant(r *models.Restaurant) *Restaurant {
	return &Restaurant{ID: r.ID, Name: r.Name, Address: r.Address}
}

func flatPizza(p *models.Pizza) *Pizza {
	return &Pizza{ID: p.ID, Name: p.Name, Ingredients: p.Ingredients}
}

// renderAll never returns nil so empty lists encode as []
func renderAll[T, V any](items []T, render func(T) V) []V {
	out := make([]V, 0, len(items))
	for _, item := range items {
		out = append(out, render(item))
	}
	return out
}
