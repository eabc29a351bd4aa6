package services

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/franciscosanchezn/gin-restaurant-api/internal/database"
	"github.com/franciscosanchezn/gin-restaurant-api/internal/events"
	"github.com/franciscosanchezn/gin-restaurant-api/internal/models"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := database.InitDatabase(database.DatabaseConfig{Driver: "sqlite", Path: ":memory:"})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	t.Cleanup(func() { _ = database.Close(db) })
	return db
}

// recordingPublisher keeps every published event in memory
type recordingPublisher struct {
	mu     sync.Mutex
	events []events.Event
	err    error
}

func (p *recordingPublisher) Publish(_ context.Context, event events.Event) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, event)
	return p.err
}

func (p *recordingPublisher) Close() error { return nil }

func (p *recordingPublisher) types() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]string, 0, len(p.events))
	for _, e := range p.events {
		out = append(out, e.Type)
	}
	return out
}

func createRestaurant(t *testing.T, svc RestaurantService, name string) models.Restaurant {
	t.Helper()
	r, err := svc.CreateRestaurant(context.Background(), models.Restaurant{Name: name, Address: name + " street"})
	require.NoError(t, err)
	return r
}

func createPizza(t *testing.T, svc PizzaService, name string) models.Pizza {
	t.Helper()
	p, err := svc.CreatePizza(context.Background(), models.Pizza{Name: name, Ingredients: "dough, tomato"})
	require.NoError(t, err)
	return p
}

func intPtr(v int) *int       { return &v }
func uintPtr(v uint) *uint    { return &v }
func strPtr(v string) *string { return &v }

var errBrokerDown = errors.New("broker down")
