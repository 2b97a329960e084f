package service_test

import (
	"context"
	"testing"

	"food-delivery/internal/domain"
	"food-delivery/internal/storage"

	"github.com/stretchr/testify/require"
)

func newStore(t *testing.T) (*storage.RecordStore, *storage.FileBackend) {
	t.Helper()
	backend, err := storage.NewFileBackend(t.TempDir())
	require.NoError(t, err)
	store, err := storage.NewRecordStore(context.Background(), backend)
	require.NoError(t, err)
	return store, backend
}

func rating(v float64) *float64 {
	return &v
}

func validRegistration(login, password string) domain.Registration {
	return domain.Registration{
		FirstName:      "Alice",
		LastName:       "Smith",
		BirthDate:      "1990-04-12",
		Email:          "alice@example.com",
		Login:          login,
		Password:       password,
		RepeatPassword: password,
		Address:        "12 Baker Street",
	}
}

func sampleCatalog() []domain.Restaurant {
	return []domain.Restaurant{
		{
			ID: 1, Name: "Pizza Place", Description: "Wood-fired pizza", Rating: rating(4.7),
			Menu: []domain.MenuItem{
				{ID: 11, Name: "Pizza Margherita", Description: "Tomato, mozzarella", Price: 250, Category: "pizza"},
				{ID: 12, Name: "Tiramisu", Description: "Coffee dessert", Price: 99.5, Category: "dessert"},
				{ID: 13, Name: "Pepperoni Pizza", Description: "Spicy", Price: 320, Category: "pizza"},
			},
		},
		{
			ID: 2, Name: "Sushi Bar", Description: "Fresh rolls",
			Menu: []domain.MenuItem{
				{ID: 21, Name: "California Roll", Price: 180},
				{ID: 22, Name: "Pizza Roll", Price: 210},
			},
		},
		{
			ID: 3, Name: "Burger Hub", Description: "Burgers", Rating: rating(4.0),
			Menu: []domain.MenuItem{
				{ID: 31, Name: "Cheeseburger", Price: 150},
			},
		},
	}
}
