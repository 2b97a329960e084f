package service_test

import (
	"context"
	"testing"

	"food-delivery/internal/domain"
	"food-delivery/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Register, sign in, find a restaurant, fill the cart and check out against
// a real file-backed store.
func TestOrderingScenario(t *testing.T) {
	ctx := context.Background()
	store, _ := newStore(t)
	require.NoError(t, store.SaveRestaurants(ctx, []domain.Restaurant{
		{
			ID: 1, Name: "Pizza Place", Rating: rating(4.7),
			Menu: []domain.MenuItem{
				{ID: 11, Name: "Margherita", Price: 250},
				{ID: 12, Name: "Tiramisu", Price: 99.5},
			},
		},
		{
			ID: 2, Name: "Burger Hub",
			Menu: []domain.MenuItem{{ID: 21, Name: "Cheeseburger", Price: 150}},
		},
	}))

	notifier := service.NewNotifier()
	accounts := service.NewAccountService(store)
	catalog := service.NewCatalogService(store, notifier)
	orders := service.NewOrderService(store, nil, nil)
	session := service.NewSession(accounts, catalog, orders)

	message, err := accounts.Register(ctx, validRegistration("alice", "abc123"))
	require.NoError(t, err)
	assert.Equal(t, service.RegistrationSucceeded, message)

	_, err = accounts.Register(ctx, validRegistration("alice", "abc123"))
	assert.ErrorIs(t, err, service.ErrLoginTaken)

	_, err = session.Checkout(ctx, domain.PaymentBankCard)
	assert.ErrorIs(t, err, service.ErrNotAuthenticated)

	account, err := session.Login(ctx, "alice", "abc123")
	require.NoError(t, err)
	require.NotNil(t, account)
	assert.Equal(t, domain.RoleRegular, account.Role)

	var shown []domain.SearchResult
	notifier.Attach(service.ListenerFunc(func(results []domain.SearchResult) { shown = results }))
	results, err := catalog.SearchAndPublish(ctx, "pizza")
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, results, shown)
	assert.Equal(t, domain.KindRestaurant, shown[0].Kind)
	assert.Equal(t, "Pizza Place", shown[0].Name)
	restaurantID := shown[0].TargetRestaurant()

	_, err = session.Checkout(ctx, domain.PaymentBankCard)
	assert.ErrorIs(t, err, service.ErrEmptyCart)

	_, err = session.Select(ctx, restaurantID, 11)
	require.NoError(t, err)
	_, err = session.Select(ctx, restaurantID, 12)
	require.NoError(t, err)
	assert.Equal(t, service.CartPopulated, session.Cart().State())
	assert.Equal(t, "349.50", domain.FormatAmount(session.Cart().Total()))

	order, err := session.Checkout(ctx, domain.PaymentCashOnDelivery)
	require.NoError(t, err)
	assert.Equal(t, "alice", order.User)
	assert.Equal(t, "12 Baker Street", order.Address)
	assert.Equal(t, service.CartEmpty, session.Cart().State())

	_, err = session.Checkout(ctx, domain.PaymentCashOnDelivery)
	require.ErrorIs(t, err, service.ErrEmptyCart)
	assert.Equal(t, "cart is empty", err.Error())

	history, err := orders.History(ctx, account)
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, "349.50", domain.FormatAmount(history[0].Total()))
	assert.Equal(t, "Margherita", history[0].Items[0].Name)
	assert.Equal(t, "Pizza Place", history[0].Items[0].Restaurant)
}
