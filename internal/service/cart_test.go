package service_test

import (
	"testing"

	"food-delivery/internal/domain"
	"food-delivery/internal/service"

	"github.com/stretchr/testify/assert"
)

func TestCart(t *testing.T) {
	restaurant := sampleCatalog()[0]
	cart := service.NewCart()
	assert.Equal(t, service.CartEmpty, cart.State())
	assert.Equal(t, "0.00", domain.FormatAmount(cart.Total()))
	assert.Empty(t, cart.Lines())

	cart.AddLine(service.NewCartLine(restaurant, restaurant.Menu[0]))
	cart.AddLine(service.NewCartLine(restaurant, restaurant.Menu[1]))
	cart.AddLine(service.NewCartLine(restaurant, restaurant.Menu[0]))

	assert.Equal(t, service.CartPopulated, cart.State())
	assert.Len(t, cart.Lines(), 3)
	assert.Equal(t, "599.50", domain.FormatAmount(cart.Total()))

	cart.Clear()
	assert.Equal(t, service.CartEmpty, cart.State())
	assert.Empty(t, cart.Lines())
}

func TestCart_LinesAreSnapshots(t *testing.T) {
	restaurant := sampleCatalog()[0]
	cart := service.NewCart()
	cart.AddLine(service.NewCartLine(restaurant, restaurant.Menu[1]))

	restaurant.Menu[1].Price = 1000
	lines := cart.Lines()
	lines[0].Name = "changed"

	assert.Equal(t, domain.CartLine{ItemID: 12, Name: "Tiramisu", Price: 99.5, Restaurant: "Pizza Place"}, cart.Lines()[0])
}

func TestCart_TotalKeepsPrecision(t *testing.T) {
	cart := service.NewCart()
	for i := 0; i < 10; i++ {
		cart.AddLine(domain.CartLine{Name: "tea", Price: 0.1})
	}
	cart.AddLine(domain.CartLine{Name: "fee", Price: 0.005})

	assert.Equal(t, "1.005", cart.Total().String())
	assert.Equal(t, "1.01", domain.FormatAmount(cart.Total()))
}
