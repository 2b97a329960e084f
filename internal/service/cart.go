package service

import (
	"slices"

	"food-delivery/internal/domain"

	"github.com/shopspring/decimal"
)

type CartState string

const (
	CartEmpty     CartState = "empty"
	CartPopulated CartState = "populated"
)

// Cart holds the lines selected during one session.
type Cart struct {
	lines []domain.CartLine
}

func NewCart() *Cart {
	return &Cart{}
}

// NewCartLine snapshots a menu item so the cart no longer depends on the
// catalog.
func NewCartLine(restaurant domain.Restaurant, item domain.MenuItem) domain.CartLine {
	return domain.CartLine{
		ItemID:     item.ID,
		Name:       item.Name,
		Price:      item.Price,
		Restaurant: restaurant.Name,
	}
}

func (c *Cart) AddLine(line domain.CartLine) {
	c.lines = append(c.lines, line)
}

func (c *Cart) Lines() []domain.CartLine {
	return slices.Clone(c.lines)
}

func (c *Cart) Total() decimal.Decimal {
	return domain.SumLines(c.lines)
}

func (c *Cart) State() CartState {
	if len(c.lines) == 0 {
		return CartEmpty
	}
	return CartPopulated
}

func (c *Cart) Clear() {
	c.lines = nil
}

var _ CartInterface = (*Cart)(nil)
