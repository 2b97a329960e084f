package service

import (
	"context"

	"food-delivery/internal/domain"

	"github.com/sirupsen/logrus"
)

// Session is the single signed-in user of the process together with their
// cart.
type Session struct {
	accounts AccountServiceInterface
	catalog  CatalogServiceInterface
	orders   OrderServiceInterface
	current  *domain.Account
	cart     *Cart
}

func NewSession(accounts AccountServiceInterface, catalog CatalogServiceInterface, orders OrderServiceInterface) *Session {
	return &Session{
		accounts: accounts,
		catalog:  catalog,
		orders:   orders,
		cart:     NewCart(),
	}
}

// Login replaces the current account on success and starts an empty cart.
// A nil account with a nil error means the credentials did not match.
func (s *Session) Login(ctx context.Context, login, password string) (*domain.Account, error) {
	account, err := s.accounts.Authenticate(ctx, login, password)
	if err != nil || account == nil {
		return nil, err
	}
	s.current = account
	s.cart.Clear()
	return account, nil
}

func (s *Session) Logout() {
	if s.current != nil {
		logrus.WithField("login", s.current.Login).Info("logged out")
	}
	s.current = nil
	s.cart.Clear()
}

func (s *Session) Account() *domain.Account {
	return s.current
}

func (s *Session) Cart() *Cart {
	return s.cart
}

// Select puts a snapshot of a restaurant's menu item into the cart.
func (s *Session) Select(ctx context.Context, restaurantID, itemID int) (domain.CartLine, error) {
	if s.current == nil {
		return domain.CartLine{}, ErrNotAuthenticated
	}
	restaurant, err := s.catalog.Restaurant(ctx, restaurantID)
	if err != nil {
		return domain.CartLine{}, err
	}
	for _, item := range restaurant.Menu {
		if item.ID == itemID {
			line := NewCartLine(*restaurant, item)
			s.cart.AddLine(line)
			return line, nil
		}
	}
	return domain.CartLine{}, ErrMenuItemNotFound
}

func (s *Session) Checkout(ctx context.Context, paymentMethod string) (*domain.Order, error) {
	return s.orders.Confirm(ctx, s.current, s.cart, paymentMethod)
}
