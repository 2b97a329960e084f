package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"food-delivery/internal/domain"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

const OrderPlacedEvent = "order_placed"

type OrderService struct {
	repo      OrderRepository
	publisher OrderPublisher
	qrEncoder QRGenerator
}

// NewOrderService builds the order workflow. publisher and qr may be nil.
func NewOrderService(repo OrderRepository, publisher OrderPublisher, qr QRGenerator) *OrderService {
	return &OrderService{repo: repo, publisher: publisher, qrEncoder: qr}
}

// Confirm turns the cart into a persisted order for account and empties the
// cart. Nothing is written when the cart is empty.
func (s *OrderService) Confirm(ctx context.Context, account *domain.Account, cart CartInterface, paymentMethod string) (*domain.Order, error) {
	if account == nil {
		return nil, ErrNotAuthenticated
	}
	if cart.State() == CartEmpty {
		return nil, ErrEmptyCart
	}
	if strings.TrimSpace(paymentMethod) == "" {
		return nil, ErrNoPaymentMethod
	}

	order := domain.Order{
		ID:            uuid.NewString(),
		User:          account.Login,
		Date:          time.Now(),
		Items:         cart.Lines(),
		Address:       account.Address,
		PaymentMethod: paymentMethod,
		Status:        domain.OrderStatusProcessing,
	}

	orders, err := s.repo.LoadOrders(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load orders: %w", err)
	}
	orders = append(orders, order)
	if err := s.repo.SaveOrders(ctx, orders); err != nil {
		return nil, fmt.Errorf("failed to save orders: %w", err)
	}
	cart.Clear()

	total := domain.FormatAmount(order.Total())
	logrus.WithFields(logrus.Fields{
		"order_id": order.ID,
		"login":    order.User,
		"lines":    len(order.Items),
		"total":    total,
		"payment":  order.PaymentMethod,
	}).Info("order placed")

	if s.publisher != nil {
		err := s.publisher.PublishOrder(ctx, domain.OrderEvent{
			Type:      OrderPlacedEvent,
			OrderID:   order.ID,
			User:      order.User,
			Lines:     len(order.Items),
			Total:     total,
			Timestamp: order.Date,
		})
		if err != nil {
			logrus.WithError(err).WithField("order_id", order.ID).Warn("failed to publish order event")
		}
	}

	return &order, nil
}

func (s *OrderService) History(ctx context.Context, account *domain.Account) ([]domain.Order, error) {
	if account == nil {
		return nil, ErrNotAuthenticated
	}
	orders, err := s.repo.LoadOrders(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load orders: %w", err)
	}
	own := make([]domain.Order, 0)
	for _, order := range orders {
		if order.User == account.Login {
			own = append(own, order)
		}
	}
	return own, nil
}

// All lists every order and is reserved to administrators.
func (s *OrderService) All(ctx context.Context, account *domain.Account) ([]domain.Order, error) {
	if account == nil {
		return nil, ErrNotAuthenticated
	}
	if !account.IsAdmin() {
		return nil, ErrForbidden
	}
	orders, err := s.repo.LoadOrders(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load orders: %w", err)
	}
	return orders, nil
}

func (s *OrderService) Receipt(ctx context.Context, orderID string) ([]byte, error) {
	if s.qrEncoder == nil {
		return nil, fmt.Errorf("receipts are not configured")
	}
	orders, err := s.repo.LoadOrders(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load orders: %w", err)
	}
	for _, order := range orders {
		if order.ID == orderID {
			return s.qrEncoder.Generate(order.ID)
		}
	}
	return nil, ErrOrderNotFound
}

var _ OrderServiceInterface = (*OrderService)(nil)
