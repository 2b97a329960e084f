package service

import (
	"context"

	"food-delivery/internal/domain"
	"food-delivery/internal/storage"

	"github.com/shopspring/decimal"
)

type AccountRepository interface {
	LoadAccounts(ctx context.Context) ([]domain.Account, error)
	SaveAccounts(ctx context.Context, accounts []domain.Account) error
}

type CatalogRepository interface {
	LoadRestaurants(ctx context.Context) ([]domain.Restaurant, error)
}

type OrderRepository interface {
	LoadOrders(ctx context.Context) ([]domain.Order, error)
	SaveOrders(ctx context.Context, orders []domain.Order) error
}

type OrderPublisher interface {
	PublishOrder(ctx context.Context, event domain.OrderEvent) error
}

type AccountServiceInterface interface {
	Register(ctx context.Context, reg domain.Registration) (string, error)
	Authenticate(ctx context.Context, login, password string) (*domain.Account, error)
}

type CatalogServiceInterface interface {
	Search(ctx context.Context, query string) ([]domain.SearchResult, error)
	SearchAndPublish(ctx context.Context, query string) ([]domain.SearchResult, error)
	List(ctx context.Context, key SortKey) ([]domain.Restaurant, error)
	Restaurant(ctx context.Context, id int) (*domain.Restaurant, error)
}

type OrderServiceInterface interface {
	Confirm(ctx context.Context, account *domain.Account, cart CartInterface, paymentMethod string) (*domain.Order, error)
	History(ctx context.Context, account *domain.Account) ([]domain.Order, error)
	All(ctx context.Context, account *domain.Account) ([]domain.Order, error)
	Receipt(ctx context.Context, orderID string) ([]byte, error)
}

type CartInterface interface {
	AddLine(line domain.CartLine)
	Lines() []domain.CartLine
	Total() decimal.Decimal
	State() CartState
	Clear()
}

var (
	_ AccountRepository = (*storage.RecordStore)(nil)
	_ CatalogRepository = (*storage.RecordStore)(nil)
	_ OrderRepository   = (*storage.RecordStore)(nil)
	_ OrderPublisher    = (*storage.KafkaOrderPublisher)(nil)
)
