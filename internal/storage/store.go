package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"food-delivery/internal/domain"

	"github.com/sirupsen/logrus"
)

const (
	CollectionAccounts    = "users"
	CollectionRestaurants = "restaurants"
	CollectionOrders      = "orders"
)

var Collections = []string{CollectionAccounts, CollectionRestaurants, CollectionOrders}

var (
	ErrStorage           = errors.New("storage failure")
	ErrMissingCollection = errors.New("collection does not exist")
)

// Backend persists named collections as whole JSON documents. Write must
// replace the document in one step so readers never see a partial one.
type Backend interface {
	Ensure(ctx context.Context, name string) error
	Read(ctx context.Context, name string) ([]byte, error)
	Write(ctx context.Context, name string, doc []byte) error
}

// RecordStore loads and saves the accounts, restaurants and orders
// collections. Every save rewrites the whole collection; there is no locking,
// so a single writer is assumed.
type RecordStore struct {
	backend Backend
}

func NewRecordStore(ctx context.Context, backend Backend) (*RecordStore, error) {
	for _, name := range Collections {
		if err := backend.Ensure(ctx, name); err != nil {
			return nil, fmt.Errorf("%w: init %s: %w", ErrStorage, name, err)
		}
	}
	logrus.WithField("backend", fmt.Sprintf("%T", backend)).Debug("record store ready")
	return &RecordStore{backend: backend}, nil
}

func (s *RecordStore) LoadAccounts(ctx context.Context) ([]domain.Account, error) {
	var accounts []domain.Account
	if err := s.load(ctx, CollectionAccounts, &accounts); err != nil {
		return nil, err
	}
	for i := range accounts {
		accounts[i].Role = domain.ParseRole(string(accounts[i].Role))
	}
	return accounts, nil
}

func (s *RecordStore) SaveAccounts(ctx context.Context, accounts []domain.Account) error {
	return s.save(ctx, CollectionAccounts, nonNil(accounts))
}

func (s *RecordStore) LoadRestaurants(ctx context.Context) ([]domain.Restaurant, error) {
	var restaurants []domain.Restaurant
	if err := s.load(ctx, CollectionRestaurants, &restaurants); err != nil {
		return nil, err
	}
	return restaurants, nil
}

func (s *RecordStore) SaveRestaurants(ctx context.Context, restaurants []domain.Restaurant) error {
	return s.save(ctx, CollectionRestaurants, nonNil(restaurants))
}

func (s *RecordStore) LoadOrders(ctx context.Context) ([]domain.Order, error) {
	var orders []domain.Order
	if err := s.load(ctx, CollectionOrders, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

func (s *RecordStore) SaveOrders(ctx context.Context, orders []domain.Order) error {
	return s.save(ctx, CollectionOrders, nonNil(orders))
}

func (s *RecordStore) load(ctx context.Context, name string, out any) error {
	doc, err := s.backend.Read(ctx, name)
	if err != nil {
		return fmt.Errorf("%w: read %s: %w", ErrStorage, name, err)
	}
	if err := json.Unmarshal(doc, out); err != nil {
		return fmt.Errorf("%w: decode %s: %w", ErrStorage, name, err)
	}
	return nil
}

func (s *RecordStore) save(ctx context.Context, name string, records any) error {
	doc, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: encode %s: %w", ErrStorage, name, err)
	}
	if err := s.backend.Write(ctx, name, doc); err != nil {
		return fmt.Errorf("%w: write %s: %w", ErrStorage, name, err)
	}
	return nil
}

// nonNil keeps empty collections encoded as [] rather than null.
func nonNil[T any](records []T) []T {
	if records == nil {
		return []T{}
	}
	return records
}
