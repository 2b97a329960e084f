package service

import (
	"slices"

	"food-delivery/internal/domain"
)

type Listener interface {
	OnResults(results []domain.SearchResult)
}

type ListenerFunc func(results []domain.SearchResult)

func (f ListenerFunc) OnResults(results []domain.SearchResult) {
	f(results)
}

// Subscription identifies an attached listener.
type Subscription int

type subscriber struct {
	id       Subscription
	listener Listener
}

// Notifier fans the latest search results out to attached listeners, in the
// order they were attached. It is not safe for concurrent use.
type Notifier struct {
	nextID      Subscription
	subscribers []subscriber
	latest      []domain.SearchResult
}

func NewNotifier() *Notifier {
	return &Notifier{nextID: 1}
}

func (n *Notifier) Attach(listener Listener) Subscription {
	id := n.nextID
	n.nextID++
	n.subscribers = append(n.subscribers, subscriber{id: id, listener: listener})
	return id
}

func (n *Notifier) Detach(id Subscription) {
	n.subscribers = slices.DeleteFunc(n.subscribers, func(s subscriber) bool {
		return s.id == id
	})
}

func (n *Notifier) Publish(results []domain.SearchResult) {
	n.latest = results
	for _, s := range slices.Clone(n.subscribers) {
		s.listener.OnResults(results)
	}
}

func (n *Notifier) Latest() []domain.SearchResult {
	return n.latest
}
