package service

import (
	"context"
	"fmt"
	"strings"

	"food-delivery/internal/domain"

	"github.com/sirupsen/logrus"
)

type CatalogService struct {
	repo     CatalogRepository
	notifier *Notifier
}

func NewCatalogService(repo CatalogRepository, notifier *Notifier) *CatalogService {
	return &CatalogService{repo: repo, notifier: notifier}
}

// Search matches the query, case-insensitively, against restaurant names and
// dish names. Results follow the stored order, restaurant by restaurant. A
// blank query matches nothing; otherwise the query is matched as typed,
// surrounding spaces included.
func (s *CatalogService) Search(ctx context.Context, query string) ([]domain.SearchResult, error) {
	if strings.TrimSpace(query) == "" {
		return []domain.SearchResult{}, nil
	}
	needle := strings.ToLower(query)

	restaurants, err := s.repo.LoadRestaurants(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load restaurants: %w", err)
	}

	results := make([]domain.SearchResult, 0)
	for _, restaurant := range restaurants {
		if strings.Contains(strings.ToLower(restaurant.Name), needle) {
			results = append(results, domain.RestaurantMatch(restaurant))
		}
		for _, item := range restaurant.Menu {
			if strings.Contains(strings.ToLower(item.Name), needle) {
				results = append(results, domain.DishMatch(restaurant, item))
			}
		}
	}

	logrus.WithFields(logrus.Fields{"query": query, "results": len(results)}).Debug("catalog search")
	return results, nil
}

// SearchAndPublish runs Search and hands the results to every listener of
// the notifier. An empty result set is published too so listeners clear.
func (s *CatalogService) SearchAndPublish(ctx context.Context, query string) ([]domain.SearchResult, error) {
	results, err := s.Search(ctx, query)
	if err != nil {
		return nil, err
	}
	if s.notifier != nil {
		s.notifier.Publish(results)
	}
	return results, nil
}

func (s *CatalogService) List(ctx context.Context, key SortKey) ([]domain.Restaurant, error) {
	strategy, err := StrategyFor(key)
	if err != nil {
		return nil, err
	}
	restaurants, err := s.repo.LoadRestaurants(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load restaurants: %w", err)
	}
	return strategy(restaurants), nil
}

func (s *CatalogService) Restaurant(ctx context.Context, id int) (*domain.Restaurant, error) {
	restaurants, err := s.repo.LoadRestaurants(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load restaurants: %w", err)
	}
	for _, restaurant := range restaurants {
		if restaurant.ID == id {
			return &restaurant, nil
		}
	}
	return nil, ErrRestaurantNotFound
}

type MenuSection struct {
	Category string
	Items    []domain.MenuItem
}

// MenuByCategory groups a menu by category, keeping categories in the order
// they first appear.
func MenuByCategory(restaurant domain.Restaurant) []MenuSection {
	var sections []MenuSection
	index := make(map[string]int)
	for _, item := range restaurant.Menu {
		category := item.CategoryOrDefault()
		i, ok := index[category]
		if !ok {
			i = len(sections)
			index[category] = i
			sections = append(sections, MenuSection{Category: category})
		}
		sections[i].Items = append(sections[i].Items, item)
	}
	return sections
}

var _ CatalogServiceInterface = (*CatalogService)(nil)
