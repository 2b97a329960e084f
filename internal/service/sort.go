package service

import (
	"cmp"
	"fmt"
	"slices"
	"strings"

	"food-delivery/internal/domain"
)

type SortKey string

const (
	SortByName   SortKey = "name"
	SortByRating SortKey = "rating"
)

// unratedSortValue orders restaurants without a rating. It is not the
// displayed default.
const unratedSortValue = 4.0

// SortStrategy returns a sorted copy and leaves its input untouched.
type SortStrategy func([]domain.Restaurant) []domain.Restaurant

var strategies = map[SortKey]SortStrategy{
	SortByName:   ByName,
	SortByRating: ByRating,
}

func ParseSortKey(s string) (SortKey, error) {
	key := SortKey(strings.ToLower(strings.TrimSpace(s)))
	if _, ok := strategies[key]; !ok {
		return "", fmt.Errorf("unknown sort key %q", s)
	}
	return key, nil
}

func StrategyFor(key SortKey) (SortStrategy, error) {
	strategy, ok := strategies[key]
	if !ok {
		return nil, fmt.Errorf("unknown sort key %q", key)
	}
	return strategy, nil
}

func ByName(restaurants []domain.Restaurant) []domain.Restaurant {
	sorted := slices.Clone(restaurants)
	slices.SortStableFunc(sorted, func(a, b domain.Restaurant) int {
		return strings.Compare(a.Name, b.Name)
	})
	return sorted
}

func ByRating(restaurants []domain.Restaurant) []domain.Restaurant {
	sorted := slices.Clone(restaurants)
	slices.SortStableFunc(sorted, func(a, b domain.Restaurant) int {
		return cmp.Compare(sortRating(b), sortRating(a))
	})
	return sorted
}

func sortRating(r domain.Restaurant) float64 {
	if r.Rating == nil {
		return unratedSortValue
	}
	return *r.Rating
}
