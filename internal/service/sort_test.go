package service_test

import (
	"testing"

	"food-delivery/internal/domain"
	"food-delivery/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestByName(t *testing.T) {
	input := []domain.Restaurant{
		{ID: 1, Name: "Zeta"},
		{ID: 2, Name: "alpha"},
		{ID: 3, Name: "Alpha"},
		{ID: 4, Name: "Mango"},
		{ID: 5, Name: "Alpha"},
	}

	sorted := service.ByName(input)

	// Byte-wise comparison puts upper case before lower case.
	assert.Equal(t, []int{3, 5, 4, 1, 2}, ids(sorted))
	assert.Equal(t, []int{1, 2, 3, 4, 5}, ids(input))
}

func TestByRating(t *testing.T) {
	input := []domain.Restaurant{
		{ID: 1, Name: "Unrated"},
		{ID: 2, Name: "Low", Rating: rating(3.9)},
		{ID: 3, Name: "Four", Rating: rating(4.0)},
		{ID: 4, Name: "Top", Rating: rating(4.9)},
		{ID: 5, Name: "Shown as default", Rating: rating(4.5)},
	}

	sorted := service.ByRating(input)

	assert.Equal(t, []int{4, 5, 1, 3, 2}, ids(sorted))
	assert.Equal(t, []int{1, 2, 3, 4, 5}, ids(input))
}

func TestSortStrategiesOnEmptyInput(t *testing.T) {
	assert.Empty(t, service.ByName(nil))
	assert.Empty(t, service.ByRating([]domain.Restaurant{}))
}

func TestParseSortKey(t *testing.T) {
	tests := []struct {
		input    string
		expected service.SortKey
		wantErr  bool
	}{
		{input: "name", expected: service.SortByName},
		{input: " Rating ", expected: service.SortByRating},
		{input: "price", wantErr: true},
		{input: "", wantErr: true},
	}

	for _, testCase := range tests {
		t.Run(testCase.input, func(t *testing.T) {
			key, err := service.ParseSortKey(testCase.input)
			if testCase.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, testCase.expected, key)

			strategy, err := service.StrategyFor(key)
			require.NoError(t, err)
			assert.NotNil(t, strategy)
		})
	}
}

func ids(restaurants []domain.Restaurant) []int {
	out := make([]int, 0, len(restaurants))
	for _, r := range restaurants {
		out = append(out, r.ID)
	}
	return out
}
