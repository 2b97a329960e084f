package domain

type ResultKind string

const (
	KindRestaurant ResultKind = "restaurant"
	KindDish       ResultKind = "dish"
)

// SearchResult is either a restaurant match or a dish match, told apart by
// Kind. Restaurant matches fill ID, Name, Description and Rating; dish
// matches fill RestaurantID, RestaurantName, Name, Description and Price.
type SearchResult struct {
	Kind           ResultKind `json:"type"`
	ID             int        `json:"id,omitempty"`
	RestaurantID   int        `json:"restaurant_id,omitempty"`
	RestaurantName string     `json:"restaurant_name,omitempty"`
	Name           string     `json:"name"`
	Description    string     `json:"description"`
	Rating         float64    `json:"rating,omitempty"`
	Price          float64    `json:"price,omitempty"`
}

func RestaurantMatch(r Restaurant) SearchResult {
	return SearchResult{
		Kind:        KindRestaurant,
		ID:          r.ID,
		Name:        r.Name,
		Description: r.Description,
		Rating:      r.DisplayRating(),
	}
}

func DishMatch(r Restaurant, item MenuItem) SearchResult {
	return SearchResult{
		Kind:           KindDish,
		RestaurantID:   r.ID,
		RestaurantName: r.Name,
		Name:           item.Name,
		Description:    item.Description,
		Price:          item.Price,
	}
}

// TargetRestaurant is the restaurant a result leads to when selected.
func (s SearchResult) TargetRestaurant() int {
	if s.Kind == KindRestaurant {
		return s.ID
	}
	return s.RestaurantID
}
