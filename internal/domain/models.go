package domain

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

const (
	DefaultRating         = 4.5
	DefaultCategory       = "main course"
	OrderStatusProcessing = "processing"
	PaymentCashOnDelivery = "cash on delivery"
	PaymentBankCard       = "bank card"
)

type Restaurant struct {
	ID          int        `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Rating      *float64   `json:"rating,omitempty"`
	Menu        []MenuItem `json:"menu"`
}

// DisplayRating is the rating shown to users; a restaurant without one is
// presented with DefaultRating.
func (r Restaurant) DisplayRating() float64 {
	if r.Rating == nil {
		return DefaultRating
	}
	return *r.Rating
}

type MenuItem struct {
	ID          int     `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Category    string  `json:"category,omitempty"`
}

func (m MenuItem) CategoryOrDefault() string {
	if m.Category == "" {
		return DefaultCategory
	}
	return m.Category
}

// CartLine is a snapshot of a menu item taken when it was put in the cart.
type CartLine struct {
	ItemID     int     `json:"id"`
	Name       string  `json:"name"`
	Price      float64 `json:"price"`
	Restaurant string  `json:"restaurant"`
}

type Order struct {
	ID            string     `json:"id"`
	User          string     `json:"user"`
	Date          time.Time  `json:"date"`
	Items         []CartLine `json:"items"`
	Address       string     `json:"address"`
	PaymentMethod string     `json:"payment_method"`
	Status        string     `json:"status"`
}

// LegacyOrderDateLayout is the minute-precision local time older order
// records were written with.
const LegacyOrderDateLayout = "2006-01-02 15:04"

// UnmarshalJSON accepts RFC 3339 dates as well as LegacyOrderDateLayout.
func (o *Order) UnmarshalJSON(data []byte) error {
	type plain Order
	aux := struct {
		*plain
		Date string `json:"date"`
	}{plain: (*plain)(o)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	date, err := ParseOrderDate(aux.Date)
	if err != nil {
		return err
	}
	o.Date = date
	return nil
}

func ParseOrderDate(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return t, nil
	}
	t, err := time.ParseInLocation(LegacyOrderDateLayout, s, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("order date %q: %w", s, err)
	}
	return t, nil
}

func (o Order) Total() decimal.Decimal {
	return SumLines(o.Items)
}

// SumLines adds line prices at full precision.
func SumLines(lines []CartLine) decimal.Decimal {
	total := decimal.Zero
	for _, line := range lines {
		total = total.Add(decimal.NewFromFloat(line.Price))
	}
	return total
}

// FormatAmount rounds to two fraction digits for display.
func FormatAmount(amount decimal.Decimal) string {
	return amount.StringFixed(2)
}

type OrderEvent struct {
	Type      string    `json:"type"`
	OrderID   string    `json:"order_id"`
	User      string    `json:"user"`
	Lines     int       `json:"lines"`
	Total     string    `json:"total"`
	Timestamp time.Time `json:"timestamp"`
}
