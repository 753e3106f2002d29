package domain

import "time"

// PantryItem is a single tracked food item. ExpiryDate is kept as the raw
// string the user entered; Status is always derived from it, never stored
// as user input.
type PantryItem struct {
	ID         string          `json:"id"`
	Name       string          `json:"name"`
	Quantity   string          `json:"quantity,omitempty"`
	ExpiryDate string          `json:"expiry_date,omitempty"`
	Emoji      string          `json:"emoji,omitempty"`
	Status     FreshnessStatus `json:"status,omitempty"`
	Value      *float64        `json:"value,omitempty"`
	Category   string          `json:"category,omitempty"`

	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}
