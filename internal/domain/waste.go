package domain

import "time"

// WasteEvent records the outcome of a removed pantry item: eaten while still
// good, or spoiled. These feed the waste statistics.
type WasteEvent struct {
	ID        string
	ItemName  string
	Outcome   WasteOutcome
	DeletedAt time.Time
	Value     *float64
	Category  string
}
