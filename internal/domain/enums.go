package domain

type FreshnessStatus string

const (
	StatusFresh    FreshnessStatus = "fresh"
	StatusExpiring FreshnessStatus = "expiring"
	StatusExpired  FreshnessStatus = "expired"
)

type ReminderKind string

const (
	KindT3      ReminderKind = "T-3"
	KindT1      ReminderKind = "T-1"
	KindT0      ReminderKind = "T-0"
	KindOverdue ReminderKind = "overdue"
)

type WasteOutcome string

const (
	OutcomeEaten   WasteOutcome = "eaten"
	OutcomeSpoiled WasteOutcome = "spoiled"
)

// ValidCategories is the canonical set of accepted item category strings.
// An empty category means uncategorized.
var ValidCategories = map[string]bool{
	"Fruits": true, "Vegetables": true, "Dairy": true, "Meat": true,
	"Seafood": true, "Grains": true, "Bakery": true, "Beverages": true,
	"Snacks": true, "Frozen": true, "Condiments": true, "Other": true,
}
