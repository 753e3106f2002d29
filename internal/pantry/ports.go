package pantry

import (
	"context"

	"github.com/freshtrackhq/freshtrack/internal/domain"
)

// Store is the remote pantry store. It is the long-lived owner of items;
// the controller's in-memory collection is a session-scoped mirror. IDs are
// opaque strings assigned by the store on creation.
type Store interface {
	List(ctx context.Context) ([]domain.PantryItem, error)
	Create(ctx context.Context, item domain.PantryItem) (domain.PantryItem, error)
	Update(ctx context.Context, id string, item domain.PantryItem) (domain.PantryItem, error)
	Delete(ctx context.Context, id string) error
}
