package investment

import (
	"context"

	"github.com/dfcarvalho/grana/pkg/dto"
	"github.com/google/uuid"
)

// Repository defines the interface for investment persistence plus the
// singleton current-yield figure, upserted by a fixed key per user.
type Repository interface {
	// Create inserts a new position.
	Create(ctx context.Context, create *dto.InvestmentCreate) error

	// List returns the user's positions ordered by redemption date
	// ascending.
	List(ctx context.Context, userID uuid.UUID) ([]*dto.InvestmentRead, error)

	// Update edits a position, reporting whether a record was modified.
	Update(ctx context.Context, id, userID uuid.UUID, update *dto.InvestmentUpdate) (bool, error)

	// Delete removes a position, reporting whether a record existed.
	Delete(ctx context.Context, id, userID uuid.UUID) (bool, error)

	// CurrentYield returns the user's yield figure, 0 when unset.
	CurrentYield(ctx context.Context, userID uuid.UUID) (float64, error)

	// SetCurrentYield upserts the yield figure atomically.
	SetCurrentYield(ctx context.Context, userID uuid.UUID, value float64) error
}
