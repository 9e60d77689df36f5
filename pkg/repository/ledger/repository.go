package ledger

import (
	"context"

	"github.com/dfcarvalho/grana/pkg/dto"
	"github.com/google/uuid"
)

// Repository defines the interface for ledger-entry persistence. All reads
// and writes are scoped by the owning user.
type Repository interface {
	// Create inserts a new ledger entry.
	Create(ctx context.Context, create *dto.TransactionCreate) error

	// List returns the user's entries ordered by entry date descending.
	List(ctx context.Context, userID uuid.UUID) ([]*dto.TransactionRead, error)

	// Update edits type, description, category and value; the entry date
	// is preserved. It reports whether a record was modified.
	Update(ctx context.Context, id, userID uuid.UUID, update *dto.TransactionUpdate) (bool, error)

	// Delete removes an entry, reporting whether a record existed.
	Delete(ctx context.Context, id, userID uuid.UUID) (bool, error)
}
