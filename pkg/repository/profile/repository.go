package profile

import (
	"context"

	"github.com/dfcarvalho/grana/pkg/dto"
	"github.com/google/uuid"
)

// Repository defines the interface for salary-profile persistence. Saves
// upsert by (user_id, name); the write must be a single atomic
// update-or-insert so concurrent saves of the same name cannot produce
// duplicates.
type Repository interface {
	// Upsert stores the snapshot, overwriting any profile with the same
	// (user_id, name) and refreshing updated_at.
	Upsert(ctx context.Context, save *dto.ProfileSave) error

	// Get retrieves a profile by owner and name.
	Get(ctx context.Context, userID uuid.UUID, name string) (*dto.ProfileRead, error)

	// ListNames returns the user's profile names in lexicographic order.
	ListNames(ctx context.Context, userID uuid.UUID) ([]string, error)

	// MostRecentName returns the name of the profile with the greatest
	// updated_at, or "" when the user has none.
	MostRecentName(ctx context.Context, userID uuid.UUID) (string, error)

	// Delete removes a profile. It reports whether a record existed;
	// deleting a missing or foreign profile is a no-op, not an error.
	Delete(ctx context.Context, userID uuid.UUID, name string) (bool, error)
}
