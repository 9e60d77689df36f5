// Package repository defines the persistence contracts consumed by the
// service layer: per-entity repositories and the UnitOfWork that binds them
// to one transaction.
package repository

import (
	"context"

	"github.com/dfcarvalho/grana/pkg/repository/investment"
	"github.com/dfcarvalho/grana/pkg/repository/ledger"
	"github.com/dfcarvalho/grana/pkg/repository/profile"
	"github.com/dfcarvalho/grana/pkg/repository/user"
)

// UnitOfWork is the transactional boundary for repository access. All
// repositories obtained inside Do share the same DB session, so a failing
// callback rolls back every write it made.
type UnitOfWork interface {
	// Do executes fn within a transaction boundary. If fn returns an
	// error, the transaction is rolled back.
	Do(ctx context.Context, fn func(uow UnitOfWork) error) error

	// UserRepository returns the user repository bound to the current
	// session.
	UserRepository() (user.Repository, error)

	// ProfileRepository returns the profile repository bound to the
	// current session.
	ProfileRepository() (profile.Repository, error)

	// LedgerRepository returns the ledger repository bound to the current
	// session.
	LedgerRepository() (ledger.Repository, error)

	// InvestmentRepository returns the investment repository bound to the
	// current session.
	InvestmentRepository() (investment.Repository, error)

	// Ping verifies the storage backend is reachable.
	Ping(ctx context.Context) error
}
