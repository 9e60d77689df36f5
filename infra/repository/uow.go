// Package repository implements the persistence contracts over gorm.
package repository

import (
	"context"

	invrepo "github.com/dfcarvalho/grana/infra/repository/investment"
	ledgerrepo "github.com/dfcarvalho/grana/infra/repository/ledger"
	profilerepo "github.com/dfcarvalho/grana/infra/repository/profile"
	userrepo "github.com/dfcarvalho/grana/infra/repository/user"
	"github.com/dfcarvalho/grana/pkg/repository"
	"github.com/dfcarvalho/grana/pkg/repository/investment"
	"github.com/dfcarvalho/grana/pkg/repository/ledger"
	"github.com/dfcarvalho/grana/pkg/repository/profile"
	"github.com/dfcarvalho/grana/pkg/repository/user"
	"gorm.io/gorm"
)

// UoW provides the transaction boundary and repository access in one
// abstraction. Repositories handed out inside Do are bound to the running
// transaction, so every write in a callback commits or rolls back together.
type UoW struct {
	db *gorm.DB
	tx *gorm.DB
}

// NewUoW creates a UoW for the given *gorm.DB.
func NewUoW(db *gorm.DB) *UoW {
	return &UoW{db: db}
}

// Do runs fn in a transaction boundary, providing a session-bound UoW.
func (u *UoW) Do(ctx context.Context, fn func(uow repository.UnitOfWork) error) error {
	err := u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&UoW{db: u.db, tx: tx})
	})
	return MapGormErrorToDomain(err)
}

// session returns the transaction when inside Do, the root handle otherwise.
func (u *UoW) session() *gorm.DB {
	if u.tx != nil {
		return u.tx
	}
	return u.db
}

func (u *UoW) UserRepository() (user.Repository, error) {
	return userrepo.New(u.session()), nil
}

func (u *UoW) ProfileRepository() (profile.Repository, error) {
	return profilerepo.New(u.session()), nil
}

func (u *UoW) LedgerRepository() (ledger.Repository, error) {
	return ledgerrepo.New(u.session()), nil
}

func (u *UoW) InvestmentRepository() (investment.Repository, error) {
	return invrepo.New(u.session()), nil
}

// Ping verifies the underlying database is reachable.
func (u *UoW) Ping(ctx context.Context) error {
	sqlDB, err := u.db.DB()
	if err != nil {
		return MapGormErrorToDomain(err)
	}
	return MapGormErrorToDomain(sqlDB.PingContext(ctx))
}

var _ repository.UnitOfWork = (*UoW)(nil)
