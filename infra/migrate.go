package infra

import (
	invrepo "github.com/dfcarvalho/grana/infra/repository/investment"
	ledgerrepo "github.com/dfcarvalho/grana/infra/repository/ledger"
	profilerepo "github.com/dfcarvalho/grana/infra/repository/profile"
	userrepo "github.com/dfcarvalho/grana/infra/repository/user"
	"gorm.io/gorm"
)

// AutoMigrate creates or updates the schema for all stores.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&userrepo.User{},
		&profilerepo.Profile{},
		&ledgerrepo.Transaction{},
		&invrepo.Investment{},
		&invrepo.YieldFigure{},
	)
}
