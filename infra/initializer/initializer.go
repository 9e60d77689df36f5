// Package initializer wires configuration, storage and services into the
// dependency bundle the entrypoints consume.
package initializer

import (
	"fmt"
	"log/slog"

	"github.com/dfcarvalho/grana/infra"
	infrarepo "github.com/dfcarvalho/grana/infra/repository"
	"github.com/dfcarvalho/grana/pkg/config"
	"github.com/dfcarvalho/grana/pkg/domain/tax"
	"github.com/dfcarvalho/grana/pkg/repository"
	authsvc "github.com/dfcarvalho/grana/pkg/service/auth"
	investmentsvc "github.com/dfcarvalho/grana/pkg/service/investment"
	ledgersvc "github.com/dfcarvalho/grana/pkg/service/ledger"
	salarysvc "github.com/dfcarvalho/grana/pkg/service/salary"
	usersvc "github.com/dfcarvalho/grana/pkg/service/user"
)

// Deps bundles every dependency the entrypoints need.
type Deps struct {
	Config *config.App
	Logger *slog.Logger
	UoW    repository.UnitOfWork

	UserService       *usersvc.Service
	AuthService       *authsvc.Service
	SalaryService     *salarysvc.Service
	LedgerService     *ledgersvc.Service
	InvestmentService *investmentsvc.Service
}

// InitializeDependencies connects the database, runs migrations and
// constructs all services.
func InitializeDependencies(cfg *config.App) (*Deps, error) {
	logger := SetupLogger(cfg.Log)

	db, err := infra.NewDBConnection(cfg.DB, cfg.Env)
	if err != nil {
		return nil, fmt.Errorf("connecting database: %w", err)
	}
	if err := infra.AutoMigrate(db); err != nil {
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	uow := infrarepo.NewUoW(db)
	engine := tax.NewEngine(tax.NewSocialSecurity(cfg.Tax.INSSModel))

	return &Deps{
		Config:            cfg,
		Logger:            logger,
		UoW:               uow,
		UserService:       usersvc.New(uow, logger),
		AuthService:       authsvc.NewWithJWT(uow, cfg.Auth.Jwt, logger),
		SalaryService:     salarysvc.New(uow, engine, logger),
		LedgerService:     ledgersvc.New(uow, logger),
		InvestmentService: investmentsvc.New(uow, logger),
	}, nil
}
