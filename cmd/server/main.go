package main

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/dfcarvalho/grana/infra/initializer"
	"github.com/dfcarvalho/grana/pkg/config"
	"github.com/dfcarvalho/grana/webapi"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	cfg, err := config.Load(".env")
	if err != nil {
		return fmt.Errorf("loading configuration: %w", err)
	}

	deps, err := initializer.InitializeDependencies(cfg)
	if err != nil {
		return fmt.Errorf("initializing dependencies: %w", err)
	}

	app := webapi.NewApp(webapi.Services{
		User:       deps.UserService,
		Auth:       deps.AuthService,
		Salary:     deps.SalaryService,
		Ledger:     deps.LedgerService,
		Investment: deps.InvestmentService,
	}, deps.UoW, cfg)

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	deps.Logger.Info("starting server",
		"env", cfg.Env,
		"address", addr,
		"inss_model", cfg.Tax.INSSModel,
	)

	return app.Listen(addr)
}
