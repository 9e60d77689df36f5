// Package webapi assembles the HTTP surface: middleware, health check and
// the per-resource route packages.
package webapi

import (
	"context"
	"time"

	"github.com/dfcarvalho/grana/pkg/config"
	"github.com/dfcarvalho/grana/pkg/repository"
	authsvc "github.com/dfcarvalho/grana/pkg/service/auth"
	investmentsvc "github.com/dfcarvalho/grana/pkg/service/investment"
	ledgersvc "github.com/dfcarvalho/grana/pkg/service/ledger"
	salarysvc "github.com/dfcarvalho/grana/pkg/service/salary"
	usersvc "github.com/dfcarvalho/grana/pkg/service/user"
	authweb "github.com/dfcarvalho/grana/webapi/auth"
	"github.com/dfcarvalho/grana/webapi/common"
	investmentweb "github.com/dfcarvalho/grana/webapi/investment"
	ledgerweb "github.com/dfcarvalho/grana/webapi/ledger"
	salaryweb "github.com/dfcarvalho/grana/webapi/salary"
	userweb "github.com/dfcarvalho/grana/webapi/user"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

// Services bundles everything the routes need.
type Services struct {
	User       *usersvc.Service
	Auth       *authsvc.Service
	Salary     *salarysvc.Service
	Ledger     *ledgersvc.Service
	Investment *investmentsvc.Service
}

// NewApp builds the fiber application with all routes registered.
func NewApp(svcs Services, uow repository.UnitOfWork, cfg *config.App) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName: "grana",
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			status := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				status = e.Code
			}
			return common.ErrorResponseJSON(c, status, "Internal Server Error", err.Error())
		},
	})

	app.Use(limiter.New(limiter.Config{
		Max:        cfg.RateLimit.MaxRequests,
		Expiration: cfg.RateLimit.Window,
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			return common.ErrorResponseJSON(c, fiber.StatusTooManyRequests,
				"Too Many Requests", "Rate limit exceeded")
		},
	}))
	app.Use(recover.New())

	app.Get("/health", Health(uow))

	authweb.Routes(app, svcs.Auth)
	userweb.Routes(app, svcs.User, svcs.Auth, cfg)
	salaryweb.Routes(app, svcs.Salary, svcs.Auth, cfg)
	ledgerweb.Routes(app, svcs.Ledger, svcs.Auth, cfg)
	investmentweb.Routes(app, svcs.Investment, svcs.Auth, cfg)

	return app
}

// Health reports whether the storage backend is reachable.
func Health(uow repository.UnitOfWork) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx, cancel := context.WithTimeout(c.Context(), 2*time.Second)
		defer cancel()
		if err := uow.Ping(ctx); err != nil {
			return common.ErrorResponseJSON(c, fiber.StatusServiceUnavailable,
				"Storage unavailable", err.Error())
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "OK", nil)
	}
}
