package user

import (
	"github.com/dfcarvalho/grana/pkg/config"
	"github.com/dfcarvalho/grana/pkg/middleware"
	authsvc "github.com/dfcarvalho/grana/pkg/service/auth"
	usersvc "github.com/dfcarvalho/grana/pkg/service/user"
	"github.com/dfcarvalho/grana/webapi/common"
	"github.com/gofiber/fiber/v2"
)

// Routes registers the account endpoints. Registration is open; the
// password change requires a token.
func Routes(app *fiber.App, userSvc *usersvc.Service, authSvc *authsvc.Service, cfg *config.App) {
	app.Post("/user", CreateUser(userSvc))
	app.Put("/user/password", middleware.JwtProtected(cfg.Auth.Jwt), ChangePassword(userSvc, authSvc))
}

// CreateUser registers a new account.
func CreateUser(userSvc *usersvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, err := common.BindAndValidate[NewUser](c)
		if input == nil {
			return err
		}
		u, err := userSvc.CreateUser(c.Context(), input.Username, input.Password)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Could not create user", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusCreated, "User created", u)
	}
}

// ChangePassword verifies the current password and replaces it.
func ChangePassword(userSvc *usersvc.Service, authSvc *authsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, err := common.BindAndValidate[ChangePasswordInput](c)
		if input == nil {
			return err
		}
		userID, err := common.CurrentUserID(c, authSvc)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Unauthorized", err)
		}
		if err := userSvc.UpdatePassword(
			c.Context(), userID, input.CurrentPassword, input.NewPassword,
		); err != nil {
			return common.ProblemDetailsJSON(c, "Could not change password", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Password changed", nil)
	}
}
