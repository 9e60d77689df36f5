// Package investment exposes fixed-income positions, the current-yield
// figure and the derived portfolio over HTTP.
package investment

import (
	"time"

	"github.com/dfcarvalho/grana/pkg/config"
	domaininvestment "github.com/dfcarvalho/grana/pkg/domain/investment"
	"github.com/dfcarvalho/grana/pkg/dto"
	"github.com/dfcarvalho/grana/pkg/middleware"
	authsvc "github.com/dfcarvalho/grana/pkg/service/auth"
	investmentsvc "github.com/dfcarvalho/grana/pkg/service/investment"
	"github.com/dfcarvalho/grana/webapi/common"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// Routes registers the investment endpoints. Everything is
// token-protected.
func Routes(app *fiber.App, invSvc *investmentsvc.Service, authSvc *authsvc.Service, cfg *config.App) {
	protected := middleware.JwtProtected(cfg.Auth.Jwt)
	app.Post("/investments", protected, CreateInvestment(invSvc, authSvc))
	app.Get("/investments", protected, ListInvestments(invSvc, authSvc))
	app.Get("/investments/portfolio", protected, Portfolio(invSvc, authSvc))
	app.Get("/investments/yield", protected, GetYield(invSvc, authSvc))
	app.Put("/investments/yield", protected, SetYield(invSvc, authSvc))
	// fixed segments register before :id so "yield" never parses as one
	app.Put("/investments/:id", protected, EditInvestment(invSvc, authSvc))
	app.Delete("/investments/:id", protected, DeleteInvestment(invSvc, authSvc))
}

// CreateInvestment records a new position.
func CreateInvestment(invSvc *investmentsvc.Service, authSvc *authsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, err := common.BindAndValidate[NewInvestment](c)
		if input == nil {
			return err
		}
		userID, err := common.CurrentUserID(c, authSvc)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Unauthorized", err)
		}
		redemption, err := time.Parse(time.RFC3339, input.RedemptionDate)
		if err != nil {
			return common.ErrorResponseJSON(c, fiber.StatusBadRequest,
				"Invalid redemption date", "redemption_date must be RFC 3339")
		}
		inv, err := invSvc.Add(c.Context(), userID,
			input.Institution, input.Product, input.Value, redemption)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Could not record investment", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusCreated, "Investment recorded",
			investmentResponse(inv))
	}
}

// ListInvestments returns the caller's positions, soonest redemption
// first.
func ListInvestments(invSvc *investmentsvc.Service, authSvc *authsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := common.CurrentUserID(c, authSvc)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Unauthorized", err)
		}
		investments, err := invSvc.List(c.Context(), userID)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Could not list investments", err)
		}
		out := make([]InvestmentResponse, 0, len(investments))
		for _, inv := range investments {
			out = append(out, investmentResponse(inv))
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Investments listed", out)
	}
}

// EditInvestment edits a position.
func EditInvestment(invSvc *investmentsvc.Service, authSvc *authsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, err := common.BindAndValidate[UpdateInvestment](c)
		if input == nil {
			return err
		}
		userID, err := common.CurrentUserID(c, authSvc)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Unauthorized", err)
		}
		id, err := uuid.Parse(c.Params("id"))
		if err != nil {
			return common.ErrorResponseJSON(c, fiber.StatusBadRequest,
				"Invalid investment ID", "investment ID must be a valid UUID")
		}
		update := &dto.InvestmentUpdate{
			Institution: input.Institution,
			Product:     input.Product,
			Value:       input.Value,
		}
		if input.RedemptionDate != nil {
			redemption, err := time.Parse(time.RFC3339, *input.RedemptionDate)
			if err != nil {
				return common.ErrorResponseJSON(c, fiber.StatusBadRequest,
					"Invalid redemption date", "redemption_date must be RFC 3339")
			}
			update.RedemptionDate = &redemption
		}
		if err := invSvc.Update(c.Context(), id, userID, update); err != nil {
			return common.ProblemDetailsJSON(c, "Could not update investment", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Investment updated", nil)
	}
}

// DeleteInvestment removes a position.
func DeleteInvestment(invSvc *investmentsvc.Service, authSvc *authsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := common.CurrentUserID(c, authSvc)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Unauthorized", err)
		}
		id, err := uuid.Parse(c.Params("id"))
		if err != nil {
			return common.ErrorResponseJSON(c, fiber.StatusBadRequest,
				"Invalid investment ID", "investment ID must be a valid UUID")
		}
		if err := invSvc.Delete(c.Context(), id, userID); err != nil {
			return common.ProblemDetailsJSON(c, "Could not delete investment", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Investment deleted", nil)
	}
}

// Portfolio returns the derived balance view.
func Portfolio(invSvc *investmentsvc.Service, authSvc *authsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := common.CurrentUserID(c, authSvc)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Unauthorized", err)
		}
		portfolio, err := invSvc.Portfolio(c.Context(), userID)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Could not build portfolio", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Portfolio built", portfolio)
	}
}

// GetYield returns the caller's current-yield figure, 0 when never set.
func GetYield(invSvc *investmentsvc.Service, authSvc *authsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := common.CurrentUserID(c, authSvc)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Unauthorized", err)
		}
		yield, err := invSvc.CurrentYield(c.Context(), userID)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Could not read yield", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Yield read", fiber.Map{
			"value": yield,
		})
	}
}

// SetYield replaces the caller's current-yield figure.
func SetYield(invSvc *investmentsvc.Service, authSvc *authsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, err := common.BindAndValidate[YieldInput](c)
		if input == nil {
			return err
		}
		userID, err := common.CurrentUserID(c, authSvc)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Unauthorized", err)
		}
		if err := invSvc.SetCurrentYield(c.Context(), userID, input.Value); err != nil {
			return common.ProblemDetailsJSON(c, "Could not set yield", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Yield set", fiber.Map{
			"value": input.Value,
		})
	}
}

func investmentResponse(inv *domaininvestment.Investment) InvestmentResponse {
	return InvestmentResponse{
		ID:             inv.ID.String(),
		Institution:    inv.Institution,
		Product:        inv.Product,
		Value:          inv.Value,
		RedemptionDate: inv.RedemptionDate.Format(time.RFC3339),
		Logo:           LogoForInstitution(inv.Institution),
	}
}
