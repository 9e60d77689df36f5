// Package ledger exposes the per-user transaction log over HTTP.
package ledger

import (
	"time"

	"github.com/dfcarvalho/grana/pkg/config"
	domainledger "github.com/dfcarvalho/grana/pkg/domain/ledger"
	"github.com/dfcarvalho/grana/pkg/dto"
	"github.com/dfcarvalho/grana/pkg/middleware"
	authsvc "github.com/dfcarvalho/grana/pkg/service/auth"
	ledgersvc "github.com/dfcarvalho/grana/pkg/service/ledger"
	"github.com/dfcarvalho/grana/webapi/common"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// Routes registers the ledger endpoints. Everything is token-protected.
func Routes(app *fiber.App, ledgerSvc *ledgersvc.Service, authSvc *authsvc.Service, cfg *config.App) {
	protected := middleware.JwtProtected(cfg.Auth.Jwt)
	app.Post("/ledger/transactions", protected, CreateTransaction(ledgerSvc, authSvc))
	app.Get("/ledger/transactions", protected, ListTransactions(ledgerSvc, authSvc))
	app.Put("/ledger/transactions/:id", protected, EditTransaction(ledgerSvc, authSvc))
	app.Delete("/ledger/transactions/:id", protected, DeleteTransaction(ledgerSvc, authSvc))
	app.Get("/ledger/summary", protected, Summary(ledgerSvc, authSvc))
}

// CreateTransaction records a new entry.
func CreateTransaction(ledgerSvc *ledgersvc.Service, authSvc *authsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, err := common.BindAndValidate[NewTransaction](c)
		if input == nil {
			return err
		}
		userID, err := common.CurrentUserID(c, authSvc)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Unauthorized", err)
		}
		var date time.Time
		if input.Date != "" {
			date, err = time.Parse(time.RFC3339, input.Date)
			if err != nil {
				return common.ErrorResponseJSON(c, fiber.StatusBadRequest,
					"Invalid date", "date must be RFC 3339")
			}
		}
		entry, err := ledgerSvc.Add(c.Context(), userID,
			input.Type, input.Description, input.Category, input.Value, date)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Could not record transaction", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusCreated, "Transaction recorded",
			transactionResponse(entry))
	}
}

// ListTransactions returns the caller's entries newest first.
func ListTransactions(ledgerSvc *ledgersvc.Service, authSvc *authsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := common.CurrentUserID(c, authSvc)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Unauthorized", err)
		}
		entries, err := ledgerSvc.List(c.Context(), userID)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Could not list transactions", err)
		}
		out := make([]TransactionResponse, 0, len(entries))
		for _, e := range entries {
			out = append(out, transactionResponse(e))
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Transactions listed", out)
	}
}

// EditTransaction edits an entry's mutable fields; the date never
// changes.
func EditTransaction(ledgerSvc *ledgersvc.Service, authSvc *authsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, err := common.BindAndValidate[UpdateTransaction](c)
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
				"Invalid transaction ID", "transaction ID must be a valid UUID")
		}
		if err := ledgerSvc.Update(c.Context(), id, userID, &dto.TransactionUpdate{
			Type:        input.Type,
			Description: input.Description,
			Category:    input.Category,
			Value:       input.Value,
		}); err != nil {
			return common.ProblemDetailsJSON(c, "Could not update transaction", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Transaction updated", nil)
	}
}

// DeleteTransaction removes an entry.
func DeleteTransaction(ledgerSvc *ledgersvc.Service, authSvc *authsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := common.CurrentUserID(c, authSvc)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Unauthorized", err)
		}
		id, err := uuid.Parse(c.Params("id"))
		if err != nil {
			return common.ErrorResponseJSON(c, fiber.StatusBadRequest,
				"Invalid transaction ID", "transaction ID must be a valid UUID")
		}
		if err := ledgerSvc.Delete(c.Context(), id, userID); err != nil {
			return common.ProblemDetailsJSON(c, "Could not delete transaction", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Transaction deleted", nil)
	}
}

// Summary returns the running totals over all of the caller's entries.
func Summary(ledgerSvc *ledgersvc.Service, authSvc *authsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := common.CurrentUserID(c, authSvc)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Unauthorized", err)
		}
		summary, err := ledgerSvc.Summary(c.Context(), userID)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Could not compute summary", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Summary computed", summary)
	}
}

func transactionResponse(e *domainledger.Transaction) TransactionResponse {
	return TransactionResponse{
		ID:          e.ID.String(),
		Type:        string(e.Type),
		Description: e.Description,
		Category:    e.Category,
		Value:       e.Value,
		Date:        e.Date.Format(time.RFC3339),
		Icon:        IconForCategory(e.Category),
	}
}
