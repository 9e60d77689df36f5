// Package salary exposes the net-salary calculator and profile snapshots
// over HTTP.
package salary

import (
	"time"

	"github.com/dfcarvalho/grana/pkg/config"
	"github.com/dfcarvalho/grana/pkg/domain/profile"
	"github.com/dfcarvalho/grana/pkg/domain/tax"
	"github.com/dfcarvalho/grana/pkg/middleware"
	authsvc "github.com/dfcarvalho/grana/pkg/service/auth"
	salarysvc "github.com/dfcarvalho/grana/pkg/service/salary"
	"github.com/dfcarvalho/grana/webapi/common"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// Routes registers the salary endpoints. Everything is token-protected.
func Routes(app *fiber.App, salarySvc *salarysvc.Service, authSvc *authsvc.Service, cfg *config.App) {
	protected := middleware.JwtProtected(cfg.Auth.Jwt)
	app.Post("/salary/calculate", protected, Calculate(salarySvc))
	app.Get("/salary/profiles", protected, ListProfiles(salarySvc, authSvc))
	app.Get("/salary/profile", protected, LoadMostRecentProfile(salarySvc, authSvc))
	app.Get("/salary/profiles/:name", protected, LoadProfile(salarySvc, authSvc))
	app.Put("/salary/profiles/:name", protected, SaveProfile(salarySvc, authSvc))
	app.Delete("/salary/profiles/:name", protected, DeleteProfile(salarySvc, authSvc))
}

// Calculate runs the tax engine over the posted figures without touching
// storage.
func Calculate(salarySvc *salarysvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, err := common.BindAndValidate[CalculateInput](c)
		if input == nil {
			return err
		}
		result, err := salarySvc.Calculate(taxInput(input))
		if err != nil {
			return common.ProblemDetailsJSON(c, "Could not calculate salary", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Salary calculated", result)
	}
}

// SaveProfile stores the posted figures under the name in the path.
// Saving an existing name overwrites it.
func SaveProfile(salarySvc *salarysvc.Service, authSvc *authsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, err := common.BindAndValidate[CalculateInput](c)
		if input == nil {
			return err
		}
		userID, err := common.CurrentUserID(c, authSvc)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Unauthorized", err)
		}
		p := profileFromInput(userID, c.Params("name"), input)
		if err := salarySvc.SaveProfile(c.Context(), p); err != nil {
			return common.ProblemDetailsJSON(c, "Could not save profile", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Profile saved", profileResponse(p))
	}
}

// ListProfiles returns the caller's profile names sorted alphabetically.
func ListProfiles(salarySvc *salarysvc.Service, authSvc *authsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := common.CurrentUserID(c, authSvc)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Unauthorized", err)
		}
		names, err := salarySvc.ListProfiles(c.Context(), userID)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Could not list profiles", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Profiles listed", fiber.Map{
			"names": names,
		})
	}
}

// LoadProfile retrieves one snapshot by name.
func LoadProfile(salarySvc *salarysvc.Service, authSvc *authsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := common.CurrentUserID(c, authSvc)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Unauthorized", err)
		}
		p, err := salarySvc.LoadProfile(c.Context(), userID, c.Params("name"))
		if err != nil {
			return common.ProblemDetailsJSON(c, "Could not load profile", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Profile loaded", profileResponse(p))
	}
}

// LoadMostRecentProfile retrieves the snapshot saved last.
func LoadMostRecentProfile(salarySvc *salarysvc.Service, authSvc *authsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := common.CurrentUserID(c, authSvc)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Unauthorized", err)
		}
		p, err := salarySvc.LoadProfile(c.Context(), userID, "")
		if err != nil {
			return common.ProblemDetailsJSON(c, "Could not load profile", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Profile loaded", profileResponse(p))
	}
}

// DeleteProfile removes a snapshot. Deleting a missing one is a 404.
func DeleteProfile(salarySvc *salarysvc.Service, authSvc *authsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := common.CurrentUserID(c, authSvc)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Unauthorized", err)
		}
		deleted, err := salarySvc.DeleteProfile(c.Context(), userID, c.Params("name"))
		if err != nil {
			return common.ProblemDetailsJSON(c, "Could not delete profile", err)
		}
		if !deleted {
			return common.ErrorResponseJSON(c, fiber.StatusNotFound, "Profile not found", nil)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Profile deleted", nil)
	}
}

func taxInput(in *CalculateInput) tax.Input {
	return tax.Input{
		Salary:      in.Salary,
		Quinquenio:  in.Quinquenio,
		Bonus:       in.Bonus,
		MealVoucher: in.MealVoucher,
		HealthPlan:  in.HealthPlan,
		DentalPlan:  in.DentalPlan,
		Pension: tax.Pension{
			Mode:  tax.PensionMode(in.PensionMode),
			Value: in.PensionValue,
		},
	}
}

func profileFromInput(userID uuid.UUID, name string, in *CalculateInput) *profile.Profile {
	return &profile.Profile{
		UserID:      userID,
		Name:        name,
		Salary:      in.Salary,
		Quinquenio:  in.Quinquenio,
		MealVoucher: in.MealVoucher,
		HealthPlan:  in.HealthPlan,
		DentalPlan:  in.DentalPlan,
		Bonus:       in.Bonus,
		Pension: tax.Pension{
			Mode:  tax.PensionMode(in.PensionMode),
			Value: in.PensionValue,
		},
	}
}

func profileResponse(p *profile.Profile) ProfileResponse {
	return ProfileResponse{
		Name:         p.Name,
		Salary:       p.Salary,
		Quinquenio:   p.Quinquenio,
		MealVoucher:  p.MealVoucher,
		HealthPlan:   p.HealthPlan,
		DentalPlan:   p.DentalPlan,
		Bonus:        p.Bonus,
		PensionMode:  string(p.Pension.Mode),
		PensionValue: p.Pension.Value,
		UpdatedAt:    p.UpdatedAt.Format(time.RFC3339),
	}
}
