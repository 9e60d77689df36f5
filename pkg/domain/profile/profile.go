// Package profile defines named snapshots of salary-calculator inputs.
// A profile belongs to exactly one user and (user_id, name) is unique;
// saving an existing name overwrites it.
package profile

import (
	"errors"
	"time"

	"github.com/dfcarvalho/grana/pkg/domain/tax"
	"github.com/google/uuid"
)

// ErrNameRequired is returned when a save is attempted without a name.
var ErrNameRequired = errors.New("profile name is required")

// Profile holds the seven monetary inputs of the salary calculator.
type Profile struct {
	UserID      uuid.UUID   `json:"user_id"`
	Name        string      `json:"name"`
	Salary      float64     `json:"salary"`
	Quinquenio  float64     `json:"quinquenio"`
	MealVoucher float64     `json:"meal_voucher"`
	HealthPlan  float64     `json:"health_plan"`
	DentalPlan  float64     `json:"dental_plan"`
	Bonus       float64     `json:"bonus"`
	Pension     tax.Pension `json:"pension"`
	UpdatedAt   time.Time   `json:"updated_at"`
}

// TaxInput maps the profile's figures to a tax-engine input.
func (p *Profile) TaxInput() tax.Input {
	return tax.Input{
		Salary:      p.Salary,
		Quinquenio:  p.Quinquenio,
		Bonus:       p.Bonus,
		MealVoucher: p.MealVoucher,
		HealthPlan:  p.HealthPlan,
		DentalPlan:  p.DentalPlan,
		Pension:     p.Pension,
	}
}
