package tax

import (
	"fmt"

	"github.com/dfcarvalho/grana/pkg/domain/common"
)

// PensionMode tags how a private-pension contribution is expressed.
type PensionMode string

const (
	// PensionFixed deducts Value as a fixed monthly amount.
	PensionFixed PensionMode = "fixed"
	// PensionPercent deducts Value percent of the gross taxable base.
	PensionPercent PensionMode = "percent"
)

// Pension is a private-pension contribution, either a fixed amount or a
// percentage of the gross base. The zero value deducts nothing.
type Pension struct {
	Mode  PensionMode
	Value float64
}

// Amount resolves the contribution to a concrete deduction for the given
// gross base.
func (p Pension) Amount(grossBase float64) float64 {
	if p.Mode == PensionPercent {
		return grossBase * p.Value / 100
	}
	return p.Value
}

// Input carries the monetary figures of one salary calculation. Salary,
// Quinquenio and Bonus form the taxable base; the rest are deductions.
type Input struct {
	Salary      float64
	Quinquenio  float64
	Bonus       float64
	MealVoucher float64
	HealthPlan  float64
	DentalPlan  float64
	Pension     Pension
}

// Result is the full breakdown of a net-salary calculation.
type Result struct {
	GrossBase       float64 `json:"gross_base"`
	INSS            float64 `json:"inss"`
	IRPFBase        float64 `json:"irpf_base"`
	IRPF            float64 `json:"irpf"`
	Pension         float64 `json:"pension"`
	TotalDeductions float64 `json:"total_deductions"`
	Net             float64 `json:"net"`
}

// Engine orchestrates a net-salary calculation with a selectable INSS model.
type Engine struct {
	inss SocialSecurity
}

// NewEngine builds an Engine around the given INSS model.
func NewEngine(inss SocialSecurity) *Engine {
	return &Engine{inss: inss}
}

// NetSalary computes the net salary for the given inputs: INSS over the
// gross base, IRPF over the base net of INSS, then all deductions.
func (e *Engine) NetSalary(in Input) (*Result, error) {
	if in.Salary < 0 || in.Quinquenio < 0 || in.Bonus < 0 ||
		in.MealVoucher < 0 || in.HealthPlan < 0 || in.DentalPlan < 0 ||
		in.Pension.Value < 0 {
		return nil, fmt.Errorf("%w: monetary inputs must be non-negative", common.ErrValidation)
	}
	grossBase := in.Salary + in.Quinquenio + in.Bonus
	inss, err := e.inss.Withhold(grossBase)
	if err != nil {
		return nil, err
	}
	irpfBase := grossBase - inss
	irpf, err := IRPF(irpfBase)
	if err != nil {
		return nil, err
	}
	pension := in.Pension.Amount(grossBase)
	total := in.MealVoucher + in.HealthPlan + pension + in.DentalPlan + inss + irpf
	return &Result{
		GrossBase:       grossBase,
		INSS:            inss,
		IRPFBase:        irpfBase,
		IRPF:            irpf,
		Pension:         pension,
		TotalDeductions: total,
		Net:             grossBase - total,
	}, nil
}
