// Package tax implements the 2025 Brazilian payroll withholding rules:
// INSS (social security) and IRPF (progressive income tax). All functions
// are pure; amounts are float64 with full precision, rounding is left to
// the presentation layer.
package tax

import (
	"fmt"

	"github.com/dfcarvalho/grana/pkg/domain/common"
)

// 2025 INSS figures.
const (
	INSSCeiling        = 8157.41 // contribution salary ceiling
	INSSMaxWithholding = 951.62  // fixed withholding at or above the ceiling
	inssFlatRate       = 0.14
)

// ErrNegativeBase is returned when a withholding base is negative.
var ErrNegativeBase = fmt.Errorf("%w: negative calculation base", common.ErrValidation)

// SocialSecurity computes the INSS withholding for a gross taxable base.
type SocialSecurity interface {
	Withhold(base float64) (float64, error)
}

// FlatINSS is the canonical model: a flat 14% capped at the ceiling
// withholding. Bases at or above the ceiling pay the fixed maximum.
type FlatINSS struct{}

func (FlatINSS) Withhold(base float64) (float64, error) {
	if base < 0 {
		return 0, ErrNegativeBase
	}
	if base >= INSSCeiling {
		return INSSMaxWithholding, nil
	}
	withheld := base * inssFlatRate
	if withheld > INSSMaxWithholding {
		withheld = INSSMaxWithholding
	}
	return withheld, nil
}

// inssBand is one marginal contribution band.
type inssBand struct {
	upper float64
	rate  float64
}

// 2025 progressive contribution bands. Income above the ceiling does not
// contribute.
var inssBands = []inssBand{
	{1518.00, 0.075},
	{2793.88, 0.09},
	{4190.83, 0.12},
	{INSSCeiling, 0.14},
}

// ProgressiveINSS is the earlier marginal-band model, kept selectable via
// TAX_INSS_MODEL=progressive.
type ProgressiveINSS struct{}

func (ProgressiveINSS) Withhold(base float64) (float64, error) {
	if base < 0 {
		return 0, ErrNegativeBase
	}
	var withheld, lower float64
	for _, band := range inssBands {
		if base <= lower {
			break
		}
		slice := base
		if slice > band.upper {
			slice = band.upper
		}
		withheld += (slice - lower) * band.rate
		lower = band.upper
	}
	return withheld, nil
}

// NewSocialSecurity selects the INSS model by name. Unknown names fall back
// to the flat model.
func NewSocialSecurity(model string) SocialSecurity {
	if model == "progressive" {
		return ProgressiveINSS{}
	}
	return FlatINSS{}
}
