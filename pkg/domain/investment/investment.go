// Package investment defines fixed-income investment records and the
// derived portfolio balance figures.
package investment

import (
	"time"

	"github.com/google/uuid"
)

// YieldTaxRate is the flat estimated-tax rate applied to the current yield
// when deriving the net balance.
const YieldTaxRate = 0.185

// Investment is one fixed-income position.
type Investment struct {
	ID             uuid.UUID `json:"id"`
	UserID         uuid.UUID `json:"user_id"`
	Institution    string    `json:"institution"`
	Product        string    `json:"product"`
	Value          float64   `json:"value"`
	RedemptionDate time.Time `json:"redemption_date"`
}

// Portfolio is the derived view over all positions plus the singleton
// current-yield figure.
type Portfolio struct {
	TotalInvested   float64 `json:"total_invested"`
	CurrentYield    float64 `json:"current_yield"`
	GrossBalance    float64 `json:"gross_balance"`
	TaxWithholding  float64 `json:"tax_withholding_estimate"`
	NetBalance      float64 `json:"net_balance"`
	YieldPercentage float64 `json:"yield_percentage"`
}

// BuildPortfolio derives the balance figures from the positions and the
// current yield. The yield percentage is 0 when nothing is invested.
func BuildPortfolio(investments []*Investment, currentYield float64) Portfolio {
	var total float64
	for _, inv := range investments {
		total += inv.Value
	}
	gross := total + currentYield
	taxEstimate := currentYield * YieldTaxRate
	p := Portfolio{
		TotalInvested:  total,
		CurrentYield:   currentYield,
		GrossBalance:   gross,
		TaxWithholding: taxEstimate,
		NetBalance:     gross - taxEstimate,
	}
	if total > 0 {
		p.YieldPercentage = currentYield / total * 100
	}
	return p
}
