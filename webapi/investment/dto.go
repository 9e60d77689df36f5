package investment

import "strings"

// NewInvestment represents the request body for a new position. The
// redemption date is RFC 3339.
type NewInvestment struct {
	Institution    string  `json:"institution" validate:"required,max=100"`
	Product        string  `json:"product" validate:"required,max=100"`
	Value          float64 `json:"value" validate:"gte=0"`
	RedemptionDate string  `json:"redemption_date" validate:"required"`
}

// UpdateInvestment represents the editable fields of a position.
type UpdateInvestment struct {
	Institution    *string  `json:"institution,omitempty" validate:"omitempty,max=100"`
	Product        *string  `json:"product,omitempty" validate:"omitempty,max=100"`
	Value          *float64 `json:"value,omitempty" validate:"omitempty,gte=0"`
	RedemptionDate *string  `json:"redemption_date,omitempty"`
}

// YieldInput represents the request body replacing the current yield.
type YieldInput struct {
	Value float64 `json:"value"`
}

// InvestmentResponse is the wire shape of one position, decorated with the
// institution logo the UI renders.
type InvestmentResponse struct {
	ID             string  `json:"id"`
	Institution    string  `json:"institution"`
	Product        string  `json:"product"`
	Value          float64 `json:"value"`
	RedemptionDate string  `json:"redemption_date"`
	Logo           string  `json:"logo,omitempty"`
}

// institutionLogos maps normalized institution names to logo assets.
var institutionLogos = map[string]string{
	"nubank":           "nubank.png",
	"nuinvest":         "nubank.png",
	"xp":               "xp.png",
	"xp investimentos": "xp.png",
	"banco inter":      "inter.png",
	"inter":            "inter.png",
	"btg pactual":      "btg.png",
	"btg":              "btg.png",
	"bradesco":         "bradesco.png",
	"itau":             "itau.png",
}

// LogoForInstitution resolves an institution to its logo asset, "" when
// unknown.
func LogoForInstitution(institution string) string {
	return institutionLogos[strings.ToLower(strings.TrimSpace(institution))]
}
