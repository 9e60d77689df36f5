package ledger

import "strings"

// NewTransaction represents the request body for a new ledger entry.
// Date is optional RFC 3339; an absent date means "now".
type NewTransaction struct {
	Type        string  `json:"type" validate:"required,oneof=entrada saida"`
	Description string  `json:"description" validate:"required,max=200"`
	Category    string  `json:"category" validate:"max=100"`
	Value       float64 `json:"value" validate:"gte=0"`
	Date        string  `json:"date" validate:"omitempty"`
}

// UpdateTransaction represents the editable fields of an entry. The entry
// date is immutable and has no field here.
type UpdateTransaction struct {
	Type        *string  `json:"type,omitempty" validate:"omitempty,oneof=entrada saida"`
	Description *string  `json:"description,omitempty" validate:"omitempty,max=200"`
	Category    *string  `json:"category,omitempty" validate:"omitempty,max=100"`
	Value       *float64 `json:"value,omitempty" validate:"omitempty,gte=0"`
}

// TransactionResponse is the wire shape of one entry, decorated with the
// category icon the UI renders.
type TransactionResponse struct {
	ID          string  `json:"id"`
	Type        string  `json:"type"`
	Description string  `json:"description"`
	Category    string  `json:"category"`
	Value       float64 `json:"value"`
	Date        string  `json:"date"`
	Icon        string  `json:"icon"`
}

// categoryIcons maps category keywords to Font Awesome classes. Order
// matters: the first matching keyword wins when a category contains
// more than one.
var categoryIcons = []struct {
	keyword string
	icon    string
}{
	{"salário", "fas fa-dollar-sign"},
	{"renda", "fas fa-dollar-sign"},
	{"moradia", "fas fa-home"},
	{"aluguel", "fas fa-home"},
	{"contas", "fas fa-receipt"},
	{"alimentação", "fas fa-utensils"},
	{"mercado", "fas fa-shopping-cart"},
	{"transporte", "fas fa-car"},
	{"lazer", "fas fa-glass-cheers"},
	{"saúde", "fas fa-heartbeat"},
	{"investimento", "fas fa-chart-line"},
	{"educação", "fas fa-book-open"},
	{"outros", "fas fa-box"},
}

const defaultIcon = "fas fa-question-circle"

// IconForCategory matches by substring so "contas fixas" still resolves
// to the bill icon.
func IconForCategory(category string) string {
	lower := strings.ToLower(category)
	for _, entry := range categoryIcons {
		if strings.Contains(lower, entry.keyword) {
			return entry.icon
		}
	}
	return defaultIcon
}
