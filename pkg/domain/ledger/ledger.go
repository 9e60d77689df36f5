// Package ledger defines the credit/debit transaction log and its derived
// totals.
package ledger

import (
	"fmt"
	"time"

	"github.com/dfcarvalho/grana/pkg/domain/common"
	"github.com/google/uuid"
)

// Type partitions ledger entries into credits and debits.
type Type string

const (
	TypeCredit Type = "entrada"
	TypeDebit  Type = "saida"
)

// ParseType validates a wire value for a ledger entry type.
func ParseType(s string) (Type, error) {
	switch Type(s) {
	case TypeCredit, TypeDebit:
		return Type(s), nil
	default:
		return "", fmt.Errorf("%w: unknown ledger entry type %q", common.ErrValidation, s)
	}
}

// Transaction is one ledger entry. Date is fixed at creation; type,
// description, category and value may be edited later.
type Transaction struct {
	ID          uuid.UUID `json:"id"`
	UserID      uuid.UUID `json:"user_id"`
	Type        Type      `json:"type"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	Value       float64   `json:"value"`
	Date        time.Time `json:"date"`
	CreatedAt   time.Time `json:"created_at"`
}

// Summary is the derived view over a transaction list. It is computed by
// callers and never stored.
type Summary struct {
	TotalCredits float64 `json:"total_credits"`
	TotalDebits  float64 `json:"total_debits"`
	Balance      float64 `json:"balance"`
	CreditCount  int     `json:"credit_count"`
	DebitCount   int     `json:"debit_count"`
}

// Summarize partitions transactions by type and computes the running totals.
func Summarize(transactions []*Transaction) Summary {
	var s Summary
	for _, t := range transactions {
		switch t.Type {
		case TypeCredit:
			s.TotalCredits += t.Value
			s.CreditCount++
		case TypeDebit:
			s.TotalDebits += t.Value
			s.DebitCount++
		}
	}
	s.Balance = s.TotalCredits - s.TotalDebits
	return s
}
