package dto

import (
	"time"

	"github.com/google/uuid"
)

// TransactionCreate represents a new ledger entry.
type TransactionCreate struct {
	ID          uuid.UUID `json:"id"`
	UserID      uuid.UUID `json:"user_id"`
	Type        string    `json:"type"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	Value       float64   `json:"value"`
	Date        time.Time `json:"date"`
}

// TransactionUpdate carries the editable fields of a ledger entry. The
// entry date is immutable after creation and deliberately absent here.
type TransactionUpdate struct {
	Type        *string  `json:"type,omitempty"`
	Description *string  `json:"description,omitempty"`
	Category    *string  `json:"category,omitempty"`
	Value       *float64 `json:"value,omitempty"`
}

// TransactionRead is a read-optimized view of a ledger entry.
type TransactionRead struct {
	ID          uuid.UUID `json:"id"`
	UserID      uuid.UUID `json:"user_id"`
	Type        string    `json:"type"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	Value       float64   `json:"value"`
	Date        time.Time `json:"date"`
	CreatedAt   time.Time `json:"created_at"`
}
