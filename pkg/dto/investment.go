package dto

import (
	"time"

	"github.com/google/uuid"
)

// InvestmentCreate represents a new fixed-income position.
type InvestmentCreate struct {
	ID             uuid.UUID `json:"id"`
	UserID         uuid.UUID `json:"user_id"`
	Institution    string    `json:"institution"`
	Product        string    `json:"product"`
	Value          float64   `json:"value"`
	RedemptionDate time.Time `json:"redemption_date"`
}

// InvestmentUpdate carries the editable fields of a position.
type InvestmentUpdate struct {
	Institution    *string    `json:"institution,omitempty"`
	Product        *string    `json:"product,omitempty"`
	Value          *float64   `json:"value,omitempty"`
	RedemptionDate *time.Time `json:"redemption_date,omitempty"`
}

// InvestmentRead is a read-optimized view of a position.
type InvestmentRead struct {
	ID             uuid.UUID `json:"id"`
	UserID         uuid.UUID `json:"user_id"`
	Institution    string    `json:"institution"`
	Product        string    `json:"product"`
	Value          float64   `json:"value"`
	RedemptionDate time.Time `json:"redemption_date"`
}
