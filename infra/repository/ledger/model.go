package ledger

import (
	"time"

	"github.com/google/uuid"
)

// Transaction represents a ledger entry record in the database.
type Transaction struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID      uuid.UUID `gorm:"type:uuid;index;not null"`
	Type        string    `gorm:"size:10;not null"`
	Description string    `gorm:"size:255"`
	Category    string    `gorm:"size:100"`
	Value       float64
	Date        time.Time `gorm:"index"`
	CreatedAt   time.Time
}

// TableName specifies the table name for the Transaction model.
func (Transaction) TableName() string {
	return "transactions"
}
