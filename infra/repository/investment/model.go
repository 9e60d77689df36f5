package investment

import (
	"time"

	"github.com/google/uuid"
)

// Investment represents a fixed-income position record in the database.
type Investment struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID         uuid.UUID `gorm:"type:uuid;index;not null"`
	Institution    string    `gorm:"size:100;not null"`
	Product        string    `gorm:"size:100;not null"`
	Value          float64
	RedemptionDate time.Time `gorm:"index"`
	CreatedAt      time.Time
}

// TableName specifies the table name for the Investment model.
func (Investment) TableName() string {
	return "investments"
}

// YieldFigure is the singleton current-yield document, one row per user
// under a fixed key.
type YieldFigure struct {
	UserID    uuid.UUID `gorm:"type:uuid;primaryKey"`
	Key       string    `gorm:"primaryKey;size:32"`
	Value     float64
	UpdatedAt time.Time
}

// TableName specifies the table name for the YieldFigure model.
func (YieldFigure) TableName() string {
	return "app_data"
}
