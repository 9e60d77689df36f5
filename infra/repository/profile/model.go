package profile

import (
	"time"

	"github.com/google/uuid"
)

// Profile represents a salary-profile record. The composite primary key
// (user_id, name) carries the per-user name uniqueness invariant; saves go
// through a single conflict-clause write, never read-then-write.
type Profile struct {
	UserID       uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name         string    `gorm:"primaryKey;size:100"`
	Salary       float64
	Quinquenio   float64
	MealVoucher  float64
	HealthPlan   float64
	DentalPlan   float64
	Bonus        float64
	PensionMode  string `gorm:"size:10;default:'fixed'"`
	PensionValue float64
	UpdatedAt    time.Time `gorm:"index"`
}

// TableName specifies the table name for the Profile model.
func (Profile) TableName() string {
	return "profiles"
}
