package dto

import (
	"time"

	"github.com/google/uuid"
)

// ProfileSave carries a full profile snapshot for the atomic upsert keyed by
// (user_id, name).
type ProfileSave struct {
	UserID       uuid.UUID `json:"user_id"`
	Name         string    `json:"name"`
	Salary       float64   `json:"salary"`
	Quinquenio   float64   `json:"quinquenio"`
	MealVoucher  float64   `json:"meal_voucher"`
	HealthPlan   float64   `json:"health_plan"`
	DentalPlan   float64   `json:"dental_plan"`
	Bonus        float64   `json:"bonus"`
	PensionMode  string    `json:"pension_mode"`
	PensionValue float64   `json:"pension_value"`
}

// ProfileRead is a read-optimized view of a stored profile.
type ProfileRead struct {
	UserID       uuid.UUID `json:"user_id"`
	Name         string    `json:"name"`
	Salary       float64   `json:"salary"`
	Quinquenio   float64   `json:"quinquenio"`
	MealVoucher  float64   `json:"meal_voucher"`
	HealthPlan   float64   `json:"health_plan"`
	DentalPlan   float64   `json:"dental_plan"`
	Bonus        float64   `json:"bonus"`
	PensionMode  string    `json:"pension_mode"`
	PensionValue float64   `json:"pension_value"`
	UpdatedAt    time.Time `json:"updated_at"`
}
