package salary

// CalculateInput mirrors the calculator's monetary figures. Amounts are
// numbers, never strings; validation rejects negatives before the engine
// sees them.
type CalculateInput struct {
	Salary       float64 `json:"salary" validate:"gte=0"`
	Quinquenio   float64 `json:"quinquenio" validate:"gte=0"`
	MealVoucher  float64 `json:"meal_voucher" validate:"gte=0"`
	HealthPlan   float64 `json:"health_plan" validate:"gte=0"`
	DentalPlan   float64 `json:"dental_plan" validate:"gte=0"`
	Bonus        float64 `json:"bonus" validate:"gte=0"`
	PensionMode  string  `json:"pension_mode" validate:"omitempty,oneof=fixed percent"`
	PensionValue float64 `json:"pension_value" validate:"gte=0"`
}

// ProfileResponse is the wire shape of a stored snapshot.
type ProfileResponse struct {
	Name         string  `json:"name"`
	Salary       float64 `json:"salary"`
	Quinquenio   float64 `json:"quinquenio"`
	MealVoucher  float64 `json:"meal_voucher"`
	HealthPlan   float64 `json:"health_plan"`
	DentalPlan   float64 `json:"dental_plan"`
	Bonus        float64 `json:"bonus"`
	PensionMode  string  `json:"pension_mode"`
	PensionValue float64 `json:"pension_value"`
	UpdatedAt    string  `json:"updated_at"`
}
