package tax

import "math"

// irpfBracket is one row of the progressive table: the first bracket whose
// upper limit covers the base wins, and the withholding is a single
// multiply-subtract, not a sum over slices.
type irpfBracket struct {
	upper     float64
	rate      float64
	deduction float64
}

// 2025 IRPF table. The last bracket is the unbounded catch-all.
var irpfTable = []irpfBracket{
	{2428.80, 0.0, 0.0},
	{2826.65, 0.075, 182.16},
	{3751.05, 0.15, 394.16},
	{4664.68, 0.225, 675.49},
	{math.Inf(1), 0.275, 908.73},
}

// IRPF computes the income-tax withholding for a base that already had the
// INSS withholding subtracted. The result is never negative.
func IRPF(base float64) (float64, error) {
	if base < 0 {
		return 0, ErrNegativeBase
	}
	var withheld float64
	for _, bracket := range irpfTable {
		if base <= bracket.upper {
			withheld = base*bracket.rate - bracket.deduction
			break
		}
	}
	return math.Max(0, withheld), nil
}
