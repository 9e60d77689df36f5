package tax_test

import (
	"testing"

	"github.com/dfcarvalho/grana/pkg/domain/common"
	"github.com/dfcarvalho/grana/pkg/domain/tax"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlatINSS_Withhold(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		base     float64
		expected float64
	}{
		{"zero base", 0, 0},
		{"below ceiling", 5000.00, 700.00},
		{"just below ceiling", 6797.28, 951.62},
		{"at ceiling", 8157.41, 951.62},
		{"above ceiling", 20000.00, 951.62},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tax.FlatINSS{}.Withhold(tt.base)
			require.NoError(t, err)
			assert.InDelta(t, tt.expected, got, 0.01)
		})
	}
}

func TestFlatINSS_CeilingIsExact(t *testing.T) {
	t.Parallel()
	for _, base := range []float64{8157.41, 9000, 100000} {
		got, err := tax.FlatINSS{}.Withhold(base)
		require.NoError(t, err)
		assert.Equal(t, tax.INSSMaxWithholding, got, "base %.2f", base)
	}
}

func TestFlatINSS_NegativeBase(t *testing.T) {
	t.Parallel()
	_, err := tax.FlatINSS{}.Withhold(-1)
	require.ErrorIs(t, err, tax.ErrNegativeBase)
	require.ErrorIs(t, err, common.ErrValidation)
}

func TestProgressiveINSS_Withhold(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		base     float64
		expected float64
	}{
		{"first band only", 1000.00, 75.00},
		{"band boundary", 1518.00, 113.85},
		{"second band", 2000.00, 157.23},
		{"fourth band", 5000.00, 509.60},
		{"at ceiling", 8157.41, 951.63},
		{"above ceiling pays ceiling contribution", 12000.00, 951.63},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tax.ProgressiveINSS{}.Withhold(tt.base)
			require.NoError(t, err)
			assert.InDelta(t, tt.expected, got, 0.01)
		})
	}
}

// The marginal sum over the full band table is 951.6344, one cent above
// the flat model's statutory fixed figure of 951.62. Every base at or
// beyond the ceiling lands on the same sum.
func TestProgressiveINSS_CeilingIsExact(t *testing.T) {
	t.Parallel()
	ceiling, err := tax.ProgressiveINSS{}.Withhold(tax.INSSCeiling)
	require.NoError(t, err)
	assert.InDelta(t, 951.6344, ceiling, 0.0001)

	for _, base := range []float64{9000, 100000} {
		got, err := tax.ProgressiveINSS{}.Withhold(base)
		require.NoError(t, err)
		assert.Equal(t, ceiling, got, "base %.2f", base)
	}
}

func TestProgressiveINSS_NegativeBase(t *testing.T) {
	t.Parallel()
	_, err := tax.ProgressiveINSS{}.Withhold(-0.01)
	require.ErrorIs(t, err, tax.ErrNegativeBase)
}

func TestNewSocialSecurity(t *testing.T) {
	t.Parallel()
	assert.IsType(t, tax.FlatINSS{}, tax.NewSocialSecurity("flat"))
	assert.IsType(t, tax.FlatINSS{}, tax.NewSocialSecurity(""))
	assert.IsType(t, tax.FlatINSS{}, tax.NewSocialSecurity("bogus"))
	assert.IsType(t, tax.ProgressiveINSS{}, tax.NewSocialSecurity("progressive"))
}
