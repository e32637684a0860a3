package model

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEstimateDailyKwh_Scenarios(t *testing.T) {
	tests := []struct {
		name   string
		amount float64
		rate   float64
		days   int
		want   float64
	}{
		{"monthly US bill", 150, 0.15, 30, 33.33},
		{"quarterly bill", 450, 0.15, 90, 33.33},
		{"annual bill", 1825, 0.15, 365, 33.33},
		{"UK monthly bill", 100, 0.28, 30, 11.90},
		{"high nominal rate currency", 800, 8, 30, 3.33},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := EstimateDailyKwh(tt.amount, tt.rate, tt.days)
			require.True(t, ok)
			assert.InDelta(t, tt.want, got, 0.01)
		})
	}
}

func TestEstimateDailyKwh_Unavailable(t *testing.T) {
	tests := []struct {
		name   string
		amount float64
		rate   float64
		days   int
	}{
		{"zero amount", 0, 0.15, 30},
		{"zero rate", 150, 0, 30},
		{"zero days", 150, 0.15, 0},
		{"negative amount", -150, 0.15, 30},
		{"negative rate", 150, -0.15, 30},
		{"negative days", 150, 0.15, -30},
		{"NaN amount", math.NaN(), 0.15, 30},
		{"NaN rate", 150, math.NaN(), 30},
		{"infinite amount", math.Inf(1), 0.15, 30},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := EstimateDailyKwh(tt.amount, tt.rate, tt.days)
			assert.False(t, ok)
			assert.Zero(t, got)
		})
	}
}

func TestEstimateDailyKwh_Monotonic(t *testing.T) {
	base, ok := EstimateDailyKwh(150, 0.15, 30)
	require.True(t, ok)

	for _, amount := range []float64{151, 200, 1000} {
		v, _ := EstimateDailyKwh(amount, 0.15, 30)
		assert.Greater(t, v, base, "amount=%v", amount)
	}
	for _, rate := range []float64{0.16, 0.3, 1} {
		v, _ := EstimateDailyKwh(150, rate, 30)
		assert.Less(t, v, base, "rate=%v", rate)
	}
	for _, days := range []int{31, 60, 365} {
		v, _ := EstimateDailyKwh(150, 0.15, days)
		assert.Less(t, v, base, "days=%v", days)
	}
}

func TestBillInput_DailyKwh(t *testing.T) {
	got, ok := BillInput{BillAmount: 150, RatePerKwh: 0.15, BillingPeriodDays: 30}.DailyKwh()
	require.True(t, ok)
	assert.InDelta(t, 33.333, got, 0.001)

	_, ok = BillInput{}.DailyKwh()
	assert.False(t, ok)
}
