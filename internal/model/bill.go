package model

// BillInput is one utility bill as the user reads it off the statement.
// BillAmount and RatePerKwh must be in the same currency; no conversion is done.
type BillInput struct {
	BillAmount        float64 `json:"amount"`
	RatePerKwh        float64 `json:"rate_per_kwh"`
	BillingPeriodDays int     `json:"billing_period_days"`
}

// DailyKwh is the method form of EstimateDailyKwh.
func (b BillInput) DailyKwh() (float64, bool) {
	return EstimateDailyKwh(b.BillAmount, b.RatePerKwh, b.BillingPeriodDays)
}

// EstimateDailyKwh converts a bill into average kWh/day:
//
//	(billAmount / ratePerKwh) / billingPeriodDays
//
// Any input that is not strictly positive and finite yields (0, false).
// The value is not rounded.
func EstimateDailyKwh(billAmount, ratePerKwh float64, billingPeriodDays int) (float64, bool) {
	if !positive(billAmount) || !positive(ratePerKwh) || billingPeriodDays <= 0 {
		return 0, false
	}
	return (billAmount / ratePerKwh) / float64(billingPeriodDays), true
}

func positive(x float64) bool {
	return isFinite(x) && x > 0
}
