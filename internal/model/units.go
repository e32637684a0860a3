package model

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// ToKwh converts an energy value in unit to kWh. An empty unit means kWh.
func ToKwh(value float64, unit string) (float64, error) {
	switch strings.ToLower(strings.TrimSpace(unit)) {
	case "", "kwh":
		return value, nil
	case "wh":
		return value / 1000, nil
	case "mwh":
		return value * 1000, nil
	default:
		return 0, fmt.Errorf("unsupported energy unit %q (want Wh, kWh or MWh)", unit)
	}
}

// Round rounds x half away from zero to the given number of decimal places.
// Used for display only; calculations keep full precision.
func Round(x float64, places int32) float64 {
	if !isFinite(x) {
		return x
	}
	return decimal.NewFromFloat(x).Round(places).InexactFloat64()
}
