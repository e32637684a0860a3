package sizing

import "github.com/eltechldn-adm/BatteryBluePrint-sub001/internal/model"

// Variation is a named set of overrides layered on a base request.
type Variation struct {
	Name      string
	Overrides model.AssumptionOverrides
	Region    string // empty keeps the base region
}

// Comparison is the outcome of one variation. Err is set instead of Outcome
// when the variation could not be sized.
type Comparison struct {
	Name    string
	Outcome *Outcome
	Err     error
}

// Compare sizes every variation against base. Results keep the input order and
// failed variations are reported, not dropped.
func (e *Engine) Compare(base Request, variations []Variation) []Comparison {
	out := make([]Comparison, 0, len(variations))
	for _, v := range variations {
		req := base
		req.Overrides = base.Overrides.Merge(v.Overrides)
		if v.Region != "" {
			req.Region = v.Region
		}
		oc, err := e.Calculate(req)
		out = append(out, Comparison{Name: v.Name, Outcome: oc, Err: err})
	}
	return out
}
