// Package presets maps region codes to default sizing assumptions.
package presets

import (
	"sort"

	"github.com/eltechldn-adm/BatteryBluePrint-sub001/internal/model"
)

// GlobalDefaultCode is reported for lookups that fall back to GlobalDefault.
const GlobalDefaultCode = "GLOBAL"

// GlobalDefault is returned for unknown or empty region codes.
var GlobalDefault = model.SizingAssumptions{
	DepthOfDischarge:    0.90,
	InverterEfficiency:  0.95,
	ReserveBufferPct:    0.20,
	WinterBufferEnabled: false,
	WinterBufferPct:     0.20,
	AutonomyDays:        1,
}

// Resolver is an immutable region lookup. Safe for concurrent use.
type Resolver struct {
	byCode   map[string]model.LocationPreset
	fallback model.LocationPreset
}

// NewResolver indexes c by code and alias. c must already be validated.
func NewResolver(c *Catalog) *Resolver {
	r := &Resolver{
		byCode: map[string]model.LocationPreset{},
		fallback: model.LocationPreset{
			Code:        GlobalDefaultCode,
			Name:        "Global default",
			Assumptions: GlobalDefault,
		},
	}
	if c == nil {
		return r
	}
	for _, p := range c.Presets {
		p.Code = NormalizeCode(p.Code)
		r.byCode[p.Code] = p
	}
	// Aliases never shadow a real code.
	for _, p := range c.Presets {
		code := NormalizeCode(p.Code)
		for _, a := range p.Aliases {
			a = NormalizeCode(a)
			if _, taken := r.byCode[a]; !taken && a != "" {
				r.byCode[a] = r.byCode[code]
			}
		}
	}
	return r
}

// Resolve never fails: unknown codes yield GlobalDefault.
func (r *Resolver) Resolve(code string) model.SizingAssumptions {
	p, _ := r.Lookup(code)
	return p.Assumptions
}

// Lookup returns the preset for code and whether a regional preset matched.
// When it did not, the global default preset is returned.
func (r *Resolver) Lookup(code string) (model.LocationPreset, bool) {
	if p, ok := r.byCode[NormalizeCode(code)]; ok {
		return p, true
	}
	return r.fallback, false
}

// List returns every regional preset once, sorted by code.
func (r *Resolver) List() []model.LocationPreset {
	seen := map[string]bool{}
	out := make([]model.LocationPreset, 0, len(r.byCode))
	for _, p := range r.byCode {
		if seen[p.Code] {
			continue
		}
		seen[p.Code] = true
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Code < out[j].Code })
	return out
}

// Default returns the resolver backed by the compiled-in catalog.
func Default() *Resolver {
	c, err := Builtin()
	if err != nil {
		// presets.yaml ships with the binary; a parse failure is a build defect.
		panic(err)
	}
	return NewResolver(c)
}

// Load builds a resolver from the builtin catalog overlaid with the file at
// path. An empty path means builtin only.
func Load(path string) (*Resolver, error) {
	base, err := Builtin()
	if err != nil {
		return nil, err
	}
	if path == "" {
		return NewResolver(base), nil
	}
	override, err := LoadCatalogFile(path)
	if err != nil {
		return nil, err
	}
	return NewResolver(Overlay(base, override)), nil
}
