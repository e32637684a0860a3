package presets

import (
	"bytes"
	_ "embed"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/eltechldn-adm/BatteryBluePrint-sub001/internal/model"

	"gopkg.in/yaml.v3"
)

//go:embed presets.yaml
var builtinYAML []byte

// Catalog is the on-disk shape of a preset file (YAML).
type Catalog struct {
	Presets []model.LocationPreset `yaml:"presets"`
}

// Builtin parses the presets compiled into the binary.
func Builtin() (*Catalog, error) {
	return LoadCatalog(bytes.NewReader(builtinYAML))
}

// LoadCatalog decodes and validates a catalog. Every preset needs a code and
// assumptions inside their declared domains.
func LoadCatalog(r io.Reader) (*Catalog, error) {
	var c Catalog
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&c); err != nil && err != io.EOF {
		return nil, fmt.Errorf("failed to parse preset catalog: %w", err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

// LoadCatalogFile reads a catalog from path.
func LoadCatalogFile(path string) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read preset file: %w", err)
	}
	defer f.Close()
	return LoadCatalog(f)
}

// SaveCatalogFile writes c as YAML, creating parent directories.
func SaveCatalogFile(c *Catalog, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}
	raw, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal presets: %w", err)
	}
	if err := os.WriteFile(path, raw, 0o644); err != nil {
		return fmt.Errorf("failed to write preset file: %w", err)
	}
	return nil
}

func (c *Catalog) Validate() error {
	seen := map[string]bool{}
	for i, p := range c.Presets {
		code := NormalizeCode(p.Code)
		if code == "" {
			return fmt.Errorf("preset %d: code is required", i)
		}
		if seen[code] {
			return fmt.Errorf("preset %s: duplicate code", code)
		}
		seen[code] = true
		if err := p.Assumptions.Validate(); err != nil {
			return fmt.Errorf("preset %s: %w", code, err)
		}
	}
	return nil
}

// Overlay returns base with every preset in override replacing the preset of
// the same code; new codes are appended.
func Overlay(base, override *Catalog) *Catalog {
	out := &Catalog{}
	idx := map[string]int{}
	if base != nil {
		for _, p := range base.Presets {
			idx[NormalizeCode(p.Code)] = len(out.Presets)
			out.Presets = append(out.Presets, p)
		}
	}
	if override != nil {
		for _, p := range override.Presets {
			code := NormalizeCode(p.Code)
			if i, ok := idx[code]; ok {
				out.Presets[i] = p
				continue
			}
			idx[code] = len(out.Presets)
			out.Presets = append(out.Presets, p)
		}
	}
	return out
}

// NormalizeCode upper-cases and trims a region code.
func NormalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}
