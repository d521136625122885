// Package config loads named PageConfig/Algorithm presets from a TOML
// file, so common page geometries (4x6, 5x7, A4, Letter) don't need to
// be retyped as CLI flags every run.
package config

import (
	"fmt"

	"github.com/BurntSushi/toml"

	"photolayout/pack"
)

// Preset is one named page geometry plus the algorithm to pack it with.
type Preset struct {
	Name          string  `toml:"name"`
	PageWidth     float64 `toml:"page_width"`
	PageHeight    float64 `toml:"page_height"`
	MarginTop     float64 `toml:"margin_top"`
	MarginRight   float64 `toml:"margin_right"`
	MarginBottom  float64 `toml:"margin_bottom"`
	MarginLeft    float64 `toml:"margin_left"`
	Spacing       float64 `toml:"spacing"`
	MultiPage     bool    `toml:"multi_page"`
	AlgorithmName string  `toml:"algorithm"`
}

type presetFile struct {
	Preset []Preset `toml:"preset"`
}

// PageConfig converts the TOML fields into a pack.PageConfig.
func (p Preset) PageConfig() pack.PageConfig {
	return pack.PageConfig{
		PageWidth:    p.PageWidth,
		PageHeight:   p.PageHeight,
		MarginTop:    p.MarginTop,
		MarginRight:  p.MarginRight,
		MarginBottom: p.MarginBottom,
		MarginLeft:   p.MarginLeft,
		Spacing:      p.Spacing,
		MultiPage:    p.MultiPage,
	}
}

// Algorithm resolves the preset's algorithm name to a pack.Algorithm. An
// empty name defaults to pack.Guillotine; any other unrecognized name is
// an error rather than a silent fallback.
func (p Preset) Algorithm() (pack.Algorithm, error) {
	switch p.AlgorithmName {
	case "", "Guillotine":
		return pack.Guillotine, nil
	case "Shelf":
		return pack.Shelf, nil
	case "MaxRects":
		return pack.MaxRects, nil
	default:
		return 0, fmt.Errorf("%w: %q", pack.ErrUnknownAlgorithm, p.AlgorithmName)
	}
}

// LoadPresets parses a TOML file of `[[preset]]` tables into a map
// keyed by preset name. A malformed file surfaces a parse error rather
// than silently yielding an empty map.
func LoadPresets(path string) (map[string]Preset, error) {
	var parsed presetFile
	if _, err := toml.DecodeFile(path, &parsed); err != nil {
		return nil, fmt.Errorf("parse preset file %s: %w", path, err)
	}

	presets := make(map[string]Preset, len(parsed.Preset))
	for _, p := range parsed.Preset {
		if p.Name == "" {
			return nil, fmt.Errorf("preset file %s: preset missing name", path)
		}
		presets[p.Name] = p
	}

	return presets, nil
}
