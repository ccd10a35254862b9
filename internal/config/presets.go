package config

import (
	"fmt"
	"sort"

	"github.com/san-kum/transester/internal/kinetics"
)

// Presets are named reactor setups. Rate constants span slow room-temperature
// runs to hot, well-catalysed batches.
var Presets = map[string]kinetics.Params{
	"default": kinetics.DefaultParams(),
	"slow": {
		InitialOilVolume: 1000, RateConstant: 0.03, TotalDuration: 72, TimeStep: 1,
	},
	"fast": {
		InitialOilVolume: 1000, RateConstant: 0.5, TotalDuration: 12, TimeStep: 0.25,
	},
	"bench": {
		InitialOilVolume: 250, RateConstant: 0.2, TotalDuration: 24, TimeStep: 0.5,
	},
	"pilot": {
		InitialOilVolume: 20000, RateConstant: 0.08, TotalDuration: 48, TimeStep: 1,
	},
}

// GetPreset returns a copy of the named preset.
func GetPreset(name string) (kinetics.Params, error) {
	p, ok := Presets[name]
	if !ok {
		return kinetics.Params{}, fmt.Errorf("%w: %s (available: %v)", ErrUnknownPreset, name, ListPresets())
	}
	return p, nil
}

// ListPresets returns preset names in sorted order.
func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
