package minefield

import (
	"fmt"
	"strings"

	"github.com/mcoot/puzzlebox/internal/model"
)

// Preset names
const (
	PresetDefault = "default"
	PresetEasy    = "easy"
	PresetMedium  = "medium"
	PresetHard    = "hard"
)

// Mine densities are 10%, 20% and 30% of the board
var presets = []model.MinefieldPreset{
	{Name: PresetDefault, Width: 10, Height: 5, MineCount: 5},
	{Name: PresetEasy, Width: 10, Height: 10, MineCount: 10},
	{Name: PresetMedium, Width: 20, Height: 15, MineCount: 60},
	{Name: PresetHard, Width: 30, Height: 20, MineCount: 180},
}

// Presets returns the available board configurations
func Presets() []model.MinefieldPreset {
	out := make([]model.MinefieldPreset, len(presets))
	copy(out, presets)
	return out
}

// PresetByName looks up a preset, case-insensitively
func PresetByName(name string) (model.MinefieldPreset, error) {
	for _, p := range presets {
		if strings.EqualFold(p.Name, name) {
			return p, nil
		}
	}
	return model.MinefieldPreset{}, fmt.Errorf("%w: %q", model.ErrUnknownPreset, name)
}
