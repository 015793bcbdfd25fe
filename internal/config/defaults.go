package config

import (
	_ "embed"
	"fmt"
)

//go:embed defaults/boggle.yaml
var defaultClassicYAML []byte

//go:embed defaults/bigboggle.yaml
var defaultBigYAML []byte

// embeddedYAML returns the embedded default file for a variant.
func embeddedYAML(variant string) ([]byte, error) {
	switch variant {
	case VariantClassic:
		return defaultClassicYAML, nil
	case VariantBig:
		return defaultBigYAML, nil
	default:
		return nil, fmt.Errorf("%w %q", ErrUnknownVariant, variant)
	}
}

// Default returns the hardcoded configuration for a variant.
// Dice are left empty so the engine uses its built-in set.
func Default(variant string) (BoggleConfig, error) {
	switch variant {
	case VariantClassic:
		return BoggleConfig{
			Title:  "Boggle",
			Board:  BoardConfig{Rows: 4, Cols: 4},
			Layout: defaultLayout(),
			Rules:  RulesConfig{MinWordLength: 3},
			Colors: defaultColors(),
		}, nil
	case VariantBig:
		return BoggleConfig{
			Title:  "Big Boggle",
			Board:  BoardConfig{Rows: 5, Cols: 5},
			Layout: defaultLayout(),
			Rules:  RulesConfig{MinWordLength: 4},
			Colors: defaultColors(),
		}, nil
	default:
		return BoggleConfig{}, fmt.Errorf("%w %q", ErrUnknownVariant, variant)
	}
}

func defaultLayout() LayoutConfig {
	return LayoutConfig{
		XInset:     4,
		YInset:     3,
		CellWidth:  5,
		CellHeight: 3,
	}
}

func defaultColors() ColorsConfig {
	return ColorsConfig{
		Default: ColorPairConfig{Text: "default", Fill: "default"},
		Current: ColorPairConfig{Text: "blue", Fill: "light-blue"},
		Settled: ColorPairConfig{Text: "green", Fill: "light-green"},
	}
}
