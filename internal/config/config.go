// Package config provides YAML-based board configuration loading and
// difficulty presets for the boggle variants.
package config

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/tui-boggle/internal/core"
)

// Variant names, also used as registry IDs and config file names.
const (
	VariantClassic = "boggle"
	VariantBig     = "bigboggle"
)

// ErrUnknownVariant is returned for a variant with no defaults.
var ErrUnknownVariant = errors.New("config: unknown variant")

// Variants lists the known variants.
func Variants() []string {
	return []string{VariantClassic, VariantBig}
}

// BoggleConfig contains all configuration for one boggle variant.
type BoggleConfig struct {
	Title  string       `yaml:"title"`
	Board  BoardConfig  `yaml:"board"`
	Layout LayoutConfig `yaml:"layout"`
	// Dice lists the faces of every die. Empty selects the built-in set
	// for the variant.
	Dice   [][]string   `yaml:"dice"`
	Rules  RulesConfig  `yaml:"rules"`
	Colors ColorsConfig `yaml:"colors"`
}

// BoardConfig defines the grid size.
type BoardConfig struct {
	Rows int `yaml:"rows"`
	Cols int `yaml:"cols"`
}

// LayoutConfig places the grid and buttons, in terminal cells.
// Zero-size buttons are placed under the grid.
type LayoutConfig struct {
	XInset     int       `yaml:"x_inset"`
	YInset     int       `yaml:"y_inset"`
	CellWidth  int       `yaml:"cell_width"`
	CellHeight int       `yaml:"cell_height"`
	Reset      core.Rect `yaml:"reset"`
	Exit       core.Rect `yaml:"exit"`
}

// RulesConfig defines word acceptance.
type RulesConfig struct {
	MinWordLength int `yaml:"min_word_length"`
}

// ColorsConfig names the cell color pairs.
type ColorsConfig struct {
	Default ColorPairConfig `yaml:"default"`
	Current ColorPairConfig `yaml:"current"`
	Settled ColorPairConfig `yaml:"settled"`
}

// ColorPairConfig is a text/fill color pair by name (see core.ParseColor).
type ColorPairConfig struct {
	Text string `yaml:"text"`
	Fill string `yaml:"fill"`
}

// Parse resolves both color names.
func (p ColorPairConfig) Parse() (text, fill core.Color, err error) {
	if text, err = core.ParseColor(p.Text); err != nil {
		return 0, 0, err
	}
	if fill, err = core.ParseColor(p.Fill); err != nil {
		return 0, 0, err
	}
	return text, fill, nil
}

// Validate checks the config for values the engine cannot run with.
func (c BoggleConfig) Validate() error {
	if c.Board.Rows <= 0 || c.Board.Cols <= 0 {
		return fmt.Errorf("config: board must be at least 1x1, got %dx%d", c.Board.Rows, c.Board.Cols)
	}
	if len(c.Dice) > 0 && len(c.Dice) != c.Board.Rows*c.Board.Cols {
		return fmt.Errorf("config: %d dice for a %dx%d board", len(c.Dice), c.Board.Rows, c.Board.Cols)
	}
	for i, faces := range c.Dice {
		if len(faces) == 0 {
			return fmt.Errorf("config: die %d has no faces", i)
		}
	}
	if c.Rules.MinWordLength < 1 {
		return fmt.Errorf("config: min_word_length must be positive, got %d", c.Rules.MinWordLength)
	}
	if c.Layout.CellWidth < 3 || c.Layout.CellHeight < 1 {
		return fmt.Errorf("config: cell must be at least 3x1, got %dx%d", c.Layout.CellWidth, c.Layout.CellHeight)
	}
	for name, pair := range map[string]ColorPairConfig{
		"default": c.Colors.Default,
		"current": c.Colors.Current,
		"settled": c.Colors.Settled,
	} {
		if _, _, err := pair.Parse(); err != nil {
			return fmt.Errorf("config: colors.%s: %w", name, err)
		}
	}
	return nil
}
