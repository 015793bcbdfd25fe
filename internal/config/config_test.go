package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-boggle/internal/core"
)

func TestEmbeddedDefaultsParse(t *testing.T) {
	for _, variant := range Variants() {
		t.Run(variant, func(t *testing.T) {
			data, err := embeddedYAML(variant)
			require.NoError(t, err)

			base, err := Default(variant)
			require.NoError(t, err)

			cfg, err := parse(data, base)
			require.NoError(t, err)
			assert.NoError(t, cfg.Validate())
			assert.NotEmpty(t, cfg.Title)
		})
	}
}

func TestClassicDefaults(t *testing.T) {
	data, err := embeddedYAML(VariantClassic)
	require.NoError(t, err)
	base, err := Default(VariantClassic)
	require.NoError(t, err)

	cfg, err := parse(data, base)
	require.NoError(t, err)

	assert.Equal(t, BoardConfig{Rows: 4, Cols: 4}, cfg.Board)
	assert.Len(t, cfg.Dice, 16)
	assert.Equal(t, []string{"J", "M", "O", "QU", "A", "B"}, cfg.Dice[2])
	assert.Equal(t, 3, cfg.Rules.MinWordLength)
	assert.Equal(t, core.NewRect(4, 17, 9, 3), cfg.Layout.Reset)
}

func TestBigDefaultsUseBuiltinDice(t *testing.T) {
	data, err := embeddedYAML(VariantBig)
	require.NoError(t, err)
	base, err := Default(VariantBig)
	require.NoError(t, err)

	cfg, err := parse(data, base)
	require.NoError(t, err)
	assert.Empty(t, cfg.Dice)
	assert.Equal(t, 4, cfg.Rules.MinWordLength)
	assert.True(t, cfg.Layout.Reset.Empty())
}

func TestUnknownVariant(t *testing.T) {
	_, err := Default("scrabble")
	assert.True(t, errors.Is(err, ErrUnknownVariant))

	_, err = Load("scrabble", "")
	assert.True(t, errors.Is(err, ErrUnknownVariant))
}

func TestLoadCustomPathOverlaysDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	yaml := "rules:\n  min_word_length: 5\ncolors:\n  current: {text: red, fill: yellow}\n"
	require.NoError(t, os.WriteFile(path, []byte(yaml), 0o600))

	cfg, err := Load(VariantClassic, path)
	require.NoError(t, err)

	assert.Equal(t, 5, cfg.Rules.MinWordLength)
	assert.Equal(t, "red", cfg.Colors.Current.Text)
	// Untouched keys keep the hardcoded defaults.
	assert.Equal(t, 4, cfg.Board.Rows)
	assert.Equal(t, "light-green", cfg.Colors.Settled.Fill)
}

func TestLoadCustomPathErrors(t *testing.T) {
	dir := t.TempDir()

	_, err := Load(VariantClassic, filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)

	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("board: [1, 2"), 0o600))
	_, err = Load(VariantClassic, bad)
	assert.Error(t, err)

	invalid := filepath.Join(dir, "invalid.yaml")
	require.NoError(t, os.WriteFile(invalid, []byte("board: {rows: 3, cols: 3}\ndice: [[A], [B]]\n"), 0o600))
	_, err = Load(VariantClassic, invalid)
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	valid, err := Default(VariantClassic)
	require.NoError(t, err)
	require.NoError(t, valid.Validate())

	tests := []struct {
		name   string
		modify func(*BoggleConfig)
	}{
		{"zero rows", func(c *BoggleConfig) { c.Board.Rows = 0 }},
		{"wrong dice count", func(c *BoggleConfig) { c.Dice = [][]string{{"A"}} }},
		{"die without faces", func(c *BoggleConfig) {
			c.Board = BoardConfig{Rows: 1, Cols: 2}
			c.Dice = [][]string{{"A"}, {}}
		}},
		{"zero min length", func(c *BoggleConfig) { c.Rules.MinWordLength = 0 }},
		{"narrow cells", func(c *BoggleConfig) { c.Layout.CellWidth = 2 }},
		{"bad color", func(c *BoggleConfig) { c.Colors.Current.Fill = "plaid" }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := valid
			tc.modify(&cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}

func TestDifficulty(t *testing.T) {
	p, err := ParseDifficulty(" Hard ")
	require.NoError(t, err)
	assert.Equal(t, DifficultyHard, p)

	_, err = ParseDifficulty("nightmare")
	assert.Error(t, err)

	cfg, err := Default(VariantBig)
	require.NoError(t, err)

	easy := cfg
	ApplyPreset(&easy, DifficultyEasy)
	assert.Equal(t, 3, easy.Rules.MinWordLength)

	hard := cfg
	ApplyPreset(&hard, DifficultyHard)
	assert.Equal(t, 5, hard.Rules.MinWordLength)

	normal := cfg
	ApplyPreset(&normal, DifficultyNormal)
	assert.Equal(t, 4, normal.Rules.MinWordLength)
}
