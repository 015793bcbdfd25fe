package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-boggle/internal/config"
	"github.com/vovakirdan/tui-boggle/internal/core"
	"github.com/vovakirdan/tui-boggle/internal/games/boggle"
	"github.com/vovakirdan/tui-boggle/internal/platform/tui"
	"github.com/vovakirdan/tui-boggle/internal/registry"
	"github.com/vovakirdan/tui-boggle/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
)

var playCmd = &cobra.Command{
	Use:   "play <variant>",
	Short: "Play a game",
	Long: `Start playing the specified board variant.

Controls:
  Click a die        - Start or extend a word
  Click it again     - Submit the word
  Click elsewhere    - Drop the word
  Arrows/WASD/HJKL   - Move the cursor
  Enter/Space        - Select the die under the cursor
  Esc                - Drop the word
  R / Reset button   - New board (clears found words)
  Q / Exit button    - End the game
  Ctrl+C             - Quit

Difficulty options:
  easy   - Words of 3 letters or more (the standard rule; restores it
           on Big Boggle, whose default minimum is 4)
  normal - The variant's usual minimum (boggle 3, bigboggle 4)
  hard   - One letter more than usual

Examples:
  boggle play boggle
  boggle play bigboggle --difficulty easy
  boggle play boggle --seed 42
  boggle play boggle --config ./my-boggle.yaml`,
	Args: cobra.ExactArgs(1),
	RunE: runPlay,
}

func init() {
	for _, c := range []*cobra.Command{playCmd, menuCmd} {
		c.Flags().StringVar(&flagConfig, "config", "", "Path to custom board config YAML")
		c.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy (3+ letters on every board), normal, hard")
	}
}

// applyGameFlags hands --config and --difficulty to the game package.
func applyGameFlags() error {
	preset, err := config.ParseDifficulty(flagDifficulty)
	if err != nil {
		return err
	}
	boggle.SetConfigPath(flagConfig)
	boggle.SetDifficultyPreset(preset)
	return nil
}

// terminalConfig builds a runtime config from the terminal size, falling
// back to 80x24 when stdout is not a terminal.
func terminalConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW, cfg.ScreenH = w, h
	}
	cfg.Seed = flagSeed
	return cfg
}

// openStore opens the results database; failure is only a warning.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open results database: %v\n", err)
		return nil
	}
	return store
}

func runPlay(cmd *cobra.Command, args []string) error {
	gameID := args[0]

	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown game %q (run 'boggle list' to see available boards)", gameID)
	}
	if err := applyGameFlags(); err != nil {
		return err
	}

	game, err := registry.Create(gameID)
	if err != nil {
		return fmt.Errorf("creating game: %w", err)
	}

	// Continue without storage if it cannot be opened - game still works
	store := openStore()
	runErr := tui.Run(game, store, terminalConfig())

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		return fmt.Errorf("running game: %w", runErr)
	}
	return nil
}
