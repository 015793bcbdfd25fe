// boggle is the Boggle word game for the terminal.
//
// Usage:
//
//	boggle list              - List board variants
//	boggle play <variant>    - Play a game
//	boggle menu              - Start menu to pick boards interactively
//	boggle serve             - Start SSH server for remote play
//	boggle scores <variant>  - Show best games for a variant
//
// Global flags:
//
//	--seed <value>    - Set RNG seed for a reproducible board
//	--db <path>       - Set database path (default: ~/.boggle/results.db)
//	--lexicon <path>  - Word list, one word per line (default: built-in list)
//	--log <path>      - Write debug logs to a file
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-boggle/internal/games/boggle"
	"github.com/vovakirdan/tui-boggle/internal/lexicon"
	"github.com/vovakirdan/tui-boggle/internal/platform/tui"
)

const defaultDBPath = "~/.boggle/results.db"

var (
	// Global flags
	flagSeed    int64
	flagDBPath  string
	flagLexicon string
	flagLogPath string

	logFile *os.File
)

func main() {
	// A missing .env is fine
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "boggle",
	Short: "Boggle - find words on a grid of letter dice",
	Long: `Boggle is the word game played in your terminal.

Click a die to start a word, then click neighboring dice (including
diagonals) to extend it. Click the last die again to submit the word.
A die may be used once per word.

Available commands:
  list     - Show all board variants
  play     - Play a specific variant directly
  menu     - Interactive picker menu
  serve    - Start SSH server for remote play
  scores   - View best games

Examples:
  boggle list
  boggle play boggle
  boggle play bigboggle --seed 42
  boggle menu
  boggle serve --ssh :2222
  boggle scores boggle`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
	PersistentPostRun: func(*cobra.Command, []string) {
		if logFile != nil {
			logFile.Close()
		}
	},
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", defaultDBPath, "Path to results database (env BOGGLE_DB)")
	rootCmd.PersistentFlags().StringVar(&flagLexicon, "lexicon", "", "Path to word list, empty for the built-in one (env BOGGLE_LEXICON)")
	rootCmd.PersistentFlags().StringVar(&flagLogPath, "log", "", "Write debug logs to this file")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}

// envOr returns the environment variable key, or def when it is unset.
func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// setup wires logging and the lexicon before any command runs.
func setup(cmd *cobra.Command, _ []string) error {
	// Environment (including .env) applies when the flag was not given.
	if !cmd.Flags().Changed("db") {
		flagDBPath = envOr("BOGGLE_DB", defaultDBPath)
	}
	if !cmd.Flags().Changed("lexicon") {
		flagLexicon = os.Getenv("BOGGLE_LEXICON")
	}

	logger, err := newLogger(flagLogPath)
	if err != nil {
		return err
	}
	boggle.SetLogger(logger)
	tui.SetLogger(logger)

	// Commands that never build a board skip the word list.
	if cmd == listCmd || cmd == scoresCmd {
		return nil
	}

	lex, err := lexicon.LoadFile(flagLexicon)
	if err != nil {
		return fmt.Errorf("cannot load lexicon: %w", err)
	}
	logger.Debug("lexicon loaded", "path", flagLexicon, "words", lex.Len())
	boggle.SetLexicon(lex)
	return nil
}

// newLogger returns a debug logger writing to path, or a discarding
// logger when path is empty. The terminal belongs to the game.
func newLogger(path string) (*log.Logger, error) {
	if path == "" {
		return log.New(io.Discard), nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, fmt.Errorf("cannot open log file: %w", err)
	}
	logFile = f
	return log.NewWithOptions(f, log.Options{
		Level:           log.DebugLevel,
		ReportTimestamp: true,
		Prefix:          "boggle",
	}), nil
}
