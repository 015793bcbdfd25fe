package boggle

import "strings"

// GameStateType represents the current game state.
type GameStateType string

const (
	StatePlaying     GameStateType = "playing"
	StateGameOver    GameStateType = "game_over"
	StatePausedSmall GameStateType = "paused_small_window"
)

// Snapshot captures the game for determinism tests and stored results.
type Snapshot struct {
	Variant string
	Board   [][]string // visible faces, row by row
	Path    []Pos
	Word    string
	Found   []string
	Score   int
	State   GameStateType
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	state := StatePlaying
	switch {
	case g.tooSmall:
		state = StatePausedSmall
	case g.machine.Over():
		state = StateGameOver
	}

	return Snapshot{
		Variant: g.variant,
		Board:   g.board.Letters(),
		Path:    g.machine.Path(),
		Word:    g.machine.Word(),
		Found:   g.machine.Found(),
		Score:   len(g.machine.found),
		State:   state,
	}
}

// BoardString is the board with faces separated by spaces and rows by "/".
func (s Snapshot) BoardString() string {
	rows := make([]string, len(s.Board))
	for i, row := range s.Board {
		rows[i] = strings.Join(row, " ")
	}
	return strings.Join(rows, "/")
}

// BoardString is the current board in Snapshot.BoardString form.
func (g *Game) BoardString() string {
	return Snapshot{Board: g.board.Letters()}.BoardString()
}
