package boggle

import (
	"errors"
	"fmt"
)

// Sentinel errors for building a board.
var (
	ErrNoDice    = errors.New("boggle: no dice")
	ErrDiceCount = errors.New("boggle: dice count does not match grid size")
)

// ClassicDice returns the faces of the 16 dice of the 4x4 game.
func ClassicDice() [][]string {
	return [][]string{
		{"A", "A", "C", "I", "O", "T"},
		{"T", "Y", "A", "B", "I", "L"},
		{"J", "M", "O", "QU", "A", "B"},
		{"A", "C", "D", "E", "M", "P"},
		{"A", "C", "E", "L", "S", "R"},
		{"A", "D", "E", "N", "V", "Z"},
		{"A", "H", "M", "O", "R", "S"},
		{"B", "F", "I", "O", "R", "X"},
		{"D", "E", "N", "O", "S", "W"},
		{"D", "K", "N", "O", "T", "U"},
		{"E", "E", "F", "H", "I", "Y"},
		{"E", "G", "I", "N", "T", "V"},
		{"E", "G", "K", "L", "U", "Y"},
		{"E", "H", "I", "N", "P", "S"},
		{"E", "L", "P", "S", "T", "U"},
		{"G", "I", "L", "R", "U", "W"},
	}
}

// BigDice returns the faces of the 25 dice of the 5x5 game.
// DHLNOR appears twice.
func BigDice() [][]string {
	return [][]string{
		{"A", "A", "A", "F", "R", "S"},
		{"A", "A", "E", "E", "E", "E"},
		{"A", "A", "F", "I", "R", "S"},
		{"A", "D", "E", "N", "N", "N"},
		{"A", "E", "E", "E", "E", "M"},
		{"A", "E", "E", "G", "M", "U"},
		{"A", "E", "G", "M", "N", "N"},
		{"A", "F", "I", "R", "S", "Y"},
		{"B", "J", "K", "QU", "X", "Z"},
		{"C", "C", "E", "N", "S", "T"},
		{"C", "E", "I", "I", "L", "T"},
		{"C", "E", "I", "L", "P", "T"},
		{"C", "E", "I", "P", "S", "T"},
		{"D", "D", "H", "N", "O", "T"},
		{"D", "H", "H", "L", "O", "R"},
		{"D", "H", "L", "N", "O", "R"},
		{"D", "H", "L", "N", "O", "R"},
		{"E", "I", "I", "I", "T", "T"},
		{"E", "M", "O", "T", "T", "T"},
		{"E", "N", "S", "S", "S", "U"},
		{"F", "I", "P", "R", "S", "Y"},
		{"G", "O", "R", "R", "V", "W"},
		{"I", "P", "R", "R", "R", "Y"},
		{"N", "O", "O", "T", "U", "W"},
		{"O", "O", "O", "T", "T", "U"},
	}
}

// NewDice builds one die per face list, each showing its first face.
func NewDice(faces [][]string) ([]*Die, error) {
	if len(faces) == 0 {
		return nil, ErrNoDice
	}
	dice := make([]*Die, len(faces))
	for i, f := range faces {
		d, err := NewDie(f, 0)
		if err != nil {
			return nil, fmt.Errorf("die %d: %w", i, err)
		}
		dice[i] = d
	}
	return dice, nil
}
