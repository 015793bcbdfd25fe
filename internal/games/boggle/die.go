package boggle

import (
	"errors"
	"fmt"
	"math/rand"
	"slices"
)

// Die is one Boggle cube: a fixed list of faces, one of them visible.
// Faces may repeat and may hold more than one letter ("QU").
type Die struct {
	faces   []string
	visible int
}

// NewDie creates a die showing faces[visible].
func NewDie(faces []string, visible int) (*Die, error) {
	if len(faces) == 0 {
		return nil, errors.New("boggle: die needs at least one face")
	}
	if visible < 0 || visible >= len(faces) {
		return nil, fmt.Errorf("boggle: visible face %d out of range [0, %d)", visible, len(faces))
	}
	return &Die{faces: slices.Clone(faces), visible: visible}, nil
}

// Face returns the visible glyph.
func (d *Die) Face() string {
	return d.faces[d.visible]
}

// Faces returns a copy of the face list.
func (d *Die) Faces() []string {
	return slices.Clone(d.faces)
}

// Visible returns the index of the visible face.
func (d *Die) Visible() int {
	return d.visible
}

// RandomizeFace rolls the die, picking each face with equal probability.
func (d *Die) RandomizeFace(rng *rand.Rand) {
	d.visible = rng.Intn(len(d.faces))
}

// Equal reports value equality: same faces in the same order and the same
// visible face. Two distinct dice on one board may be Equal; selection
// logic compares *Die pointers instead.
func (d *Die) Equal(other *Die) bool {
	if d == nil || other == nil {
		return d == other
	}
	return d.visible == other.visible && slices.Equal(d.faces, other.faces)
}

func (d *Die) String() string {
	return fmt.Sprintf("Die(%s)", d.Face())
}
