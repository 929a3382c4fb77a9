// Package spawn provides obstacle placement policies for the game.
//
// All policies place new obstacles on the right edge of the track; they
// differ only in how they choose the row.
package spawn

import (
	"math/rand/v2"

	"github.com/ezrec/dodgevm/game"
)

// Seeded places obstacles on pseudo-random rows. Two Seeded spawners with
// the same seed produce the same sequence.
type Seeded struct {
	rng *rand.Rand
}

var _ game.Spawner = (*Seeded)(nil)

// NewSeeded creates a seeded spawner.
func NewSeeded(seed uint64) *Seeded {
	return &Seeded{
		rng: rand.New(rand.NewPCG(seed, seed^0x5eed)),
	}
}

// Spawn returns the next position.
func (sp *Seeded) Spawn(track game.Track, frame int) game.Position {
	track = track.OrDefault()
	return game.Position{X: track.Width - 1, Y: sp.rng.IntN(track.Height)}
}

// Pattern places obstacles on a fixed cycle of rows, indexed by frame.
type Pattern struct {
	Rows []int
}

var _ game.Spawner = (*Pattern)(nil)

// Spawn returns the position for a frame.
func (sp *Pattern) Spawn(track game.Track, frame int) game.Position {
	track = track.OrDefault()
	pos := game.Position{X: track.Width - 1}
	if len(sp.Rows) == 0 {
		pos.Y = track.Midpoint()
		return pos
	}

	n := frame % len(sp.Rows)
	if n < 0 {
		n += len(sp.Rows)
	}
	pos.Y = sp.Rows[n]
	return pos
}
