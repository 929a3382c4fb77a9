// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package game

import (
	"fmt"
	"iter"
	"maps"
	"slices"
)

const (
	TRACK_WIDTH  = 32 // Default track width, in columns.
	TRACK_HEIGHT = 8  // Default track height, in rows.
)

var _game_defines = map[string]string{
	"TRACK_WIDTH":  fmt.Sprintf("%v", TRACK_WIDTH),
	"TRACK_HEIGHT": fmt.Sprintf("%v", TRACK_HEIGHT),
}

// Defines for the game.
func Defines() iter.Seq2[string, string] {
	return maps.All(_game_defines)
}

// Track is the size of the playing field.
type Track struct {
	Width  int
	Height int
}

// DefaultTrack is used when a State has no track size.
var DefaultTrack = Track{Width: TRACK_WIDTH, Height: TRACK_HEIGHT}

// OrDefault fills in missing dimensions from DefaultTrack.
func (tr Track) OrDefault() Track {
	if tr.Width <= 0 {
		tr.Width = DefaultTrack.Width
	}
	if tr.Height <= 0 {
		tr.Height = DefaultTrack.Height
	}
	return tr
}

// Midpoint is the starting row of the player.
func (tr Track) Midpoint() int {
	return tr.OrDefault().Height / 2
}

// Position is a cell on the track. Row 0 is the top.
type Position struct {
	X int
	Y int
}

// clamp limits a position to the track.
func (tr Track) clamp(pos Position) Position {
	tr = tr.OrDefault()
	pos.X = min(max(pos.X, 0), tr.Width-1)
	pos.Y = min(max(pos.Y, 0), tr.Height-1)
	return pos
}

// Obstacle is a spawned obstacle, and the frame it was spawned in.
type Obstacle struct {
	Position
	Frame int
}

// Spawner chooses where new obstacles appear.
type Spawner interface {
	Spawn(track Track, frame int) Position
}

// SpawnerFunc adapts a function to a Spawner.
type SpawnerFunc func(track Track, frame int) Position

func (fn SpawnerFunc) Spawn(track Track, frame int) Position {
	return fn(track, frame)
}

// State of a game session.
type State struct {
	Track     Track      // Size of the playing field.
	PlayerY   int        // Player row, within [0, Track.Height).
	Score     int        // Score, which is also the current frame number.
	Obstacles []Obstacle // Obstacles, in spawn order.
	GameOver  bool       // Set once; freezes the state.
}

// NewState returns the state of a game on a track, before it starts.
func NewState(track Track) State {
	return State{Track: track.OrDefault()}
}

// String summarises the state.
func (st State) String() string {
	return fmt.Sprintf("y=%d score=%d obstacles=%d game_over=%v", st.PlayerY, st.Score, len(st.Obstacles), st.GameOver)
}

// Snapshot returns a copy that shares no memory with st.
func (st State) Snapshot() State {
	st.Obstacles = slices.Clone(st.Obstacles)
	return st
}

// Start resets the state to the starting configuration.
func (st State) Start() State {
	track := st.Track.OrDefault()
	return State{
		Track:   track,
		PlayerY: track.Midpoint(),
	}
}

// Spawn appends an obstacle placed by src. A position already spawned in
// the current frame is not added twice.
func (st State) Spawn(src Spawner) State {
	if st.GameOver || src == nil {
		return st
	}

	pos := st.Track.clamp(src.Spawn(st.Track.OrDefault(), st.Score))
	for _, ob := range st.Obstacles {
		if ob.Frame == st.Score && ob.Position == pos {
			return st
		}
	}

	st.Obstacles = append(slices.Clip(st.Obstacles), Obstacle{Position: pos, Frame: st.Score})
	return st
}

// ScoreIncrement adds one to the score.
func (st State) ScoreIncrement() State {
	if st.GameOver {
		return st
	}
	st.Score++
	return st
}

// MoveUp moves the player one row towards row 0.
func (st State) MoveUp() State {
	if st.GameOver {
		return st
	}
	st.PlayerY = max(st.PlayerY-1, 0)
	return st
}

// MoveDown moves the player one row away from row 0.
func (st State) MoveDown() State {
	if st.GameOver {
		return st
	}
	st.PlayerY = min(st.PlayerY+1, st.Track.OrDefault().Height-1)
	return st
}

// End sets the game over flag.
func (st State) End() State {
	st.GameOver = true
	return st
}

// Apply performs an action on the state.
func (st State) Apply(action Action, src Spawner) State {
	switch action {
	case START:
		return st.Start()
	case SPAWN:
		return st.Spawn(src)
	case SCORE:
		return st.ScoreIncrement()
	case MOVE_UP:
		return st.MoveUp()
	case MOVE_DOWN:
		return st.MoveDown()
	case END:
		return st.End()
	default:
		panic(fmt.Sprintf("game: unknown action %v", action))
	}
}
