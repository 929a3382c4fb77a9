// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

var fixed = SpawnerFunc(func(track Track, frame int) Position {
	return Position{X: track.Width - 1, Y: 1}
})

func TestNewState(t *testing.T) {
	assert := assert.New(t)

	gs := NewState(Track{})
	assert.Equal(DefaultTrack, gs.Track)
	assert.False(gs.GameOver)

	gs = NewState(Track{Width: 10})
	assert.Equal(Track{Width: 10, Height: TRACK_HEIGHT}, gs.Track)
}

func TestStart(t *testing.T) {
	assert := assert.New(t)

	gs := State{
		Track:     Track{Width: 12, Height: 7},
		PlayerY:   6,
		Score:     40,
		Obstacles: []Obstacle{{Position{1, 1}, 3}},
		GameOver:  true,
	}

	gs = gs.Start()
	assert.Equal(State{Track: Track{Width: 12, Height: 7}, PlayerY: 3}, gs)
}

func TestMove(t *testing.T) {
	assert := assert.New(t)

	gs := NewState(Track{Width: 4, Height: 3}).Start()
	assert.Equal(1, gs.PlayerY)

	gs = gs.MoveUp()
	assert.Equal(0, gs.PlayerY)
	gs = gs.MoveUp()
	assert.Equal(0, gs.PlayerY)

	gs = gs.MoveDown().MoveDown()
	assert.Equal(2, gs.PlayerY)
	gs = gs.MoveDown()
	assert.Equal(2, gs.PlayerY)
}

func TestSpawn(t *testing.T) {
	assert := assert.New(t)

	gs := NewState(Track{Width: 8, Height: 4}).Start()

	gs = gs.Spawn(fixed)
	assert.Equal([]Obstacle{{Position{7, 1}, 0}}, gs.Obstacles)

	// Same position, same frame: dropped.
	gs = gs.Spawn(fixed)
	assert.Len(gs.Obstacles, 1)

	// Same position, next frame: kept.
	gs = gs.ScoreIncrement().Spawn(fixed)
	assert.Equal([]Obstacle{{Position{7, 1}, 0}, {Position{7, 1}, 1}}, gs.Obstacles)

	// No spawner, no obstacle.
	assert.Equal(gs, gs.Spawn(nil))
}

func TestSpawn_Clamped(t *testing.T) {
	assert := assert.New(t)

	wild := SpawnerFunc(func(track Track, frame int) Position {
		return Position{X: 100, Y: -5}
	})

	gs := NewState(Track{Width: 8, Height: 4}).Start().Spawn(wild)
	assert.Equal(Position{X: 7, Y: 0}, gs.Obstacles[0].Position)
}

func TestSpawn_NoAliasing(t *testing.T) {
	assert := assert.New(t)

	base := NewState(Track{}).Start().Spawn(fixed).ScoreIncrement()
	base.Obstacles = append(make([]Obstacle, 0, 8), base.Obstacles...)

	a := base.Spawn(SpawnerFunc(func(track Track, frame int) Position { return Position{X: 1, Y: 2} }))
	b := base.Spawn(SpawnerFunc(func(track Track, frame int) Position { return Position{X: 3, Y: 4} }))

	assert.Len(base.Obstacles, 1)
	assert.Equal(Position{X: 1, Y: 2}, a.Obstacles[1].Position)
	assert.Equal(Position{X: 3, Y: 4}, b.Obstacles[1].Position)
}

func TestScoreIncrement(t *testing.T) {
	assert := assert.New(t)

	gs := NewState(Track{}).Start()
	for n := range 5 {
		assert.Equal(n, gs.Score)
		gs = gs.ScoreIncrement()
	}
	assert.Equal(5, gs.Score)
}

func TestEnd(t *testing.T) {
	assert := assert.New(t)

	gs := NewState(Track{}).Start().ScoreIncrement().End()
	assert.True(gs.GameOver)

	frozen := gs.Snapshot()
	for _, action := range []Action{SPAWN, SCORE, MOVE_UP, MOVE_DOWN, END} {
		gs = gs.Apply(action, fixed)
		assert.Equal(frozen, gs, action.String())
	}
}

func TestApply(t *testing.T) {
	assert := assert.New(t)

	gs := NewState(Track{Width: 8, Height: 4})
	gs = gs.Apply(START, fixed)
	gs = gs.Apply(SPAWN, fixed)
	gs = gs.Apply(SCORE, fixed)
	gs = gs.Apply(MOVE_UP, fixed)
	assert.Equal(State{
		Track:     Track{Width: 8, Height: 4},
		PlayerY:   1,
		Score:     1,
		Obstacles: []Obstacle{{Position{7, 1}, 0}},
	}, gs)

	gs = gs.Apply(MOVE_DOWN, fixed).Apply(END, nil)
	assert.Equal(2, gs.PlayerY)
	assert.True(gs.GameOver)

	assert.Panics(func() { gs.Apply(Action(99), nil) })
}

func TestSnapshot(t *testing.T) {
	assert := assert.New(t)

	gs := NewState(Track{}).Start().Spawn(fixed)
	snap := gs.Snapshot()
	gs.Obstacles[0].X = 0

	assert.Equal(TRACK_WIDTH-1, snap.Obstacles[0].X)
	assert.Equal("y=4 score=0 obstacles=1 game_over=false", snap.String())
}

func TestDefines(t *testing.T) {
	assert := assert.New(t)

	defines := map[string]string{}
	for key, value := range Defines() {
		defines[key] = value
	}
	assert.Equal("32", defines["TRACK_WIDTH"])
	assert.Equal("8", defines["TRACK_HEIGHT"])
	assert.Equal("MOVE_DOWN", MOVE_DOWN.String())
}
