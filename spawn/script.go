package spawn

import (
	"errors"
	"fmt"
	"log"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"

	"github.com/ezrec/dodgevm/game"
	"github.com/ezrec/dodgevm/translate"
)

var (
	ErrScriptFunction = translate.Error("script has no spawn(frame, width, height) function")
	ErrScriptResult   = translate.Error("spawn() must return an int row or an (x, y) tuple")
)

// Script places obstacles by calling a Starlark function
//
//	def spawn(frame, width, height): ...
//
// which returns either a row, or an (x, y) tuple. A failing call is
// logged and the obstacle falls back to the track midpoint.
type Script struct {
	Verbose bool // If set, logs every placement.

	thread starlark.Thread
	spawn  starlark.Callable
	err    error
}

var _ game.Spawner = (*Script)(nil)

// NewScript compiles a placement script.
func NewScript(filename string, src any) (sp *Script, err error) {
	sp = &Script{}
	sp.thread.Name = "spawn"

	opts := syntax.FileOptions{}
	globals, err := starlark.ExecFileOptions(&opts, &sp.thread, filename, src, starlark.StringDict{})
	if err != nil {
		sp = nil
		return
	}

	fn, ok := globals["spawn"].(starlark.Callable)
	if !ok {
		sp = nil
		err = ErrScriptFunction
		return
	}
	sp.spawn = fn

	return
}

// Err returns the last script error, if any.
func (sp *Script) Err() error {
	return sp.err
}

// Spawn calls the script for the position of the next obstacle.
func (sp *Script) Spawn(track game.Track, frame int) (pos game.Position) {
	track = track.OrDefault()
	pos, err := sp.call(track, frame)
	if err != nil {
		log.Printf("spawn: frame %d: %v", frame, err)
		sp.err = err
		pos = game.Position{X: track.Width - 1, Y: track.Midpoint()}
	}

	if sp.Verbose {
		log.Printf("spawn: frame %d: %v", frame, pos)
	}

	return
}

func (sp *Script) call(track game.Track, frame int) (pos game.Position, err error) {
	args := starlark.Tuple{
		starlark.MakeInt(frame),
		starlark.MakeInt(track.Width),
		starlark.MakeInt(track.Height),
	}
	rc, err := starlark.Call(&sp.thread, sp.spawn, args, nil)
	if err != nil {
		return
	}

	pos.X = track.Width - 1
	switch rv := rc.(type) {
	case starlark.Int:
		pos.Y, err = toInt(rv)
	case starlark.Tuple:
		if rv.Len() != 2 {
			err = ErrScriptResult
			return
		}
		pos.X, err = toInt(rv.Index(0))
		if err != nil {
			return
		}
		pos.Y, err = toInt(rv.Index(1))
	default:
		err = fmt.Errorf("%w: got %v", ErrScriptResult, rc.Type())
	}

	return
}

func toInt(value starlark.Value) (n int, err error) {
	err = starlark.AsInt(value, &n)
	if err != nil {
		err = errors.Join(ErrScriptResult, err)
	}
	return
}
