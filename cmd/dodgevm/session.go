package main

import (
	"log"
	"os"

	"github.com/ezrec/dodgevm/cpu"
	"github.com/ezrec/dodgevm/emulator"
	"github.com/ezrec/dodgevm/game"
	"github.com/ezrec/dodgevm/image"
	"github.com/ezrec/dodgevm/spawn"
)

// ProgramOptions selects the program image. The demo program is used when
// no image is given.
type ProgramOptions struct {
	Image string `short:"p" long:"program" description:"Program image (ADDRESS: WORD lines)" value-name:"FILE"`
}

// Program loads the selected program.
func (opt *ProgramOptions) Program() (prog *cpu.Program, err error) {
	if len(opt.Image) == 0 {
		return emulator.Demo()
	}

	inf, err := os.Open(opt.Image)
	if err != nil {
		return
	}
	defer inf.Close()

	return image.Decode(opt.Image, inf)
}

// SessionOptions configure an emulator session.
type SessionOptions struct {
	ProgramOptions

	Width      int    `long:"width" description:"Track width" default:"32"`
	Height     int    `long:"height" description:"Track height" default:"8"`
	FrameSteps int    `long:"frame-steps" description:"Step budget of a frame" default:"64"`
	Seed       uint64 `long:"seed" description:"Obstacle placement seed"`
	Pattern    []int  `long:"pattern" description:"Obstacle row; repeat for a cycle of rows"`
	Script     string `long:"script" description:"Starlark obstacle placement script" value-name:"FILE"`
}

// Emulator creates the session.
func (opt *SessionOptions) Emulator() (emu *emulator.Emulator, err error) {
	prog, err := opt.Program()
	if err != nil {
		return
	}

	emu = emulator.NewEmulator(prog)
	emu.Verbose = opts.Verbose
	emu.Track = game.Track{Width: opt.Width, Height: opt.Height}
	emu.FrameSteps = opt.FrameSteps

	switch {
	case len(opt.Script) != 0:
		var sp *spawn.Script
		sp, err = spawn.NewScript(opt.Script, nil)
		if err != nil {
			return
		}
		sp.Verbose = opts.Verbose
		emu.Spawner = sp
	case len(opt.Pattern) != 0:
		emu.Spawner = &spawn.Pattern{Rows: opt.Pattern}
	default:
		emu.Spawner = spawn.NewSeeded(opt.Seed)
	}

	if opts.Verbose {
		log.Printf("dodgevm: %d instructions, track %dx%d", prog.Len(), opt.Width, opt.Height)
	}

	emu.Reset()
	return
}
