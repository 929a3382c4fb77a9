package main

import (
	"fmt"
	"log"
	"os"

	"github.com/ezrec/dodgevm/io"
	"github.com/ezrec/dodgevm/spawn"
)

type RunCommand struct {
	SessionOptions

	Tape   string `short:"t" long:"tape" description:"Input tape, one line of port values per frame ('-' for stdin)" value-name:"FILE"`
	Frames int    `short:"f" long:"frames" description:"Frames to run; zero runs to the end of the tape" default:"100"`
	Start  bool   `short:"s" long:"start" description:"Hold the start button when no tape is given"`
	Quiet  bool   `short:"q" long:"quiet" description:"Only report the final state"`
}

var runCommand RunCommand

func (cmd *RunCommand) Execute(args []string) (err error) {
	if len(args) != 0 {
		return fmt.Errorf("unknown arguments: %v", args)
	}

	emu, err := cmd.Emulator()
	if err != nil {
		return
	}

	var tape *io.Tape
	switch cmd.Tape {
	case "":
		if cmd.Start {
			emu.Latch.Set(io.PORT_START, 1)
		}
	case "-":
		tape = &io.Tape{Input: os.Stdin}
	default:
		var inf *os.File
		inf, err = os.Open(cmd.Tape)
		if err != nil {
			return
		}
		defer inf.Close()
		tape = &io.Tape{Input: inf}
	}

	if tape != nil {
		emu.Ports = tape
	} else if cmd.Frames <= 0 {
		return fmt.Errorf("--frames must be positive without a tape")
	}

	for frame := 0; cmd.Frames <= 0 || frame < cmd.Frames; frame++ {
		if tape != nil {
			var ok bool
			ok, err = tape.Advance()
			if err != nil {
				return
			}
			if !ok {
				break
			}
		}

		var steps int
		var done bool
		steps, done, err = emu.Frame()
		if err != nil {
			if tape != nil {
				err = fmt.Errorf("%v: line %d: %w", cmd.Tape, tape.LineNo(), err)
			}
			return
		}

		if !cmd.Quiet {
			fmt.Printf("%4d: %3d steps, %v\n", frame, steps, emu.Snapshot())
		}
		if done || emu.Game.GameOver {
			break
		}
	}

	if opts.Verbose {
		log.Printf("dodgevm: %d ticks", emu.Ticks())
	}

	// Failed placements fell back to the midpoint; report the last one.
	if sp, ok := emu.Spawner.(*spawn.Script); ok && sp.Err() != nil {
		log.Printf("dodgevm: %v: %v", cmd.Script, sp.Err())
	}

	fmt.Println(emu.Snapshot())
	return
}

func init() {
	flagsparser.AddCommand(
		"run",
		"Run a program",
		"Runs a program image (or the demo program) frame by frame, reading the input ports from a tape.",
		&runCommand,
	)
}
