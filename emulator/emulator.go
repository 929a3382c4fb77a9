// Copyright 2024, Jason S. McMullan <jason.mcmullan@gmail.com>

package emulator

import (
	"fmt"
	"iter"
	"log"
	"maps"

	"github.com/ezrec/dodgevm/cpu"
	"github.com/ezrec/dodgevm/game"
	"github.com/ezrec/dodgevm/internal"
	"github.com/ezrec/dodgevm/io"
	"github.com/ezrec/dodgevm/spawn"
)

const (
	FRAME_STEPS = 64 // Step budget of a single frame.
)

var _emulator_defines = map[string]string{
	"FRAME_STEPS": fmt.Sprintf("%v", FRAME_STEPS),
}

// Emulator is a game session: the CPU, its program, and the state it drives.
type Emulator struct {
	Verbose  bool // If set, enables verbose logging.
	*cpu.Cpu      // Reference to the CPU.

	Track      game.Track // Track size used on Reset.
	FrameSteps int        // Step budget of Frame; FRAME_STEPS if zero.

	Latch io.Latch   // Default input ports.
	Vm    cpu.State  // Processor state.
	Game  game.State // Game state.
}

// NewEmulator creates a session for a program, reading its input from the
// emulator's Latch and placing obstacles with a zero-seeded spawner.
func NewEmulator(prog *cpu.Program) (emu *Emulator) {
	emu = &Emulator{
		Track: game.DefaultTrack,
	}

	emu.Cpu = cpu.NewCpu(prog, &emu.Latch, spawn.NewSeeded(0))
	emu.Reset()

	return
}

// Defines returns an iterator over all of the defines
func (emu *Emulator) Defines() iter.Seq2[string, string] {
	return internal.IterSeq2Concat(maps.All(_emulator_defines),
		emu.Cpu.Defines(),
		game.Defines(),
		io.Defines(),
	)
}

// Reset the session to its power-on state. Ports and spawner are kept.
func (emu *Emulator) Reset() {
	if emu.Verbose {
		log.Printf("emulator: reset")
	}

	emu.Vm = cpu.NewState()
	emu.Game = game.NewState(emu.Track)
}

// Stop halts the session.
func (emu *Emulator) Stop() {
	emu.Vm.Halt()
}

// Snapshot returns a copy of the game state for a renderer.
func (emu *Emulator) Snapshot() game.State {
	return emu.Game.Snapshot()
}

// Ticks returns the instructions executed since a reset.
func (emu *Emulator) Ticks() int {
	return emu.Vm.Ticks
}

// Ip returns current program counter.
func (emu *Emulator) Ip() int {
	return emu.Vm.Pc
}

// Code returns the current instruction.
func (emu *Emulator) Code() cpu.Instruction {
	ins, _ := emu.Cpu.Program.Fetch(emu.Vm.Pc)
	return ins
}

// LineNo returns the source line number of the current instruction.
func (emu *Emulator) LineNo() int {
	return emu.Cpu.Program.LineNo(emu.Vm.Pc)
}

// Tick performs a single step of the emulator.
// done is set once the session has halted or faulted.
func (emu *Emulator) Tick() (done bool, err error) {
	// Set CPU verbosity
	emu.Cpu.Verbose = emu.Verbose

	if emu.Vm.Done() {
		done = true
		err = emu.fault()
		return
	}

	address := emu.Vm.Pc
	lineno := emu.LineNo()

	emu.Vm, emu.Game, err = emu.Cpu.Step(emu.Vm, emu.Game)
	if err != nil {
		done = true
		err = &ErrRuntime{Address: address, LineNo: lineno, Err: err}
	}

	return
}

// fault returns the session fault, if any.
func (emu *Emulator) fault() error {
	if emu.Vm.Status != cpu.FAULTED {
		return nil
	}

	fault, ok := emu.Vm.Fault.(*cpu.Fault)
	if !ok {
		return emu.Vm.Fault
	}
	return &ErrRuntime{Address: fault.Address, LineNo: emu.Cpu.Program.LineNo(fault.Address), Err: fault}
}

// Frame steps until the score changes, the game ends, the session is done,
// or the step budget runs out.
func (emu *Emulator) Frame() (steps int, done bool, err error) {
	budget := emu.FrameSteps
	if budget <= 0 {
		budget = FRAME_STEPS
	}

	score := emu.Game.Score
	over := emu.Game.GameOver
	for steps < budget {
		done, err = emu.Tick()
		if done || err != nil {
			return
		}
		steps++
		if emu.Game.Score != score || emu.Game.GameOver != over {
			break
		}
	}

	if emu.Verbose {
		log.Printf("emulator: frame %d steps, %v", steps, emu.Game)
	}

	return
}
