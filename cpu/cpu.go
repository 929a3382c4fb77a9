package cpu

import (
	"fmt"
	"iter"
	"log"
	"maps"

	"github.com/ezrec/dodgevm/game"
	"github.com/ezrec/dodgevm/io"
)

var _cpu_defines = map[string]string{
	"RESET_ADDRESS": fmt.Sprintf("%v", RESET_ADDRESS),
}

func init() {
	for op := range opcodeOperand {
		_cpu_defines["OP_"+op.String()] = fmt.Sprintf("%v", int(op))
	}
}

// Cpu is the execution engine. It owns the program and the collaborators
// the opcodes consult; all mutable state is passed to Step.
type Cpu struct {
	Verbose bool // Set to enable verbose logging.

	Program *Program     // Loaded program.
	Ports   io.Ports     // Input port adapter, queried by IN.
	Spawner game.Spawner // Obstacle placement, used by SPAWN_OBSTACLE.
}

// NewCpu creates a CPU executing a program.
func NewCpu(prog *Program, ports io.Ports, spawner game.Spawner) (cpu *Cpu) {
	cpu = &Cpu{
		Program: prog,
		Ports:   ports,
		Spawner: spawner,
	}

	return
}

// Defines for the cpu
func (cpu *Cpu) Defines() iter.Seq2[string, string] {
	return maps.All(_cpu_defines)
}

// gameAction maps game opcodes to their game state action.
var gameAction = map[Opcode]game.Action{
	OP_SPAWN_OBSTACLE:  game.SPAWN,
	OP_SCORE_INCREMENT: game.SCORE,
	OP_MOVE_UP:         game.MOVE_UP,
	OP_MOVE_DOWN:       game.MOVE_DOWN,
	OP_GAME_OVER:       game.END,
}

// Step fetches and executes a single instruction.
//
// On success the updated states are returned with a nil error. A halted
// session returns ErrHalted. A fault returns a *Fault, the faulted VM
// state, and the game state exactly as it was passed in.
func (cpu *Cpu) Step(vm State, gs game.State) (State, game.State, error) {
	switch vm.Status {
	case HALTED:
		return vm, gs, ErrHalted
	case FAULTED:
		return vm, gs, vm.Fault
	}

	ins, ok := cpu.Program.Fetch(vm.Pc)
	if !ok {
		return cpu.fault(vm, gs, opNone, ErrHaltFault)
	}

	next_vm, next_gs, err := cpu.Execute(vm, gs, ins)
	if err != nil {
		return cpu.fault(vm, gs, ins.Opcode, err)
	}

	return next_vm, next_gs, nil
}

// fault ends the session.
func (cpu *Cpu) fault(vm State, gs game.State, op Opcode, err error) (State, game.State, error) {
	fault := &Fault{Address: vm.Pc, Opcode: op, Err: err}
	if cpu.Verbose {
		log.Printf("cpu: %v", fault)
	}

	vm.Status = FAULTED
	vm.Fault = fault
	return vm, gs, fault
}

// Execute executes a single decoded instruction.
func (cpu *Cpu) Execute(vm State, gs game.State, ins Instruction) (State, game.State, error) {
	if cpu.Verbose {
		log.Printf("%02d: %v", vm.Pc, ins)
	}

	next_pc := cpu.Program.Next(vm.Pc)

	switch ins.Opcode {
	case OP_NOP:
		// pass
	case OP_IN:
		if cpu.Ports == nil {
			return vm, gs, fmt.Errorf("%w: no ports", ErrInvariant)
		}
		vm.Accumulator = cpu.Ports.Read(ins.Operand)
	case OP_CMP:
		vm.Compare = Compare{
			Equal: vm.Accumulator == ins.Operand,
			Value: ins.Operand,
			Valid: true,
		}
	case OP_JEQ, OP_JMP:
		target, err := cpu.jumpTarget(ins)
		if err != nil {
			return vm, gs, err
		}
		if ins.Opcode == OP_JMP || vm.Compare.Equal {
			next_pc = target
		}
	case OP_START_GAME:
		// Restarting a running session is a no-op.
		if vm.Status == AWAITING_START {
			gs = gs.Start()
			vm.Status = RUNNING
		}
	case OP_SPAWN_OBSTACLE, OP_SCORE_INCREMENT, OP_MOVE_UP, OP_MOVE_DOWN, OP_GAME_OVER:
		if vm.Status != RUNNING {
			return vm, gs, ErrNotRunning
		}
		action := gameAction[ins.Opcode]
		if action == game.SPAWN && cpu.Spawner == nil {
			return vm, gs, fmt.Errorf("%w: no spawner", ErrInvariant)
		}
		gs = gs.Apply(action, cpu.Spawner)
	default:
		return vm, gs, ErrUnknownOpcode
	}

	vm.Pc = next_pc
	vm.Ticks++

	return vm, gs, nil
}

// jumpTarget validates the resolved address of a jump.
func (cpu *Cpu) jumpTarget(ins Instruction) (target int, err error) {
	target = ins.Operand
	if target < 0 {
		err = fmt.Errorf("%w: jump to %d", ErrInvariant, target)
		return
	}

	if len(ins.Target) != 0 {
		addr, ok := cpu.Program.Label[ins.Target]
		if !ok || addr != target {
			err = fmt.Errorf("%w: label %v unresolved", ErrInvariant, ins.Target)
			return
		}
	}

	return
}
