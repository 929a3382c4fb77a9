package emulator

import (
	"github.com/ezrec/dodgevm/cpu"
	"github.com/ezrec/dodgevm/io"
)

// DemoRecords is the reference dodge program: wait for the start button,
// then each frame read the movement port, move, spawn one obstacle and
// score one point.
func DemoRecords() []cpu.Record {
	return []cpu.Record{
		cpu.Org(0),
		cpu.Label("WAIT"), cpu.Op(cpu.OP_IN, io.PORT_START),
		cpu.Op(cpu.OP_CMP, 1),
		cpu.Jump(cpu.OP_JEQ, "GO"),
		cpu.Jump(cpu.OP_JMP, "WAIT"),

		cpu.Org(8),
		cpu.Label("GO"), cpu.Op(cpu.OP_START_GAME),
		cpu.Label("LOOP"), cpu.Op(cpu.OP_IN, io.PORT_MOVE),
		cpu.Op(cpu.OP_CMP, io.MOVE_UP),
		cpu.Jump(cpu.OP_JEQ, "UP"),
		cpu.Op(cpu.OP_CMP, io.MOVE_DOWN),
		cpu.Jump(cpu.OP_JEQ, "DOWN"),
		cpu.Jump(cpu.OP_JMP, "FRAME"),

		cpu.Org(16),
		cpu.Label("UP"), cpu.Op(cpu.OP_MOVE_UP),
		cpu.Jump(cpu.OP_JMP, "FRAME"),
		cpu.Label("DOWN"), cpu.Op(cpu.OP_MOVE_DOWN),
		cpu.Label("FRAME"), cpu.Op(cpu.OP_SPAWN_OBSTACLE),
		cpu.Op(cpu.OP_SCORE_INCREMENT),
		cpu.Jump(cpu.OP_JMP, "LOOP"),
	}
}

// Demo loads the reference dodge program.
func Demo() (prog *cpu.Program, err error) {
	return cpu.Load(DemoRecords())
}
