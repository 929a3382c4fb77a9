package cpu

import (
	"fmt"
)

// Opcode is the 4-bit operation identifier of an instruction word.
type Opcode int

// Opcode values follow the hardware encoding. Words 3, 5, 7, 8 and 15 are
// reserved by the encoding but not implemented by this processor.
//
//go:generate go tool stringer -linecomment -type=Opcode
const (
	OP_NOP             = Opcode(0)  // NOP
	OP_JMP             = Opcode(1)  // JMP
	OP_JEQ             = Opcode(2)  // JEQ
	OP_CMP             = Opcode(4)  // CMP
	OP_IN              = Opcode(6)  // IN
	OP_MOVE_UP         = Opcode(9)  // MOVE_UP
	OP_MOVE_DOWN       = Opcode(10) // MOVE_DOWN
	OP_SCORE_INCREMENT = Opcode(11) // SCORE_INCREMENT
	OP_SPAWN_OBSTACLE  = Opcode(12) // SPAWN_OBSTACLE
	OP_GAME_OVER       = Opcode(13) // GAME_OVER
	OP_START_GAME      = Opcode(14) // START_GAME
)

// OperandKind describes what the operand of an opcode means.
type OperandKind int

const (
	OPERAND_NONE    = OperandKind(0) // No operand.
	OPERAND_VALUE   = OperandKind(1) // Immediate value or port number.
	OPERAND_ADDRESS = OperandKind(2) // Jump target address.
)

var opcodeOperand = map[Opcode]OperandKind{
	OP_NOP:             OPERAND_NONE,
	OP_JMP:             OPERAND_ADDRESS,
	OP_JEQ:             OPERAND_ADDRESS,
	OP_CMP:             OPERAND_VALUE,
	OP_IN:              OPERAND_VALUE,
	OP_MOVE_UP:         OPERAND_NONE,
	OP_MOVE_DOWN:       OPERAND_NONE,
	OP_SCORE_INCREMENT: OPERAND_NONE,
	OP_SPAWN_OBSTACLE:  OPERAND_NONE,
	OP_GAME_OVER:       OPERAND_NONE,
	OP_START_GAME:      OPERAND_NONE,
}

var opcodeName = map[string]Opcode{}

func init() {
	for op := range opcodeOperand {
		opcodeName[op.String()] = op
	}
}

// Known returns true if the processor implements the opcode.
func (op Opcode) Known() bool {
	_, ok := opcodeOperand[op]
	return ok
}

// Operand returns the operand kind of the opcode. Unknown opcodes take
// no operand.
func (op Opcode) Operand() OperandKind {
	return opcodeOperand[op]
}

// ParseOpcode returns the opcode for a mnemonic.
func ParseOpcode(name string) (op Opcode, ok bool) {
	op, ok = opcodeName[name]
	return
}

// Instruction is a single decoded, loaded instruction.
type Instruction struct {
	Opcode  Opcode
	Operand int    // Immediate, port, or resolved jump address.
	Target  string // Label the jump was written against, if any.
	LineNo  int    // Source line, if known.
}

// String returns the assembly language representation of the instruction.
func (ins Instruction) String() string {
	switch ins.Opcode.Operand() {
	case OPERAND_VALUE:
		return fmt.Sprintf("%v %d", ins.Opcode, ins.Operand)
	case OPERAND_ADDRESS:
		if len(ins.Target) != 0 {
			return fmt.Sprintf("%v %v(%d)", ins.Opcode, ins.Target, ins.Operand)
		}
		return fmt.Sprintf("%v %d", ins.Opcode, ins.Operand)
	}

	return ins.Opcode.String()
}
