package cpu

import (
	"github.com/ezrec/dodgevm/translate"
)

var f = translate.From

var (
	// Engine errors
	ErrHalted        = translate.Error("halted")
	ErrHaltFault     = translate.Error("halt fault")
	ErrUnknownOpcode = translate.Error("unknown opcode")
	ErrNotRunning    = translate.Error("game not running")
	ErrInvariant     = translate.Error("engine invariant violated")

	// Load errors
	ErrOrgDuplicate      = translate.Error("ORG duplicated")
	ErrAddressConflict   = translate.Error("address conflict")
	ErrAddressInvalid    = translate.Error("address invalid")
	ErrLabelDuplicate    = translate.Error("label duplicated")
	ErrOperandMissing    = translate.Error("operand missing")
	ErrOperandUnexpected = translate.Error("operand unexpected")
)

// ErrLabelMissing is returned when a jump names a label that is never defined.
type ErrLabelMissing string

func (el ErrLabelMissing) Error() string {
	return f("label %v missing", string(el))
}

func (el ErrLabelMissing) Is(err error) (ok bool) {
	_, ok = err.(ErrLabelMissing)
	return
}

// ErrLoad locates a load error in the source records.
type ErrLoad struct {
	LineNo  int
	Address int
	Err     error
}

func (err *ErrLoad) Error() string {
	return f("line %d address %d: %v", err.LineNo, err.Address, err.Err)
}

func (err *ErrLoad) Unwrap() error {
	return err.Err
}

// opNone marks a fault with no instruction to blame.
const opNone = Opcode(-1)

// Fault is a fatal runtime error, reported with the offending address
// and opcode.
type Fault struct {
	Address int
	Opcode  Opcode
	Err     error
}

func (err *Fault) Error() string {
	if err.Opcode == opNone {
		return f("fault at %d: %v", err.Address, err.Err)
	}
	return f("fault at %d (%v): %v", err.Address, err.Opcode, err.Err)
}

func (err *Fault) Unwrap() error {
	return err.Err
}
