package cpu

import (
	"fmt"
)

// Status is the state of a session.
type Status int

//go:generate go tool stringer -linecomment -type=Status
const (
	AWAITING_START = Status(0) // awaiting-start
	RUNNING        = Status(1) // running
	HALTED         = Status(2) // halted
	FAULTED        = Status(3) // faulted
)

// Compare is the result of the last CMP.
type Compare struct {
	Equal bool // Accumulator equalled Value.
	Value int  // Value compared against.
	Valid bool // Set once any CMP has executed.
}

// State is the register and flag state of one processor session.
type State struct {
	Pc          int     // Address of the next instruction to fetch.
	Accumulator int     // Last value read by IN.
	Compare     Compare // Last CMP result.
	Status      Status  // Session state.
	Ticks       int     // Instructions executed.
	Fault       error   // Set when Status is FAULTED.
}

// NewState returns the state of a processor after reset.
func NewState() State {
	return State{Pc: RESET_ADDRESS}
}

// Halt stops the session. A faulted session stays faulted.
func (vm *State) Halt() {
	if vm.Status == FAULTED {
		return
	}
	vm.Status = HALTED
}

// Done returns true if the session can no longer step.
func (vm State) Done() bool {
	return vm.Status == HALTED || vm.Status == FAULTED
}

// String returns the register state as a string.
func (vm State) String() (text string) {
	regs := []string{"pc", "acc", "cmp", "status", "ticks"}
	for _, reg := range regs {
		var strval string
		switch reg {
		case "pc":
			strval = fmt.Sprintf("%02d", vm.Pc)
		case "acc":
			strval = fmt.Sprintf("%d", vm.Accumulator)
		case "cmp":
			switch {
			case !vm.Compare.Valid:
				strval = "----"
			case vm.Compare.Equal:
				strval = fmt.Sprintf("eq %d", vm.Compare.Value)
			default:
				strval = fmt.Sprintf("ne %d", vm.Compare.Value)
			}
		case "status":
			strval = vm.Status.String()
		case "ticks":
			strval = fmt.Sprintf("%d", vm.Ticks)
		}
		text += fmt.Sprintf("% 6s: %v\n", reg, strval)
	}

	return
}
