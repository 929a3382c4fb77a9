package cpu

import (
	"iter"
	"slices"
)

const (
	RESET_ADDRESS = 0 // Program counter after reset.
)

// Program is a loaded, sparse instruction store.
type Program struct {
	Code  map[int]Instruction // Instructions by address.
	Addrs []int               // Defined addresses, ascending.
	Label map[string]int      // Resolved labels, kept for debugging.
}

// Debug describes the instruction at an address.
type Debug struct {
	*Instruction
	Address int
	Labels  []string
}

// Len returns the number of instructions in the program.
func (prog *Program) Len() int {
	return len(prog.Addrs)
}

// Fetch returns the instruction at an address.
func (prog *Program) Fetch(addr int) (ins Instruction, ok bool) {
	ins, ok = prog.Code[addr]
	return
}

// Next returns the next defined address above addr.
// If there is none, addr+1 is returned, which is never defined.
func (prog *Program) Next(addr int) int {
	n, found := slices.BinarySearch(prog.Addrs, addr)
	if found {
		n++
	}
	if n < len(prog.Addrs) {
		return prog.Addrs[n]
	}

	last := addr
	if len(prog.Addrs) > 0 {
		last = max(addr, prog.Addrs[len(prog.Addrs)-1])
	}
	return last + 1
}

// Codes iterates over the program in address order.
func (prog *Program) Codes() iter.Seq2[int, Instruction] {
	return func(yield func(addr int, ins Instruction) bool) {
		for _, addr := range prog.Addrs {
			if !yield(addr, prog.Code[addr]) {
				return
			}
		}
	}
}

// Debug returns the instruction and labels at an address.
func (prog *Program) Debug(addr int) (dbg Debug) {
	dbg.Address = addr
	ins, ok := prog.Code[addr]
	if ok {
		dbg.Instruction = &ins
	}

	for label, at := range prog.Label {
		if at == addr {
			dbg.Labels = append(dbg.Labels, label)
		}
	}
	slices.Sort(dbg.Labels)

	return
}

// LineNo returns the source line for an address, or 0 if unknown.
func (prog *Program) LineNo(addr int) int {
	return prog.Code[addr].LineNo
}
