package cpu

import (
	"log"
	"maps"
	"slices"
)

// Source is an instruction as produced by an assembler, before labels
// are resolved.
type Source struct {
	Opcode  Opcode
	Operand int    // Immediate, port, or absolute jump address.
	Target  string // Jump label; overrides Operand once resolved.
	Present bool   // Set if Operand was supplied.
}

// Record is a single line of assembler output. Any combination of the
// fields may be set; a record with none of them is ignored.
type Record struct {
	LineNo int
	Org    int     // Explicit address, if HasOrg.
	HasOrg bool    // Set for an ORG directive.
	Label  string  // Label defined at the current address.
	Source *Source // Instruction placed at the current address.
}

// Org makes an ORG directive record.
func Org(addr int) Record {
	return Record{Org: addr, HasOrg: true}
}

// Label makes a label definition record.
func Label(name string) Record {
	return Record{Label: name}
}

// Op makes an instruction record. Operands are optional.
func Op(op Opcode, operand ...int) Record {
	src := &Source{Opcode: op}
	if len(operand) > 0 {
		src.Operand = operand[0]
		src.Present = true
	}
	return Record{Source: src}
}

// Jump makes a jump instruction record against a label.
func Jump(op Opcode, label string) Record {
	return Record{Source: &Source{Opcode: op, Target: label}}
}

// Loader resolves assembler records into a Program.
type Loader struct {
	Verbose bool // If set, verbosely logs the loader actions.

	Label map[string]int // Map of labels to addresses.

	orgs  map[int]bool
	code  map[int]Instruction
	links map[int]string
}

// Load is a convenience wrapper around a fresh Loader.
func Load(records []Record) (prog *Program, err error) {
	ld := &Loader{}
	return ld.Load(records)
}

// Load assigns an address to every instruction, then links every jump
// label to its address.
func (ld *Loader) Load(records []Record) (prog *Program, err error) {
	var rec Record
	var ip int

	defer func() {
		if err != nil {
			err = &ErrLoad{LineNo: rec.LineNo, Address: ip, Err: err}
		}
	}()

	ld.Label = make(map[string]int, 16)
	ld.orgs = make(map[int]bool)
	ld.code = make(map[int]Instruction, len(records))
	ld.links = make(map[int]string)

	ip = RESET_ADDRESS
	for _, rec = range records {
		ip, err = ld.place(rec, ip)
		if err != nil {
			return
		}
	}

	// Final linking of jump labels.
	addrs := slices.Sorted(maps.Keys(ld.links))
	for _, ip = range addrs {
		label := ld.links[ip]
		ins := ld.code[ip]
		rec = Record{LineNo: ins.LineNo}

		target, ok := ld.Label[label]
		if !ok {
			err = ErrLabelMissing(label)
			return
		}
		ins.Operand = target
		ld.code[ip] = ins

		if ld.Verbose {
			log.Printf("loader: %02d: link %v -> %02d", ip, label, target)
		}
	}

	prog = &Program{
		Code:  maps.Clone(ld.code),
		Addrs: slices.Sorted(maps.Keys(ld.code)),
		Label: maps.Clone(ld.Label),
	}

	return
}

// place assigns a record to the current address, returning the address
// of the next record.
func (ld *Loader) place(rec Record, ip int) (next int, err error) {
	next = ip

	if rec.HasOrg {
		if rec.Org < 0 {
			err = ErrAddressInvalid
			return
		}
		if ld.orgs[rec.Org] {
			err = ErrOrgDuplicate
			return
		}
		ld.orgs[rec.Org] = true
		next = rec.Org
	}

	if len(rec.Label) != 0 {
		_, ok := ld.Label[rec.Label]
		if ok {
			err = ErrLabelDuplicate
			return
		}
		ld.Label[rec.Label] = next
	}

	src := rec.Source
	if src == nil {
		return
	}

	if _, ok := ld.code[next]; ok {
		err = ErrAddressConflict
		return
	}

	ins := Instruction{
		Opcode:  src.Opcode,
		Operand: src.Operand,
		LineNo:  rec.LineNo,
	}

	switch {
	case !src.Opcode.Known():
		// Loaded as-is; faults when executed.
	case src.Opcode.Operand() == OPERAND_NONE:
		if src.Present || len(src.Target) != 0 {
			err = ErrOperandUnexpected
			return
		}
	case src.Opcode.Operand() == OPERAND_VALUE:
		if len(src.Target) != 0 {
			err = ErrOperandUnexpected
			return
		}
		if !src.Present {
			err = ErrOperandMissing
			return
		}
	case len(src.Target) != 0:
		ins.Target = src.Target
		ld.links[next] = src.Target
	case src.Present:
		if src.Operand < 0 {
			err = ErrAddressInvalid
			return
		}
	default:
		err = ErrOperandMissing
		return
	}

	if ld.Verbose {
		log.Printf("loader: %02d: %v", next, ins)
	}

	ld.code[next] = ins
	next++

	return
}
