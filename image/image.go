// Package image reads and writes program images in the RAM listing format
// of the dodge hardware:
//
//	; comment
//	ADDRESS: WORD
//
// ADDRESS is decimal, WORD is a 9-bit hexadecimal instruction word
// holding a 4-bit opcode and a 5-bit operand.
package image

import (
	"fmt"
	"io"
	"strconv"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"

	"github.com/ezrec/dodgevm/cpu"
	"github.com/ezrec/dodgevm/translate"
)

const (
	OPCODE_BITS   = 4
	OPERAND_BITS  = 5
	OPERAND_MASK  = (1 << OPERAND_BITS) - 1
	WORD_MASK     = (1 << (OPCODE_BITS + OPERAND_BITS)) - 1
	ADDRESS_LIMIT = 1 << OPERAND_BITS // Addressable instructions.
)

var f = translate.From

var (
	ErrAddress = translate.Error("address out of range")
	ErrWord    = translate.Error("word out of range")
	ErrOperand = translate.Error("operand out of range")
)

// ErrLine locates a decode error in an image.
type ErrLine struct {
	LineNo int
	Err    error
}

func (err *ErrLine) Error() string {
	return f("image line %d: %v", err.LineNo, err.Err)
}

func (err *ErrLine) Unwrap() error {
	return err.Err
}

var imageLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Comment", Pattern: `;[^\n]*`},
	{Name: "Whitespace", Pattern: `\s+`},
	{Name: "Number", Pattern: `[0-9A-Fa-f]+`},
	{Name: "Punct", Pattern: `:`},
})

type imageFile struct {
	Lines []*imageLine `@@*`
}

type imageLine struct {
	Pos     lexer.Position
	Address string `@Number ":"`
	Word    string `@Number`
}

var imageParser = participle.MustBuild[imageFile](
	participle.Lexer(imageLexer),
	participle.Elide("Whitespace", "Comment"),
)

// Word encodes an instruction.
func Word(ins cpu.Instruction) (word uint16, err error) {
	if ins.Opcode < 0 || ins.Opcode > (WORD_MASK>>OPERAND_BITS) {
		err = ErrWord
		return
	}
	if ins.Operand < 0 || ins.Operand > OPERAND_MASK {
		err = ErrOperand
		return
	}

	word = uint16(ins.Opcode)<<OPERAND_BITS | uint16(ins.Operand)
	return
}

// Source decodes an instruction word.
func Source(word uint16) (src *cpu.Source, err error) {
	if word > WORD_MASK {
		err = ErrWord
		return
	}

	src = &cpu.Source{
		Opcode:  cpu.Opcode(word >> OPERAND_BITS),
		Operand: int(word & OPERAND_MASK),
	}

	// Stray operand bits on an operand-less opcode are left for the
	// loader to reject.
	src.Present = src.Operand != 0 || !src.Opcode.Known() || src.Opcode.Operand() != cpu.OPERAND_NONE

	return
}

// Records decodes an image into loader records.
func Records(filename string, r io.Reader) (records []cpu.Record, err error) {
	file, err := imageParser.Parse(filename, r)
	if err != nil {
		return
	}

	for _, line := range file.Lines {
		lineno := line.Pos.Line

		var addr int
		addr, err = strconv.Atoi(line.Address)
		if err != nil || addr < 0 || addr >= ADDRESS_LIMIT {
			err = &ErrLine{LineNo: lineno, Err: fmt.Errorf("%w: %v", ErrAddress, line.Address)}
			return
		}

		var word uint64
		word, err = strconv.ParseUint(line.Word, 16, 16)
		if err != nil {
			err = &ErrLine{LineNo: lineno, Err: fmt.Errorf("%w: %v", ErrWord, line.Word)}
			return
		}

		var src *cpu.Source
		src, err = Source(uint16(word))
		if err != nil {
			err = &ErrLine{LineNo: lineno, Err: fmt.Errorf("%w: %v", err, line.Word)}
			return
		}

		records = append(records, cpu.Record{
			LineNo: lineno,
			Org:    addr,
			HasOrg: true,
			Source: src,
		})
	}

	return
}

// Decode reads and loads an image.
func Decode(filename string, r io.Reader) (prog *cpu.Program, err error) {
	records, err := Records(filename, r)
	if err != nil {
		return
	}

	return cpu.Load(records)
}

// Encode writes a program as an image. Labels are written as comments.
func Encode(w io.Writer, prog *cpu.Program) (err error) {
	for addr, ins := range prog.Codes() {
		if addr >= ADDRESS_LIMIT {
			err = fmt.Errorf("%w: %d", ErrAddress, addr)
			return
		}

		var word uint16
		word, err = Word(ins)
		if err != nil {
			err = fmt.Errorf("address %d: %w", addr, err)
			return
		}

		for _, label := range prog.Debug(addr).Labels {
			_, err = fmt.Fprintf(w, "; %v:\n", label)
			if err != nil {
				return
			}
		}

		_, err = fmt.Fprintf(w, "%d: %03X\n", addr, word)
		if err != nil {
			return
		}
	}

	return
}

// List writes a disassembly listing of a program.
func List(w io.Writer, prog *cpu.Program) (err error) {
	for addr, ins := range prog.Codes() {
		label := ""
		if labels := prog.Debug(addr).Labels; len(labels) > 0 {
			label = labels[0] + ":"
		}

		text := ins.String()
		if ins.Opcode.Operand() == cpu.OPERAND_ADDRESS {
			// Name the jump target when the image lost the label.
			if targets := prog.Debug(ins.Operand).Labels; len(ins.Target) == 0 && len(targets) > 0 {
				text = fmt.Sprintf("%v %v(%d)", ins.Opcode, targets[0], ins.Operand)
			}
		}

		_, err = fmt.Fprintf(w, "%02d: %-8s%v\n", addr, label, text)
		if err != nil {
			return
		}
	}

	return
}
