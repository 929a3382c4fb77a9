package cpu

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"

	"github.com/ezrec/dodgevm/game"
	"github.com/ezrec/dodgevm/translate"
)

// dodgeRecords is the reference game loop.
func dodgeRecords() []Record {
	return []Record{
		Org(0),
		Label("WAIT"), Op(OP_IN, 0), // 0
		Op(OP_CMP, 1),        // 1
		Jump(OP_JEQ, "GO"),   // 2
		Jump(OP_JMP, "WAIT"), // 3
		Org(8),
		Label("GO"), Op(OP_START_GAME), // 8
		Label("LOOP"), Op(OP_IN, 1), // 9
		Op(OP_CMP, 1),         // 10
		Jump(OP_JEQ, "UP"),    // 11
		Op(OP_CMP, 2),         // 12
		Jump(OP_JEQ, "DOWN"),  // 13
		Jump(OP_JMP, "FRAME"), // 14
		Org(16),
		Label("UP"), Op(OP_MOVE_UP), // 16
		Jump(OP_JMP, "FRAME"),           // 17
		Label("DOWN"), Op(OP_MOVE_DOWN), // 18
		Label("FRAME"), Op(OP_SPAWN_OBSTACLE), // 19
		Op(OP_SCORE_INCREMENT), // 20
		Jump(OP_JMP, "LOOP"),   // 21
	}
}

func TestLoad(t *testing.T) {
	assert := assert.New(t)

	prog, err := Load(dodgeRecords())
	require.NoError(t, err)

	assert.Equal([]int{0, 1, 2, 3, 8, 9, 10, 11, 12, 13, 14, 16, 17, 18, 19, 20, 21}, prog.Addrs)
	assert.Equal(map[string]int{
		"WAIT": 0, "GO": 8, "LOOP": 9, "UP": 16, "DOWN": 18, "FRAME": 19,
	}, prog.Label)

	ins, ok := prog.Fetch(2)
	assert.True(ok)
	assert.Equal(Instruction{Opcode: OP_JEQ, Operand: 8, Target: "GO"}, ins)

	ins, _ = prog.Fetch(21)
	assert.Equal(9, ins.Operand)

	ins, _ = prog.Fetch(14)
	assert.Equal(19, ins.Operand)
}

func TestLoad_Empty(t *testing.T) {
	assert := assert.New(t)

	prog, err := Load(nil)
	assert.NoError(err)
	assert.Equal(0, prog.Len())
	assert.Empty(prog.Label)
}

func TestLoad_Errors(t *testing.T) {
	assert := assert.New(t)

	table := []struct {
		name    string
		records []Record
		err     error
		lineNo  int
	}{
		{"unresolved", []Record{Op(OP_IN, 0), {LineNo: 2, Source: &Source{Opcode: OP_JMP, Target: "NOWHERE"}}},
			ErrLabelMissing("NOWHERE"), 2},
		{"org-duplicate", []Record{Org(4), Op(OP_NOP), {LineNo: 3, Org: 4, HasOrg: true}},
			ErrOrgDuplicate, 3},
		{"address-conflict", []Record{Org(4), Op(OP_NOP), Op(OP_NOP), Org(5), {LineNo: 5, Source: &Source{Opcode: OP_NOP}}},
			ErrAddressConflict, 5},
		{"address-conflict-wrap", []Record{Op(OP_NOP), Op(OP_NOP), Org(1), Op(OP_NOP)},
			ErrAddressConflict, 0},
		{"org-negative", []Record{Org(-1)}, ErrAddressInvalid, 0},
		{"jump-negative", []Record{Op(OP_JMP, -4)}, ErrAddressInvalid, 0},
		{"label-duplicate", []Record{Label("A"), Op(OP_NOP), Label("A"), Op(OP_NOP)},
			ErrLabelDuplicate, 0},
		{"operand-missing", []Record{Op(OP_CMP)}, ErrOperandMissing, 0},
		{"jump-missing", []Record{Op(OP_JEQ)}, ErrOperandMissing, 0},
		{"operand-unexpected", []Record{Op(OP_MOVE_UP, 1)}, ErrOperandUnexpected, 0},
		{"operand-label", []Record{Label("X"), Jump(OP_IN, "X")}, ErrOperandUnexpected, 0},
	}

	for _, entry := range table {
		prog, err := Load(entry.records)
		assert.Nil(prog, entry.name)
		assert.ErrorIs(err, entry.err, entry.name)

		var le *ErrLoad
		if assert.ErrorAs(err, &le, entry.name) {
			assert.Equal(entry.lineNo, le.LineNo, entry.name)
		}
	}
}

func TestLoad_UnresolvedIsLabelMissing(t *testing.T) {
	assert := assert.New(t)

	defer translate.SetLanguage(translate.Language())
	translate.SetLanguage(language.AmericanEnglish)

	_, err := Load([]Record{Jump(OP_JMP, "A"), Label("B"), Op(OP_NOP)})

	var missing ErrLabelMissing
	assert.True(errors.As(err, &missing))
	assert.Equal(ErrLabelMissing("A"), missing)
	assert.Contains(err.Error(), "label A missing")
}

func TestLoad_UnknownOpcode(t *testing.T) {
	assert := assert.New(t)

	// Reserved encodings load, and fault only when executed.
	prog, err := Load([]Record{Op(Opcode(8), 3), Op(Opcode(15))})
	assert.NoError(err)
	ins, ok := prog.Fetch(0)
	assert.True(ok)
	assert.Equal(Opcode(8), ins.Opcode)
	assert.Equal(3, ins.Operand)
}

// A label may name an empty address, so a loaded jump can resolve outside
// the defined instructions. Such a program loads; the jump halt-faults
// when taken.
func TestLoad_TrailingLabel(t *testing.T) {
	assert := assert.New(t)

	prog, err := Load([]Record{Jump(OP_JMP, "END"), Op(OP_NOP), Label("END")})
	assert.NoError(err)
	assert.Equal(2, prog.Label["END"])
	_, ok := prog.Fetch(2)
	assert.False(ok)

	cpu := NewCpu(prog, nil, nil)
	vm, _, err := cpu.Step(NewState(), game.State{})
	assert.NoError(err)
	assert.Equal(2, vm.Pc)
	_, _, err = cpu.Step(vm, game.State{})
	assert.ErrorIs(err, ErrHaltFault)
}

func TestLoad_Deterministic(t *testing.T) {
	assert := assert.New(t)

	first, err := Load(dodgeRecords())
	assert.NoError(err)

	for range 8 {
		again, err := Load(dodgeRecords())
		assert.NoError(err)
		assert.Equal(first, again)
	}

	// Reusing a loader starts from a clean slate.
	ld := &Loader{}
	_, err = ld.Load([]Record{Label("OLD"), Op(OP_NOP)})
	assert.NoError(err)
	again, err := ld.Load(dodgeRecords())
	assert.NoError(err)
	assert.Equal(first, again)
}

// randomRecords builds a program in which every jump names a label that
// is defined on an instruction.
func randomRecords(rng *rand.Rand) (records []Record, labels []string) {
	count := 1 + rng.IntN(24)

	addr := 0
	for n := range count {
		if rng.IntN(4) == 0 {
			addr += 1 + rng.IntN(8)
			records = append(records, Org(addr))
		}
		label := fmt.Sprintf("L%d", n)
		labels = append(labels, label)
		records = append(records, Label(label))
		addr++
		records = append(records, Record{Source: &Source{}})
	}

	simple := []Opcode{OP_NOP, OP_START_GAME, OP_SPAWN_OBSTACLE, OP_SCORE_INCREMENT, OP_MOVE_UP, OP_MOVE_DOWN}
	for _, rec := range records {
		if rec.Source == nil {
			continue
		}
		switch rng.IntN(4) {
		case 0:
			*rec.Source = Source{Opcode: OP_JMP, Target: labels[rng.IntN(len(labels))]}
		case 1:
			*rec.Source = Source{Opcode: OP_JEQ, Target: labels[rng.IntN(len(labels))]}
		case 2:
			*rec.Source = Source{Opcode: OP_CMP, Operand: rng.IntN(4), Present: true}
		default:
			*rec.Source = Source{Opcode: simple[rng.IntN(len(simple))]}
		}
	}

	return
}

func TestLoad_JumpsResolveToInstructions(t *testing.T) {
	assert := assert.New(t)

	rng := rand.New(rand.NewPCG(1, 2))

	for range 200 {
		records, _ := randomRecords(rng)
		prog, err := Load(records)
		if !assert.NoError(err) {
			continue
		}

		for addr, ins := range prog.Codes() {
			if ins.Opcode != OP_JMP && ins.Opcode != OP_JEQ {
				continue
			}
			_, ok := prog.Fetch(ins.Operand)
			assert.True(ok, "jump at %d to %d", addr, ins.Operand)
			assert.Equal(prog.Label[ins.Target], ins.Operand)
		}

		again, err := Load(records)
		assert.NoError(err)
		assert.Equal(prog, again)
	}
}

func TestLoad_UndefinedLabelAlwaysFails(t *testing.T) {
	assert := assert.New(t)

	rng := rand.New(rand.NewPCG(3, 4))

	for range 200 {
		records, _ := randomRecords(rng)
		at := rng.IntN(len(records) + 1)
		bad := Jump(OP_JEQ, "UNDEFINED")
		records = append(records[:at], append([]Record{bad}, records[at:]...)...)

		_, err := Load(records)
		assert.ErrorIs(err, ErrLabelMissing("UNDEFINED"))
	}
}
