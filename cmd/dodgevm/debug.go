package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/alecthomas/repr"
	"github.com/chzyer/readline"

	"github.com/ezrec/dodgevm/cpu"
	"github.com/ezrec/dodgevm/emulator"
	"github.com/ezrec/dodgevm/image"
)

type DebugCommand struct {
	SessionOptions

	History string `long:"history" description:"Command history file" value-name:"FILE"`
}

var debugCommand DebugCommand

var errQuit = errors.New("quit")

// UNTIL_STEPS limits the steps of the until command.
const UNTIL_STEPS = 4096

var debugCommands = []string{
	"step", "s",
	"frame", "f",
	"until", "u",
	"set",
	"state",
	"regs", "r",
	"list", "l",
	"halt",
	"reset",
	"help", "h",
	"quit", "q",
}

const debugHelp = `Commands:
  step, s [N]        Execute N instructions (default 1)
  frame, f [N]       Run N frames (default 1)
  until, u OPCODE    Step until the next instruction is OPCODE
  set PORT VALUE     Set an input port
  state              Dump the game state
  regs, r            Show the processor state
  list, l            Disassemble the program
  halt               Halt the processor
  reset              Reset the session
  help, h            Show this help
  quit, q            Exit the debugger`

// debugger is an interactive session.
type debugger struct {
	emu *emulator.Emulator
	rl  *readline.Instance
}

func (cmd *DebugCommand) Execute(args []string) (err error) {
	if len(args) != 0 {
		return fmt.Errorf("unknown arguments: %v", args)
	}

	emu, err := cmd.Emulator()
	if err != nil {
		return
	}

	history := cmd.History
	if len(history) == 0 {
		history = filepath.Join(os.TempDir(), ".dodgevm_history")
	}

	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "dodgevm> ",
		HistoryFile:     history,
		HistoryLimit:    1000,
		AutoComplete:    readline.NewPrefixCompleter(completions()...),
		InterruptPrompt: "^C",
		EOFPrompt:       "quit",
	})
	if err != nil {
		return
	}
	defer rl.Close()

	dbg := &debugger{emu: emu, rl: rl}
	fmt.Fprintln(rl.Stdout(), "Type 'help' for available commands")

	for {
		var line string
		line, err = rl.Readline()
		if err != nil { // io.EOF, readline.ErrInterrupt
			return nil
		}

		err = dbg.exec(strings.Fields(line))
		if errors.Is(err, errQuit) {
			return nil
		}
		if err != nil {
			fmt.Fprintf(rl.Stdout(), "error: %v\n", err)
		}
	}
}

func completions() (items []readline.PrefixCompleterInterface) {
	for _, name := range debugCommands {
		items = append(items, readline.PcItem(name))
	}
	return
}

// count parses an optional repeat count.
func count(args []string) (n int, err error) {
	if len(args) < 2 {
		return 1, nil
	}

	n, err = strconv.Atoi(args[1])
	if err == nil && n < 1 {
		err = fmt.Errorf("count must be positive: %v", args[1])
	}
	return
}

func (dbg *debugger) exec(args []string) (err error) {
	if len(args) == 0 {
		return
	}

	emu := dbg.emu
	out := dbg.rl.Stdout()

	switch args[0] {
	case "help", "h":
		fmt.Fprintln(out, debugHelp)
	case "quit", "q":
		err = errQuit
	case "step", "s":
		var n int
		n, err = count(args)
		if err != nil {
			return
		}
		for range n {
			fmt.Fprintf(out, "%02d: %v\n", emu.Ip(), emu.Code())
			var done bool
			done, err = emu.Tick()
			if done || err != nil {
				break
			}
		}
		fmt.Fprintln(out, emu.Snapshot())
	case "frame", "f":
		var n int
		n, err = count(args)
		if err != nil {
			return
		}
		for range n {
			var steps int
			var done bool
			steps, done, err = emu.Frame()
			fmt.Fprintf(out, "%3d steps, %v\n", steps, emu.Snapshot())
			if done || err != nil {
				break
			}
		}
	case "until", "u":
		if len(args) != 2 {
			return fmt.Errorf("usage: until OPCODE")
		}
		op, ok := cpu.ParseOpcode(strings.ToUpper(args[1]))
		if !ok {
			return fmt.Errorf("unknown opcode '%v'", args[1])
		}
		err = dbg.until(op)
	case "set":
		if len(args) != 3 {
			return fmt.Errorf("usage: set PORT VALUE")
		}
		var port, value int
		port, err = strconv.Atoi(args[1])
		if err != nil {
			return
		}
		value, err = strconv.Atoi(args[2])
		if err != nil {
			return
		}
		emu.Latch.Set(port, value)
	case "state":
		fmt.Fprintln(out, repr.String(emu.Snapshot(), repr.Indent("  ")))
	case "regs", "r":
		fmt.Fprint(out, emu.Vm.String())
	case "list", "l":
		err = image.List(out, emu.Program)
	case "halt":
		emu.Stop()
	case "reset":
		emu.Reset()
		emu.Latch.Reset()
	default:
		err = fmt.Errorf("unknown command '%v', try 'help'", args[0])
	}

	return
}

// until steps to the next instruction with an opcode, giving up after
// UNTIL_STEPS steps.
func (dbg *debugger) until(op cpu.Opcode) (err error) {
	emu := dbg.emu
	out := dbg.rl.Stdout()

	for steps := 0; steps < UNTIL_STEPS; steps++ {
		var done bool
		done, err = emu.Tick()
		if done || err != nil {
			return
		}
		if ins, ok := emu.Program.Fetch(emu.Ip()); ok && ins.Opcode == op {
			fmt.Fprintf(out, "%02d: %v (%d steps)\n", emu.Ip(), ins, steps+1)
			return
		}
	}

	return fmt.Errorf("no %v within %d steps", op, UNTIL_STEPS)
}

func init() {
	flagsparser.AddCommand(
		"debug",
		"Debug a program",
		"Steps a program interactively, with the input ports set by hand.",
		&debugCommand,
	)
}
