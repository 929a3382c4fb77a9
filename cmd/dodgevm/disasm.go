package main

import (
	"fmt"
	"os"

	"github.com/ezrec/dodgevm/image"
)

type DisasmCommand struct {
	ProgramOptions
}

var disasmCommand DisasmCommand

func (cmd *DisasmCommand) Execute(args []string) (err error) {
	if len(args) != 0 {
		return fmt.Errorf("unknown arguments: %v", args)
	}

	prog, err := cmd.Program()
	if err != nil {
		return
	}

	return image.List(os.Stdout, prog)
}

func init() {
	flagsparser.AddCommand(
		"disasm",
		"Disassemble a program",
		"Lists a program image (or the demo program) one instruction per line.",
		&disasmCommand,
	)
}
