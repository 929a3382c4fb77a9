package main

import (
	"fmt"
	"os"

	"github.com/ezrec/dodgevm/image"
)

type EncodeCommand struct {
	ProgramOptions

	Output string `short:"o" long:"output" description:"Image file to write ('-' for stdout)" default:"-" value-name:"FILE"`
}

var encodeCommand EncodeCommand

func (cmd *EncodeCommand) Execute(args []string) (err error) {
	if len(args) != 0 {
		return fmt.Errorf("unknown arguments: %v", args)
	}

	prog, err := cmd.Program()
	if err != nil {
		return
	}

	if cmd.Output == "-" {
		return image.Encode(os.Stdout, prog)
	}

	ouf, err := os.Create(cmd.Output)
	if err != nil {
		return
	}

	err = image.Encode(ouf, prog)
	if cerr := ouf.Close(); err == nil {
		err = cerr
	}

	return
}

func init() {
	flagsparser.AddCommand(
		"encode",
		"Write a program image",
		"Writes a program (by default the demo program) in the RAM image format.",
		&encodeCommand,
	)
}
