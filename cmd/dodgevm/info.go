package main

import (
	"fmt"
	"maps"
	"slices"

	"github.com/ezrec/dodgevm/emulator"
)

type InfoCommand struct{}

var infoCommand InfoCommand

func (cmd *InfoCommand) Execute(args []string) (err error) {
	if len(args) != 0 {
		return fmt.Errorf("unknown arguments: %v", args)
	}

	prog, err := emulator.Demo()
	if err != nil {
		return
	}

	defines := maps.Collect(emulator.NewEmulator(prog).Defines())
	for _, key := range slices.Sorted(maps.Keys(defines)) {
		fmt.Printf("%-20s %v\n", key, defines[key])
	}

	return
}

func init() {
	flagsparser.AddCommand(
		"info",
		"List the machine constants",
		"Lists the opcodes, ports and limits of the machine.",
		&infoCommand,
	)
}
