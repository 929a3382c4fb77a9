// Package io provides the input port adapters of the dodge processor.
//
// A port adapter maps a port number to the value the input device
// currently presents on it. Adapters know nothing about the processor;
// debouncing and device polling belong to whoever feeds them.
package io

import (
	"fmt"
	"iter"
	"maps"
)

// Conventional ports and their values.
const (
	PORT_START = 0 // Start button: 0 or 1.
	PORT_MOVE  = 1 // Movement control: one of MOVE_*.

	MOVE_NONE = 0
	MOVE_UP   = 1
	MOVE_DOWN = 2
)

var _io_defines = map[string]string{
	"PORT_START": fmt.Sprintf("%v", PORT_START),
	"PORT_MOVE":  fmt.Sprintf("%v", PORT_MOVE),
	"MOVE_NONE":  fmt.Sprintf("%v", MOVE_NONE),
	"MOVE_UP":    fmt.Sprintf("%v", MOVE_UP),
	"MOVE_DOWN":  fmt.Sprintf("%v", MOVE_DOWN),
}

// Defines returns an iter of the port defines.
func Defines() iter.Seq2[string, string] {
	return maps.All(_io_defines)
}

// Ports is the interface of an input port adapter.
type Ports interface {
	// Read returns the current value of a port.
	Read(port int) int
}

// PortsFunc adapts a function to Ports.
type PortsFunc func(port int) int

func (fn PortsFunc) Read(port int) int {
	return fn(port)
}
