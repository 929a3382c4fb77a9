// Package cpu implements the dodge game processor: its program store,
// label resolver and the fetch-decode-execute engine.
//
// The processor has a program counter over a sparse address space, a
// single accumulator loaded by IN, and a compare flag set by CMP and
// consumed by JEQ. The remaining opcodes act on the game state, which the
// engine owns only for the duration of a Step.
package cpu
