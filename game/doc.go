// Package game holds the dodge game state and the pure transformations
// the processor's game opcodes apply to it.
//
// Every mutator takes a State by value and returns the next State; none of
// them can observe the processor's control flow. Once GameOver is set no
// mutator changes the state again.
package game
