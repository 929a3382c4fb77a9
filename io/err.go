package io

import (
	"github.com/ezrec/dodgevm/translate"
)

var f = translate.From

// ErrTapeSyntax is returned for a tape line that is not a list of numbers.
type ErrTapeSyntax struct {
	LineNo int
	Word   string
}

func (err *ErrTapeSyntax) Error() string {
	return f("tape line %d: '%v' is not a number", err.LineNo, err.Word)
}
