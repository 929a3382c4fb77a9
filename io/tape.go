package io

import (
	"bufio"
	"io"
	"strconv"
	"strings"
)

// Tape replays recorded port values, one frame per line.
// Each line lists the values of ports 0, 1, ... separated by spaces;
// text after a ';' is a comment. Ports not listed read as 0.
type Tape struct {
	Input io.Reader

	scanner *bufio.Scanner
	values  []int
	lineNo  int
}

var _ Ports = (*Tape)(nil)

// Advance loads the next frame. It returns false at the end of the tape.
func (tc *Tape) Advance() (ok bool, err error) {
	if tc.scanner == nil {
		tc.scanner = bufio.NewScanner(tc.Input)
	}

	for tc.scanner.Scan() {
		tc.lineNo++
		line := strings.TrimSpace(strings.Split(tc.scanner.Text(), ";")[0])
		if len(line) == 0 {
			continue
		}

		words := strings.Fields(line)
		values := make([]int, len(words))
		for n, word := range words {
			values[n], err = strconv.Atoi(word)
			if err != nil {
				err = &ErrTapeSyntax{LineNo: tc.lineNo, Word: word}
				return
			}
		}
		tc.values = values
		ok = true
		return
	}

	err = tc.scanner.Err()
	return
}

// Read returns the value of a port in the current frame.
func (tc *Tape) Read(port int) int {
	if port < 0 || port >= len(tc.values) {
		return 0
	}
	return tc.values[port]
}

// LineNo returns the tape line of the current frame.
func (tc *Tape) LineNo() int {
	return tc.lineNo
}
