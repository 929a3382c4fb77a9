package io

// Latch holds port values set by the host. Unset ports read as 0.
type Latch struct {
	Values map[int]int
}

var _ Ports = (*Latch)(nil)

// Set latches a value onto a port.
func (lc *Latch) Set(port int, value int) {
	if lc.Values == nil {
		lc.Values = make(map[int]int, 2)
	}
	lc.Values[port] = value
}

// Read returns the latched value of a port.
func (lc *Latch) Read(port int) int {
	return lc.Values[port]
}

// Reset clears all latched values.
func (lc *Latch) Reset() {
	clear(lc.Values)
}
