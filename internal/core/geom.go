// Package core provides the terminal-agnostic drawing primitives shared by the
// game and its front ends. It has no Bubble Tea dependency so rendering stays
// testable without a terminal.
package core

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}
