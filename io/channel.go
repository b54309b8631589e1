// Package io provides the program loaders and trace sinks for the LS-8
// emulator: literal ROM images (Rom), .ls8 text programs (Ls8) and a
// textual instruction trace (TraceLog).
package io

// Loader supplies a program image, to be placed in memory at address 0.
type Loader interface {
	// Binary returns the program bytes, in address order.
	Binary() ([]uint8, error)
}
