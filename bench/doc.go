// Package bench is the sortbench experiment harness. It generates random
// inputs, times the sorts package algorithms and the dummy complexity
// routines per input size, and returns one Series of (size, elapsed) points
// per algorithm or complexity class.
//
// Algorithms and complexity classes are closed enums resolved when a Runner
// is built from a Config, so a sweep never meets an unknown name at run time.
//
// Sweeps run on their own goroutines. Each sweep builds its Series privately
// and hands it back to the Runner, which assembles the results in configured
// order.
package bench
