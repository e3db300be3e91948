// Package demo holds the five demonstration routines: arithmetic, bitwise,
// control flow, memory fill and output. Each routine works on its own locals
// and shares nothing with the others.
package demo
