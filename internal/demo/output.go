package demo

import (
	"fmt"
	"io"
)

// Greeting is the line written by the default output routine.
const Greeting = "Hello, World!"

// Output writes line to w followed by a newline.
func Output(w io.Writer, line string) error {
	if _, err := fmt.Fprintln(w, line); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	return nil
}
