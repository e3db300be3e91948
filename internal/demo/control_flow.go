package demo

import (
	"context"
	"fmt"
	"io"
)

// ControlFlow counts i from 0 up to (not including) n and writes every even
// i to w, one per line. It returns the values written, in order. ctx is
// checked on every iteration; on cancellation the values written so far are
// returned with ctx.Err() wrapped.
func ControlFlow(ctx context.Context, w io.Writer, n int) ([]int, error) {
	var printed []int
	for i := 0; i < n; i++ {
		if err := ctx.Err(); err != nil {
			return printed, fmt.Errorf("stopped at %d: %w", i, err)
		}
		if i%2 != 0 {
			continue
		}
		if _, err := fmt.Fprintf(w, "%d\n", i); err != nil {
			return printed, fmt.Errorf("write %d: %w", i, err)
		}
		printed = append(printed, i)
	}
	return printed, nil
}
