package program

import (
	"fmt"
	"io"
	"opdemo/internal/demo"

	"gopkg.in/yaml.v3"
)

// Report is what a run computed. Fields of steps that did not run stay empty.
type Report struct {
	Ran        []string               `yaml:"ran"`
	Arithmetic *demo.ArithmeticResult `yaml:"arithmetic,omitempty"`
	Bitwise    *demo.BitwiseResult    `yaml:"bitwise,omitempty"`
	Evens      []int                  `yaml:"evens,omitempty"`
	Squares    []int                  `yaml:"squares,omitempty"`
}

// WriteYAML encodes r to w.
func (r *Report) WriteYAML(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(r); err != nil {
		return fmt.Errorf("failed to encode report: %w", err)
	}
	return enc.Close()
}
