// Package program runs the demonstration routines in their fixed order and
// collects what each one computed.
package program

import (
	"context"
	"errors"
	"fmt"
	"io"

	"go.uber.org/zap"
)

// ErrUnknownStep is returned by Select for a name that is not a step.
var ErrUnknownStep = errors.New("unknown step")

// StepError wraps the failure of a single step.
type StepError struct {
	Step string
	Err  error
}

func (e *StepError) Error() string { return fmt.Sprintf("step %s: %v", e.Step, e.Err) }

func (e *StepError) Unwrap() error { return e.Err }

// Settings are the operands handed to the routines.
type Settings struct {
	ArithmeticA, ArithmeticB int
	BitwiseA, BitwiseB       int
	Shift                    uint
	Limit                    int
	Message                  string
}

// DefaultSettings reproduces the stock program.
func DefaultSettings() Settings {
	return Settings{
		ArithmeticA: 10,
		ArithmeticB: 20,
		BitwiseA:    0xF0,
		BitwiseB:    0x0F,
		Shift:       2,
		Limit:       10,
		Message:     "Hello, World!",
	}
}

// Env is what a step sees while it runs.
type Env struct {
	Out      io.Writer
	Logger   *zap.Logger
	Settings Settings
	Report   *Report
}

// Step is one named routine.
type Step struct {
	Name        string
	Description string
	Run         func(ctx context.Context, env *Env) error
}

// Program is an ordered list of steps.
type Program struct {
	steps  []Step
	logger *zap.Logger
}

// New returns a program running steps in the given order. A nil logger is
// replaced by a no-op one.
func New(steps []Step, logger *zap.Logger) *Program {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Program{steps: steps, logger: logger}
}

// Steps returns the steps in run order.
func (p *Program) Steps() []Step {
	out := make([]Step, len(p.steps))
	copy(out, p.steps)
	return out
}

// Select returns a program holding only the named steps, in this program's
// order. No names keeps every step.
func (p *Program) Select(names ...string) (*Program, error) {
	if len(names) == 0 {
		return p, nil
	}
	want := make(map[string]bool, len(names))
	for _, n := range names {
		want[n] = true
	}

	var selected []Step
	for _, s := range p.steps {
		if want[s.Name] {
			selected = append(selected, s)
			delete(want, s.Name)
		}
	}
	for _, n := range names {
		if want[n] {
			return nil, fmt.Errorf("%w: %s", ErrUnknownStep, n)
		}
	}
	return New(selected, p.logger), nil
}

// Run executes each step in order with out as standard output. It stops at
// the first failing step and checks ctx before every step and once after the
// last one, so a run that outlives its deadline is reported as failed.
func (p *Program) Run(ctx context.Context, out io.Writer, settings Settings) (*Report, error) {
	report := &Report{}
	env := &Env{Out: out, Logger: p.logger, Settings: settings, Report: report}

	for _, s := range p.steps {
		if err := ctx.Err(); err != nil {
			return report, fmt.Errorf("run cancelled before %s: %w", s.Name, err)
		}
		p.logger.Debug("step start", zap.String("step", s.Name))
		if err := s.Run(ctx, env); err != nil {
			p.logger.Error("step failed", zap.String("step", s.Name), zap.Error(err))
			return report, &StepError{Step: s.Name, Err: err}
		}
		report.Ran = append(report.Ran, s.Name)
		p.logger.Debug("step done", zap.String("step", s.Name))
	}
	if err := ctx.Err(); err != nil {
		return report, fmt.Errorf("run cancelled after last step: %w", err)
	}
	return report, nil
}
