package program

import (
	"context"
	"io"
	"opdemo/internal/demo"

	"go.uber.org/zap"
)

// Step names.
const (
	StepArithmetic  = "arithmetic"
	StepBitwise     = "bitwise"
	StepControlFlow = "control_flow"
	StepMemory      = "memory"
	StepOutput      = "output"
)

// DefaultSteps returns the five routines in their fixed order.
func DefaultSteps() []Step {
	return []Step{
		{
			Name:        StepArithmetic,
			Description: "sum, difference, product and quotient of two integers",
			Run: func(_ context.Context, env *Env) error {
				s := env.Settings
				res, err := demo.ArithmeticChecked(s.ArithmeticA, s.ArithmeticB)
				if err != nil {
					return err
				}
				env.Report.Arithmetic = &res
				return nil
			},
		},
		{
			Name:        StepBitwise,
			Description: "AND, OR, XOR and shifts of two byte values",
			Run: func(_ context.Context, env *Env) error {
				s := env.Settings
				res := demo.Bitwise(s.BitwiseA, s.BitwiseB, s.Shift)
				env.Report.Bitwise = &res
				return nil
			},
		},
		{
			Name:        StepControlFlow,
			Description: "print the even numbers below the loop limit",
			Run: func(ctx context.Context, env *Env) error {
				printed, err := demo.ControlFlow(ctx, env.Out, env.Settings.Limit)
				env.Report.Evens = printed
				return err
			},
		},
		{
			Name:        StepMemory,
			Description: "fill a ten-element array with squares",
			Run: func(_ context.Context, env *Env) error {
				sq := demo.Memory()
				env.Report.Squares = sq[:]
				env.Logger.Debug("array filled", zap.Int("len", len(sq)))
				return nil
			},
		},
		{
			Name:        StepOutput,
			Description: "write the greeting line",
			Run: func(_ context.Context, env *Env) error {
				return demo.Output(env.Out, env.Settings.Message)
			},
		},
	}
}

// Default is the stock program: every step, in order.
func Default(logger *zap.Logger) *Program {
	return New(DefaultSteps(), logger)
}

// Silent runs p with all routine output discarded and returns the report.
func Silent(ctx context.Context, p *Program, settings Settings) (*Report, error) {
	return p.Run(ctx, io.Discard, settings)
}
