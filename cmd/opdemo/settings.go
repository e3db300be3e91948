package main

import (
	"opdemo/internal/config"
	"opdemo/internal/program"
)

func settingsFromConfig(c *config.Config) program.Settings {
	return program.Settings{
		ArithmeticA: c.Arithmetic.A,
		ArithmeticB: c.Arithmetic.B,
		BitwiseA:    c.Bitwise.A,
		BitwiseB:    c.Bitwise.B,
		Shift:       c.Bitwise.Shift,
		Limit:       c.ControlFlow.Limit,
		Message:     c.Output.Message,
	}
}
