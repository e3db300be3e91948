package demo

import "errors"

// ErrDivisionByZero is returned by ArithmeticChecked when b is zero.
var ErrDivisionByZero = errors.New("division by zero")

// ArithmeticResult holds the four results of Arithmetic.
type ArithmeticResult struct {
	Sum        int `yaml:"sum" json:"sum"`
	Difference int `yaml:"difference" json:"difference"`
	Product    int `yaml:"product" json:"product"`
	Quotient   int `yaml:"quotient" json:"quotient"`
}

// Arithmetic computes a+b, a-b, a*b and a/b. The quotient truncates toward
// zero. b must not be zero; use ArithmeticChecked for untrusted operands.
func Arithmetic(a, b int) ArithmeticResult {
	return ArithmeticResult{
		Sum:        a + b,
		Difference: a - b,
		Product:    a * b,
		Quotient:   a / b,
	}
}

// ArithmeticChecked is Arithmetic with the zero divisor rejected up front.
func ArithmeticChecked(a, b int) (ArithmeticResult, error) {
	if b == 0 {
		return ArithmeticResult{}, ErrDivisionByZero
	}
	return Arithmetic(a, b), nil
}
