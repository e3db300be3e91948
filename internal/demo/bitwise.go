package demo

// BitwiseResult holds the results of Bitwise.
type BitwiseResult struct {
	And        int `yaml:"and" json:"and"`
	Or         int `yaml:"or" json:"or"`
	Xor        int `yaml:"xor" json:"xor"`
	ShiftLeft  int `yaml:"shift_left" json:"shift_left"`
	ShiftRight int `yaml:"shift_right" json:"shift_right"`
}

// Bitwise computes a&b, a|b, a^b, a<<shift and b>>shift.
func Bitwise(a, b int, shift uint) BitwiseResult {
	return BitwiseResult{
		And:        a & b,
		Or:         a | b,
		Xor:        a ^ b,
		ShiftLeft:  a << shift,
		ShiftRight: b >> shift,
	}
}
