package demo

// SquaresLen is the element count of Squares.
const SquaresLen = 10

// Squares is the fixed-size array filled by Memory.
type Squares [SquaresLen]int

// Memory zero-fills a Squares array and then stores i*i at every index i.
func Memory() Squares {
	var s Squares
	clear(s[:])
	for i := range s {
		s[i] = i * i
	}
	return s
}
