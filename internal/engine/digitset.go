package engine

import "math/bits"

// DigitSet is a set of digits 1-9 packed into the low nine bits of a
// uint16. Bit d-1 represents digit d.
type DigitSet uint16

// AllDigits contains every digit 1-9.
const AllDigits DigitSet = 1<<Size - 1

// SetOf builds a DigitSet from explicit digits.
func SetOf(digits ...uint8) DigitSet {
	var s DigitSet
	for _, d := range digits {
		s |= 1 << (d - 1)
	}
	return s
}

// Has reports whether d is in the set.
func (s DigitSet) Has(d uint8) bool { return s&(1<<(d-1)) != 0 }

// Without returns the set with d removed.
func (s DigitSet) Without(d uint8) DigitSet { return s &^ (1 << (d - 1)) }

// Count returns the number of digits in the set.
func (s DigitSet) Count() int { return bits.OnesCount16(uint16(s)) }

// Sole returns the single member of a one-element set.
func (s DigitSet) Sole() (uint8, bool) {
	if s.Count() != 1 {
		return 0, false
	}
	return uint8(bits.TrailingZeros16(uint16(s))) + 1, true
}

// Digits returns the members in ascending order.
func (s DigitSet) Digits() []uint8 {
	out := make([]uint8, 0, s.Count())
	for r := s; r != 0; r &= r - 1 {
		out = append(out, uint8(bits.TrailingZeros16(uint16(r)))+1)
	}
	return out
}
