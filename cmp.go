// Copyright 2020 Aleksandr Demakin. All rights reserved.

package posit

// Cmp compares p and other exactly, even if their environments differ.
// Returns -1 if p < other, 0 if p == other, 1 if p > other.
// ok is false if either side is cinf: cinf is unordered.
func (p Posit) Cmp(other Posit) (result int, ok bool) {
	if p.IsCInf() || other.IsCInf() {
		return 0, false
	}
	if env := p.Env(); env == other.Env() {
		// within an environment, posits are ordered like signed integers.
		return int64Cmp(signed(p.bits, env.NBits), signed(other.bits, env.NBits)), true
	}
	return p.point().Cmp(other.point()), true
}

func signed(bits uint64, nbits int) int64 {
	shift := uint(64 - nbits)
	return int64(bits<<shift) >> shift
}

func int64Cmp(a, b int64) int {
	switch {
	case a > b:
		return 1
	case a < b:
		return -1
	default:
		return 0
	}
}

// Eq returns true if p == other. cinf is not equal to anything, itself included.
func (p Posit) Eq(other Posit) bool {
	c, ok := p.Cmp(other)
	return ok && c == 0
}

// Ne returns true if p != other. It is false if either side is cinf.
func (p Posit) Ne(other Posit) bool {
	c, ok := p.Cmp(other)
	return ok && c != 0
}

// Lt returns true if p < other.
func (p Posit) Lt(other Posit) bool {
	c, ok := p.Cmp(other)
	return ok && c < 0
}

// Le returns true if p <= other.
func (p Posit) Le(other Posit) bool {
	c, ok := p.Cmp(other)
	return ok && c <= 0
}

// Gt returns true if p > other.
func (p Posit) Gt(other Posit) bool {
	c, ok := p.Cmp(other)
	return ok && c > 0
}

// Ge returns true if p >= other.
func (p Posit) Ge(other Posit) bool {
	c, ok := p.Cmp(other)
	return ok && c >= 0
}
