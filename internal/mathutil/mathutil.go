package mathutil

import (
	"math"
	"math/big"
	"math/bits"
	"unsafe"
)

const bitsInWord = int(8 * unsafe.Sizeof(uint64(0)))

// Mask returns a value with n lowest bits set.
// Returns 0 for n <= 0, and all ones for n >= 64.
func Mask(n int) uint64 {
	switch {
	case n <= 0:
		return 0
	case n >= bitsInWord:
		return math.MaxUint64
	default:
		return 1<<uint(n) - 1
	}
}

// Bits returns bits lo..hi of v, inclusive. Bit 0 is the least significant one.
func Bits(v uint64, lo, hi int) uint64 {
	if lo < 0 || lo > hi {
		panic("mathutil: bad bit range")
	}
	if lo >= bitsInWord {
		return 0
	}
	return v >> uint(lo) & Mask(hi-lo+1)
}

// Bit returns i-th bit of v.
func Bit(v uint64, i int) uint64 {
	return Bits(v, i, i)
}

// LeadingRun counts consecutive bits equal to b, starting at bit 'from' and moving
// towards bit 0. It stops at the first mismatch.
func LeadingRun(v, b uint64, from int) int {
	if from < 0 {
		panic("mathutil: negative start bit")
	}
	var run int
	for i := from; i >= 0 && Bit(v, i) == b&1; i-- {
		run++
	}
	return run
}

// BinaryDigits returns the number of bits needed to represent 'value'.
func BinaryDigits(value uint64) int {
	return bitsInWord - bits.LeadingZeros64(value)
}

// FloorDiv returns floor(a / b) for b > 0.
func FloorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && a < 0 {
		q--
	}
	return q
}

// FloorMod returns a non-negative remainder of a / b for b > 0.
func FloorMod(a, b int) int {
	return a - FloorDiv(a, b)*b
}

// Pow2 returns 2^n as a new big.Int.
func Pow2(n int) *big.Int {
	return new(big.Int).Lsh(big.NewInt(1), uint(n))
}

// Max returns the largest of its arguments.
func Max(a int, others ...int) int {
	for _, o := range others {
		if o > a {
			a = o
		}
	}
	return a
}

// Min returns the smallest of its arguments.
func Min(a int, others ...int) int {
	for _, o := range others {
		if o < a {
			a = o
		}
	}
	return a
}
