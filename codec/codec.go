// Copyright 2020 Aleksandr Demakin. All rights reserved.

package codec

import (
	"math/big"

	mu "github.com/avdva/posit/internal/mathutil"
)

// Decode decodes an nbits-wide bit pattern.
// Any representation returned by Decode is encoded back to the same bits.
func Decode(bits uint64, env Env) (Rep, error) {
	if err := env.Validate(); err != nil {
		return Rep{}, err
	}
	nbits := env.NBits
	if mu.BinaryDigits(bits) > nbits {
		return Rep{}, InvalidField.New("bits %#x do not fit %d bits", bits, nbits)
	}
	switch bits {
	case 0:
		return Zero(env), nil
	case env.CInfBits():
		return CInf(env), nil
	}

	r := Rep{Env: env, Kind: KindNormal}
	if mu.Bit(bits, nbits-1) == 1 {
		r.Neg = true
		bits = negate(bits, nbits)
	}

	regime := mu.Bit(bits, nbits-2)
	run := mu.LeadingRun(bits, regime, nbits-2)
	if regime == 0 {
		r.K = -run
	} else {
		r.K = run - 1
	}

	// i is the most significant bit after the sign, the regime run and its terminator.
	i := nbits - 3 - run
	var consumed int
	for ; i >= 0 && consumed < env.ES; i-- {
		r.E = r.E<<1 | mu.Bit(bits, i)
		consumed++
	}
	r.E <<= uint(env.ES - consumed)

	r.H = mu.Max(0, i+1)
	r.F = new(big.Int)
	if r.H > 0 {
		r.F.SetUint64(mu.Bits(bits, 0, i))
	}
	return r, nil
}

// Encode encodes r into an nbits-wide bit pattern.
// Representations with more precision or range than the environment allows are
// rounded to the nearest pattern, ties to even. Encode never rounds a non-zero value
// to zero or cinf: too small values become minpos, too large ones become maxpos.
func Encode(r Rep) (uint64, error) {
	if err := r.validate(); err != nil {
		return 0, err
	}
	switch r.Kind {
	case KindZero:
		return 0, nil
	case KindCInf:
		return r.Env.CInfBits(), nil
	}

	var (
		b       = builder{n: r.Env.NBits - 1, maxPos: r.Env.MaxPosBits()}
		es      = r.Env.ES
		frac    = r.Frac()
		rounded bool
	)

	// regime
	if r.K >= 0 {
		if b.n >= r.K+1 {
			b.bits = mu.Mask(r.K + 1)
			b.n -= r.K + 1
			if b.n > 0 { // terminator
				b.bits <<= 1
				b.n--
			}
		} else {
			b.bits = mu.Mask(b.n)
			b.n = 0
			rounded = true
		}
	} else {
		b.bits = 1
		if b.n < -r.K+1 {
			rounded = true
		}
		b.n -= mu.Min(b.n, -r.K+1)
	}

	// exponent
	switch {
	case b.n >= es:
		b.append(r.E, es)
	case !rounded:
		m := es - b.n
		// the cut part of the exponent followed by the whole fraction.
		truncation := new(big.Int).SetUint64(r.E & mu.Mask(m))
		truncation.Lsh(truncation, uint(r.H)).Add(truncation, frac)
		tie := mu.Pow2(m + r.H - 1)
		b.append(r.E>>uint(m), b.n)
		b.round(truncation.Cmp(tie))
		rounded = true
	}

	// fraction
	switch {
	case b.n > r.H:
		b.append(frac.Uint64(), r.H)
		b.append(0, b.n)
	case !rounded:
		m := r.H - b.n
		kept := new(big.Int).Rsh(frac, uint(m))
		b.append(kept.Uint64(), b.n)
		if m > 0 {
			truncation := new(big.Int).Sub(frac, kept.Lsh(kept, uint(m)))
			b.round(truncation.Cmp(mu.Pow2(m - 1)))
		}
	}

	if r.Neg {
		return negate(b.bits, r.Env.NBits), nil
	}
	return b.bits, nil
}

// builder accumulates magnitude bits into a budget of n remaining bits.
type builder struct {
	bits   uint64
	n      int
	maxPos uint64
}

func (b *builder) append(v uint64, width int) {
	b.bits = b.bits<<uint(width) | v&mu.Mask(width)
	b.n -= width
}

// round applies round-to-nearest-even given the comparison of the cut part against
// a half unit. The result never goes past maxpos.
func (b *builder) round(cmpHalf int) {
	if b.bits >= b.maxPos {
		return
	}
	if cmpHalf > 0 || cmpHalf == 0 && b.bits&1 == 1 {
		b.bits++
	}
}

func negate(bits uint64, nbits int) uint64 {
	return (^bits + 1) & mu.Mask(nbits)
}
