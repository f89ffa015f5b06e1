// Copyright 2020 Aleksandr Demakin. All rights reserved.

package codec

import (
	"fmt"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fields struct {
	neg  bool
	k    int
	e    uint64
	f    uint64
	h    int
	kind Kind
}

func fieldsOf(r Rep) fields {
	return fields{neg: r.Neg, k: r.K, e: r.E, f: r.Frac().Uint64(), h: r.H, kind: r.Kind}
}

func normal(env Env, neg bool, k int, e uint64, f int64, h int) Rep {
	return Rep{Env: env, Kind: KindNormal, Neg: neg, K: k, E: e, F: big.NewInt(f), H: h}
}

func TestDecodeSpecial(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		bits uint64
		env  Env
		kind Kind
	}{
		{0, Env{8, 1}, KindZero},
		{0x00AC, Env{16, 2}, KindNormal},
		{0x8000, Env{16, 3}, KindCInf},
		{0x400000, Env{23, 1}, KindCInf},
		{0x60000, Env{19, 1}, KindNormal},
		{0x0022, Env{6, 0}, KindNormal},
		{1 << 63, Env{64, 2}, KindCInf},
		{0, Env{64, 16}, KindZero},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			r, err := Decode(test.bits, test.env)
			if a.NoError(err) {
				a.Equal(test.kind, r.Kind)
				a.Equal(test.env, r.Env)
			}
		})
	}
}

func TestDecodeNormal(t *testing.T) {
	a := assert.New(t)
	env := Env{6, 2}
	tests := []struct {
		bits uint64
		f    fields
	}{
		{0x25, fields{neg: true, k: 1, e: 3, f: 0, h: 0, kind: KindNormal}},
		{0x09, fields{neg: false, k: -1, e: 0, f: 1, h: 1, kind: KindNormal}},
		{0x15, fields{neg: false, k: 0, e: 2, f: 1, h: 1, kind: KindNormal}},
		{0x11, fields{neg: false, k: 0, e: 0, f: 1, h: 1, kind: KindNormal}},
		{0x1F, fields{neg: false, k: 4, e: 0, f: 0, h: 0, kind: KindNormal}},
		{0x01, fields{neg: false, k: -4, e: 0, f: 0, h: 0, kind: KindNormal}},
		{0x3F, fields{neg: true, k: -4, e: 0, f: 0, h: 0, kind: KindNormal}},
		// the exponent is cut by the end of the word: its missing low bits are zeros.
		{0x1D, fields{neg: false, k: 2, e: 2, f: 0, h: 0, kind: KindNormal}},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			r, err := Decode(test.bits, env)
			if a.NoError(err) {
				a.Equal(test.f, fieldsOf(r))
			}
		})
	}
}

func TestDecodeErrors(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		bits uint64
		env  Env
	}{
		{0x40, Env{6, 2}},
		{0, Env{1, 2}},
		{0, Env{65, 2}},
		{0, Env{8, -1}},
		{0, Env{8, MaxES + 1}},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			_, err := Decode(test.bits, test.env)
			a.Error(err)
			a.True(InvalidField.Has(err))
		})
	}
}

func TestEncodeSpecial(t *testing.T) {
	a := assert.New(t)
	zero := Zero(Env{6, 2})
	zero.Neg, zero.K, zero.E = true, 1, 3
	bits, err := Encode(zero)
	a.NoError(err)
	a.Equal(uint64(0), bits)

	bits, err = Encode(CInf(Env{10, 3}))
	a.NoError(err)
	a.Equal(uint64(0x0200), bits)

	bits, err = Encode(normal(Env{10, 3}, true, 1, 0, 0, 0))
	a.NoError(err)
	a.NotEqual(uint64(0x0200), bits)
}

func TestEncode(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		r    Rep
		bits uint64
	}{
		{normal(Env{6, 2}, true, 1, 3, 0, 0), 0x25},
		{normal(Env{6, 2}, false, -1, 0, 1, 1), 0x09},
		{normal(Env{6, 2}, false, 0, 2, 1, 1), 0x15},
		// fraction rounding: 13/8, 14/8 (tie, to even), 15/8.
		{normal(Env{6, 2}, false, 0, 0, 0b101, 3), 0x11},
		{normal(Env{6, 2}, false, 0, 0, 0b110, 3), 0x12},
		{normal(Env{6, 2}, false, 0, 0, 0b111, 3), 0x12},
		// 5/4 is a tie between 1 and 3/2, even pattern is 1.
		{normal(Env{6, 2}, false, 0, 0, 0b01, 2), 0x10},
		// exponent rounding: 8 lies halfway between 4 and 16 in exponent space.
		{normal(Env{4, 2}, false, 0, 3, 0, 0), 0x6},
		{normal(Env{4, 2}, false, 0, 2, 0, 0), 0x5},
		{normal(Env{4, 2}, false, 0, 2, 1, 1), 0x5},
		{normal(Env{4, 2}, false, 0, 3, 1, 1), 0x6},
		// saturation.
		{normal(Env{6, 2}, false, 10, 0, 0, 0), 0x1F},
		{normal(Env{6, 2}, true, 10, 0, 0, 0), 0x21},
		{normal(Env{6, 2}, false, -10, 3, 5, 4), 0x01},
		{normal(Env{6, 2}, true, -10, 0, 0, 0), 0x3F},
		{normal(Env{6, 2}, false, 4, 3, 0, 0), 0x1F},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			bits, err := Encode(test.r)
			if a.NoError(err, test.r.GoString()) {
				a.Equal(test.bits, bits, test.r.GoString())
			}
		})
	}
}

func TestEncodeErrors(t *testing.T) {
	a := assert.New(t)
	env := Env{6, 2}
	tests := []Rep{
		normal(env, false, 0, 4, 0, 0),
		normal(env, false, 0, 0, 2, 1),
		normal(env, false, 0, 0, -1, 1),
		normal(env, false, 0, 0, 0, -1),
		{Env: env, Kind: Kind(7)},
		normal(Env{1, 0}, false, 0, 0, 0, 0),
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			_, err := Encode(test)
			a.Error(err)
			a.True(InvalidField.Has(err))
		})
	}
}

func TestRoundTrip(t *testing.T) {
	for nbits := MinNBits; nbits <= 8; nbits++ {
		for es := 0; es <= 7; es++ {
			env := Env{nbits, es}
			t.Run(env.String(), func(t *testing.T) {
				for bits := uint64(0); bits < 1<<uint(nbits); bits++ {
					r, err := Decode(bits, env)
					require.NoError(t, err)
					encoded, err := Encode(r)
					require.NoError(t, err)
					require.Equal(t, bits, encoded, "%#v", r)
				}
			})
		}
	}
}

func TestRoundTripWide(t *testing.T) {
	a := assert.New(t)
	envs := []Env{{16, 1}, {32, 2}, {64, 3}, {64, 0}, {64, MaxES}}
	patterns := []uint64{1, 2, 3, 0x5A5A5A5A5A5A5A5A, 0x0123456789ABCDEF, 0xFFFFFFFFFFFFFFFF, 0x7FFF, 0x8001}
	for _, env := range envs {
		for _, p := range patterns {
			bits := p & (1<<uint(env.NBits-1)<<1 - 1)
			if env.NBits == 64 {
				bits = p
			}
			r, err := Decode(bits, env)
			a.NoError(err)
			encoded, err := Encode(r)
			a.NoError(err)
			a.Equal(bits, encoded, "%v %#x", env, bits)
		}
	}
}

func TestSpecialPatterns(t *testing.T) {
	a := assert.New(t)
	for nbits := MinNBits; nbits <= MaxNBits; nbits++ {
		for es := 0; es <= 4; es++ {
			env := Env{nbits, es}
			r, err := Decode(0, env)
			a.NoError(err)
			a.Equal(KindZero, r.Kind)
			r, err = Decode(env.CInfBits(), env)
			a.NoError(err)
			a.Equal(KindCInf, r.Kind)
		}
	}
}

func TestRepHelpers(t *testing.T) {
	a := assert.New(t)
	r := normal(Env{6, 2}, false, -1, 2, 1, 1)
	a.Equal(-2, r.Scale())
	a.True(r.WithNeg(true).Neg)
	a.False(r.Neg)
	a.Equal(KindZero, Zero(Env{6, 2}).WithNeg(true).Kind)
	a.False(Zero(Env{6, 2}).WithNeg(true).Neg)
	a.Equal("{s:0 k:-1 e:2 f:1 h:1 env:(6,2)}", r.GoString())
	a.Equal("{cinf env:(6,2)}", CInf(Env{6, 2}).GoString())
	a.Equal(uint64(0x1F), Env{6, 2}.MaxPosBits())
	a.Equal(16, Env{6, 4}.Useed())
	a.Equal("Kind(9)", Kind(9).String())
}
