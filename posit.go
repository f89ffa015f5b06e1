// Copyright 2020 Aleksandr Demakin. All rights reserved.

// Package posit implements posit numbers: a tapered-precision binary format
// with a run-length encoded regime, a fixed-width exponent and a variable-width
// fraction packed into nbits bits.
//
// Every arithmetic result is computed exactly in binary fixed-point
// and then rounded once, to the nearest posit of the target environment.
// Posits are immutable values and are safe for concurrent use.
package posit

import (
	"github.com/avdva/posit/codec"
	"github.com/avdva/posit/fixed"
	mu "github.com/avdva/posit/internal/mathutil"
)

var (
	// DefaultEnv is the environment of the zero Posit value, and of values
	// unmarshaled from a form that carries no environment.
	// This variable is not thread-safe, so this should be changed on program start.
	DefaultEnv = Env{NBits: 32, ES: 2}
)

// Env is a posit environment, see codec.Env.
type Env = codec.Env

// Posit is a posit number of some environment.
// The zero value is the zero of DefaultEnv.
type Posit struct {
	bits uint64
	rep  codec.Rep
}

// FromBits returns a posit for the given bit pattern.
func FromBits(bits uint64, env Env) (Posit, error) {
	rep, err := codec.Decode(bits, env)
	if err != nil {
		return Posit{}, err
	}
	return Posit{bits: bits, rep: rep}, nil
}

// Zero returns the zero of env.
func Zero(env Env) Posit {
	return Posit{rep: codec.Zero(env)}
}

// CInf returns the complex infinity of env.
func CInf(env Env) Posit {
	return Posit{bits: env.CInfBits(), rep: codec.CInf(env)}
}

// FromPoint rounds an exact fixed-point value into env.
func FromPoint(p fixed.Point, env Env) (Posit, error) {
	rep, err := p.Rep(env)
	if err != nil {
		return Posit{}, err
	}
	return fromRep(rep)
}

func fromRep(rep codec.Rep) (Posit, error) {
	bits, err := codec.Encode(rep)
	if err != nil {
		return Posit{}, err
	}
	return Posit{bits: bits, rep: rep}, nil
}

// round is FromPoint for environments known to be valid.
func round(p fixed.Point, env Env) Posit {
	result, err := FromPoint(p, env)
	if err != nil {
		panic(err)
	}
	return result
}

// Resize returns p rounded into env.
func (p Posit) Resize(env Env) (Posit, error) {
	if err := env.Validate(); err != nil {
		return Posit{}, err
	}
	switch p.rep.Kind {
	case codec.KindZero:
		return Zero(env), nil
	case codec.KindCInf:
		return CInf(env), nil
	}
	if env == p.Env() {
		return p, nil
	}
	return FromPoint(p.point(), env)
}

// point returns the exact value of a zero or normal posit.
func (p Posit) point() fixed.Point {
	pt, err := fixed.FromRep(p.rep)
	if err != nil {
		panic(err)
	}
	return pt
}

// Env returns the environment of p.
func (p Posit) Env() Env {
	if p.rep.Env.NBits == 0 {
		return DefaultEnv
	}
	return p.rep.Env
}

// Bits returns the nbits-wide bit pattern of p.
func (p Posit) Bits() uint64 {
	return p.bits
}

// Rep returns the decoded fields of p.
// The fraction is a copy and may be modified by the caller.
func (p Posit) Rep() codec.Rep {
	rep := p.rep
	rep.Env = p.Env()
	if rep.F != nil {
		rep.F = rep.Frac()
	}
	return rep
}

// IsZero returns true if p is zero.
func (p Posit) IsZero() bool {
	return p.rep.Kind == codec.KindZero
}

// IsCInf returns true if p is the complex infinity.
func (p Posit) IsCInf() bool {
	return p.rep.Kind == codec.KindCInf
}

// IsNormal returns true if p is neither zero nor cinf.
func (p Posit) IsNormal() bool {
	return p.rep.Kind == codec.KindNormal
}

// Sign returns -1 for negative values, 1 for positive ones, and 0 for zero and cinf.
func (p Posit) Sign() int {
	switch {
	case !p.IsNormal():
		return 0
	case p.rep.Neg:
		return -1
	default:
		return 1
	}
}

// negBits returns the two's complement of the bit pattern, which is the pattern of -p.
func (p Posit) negBits() uint64 {
	return (^p.bits + 1) & mu.Mask(p.Env().NBits)
}
