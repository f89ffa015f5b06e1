// Copyright 2020 Aleksandr Demakin. All rights reserved.

// Package codec converts posit bit patterns to and from their field representation.
//
// A posit of an (nbits, es) environment is laid out as
//
//	 nbits-1 nbits-2                                      0
//	 s       r r r ... r r̄  e e ... e  f f f ... f f f
//
// where s is the sign, r..r̄ is a run-length encoded regime k, e is an es-bit
// exponent and f is a fraction taking whatever bits are left. Negative numbers are
// stored as the two's complement of the whole word. The all-zeros pattern is zero,
// and the pattern with only the sign bit set is the complex infinity (cinf).
package codec

import (
	"fmt"
	"math/big"

	"github.com/zeebo/errs"

	mu "github.com/avdva/posit/internal/mathutil"
)

const (
	// MinNBits is the smallest supported total width.
	MinNBits = 2
	// MaxNBits is the largest supported total width. Bit patterns are uint64.
	MaxNBits = 64
	// MaxES is the largest supported exponent width.
	// Division guard bits grow as 2^es, which makes larger values impractical.
	MaxES = 16
)

// InvalidField is the class of errors returned for out-of-range fields or environments.
var InvalidField = errs.Class("invalid field")

// Env is a posit environment: the total width and the exponent width.
type Env struct {
	NBits int
	ES    int
}

// Validate returns an error if env is not supported.
func (env Env) Validate() error {
	if env.NBits < MinNBits || env.NBits > MaxNBits {
		return InvalidField.New("nbits %d not in [%d, %d]", env.NBits, MinNBits, MaxNBits)
	}
	if env.ES < 0 || env.ES > MaxES {
		return InvalidField.New("es %d not in [0, %d]", env.ES, MaxES)
	}
	return nil
}

// CInfBits returns the bit pattern of the complex infinity.
func (env Env) CInfBits() uint64 {
	return 1 << uint(env.NBits-1)
}

// MaxPosBits returns the bit pattern of the largest positive posit.
func (env Env) MaxPosBits() uint64 {
	return mu.Mask(env.NBits - 1)
}

// Useed returns 2^es, the scale factor between adjacent regimes, as a power of two.
func (env Env) Useed() int {
	return 1 << uint(env.ES)
}

func (env Env) String() string {
	return fmt.Sprintf("(%d,%d)", env.NBits, env.ES)
}

// Kind tags a representation.
type Kind uint8

const (
	// KindZero is the unique zero.
	KindZero Kind = iota
	// KindCInf is the unique non-finite value. It has no sign and no ordering.
	KindCInf
	// KindNormal is any other value.
	KindNormal
)

func (k Kind) String() string {
	switch k {
	case KindZero:
		return "zero"
	case KindCInf:
		return "cinf"
	case KindNormal:
		return "normal"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// Rep is a decoded posit.
// For KindNormal the value is (-1)^Neg * 2^(2^es*K + E - H) * (2^H + F).
// Other fields are ignored for zero and cinf.
// F is shared between copies of a Rep and must not be modified.
type Rep struct {
	Env  Env
	Kind Kind
	Neg  bool
	K    int
	E    uint64
	H    int
	F    *big.Int
}

// Zero returns the zero representation for env.
func Zero(env Env) Rep {
	return Rep{Env: env, Kind: KindZero}
}

// CInf returns the complex infinity representation for env.
func CInf(env Env) Rep {
	return Rep{Env: env, Kind: KindCInf}
}

// Frac returns a copy of the fraction bits. A nil F is 0.
func (r Rep) Frac() *big.Int {
	if r.F == nil {
		return new(big.Int)
	}
	return new(big.Int).Set(r.F)
}

// Scale returns the binary exponent of the leading bit, 2^es*K + E.
func (r Rep) Scale() int {
	return r.K*r.Env.Useed() + int(r.E)
}

// WithNeg returns a copy of r with the given sign. Zero and cinf are returned unchanged.
func (r Rep) WithNeg(neg bool) Rep {
	if r.Kind == KindNormal {
		r.Neg = neg
	}
	return r
}

func (r Rep) validate() error {
	if err := r.Env.Validate(); err != nil {
		return err
	}
	switch r.Kind {
	case KindZero, KindCInf:
		return nil
	case KindNormal:
	default:
		return InvalidField.New("unknown kind %v", r.Kind)
	}
	if r.E > mu.Mask(r.Env.ES) {
		return InvalidField.New("exponent %d does not fit %d bits", r.E, r.Env.ES)
	}
	if r.H < 0 {
		return InvalidField.New("negative fraction width %d", r.H)
	}
	if r.F != nil && (r.F.Sign() < 0 || r.F.BitLen() > r.H) {
		return InvalidField.New("fraction %v does not fit %d bits", r.F, r.H)
	}
	return nil
}

// GoString returns a debug representation of r.
func (r Rep) GoString() string {
	switch r.Kind {
	case KindNormal:
		s := 0
		if r.Neg {
			s = 1
		}
		return fmt.Sprintf("{s:%d k:%d e:%d f:%v h:%d env:%v}", s, r.K, r.E, r.Frac(), r.H, r.Env)
	default:
		return fmt.Sprintf("{%v env:%v}", r.Kind, r.Env)
	}
}
