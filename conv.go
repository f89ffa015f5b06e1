// Copyright 2020 Aleksandr Demakin. All rights reserved.

package posit

import (
	"math"
	"math/big"

	"github.com/shopspring/decimal"
	"golang.org/x/exp/constraints"

	"github.com/avdva/posit/fixed"
)

// FromInt64 returns the posit of env nearest to v.
func FromInt64(v int64, env Env) (Posit, error) {
	return FromPoint(fixed.FromInt64(v), env)
}

// FromInt returns the posit of env nearest to v.
func FromInt[T constraints.Integer](v T, env Env) (Posit, error) {
	if v < 0 {
		return FromInt64(int64(v), env)
	}
	return FromBigInt(new(big.Int).SetUint64(uint64(v)), env)
}

// FromBigInt returns the posit of env nearest to v.
func FromBigInt(v *big.Int, env Env) (Posit, error) {
	return FromPoint(fixed.FromBigInt(v), env)
}

// FromFloat64 returns the posit of env nearest to f.
// Infinities and NaN become cinf.
func FromFloat64(f float64, env Env) (Posit, error) {
	if math.IsInf(f, 0) || math.IsNaN(f) {
		if err := env.Validate(); err != nil {
			return Posit{}, err
		}
		return CInf(env), nil
	}
	pt, err := fixed.FromFloat64(f)
	if err != nil {
		return Posit{}, err
	}
	return FromPoint(pt, env)
}

// FromFloat returns the posit of env nearest to f.
func FromFloat[T constraints.Float](f T, env Env) (Posit, error) {
	return FromFloat64(float64(f), env)
}

// FromRat returns the posit of env nearest to r.
// The denominator of r must be a power of two.
func FromRat(r *big.Rat, env Env) (Posit, error) {
	pt, err := fixed.FromRat(r)
	if err != nil {
		return Posit{}, err
	}
	return FromPoint(pt, env)
}

// FromDecimal returns the posit of env nearest to d.
// d must be a dyadic fraction, like 1.25 or 0.375.
func FromDecimal(d decimal.Decimal, env Env) (Posit, error) {
	pt, err := fixed.FromDecimal(d)
	if err != nil {
		return Posit{}, err
	}
	return FromPoint(pt, env)
}

// Fixed returns the exact value of p.
func (p Posit) Fixed() (fixed.Point, error) {
	if p.IsCInf() {
		return fixed.Point{}, UnsupportedConversion.New("cinf has no fixed-point form")
	}
	return p.point(), nil
}

// Int64 returns p truncated towards zero.
func (p Posit) Int64() (int64, error) {
	i, err := p.BigInt()
	if err != nil {
		return 0, err
	}
	if !i.IsInt64() {
		return 0, UnsupportedConversion.New("%v overflows int64", p)
	}
	return i.Int64(), nil
}

// BigInt returns p truncated towards zero.
func (p Posit) BigInt() (*big.Int, error) {
	pt, err := p.Fixed()
	if err != nil {
		return nil, err
	}
	return pt.Trunc(), nil
}

// Floor returns the largest integer not greater than p.
func (p Posit) Floor() (*big.Int, error) {
	pt, err := p.Fixed()
	if err != nil {
		return nil, err
	}
	return pt.Floor(), nil
}

// Ceil returns the smallest integer not less than p.
func (p Posit) Ceil() (*big.Int, error) {
	floor, err := p.Neg().Floor()
	if err != nil {
		return nil, err
	}
	return floor.Neg(floor), nil
}

// Float64 returns the float64 nearest to p. cinf is NaN.
// Values beyond the float64 range become infinities, and tiny ones become zeros.
func (p Posit) Float64() float64 {
	if p.IsCInf() {
		return math.NaN()
	}
	return p.point().Float64()
}

// Rat returns the exact value of p.
func (p Posit) Rat() (*big.Rat, error) {
	pt, err := p.Fixed()
	if err != nil {
		return nil, err
	}
	return pt.Rat(), nil
}

// Decimal returns the exact value of p as a decimal.
func (p Posit) Decimal() (decimal.Decimal, error) {
	pt, err := p.Fixed()
	if err != nil {
		return decimal.Decimal{}, err
	}
	return pt.Decimal(), nil
}
