// Package fixed implements exact binary fixed-point numbers, mant * 2^exp,
// with an arbitrary-precision mantissa.
// It is the lossless arena where posit arithmetic happens, and the bridge that
// rounds exact results back into a posit environment.
package fixed

import (
	"math"
	"math/big"

	"github.com/shopspring/decimal"
	"github.com/zeebo/errs"

	"github.com/avdva/posit/codec"
	mu "github.com/avdva/posit/internal/mathutil"
)

var (
	// UnsupportedConversion is returned when a value has no fixed-point or integer form.
	UnsupportedConversion = errs.Class("unsupported conversion")
	// UnrepresentableInput is returned for inputs that are not dyadic rationals.
	UnrepresentableInput = errs.Class("unrepresentable input")

	one  = big.NewInt(1)
	five = big.NewInt(5)
)

// Point is mant * 2^exp. The zero value is 0.
// Points are immutable, all operations return new values.
type Point struct {
	mant *big.Int
	exp  int
}

// New returns mant * 2^exp. mant is copied.
func New(mant *big.Int, exp int) Point {
	if mant == nil || mant.Sign() == 0 {
		return Point{}
	}
	return Point{mant: new(big.Int).Set(mant), exp: exp}
}

func newOwned(mant *big.Int, exp int) Point {
	if mant.Sign() == 0 {
		return Point{}
	}
	return Point{mant: mant, exp: exp}
}

// FromInt64 returns v * 2^0.
func FromInt64(v int64) Point {
	return newOwned(big.NewInt(v), 0)
}

// FromBigInt returns v * 2^0.
func FromBigInt(v *big.Int) Point {
	return New(v, 0)
}

// FromFloat64 returns an exact fixed-point form of a finite float.
func FromFloat64(f float64) (Point, error) {
	if math.IsInf(f, 0) || math.IsNaN(f) {
		return Point{}, UnsupportedConversion.New("non-finite float %v", f)
	}
	if f == 0 {
		return Point{}, nil
	}
	// every finite float64 is an integer times a power of two.
	frac, e := math.Frexp(f)
	const mantBits = 53
	mant := int64(math.Ldexp(frac, mantBits))
	return newOwned(big.NewInt(mant), e-mantBits), nil
}

// FromRat returns an exact fixed-point form of r.
// The denominator of r must be a power of two.
func FromRat(r *big.Rat) (Point, error) {
	den := r.Denom()
	if den.BitLen() == 0 || new(big.Int).And(den, new(big.Int).Sub(den, one)).Sign() != 0 {
		return Point{}, UnrepresentableInput.New("%v has a non-power-of-two denominator", r.RatString())
	}
	return New(r.Num(), -(den.BitLen() - 1)), nil
}

// FromDecimal returns an exact fixed-point form of d.
func FromDecimal(d decimal.Decimal) (Point, error) {
	return FromRat(d.Rat())
}

// RoundDecimal returns a point that rounds into env to the posit nearest to d.
// Dyadic values are returned exactly, others are divided out with Quo.
func RoundDecimal(d decimal.Decimal, env codec.Env) Point {
	if p, err := FromDecimal(d); err == nil {
		return p
	}
	// d = coef * 2^exp / 5^-exp, and exp < 0 for every non-dyadic decimal.
	exp := int(d.Exponent())
	den := new(big.Int).Exp(big.NewInt(5), big.NewInt(int64(-exp)), nil)
	return newOwned(d.Coefficient(), exp).Quo(newOwned(den, 0), env)
}

// FromRep returns the fixed-point form of a posit representation.
// Zero is (0, 0). Cinf has no fixed-point form.
func FromRep(r codec.Rep) (Point, error) {
	switch r.Kind {
	case codec.KindZero:
		return Point{}, nil
	case codec.KindCInf:
		return Point{}, UnsupportedConversion.New("cinf has no fixed-point form")
	case codec.KindNormal:
		x := r.Frac()
		x.SetBit(x, r.H, 1)
		if r.Neg {
			x.Neg(x)
		}
		return newOwned(x, r.Scale()-r.H), nil
	default:
		panic("fixed: unknown kind " + r.Kind.String())
	}
}

// Rep rounds p into env.
// The exact value is first laid out as a posit with as many fraction bits as it needs
// and an unbounded regime, and then encoded and decoded back, so that the codec
// performs the rounding.
func (p Point) Rep(env codec.Env) (codec.Rep, error) {
	if err := env.Validate(); err != nil {
		return codec.Rep{}, err
	}
	if p.IsZero() {
		return codec.Zero(env), nil
	}
	x, m := new(big.Int).Abs(p.mant), p.exp
	tz := x.TrailingZeroBits()
	x.Rsh(x, tz)
	m += int(tz)

	// 1 <= x * 2^-h < 2
	h := x.BitLen() - 1
	scale := m + h
	useed := env.Useed()
	r := codec.Rep{
		Env:  env,
		Kind: codec.KindNormal,
		Neg:  p.mant.Sign() < 0,
		K:    mu.FloorDiv(scale, useed),
		E:    uint64(mu.FloorMod(scale, useed)),
		H:    h,
		F:    x.SetBit(x, h, 0),
	}
	bits, err := codec.Encode(r)
	if err != nil {
		return codec.Rep{}, err
	}
	return codec.Decode(bits, env)
}

// Mant returns a copy of the mantissa.
func (p Point) Mant() *big.Int {
	return new(big.Int).Set(p.m())
}

// Exp returns the binary exponent.
func (p Point) Exp() int {
	return p.exp
}

func (p Point) m() *big.Int {
	if p.mant == nil {
		return new(big.Int)
	}
	return p.mant
}

// IsZero returns true if p == 0.
func (p Point) IsZero() bool {
	return p.mant == nil || p.mant.Sign() == 0
}

// Sign returns -1 if p < 0, 0 if p == 0, 1 if p > 0.
func (p Point) Sign() int {
	return p.m().Sign()
}

// Neg returns -p.
func (p Point) Neg() Point {
	return newOwned(new(big.Int).Neg(p.m()), p.exp)
}

// Abs returns |p|.
func (p Point) Abs() Point {
	return newOwned(new(big.Int).Abs(p.m()), p.exp)
}

// align returns mantissas of a and b scaled to the smaller of their exponents.
func align(a, b Point) (ma, mb *big.Int, exp int) {
	exp = mu.Min(a.exp, b.exp)
	ma = new(big.Int).Lsh(a.m(), uint(a.exp-exp))
	mb = new(big.Int).Lsh(b.m(), uint(b.exp-exp))
	return ma, mb, exp
}

// Add returns p + q.
func (p Point) Add(q Point) Point {
	switch {
	case p.IsZero():
		return q
	case q.IsZero():
		return p
	}
	ma, mb, exp := align(p, q)
	return newOwned(ma.Add(ma, mb), exp)
}

// Sub returns p - q.
func (p Point) Sub(q Point) Point {
	return p.Add(q.Neg())
}

// Mul returns p * q.
func (p Point) Mul(q Point) Point {
	if p.IsZero() || q.IsZero() {
		return Point{}
	}
	return newOwned(new(big.Int).Mul(p.mant, q.mant), p.exp+q.exp)
}

// GuardBits returns the number of extra quotient bits Quo computes for a division
// a / b rounded into env. The truncated quotient then resolves values finer than
// nbits-1 bits below minpos of env.
func GuardBits(a, b Point, env codec.Env) int {
	return mu.Max(0, a.exp-b.exp+env.Useed()*(env.NBits-2)+env.NBits-1)
}

// Quo returns p / q with enough precision to be rounded into env exactly once.
// The result is the truncated quotient with a sticky bit appended whenever the division
// is inexact, so that it never lands on a rounding tie of env.
// A non-zero dividend never yields a zero quotient.
// Quo panics if q is zero.
func (p Point) Quo(q Point, env codec.Env) Point {
	if q.IsZero() {
		panic("division by zero")
	}
	if p.IsZero() {
		return Point{}
	}
	g := GuardBits(p, q, env)
	num := new(big.Int).Abs(p.mant)
	num.Lsh(num, uint(g))
	quo, rem := num.QuoRem(num, new(big.Int).Abs(q.mant), new(big.Int))
	exp := p.exp - q.exp - g
	if rem.Sign() != 0 {
		quo.Lsh(quo, 1).Or(quo, one)
		exp--
	}
	if p.mant.Sign() != q.mant.Sign() {
		quo.Neg(quo)
	}
	return newOwned(quo, exp)
}

// Cmp compares p and q.
// Returns -1 if p < q, 0 if p == q, 1 if p > q.
func (p Point) Cmp(q Point) int {
	if s1, s2 := p.Sign(), q.Sign(); s1 != s2 || s1 == 0 {
		return cmpInt(s1, s2)
	}
	ma, mb, _ := align(p, q)
	return ma.Cmp(mb)
}

func cmpInt(a, b int) int {
	switch {
	case a > b:
		return 1
	case a < b:
		return -1
	default:
		return 0
	}
}

// Trunc returns p rounded towards zero.
func (p Point) Trunc() *big.Int {
	i, _ := p.split()
	return i
}

// Floor returns the largest integer not greater than p.
func (p Point) Floor() *big.Int {
	i, exact := p.split()
	if !exact && p.Sign() < 0 {
		i.Sub(i, one)
	}
	return i
}

// split returns the integer part of p, rounded towards zero, and whether p is an integer.
func (p Point) split() (integ *big.Int, exact bool) {
	m := p.m()
	if p.exp >= 0 {
		return new(big.Int).Lsh(m, uint(p.exp)), true
	}
	shift := uint(-p.exp)
	abs := new(big.Int).Abs(m)
	integ = new(big.Int).Rsh(abs, shift)
	exact = abs.TrailingZeroBits() >= shift
	if m.Sign() < 0 {
		integ.Neg(integ)
	}
	return integ, exact
}

// Rat returns p as a rational number.
func (p Point) Rat() *big.Rat {
	if p.exp >= 0 {
		return new(big.Rat).SetInt(new(big.Int).Lsh(p.m(), uint(p.exp)))
	}
	return new(big.Rat).SetFrac(p.m(), mu.Pow2(-p.exp))
}

// Float64 returns the nearest float64 value.
func (p Point) Float64() float64 {
	f, _ := new(big.Float).SetMantExp(new(big.Float).SetInt(p.m()), p.exp).Float64()
	return f
}

// Decimal returns p as an exact decimal: mant * 2^exp == mant * 5^-exp * 10^exp.
func (p Point) Decimal() decimal.Decimal {
	if p.exp >= 0 {
		return decimal.NewFromBigInt(new(big.Int).Lsh(p.m(), uint(p.exp)), 0)
	}
	m := new(big.Int).Exp(five, big.NewInt(int64(-p.exp)), nil)
	m.Mul(m, p.m())
	return decimal.NewFromBigInt(m, int32(p.exp))
}
