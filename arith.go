// Copyright 2020 Aleksandr Demakin. All rights reserved.

package posit

// Number is implemented by number types with exact-then-rounded arithmetic.
// Posit implements Number[Posit].
type Number[T any] interface {
	Add(other T) T
	Sub(other T) T
	Mul(other T) T
	Div(other T) T
	Neg() T
	Cmp(other T) (int, bool)
}

var _ Number[Posit] = Posit{}

// Add returns p + other rounded into the environment of p.
// cinf on either side gives cinf.
func (p Posit) Add(other Posit) Posit {
	env := p.Env()
	switch {
	case p.IsCInf() || other.IsCInf():
		return CInf(env)
	case other.IsZero():
		return p
	case p.IsZero():
		return other.mustResize(env)
	}
	return round(p.point().Add(other.point()), env)
}

// Sub returns p - other rounded into the environment of p.
func (p Posit) Sub(other Posit) Posit {
	return p.Add(other.Neg())
}

// Neg returns -p. Zero and cinf are their own negations.
func (p Posit) Neg() Posit {
	if !p.IsNormal() {
		return p
	}
	return Posit{bits: p.negBits(), rep: p.rep.WithNeg(!p.rep.Neg)}
}

// Abs returns |p|.
func (p Posit) Abs() Posit {
	if p.Sign() < 0 {
		return p.Neg()
	}
	return p
}

// Mul returns p * other rounded into the environment of p.
// cinf on either side gives cinf, even if the other operand is zero.
func (p Posit) Mul(other Posit) Posit {
	env := p.Env()
	switch {
	case p.IsCInf() || other.IsCInf():
		return CInf(env)
	case p.IsZero() || other.IsZero():
		return Zero(env)
	}
	return round(p.point().Mul(other.point()), env)
}

// Div returns p / other rounded into the environment of p.
// Dividing cinf or dividing by zero gives cinf, 0/0 included.
// Dividing zero or dividing by cinf gives zero.
func (p Posit) Div(other Posit) Posit {
	env := p.Env()
	switch {
	case p.IsCInf() || other.IsZero():
		return CInf(env)
	case p.IsZero() || other.IsCInf():
		return Zero(env)
	}
	return round(p.point().Quo(other.point(), divEnv(p, other)), env)
}

func (p Posit) mustResize(env Env) Posit {
	result, err := p.Resize(env)
	if err != nil {
		panic(err)
	}
	return result
}
