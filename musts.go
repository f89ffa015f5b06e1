// Copyright 2020 Aleksandr Demakin. All rights reserved.

package posit

import (
	"fmt"
	"math/big"
)

// MustFromBits is like FromBits but panics on error.
func MustFromBits(bits uint64, env Env) Posit {
	p, err := FromBits(bits, env)
	if err != nil {
		panic(err)
	}
	return p
}

// MustParse is like Parse but panics on error.
func MustParse(s string, env Env) Posit {
	p, err := Parse(s, env)
	if err != nil {
		panic(fmt.Sprintf("MustParse(%q) failed: %v", s, err))
	}
	return p
}

// MustFromInt64 is like FromInt64 but panics on error.
func MustFromInt64(v int64, env Env) Posit {
	p, err := FromInt64(v, env)
	if err != nil {
		panic(err)
	}
	return p
}

// MustFromFloat64 is like FromFloat64 but panics on error.
func MustFromFloat64(f float64, env Env) Posit {
	p, err := FromFloat64(f, env)
	if err != nil {
		panic(err)
	}
	return p
}

// MustFromRat is like FromRat but panics on error.
func MustFromRat(r *big.Rat, env Env) Posit {
	p, err := FromRat(r, env)
	if err != nil {
		panic(fmt.Sprintf("MustFromRat(%v) failed: %v", r.RatString(), err))
	}
	return p
}

// MustResize is like Resize but panics on error.
func (p Posit) MustResize(env Env) Posit {
	return p.mustResize(env)
}

// MustInt64 is like Int64 but panics on error.
func (p Posit) MustInt64() int64 {
	i, err := p.Int64()
	if err != nil {
		panic(fmt.Sprintf("MustInt64(%v) failed: %v", p, err))
	}
	return i
}
