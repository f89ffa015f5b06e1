// Copyright 2020 Aleksandr Demakin. All rights reserved.

package posit

import (
	"github.com/avdva/posit/codec"
	mu "github.com/avdva/posit/internal/mathutil"
)

var (
	// WorkingFloor is the smallest environment WorkingEnv returns.
	// This variable is not thread-safe, so this should be changed on program start.
	WorkingFloor = Env{NBits: 32, ES: 2}
)

// WorkingEnv returns an environment wide enough to hold every value of both a and b
// exactly, but not smaller than WorkingFloor and not wider than 64 bits.
// Widening es by one takes one more bit to keep the same precision,
// so nbits grows together with es.
func WorkingEnv(a, b Env) Env {
	es := mu.Max(a.ES, b.ES, WorkingFloor.ES)
	nbits := mu.Max(a.NBits+es-a.ES, b.NBits+es-b.ES, WorkingFloor.NBits)
	return Env{NBits: mu.Min(nbits, codec.MaxNBits), ES: es}
}

// Promote returns a and b, both re-expressed in WorkingEnv(a.Env(), b.Env()).
func Promote(a, b Posit) (Posit, Posit, error) {
	env := WorkingEnv(a.Env(), b.Env())
	pa, err := a.Resize(env)
	if err != nil {
		return Posit{}, Posit{}, err
	}
	pb, err := b.Resize(env)
	if err != nil {
		return Posit{}, Posit{}, err
	}
	return pa, pb, nil
}

// divEnv returns the environment division guard bits are sized for.
func divEnv(a, b Posit) Env {
	if ea, eb := a.Env(), b.Env(); ea != eb {
		return WorkingEnv(ea, eb)
	}
	return a.Env()
}
