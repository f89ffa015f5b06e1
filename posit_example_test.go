// Copyright 2020 Aleksandr Demakin. All rights reserved.

package posit

import (
	"encoding/json"
	"fmt"
)

func ExamplePosit() {
	env := Env{NBits: 6, ES: 2}
	a, err := FromBits(0x0C, env)
	if err != nil {
		panic(err)
	}
	b, err := Parse("3/4", env)
	if err != nil {
		panic(err)
	}
	fmt.Printf("%v + %v => %v\n", a, b, a.Add(b))
	fmt.Printf("%v - %v => %v\n", a, b, a.Sub(b))
	fmt.Printf("%v * %v => %v\n", a, b, a.Mul(b))
	fmt.Printf("%v / %v => %v\n", a, b, a.Div(b))
	fmt.Printf("uminus %v => %v\n", a, a.Neg())

	data, err := json.Marshal(a)
	if err != nil {
		panic(err)
	}
	fmt.Printf("json for value: %s\n", string(data))

	x := MustParse("1+1/4", Env{NBits: 16, ES: 1})
	fmt.Printf("%v is %#x, as a float = %g\n", x, x, x)
	fmt.Printf("%v / 0 = %v, and cinf equals cinf: %v", x, x.Div(Zero(x.Env())), CInf(env).Eq(CInf(env)))

	// Output:
	// 1/4 + 3/4 => 1
	// 1/4 - 3/4 => -1/2
	// 1/4 * 3/4 => 3/16
	// 1/4 / 3/4 => 3/8
	// uminus 1/4 => -1/4
	// json for value: {"bits":12,"nbits":6,"es":2}
	// 1+1/4 is 0x4400, as a float = 1.25
	// 1+1/4 / 0 = cinf, and cinf equals cinf: false
}
