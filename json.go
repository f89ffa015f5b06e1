// Copyright 2020 Aleksandr Demakin. All rights reserved.

package posit

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/avdva/posit/fixed"
)

var (
	// JSONMode defines the way all values are marshaled into json, see JSONMode* constants.
	// This variable is not thread-safe, so this should be changed on program start.
	JSONMode = JSONModeBits
)

const (
	// JSONModeBits marshals values as an object with the bit pattern and the environment,
	// like `{"bits":37,"nbits":6,"es":2}`. This is the only lossless mode.
	JSONModeBits = iota
	// JSONModeString produces values as strings, like `"-1-1/2"`.
	JSONModeString
	// JSONModeFloat marshals values as floats, like `-1.5`. cinf is marshaled as null.
	JSONModeFloat
)

type jsonBits struct {
	Bits  uint64 `json:"bits"`
	NBits int    `json:"nbits"`
	ES    int    `json:"es"`
}

// MarshalJSON marshals value according to current JSONMode.
// See JSONMode and JSONMode* constants.
func (p Posit) MarshalJSON() ([]byte, error) {
	return p.toJSON(JSONMode)
}

func (p Posit) toJSON(mode int) ([]byte, error) {
	switch mode {
	case JSONModeString:
		return []byte(strconv.Quote(p.String())), nil
	case JSONModeFloat:
		f := p.Float64()
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return []byte("null"), nil
		}
		return []byte(strconv.FormatFloat(f, 'g', -1, 64)), nil
	default:
		env := p.Env()
		return json.Marshal(jsonBits{Bits: p.bits, NBits: env.NBits, ES: env.ES})
	}
}

// UnmarshalJSON unmarshals an object with bits, a string, or a number into a value.
// Strings and numbers are rounded into the environment of p, or DefaultEnv for the zero Posit.
// Numbers which are not dyadic fractions, like 0.1, are rounded once, as Div does.
// null gives cinf.
func (p *Posit) UnmarshalJSON(data []byte) error {
	if len(data) == 0 {
		return fmt.Errorf("empty json")
	}
	env := p.Env()
	var (
		result Posit
		err    error
	)
	switch data[0] {
	case '{':
		var d jsonBits
		if err := json.Unmarshal(data, &d); err != nil {
			return err
		}
		result, err = FromBits(d.Bits, Env{NBits: d.NBits, ES: d.ES})
	case '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		result, err = Parse(s, env)
	case 'n':
		if string(data) != "null" {
			return fmt.Errorf("bad json value %q", data)
		}
		result, err = CInf(env), env.Validate()
	default:
		result, err = fromJSONNumber(string(data), env)
	}
	if err != nil {
		return err
	}
	*p = result
	return nil
}

// fromJSONNumber rounds a number into env once, even if it is not a dyadic fraction, like 0.1.
func fromJSONNumber(s string, env Env) (Posit, error) {
	if err := env.Validate(); err != nil {
		return Posit{}, err
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Posit{}, err
	}
	return FromPoint(fixed.RoundDecimal(d, env), env)
}

// MarshalText implements encoding.TextMarshaler. It returns String.
func (p Posit) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
// The text is parsed in the environment of p, or DefaultEnv for the zero Posit.
func (p *Posit) UnmarshalText(data []byte) error {
	result, err := Parse(string(data), p.Env())
	if err != nil {
		return err
	}
	*p = result
	return nil
}
