// Copyright 2020 Aleksandr Demakin. All rights reserved.

package posit

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/zeebo/errs"
)

func TestString(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		bits    uint64
		s, rats string
	}{
		{0x00, "0", "0"},
		{0x20, "cinf", "cinf"},
		{0x25, "-128", "-128"},
		{0x09, "3/32", "3/32"},
		{0x15, "6", "6"},
		{0x11, "1+1/2", "3/2"},
		{0x2F, "-1-1/2", "-3/2"},
		{0x37, "-3/32", "-3/32"},
		{0x13, "3", "3"},
		{0x01, "1/65536", "1/65536"},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			p := p62(test.bits)
			a.Equal(test.s, p.String())
			a.Equal(test.rats, p.RatString())
			a.Equal(test.bits, MustParse(test.s, env62).Bits())
			a.Equal(test.bits, MustParse(test.rats, env62).Bits())
		})
	}
}

func TestParse(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		s    string
		bits uint64
	}{
		{"0", 0},
		{"-0", 0},
		{"cinf", 0x20},
		{"1+1/2", 0x11},
		{"-1-1/2", 0x2F},
		{"3/2", 0x11},
		{"6/4", 0x11},
		{"1.5", 0x11},
		{"-0.09375", 0x37},
		{" 6 ", 0x15},
		{"1 + 1/2", 0x11},
		{"1.25", 0x10},
		{"1000000", 0x1F},
		{"1/1048576", 0x01},
		{"0+1/2", 0x0E},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			p, err := Parse(test.s, env62)
			if a.NoError(err) {
				a.Equal(test.bits, p.Bits(), "%v", p)
			}
		})
	}
}

func TestParseErrors(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		s     string
		class *errs.Class
	}{
		{"", &ParseError},
		{"abc", &ParseError},
		{"inf", &ParseError},
		{"1..2", &ParseError},
		{"1+1", &ParseError},
		{"-1+1/2", &ParseError},
		{"1-1/2", &ParseError},
		{"1/0", &ParseError},
		{"1e3", &ParseError},
		{"--1", &ParseError},
		{"1/3", UnrepresentableInput},
		{"0.1", UnrepresentableInput},
		{"1+1/3", UnrepresentableInput},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			_, err := Parse(test.s, env62)
			a.Error(err)
			a.True(test.class.Has(err), "%q: %v", test.s, err)
		})
	}
	_, err := Parse("1", Env{NBits: 70, ES: 2})
	a.True(InvalidField.Has(err))
	a.Panics(func() { MustParse("1/3", env62) })
}

func TestFormat(t *testing.T) {
	a := assert.New(t)
	p := p62(0x11)
	tests := []struct {
		format, expected string
	}{
		{"%v", "1+1/2"},
		{"%s", "1+1/2"},
		{"%8s", "   1+1/2"},
		{"%-8v|", "1+1/2   |"},
		{"%q", `"1+1/2"`},
		{"%#v", "1+1/2 {bits:0x11, nbits:6, es:2}"},
		{"%x", "11"},
		{"%#X", "0X11"},
		{"%08b", "00010001"},
		{"%o", "21"},
		{"%d", "17"},
		{"%f", "1.500000"},
		{"%.2e", "1.50e+00"},
		{"%g", "1.5"},
		{"%z", "%!z(posit.Posit=1+1/2)"},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			a.Equal(test.expected, fmt.Sprintf(test.format, p))
		})
	}
	a.Equal("NaN", fmt.Sprintf("%g", CInf(env62)))
	a.Equal("cinf {bits:0x20, nbits:6, es:2}", CInf(env62).GoString())
}
