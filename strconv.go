// Copyright 2020 Aleksandr Demakin. All rights reserved.

package posit

import (
	"fmt"
	"math/big"
	"strconv"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
	"github.com/shopspring/decimal"

	"github.com/avdva/posit/fixed"
)

// literal is a textual posit value, as produced by String and RatString:
// "cinf", "-128", "3/32", "1+1/2", "-1-1/2", or a decimal like "0.375".
type literal struct {
	CInf   bool           `  @"cinf"`
	Number *numberLiteral `| @@`
}

type numberLiteral struct {
	Neg   bool         `@"-"?`
	Whole string       `@Int`
	Tail  *literalTail `@@?`
}

type literalTail struct {
	Den     string       `  "/" @Int`
	Decimal string       `| "." @Int`
	Mixed   *mixedSuffix `| @@`
}

// mixedSuffix is the fractional part of a mixed number. Its sign repeats the sign of the whole part.
type mixedSuffix struct {
	Sep string `@("+" | "-")`
	Num string `@Int "/"`
	Den string `@Int`
}

var (
	literalLexer = lexer.MustSimple([]lexer.SimpleRule{
		{Name: "Ident", Pattern: `[a-z]+`},
		{Name: "Int", Pattern: `\d+`},
		{Name: "Punct", Pattern: `[-+/.]`},
		{Name: "Whitespace", Pattern: `\s+`},
	})
	literalParser = participle.MustBuild[literal](
		participle.Lexer(literalLexer),
		participle.Elide("Whitespace"),
	)
)

// Parse parses a string produced by String or RatString, or a decimal number,
// and returns the posit of env nearest to it.
// Values which are not dyadic fractions, like "1/3" or "0.1", give UnrepresentableInput.
func Parse(s string, env Env) (Posit, error) {
	if err := env.Validate(); err != nil {
		return Posit{}, err
	}
	lit, err := literalParser.ParseString("", s)
	if err != nil {
		return Posit{}, ParseError.Wrap(err)
	}
	switch {
	case lit.CInf:
		return CInf(env), nil
	case lit.Number == nil:
		return Posit{}, ParseError.New("empty input")
	}
	pt, err := lit.Number.point()
	if err != nil {
		return Posit{}, err
	}
	return FromPoint(pt, env)
}

func (n *numberLiteral) point() (fixed.Point, error) {
	whole, err := parseInt(n.Whole)
	if err != nil {
		return fixed.Point{}, err
	}
	r := new(big.Rat).SetInt(whole)
	if t := n.Tail; t != nil {
		switch {
		case t.Den != "":
			if r, err = parseFrac(n.Whole, t.Den); err != nil {
				return fixed.Point{}, err
			}
		case t.Decimal != "":
			d, err := decimal.NewFromString(n.Whole + "." + t.Decimal)
			if err != nil {
				return fixed.Point{}, ParseError.Wrap(err)
			}
			r = d.Rat()
		case t.Mixed != nil:
			if (t.Mixed.Sep == "-") != n.Neg {
				return fixed.Point{}, ParseError.New("sign %q of a fraction does not match the sign of its integer part", t.Mixed.Sep)
			}
			frac, err := parseFrac(t.Mixed.Num, t.Mixed.Den)
			if err != nil {
				return fixed.Point{}, err
			}
			r.Add(r, frac)
		}
	}
	if n.Neg {
		r.Neg(r)
	}
	return fixed.FromRat(r)
}

func parseInt(s string) (*big.Int, error) {
	i, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return nil, ParseError.New("bad integer %q", s)
	}
	return i, nil
}

func parseFrac(num, den string) (*big.Rat, error) {
	n, err := parseInt(num)
	if err != nil {
		return nil, err
	}
	d, err := parseInt(den)
	if err != nil {
		return nil, err
	}
	if d.Sign() == 0 {
		return nil, ParseError.New("zero denominator")
	}
	return new(big.Rat).SetFrac(n, d), nil
}

// String returns p as an integer or a mixed fraction, like "6", "3/32", "1+1/2" or "-1-1/2".
// Zero is "0" and the complex infinity is "cinf".
func (p Posit) String() string {
	num, den, special := p.parts()
	if special != "" {
		return special
	}
	var builder strings.Builder
	neg := num.Sign() < 0
	num.Abs(num)
	integral, rem := new(big.Int).QuoRem(num, den, new(big.Int))
	if neg {
		builder.WriteByte('-')
	}
	switch {
	case rem.Sign() == 0:
		builder.WriteString(integral.String())
		return builder.String()
	case integral.Sign() != 0:
		builder.WriteString(integral.String())
		if neg {
			builder.WriteByte('-')
		} else {
			builder.WriteByte('+')
		}
	}
	builder.WriteString(rem.String())
	builder.WriteByte('/')
	builder.WriteString(den.String())
	return builder.String()
}

// RatString returns p as an integer or a simple fraction, like "6" or "-3/2".
func (p Posit) RatString() string {
	num, den, special := p.parts()
	if special != "" {
		return special
	}
	if den.Cmp(big.NewInt(1)) == 0 {
		return num.String()
	}
	return num.String() + "/" + den.String()
}

// parts returns the reduced numerator and denominator of p, or a name for zero and cinf.
func (p Posit) parts() (num, den *big.Int, special string) {
	switch {
	case p.IsZero():
		return nil, nil, "0"
	case p.IsCInf():
		return nil, nil, "cinf"
	}
	r := p.point().Rat()
	return new(big.Int).Set(r.Num()), new(big.Int).Set(r.Denom()), ""
}

// GoString returns debug string representation.
func (p Posit) GoString() string {
	env := p.Env()
	return p.String() + fmt.Sprintf(" {bits:%#x, nbits:%d, es:%d}", p.bits, env.NBits, env.ES)
}

// Format implements fmt.Formatter.
// %v and %s print String, %q prints it quoted, %#v prints GoString.
// %b, %o, %d, %x and %X print the bit pattern.
// %e, %E, %f, %F, %g and %G print the nearest float64.
func (p Posit) Format(fs fmt.State, c rune) {
	switch c {
	case 'v', 's':
		if c == 'v' && fs.Flag('#') {
			fs.Write([]byte(p.GoString()))
			return
		}
		fmt.Fprintf(fs, fmt.FormatString(fs, 's'), p.String())
	case 'q':
		fmt.Fprintf(fs, fmt.FormatString(fs, 's'), strconv.Quote(p.String()))
	case 'b', 'o', 'd', 'x', 'X':
		fmt.Fprintf(fs, fmt.FormatString(fs, c), p.bits)
	case 'e', 'E', 'f', 'F', 'g', 'G':
		fmt.Fprintf(fs, fmt.FormatString(fs, c), p.Float64())
	default:
		fmt.Fprintf(fs, "%%!%c(posit.Posit=%s)", c, p.String())
	}
}
