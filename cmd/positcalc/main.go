// Copyright 2020 Aleksandr Demakin. All rights reserved.

// Command positcalc decodes posit bit patterns and evaluates posit arithmetic.
//
//	positcalc --nbits 6 --es 2 decode 0x25 0x09
//	positcalc --nbits 6 --es 2 eval 1/4 + 3/4
//	positcalc --nbits 6 --es 2 --bits eval 0x0C / 0x0F
//	positcalc --nbits 4 --es 1 table
//
// Operands starting with a minus sign must follow "--".
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"

	"github.com/alecthomas/kong"

	"github.com/avdva/posit"
)

const maxTableNBits = 16

// globals are flags shared by all commands.
type globals struct {
	NBits     int    `name:"nbits" default:"32" help:"Total width of posits."`
	ES        int    `name:"es" default:"2" help:"Exponent width."`
	Bits      bool   `name:"bits" help:"Read operands as raw bit patterns, like 0x25."`
	LogLevel  string `name:"log-level" enum:"debug,info,warn,error" default:"warn" help:"Log level (${enum})."`
	LogFormat string `name:"log-format" enum:"text,json" default:"text" help:"Log format (${enum})."`
}

func (g *globals) env() (posit.Env, error) {
	env := posit.Env{NBits: g.NBits, ES: g.ES}
	return env, env.Validate()
}

// operand reads a posit either from its bit pattern or from its textual form.
func (g *globals) operand(s string, env posit.Env) (posit.Posit, error) {
	if !g.Bits {
		return posit.Parse(s, env)
	}
	bits, err := strconv.ParseUint(s, 0, 64)
	if err != nil {
		return posit.Posit{}, err
	}
	return posit.FromBits(bits, env)
}

type cli struct {
	Globals globals `embed:""`

	Decode decodeCmd `cmd:"" help:"Decode bit patterns into their fields and values."`
	Eval   evalCmd   `cmd:"" help:"Evaluate a binary operation."`
	Table  tableCmd  `cmd:"" help:"Print every posit of an environment."`
}

type decodeCmd struct {
	Patterns []string `arg:"" help:"Bit patterns, like 0x25 or 37."`
}

func (c *decodeCmd) Run(g *globals, log *slog.Logger, ctx *kong.Context) error {
	env, err := g.env()
	if err != nil {
		return err
	}
	for _, s := range c.Patterns {
		bits, err := strconv.ParseUint(s, 0, 64)
		if err != nil {
			return err
		}
		p, err := posit.FromBits(bits, env)
		if err != nil {
			return err
		}
		log.Debug("decoded", "bits", bits, "env", env.String(), "kind", p.Rep().Kind.String())
		fmt.Fprintf(ctx.Stdout, "%#x\t%v\t%s\t%g\t%#v\n", bits, p, p.RatString(), p, p.Rep())
	}
	return nil
}

type evalCmd struct {
	A  string `arg:"" help:"Left operand."`
	Op string `arg:"" enum:"+,-,*,/,==,!=,<,<=,>,>=" help:"Operation (${enum})."`
	B  string `arg:"" help:"Right operand."`
}

func (c *evalCmd) Run(g *globals, log *slog.Logger, ctx *kong.Context) error {
	env, err := g.env()
	if err != nil {
		return err
	}
	a, err := g.operand(c.A, env)
	if err != nil {
		return fmt.Errorf("left operand: %w", err)
	}
	b, err := g.operand(c.B, env)
	if err != nil {
		return fmt.Errorf("right operand: %w", err)
	}
	log.Info("evaluating", "a", a.GoString(), "op", c.Op, "b", b.GoString())
	result, err := eval(a, c.Op, b)
	if err != nil {
		return err
	}
	fmt.Fprintf(ctx.Stdout, "%v %s %v => %v\n", a, c.Op, b, result)
	return nil
}

// eval returns a posit for arithmetic operations and a bool for comparisons.
func eval(a posit.Posit, op string, b posit.Posit) (fmt.Formatter, error) {
	switch op {
	case "+":
		return a.Add(b), nil
	case "-":
		return a.Sub(b), nil
	case "*":
		return a.Mul(b), nil
	case "/":
		return a.Div(b), nil
	}
	var result bool
	switch op {
	case "==":
		result = a.Eq(b)
	case "!=":
		result = a.Ne(b)
	case "<":
		result = a.Lt(b)
	case "<=":
		result = a.Le(b)
	case ">":
		result = a.Gt(b)
	case ">=":
		result = a.Ge(b)
	default:
		return nil, fmt.Errorf("unknown operation %q", op)
	}
	return boolFormatter(result), nil
}

type boolFormatter bool

func (b boolFormatter) Format(fs fmt.State, _ rune) {
	io.WriteString(fs, strconv.FormatBool(bool(b)))
}

type tableCmd struct{}

func (c *tableCmd) Run(g *globals, log *slog.Logger, ctx *kong.Context) error {
	env, err := g.env()
	if err != nil {
		return err
	}
	if env.NBits > maxTableNBits {
		return fmt.Errorf("%v has too many posits to print, at most %d bits are supported", env, maxTableNBits)
	}
	log.Debug("printing table", "env", env.String())
	for bits := uint64(0); bits < 1<<uint(env.NBits); bits++ {
		p, err := posit.FromBits(bits, env)
		if err != nil {
			return err
		}
		fmt.Fprintf(ctx.Stdout, "%#x\t%v\t%g\n", bits, p, p)
	}
	return nil
}

func newLogger(w io.Writer, level, format string) *slog.Logger {
	var slogLevel slog.Level
	switch level {
	case "debug":
		slogLevel = slog.LevelDebug
	case "info":
		slogLevel = slog.LevelInfo
	case "error":
		slogLevel = slog.LevelError
	default:
		slogLevel = slog.LevelWarn
	}
	opts := &slog.HandlerOptions{Level: slogLevel}
	if format == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

func newParser(c *cli, stdout, stderr io.Writer) (*kong.Kong, error) {
	return kong.New(c,
		kong.Name("positcalc"),
		kong.Description("Posit number calculator."),
		kong.UsageOnError(),
		kong.Writers(stdout, stderr),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
	)
}

func run(args []string, stdout, stderr io.Writer) error {
	var c cli
	parser, err := newParser(&c, stdout, stderr)
	if err != nil {
		return err
	}
	ctx, err := parser.Parse(args)
	if err != nil {
		return err
	}
	log := newLogger(stderr, c.Globals.LogLevel, c.Globals.LogFormat)
	return ctx.Run(&c.Globals, log)
}

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "positcalc: %v\n", err)
		os.Exit(1)
	}
}
