// Package codegen derives short human-readable record codes (station codes,
// party codes) from a name and a postal code.
//
// A code always has the shape LLLDDDS: three uppercase letters taken from the
// name, three digits taken from the postal code and one trailing symbol. The
// letters and digits are deterministic for a given input; only the symbol is
// random, so retrying after a collision re-rolls the symbol.
package codegen

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"strings"
)

const (
	// Symbols is the alphabet of the trailing character.
	Symbols = "!@#$%^&*"

	// DefaultMaxAttempts is the retry budget used when none is configured.
	DefaultMaxAttempts = 10

	// Length of every generated code.
	Length = 7

	letterCount = 3
	digitCount  = 3
	letterPad   = 'X'
	digitPad    = '0'
)

// ErrGenerationExhausted is returned when every candidate within the retry
// budget was rejected by the uniqueness predicate.
var ErrGenerationExhausted = errors.New("unable to generate unique code")

// UniqueFunc reports whether a candidate code is free to use. Implementations
// typically run an existence query against the persisted code column and may
// exclude the record being edited.
type UniqueFunc func(ctx context.Context, code string) (bool, error)

type Generator struct {
	maxAttempts int
	intN        func(n int) int
}

type Option func(*Generator)

// WithMaxAttempts sets the retry budget. Values < 1 keep the default.
func WithMaxAttempts(n int) Option {
	return func(g *Generator) {
		if n > 0 {
			g.maxAttempts = n
		}
	}
}

// WithRand replaces the symbol picker. intN must return a value in [0, n).
func WithRand(intN func(n int) int) Option {
	return func(g *Generator) {
		if intN != nil {
			g.intN = intN
		}
	}
}

func New(opts ...Option) *Generator {
	g := &Generator{
		maxAttempts: DefaultMaxAttempts,
		intN:        rand.IntN,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

func (g *Generator) MaxAttempts() int { return g.maxAttempts }

// Derive builds one candidate code for name and postalCode.
func (g *Generator) Derive(name, postalCode string) string {
	var b strings.Builder
	b.Grow(Length)
	b.WriteString(Letters(name))
	b.WriteString(Digits(postalCode))
	b.WriteByte(Symbols[g.intN(len(Symbols))])
	return b.String()
}

// GenerateUnique derives candidates until isUnique accepts one. isUnique is
// called at most MaxAttempts times. A predicate error stops generation and is
// returned wrapped; running out of attempts returns ErrGenerationExhausted.
func (g *Generator) GenerateUnique(ctx context.Context, name, postalCode string, isUnique UniqueFunc) (string, error) {
	if isUnique == nil {
		return "", fmt.Errorf("codegen: uniqueness predicate required")
	}
	for attempt := 0; attempt < g.maxAttempts; attempt++ {
		code := g.Derive(name, postalCode)
		ok, err := isUnique(ctx, code)
		if err != nil {
			return "", fmt.Errorf("check code %q: %w", code, err)
		}
		if ok {
			return code, nil
		}
	}
	return "", fmt.Errorf("%w after %d attempts", ErrGenerationExhausted, g.maxAttempts)
}

// Letters returns the first three ASCII letters of name, uppercased and
// right-padded with 'X'.
func Letters(name string) string {
	out := make([]byte, 0, letterCount)
	for i := 0; i < len(name) && len(out) < letterCount; i++ {
		c := name[i]
		switch {
		case c >= 'A' && c <= 'Z':
			out = append(out, c)
		case c >= 'a' && c <= 'z':
			out = append(out, c-'a'+'A')
		}
	}
	for len(out) < letterCount {
		out = append(out, letterPad)
	}
	return string(out)
}

// Digits returns the last three ASCII digits of postalCode, left-padded
// with '0'.
func Digits(postalCode string) string {
	out := make([]byte, digitCount)
	n := 0
	for i := len(postalCode) - 1; i >= 0 && n < digitCount; i-- {
		c := postalCode[i]
		if c >= '0' && c <= '9' {
			n++
			out[digitCount-n] = c
		}
	}
	for i := 0; i < digitCount-n; i++ {
		out[i] = digitPad
	}
	return string(out)
}

// Valid reports whether code has the LLLDDDS shape.
func Valid(code string) bool {
	if len(code) != Length {
		return false
	}
	for i := 0; i < letterCount; i++ {
		if code[i] < 'A' || code[i] > 'Z' {
			return false
		}
	}
	for i := letterCount; i < letterCount+digitCount; i++ {
		if code[i] < '0' || code[i] > '9' {
			return false
		}
	}
	return strings.IndexByte(Symbols, code[Length-1]) >= 0
}
