// Package codegen generates the short unique codes printed on labels.
//
// A code is [Length] characters drawn from [Alphabet]: uppercase letters and
// digits without 'Q', which is too easily misread as 'O' on small prints.
// Every code returned by a single [Generator.Generate] call is unique.
//
// Generation is random by default. [WithSeed] makes the stream of codes
// reproducible, so the same seed and count always yield the same codes in
// the same order.
//
//	gen := codegen.New(codegen.WithSeed(42))
//	codes, err := gen.Generate(10)
package codegen

import (
	crand "crypto/rand"
	"math"
	"math/rand/v2"
	"strings"

	"github.com/matzehuels/qrlabels/pkg/errors"
)

const (
	// Alphabet is the set of characters codes are drawn from.
	Alphabet = "ABCDEFGHIJKLMNOPRSTUVWXYZ0123456789"

	// Excluded is the character left out of Alphabet.
	Excluded = 'Q'

	// Length is the number of characters in a code.
	Length = 5
)

// Capacity returns the number of distinct codes the alphabet can represent.
func Capacity() int {
	return int(math.Pow(float64(len(Alphabet)), Length))
}

// Option configures a Generator.
type Option func(*Generator)

// WithSeed makes generation deterministic.
func WithSeed(seed uint64) Option {
	return func(g *Generator) {
		g.rng = rand.New(rand.NewPCG(seed, seed^0xdeadbeef))
	}
}

// Generator draws unique codes from a random source.
// It is not safe for concurrent use.
type Generator struct {
	rng *rand.Rand
}

// New creates a Generator. Without options it draws from a ChaCha8 stream
// seeded from crypto/rand.
func New(opts ...Option) *Generator {
	g := &Generator{}
	for _, opt := range opts {
		opt(g)
	}
	if g.rng == nil {
		var seed [32]byte
		_, _ = crand.Read(seed[:])
		g.rng = rand.New(rand.NewChaCha8(seed))
	}
	return g
}

// Generate returns n distinct codes in generation order. A code that
// collides with one already drawn is discarded and redrawn.
func (g *Generator) Generate(n int) ([]string, error) {
	if err := errors.ValidateCount("count", n); err != nil {
		return nil, err
	}
	if capacity := Capacity(); n > capacity {
		return nil, errors.New(errors.ErrCodeCapacity,
			"cannot generate %d unique codes: only %d combinations of %d characters exist", n, capacity, Length)
	}

	codes := make([]string, 0, n)
	seen := make(map[string]struct{}, n)
	for len(codes) < n {
		code := g.code()
		if _, dup := seen[code]; dup {
			continue
		}
		seen[code] = struct{}{}
		codes = append(codes, code)
	}
	return codes, nil
}

func (g *Generator) code() string {
	var b [Length]byte
	for i := range b {
		b[i] = Alphabet[g.rng.IntN(len(Alphabet))]
	}
	return string(b[:])
}

// Validate checks that code has the right length and only uses characters
// from Alphabet.
func Validate(code string) error {
	if len(code) != Length {
		return errors.New(errors.ErrCodeInvalidInput, "code %q must be %d characters long", code, Length)
	}
	for _, r := range code {
		if !strings.ContainsRune(Alphabet, r) {
			return errors.New(errors.ErrCodeInvalidInput, "code %q contains invalid character %q", code, r)
		}
	}
	return nil
}
