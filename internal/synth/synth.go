// Package synth fabricates placeholder companies and contacts when real
// discovery yields too few results. Every record it produces is tagged
// synthetic; callers must never present one as verified.
package synth

import (
	"math/rand"

	"github.com/sells-group/prospect-cli/internal/lexicon"
)

// Generator produces synthetic candidates. The random source is injectable
// so tests can run it deterministically.
type Generator struct {
	lex *lexicon.Set
	rng *rand.Rand
}

// New creates a Generator with its own seeded random source.
func New(lex *lexicon.Set) *Generator {
	return NewSeeded(lex, rand.Uint64(), rand.Uint64())
}

// NewSeeded creates a Generator with a fixed seed for reproducible output.
func NewSeeded(lex *lexicon.Set, seed1, seed2 uint64) *Generator {
	return &Generator{
		lex: lex,
		rng: rand.New(rand.NewSource(int64(seed1 ^ (seed2 * 0x9e3779b97f4a7c15)))),
	}
}

func (g *Generator) pick(list []string) string {
	return list[g.rng.Intn(len(list))]
}

// chance returns true with probability pct/100.
func (g *Generator) chance(pct int) bool {
	return g.rng.Intn(100) < pct
}
