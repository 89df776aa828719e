// Package letters picks the letter printed on each newly spawned tile.
package letters

import "math/rand"

// weights holds English letter frequencies for A..Z.
var weights = [26]int{8, 2, 3, 4, 12, 2, 2, 6, 7, 1, 1, 4, 2, 7, 8, 2, 1, 6, 6, 9, 3, 2, 2, 1, 2, 1}

var totalWeight = func() int {
	n := 0
	for _, w := range weights {
		n += w
	}
	return n
}()

// Weight returns the sampling weight of an uppercase letter, or 0.
func Weight(r rune) int {
	if r < 'A' || r > 'Z' {
		return 0
	}
	return weights[r-'A']
}

// Extender finds the shortest word strictly longer than prefix.
// *dictionary.Dictionary satisfies it.
type Extender interface {
	ShortestExtension(prefix string) (string, bool)
}

// Generator draws tile letters from a seeded source.
type Generator struct {
	rng *rand.Rand
}

// New returns a generator drawing from rng.
func New(rng *rand.Rand) *Generator {
	return &Generator{rng: rng}
}

// Next returns the letter for the next tile.
//
// With no alphabet the letter is drawn by English frequency. With an
// alphabet, the next letter of the shortest word extending buffer is
// preferred; otherwise the letter is uniform over the alphabet.
func (g *Generator) Next(buffer string, alphabet []rune, ext Extender) rune {
	if len(alphabet) == 0 {
		return g.weighted()
	}

	if buffer != "" && ext != nil {
		if word, ok := ext.ShortestExtension(buffer); ok {
			return rune(word[len(buffer)])
		}
	}

	return alphabet[g.rng.Intn(len(alphabet))]
}

func (g *Generator) weighted() rune {
	n := g.rng.Intn(totalWeight)
	for i, w := range weights {
		if n < w {
			return rune('A' + i)
		}
		n -= w
	}
	return 'E'
}
