package letters

import (
	"math/rand"
	"testing"

	"github.com/vovakirdan/wordsnake/internal/dictionary"
)

func TestWeightedDistribution(t *testing.T) {
	g := New(rand.New(rand.NewSource(1)))

	counts := make(map[rune]int)
	const draws = 20000
	for range draws {
		r := g.Next("", nil, nil)
		if r < 'A' || r > 'Z' {
			t.Fatalf("drew non-letter %q", r)
		}
		counts[r]++
	}

	// E (12) should clearly beat Z (1)
	if counts['E'] < counts['Z']*4 {
		t.Errorf("expected E to dominate Z, got E=%d Z=%d", counts['E'], counts['Z'])
	}
	if counts['E'] <= counts['T'] {
		t.Errorf("expected E (12) more often than T (9), got E=%d T=%d", counts['E'], counts['T'])
	}
}

func TestWeight(t *testing.T) {
	tests := []struct {
		r    rune
		want int
	}{
		{'A', 8}, {'E', 12}, {'Q', 1}, {'T', 9}, {'Z', 1}, {'a', 0}, {'!', 0},
	}
	for _, tt := range tests {
		if got := Weight(tt.r); got != tt.want {
			t.Errorf("Weight(%q) = %d, want %d", tt.r, got, tt.want)
		}
	}
}

func TestNextExtendsBuffer(t *testing.T) {
	d := dictionary.FromWords("test", 1, []string{"CATTLE", "CATS", "DOG"})
	g := New(rand.New(rand.NewSource(7)))

	for range 50 {
		if got := g.Next("CAT", d.Alphabet(), d); got != 'S' {
			t.Fatalf("expected S to extend CAT toward CATS, got %q", got)
		}
	}
}

func TestNextUniformOverAlphabet(t *testing.T) {
	d := dictionary.FromWords("test", 1, []string{"AB", "BA"})
	g := New(rand.New(rand.NewSource(3)))
	alphabet := d.Alphabet()

	seen := make(map[rune]bool)
	for range 200 {
		// No word extends "ZZ", and an empty buffer never extends
		for _, buf := range []string{"", "ZZ"} {
			r := g.Next(buf, alphabet, d)
			if r != 'A' && r != 'B' {
				t.Fatalf("letter %q outside alphabet", r)
			}
			seen[r] = true
		}
	}
	if !seen['A'] || !seen['B'] {
		t.Errorf("expected both alphabet letters, saw %v", seen)
	}
}
