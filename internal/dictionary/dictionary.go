// Package dictionary holds the word lists the game matches against.
//
// A Dictionary is created in the Loading state and is published exactly once,
// either with its words (Ready) or with the load error (Failed). Queries on a
// dictionary that is not Ready behave as if it were empty, so a tick that runs
// before a load completes simply finds no words.
package dictionary

import (
	"strings"
	"sync"
)

// DefaultSuggestionLimit caps Suggestions when the caller passes limit <= 0.
const DefaultSuggestionLimit = 8

// State is the load state of a Dictionary.
type State int

const (
	StateLoading State = iota
	StateReady
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateLoading:
		return "loading"
	case StateReady:
		return "ready"
	case StateFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Dictionary is an immutable-once-published set of uppercase words.
// Iteration order is the order words appeared in the source.
type Dictionary struct {
	mu       sync.RWMutex
	name     string
	minLen   int
	state    State
	err      error
	words    []string
	set      map[string]struct{}
	alphabet []rune
}

// New returns an empty dictionary in the Loading state.
// Words shorter than minLen are dropped when the dictionary is published.
func New(name string, minLen int) *Dictionary {
	return &Dictionary{
		name:   name,
		minLen: minLen,
		state:  StateLoading,
		set:    make(map[string]struct{}),
	}
}

// FromWords builds a Ready dictionary from an in-memory list.
func FromWords(name string, minLen int, words []string) *Dictionary {
	d := New(name, minLen)
	d.publish(words)
	return d
}

// publish fills the dictionary and marks it Ready. Later calls are ignored.
func (d *Dictionary) publish(words []string) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.state != StateLoading {
		return
	}

	seenLetter := make(map[rune]bool)
	for _, w := range words {
		w = strings.ToUpper(strings.TrimSpace(w))
		if len(w) == 0 || len(w) < d.minLen {
			continue
		}
		if _, dup := d.set[w]; dup {
			continue
		}
		d.set[w] = struct{}{}
		d.words = append(d.words, w)
		for _, r := range w {
			if r >= 'A' && r <= 'Z' && !seenLetter[r] {
				seenLetter[r] = true
				d.alphabet = append(d.alphabet, r)
			}
		}
	}
	d.state = StateReady
}

// fail marks the dictionary Failed. It stays empty.
func (d *Dictionary) fail(err error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.state != StateLoading {
		return
	}
	d.state = StateFailed
	d.err = err
}

// Name returns the source name the dictionary was loaded from.
func (d *Dictionary) Name() string {
	return d.name
}

// MinLen returns the minimum word length kept by this dictionary.
func (d *Dictionary) MinLen() int {
	return d.minLen
}

// State returns the current load state.
func (d *Dictionary) State() State {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.state
}

// Ready reports whether the dictionary finished loading successfully.
func (d *Dictionary) Ready() bool {
	return d.State() == StateReady
}

// Err returns the load error of a Failed dictionary.
func (d *Dictionary) Err() error {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.err
}

// Len returns the number of words.
func (d *Dictionary) Len() int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return len(d.words)
}

// Contains reports whether word is in the dictionary.
func (d *Dictionary) Contains(word string) bool {
	d.mu.RLock()
	defer d.mu.RUnlock()
	_, ok := d.set[word]
	return ok
}

// HasLongerPrefixMatch reports whether some word starts with prefix and is
// strictly longer than it.
func (d *Dictionary) HasLongerPrefixMatch(prefix string) bool {
	d.mu.RLock()
	defer d.mu.RUnlock()

	for _, w := range d.words {
		if len(w) > len(prefix) && strings.HasPrefix(w, prefix) {
			return true
		}
	}
	return false
}

// Suggestions returns up to limit words that extend prefix, in dictionary
// order. An empty prefix yields no suggestions.
func (d *Dictionary) Suggestions(prefix string, limit int) []string {
	if prefix == "" {
		return nil
	}
	if limit <= 0 {
		limit = DefaultSuggestionLimit
	}

	d.mu.RLock()
	defer d.mu.RUnlock()

	var out []string
	for _, w := range d.words {
		if len(w) > len(prefix) && strings.HasPrefix(w, prefix) {
			out = append(out, w)
			if len(out) == limit {
				break
			}
		}
	}
	return out
}

// ShortestExtension returns the shortest word that has prefix as a strict
// prefix. Ties go to the word seen first.
func (d *Dictionary) ShortestExtension(prefix string) (string, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	best := ""
	for _, w := range d.words {
		if len(w) <= len(prefix) || !strings.HasPrefix(w, prefix) {
			continue
		}
		if best == "" || len(w) < len(best) {
			best = w
		}
	}
	return best, best != ""
}

// Alphabet returns every letter that appears in any word, in order of first
// appearance.
func (d *Dictionary) Alphabet() []rune {
	d.mu.RLock()
	defer d.mu.RUnlock()

	out := make([]rune, len(d.alphabet))
	copy(out, d.alphabet)
	return out
}

// Words returns a copy of the word list in dictionary order.
func (d *Dictionary) Words() []string {
	d.mu.RLock()
	defer d.mu.RUnlock()

	out := make([]string, len(d.words))
	copy(out, d.words)
	return out
}
