// Package wordbuf holds the collected letters and finds dictionary words in
// them.
package wordbuf

// Lexicon is the subset of dictionary queries the matcher needs.
type Lexicon interface {
	Contains(word string) bool
}

// Match is a dictionary word found inside the buffer.
type Match struct {
	Word      string
	Start     int
	End       int    // Exclusive
	Remainder string // Buffer with Word cut out
}

// FindMatch returns the leftmost, then shortest, contiguous run of buffer
// that is a dictionary word of at least minLen letters.
func FindMatch(buffer string, lex Lexicon, minLen int) (Match, bool) {
	if minLen < 1 {
		minLen = 1
	}
	for start := 0; start < len(buffer); start++ {
		for end := start + minLen; end <= len(buffer); end++ {
			word := buffer[start:end]
			if lex.Contains(word) {
				return Match{
					Word:      word,
					Start:     start,
					End:       end,
					Remainder: buffer[:start] + buffer[end:],
				}, true
			}
		}
	}
	return Match{}, false
}

// Buffer is the ordered run of collected letters not yet consumed by a word.
type Buffer struct {
	letters []byte
}

// String returns the buffered letters.
func (b *Buffer) String() string {
	return string(b.letters)
}

// Len returns the number of buffered letters.
func (b *Buffer) Len() int {
	return len(b.letters)
}

// Append adds a picked-up letter.
func (b *Buffer) Append(r rune) {
	b.letters = append(b.letters, byte(r))
}

// Set replaces the contents, typically with a match remainder.
func (b *Buffer) Set(s string) {
	b.letters = append(b.letters[:0], s...)
}

// Reset empties the buffer.
func (b *Buffer) Reset() {
	b.letters = b.letters[:0]
}

// Detect runs the post-pickup trigger: the buffer must hold at least
// triggerLen letters, and either the whole buffer is a word or some run of
// at least minLen letters is. The found match is returned but not consumed.
func (b *Buffer) Detect(lex Lexicon, triggerLen, minLen int) (Match, bool) {
	if len(b.letters) < triggerLen {
		return Match{}, false
	}
	s := b.String()
	if m, ok := FindMatch(s, lex, minLen); ok {
		return m, true
	}
	if lex.Contains(s) {
		return Match{Word: s, Start: 0, End: len(s), Remainder: ""}, true
	}
	return Match{}, false
}

// Consume applies a match, leaving the remainder in the buffer.
func (b *Buffer) Consume(m Match) {
	b.Set(m.Remainder)
}
