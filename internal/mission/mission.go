// Package mission defines the per-level objectives of the missions variant.
//
// An Objective is a tagged value; Evaluate switches on its Kind and folds the
// completed word into a Progress accumulator. Levels without an objective
// never complete.
package mission

import (
	"fmt"
	"sort"
	"strings"
)

// LastLevel is the highest level that has an objective.
const LastLevel = 18

// Kind tags an objective variant.
type Kind int

const (
	KindNone Kind = iota
	KindAlphabetRun
	KindAllVowelsAcross
	KindOrderedConsonants
	KindWordLength
	KindPalindrome
	KindSameEnds
	KindConsecutive
	KindQU
	KindSharedFirst
	KindSharedLast
	KindRhyme
	KindAllVowelsInWord
	KindDoubleLetter
	KindNoVowels
	KindContainsZ
)

var kindNames = map[Kind]string{
	KindNone:              "none",
	KindAlphabetRun:       "alphabet-run",
	KindAllVowelsAcross:   "vowels",
	KindOrderedConsonants: "ordered-consonants",
	KindWordLength:        "word-length",
	KindPalindrome:        "palindrome",
	KindSameEnds:          "same-ends",
	KindConsecutive:       "consecutive",
	KindQU:                "q-and-u",
	KindSharedFirst:       "shared-first",
	KindSharedLast:        "shared-last",
	KindRhyme:             "rhyme",
	KindAllVowelsInWord:   "all-vowels",
	KindDoubleLetter:      "double-letter",
	KindNoVowels:          "no-vowels",
	KindContainsZ:         "contains-z",
}

func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// Objective is one level's goal.
type Objective struct {
	Kind   Kind
	Target int // Count needed for accumulating kinds
	Param  int // Word length for KindWordLength
}

// Accumulates reports whether progress carries across words.
func (o Objective) Accumulates() bool {
	switch o.Kind {
	case KindAllVowelsAcross, KindOrderedConsonants, KindWordLength,
		KindSharedFirst, KindSharedLast, KindRhyme:
		return true
	}
	return false
}

// ForLevel returns the objective of a mission level.
func ForLevel(level int) Objective {
	switch level {
	case 1:
		return Objective{Kind: KindAlphabetRun, Target: 5}
	case 2:
		return Objective{Kind: KindAllVowelsAcross, Target: 5}
	case 3:
		return Objective{Kind: KindOrderedConsonants, Target: 5}
	case 4, 5, 6, 7:
		return Objective{Kind: KindWordLength, Target: 5, Param: level - 2}
	case 8:
		return Objective{Kind: KindPalindrome}
	case 9:
		return Objective{Kind: KindSameEnds}
	case 10:
		return Objective{Kind: KindConsecutive}
	case 11:
		return Objective{Kind: KindQU}
	case 12:
		return Objective{Kind: KindSharedFirst, Target: 5}
	case 13:
		return Objective{Kind: KindSharedLast, Target: 5}
	case 14:
		return Objective{Kind: KindRhyme, Target: 3}
	case 15:
		return Objective{Kind: KindAllVowelsInWord}
	case 16:
		return Objective{Kind: KindDoubleLetter}
	case 17:
		return Objective{Kind: KindNoVowels}
	case 18:
		return Objective{Kind: KindContainsZ}
	default:
		return Objective{Kind: KindNone}
	}
}

// Progress accumulates state for objectives that span several words.
// It is reset on every level advance and on restart.
type Progress struct {
	vowels     map[byte]bool
	consonants []byte
	lengthHits int
	groups     map[string]map[string]bool
}

// NewProgress returns an empty accumulator.
func NewProgress() *Progress {
	p := &Progress{}
	p.Reset()
	return p
}

// Reset clears all accumulated state.
func (p *Progress) Reset() {
	p.vowels = make(map[byte]bool)
	p.consonants = p.consonants[:0]
	p.lengthHits = 0
	p.groups = make(map[string]map[string]bool)
}

// Evaluate folds a completed word into p and reports whether the objective
// is met. Words are uppercase.
func (o Objective) Evaluate(word string, p *Progress) bool {
	switch o.Kind {
	case KindAlphabetRun:
		return longestRun(word) >= o.Target

	case KindAllVowelsAcross:
		for i := 0; i < len(word); i++ {
			if isVowel(word[i]) {
				p.vowels[word[i]] = true
			}
		}
		return len(p.vowels) >= o.Target

	case KindOrderedConsonants:
		for i := 0; i < len(word); i++ {
			c := word[i]
			if isVowel(c) {
				continue
			}
			if n := len(p.consonants); n == 0 || c >= p.consonants[n-1] {
				p.consonants = append(p.consonants, c)
			}
		}
		return len(p.consonants) >= o.Target

	case KindWordLength:
		if len(word) == o.Param {
			p.lengthHits++
		}
		return p.lengthHits >= o.Target

	case KindPalindrome:
		return len(word) > 1 && isPalindrome(word)

	case KindSameEnds:
		return len(word) > 1 && word[0] == word[len(word)-1]

	case KindConsecutive:
		return word != "" && longestRun(word) == len(word)

	case KindQU:
		return strings.ContainsRune(word, 'Q') && strings.ContainsRune(word, 'U')

	case KindSharedFirst:
		if word == "" {
			return false
		}
		return p.group(word[:1], word) >= o.Target

	case KindSharedLast:
		if word == "" {
			return false
		}
		return p.group(word[len(word)-1:], word) >= o.Target

	case KindRhyme:
		if len(word) < 2 {
			return false
		}
		return p.group(word[len(word)-2:], word) >= o.Target

	case KindAllVowelsInWord:
		for _, v := range "AEIOU" {
			if !strings.ContainsRune(word, v) {
				return false
			}
		}
		return true

	case KindDoubleLetter:
		for i := 1; i < len(word); i++ {
			if word[i] == word[i-1] {
				return true
			}
		}
		return false

	case KindNoVowels:
		if word == "" {
			return false
		}
		for i := 0; i < len(word); i++ {
			if isVowel(word[i]) {
				return false
			}
		}
		return true

	case KindContainsZ:
		return strings.ContainsRune(word, 'Z')
	}
	return false
}

// group adds word to the group under key and returns the group size.
func (p *Progress) group(key, word string) int {
	g, ok := p.groups[key]
	if !ok {
		g = make(map[string]bool)
		p.groups[key] = g
	}
	g[word] = true
	return len(g)
}

// Status renders accumulated progress for the HUD, e.g. "vowels 3/5".
// Objectives that are decided by a single word return "".
func (o Objective) Status(p *Progress) string {
	switch o.Kind {
	case KindAllVowelsAcross:
		keys := make([]string, 0, len(p.vowels))
		for v := range p.vowels {
			keys = append(keys, string(v))
		}
		sort.Strings(keys)
		return fmt.Sprintf("vowels %d/%d %s", len(p.vowels), o.Target, strings.Join(keys, ""))
	case KindOrderedConsonants:
		return fmt.Sprintf("consonants %d/%d %s", len(p.consonants), o.Target, string(p.consonants))
	case KindWordLength:
		return fmt.Sprintf("%d-letter words %d/%d", o.Param, p.lengthHits, o.Target)
	case KindSharedFirst, KindSharedLast, KindRhyme:
		best, key := 0, ""
		for k, g := range p.groups {
			if len(g) > best || (len(g) == best && k < key) {
				best, key = len(g), k
			}
		}
		if best == 0 {
			return fmt.Sprintf("group 0/%d", o.Target)
		}
		return fmt.Sprintf("group %s %d/%d", key, best, o.Target)
	}
	return ""
}

func isVowel(c byte) bool {
	switch c {
	case 'A', 'E', 'I', 'O', 'U':
		return true
	}
	return false
}

func isPalindrome(s string) bool {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		if s[i] != s[j] {
			return false
		}
	}
	return true
}

// longestRun returns the length of the longest stretch in which each letter
// is the alphabet successor of the previous one.
func longestRun(s string) int {
	if s == "" {
		return 0
	}
	best, cur := 1, 1
	for i := 1; i < len(s); i++ {
		if s[i] == s[i-1]+1 {
			cur++
			if cur > best {
				best = cur
			}
		} else {
			cur = 1
		}
	}
	return best
}
