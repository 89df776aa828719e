package dictionary

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Parse reads a newline- or comma-delimited word list.
//
// Tokens are trimmed and uppercased. A line may start with a one-letter
// group label ("a: apple,ant"), which is dropped. Tokens containing anything
// other than letters are skipped, as are duplicates.
func Parse(r io.Reader) ([]string, error) {
	var words []string
	seen := make(map[string]bool)

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), 4*1024*1024)

	for scanner.Scan() {
		line := stripLabel(scanner.Text())
		for _, tok := range strings.Split(line, ",") {
			w := strings.ToUpper(strings.TrimSpace(tok))
			if w == "" || !isLetters(w) || seen[w] {
				continue
			}
			seen[w] = true
			words = append(words, w)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading word list: %w", err)
	}
	return words, nil
}

// stripLabel removes a leading "x:" group label.
func stripLabel(line string) string {
	trimmed := strings.TrimLeft(line, " \t")
	if len(trimmed) >= 2 && isLetter(rune(trimmed[0])) {
		rest := strings.TrimLeft(trimmed[1:], " \t")
		if strings.HasPrefix(rest, ":") {
			return rest[1:]
		}
	}
	return line
}

func isLetters(s string) bool {
	for _, r := range s {
		if !isLetter(r) {
			return false
		}
	}
	return true
}

func isLetter(r rune) bool {
	return (r >= 'A' && r <= 'Z') || (r >= 'a' && r <= 'z')
}
