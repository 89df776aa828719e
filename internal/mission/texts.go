package mission

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"sort"

	"gopkg.in/yaml.v3"
)

//go:embed data/missions.yaml
var defaultTexts []byte

// Texts maps a level to its objective description.
type Texts map[int]string

// DefaultTexts returns the embedded mission descriptions.
func DefaultTexts() Texts {
	t, err := ParseTexts(defaultTexts)
	if err != nil {
		return Texts{}
	}
	return t
}

// ParseTexts decodes a YAML map of level to description.
func ParseTexts(data []byte) (Texts, error) {
	var t Texts
	if err := yaml.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("mission: cannot parse texts: %w", err)
	}
	if t == nil {
		t = Texts{}
	}
	return t, nil
}

// TextsFile is the optional override file looked up in a word list directory.
const TextsFile = "missions.yaml"

// LoadTexts returns the embedded texts with levels from fsys/missions.yaml
// layered on top. A missing file is not an error.
func LoadTexts(fsys fs.FS) (Texts, error) {
	texts := DefaultTexts()
	if fsys == nil {
		return texts, nil
	}
	data, err := fs.ReadFile(fsys, TextsFile)
	if errors.Is(err, fs.ErrNotExist) {
		return texts, nil
	}
	if err != nil {
		return texts, fmt.Errorf("mission: cannot read %s: %w", TextsFile, err)
	}
	custom, err := ParseTexts(data)
	if err != nil {
		return texts, err
	}
	for level, text := range custom {
		texts[level] = text
	}
	return texts, nil
}

// Describe returns the text for level, or a placeholder when none exists.
func (t Texts) Describe(level int) string {
	if s, ok := t[level]; ok && s != "" {
		return s
	}
	return fmt.Sprintf("Mission %d: No mission found", level)
}

// Levels returns the described levels in ascending order.
func (t Texts) Levels() []int {
	levels := make([]int, 0, len(t))
	for l := range t {
		levels = append(levels, l)
	}
	sort.Ints(levels)
	return levels
}
