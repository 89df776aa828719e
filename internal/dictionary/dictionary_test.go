package dictionary

import (
	"reflect"
	"strings"
	"testing"
)

func TestSuggestions(t *testing.T) {
	d := FromWords("test", 3, []string{"CAT", "CATS", "DOG"})

	tests := []struct {
		prefix string
		want   []string
	}{
		{"CA", []string{"CAT", "CATS"}},
		{"CAT", []string{"CATS"}},
		{"CATS", nil},
		{"DO", []string{"DOG"}},
		{"X", nil},
	}
	for _, tc := range tests {
		if got := d.Suggestions(tc.prefix, 0); !reflect.DeepEqual(got, tc.want) {
			t.Errorf("Suggestions(%q) = %v, want %v", tc.prefix, got, tc.want)
		}
	}

	if got := d.Suggestions("", 8); got != nil {
		t.Errorf("empty prefix should yield nothing, got %v", got)
	}
}

func TestSuggestionsLimitAndOrder(t *testing.T) {
	words := []string{"BAT", "BATH", "BATS", "BATCH", "BATTER", "BATON", "BATHE", "BATHS", "BATIK", "BATTY"}
	d := FromWords("test", 3, words)

	got := d.Suggestions("BAT", 0)
	if len(got) != DefaultSuggestionLimit {
		t.Fatalf("expected %d suggestions, got %d", DefaultSuggestionLimit, len(got))
	}
	// Insertion order, exact word excluded
	if got[0] != "BATH" || got[1] != "BATS" {
		t.Errorf("suggestions out of insertion order: %v", got)
	}

	if got := d.Suggestions("BAT", 3); len(got) != 3 {
		t.Errorf("limit 3 returned %d suggestions", len(got))
	}
}

func TestContainsAndPrefix(t *testing.T) {
	d := FromWords("test", 3, []string{"cat", "CATS", "do"})

	tests := []struct {
		name string
		fn   func() bool
		want bool
	}{
		{"contains uppercased", func() bool { return d.Contains("CAT") }, true},
		{"case sensitive query", func() bool { return d.Contains("cat") }, false},
		{"short word dropped", func() bool { return d.Contains("DO") }, false},
		{"longer prefix match", func() bool { return d.HasLongerPrefixMatch("CAT") }, true},
		{"no strictly longer word", func() bool { return d.HasLongerPrefixMatch("CATS") }, false},
		{"empty prefix", func() bool { return d.HasLongerPrefixMatch("") }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.fn(); got != tt.want {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestShortestExtension(t *testing.T) {
	d := FromWords("test", 1, []string{"CATTLE", "CATS", "CAB", "CAR", "CAT"})

	tests := []struct {
		prefix string
		want   string
		ok     bool
	}{
		{"CA", "CAB", true},
		{"CAT", "CATS", true},
		{"CATT", "CATTLE", true},
		{"CATTLE", "", false},
		{"X", "", false},
	}

	for _, tt := range tests {
		got, ok := d.ShortestExtension(tt.prefix)
		if got != tt.want || ok != tt.ok {
			t.Errorf("ShortestExtension(%q) = %q, %v; want %q, %v", tt.prefix, got, ok, tt.want, tt.ok)
		}
	}
}

func TestAlphabet(t *testing.T) {
	d := FromWords("test", 1, []string{"BAD", "CAB", "ZOO"})

	got := string(d.Alphabet())
	if got != "BADCZO" {
		t.Errorf("Alphabet() = %q, want first-appearance order BADCZO", got)
	}

	empty := New("pending", 1)
	if len(empty.Alphabet()) != 0 {
		t.Error("loading dictionary should have an empty alphabet")
	}
}

func TestLoadingDictionaryIsEmpty(t *testing.T) {
	d := New("pending", 3)

	if d.State() != StateLoading {
		t.Fatalf("expected Loading, got %v", d.State())
	}
	if d.Contains("CAT") || d.HasLongerPrefixMatch("C") || d.Len() != 0 {
		t.Error("loading dictionary should answer as empty")
	}

	d.publish([]string{"CAT"})
	if !d.Ready() || !d.Contains("CAT") {
		t.Error("published dictionary should be ready and contain CAT")
	}

	// A second publish is ignored
	d.publish([]string{"DOG"})
	d.fail(nil)
	if d.Contains("DOG") || d.State() != StateReady {
		t.Error("dictionary must not change after it is published")
	}
}

func TestParse(t *testing.T) {
	input := strings.Join([]string{
		"apple, ant ,axe",
		"b: bat,bee",
		"",
		"  c : cat",
		"don't,dog",
		"APPLE",
		"ok",
	}, "\n")

	got, err := Parse(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Parse() failed: %v", err)
	}

	want := []string{"APPLE", "ANT", "AXE", "BAT", "BEE", "CAT", "DOG", "OK"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Parse() = %v, want %v", got, want)
	}
}
