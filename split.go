package charabia

import (
	"fmt"
	"unicode/utf8"
)

// Split partitions text on every occurrence of any configured separator,
// returning the between-separator substrings in order, empty substrings
// included. A group longer than seven characters cannot be a valid token
// and fails with ErrMalformedInput.
func (c *Codec) Split(text string) ([]string, error) {
	if !c.Configured() {
		return nil, ErrNotConfigured
	}
	groups := make([]string, 0, 8)
	start := 0
	for i, r := range text {
		if c.sepSet[r] {
			groups = append(groups, text[start:i])
			start = i + utf8.RuneLen(r)
		}
	}
	groups = append(groups, text[start:])
	for _, g := range groups {
		if utf8.RuneCountInString(g) > maxTokenLen {
			return nil, fmt.Errorf("%w: the provided text does not seem valid for the associated separator configuration %q",
				ErrMalformedInput, string(c.seps))
		}
	}
	return groups, nil
}
