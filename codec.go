package charabia

import (
	"fmt"
	"math/rand/v2"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/paraglidehq/charabia/tower"
)

// Codec holds one separator configuration together with the index tables
// derived from it. A Codec built by NewCodec is ready to use; the zero
// value is unconfigured and every operation on it fails with
// ErrNotConfigured.
type Codec struct {
	seps   []rune
	sepSet map[rune]bool
	enc    [10][]byte
	dec    map[rune]string
	rand   *rand.Rand
}

// NewCodec validates the given separators and returns a configured Codec.
//
// Separators must be 1 to 42 alphanumeric characters. Duplicates are
// removed preserving first occurrence. A configuration whose separators
// cover every candidate letter of some digit bucket would make that digit
// unencodable and is rejected up front.
func NewCodec(separators string) (*Codec, error) {
	seps, err := parseSeparators(separators)
	if err != nil {
		return nil, err
	}
	enc := buildEncodingIndex(seps)
	for d, bucket := range enc {
		if len(bucket) == 0 {
			return nil, fmt.Errorf("%w: separators %q leave no letters for digit %d", ErrInvalidSeparators, string(seps), d)
		}
	}
	sepSet := make(map[rune]bool, len(seps))
	for _, s := range seps {
		sepSet[s] = true
	}
	return &Codec{
		seps:   seps,
		sepSet: sepSet,
		enc:    enc,
		dec:    buildDecodingIndex(seps),
	}, nil
}

// NewCodecWithRand returns a configured Codec drawing its random choices
// from r instead of the shared source. Pass a deterministically seeded
// source to make seeded encoding reproducible.
func NewCodecWithRand(separators string, r *rand.Rand) (*Codec, error) {
	c, err := NewCodec(separators)
	if err != nil {
		return nil, err
	}
	c.rand = r
	return c, nil
}

func parseSeparators(separators string) ([]rune, error) {
	if separators == "" {
		return nil, fmt.Errorf("%w: separators must not be empty", ErrInvalidSeparators)
	}
	all := []rune(separators)
	if len(all) > 42 {
		return nil, fmt.Errorf("%w: length must be between 1 and 42, got %d", ErrInvalidSeparators, len(all))
	}
	seen := make(map[rune]bool, len(all))
	seps := make([]rune, 0, len(all))
	for _, r := range all {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			return nil, fmt.Errorf("%w: %q is not alphanumeric", ErrInvalidSeparators, r)
		}
		if seen[r] {
			continue
		}
		seen[r] = true
		seps = append(seps, r)
	}
	return seps, nil
}

// Configured reports whether the Codec carries a separator set and both
// index tables.
func (c *Codec) Configured() bool {
	return c != nil && len(c.seps) > 0 && len(c.dec) > 0
}

// Separators returns the deduplicated separator set, or "" when the Codec
// is unconfigured.
func (c *Codec) Separators() string {
	if c == nil {
		return ""
	}
	return string(c.seps)
}

// EncodingIndex returns the digit-to-letters table: for each digit 0-9,
// the ordered candidate letters it may encode to.
func (c *Codec) EncodingIndex() [10]string {
	var idx [10]string
	for d, bucket := range c.enc {
		idx[d] = string(bucket)
	}
	return idx
}

// DecodingIndex returns a copy of the character-to-digit table, including
// the separator-to-space and newline-to-empty overlay entries.
func (c *Codec) DecodingIndex() map[rune]string {
	dec := make(map[rune]string, len(c.dec))
	for k, v := range c.dec {
		dec[k] = v
	}
	return dec
}

func (c *Codec) intn(n int) int {
	if c.rand != nil {
		return c.rand.IntN(n)
	}
	return rand.IntN(n)
}

// Encode encodes text, choosing each digit's letter uniformly at random
// among that digit's candidates and each joining separator at random from
// the separator set. The same text encodes differently across calls; the
// result always decodes back to text under the same configuration.
func (c *Codec) Encode(text string) (string, error) {
	if !c.Configured() {
		return "", ErrNotConfigured
	}
	return c.encode(text, true), nil
}

// EncodeFixed encodes text deterministically: every digit takes its
// bucket's first candidate letter and every gap takes the first
// separator. Equal inputs yield byte-identical output.
func (c *Codec) EncodeFixed(text string) (string, error) {
	if !c.Configured() {
		return "", ErrNotConfigured
	}
	return c.encode(text, false), nil
}

// EncodeTower encodes text like Encode and folds the result into lines of
// rows characters. rows == 0 disables folding.
func (c *Codec) EncodeTower(text string, rows int) (string, error) {
	encoded, err := c.Encode(text)
	if err != nil {
		return "", err
	}
	return tower.Fold(encoded, rows), nil
}

func (c *Codec) encode(text string, seeded bool) string {
	var b strings.Builder
	first := true
	for _, r := range text {
		if !first {
			if seeded {
				b.WriteRune(c.seps[c.intn(len(c.seps))])
			} else {
				b.WriteRune(c.seps[0])
			}
		}
		first = false
		digits := strconv.Itoa(int(r))
		for i := 0; i < len(digits); i++ {
			bucket := c.enc[digits[i]-'0']
			if seeded {
				b.WriteByte(bucket[c.intn(len(bucket))])
			} else {
				b.WriteByte(bucket[0])
			}
		}
	}
	return b.String()
}

// Decode reverses Encode, EncodeFixed and EncodeTower output produced
// under the same separator configuration. Folding is removed first, the
// text is split on the configured separators, and every group is
// translated back to a code point with strict validation. Empty groups
// from adjacent, leading or trailing separators contribute nothing.
func (c *Codec) Decode(text string) (string, error) {
	if !c.Configured() {
		return "", ErrNotConfigured
	}
	groups, err := c.Split(tower.Unfold(text))
	if err != nil {
		return "", err
	}
	var b strings.Builder
	for _, g := range groups {
		if g == "" {
			continue
		}
		var digits strings.Builder
		for _, r := range g {
			d, ok := c.dec[r]
			if !ok {
				return "", &UnknownCharError{Char: r}
			}
			digits.WriteString(d)
		}
		// The Atoi error guards against future table changes; groups
		// surviving Split and the table lookup are pure digit strings.
		// ValidRune additionally rejects surrogate halves, which fit the
		// code point range but are unrepresentable in a string.
		n, err := strconv.Atoi(digits.String())
		if err != nil || n > maxCodePoint || !utf8.ValidRune(rune(n)) {
			return "", fmt.Errorf("%w: %q does not seem valid for the associated separator configuration %q",
				ErrMalformedInput, g, string(c.seps))
		}
		b.WriteRune(rune(n))
	}
	return b.String(), nil
}
