// Package charabia implements a reversible, configurable text-sheltering
// codec: it maps arbitrary Unicode text to a delimited ASCII-letter
// representation and back.
//
// This is not cryptography. The encoding offers no confidentiality against
// a motivated reader, only low-grade reversible obfuscation of strings and
// tokens. Each character of the input becomes a run of letters spelling
// its code point digit by digit, and runs are joined by configurable
// alphanumeric separators. Decoding is only correct under the same
// separator configuration that produced the text.
package charabia

// Default, when set, backs the package-level Configure, Encode, Decode and
// Split functions. Set it via Configure once at startup; it is plain
// mutable state with no locking, so concurrent reconfiguration must be
// serialized by the caller.
var Default *Codec

// Configure validates separators and installs a new Default codec.
// On failure the previous configuration is left untouched.
func Configure(separators string) error {
	c, err := NewCodec(separators)
	if err != nil {
		return err
	}
	Default = c
	return nil
}

// Separators returns the Default codec's separator set, or "" when
// unconfigured.
func Separators() string {
	return Default.Separators()
}

// Configured reports whether the Default codec is ready for encoding and
// decoding.
func Configured() bool {
	return Default.Configured()
}

// Encode encodes text with the Default codec in seeded mode.
func Encode(text string) (string, error) {
	if Default == nil {
		return "", ErrNotConfigured
	}
	return Default.Encode(text)
}

// EncodeFixed encodes text with the Default codec deterministically.
func EncodeFixed(text string) (string, error) {
	if Default == nil {
		return "", ErrNotConfigured
	}
	return Default.EncodeFixed(text)
}

// EncodeTower encodes text with the Default codec and folds the result
// into lines of rows characters.
func EncodeTower(text string, rows int) (string, error) {
	if Default == nil {
		return "", ErrNotConfigured
	}
	return Default.EncodeTower(text, rows)
}

// Decode decodes text with the Default codec.
func Decode(text string) (string, error) {
	if Default == nil {
		return "", ErrNotConfigured
	}
	return Default.Decode(text)
}

// Split splits text on the Default codec's separators.
func Split(text string) ([]string, error) {
	if Default == nil {
		return nil, ErrNotConfigured
	}
	return Default.Split(text)
}

// WithSeparators installs a temporary Default configuration, runs body,
// and restores the previous configuration on every exit path, including a
// body error or panic. The temporary separators are validated before body
// runs; validation failure leaves the current configuration in place.
func WithSeparators(separators string, body func() error) error {
	c, err := NewCodec(separators)
	if err != nil {
		return err
	}
	prev := Default
	Default = c
	defer func() { Default = prev }()
	return body()
}
