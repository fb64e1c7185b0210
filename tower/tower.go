// Package tower provides the line-folded presentation of encoded text:
// fixed-width rows joined by newlines. Folding is purely cosmetic and
// fully reversible; decoding treats embedded newlines as zero-width.
// It operates on bytes, which is safe because encoded text is ASCII.
package tower

import "strings"

// Fold splits s into rows-sized chunks joined by a newline; the last
// chunk may be shorter. rows == 0 disables folding and instead strips any
// newlines already present in s.
func Fold(s string, rows int) string {
	if rows <= 0 {
		if strings.ContainsRune(s, '\n') {
			return strings.ReplaceAll(s, "\n", "")
		}
		return s
	}
	var b strings.Builder
	b.Grow(len(s) + len(s)/rows)
	for i := 0; i < len(s); i += rows {
		if i > 0 {
			b.WriteByte('\n')
		}
		end := i + rows
		if end > len(s) {
			end = len(s)
		}
		b.WriteString(s[i:end])
	}
	return b.String()
}

// Unfold removes the folding applied by Fold.
func Unfold(s string) string {
	return Fold(s, 0)
}
