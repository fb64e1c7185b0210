package charabia

// letters is the canonical letter ordering the index tables are built
// from: the 26 lowercase ASCII letters followed by the 26 uppercase ones.
// The letter at position i encodes the digit i mod 10.
const letters = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"

// maxCodePoint is the largest valid Unicode code point (U+10FFFF).
const maxCodePoint = 0x10FFFF

// maxTokenLen is the longest possible token: maxCodePoint has seven
// decimal digits, one letter each.
const maxTokenLen = 7

// buildEncodingIndex partitions the canonical letters into ten buckets by
// position mod 10, dropping any letter that is itself a configured
// separator. A bucket may come out empty if the separators cover all of
// its candidates; NewCodec rejects such configurations.
func buildEncodingIndex(seps []rune) [10][]byte {
	drop := make(map[rune]bool, len(seps))
	for _, s := range seps {
		drop[s] = true
	}
	var idx [10][]byte
	for i := 0; i < len(letters); i++ {
		if drop[rune(letters[i])] {
			continue
		}
		d := i % 10
		idx[d] = append(idx[d], letters[i])
	}
	return idx
}

// buildDecodingIndex inverts the encoding index, then overlays every
// separator mapped to a literal space and the newline character mapped to
// the empty string so folded output decodes transparently.
func buildDecodingIndex(seps []rune) map[rune]string {
	dec := make(map[rune]string, len(letters)+len(seps)+1)
	for d, bucket := range buildEncodingIndex(seps) {
		for _, c := range bucket {
			dec[rune(c)] = string(rune('0' + d))
		}
	}
	for _, s := range seps {
		dec[s] = " "
	}
	dec['\n'] = ""
	return dec
}
