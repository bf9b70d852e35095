// Binary content detection for early classification of non-text files.
// The host renders binary files differently and skips match previews for them.
package textscan

// binarySampleSize bounds the classification cost: only the first 4KB are
// inspected regardless of file size.
const binarySampleSize = 4096

// suspiciousRatio is the control-byte density above which content is
// classified as binary.
const suspiciousRatio = 0.30

// IsBinary reports whether content looks like binary data.
//
// The check is a heuristic over the first min(4096, len) bytes: any NUL byte
// classifies the buffer as binary immediately; otherwise control characters
// outside the common text set (tab, LF, VT, FF, CR) are counted and the
// buffer is binary when their density exceeds 30%. Empty content is text.
// False classifications at the margins are accepted in exchange for a
// single bounded pass.
func IsBinary(content []byte) bool {
	sample := content
	if len(sample) > binarySampleSize {
		sample = sample[:binarySampleSize]
	}
	if len(sample) == 0 {
		return false
	}

	suspicious := 0
	for _, b := range sample {
		if b == 0 {
			return true
		}
		if b < 9 || (b > 13 && b < 32) {
			suspicious++
		}
	}

	return float64(suspicious)/float64(len(sample)) > suspiciousRatio
}
