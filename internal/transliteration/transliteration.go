// Package transliteration renders Korean text phonetically, either as
// katakana for Japanese search queries or as Revised Romanization.
//
// Both functions are pure and safe for concurrent use. Runes outside the
// precomposed Hangul block pass through unchanged.
package transliteration

import (
	"strings"

	"github.com/jusunglee/boothko/internal/hangul"
)

// ToKatakana converts every Hangul syllable in text to its nearest katakana
// reading, one syllable at a time. Text without Hangul is returned as-is.
func ToKatakana(text string) string {
	if !hangul.ContainsHangul(text) {
		return text
	}
	var b strings.Builder
	b.Grow(len(text) * 2)
	for _, r := range text {
		s, ok := hangul.Decompose(r)
		if !ok {
			b.WriteRune(r)
			continue
		}
		b.WriteString(syllableKana(s))
	}
	return b.String()
}
