package transliteration

import (
	"strings"

	"github.com/jusunglee/boothko/internal/hangul"
)

// Romanize converts Hangul syllables to Revised Romanization, syllable by
// syllable without assimilation rules. Other runes are copied through.
func Romanize(text string) string {
	if !hangul.ContainsHangul(text) {
		return text
	}
	var b strings.Builder
	for _, r := range text {
		if s, ok := hangul.Decompose(r); ok {
			b.WriteString(s.Romanized())
		} else {
			b.WriteRune(r)
		}
	}
	return b.String()
}
