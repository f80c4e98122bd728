// Package hangul splits precomposed Hangul syllables into their onset,
// nucleus and coda using the arithmetic layout of the U+AC00 block.
package hangul

import (
	"unicode"

	"golang.org/x/text/unicode/norm"
)

const (
	hangulBase = 0xAC00
	hangulEnd  = 0xD7A3
	choN       = 19
	jungN      = 21
	jongN      = 28
)

// Consonant is an onset index, 0 (ㄱ) through 18 (ㅎ).
type Consonant int

// Vowel is a nucleus index, 0 (ㅏ) through 20 (ㅣ).
type Vowel int

// Final is a coda index. NoFinal means the syllable is open.
type Final int

const NoFinal Final = 0

const (
	OnsetCount   = choN
	NucleusCount = jungN
	CodaCount    = jongN
)

// Revised Romanization names, indexed the same way as the Unicode layout.
var (
	choseong = []string{
		"g", "kk", "n", "d", "tt", "r", "m", "b", "pp",
		"s", "ss", "", "j", "jj", "ch", "k", "t", "p", "h",
	}
	jungseong = []string{
		"a", "ae", "ya", "yae", "eo", "e", "yeo", "ye", "o",
		"wa", "wae", "oe", "yo", "u", "wo", "we", "wi", "yu",
		"eu", "ui", "i",
	}
	jongseong = []string{
		"", "g", "kk", "gs", "n", "nj", "nh", "d", "l", "lg",
		"lm", "lb", "ls", "lt", "lp", "lh", "m", "b", "bs",
		"s", "ss", "ng", "j", "ch", "k", "t", "p", "h",
	}
)

func (c Consonant) String() string { return choseong[c] }
func (v Vowel) String() string     { return jungseong[v] }
func (f Final) String() string     { return jongseong[f] }

// Syllable is one decomposed Hangul block.
type Syllable struct {
	Onset   Consonant
	Nucleus Vowel
	Coda    Final
}

// HasCoda reports whether the syllable is closed by a final consonant.
func (s Syllable) HasCoda() bool {
	return s.Coda != NoFinal
}

// Romanized returns the Revised Romanization of the syllable in isolation.
func (s Syllable) Romanized() string {
	return s.Onset.String() + s.Nucleus.String() + s.Coda.String()
}

// IsSyllable reports whether r is a precomposed Hangul syllable.
func IsSyllable(r rune) bool {
	return r >= hangulBase && r <= hangulEnd
}

// Decompose splits r into its phonetic units. ok is false for any rune
// outside U+AC00..U+D7A3.
func Decompose(r rune) (s Syllable, ok bool) {
	if !IsSyllable(r) {
		return Syllable{}, false
	}
	code := int(r) - hangulBase
	jong := code % jongN
	jung := (code / jongN) % jungN
	cho := code / (jongN * jungN)
	return Syllable{
		Onset:   Consonant(cho),
		Nucleus: Vowel(jung),
		Coda:    Final(jong),
	}, true
}

// Compose is the inverse of Decompose. Out-of-range indices yield the
// replacement character.
func Compose(s Syllable) rune {
	if s.Onset < 0 || s.Onset >= choN || s.Nucleus < 0 || s.Nucleus >= jungN || s.Coda < 0 || s.Coda >= jongN {
		return unicode.ReplacementChar
	}
	return rune(hangulBase + (int(s.Onset)*jungN+int(s.Nucleus))*jongN + int(s.Coda))
}

// ContainsHangul reports whether s has at least one precomposed syllable.
func ContainsHangul(s string) bool {
	for _, r := range s {
		if IsSyllable(r) {
			return true
		}
	}
	return false
}

// NormalizeJamo composes conjoining Jamo (NFD Korean, U+1100..U+11FF) into
// precomposed syllables. Strings without conjoining Jamo come back as-is.
func NormalizeJamo(s string) string {
	for _, r := range s {
		if r >= 0x1100 && r <= 0x11FF {
			return norm.NFC.String(s)
		}
	}
	return s
}
