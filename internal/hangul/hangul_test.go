package hangul

import (
	"testing"
	"unicode"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecompose(t *testing.T) {
	tests := []struct {
		in        rune
		want      Syllable
		romanized string
	}{
		{'가', Syllable{Onset: 0, Nucleus: 0, Coda: NoFinal}, "ga"},
		{'각', Syllable{Onset: 0, Nucleus: 0, Coda: 1}, "gag"},
		{'한', Syllable{Onset: 18, Nucleus: 0, Coda: 4}, "han"},
		{'힣', Syllable{Onset: 18, Nucleus: 20, Coda: 27}, "hih"},
		{'아', Syllable{Onset: 11, Nucleus: 0, Coda: NoFinal}, "a"},
	}
	for _, tt := range tests {
		got, ok := Decompose(tt.in)
		require.True(t, ok, "Decompose(%q)", tt.in)
		assert.Equal(t, tt.want, got, "Decompose(%q)", tt.in)
		assert.Equal(t, tt.romanized, got.Romanized(), "Romanized(%q)", tt.in)
	}
}

func TestDecomposeOutsideBlock(t *testing.T) {
	for _, r := range []rune{'a', ' ', 'ア', 'ㄱ', '\u1100', 0xABFF, 0xD7A4, '漢'} {
		_, ok := Decompose(r)
		assert.False(t, ok, "Decompose(%U) should not apply", r)
	}
}

func TestComposeRoundTrip(t *testing.T) {
	for r := rune(hangulBase); r <= hangulEnd; r++ {
		s, ok := Decompose(r)
		require.True(t, ok)
		if got := Compose(s); got != r {
			t.Fatalf("Compose(Decompose(%U)) = %U", r, got)
		}
	}
}

func TestComposeInvalid(t *testing.T) {
	assert.Equal(t, unicode.ReplacementChar, Compose(Syllable{Onset: 19}))
	assert.Equal(t, unicode.ReplacementChar, Compose(Syllable{Nucleus: -1}))
	assert.Equal(t, unicode.ReplacementChar, Compose(Syllable{Coda: 28}))
}

func TestHasCoda(t *testing.T) {
	open, _ := Decompose('노')
	closed, _ := Decompose('놈')
	assert.False(t, open.HasCoda())
	assert.True(t, closed.HasCoda())
	assert.Equal(t, "m", closed.Coda.String())
}

func TestContainsHangul(t *testing.T) {
	assert.True(t, ContainsHangul("시나노"))
	assert.True(t, ContainsHangul("abc 옷 def"))
	assert.False(t, ContainsHangul(""))
	assert.False(t, ContainsHangul("abc"))
	assert.False(t, ContainsHangul("ワンピース"))
	assert.False(t, ContainsHangul("ㅋㅋㅋ"), "compatibility jamo are not syllables")
}

func TestNormalizeJamo(t *testing.T) {
	assert.Equal(t, "한", NormalizeJamo("한"))
	assert.Equal(t, "시나노 전용", NormalizeJamo("시나노 전용"))
	// Non-Korean combining sequences are left alone.
	assert.Equal(t, "é", NormalizeJamo("é"))
}
