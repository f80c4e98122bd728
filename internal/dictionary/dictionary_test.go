package dictionary

import (
	"testing"

	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func koreanOf(entries []Entry) []string {
	return lo.Map(entries, func(e Entry, _ int) string { return e.Korean })
}

func TestDefaultDictionary(t *testing.T) {
	d := Default()
	require.Same(t, d, Default(), "Default must return the shared instance")
	assert.Equal(t, 48, d.Len())

	entries := d.Entries()
	for _, e := range entries {
		assert.NotEmpty(t, e.Korean)
		assert.NotEmpty(t, e.Japanese)
		assert.Contains(t, []Category{CategoryAvatar, CategoryItem, CategoryVRC}, e.Category)
	}
	assert.Equal(t, "시나노", entries[0].Korean)
	assert.Equal(t, CategoryVRC, entries[len(entries)-1].Category)
}

func TestEntriesReturnsCopy(t *testing.T) {
	d := New(Entry{"시나노", "しなの", CategoryAvatar})
	entries := d.Entries()
	entries[0].Japanese = "changed"
	got, ok := d.Exact("시나노")
	require.True(t, ok)
	assert.Equal(t, "しなの", got.Japanese)
}

func TestNewSkipsEmptyKorean(t *testing.T) {
	d := New(Entry{"", "空", CategoryItem}, Entry{"귀", "耳", CategoryItem})
	assert.Equal(t, 1, d.Len())
	_, ok := d.FindMatch("아무거나")
	assert.False(t, ok, "an empty entry must not match everything")
}

func TestFindMatch(t *testing.T) {
	d := Default()
	tests := []struct {
		token    string
		korean   string
		japanese string
	}{
		{"원피스", "원피스", "ワンピース"},
		{"무료", "무료", "無料"},
		{"시나노 전용", "시나노", "しなの"},
		{"귀걸이", "귀걸이", "イヤリング"},
		{"귀여운", "귀", "耳"},
		{"시나노용", "시나노", "しなの"},
		{"마이크", "마이", "舞"},
	}
	for _, tt := range tests {
		got, ok := d.FindMatch(tt.token)
		require.True(t, ok, "FindMatch(%q)", tt.token)
		assert.Equal(t, tt.korean, got.Korean, "FindMatch(%q)", tt.token)
		assert.Equal(t, tt.japanese, got.Japanese, "FindMatch(%q)", tt.token)
	}
}

func TestFindMatchNone(t *testing.T) {
	d := Default()
	for _, token := range []string{"", "김철수", "abc", "ワンピース"} {
		_, ok := d.FindMatch(token)
		assert.False(t, ok, "FindMatch(%q)", token)
	}
}

func TestFindMatchFirstDeclaredWins(t *testing.T) {
	d := New(
		Entry{"귀", "耳", CategoryItem},
		Entry{"귀걸이", "イヤリング", CategoryItem},
	)
	got, ok := d.FindMatch("귀걸이")
	require.True(t, ok)
	assert.Equal(t, "耳", got.Japanese, "earlier substring entry shadows the exact one")

	exact, ok := d.Exact("귀걸이")
	require.True(t, ok)
	assert.Equal(t, "イヤリング", exact.Japanese)
}

func TestExact(t *testing.T) {
	d := Default()
	got, ok := d.Exact("전용")
	require.True(t, ok)
	assert.Equal(t, "専用", got.Japanese)

	_, ok = d.Exact("시나노용")
	assert.False(t, ok)
}

func TestPrefixMatches(t *testing.T) {
	d := Default()
	tests := []struct {
		input string
		want  []string
	}{
		{"시나", []string{"시나노"}},
		{"마", []string{"마누카", "마이"}},
		{"  귀걸이  ", []string{"귀걸이", "귀"}},
		{"시나노 전용", []string{"시나노"}},
		{"김철수", nil},
		{"", nil},
		{"   ", nil},
	}
	for _, tt := range tests {
		got := d.PrefixMatches(tt.input)
		if tt.want == nil {
			assert.Empty(t, got, "PrefixMatches(%q)", tt.input)
			continue
		}
		assert.Equal(t, tt.want, koreanOf(got), "PrefixMatches(%q)", tt.input)
	}
}

func TestPrefixMatchesCaseFolded(t *testing.T) {
	d := New(
		Entry{"VRChat", "VRChat", CategoryVRC},
		Entry{"PhysBone", "PhysBone", CategoryVRC},
	)
	assert.Equal(t, []string{"VRChat"}, koreanOf(d.PrefixMatches("vrc")))
	assert.Equal(t, []string{"PhysBone"}, koreanOf(d.PrefixMatches("PHYSBONE 대응")))
}

func TestDefaultConcurrentReads(t *testing.T) {
	d := Default()
	done := make(chan struct{})
	for range 8 {
		go func() {
			defer func() { done <- struct{}{} }()
			for range 100 {
				d.FindMatch("시나노 전용")
				d.PrefixMatches("마")
			}
		}()
	}
	for range 8 {
		<-done
	}
}
