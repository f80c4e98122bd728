// Package suggest expands a Korean search query into Japanese query strings
// for BOOTH, which only indexes Japanese text.
//
// Candidates come from four strategies applied in a fixed order: a
// dictionary match on the whole phrase, per-token dictionary substitution
// with transliteration of the rest, dictionary prefix completions, and a
// plain katakana transliteration of the whole input. Earlier strategies win
// when two produce the same string, and at most MaxSuggestions are returned.
package suggest

import (
	"strings"

	"github.com/samber/lo"

	"github.com/jusunglee/boothko/internal/dictionary"
	"github.com/jusunglee/boothko/internal/hangul"
	"github.com/jusunglee/boothko/internal/transliteration"
)

const MaxSuggestions = 8

type Category string

const (
	CategoryAvatar   = Category(dictionary.CategoryAvatar)
	CategoryItem     = Category(dictionary.CategoryItem)
	CategoryVRC      = Category(dictionary.CategoryVRC)
	CategoryKatakana Category = "katakana"
	CategoryMixed    Category = "mixed"
)

type Suggestion struct {
	Original  string   `json:"original"`
	Converted string   `json:"converted"`
	Category  Category `json:"category"`
}

type Composer struct {
	dict *dictionary.Dictionary
}

func NewComposer(dict *dictionary.Dictionary) *Composer {
	return &Composer{dict: dict}
}

var defaultComposer = NewComposer(dictionary.Default())

// Suggest runs the default composer over the built-in dictionary.
func Suggest(input string) []Suggestion {
	return defaultComposer.Suggest(input)
}

// Suggest returns up to MaxSuggestions candidates for input, most trusted
// first. Blank input and input without Hangul produce no suggestions.
func (c *Composer) Suggest(input string) []Suggestion {
	trimmed := strings.TrimSpace(hangul.NormalizeJamo(input))
	if trimmed == "" || !hangul.ContainsHangul(trimmed) {
		return []Suggestion{}
	}

	var out []Suggestion

	if e, ok := c.dict.FindMatch(trimmed); ok {
		out = append(out, Suggestion{
			Original:  trimmed,
			Converted: e.Japanese,
			Category:  Category(e.Category),
		})
	}

	tokens := strings.Fields(trimmed)
	combined := strings.Join(lo.Map(tokens, func(tok string, _ int) string {
		return c.convertToken(tok)
	}), " ")
	if combined != trimmed {
		out = append(out, Suggestion{
			Original:  trimmed,
			Converted: combined,
			Category:  lo.Ternary(len(tokens) > 1, CategoryMixed, CategoryKatakana),
		})
	}

	for _, e := range c.dict.PrefixMatches(trimmed) {
		out = append(out, Suggestion{
			Original:  e.Korean,
			Converted: e.Japanese,
			Category:  Category(e.Category),
		})
	}

	if full := transliteration.ToKatakana(trimmed); full != trimmed {
		out = append(out, Suggestion{
			Original:  trimmed,
			Converted: full,
			Category:  CategoryKatakana,
		})
	}

	// UniqBy keeps the first occurrence, so strategy order is preserved.
	out = lo.UniqBy(out, func(s Suggestion) string { return s.Converted })
	if len(out) > MaxSuggestions {
		out = out[:MaxSuggestions]
	}
	return out
}

// convertToken rewrites one whitespace-separated token: an exact dictionary
// hit is replaced outright; a token containing an entry gets the Japanese
// form followed by the transliterated remainder; anything else is
// transliterated, which leaves non-Hangul tokens untouched.
func (c *Composer) convertToken(tok string) string {
	if !hangul.ContainsHangul(tok) {
		return tok
	}
	if e, ok := c.dict.Exact(tok); ok {
		return e.Japanese
	}
	if e, ok := c.dict.FindMatch(tok); ok {
		rest := strings.Replace(tok, e.Korean, "", 1)
		return e.Japanese + transliteration.ToKatakana(rest)
	}
	return transliteration.ToKatakana(tok)
}
