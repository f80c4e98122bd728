// Package dictionary holds the curated Korean→Japanese vocabulary used to
// turn Korean search terms into the words BOOTH listings actually use.
//
// A Dictionary is immutable after construction and safe for concurrent use.
package dictionary

import (
	"strings"
	"sync"

	"golang.org/x/text/cases"
)

type Category string

const (
	CategoryAvatar Category = "avatar"
	CategoryItem   Category = "item"
	CategoryVRC    Category = "vrc"
)

type Entry struct {
	Korean   string   `json:"korean"`
	Japanese string   `json:"japanese"`
	Category Category `json:"category"`
}

// Dictionary is an ordered list of entries. Order decides which entry wins
// when several match the same token.
type Dictionary struct {
	entries []Entry
}

// New builds a dictionary from entries in declaration order. Entries with an
// empty Korean form are skipped since they would match every token.
func New(entries ...Entry) *Dictionary {
	d := &Dictionary{entries: make([]Entry, 0, len(entries))}
	for _, e := range entries {
		if e.Korean == "" {
			continue
		}
		d.entries = append(d.entries, e)
	}
	return d
}

var (
	defaultOnce sync.Once
	defaultDict *Dictionary
)

// Default returns the shared built-in dictionary: avatars, then items,
// then VRChat terms.
func Default() *Dictionary {
	defaultOnce.Do(func() {
		all := make([]Entry, 0, len(avatarEntries)+len(itemEntries)+len(vrcEntries))
		all = append(all, avatarEntries...)
		all = append(all, itemEntries...)
		all = append(all, vrcEntries...)
		defaultDict = New(all...)
	})
	return defaultDict
}

// Entries returns a copy of the entries in declaration order.
func (d *Dictionary) Entries() []Entry {
	out := make([]Entry, len(d.entries))
	copy(out, d.entries)
	return out
}

func (d *Dictionary) Len() int {
	return len(d.entries)
}

// Exact returns the first entry whose Korean form equals token.
func (d *Dictionary) Exact(token string) (Entry, bool) {
	for _, e := range d.entries {
		if e.Korean == token {
			return e, true
		}
	}
	return Entry{}, false
}

// FindMatch returns the first entry, in declaration order, whose Korean form
// equals token or is contained in it. An early short entry shadows a later,
// more specific one that is also a substring.
func (d *Dictionary) FindMatch(token string) (Entry, bool) {
	if token == "" {
		return Entry{}, false
	}
	for _, e := range d.entries {
		if e.Korean == token || strings.Contains(token, e.Korean) {
			return e, true
		}
	}
	return Entry{}, false
}

// PrefixMatches returns, in declaration order, every entry that completes
// the trimmed input (the entry starts with it) or that the input starts with.
// Comparison is case-folded.
func (d *Dictionary) PrefixMatches(input string) []Entry {
	folded := fold(strings.TrimSpace(input))
	if folded == "" {
		return nil
	}
	var out []Entry
	for _, e := range d.entries {
		k := fold(e.Korean)
		if strings.HasPrefix(k, folded) || strings.HasPrefix(folded, k) {
			out = append(out, e)
		}
	}
	return out
}

// Casers carry state, so each call gets its own.
func fold(s string) string {
	return cases.Fold().String(s)
}
