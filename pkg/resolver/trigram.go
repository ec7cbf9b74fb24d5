package resolver

import (
	"sort"
	"strings"
)

// Entry is one resolvable entity mapping.
type Entry struct {
	EntityType  string
	ScriptID    string
	NaturalName string
	Description string
}

// Match pairs an entry with its similarity to the searched phrase.
type Match struct {
	Entry Entry
	Score float64
}

// Index is an in-process trigram index over a tenant's entity mappings.
// Built per request from the mapping service; small enough that a linear
// scan with set intersection beats maintaining an inverted index.
type Index struct {
	entries []indexedEntry
}

type indexedEntry struct {
	entry    Entry
	trigrams map[string]struct{}
}

// NewIndex builds an index over the entries.
func NewIndex(entries []Entry) *Index {
	idx := &Index{entries: make([]indexedEntry, 0, len(entries))}
	for _, e := range entries {
		idx.entries = append(idx.entries, indexedEntry{
			entry:    e,
			trigrams: trigrams(e.NaturalName),
		})
	}
	return idx
}

// Search returns up to k entries ranked by Jaccard similarity of padded
// trigram sets, best first. Zero-score entries are omitted.
func (i *Index) Search(phrase string, k int) []Match {
	query := trigrams(phrase)
	if len(query) == 0 {
		return nil
	}

	matches := make([]Match, 0, len(i.entries))
	for _, e := range i.entries {
		score := jaccard(query, e.trigrams)
		if score > 0 {
			matches = append(matches, Match{Entry: e.entry, Score: score})
		}
	}
	sort.SliceStable(matches, func(a, b int) bool {
		return matches[a].Score > matches[b].Score
	})
	if len(matches) > k {
		matches = matches[:k]
	}
	return matches
}

// trigrams returns the padded lowercase trigram set of s. Two leading
// spaces and one trailing space weight word starts, matching the common
// pg_trgm behavior.
func trigrams(s string) map[string]struct{} {
	set := make(map[string]struct{})
	for _, word := range strings.Fields(strings.ToLower(s)) {
		padded := "  " + word + " "
		for i := 0; i+3 <= len(padded); i++ {
			set[padded[i:i+3]] = struct{}{}
		}
	}
	return set
}

func jaccard(a, b map[string]struct{}) float64 {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}
	small, large := a, b
	if len(b) < len(a) {
		small, large = b, a
	}
	shared := 0
	for t := range small {
		if _, ok := large[t]; ok {
			shared++
		}
	}
	union := len(a) + len(b) - shared
	if union == 0 {
		return 0
	}
	return float64(shared) / float64(union)
}
