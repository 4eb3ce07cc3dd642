package types

import "sort"

// WordEntry is one record from a dictionary source: a word and the type
// it is registered under. Entries are transient; they exist only between
// parsing and Dictionary construction (or word bank import).
type WordEntry struct {
	Word string
	Type string
}

// Dictionary maps a type name to the words registered under it, in source
// order. Type names match by exact string equality; no normalization or
// case folding. Built once by a loader and read-only afterwards.
type Dictionary map[string][]string

// NewDictionary builds a Dictionary from entries, preserving entry order
// within each type. Duplicate words are kept.
func NewDictionary(entries []WordEntry) Dictionary {
	d := make(Dictionary)
	for _, e := range entries {
		d.Add(e.Type, e.Word)
	}
	return d
}

// Add appends word to the list for typ, creating the list if needed.
func (d Dictionary) Add(typ, word string) {
	d[typ] = append(d[typ], word)
}

// Words returns the words registered under typ, or nil if the type is
// unknown. The returned slice is the Dictionary's own; callers must not
// modify it.
func (d Dictionary) Words(typ string) []string {
	return d[typ]
}

// Types returns all type names in sorted order.
func (d Dictionary) Types() []string {
	names := make([]string, 0, len(d))
	for name := range d {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Len returns the total number of words across all types.
func (d Dictionary) Len() int {
	n := 0
	for _, words := range d {
		n += len(words)
	}
	return n
}
