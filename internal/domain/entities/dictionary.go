package entities

import (
	"sort"
	"strings"
)

// EntryKind tells a leaf value apart from a nested dictionary.
type EntryKind int

const (
	KindLeaf EntryKind = iota
	KindNode
)

func (k EntryKind) String() string {
	if k == KindNode {
		return "node"
	}
	return "leaf"
}

// Entry is one value of a Dictionary: either a Leaf holding a JSON value
// (string, json.Number, bool, nil or []any) or a Node holding a nested Dictionary.
type Entry struct {
	kind  EntryKind
	value any
	node  *Dictionary
}

// Leaf wraps a terminal value.
func Leaf(v any) Entry {
	return Entry{kind: KindLeaf, value: v}
}

// Node wraps a nested dictionary.
func Node(d *Dictionary) Entry {
	if d == nil {
		d = NewDictionary()
	}
	return Entry{kind: KindNode, node: d}
}

// Kind reports whether e is a leaf or a node.
func (e Entry) Kind() EntryKind { return e.kind }

// IsNode is true when e holds a nested dictionary.
func (e Entry) IsNode() bool { return e.kind == KindNode }

// Value returns the leaf value, nil for a node.
func (e Entry) Value() any { return e.value }

// Dictionary returns the nested dictionary, nil for a leaf.
func (e Entry) Dictionary() *Dictionary { return e.node }

// Dictionary is one language's translation tree. Keys keep their insertion
// order until the dictionary is sorted.
type Dictionary struct {
	keys    []string
	entries map[string]Entry
}

// NewDictionary returns an empty dictionary.
func NewDictionary() *Dictionary {
	return newDictionary(0)
}

func newDictionary(size int) *Dictionary {
	return &Dictionary{
		keys:    make([]string, 0, size),
		entries: make(map[string]Entry, size),
	}
}

// Len returns the number of top-level keys.
func (d *Dictionary) Len() int { return len(d.keys) }

// Keys returns the keys in their current order.
func (d *Dictionary) Keys() []string {
	out := make([]string, len(d.keys))
	copy(out, d.keys)
	return out
}

// Get returns the entry stored directly under key, without splitting on dots.
func (d *Dictionary) Get(key string) (Entry, bool) {
	e, ok := d.entries[key]
	return e, ok
}

// Put stores e under key. An existing key keeps its position.
func (d *Dictionary) Put(key string, e Entry) {
	if _, ok := d.entries[key]; !ok {
		d.keys = append(d.keys, key)
	}
	d.entries[key] = e
}

// KeyPath is a dot-delimited address into a Dictionary, e.g. "nav.home".
type KeyPath string

// Segments splits the path on dots. Empty segments are kept as empty keys.
func (p KeyPath) Segments() []string {
	return strings.Split(string(p), ".")
}

// Lookup walks path and returns the entry found at its end.
func (d *Dictionary) Lookup(path KeyPath) (Entry, bool) {
	segments := path.Segments()
	current := d
	for _, seg := range segments[:len(segments)-1] {
		e, ok := current.Get(seg)
		if !ok || !e.IsNode() {
			return Entry{}, false
		}
		current = e.node
	}
	return current.Get(segments[len(segments)-1])
}

// Set assigns value at path, creating intermediate dictionaries as needed.
// A leaf found on an intermediate segment is replaced by an empty dictionary,
// and whatever sits at the final segment is overwritten.
func (d *Dictionary) Set(path KeyPath, value string) {
	segments := path.Segments()
	current := d
	for _, seg := range segments[:len(segments)-1] {
		e, ok := current.Get(seg)
		if !ok || !e.IsNode() {
			e = Node(NewDictionary())
			current.Put(seg, e)
		}
		current = e.node
	}
	current.Put(segments[len(segments)-1], Leaf(value))
}

// SetNestedKey is Set in function form.
func SetNestedKey(d *Dictionary, path KeyPath, value string) {
	d.Set(path, value)
}

// Sorted returns a copy of d with the keys of every nested level in ascending
// code-point order. Leaves, arrays included, are shared as-is.
func (d *Dictionary) Sorted() *Dictionary {
	keys := d.Keys()
	// Byte order of UTF-8 strings is code-point order.
	sort.Strings(keys)

	out := newDictionary(len(keys))
	for _, k := range keys {
		out.Put(k, SortKeys(d.entries[k]))
	}
	return out
}

// SortKeys returns e with every dictionary below it sorted. Leaves are
// returned unchanged.
func SortKeys(e Entry) Entry {
	if !e.IsNode() {
		return e
	}
	return Node(e.node.Sorted())
}

// IsSorted reports whether every level of d is in ascending key order.
func (d *Dictionary) IsSorted() bool {
	if !sort.StringsAreSorted(d.keys) {
		return false
	}
	for _, k := range d.keys {
		if e := d.entries[k]; e.IsNode() && !e.node.IsSorted() {
			return false
		}
	}
	return true
}
