package trie

import (
	"fmt"
	"iter"
	"strings"
)

// Dict maps string keys to values of type V, storing keys in a prefix tree
// so that prefix queries cost O(len(query)).
type Dict[V any] struct {
	t *tree[V]
}

func NewDict[V any](opts ...Option) *Dict[V] {
	return &Dict[V]{t: newTree[V](opts)}
}

// DictOf builds a Dict from entries, applied left to right: a later entry
// overwrites an earlier one with the same key.
func DictOf[V any](entries []Entry[V], opts ...Option) *Dict[V] {
	d := NewDict[V](opts...)
	for _, e := range entries {
		d.Set(e.Key, e.Value)
	}
	return d
}

func DictFromMap[V any](m map[string]V, opts ...Option) *Dict[V] {
	d := NewDict[V](opts...)
	for k, v := range m {
		d.Set(k, v)
	}
	return d
}

// Set stores value under key, replacing any previous value.
func (d *Dict[V]) Set(key string, value V) {
	d.t.insert(key, value)
}

// Get returns the value stored under key, or an error wrapping
// ErrKeyNotFound.
func (d *Dict[V]) Get(key string) (V, error) {
	return d.t.lookup(key)
}

func (d *Dict[V]) Contains(key string) bool {
	return d.t.contains(key)
}

// Delete removes key. It returns an error wrapping ErrKeyNotFound, and
// leaves the Dict untouched, when key is absent.
func (d *Dict[V]) Delete(key string) error {
	return d.t.delete(key)
}

func (d *Dict[V]) Len() int {
	return d.t.Size()
}

func (d *Dict[V]) Clear() {
	d.t.clear()
}

// LongestPrefix finds the longest stored key that is a prefix of s. It
// returns that key, the rest of s and the key's value. When no prefix of s
// is stored, prefix is empty, rest is s and ok is false.
func (d *Dict[V]) LongestPrefix(s string) (prefix, rest string, value V, ok bool) {
	n, value, ok := d.t.longestPrefix(s)
	return s[:n], s[n:], value, ok
}

// HasPrefix reports whether any stored key starts with prefix.
func (d *Dict[V]) HasPrefix(prefix string) bool {
	return d.t.hasPrefix(prefix)
}

// Iterator returns a fresh iterator over all key/value pairs. A node's own
// key comes before the keys below it.
func (d *Dict[V]) Iterator() Iterator[V] {
	return d.t.iterator()
}

// IteratorWithPrefix iterates over the pairs whose key starts with prefix.
func (d *Dict[V]) IteratorWithPrefix(prefix string) Iterator[V] {
	return d.t.iteratorWithPrefix(prefix)
}

func (d *Dict[V]) All() iter.Seq2[string, V] {
	return func(yield func(string, V) bool) {
		for it := d.t.iterator(); it.HasNext(); {
			k, v, _ := it.Next()
			if !yield(k, v) {
				return
			}
		}
	}
}

func (d *Dict[V]) Keys() iter.Seq[string] {
	return func(yield func(string) bool) {
		for k := range d.All() {
			if !yield(k) {
				return
			}
		}
	}
}

func (d *Dict[V]) Values() iter.Seq[V] {
	return func(yield func(V) bool) {
		for _, v := range d.All() {
			if !yield(v) {
				return
			}
		}
	}
}

func (d *Dict[V]) String() string {
	var sb strings.Builder
	sb.WriteString("trie.Dict{")
	first := true
	for k, v := range d.All() {
		if !first {
			sb.WriteString(", ")
		}
		first = false
		fmt.Fprintf(&sb, "%q: %v", k, v)
	}
	sb.WriteByte('}')
	return sb.String()
}
