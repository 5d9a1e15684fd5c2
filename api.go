// Package trie implements a prefix tree keyed by strings, exposed as a
// key/value dictionary (Dict) and as a membership set (Set).
//
// Keys are walked byte by byte. Neither type is safe for concurrent use.
package trie

// Iterator walks the key/value pairs of a Dict. The tree must not be
// modified while an iterator is in use.
type Iterator[V any] interface {
	HasNext() bool
	Next() (string, V, error)
}

// KeyIterator walks the keys of a Set.
type KeyIterator interface {
	HasNext() bool
	Next() (string, error)
}

// Entry is a key/value pair used to build a Dict.
type Entry[V any] struct {
	Key   string
	Value V
}
