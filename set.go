package trie

import (
	"iter"
	"strconv"
	"strings"
)

// Set is a set of strings backed by a prefix tree. Unlike Dict it carries
// no values, so it has no indexed get, set or delete.
type Set struct {
	t *tree[struct{}]
}

func NewSet(opts ...Option) *Set {
	return &Set{t: newTree[struct{}](opts)}
}

func SetOf(keys []string, opts ...Option) *Set {
	s := NewSet(opts...)
	for _, k := range keys {
		s.Add(k)
	}
	return s
}

func (s *Set) Add(key string) {
	s.t.insert(key, struct{}{})
}

// Remove deletes key from the set. It returns an error wrapping
// ErrKeyNotFound when key is not a member.
func (s *Set) Remove(key string) error {
	return s.t.delete(key)
}

func (s *Set) Contains(key string) bool {
	return s.t.contains(key)
}

func (s *Set) Len() int {
	return s.t.Size()
}

func (s *Set) Clear() {
	s.t.clear()
}

// LongestPrefix splits str after the longest member that is a prefix of it.
// ok is false when no prefix of str is a member.
func (s *Set) LongestPrefix(str string) (prefix, rest string, ok bool) {
	n, _, ok := s.t.longestPrefix(str)
	return str[:n], str[n:], ok
}

func (s *Set) HasPrefix(prefix string) bool {
	return s.t.hasPrefix(prefix)
}

func (s *Set) Iterator() KeyIterator {
	return keyIterator{s.t.iterator()}
}

func (s *Set) IteratorWithPrefix(prefix string) KeyIterator {
	return keyIterator{s.t.iteratorWithPrefix(prefix)}
}

func (s *Set) All() iter.Seq[string] {
	return func(yield func(string) bool) {
		for it := s.t.iterator(); it.HasNext(); {
			k, _, _ := it.Next()
			if !yield(k) {
				return
			}
		}
	}
}

func (s *Set) String() string {
	var sb strings.Builder
	sb.WriteString("trie.Set{")
	first := true
	for k := range s.All() {
		if !first {
			sb.WriteString(", ")
		}
		first = false
		sb.WriteString(strconv.Quote(k))
	}
	sb.WriteByte('}')
	return sb.String()
}

type keyIterator struct {
	it *iterator[struct{}]
}

func (ki keyIterator) HasNext() bool {
	return ki.it.HasNext()
}

func (ki keyIterator) Next() (string, error) {
	k, _, err := ki.it.Next()
	return k, err
}
