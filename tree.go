package trie

import "fmt"

func (t *tree[V]) Size() int {
	if t == nil {
		return 0
	}
	return t.size
}

func (t *tree[V]) insert(key string, value V) {
	curr := t.root
	for i := 0; i < len(key); i++ {
		next := curr.findChild(key[i])
		if next == nil {
			next = &node[V]{}
			curr.addChild(key[i], next, t.order)
		}
		curr = next
	}

	if !curr.terminal {
		t.size++
	}
	curr.setValue(value)
}

// walk returns the node reached by key, or nil when the path breaks off.
func (t *tree[V]) walk(key string) *node[V] {
	curr := t.root
	for i := 0; i < len(key) && curr != nil; i++ {
		curr = curr.findChild(key[i])
	}
	return curr
}

func (t *tree[V]) lookup(key string) (V, error) {
	n := t.walk(key)
	if n == nil || !n.terminal {
		var zero V
		return zero, keyNotFound(key)
	}
	return n.value, nil
}

func (t *tree[V]) contains(key string) bool {
	n := t.walk(key)
	return n != nil && n.terminal
}

func (t *tree[V]) delete(key string) error {
	var path []edge[V]
	if t.prune {
		path = make([]edge[V], 0, len(key))
	}

	curr := t.root
	for i := 0; i < len(key); i++ {
		next := curr.findChild(key[i])
		if next == nil {
			return keyNotFound(key)
		}
		if t.prune {
			path = append(path, edge[V]{parent: curr, c: key[i]})
		}
		curr = next
	}
	if !curr.terminal {
		return keyNotFound(key)
	}

	curr.clearValue()
	t.size--

	if t.prune {
		t.pruneDead(key, curr, path)
	}
	return nil
}

// pruneDead unlinks curr and its ancestors, bottom-up, for as long as they
// are dead. The root is never unlinked.
func (t *tree[V]) pruneDead(key string, curr *node[V], path []edge[V]) {
	pruned := 0
	for i := len(path) - 1; i >= 0 && curr.isDead(); i-- {
		e := path[i]
		e.parent.removeChild(e.c)
		curr = e.parent
		pruned++
	}
	if pruned > 0 {
		t.log.V(1).Info("pruned dead branch", "key", key, "nodes", pruned)
	}
}

// longestPrefix returns the length of the longest stored key that is a
// prefix of s, with its value. ok is false when no prefix of s, the empty
// one included, is stored.
func (t *tree[V]) longestPrefix(s string) (n int, value V, ok bool) {
	curr := t.root
	for i := 0; ; i++ {
		if curr.terminal {
			n, value, ok = i, curr.value, true
		}
		if i == len(s) {
			break
		}
		next := curr.findChild(s[i])
		if next == nil {
			break
		}
		curr = next
	}
	return n, value, ok
}

func (t *tree[V]) clear() {
	t.log.V(1).Info("cleared trie", "keys", t.size)
	t.root.children = nil
	t.root.symbols = nil
	t.root.clearValue()
	t.size = 0
}

func (t *tree[V]) iterator() *iterator[V] {
	return newIterator(t.root, nil)
}

func (t *tree[V]) iteratorWithPrefix(prefix string) *iterator[V] {
	start := t.walk(prefix)
	if start == nil {
		return &iterator[V]{}
	}
	return newIterator(start, []byte(prefix))
}

func (t *tree[V]) hasPrefix(prefix string) bool {
	return t.iteratorWithPrefix(prefix).HasNext()
}

func newIterator[V any](start *node[V], path []byte) *iterator[V] {
	it := &iterator[V]{
		depth: []iteratorLevel[V]{{start, nullIdx}},
		path:  path,
	}
	it.next()
	return it
}

func (it *iterator[V]) HasNext() bool {
	return it != nil && it.hasNext
}

func (it *iterator[V]) Next() (string, V, error) {
	if !it.HasNext() {
		var zero V
		return "", zero, ErrNoMoreKeys
	}
	key, value := it.nextKey, it.nextValue
	it.next()
	return key, value, nil
}

// next advances to the next terminal node in pre-order. Every level above
// the first owns one byte of path.
func (it *iterator[V]) next() {
	for len(it.depth) > 0 {
		level := &it.depth[len(it.depth)-1]
		curNode := level.node

		if level.childIdx == nullIdx {
			level.childIdx = 0
			if curNode.terminal {
				it.hasNext = true
				it.nextKey = string(it.path)
				it.nextValue = curNode.value
				return
			}
			continue
		}

		if level.childIdx < len(curNode.symbols) {
			c := curNode.symbols[level.childIdx]
			level.childIdx++
			it.path = append(it.path, c)
			it.depth = append(it.depth, iteratorLevel[V]{curNode.children[c], nullIdx})
			continue
		}

		it.depth = it.depth[:len(it.depth)-1]
		if len(it.depth) > 0 {
			it.path = it.path[:len(it.path)-1]
		}
	}

	var zero V
	it.hasNext = false
	it.nextKey = ""
	it.nextValue = zero
}

func keyNotFound(key string) error {
	return fmt.Errorf("%w: %q", ErrKeyNotFound, key)
}
