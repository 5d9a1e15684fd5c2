package trie

import "slices"

func (n *node[V]) findChild(c byte) *node[V] {
	return n.children[c]
}

// addChild links child under symbol c. With LexicalOrder the symbols stay
// sorted, otherwise c is appended.
func (n *node[V]) addChild(c byte, child *node[V], order Order) {
	if n.children == nil {
		n.children = make(map[byte]*node[V], 1)
	}
	n.children[c] = child

	if order == LexicalOrder {
		i, _ := slices.BinarySearch(n.symbols, c)
		n.symbols = slices.Insert(n.symbols, i, c)
		return
	}
	n.symbols = append(n.symbols, c)
}

func (n *node[V]) removeChild(c byte) {
	if _, ok := n.children[c]; !ok {
		return
	}
	delete(n.children, c)
	if i := slices.Index(n.symbols, c); i >= 0 {
		n.symbols = slices.Delete(n.symbols, i, i+1)
	}
}

func (n *node[V]) numChildren() int {
	return len(n.symbols)
}

// a dead node holds no key and leads to none
func (n *node[V]) isDead() bool {
	return !n.terminal && n.numChildren() == 0
}

func (n *node[V]) setValue(value V) {
	n.terminal = true
	n.value = value
}

func (n *node[V]) clearValue() {
	var zero V
	n.terminal = false
	n.value = zero
}
