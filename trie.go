package trie

import (
	"errors"

	"github.com/go-logr/logr"
)

const (
	// InsertionOrder enumerates children in the order their symbol was first inserted.
	InsertionOrder Order = iota
	// LexicalOrder keeps children sorted by byte value, so keys come out in ascending order.
	LexicalOrder
)

const nullIdx = -1

var (
	ErrKeyNotFound = errors.New("key not found")
	ErrNoMoreKeys  = errors.New("there are no more keys in the trie")
)

type (
	Order int

	tree[V any] struct {
		size  int
		root  *node[V]
		order Order
		prune bool
		log   logr.Logger
	}

	node[V any] struct {
		children map[byte]*node[V]
		// enumeration order of children
		symbols  []byte
		terminal bool
		value    V
	}

	// one step of a delete walk, kept for pruning
	edge[V any] struct {
		parent *node[V]
		c      byte
	}

	iteratorLevel[V any] struct {
		node     *node[V]
		childIdx int
	}

	iterator[V any] struct {
		depth []iteratorLevel[V]
		path  []byte

		hasNext   bool
		nextKey   string
		nextValue V
	}
)

func newTree[V any](opts []Option) *tree[V] {
	cfg := newConfig(opts)
	return &tree[V]{
		root:  &node[V]{},
		order: cfg.order,
		prune: cfg.prune,
		log:   cfg.log,
	}
}

func (o Order) String() string {
	switch o {
	case InsertionOrder:
		return "InsertionOrder"
	case LexicalOrder:
		return "LexicalOrder"
	}
	return "Order(?)"
}
