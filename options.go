package trie

import "github.com/go-logr/logr"

// Option configures a Dict or a Set at construction time.
type Option func(*config)

type config struct {
	order Order
	prune bool
	log   logr.Logger
}

func newConfig(opts []Option) config {
	cfg := config{
		order: InsertionOrder,
		log:   logr.Discard(),
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// WithOrder sets the order in which iteration visits the children of a node.
func WithOrder(o Order) Option {
	return func(c *config) {
		c.order = o
	}
}

// WithPruning makes deletes remove branches that no longer lead to any key.
// Without it, deleted keys leave their intermediate nodes allocated.
func WithPruning() Option {
	return func(c *config) {
		c.prune = true
	}
}

// WithLogger sets the logger used for structural events such as clearing
// and pruning. They are logged at V(1).
func WithLogger(log logr.Logger) Option {
	return func(c *config) {
		c.log = log.WithName("trie")
	}
}
