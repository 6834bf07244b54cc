package registry

import (
	"fmt"

	"github.com/google/btree"

	"github.com/RiyanshKarani011235/supercollider/server/node"
)

// btreeDegree keeps tree nodes around a cache line's worth of entries.
const btreeDegree = 16

// entry keys a node by its id. Ordering and equality use the id only.
type entry struct {
	id uint32
	n  *node.Node
}

func lessEntry(a, b entry) bool {
	return a.id < b.id
}

// Registry is the ordered id → node index.
type Registry struct {
	tree *btree.BTreeG[entry]
}

// New creates an empty registry.
func New() *Registry {
	return &Registry{tree: btree.NewG(btreeDegree, lessEntry)}
}

// Insert enrolls n under its current id. A duplicate id fails with
// ErrDuplicateID and mutates nothing.
func (r *Registry) Insert(n *node.Node) error {
	key := entry{id: n.ID()}
	if _, ok := r.tree.Get(key); ok {
		return fmt.Errorf("id %d: %w", n.ID(), ErrDuplicateID)
	}
	key.n = n
	r.tree.ReplaceOrInsert(key)
	n.MarkRegistered(true)
	return nil
}

// Remove drops the entry for id and returns the node it mapped to.
// The second result is false if the id was not live.
func (r *Registry) Remove(id uint32) (*node.Node, bool) {
	e, ok := r.tree.Delete(entry{id: id})
	if !ok {
		return nil, false
	}
	e.n.MarkRegistered(false)
	return e.n, true
}

// Find returns the node registered under id. O(log n).
func (r *Registry) Find(id uint32) (*node.Node, bool) {
	e, ok := r.tree.Get(entry{id: id})
	if !ok {
		return nil, false
	}
	return e.n, true
}

// Ascend calls fn for every live entry in ascending id order until fn
// returns false.
func (r *Registry) Ascend(fn func(*node.Node) bool) {
	r.tree.Ascend(func(e entry) bool {
		return fn(e.n)
	})
}

// Len returns the number of live entries.
func (r *Registry) Len() int {
	return r.tree.Len()
}

// Stats reports registry metrics.
type Stats struct {
	Nodes int    // live entries
	Impl  string // implementation name
}

// Stats returns current registry metrics.
func (r *Registry) Stats() Stats {
	return Stats{Nodes: r.tree.Len(), Impl: "btree"}
}
