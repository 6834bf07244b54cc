package node

// Handle is an owning reference to a node. Acquiring a handle retains the
// node; releasing it releases the reference and invalidates the handle, so
// the double-release class of bug trips a panic instead of corrupting the
// count.
type Handle struct {
	n *Node
}

// Acquire retains n and returns an owning handle for it.
func Acquire(n *Node) *Handle {
	n.Retain()
	return &Handle{n: n}
}

// Node returns the referenced node. Panics on a released handle.
func (h *Handle) Node() *Node {
	if h.n == nil {
		panic("node: use of released handle")
	}
	return h.n
}

// Clone returns a new handle holding its own reference.
func (h *Handle) Clone() *Handle {
	return Acquire(h.Node())
}

// Release drops the handle's reference. The handle is dead afterwards;
// releasing twice panics.
func (h *Handle) Release() {
	n := h.n
	if n == nil {
		panic("node: handle released twice")
	}
	h.n = nil
	n.Release()
}
