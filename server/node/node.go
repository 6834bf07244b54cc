package node

import "sync/atomic"

// Node is the entity the rest of the server manipulates: a synth or a group,
// identified by a 32-bit id, enrolled in at most one parent group and at
// most one identity registry at a time.
//
// Node is embedded by concrete kinds (Synth, Group); it is not used on its
// own.
type Node struct {
	id         uint32
	synth      bool
	running    bool
	registered bool

	parent *Group

	// Intrusive sibling linkage, owned by the parent's child list.
	prev, next *Node
	list       *List

	refs atomic.Int32

	// self points back at the embedding kind for capability dispatch.
	self SlotSetter

	// finalize runs during destruction, before the node is gone. Concrete
	// kinds use it to return pool storage.
	finalize func()
}

// init sets the construction-time fields. A fresh node is running, holds no
// references and is not attached anywhere.
func (n *Node) init(id uint32, synth bool, self SlotSetter) {
	n.id = id
	n.synth = synth
	n.running = true
	n.self = self
}

// ID returns the node's identifier.
func (n *Node) ID() uint32 {
	return n.id
}

// ResetID reassigns the node's id. It is permitted only while the node is
// not a registry member; the registry does not support in-place re-keying.
func (n *Node) ResetID(id uint32) error {
	if n.registered {
		return ErrNodeRegistered
	}
	n.id = id
	return nil
}

// IsSynth reports whether the node is a leaf processing node. Fixed at
// construction.
func (n *Node) IsSynth() bool {
	return n.synth
}

// IsRunning reports the run/pause flag. The scheduler consults it each block
// to decide whether to execute the node; it does not affect membership.
func (n *Node) IsRunning() bool {
	return n.running
}

// Pause clears the run flag. Idempotent.
func (n *Node) Pause() {
	n.running = false
}

// Resume sets the run flag. Idempotent.
func (n *Node) Resume() {
	n.running = true
}

// Parent returns the group this node is attached to, or nil.
func (n *Node) Parent() *Group {
	return n.parent
}

// Registered reports identity-registry membership.
func (n *Node) Registered() bool {
	return n.registered
}

// MarkRegistered records identity-registry membership. It is called by the
// registry on insert and remove; other callers must not use it.
func (n *Node) MarkRegistered(registered bool) {
	n.registered = registered
}

// Setter returns the node's control-slot capability.
func (n *Node) Setter() SlotSetter {
	return n.self
}

// Retain adds one ownership reference. Safe from any thread.
func (n *Node) Retain() {
	n.refs.Add(1)
}

// Release drops one ownership reference and destroys the node synchronously
// the instant the count reaches zero. Callers must never release without a
// matching prior retain; an underflow is a fatal contract violation.
func (n *Node) Release() {
	c := n.refs.Add(-1)
	switch {
	case c == 0:
		n.destroy()
	case c < 0:
		panic("node: release without matching retain")
	}
}

// RefCount returns the current reference count. Diagnostics only.
func (n *Node) RefCount() int32 {
	return int32(n.refs.Load())
}

// destroy runs the node's cleanup. The count can only reach zero after
// detachment, so an intact parent or list link here is a collaborator bug.
func (n *Node) destroy() {
	if n.parent != nil {
		panic("node: destroyed while attached to a group")
	}
	if n.list != nil {
		panic("node: destroyed while linked into a sibling list")
	}
	if n.finalize != nil {
		n.finalize()
	}
}

// setParent records the attachment: exactly one reference per attachment.
// The retain happens first so the node can never be observed attached with
// a zero count.
func (n *Node) setParent(g *Group) {
	n.Retain()
	if n.parent != nil {
		panic("node: parent already set")
	}
	n.parent = g
}

// clearParent reverses setParent. The release comes last; it may destroy
// the node.
func (n *Node) clearParent() {
	n.parent = nil
	n.Release()
}

// Detach removes the node from its parent group: it is unlinked from the
// sibling list, the parent reference is cleared and the membership
// reference released. No-op when the node has no parent.
//
// Detach may destroy the node if the membership reference was the last one;
// callers that need the node afterwards must hold their own reference.
func (n *Node) Detach() {
	if n.parent == nil {
		return
	}
	n.unlink()
	n.clearParent()
}
