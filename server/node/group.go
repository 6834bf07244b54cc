package node

import (
	"errors"
	"fmt"
)

// Group is a node that owns an ordered collection of children. The core
// provides placement and traversal; the execution-order policy across
// threads belongs to the scheduling collaborator.
type Group struct {
	Node
	children List
}

// NewGroup creates an empty group with the given id.
func NewGroup(id uint32) *Group {
	g := &Group{}
	g.Node.init(id, false, g)
	g.finalize = g.checkEmpty
	return g
}

// checkEmpty runs at destruction. Children hold a membership reference on
// themselves, not on the group, so a group can reach count zero while still
// populated — which would strand its children. Collaborators must detach
// children first.
func (g *Group) checkEmpty() {
	if !g.children.Empty() {
		panic(fmt.Sprintf("group %d: destroyed with attached children", g.id))
	}
}

// Children returns the group's child list for traversal.
func (g *Group) Children() *List {
	return &g.children
}

// Empty reports whether the group has no children.
func (g *Group) Empty() bool {
	return g.children.Empty()
}

// Add places n among g's children according to pl. If n is currently
// attached elsewhere it is detached first; the placement holds its own
// reference across the move, so the node cannot be destroyed mid-flight.
func (g *Group) Add(n *Node, pl Placement) error {
	switch pl.Position {
	case PositionHead:
		g.AddHead(n)
	case PositionTail, PositionInsert:
		g.AddTail(n)
	case PositionBefore:
		return g.AddBefore(n, pl.Ref)
	case PositionAfter:
		return g.AddAfter(n, pl.Ref)
	case PositionReplace:
		return g.ReplaceChild(n, pl.Ref)
	default:
		return fmt.Errorf("position %d: %w", pl.Position, ErrBadPosition)
	}
	return nil
}

// AddHead attaches n as the first child.
func (g *Group) AddHead(n *Node) {
	g.adopt(n, func() { g.children.PushFront(n) })
}

// AddTail attaches n as the last child.
func (g *Group) AddTail(n *Node) {
	g.adopt(n, func() { g.children.PushBack(n) })
}

// AddBefore attaches n immediately before ref, which must be a child of g.
func (g *Group) AddBefore(n, ref *Node) error {
	if err := g.checkChild(ref); err != nil {
		return err
	}
	g.adopt(n, func() { g.children.InsertBefore(n, ref) })
	return nil
}

// AddAfter attaches n immediately after ref, which must be a child of g.
func (g *Group) AddAfter(n, ref *Node) error {
	if err := g.checkChild(ref); err != nil {
		return err
	}
	g.adopt(n, func() { g.children.InsertAfter(n, ref) })
	return nil
}

// ReplaceChild attaches n in ref's position and detaches ref. ref must be a
// child of g. Detaching releases ref's membership reference, which may
// destroy it.
func (g *Group) ReplaceChild(n, ref *Node) error {
	if err := g.checkChild(ref); err != nil {
		return err
	}
	if n == ref {
		return errors.New("node: replace with itself")
	}
	g.adopt(n, func() { g.children.InsertBefore(n, ref) })
	ref.Detach()
	return nil
}

// DetachAll detaches every child. Children whose membership reference was
// their last are destroyed.
func (g *Group) DetachAll() {
	for c := g.children.Front(); c != nil; c = g.children.Front() {
		c.Detach()
	}
}

// Set implements SlotSetter by fanning the assignment out to all children.
// Children that do not recognize the slot are skipped.
func (g *Group) Set(name string, value float32) error {
	for c := g.children.Front(); c != nil; c = c.NextSibling() {
		if err := c.Setter().Set(name, value); err != nil && !errors.Is(err, ErrInvalidSlot) {
			return err
		}
	}
	return nil
}

// SetN implements SlotSetter; see Set.
func (g *Group) SetN(name string, values []float32) error {
	for c := g.children.Front(); c != nil; c = c.NextSibling() {
		if err := c.Setter().SetN(name, values); err != nil && !errors.Is(err, ErrInvalidSlot) {
			return err
		}
	}
	return nil
}

// SetIndex implements SlotSetter; see Set.
func (g *Group) SetIndex(index int, value float32) error {
	for c := g.children.Front(); c != nil; c = c.NextSibling() {
		if err := c.Setter().SetIndex(index, value); err != nil && !errors.Is(err, ErrInvalidSlot) {
			return err
		}
	}
	return nil
}

// SetIndexN implements SlotSetter; see Set.
func (g *Group) SetIndexN(index int, values []float32) error {
	for c := g.children.Front(); c != nil; c = c.NextSibling() {
		if err := c.Setter().SetIndexN(index, values); err != nil && !errors.Is(err, ErrInvalidSlot) {
			return err
		}
	}
	return nil
}

// checkChild verifies that ref is attached to g.
func (g *Group) checkChild(ref *Node) error {
	if ref == nil || ref.parent != g {
		return ErrNotChild
	}
	return nil
}

// adopt moves n into g: a temporary reference guards the node across the
// detach from its old parent, then the attachment retains and the link
// function places it.
func (g *Group) adopt(n *Node, link func()) {
	n.Retain()
	n.Detach()
	n.setParent(g)
	link()
	n.Release()
}
