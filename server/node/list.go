package node

// List is an intrusive doubly-linked sibling list. The link state lives in
// the nodes themselves, so insertion and removal are O(1) with no per-element
// allocation and no length bookkeeping.
//
// A node is a member of at most one list. Every insert detaches the node
// from whatever list currently holds it first, so callers never need a
// separate remove step when repositioning.
type List struct {
	head, tail *Node
}

// Empty reports whether the list has no members.
func (l *List) Empty() bool {
	return l.head == nil
}

// Front returns the first node, or nil.
func (l *List) Front() *Node {
	return l.head
}

// Back returns the last node, or nil.
func (l *List) Back() *Node {
	return l.tail
}

// Len walks the list and counts members. O(n); diagnostics and tests only.
func (l *List) Len() int {
	n := 0
	for c := l.head; c != nil; c = c.next {
		n++
	}
	return n
}

// PushFront inserts n at the head.
func (l *List) PushFront(n *Node) {
	n.unlink()
	n.list = l
	n.next = l.head
	if l.head != nil {
		l.head.prev = n
	} else {
		l.tail = n
	}
	l.head = n
}

// PushBack inserts n at the tail.
func (l *List) PushBack(n *Node) {
	n.unlink()
	n.list = l
	n.prev = l.tail
	if l.tail != nil {
		l.tail.next = n
	} else {
		l.head = n
	}
	l.tail = n
}

// InsertBefore inserts n immediately before ref, which must be a member.
func (l *List) InsertBefore(n, ref *Node) {
	if ref.list != l {
		panic("node: insert relative to a non-member")
	}
	if n == ref {
		return
	}
	n.unlink()
	n.list = l
	n.prev = ref.prev
	n.next = ref
	if ref.prev != nil {
		ref.prev.next = n
	} else {
		l.head = n
	}
	ref.prev = n
}

// InsertAfter inserts n immediately after ref, which must be a member.
func (l *List) InsertAfter(n, ref *Node) {
	if ref.list != l {
		panic("node: insert relative to a non-member")
	}
	if n == ref {
		return
	}
	n.unlink()
	n.list = l
	n.next = ref.next
	n.prev = ref
	if ref.next != nil {
		ref.next.prev = n
	} else {
		l.tail = n
	}
	ref.next = n
}

// Remove unlinks n from the list. Safe if n is not a member.
func (l *List) Remove(n *Node) {
	if n.list == l {
		n.unlink()
	}
}

// unlink splices the node out of whichever list holds it. Self-contained:
// safe to call whether or not the node is linked.
func (n *Node) unlink() {
	if n.list == nil {
		return
	}
	if n.prev != nil {
		n.prev.next = n.next
	} else {
		n.list.head = n.next
	}
	if n.next != nil {
		n.next.prev = n.prev
	} else {
		n.list.tail = n.prev
	}
	n.prev = nil
	n.next = nil
	n.list = nil
}

// PrevSibling returns the preceding node in the parent's child list, or nil
// at the boundary.
func (n *Node) PrevSibling() *Node {
	return n.prev
}

// NextSibling returns the following node in the parent's child list, or nil
// at the boundary.
func (n *Node) NextSibling() *Node {
	return n.next
}
