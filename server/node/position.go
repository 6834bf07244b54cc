package node

// Position selects where a node is placed among a group's children.
type Position uint8

const (
	// PositionHead places the node as the first child.
	PositionHead Position = iota
	// PositionTail places the node as the last child.
	PositionTail
	// PositionBefore places the node immediately before the reference node.
	PositionBefore
	// PositionAfter places the node immediately after the reference node.
	PositionAfter
	// PositionReplace places the node where the reference node was and
	// detaches the reference node.
	PositionReplace
	// PositionInsert adds the node for composite/parallel groups. The core
	// appends at the tail; any further interleaving policy is owned by the
	// group collaborator.
	PositionInsert
)

// String returns the protocol-facing name of the position.
func (p Position) String() string {
	switch p {
	case PositionHead:
		return "head"
	case PositionTail:
		return "tail"
	case PositionBefore:
		return "before"
	case PositionAfter:
		return "after"
	case PositionReplace:
		return "replace"
	case PositionInsert:
		return "insert"
	}
	return "unknown"
}

// Placement is a position plus its reference node, for the relative
// positions. Head, tail and insert ignore Ref.
type Placement struct {
	Position Position
	Ref      *Node
}

// Head returns a head placement.
func Head() Placement { return Placement{Position: PositionHead} }

// Tail returns a tail placement.
func Tail() Placement { return Placement{Position: PositionTail} }

// Before returns a placement before ref.
func Before(ref *Node) Placement { return Placement{Position: PositionBefore, Ref: ref} }

// After returns a placement after ref.
func After(ref *Node) Placement { return Placement{Position: PositionAfter, Ref: ref} }

// Replace returns a placement that takes ref's spot and detaches ref.
func Replace(ref *Node) Placement { return Placement{Position: PositionReplace, Ref: ref} }
