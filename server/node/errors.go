package node

import "errors"

var (
	// ErrInvalidSlot indicates a slot name or index the node kind does not
	// recognize. The failure is local to the call; graph state is untouched.
	ErrInvalidSlot = errors.New("node: invalid slot")

	// ErrNodeRegistered indicates an id reassignment attempted while the
	// node is enrolled in the identity registry. Remove it first.
	ErrNodeRegistered = errors.New("node: id change while registered")

	// ErrNotChild indicates a placement relative to a reference node that is
	// not a child of the target group.
	ErrNotChild = errors.New("node: reference node is not a child of the group")

	// ErrBadPosition indicates an unknown placement position.
	ErrBadPosition = errors.New("node: unknown position")
)
