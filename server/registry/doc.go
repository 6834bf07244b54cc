// Package registry maintains the identity index of the node graph: an
// ordered, unique mapping from 32-bit node id to node.
//
// # Semantics
//
// Comparison is solely on the integer id — two entries are equal iff their
// ids are equal, ordered ascending. Insert enforces uniqueness: a duplicate
// id is rejected with ErrDuplicateID and existing state is untouched
// (duplicates indicate a bug in the id-allocation collaborator, but the
// registry stays consistent regardless). Find and Remove are O(log n);
// Ascend iterates live entries in id order.
//
// Registry membership is independent of group membership and carries no
// ownership reference; the command layer removes the entry no later than
// the node's detachment. While a node is enrolled, its id is frozen —
// Node.ResetID refuses until the entry is removed.
//
// # Thread safety
//
// The registry is mutated under a single logical owner at a time; it builds
// in no locking.
package registry
