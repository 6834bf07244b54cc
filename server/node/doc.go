// Package node implements the processing-node model at the heart of the
// server: the Node entity, the intrusive sibling list that records group
// membership, reference-counted lifetime, the run/pause state, and the
// control-slot contract every node kind implements.
//
// # Lifecycle
//
// A node is constructed with an externally assigned 32-bit id and a fixed
// kind (synth or group). A fresh node carries zero references and no parent.
// Attaching it to a group adds exactly one reference and sets the parent
// back-reference; detaching clears the parent and releases that reference.
// External holders retain and release independently, normally through a
// Handle. The node is destroyed synchronously the instant its count reaches
// zero, which by construction can only happen after detachment — destroying
// a node that is still attached is a programming-contract violation and
// panics.
//
// # Membership
//
// Each node carries its own link state, so unlinking is always safe and
// self-contained: placing a node into a group detaches it from whatever
// group currently holds it, which is how nodes move between groups without a
// separate remove step. Sibling traversal (PrevSibling/NextSibling) is O(1)
// and returns nil at the list boundary.
//
// # Thread safety
//
// The reference count uses atomic arithmetic and may be manipulated from any
// thread. List linkage, parent pointers, the run/pause flag and slot values
// are mutated under a single logical owner at a time (the real-time thread,
// or a control thread holding exclusive access at a synchronization point);
// the package builds no locking into them.
package node
