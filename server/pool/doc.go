// Package pool provides the fixed-capacity memory pool that backs all node
// allocations on the server.
//
// # Overview
//
// The audio thread may create and destroy nodes between processing blocks, so
// every byte of node storage must come from a region that was reserved up
// front. After New returns, the pool never calls into the operating system or
// the Go heap: allocation and deallocation are O(1) and lock-free, safe to
// invoke from the real-time thread.
//
// # Design
//
// The pool carves blocks out of a single contiguous region using an atomic
// bump pointer. Block sizes are rounded up to a power-of-two class (32 bytes
// minimum); freed blocks are pushed onto a per-class tagged stack and reused
// by later allocations of the same class. A block never migrates between
// classes and free blocks are never split or coalesced, which is what keeps
// both paths constant-time without locks.
//
// Every block starts with a 4-byte header holding the block size: negative
// while the block is allocated, positive while it is free. The sign flip
// makes double-free detectable (ErrNotAllocated) and catches references into
// the middle of a block (ErrBadRef).
//
// # Failure policy
//
// When the region is exhausted, Alloc fails with ErrExhausted. It never
// degrades to a general-purpose allocation: a caller that sees ErrExhausted
// is guaranteed that no hidden heap growth took place. Because reuse is
// class-local, an allocation can also fail while other classes still hold
// free blocks; the failure is deterministic either way.
//
// # Capacity
//
// The server reserves DefaultCapacity (8 MiB) at startup. Capacity is fixed
// for the lifetime of a pool and is not runtime-reconfigurable; Remaining
// reports the bytes still available for diagnostics.
//
// # Thread safety
//
// Alloc, Free, Remaining and Stats are safe for concurrent use from any
// thread. All synchronization is atomic arithmetic; no operation blocks,
// sleeps, or performs I/O.
package pool
