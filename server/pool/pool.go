package pool

import (
	"encoding/binary"
	"fmt"
	"sync/atomic"
)

// DefaultCapacity is the region reserved for node storage by the server.
// It is a build-time constant and defines the hard ceiling on total live
// node storage.
const DefaultCapacity int64 = 8 << 20

// Ref is a block reference: the byte offset of the block within the region.
// Refs are stable for the lifetime of the allocation.
type Ref = uint32

// nilIdx marks an empty free stack / end of a free chain.
const nilIdx = ^uint32(0)

// Pool is a fixed-capacity, lock-free block allocator.
type Pool struct {
	data     []byte
	capacity int64
	release  func([]byte) error

	// bump is the carve frontier: bytes [0, bump) have been handed out at
	// least once. Only ever grows.
	bump atomic.Int64

	// avail tracks bytes not currently allocated (uncarved + on free stacks).
	avail atomic.Int64

	// heads holds one tagged free stack per block class. The low 32 bits are
	// the slot index of the top block (nilIdx when empty), the high 32 bits
	// a tag bumped on every update to defeat ABA.
	heads []atomic.Uint64

	// next holds the free-chain successor for every 32-byte slot. Indexed by
	// block offset / MinBlockSize.
	next []atomic.Uint32

	stats counters
}

// counters holds internal statistics, updated atomically.
type counters struct {
	allocCalls     atomic.Int64
	freeCalls      atomic.Int64
	reuses         atomic.Int64
	carves         atomic.Int64
	bytesAllocated atomic.Int64
	bytesFreed     atomic.Int64
}

// Stats is a point-in-time snapshot of pool counters.
type Stats struct {
	AllocCalls     int64 // total Alloc calls
	FreeCalls      int64 // total Free calls
	Reuses         int64 // allocations served from a free stack
	Carves         int64 // allocations served by carving fresh region bytes
	BytesAllocated int64 // cumulative block bytes handed out
	BytesFreed     int64 // cumulative block bytes returned
}

// New creates a pool over a freshly reserved region of the given capacity.
// Capacity is rounded down to a MinBlockSize multiple and is fixed for the
// pool's lifetime.
func New(capacity int64) (*Pool, error) {
	capacity -= capacity % MinBlockSize
	if capacity < MinBlockSize {
		return nil, ErrBadCapacity
	}

	data, release, err := mapRegion(int(capacity))
	if err != nil {
		return nil, fmt.Errorf("pool: reserve region: %w", err)
	}

	p := &Pool{
		data:     data,
		capacity: capacity,
		release:  release,
		heads:    make([]atomic.Uint64, numClassesFor(capacity)),
		next:     make([]atomic.Uint32, capacity/MinBlockSize),
	}
	for i := range p.heads {
		p.heads[i].Store(uint64(nilIdx))
	}
	p.avail.Store(capacity)
	return p, nil
}

// NewDefault creates a pool of DefaultCapacity.
func NewDefault() (*Pool, error) {
	return New(DefaultCapacity)
}

// Close releases the underlying region. The pool must not be used afterwards.
func (p *Pool) Close() error {
	if p.data == nil {
		return nil
	}
	data := p.data
	p.data = nil
	if p.release == nil {
		return nil
	}
	return p.release(data)
}

// Capacity returns the fixed total capacity in bytes.
func (p *Pool) Capacity() int64 {
	return p.capacity
}

// Remaining returns the bytes currently available for allocation.
func (p *Pool) Remaining() int64 {
	return p.avail.Load()
}

// BlockSize reports the block size that would serve a payload of need
// bytes, so callers can account for rounding.
func (p *Pool) BlockSize(need int32) (int32, error) {
	if need <= 0 {
		return 0, ErrNeedSmall
	}
	if int64(need)+headerSize > int64(maxBlockFor(p.capacity)) {
		return 0, ErrTooLarge
	}
	return blockSizeFor(need), nil
}

// Alloc returns a block with at least need payload bytes. O(1), lock-free,
// no syscalls. The payload slice aliases the pool region and stays valid
// until the matching Free.
func (p *Pool) Alloc(need int32) (Ref, []byte, error) {
	p.stats.allocCalls.Add(1)

	size, err := p.BlockSize(need)
	if err != nil {
		return 0, nil, err
	}
	class := classFor(size)

	off, reused := p.popFree(class)
	if !reused {
		off, err = p.carve(size)
		if err != nil {
			return 0, nil, err
		}
		p.stats.carves.Add(1)
	} else {
		p.stats.reuses.Add(1)
	}

	p.avail.Add(-int64(size))
	p.stats.bytesAllocated.Add(int64(size))

	putI32(p.data, off, -size)
	payload := p.data[off+headerSize : int64(off)+int64(size)]
	return off, payload, nil
}

// Free returns a block to its class free stack. O(1), lock-free.
func (p *Pool) Free(ref Ref) error {
	p.stats.freeCalls.Add(1)

	if int64(ref)+headerSize > p.capacity || ref%MinBlockSize != 0 {
		return ErrBadRef
	}
	hdr := getI32(p.data, ref)
	if hdr >= 0 {
		return ErrNotAllocated
	}
	size := -hdr
	if size < MinBlockSize || size&(size-1) != 0 || int64(ref)+int64(size) > p.capacity {
		return ErrBadRef
	}

	putI32(p.data, ref, size)
	p.pushFree(classFor(size), ref)

	p.avail.Add(int64(size))
	p.stats.bytesFreed.Add(int64(size))
	return nil
}

// Stats returns a snapshot of the pool counters.
func (p *Pool) Stats() Stats {
	return Stats{
		AllocCalls:     p.stats.allocCalls.Load(),
		FreeCalls:      p.stats.freeCalls.Load(),
		Reuses:         p.stats.reuses.Load(),
		Carves:         p.stats.carves.Load(),
		BytesAllocated: p.stats.bytesAllocated.Load(),
		BytesFreed:     p.stats.bytesFreed.Load(),
	}
}

// carve claims size fresh bytes from the region frontier.
func (p *Pool) carve(size int32) (Ref, error) {
	for {
		cur := p.bump.Load()
		if cur+int64(size) > p.capacity {
			return 0, ErrExhausted
		}
		if p.bump.CompareAndSwap(cur, cur+int64(size)) {
			return Ref(cur), nil
		}
	}
}

// popFree pops the top block off a class stack. Tagged CAS prevents ABA.
func (p *Pool) popFree(class int) (Ref, bool) {
	head := &p.heads[class]
	for {
		h := head.Load()
		idx := uint32(h)
		if idx == nilIdx {
			return 0, false
		}
		nxt := p.next[idx].Load()
		tag := (h >> 32) + 1
		if head.CompareAndSwap(h, tag<<32|uint64(nxt)) {
			return idx * MinBlockSize, true
		}
	}
}

// pushFree pushes a block onto its class stack.
func (p *Pool) pushFree(class int, ref Ref) {
	head := &p.heads[class]
	idx := ref / MinBlockSize
	for {
		h := head.Load()
		p.next[idx].Store(uint32(h))
		tag := (h >> 32) + 1
		if head.CompareAndSwap(h, tag<<32|uint64(idx)) {
			return
		}
	}
}

func getI32(data []byte, off uint32) int32 {
	return int32(binary.LittleEndian.Uint32(data[off:]))
}

func putI32(data []byte, off uint32, v int32) {
	binary.LittleEndian.PutUint32(data[off:], uint32(v))
}
