package node

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/RiyanshKarani011235/supercollider/server/pool"
)

// slotBytes is the storage per control slot: one little-endian float32.
const slotBytes = 4

// Synth is a leaf processing node. The concrete signal processing lives in
// the unit-generation engine; this kind owns the node lifecycle and the
// control-slot storage, which is a single pool block of little-endian
// float32 values.
type Synth struct {
	Node

	p     *pool.Pool
	ref   pool.Ref
	state []byte

	names []string
	index map[string]int
}

// NewSynth creates a synth with the given id and named control slots, in
// declaration order. Slot storage is allocated from p and returned to it
// when the synth is destroyed; a pool.ErrExhausted from p propagates to the
// caller and leaves no trace behind.
func NewSynth(p *pool.Pool, id uint32, slotNames []string) (*Synth, error) {
	s := &Synth{p: p}
	s.Node.init(id, true, s)

	if len(slotNames) > 0 {
		ref, state, err := p.Alloc(int32(len(slotNames) * slotBytes))
		if err != nil {
			return nil, fmt.Errorf("synth %d: slot storage: %w", id, err)
		}
		clear(state)
		s.ref = ref
		s.state = state
	}

	s.names = slotNames
	s.index = make(map[string]int, len(slotNames))
	for i, name := range slotNames {
		s.index[name] = i
	}
	s.finalize = s.freeState
	return s, nil
}

// freeState returns the slot block to the pool during destruction.
func (s *Synth) freeState() {
	if s.state == nil {
		return
	}
	s.state = nil
	if err := s.p.Free(s.ref); err != nil {
		panic(fmt.Sprintf("synth %d: free slot storage: %v", s.id, err))
	}
}

// NumSlots returns the number of control slots.
func (s *Synth) NumSlots() int {
	return len(s.names)
}

// SlotIndex resolves a slot name to its index.
func (s *Synth) SlotIndex(name string) (int, error) {
	i, ok := s.index[name]
	if !ok {
		return 0, fmt.Errorf("slot %q: %w", name, ErrInvalidSlot)
	}
	return i, nil
}

// Slot returns the current value of the slot at index.
func (s *Synth) Slot(index int) (float32, error) {
	if index < 0 || index >= len(s.names) {
		return 0, fmt.Errorf("slot %d: %w", index, ErrInvalidSlot)
	}
	bits := binary.LittleEndian.Uint32(s.state[index*slotBytes:])
	return math.Float32frombits(bits), nil
}

// Set implements SlotSetter.
func (s *Synth) Set(name string, value float32) error {
	i, err := s.SlotIndex(name)
	if err != nil {
		return err
	}
	return s.SetIndex(i, value)
}

// SetN implements SlotSetter.
func (s *Synth) SetN(name string, values []float32) error {
	i, err := s.SlotIndex(name)
	if err != nil {
		return err
	}
	return s.SetIndexN(i, values)
}

// SetIndex implements SlotSetter.
func (s *Synth) SetIndex(index int, value float32) error {
	if index < 0 || index >= len(s.names) {
		return fmt.Errorf("slot %d: %w", index, ErrInvalidSlot)
	}
	binary.LittleEndian.PutUint32(s.state[index*slotBytes:], math.Float32bits(value))
	return nil
}

// SetIndexN implements SlotSetter. The run must fit: index+len(values) may
// not pass the last slot.
func (s *Synth) SetIndexN(index int, values []float32) error {
	if index < 0 || index+len(values) > len(s.names) {
		return fmt.Errorf("slot run [%d,%d): %w", index, index+len(values), ErrInvalidSlot)
	}
	for i, v := range values {
		binary.LittleEndian.PutUint32(s.state[(index+i)*slotBytes:], math.Float32bits(v))
	}
	return nil
}
