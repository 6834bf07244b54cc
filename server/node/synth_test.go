package node

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/RiyanshKarani011235/supercollider/server/pool"
)

func newTestSynth(t *testing.T, p *pool.Pool, id uint32, slots ...string) *Synth {
	t.Helper()
	s, err := NewSynth(p, id, slots)
	require.NoError(t, err)
	return s
}

func Test_NewSynth(t *testing.T) {
	p := newTestPool(t)
	s := newTestSynth(t, p, 1, "freq", "amp", "pan")

	require.True(t, s.IsSynth())
	require.Equal(t, 3, s.NumSlots())

	// Slots start zeroed.
	for i := 0; i < 3; i++ {
		v, err := s.Slot(i)
		require.NoError(t, err)
		require.Equal(t, float32(0), v)
	}
}

func Test_Synth_NoSlots(t *testing.T) {
	p := newTestPool(t)
	free := p.Remaining()

	s := newTestSynth(t, p, 1)
	require.Equal(t, 0, s.NumSlots())
	require.Equal(t, free, p.Remaining(), "slotless synth takes no pool storage")
	require.ErrorIs(t, s.Set("freq", 440), ErrInvalidSlot)

	h := Acquire(&s.Node)
	h.Release()
}

func Test_Synth_SetByName(t *testing.T) {
	p := newTestPool(t)
	s := newTestSynth(t, p, 1, "freq", "amp")

	require.NoError(t, s.Set("freq", 440))
	require.NoError(t, s.Set("amp", 0.25))

	v, err := s.Slot(0)
	require.NoError(t, err)
	require.Equal(t, float32(440), v)
	v, err = s.Slot(1)
	require.NoError(t, err)
	require.Equal(t, float32(0.25), v)

	require.ErrorIs(t, s.Set("cutoff", 1200), ErrInvalidSlot)
}

func Test_Synth_SetByIndex(t *testing.T) {
	p := newTestPool(t)
	s := newTestSynth(t, p, 1, "freq", "amp")

	require.NoError(t, s.SetIndex(1, 0.5))
	v, err := s.Slot(1)
	require.NoError(t, err)
	require.Equal(t, float32(0.5), v)

	require.ErrorIs(t, s.SetIndex(-1, 0), ErrInvalidSlot)
	require.ErrorIs(t, s.SetIndex(2, 0), ErrInvalidSlot)
}

func Test_Synth_SetRun(t *testing.T) {
	p := newTestPool(t)
	s := newTestSynth(t, p, 1, "a", "b", "c", "d")

	require.NoError(t, s.SetN("b", []float32{1, 2, 3}))
	want := []float32{0, 1, 2, 3}
	for i, w := range want {
		v, err := s.Slot(i)
		require.NoError(t, err)
		require.Equal(t, w, v)
	}

	// A run that starts valid but passes the last slot is rejected whole.
	require.ErrorIs(t, s.SetN("c", []float32{9, 9, 9}), ErrInvalidSlot)
	v, err := s.Slot(2)
	require.NoError(t, err)
	require.Equal(t, float32(2), v, "rejected run must not write partially")

	require.ErrorIs(t, s.SetN("nope", []float32{1}), ErrInvalidSlot)
	require.ErrorIs(t, s.SetIndexN(4, []float32{1}), ErrInvalidSlot)
	require.NoError(t, s.SetIndexN(0, nil))
}

func Test_Synth_SlotIndex(t *testing.T) {
	p := newTestPool(t)
	s := newTestSynth(t, p, 1, "freq", "amp")

	i, err := s.SlotIndex("amp")
	require.NoError(t, err)
	require.Equal(t, 1, i)

	_, err = s.SlotIndex("gate")
	require.ErrorIs(t, err, ErrInvalidSlot)

	_, err = s.Slot(7)
	require.ErrorIs(t, err, ErrInvalidSlot)
}

func Test_Synth_DestroyReturnsStorage(t *testing.T) {
	p := newTestPool(t)
	free := p.Remaining()

	s := newTestSynth(t, p, 1, "freq", "amp", "pan", "gate")
	require.Less(t, p.Remaining(), free)

	h := Acquire(&s.Node)
	h.Release()
	require.Equal(t, free, p.Remaining())
}

func Test_Synth_AllocFailure(t *testing.T) {
	// A pool too full to hold the slot block fails synth construction and
	// leaves the pool untouched.
	p, err := pool.New(64)
	require.NoError(t, err)
	defer func() { require.NoError(t, p.Close()) }()

	_, _, err = p.Alloc(60) // consume the whole region
	require.NoError(t, err)
	free := p.Remaining()

	_, err = NewSynth(p, 1, []string{"freq"})
	require.ErrorIs(t, err, pool.ErrExhausted)
	require.Equal(t, free, p.Remaining())
}

func Test_Synth_DispatchThroughNode(t *testing.T) {
	// The slot capability is reachable from the plain node view, so group
	// fan-out and protocol handlers need no type switch.
	p := newTestPool(t)
	s := newTestSynth(t, p, 1, "freq")

	var n *Node = &s.Node
	require.NoError(t, n.Setter().Set("freq", 330))

	v, err := s.Slot(0)
	require.NoError(t, err)
	require.Equal(t, float32(330), v)
}
