package node

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// bareNode builds a Node outside any concrete kind, with a destruction
// probe.
func bareNode(id uint32, synth bool, destroyed *int) *Node {
	n := &Node{}
	n.init(id, synth, nil)
	if destroyed != nil {
		n.finalize = func() { *destroyed++ }
	}
	return n
}

func Test_NewNode_Defaults(t *testing.T) {
	n := bareNode(42, true, nil)

	require.Equal(t, uint32(42), n.ID())
	require.True(t, n.IsSynth())
	require.True(t, n.IsRunning())
	require.Nil(t, n.Parent())
	require.Nil(t, n.PrevSibling())
	require.Nil(t, n.NextSibling())
	require.False(t, n.Registered())
	require.Equal(t, int32(0), n.RefCount())
}

func Test_PauseResume_Idempotent(t *testing.T) {
	n := bareNode(1, true, nil)

	n.Pause()
	require.False(t, n.IsRunning())
	n.Pause()
	require.False(t, n.IsRunning())

	n.Resume()
	require.True(t, n.IsRunning())
	n.Resume()
	require.True(t, n.IsRunning())
}

func Test_RetainRelease_DestroysExactlyOnce(t *testing.T) {
	destroyed := 0
	n := bareNode(1, true, &destroyed)

	n.Retain()
	n.Retain()
	n.Retain()

	n.Release()
	n.Release()
	require.Equal(t, 0, destroyed)

	n.Release()
	require.Equal(t, 1, destroyed)
}

func Test_ReleaseUnderflow_Panics(t *testing.T) {
	n := bareNode(1, true, nil)
	require.Panics(t, func() { n.Release() })
}

func Test_DestroyWhileAttached_Panics(t *testing.T) {
	g := NewGroup(1)
	n := bareNode(2, true, nil)
	g.AddTail(n) // membership reference, count = 1

	// Releasing the membership reference without detaching first would
	// destroy the node while still attached.
	require.Panics(t, func() { n.Release() })
}

func Test_ResetID(t *testing.T) {
	n := bareNode(7, true, nil)

	require.NoError(t, n.ResetID(9))
	require.Equal(t, uint32(9), n.ID())

	n.MarkRegistered(true)
	require.ErrorIs(t, n.ResetID(11), ErrNodeRegistered)
	require.Equal(t, uint32(9), n.ID())

	n.MarkRegistered(false)
	require.NoError(t, n.ResetID(11))
	require.Equal(t, uint32(11), n.ID())
}

func Test_AttachDetach_ReferencePairing(t *testing.T) {
	destroyed := 0
	g := NewGroup(1)
	n := bareNode(2, true, &destroyed)

	// External holder plus attachment.
	h := Acquire(n)
	g.AddTail(n)
	require.Equal(t, int32(2), n.RefCount())
	require.Equal(t, g, n.Parent())

	// Detachment releases exactly the membership reference.
	n.Detach()
	require.Nil(t, n.Parent())
	require.Equal(t, int32(1), n.RefCount())
	require.Equal(t, 0, destroyed)

	h.Release()
	require.Equal(t, 1, destroyed)
}

func Test_Detach_WithoutParent_IsNoop(t *testing.T) {
	n := bareNode(1, true, nil)
	n.Detach()
	require.Nil(t, n.Parent())
	require.Equal(t, int32(0), n.RefCount())
}

func Test_Handle_DoubleRelease_Panics(t *testing.T) {
	destroyed := 0
	n := bareNode(1, true, &destroyed)

	h := Acquire(n)
	h.Release()
	require.Equal(t, 1, destroyed)
	require.Panics(t, func() { h.Release() })
}

func Test_Handle_Clone(t *testing.T) {
	destroyed := 0
	n := bareNode(1, true, &destroyed)

	h := Acquire(n)
	h2 := h.Clone()
	require.Equal(t, int32(2), n.RefCount())

	h.Release()
	require.Equal(t, 0, destroyed)
	require.Equal(t, n, h2.Node())

	h2.Release()
	require.Equal(t, 1, destroyed)
}
