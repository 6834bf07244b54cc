package node

// SlotSetter is the control-value capability every node kind implements.
// A slot is addressed either by name or by a pre-resolved numeric index,
// and set either as a single scalar or as a contiguous run of values
// starting at that slot.
//
// Unknown names and out-of-range indices fail with an error wrapping
// ErrInvalidSlot; the failure is local to the call and never corrupts
// graph state.
type SlotSetter interface {
	// Set assigns a scalar to the named slot.
	Set(name string, value float32) error

	// SetN assigns a contiguous run of values starting at the named slot.
	SetN(name string, values []float32) error

	// SetIndex assigns a scalar to the slot at index.
	SetIndex(index int, value float32) error

	// SetIndexN assigns a contiguous run of values starting at index.
	SetIndexN(index int, values []float32) error
}
