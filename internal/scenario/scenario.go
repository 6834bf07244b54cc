// Package scenario loads TOML descriptions of a node graph for nodectl:
// which groups and synths to create, where to place them, and which control
// slots to set. Entries are applied in file order, so placement targets must
// be declared before they are referenced.
package scenario

import (
	"fmt"

	"github.com/BurntSushi/toml"

	"github.com/RiyanshKarani011235/supercollider/server/node"
)

// File is the top-level scenario document.
type File struct {
	Pool   Pool    `toml:"pool"`
	Groups []Group `toml:"group"`
	Synths []Synth `toml:"synth"`
}

// Pool configures the storage pool for the run. A zero capacity means the
// server default.
type Pool struct {
	Capacity int64 `toml:"capacity"`
}

// Group describes one group to create.
type Group struct {
	ID       uint32 `toml:"id"`
	Parent   uint32 `toml:"parent"`   // parent group id; 0 is the root
	Position string `toml:"position"` // head/tail/before/after/replace/insert; default tail
	Target   uint32 `toml:"target"`   // reference node id for relative positions
}

// Synth describes one synth to create.
type Synth struct {
	ID       uint32    `toml:"id"`
	Parent   uint32    `toml:"parent"`
	Position string    `toml:"position"`
	Target   uint32    `toml:"target"`
	Controls []Control `toml:"control"`
}

// Control is a named slot with its initial value. Declaration order defines
// the synth's slot indices.
type Control struct {
	Name  string  `toml:"name"`
	Value float32 `toml:"value"`
}

// Load reads and validates a scenario file.
func Load(path string) (*File, error) {
	var f File
	if _, err := toml.DecodeFile(path, &f); err != nil {
		return nil, fmt.Errorf("scenario: %w", err)
	}
	for _, g := range f.Groups {
		if err := validatePlacement(g.Position, g.Target); err != nil {
			return nil, fmt.Errorf("scenario: group %d: %w", g.ID, err)
		}
		if g.ID == 0 {
			return nil, fmt.Errorf("scenario: group id 0 is reserved for the root")
		}
	}
	for _, s := range f.Synths {
		if err := validatePlacement(s.Position, s.Target); err != nil {
			return nil, fmt.Errorf("scenario: synth %d: %w", s.ID, err)
		}
	}
	return &f, nil
}

// ParsePosition maps a scenario position string to a node.Position. The
// empty string defaults to tail.
func ParsePosition(s string) (node.Position, error) {
	switch s {
	case "", "tail":
		return node.PositionTail, nil
	case "head":
		return node.PositionHead, nil
	case "before":
		return node.PositionBefore, nil
	case "after":
		return node.PositionAfter, nil
	case "replace":
		return node.PositionReplace, nil
	case "insert":
		return node.PositionInsert, nil
	}
	return 0, fmt.Errorf("unknown position %q", s)
}

// relative reports whether a position needs a target node.
func relative(p node.Position) bool {
	switch p {
	case node.PositionBefore, node.PositionAfter, node.PositionReplace:
		return true
	}
	return false
}

func validatePlacement(position string, target uint32) error {
	p, err := ParsePosition(position)
	if err != nil {
		return err
	}
	if relative(p) && target == 0 {
		return fmt.Errorf("position %q requires a target", position)
	}
	return nil
}
