package registry

import "errors"

// ErrDuplicateID indicates an insert with an id that is already live.
var ErrDuplicateID = errors.New("registry: duplicate node id")
