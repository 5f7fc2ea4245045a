package interfaces

import "errors"

// ErrConflict is returned by repositories when a conditional write loses to
// an existing row. Idempotent create paths treat it as success.
var ErrConflict = errors.New("conditional write precondition failed")
