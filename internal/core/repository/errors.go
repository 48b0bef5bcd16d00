package repository

import "errors"

// ErrNotFound is returned by Find/Update/Delete methods when no row matches.
// Services translate it into the appropriate result error variant; the
// repository layer never decides HTTP semantics.
var ErrNotFound = errors.New("not found")
