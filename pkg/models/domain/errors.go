package domain

import "errors"

// ErrNotFound is returned by lookup-by-id operations when the
// identifier is unknown. Reports for missing entities are not computed;
// the error travels to the caller unchanged.
var ErrNotFound = errors.New("entity not found")
