package domain

import "errors"

// ErrNotFound reports that the resolution cascade was exhausted without
// producing a usable translation. Callers match it with errors.Is; the
// wrapping error carries the word that failed.
var ErrNotFound = errors.New("not found")
