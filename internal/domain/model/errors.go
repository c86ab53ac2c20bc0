package model

import "errors"

// ErrInvalidEnumIndex indicates an index outside a closed enumeration.
// It signals a programming error, not a recoverable condition.
var ErrInvalidEnumIndex = errors.New("enumeration index out of range")
