package emap

import "errors"

// ErrFull indicates that an operation needed a free slot but every slot is
// occupied. The map is left unmodified when it is returned.
var ErrFull = errors.New("emap: map capacity is exhausted")
