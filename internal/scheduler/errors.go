package scheduler

import "errors"

// ErrInvalidTime signals a trigger time that is not strictly in the future
// relative to current UTC time. No job is created.
var ErrInvalidTime = errors.New("trigger time must be in the future")
