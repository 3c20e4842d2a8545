package clocktime

import "errors"

// ErrUnparsable is returned when a clock expression cannot be understood.
var ErrUnparsable = errors.New("unparsable clock time")
