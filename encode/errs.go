package encode

import "errors"

// ErrWrite wraps errors returned by the output sink.
var ErrWrite = errors.New("write error")
