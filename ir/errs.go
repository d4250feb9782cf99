package ir

import (
	"errors"

	"github.com/signadot/hjson-format/format"
)

var (
	ErrImport    = errors.New("import error")
	ErrBadFormat = format.ErrBadFormat
)
