package core

import "errors"

var (
	ErrNoData         = errors.New("no data")
	ErrLengthMismatch = errors.New("series length mismatch")
)
