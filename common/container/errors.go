package container

import "errors"

var (
	ErrIndexOutOfRange = errors.New("void vector index out of range")
	ErrInvalidEncoding = errors.New("invalid void vector encoding")
)
