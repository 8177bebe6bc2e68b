package admin

import "errors"

var (
	ErrInvalidIndex = errors.New("reorder index out of range")
	ErrInvalidMedia = errors.New("unsupported or oversized media file")
)
