package site

import "errors"

var ErrNotFound = errors.New("portfolio not found")
