package catalogApi

import "errors"

var (
	ErrNotFound  = errors.New("not found")
	ErrBadStatus = errors.New("unexpected response status")
)
