package cache

import "errors"

var ErrNotFound = errors.New("not found in cache")
