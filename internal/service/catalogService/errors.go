package catalogService

import "errors"

var ErrIncorrectPage = errors.New("page out of range")
