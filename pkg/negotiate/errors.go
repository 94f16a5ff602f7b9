package negotiate

import "errors"

// ErrInvalidName is returned for an empty image name.
var ErrInvalidName = errors.New("invalid image name")
