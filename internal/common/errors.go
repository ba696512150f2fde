package common

import "errors"

// ErrInvalidArgument is wrapped by every argument-validation failure in the
// simulation packages, so callers can classify them with errors.Is.
var ErrInvalidArgument = errors.New("invalid argument")
