package validator

import "errors"

// ErrValidationFailed is matched by every ValidationErrors value through errors.Is.
var ErrValidationFailed = errors.New("validation failed")
