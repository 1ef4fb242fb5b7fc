package config

import "errors"

// ErrInvalidConfig is returned when merged settings cannot be used.
var ErrInvalidConfig = errors.New("invalid configuration")
