package config

import "errors"

var (
	// ErrNilConfig is returned when a nil pointer is passed to Load or Parse.
	ErrNilConfig = errors.New("config: nil config pointer")
	// ErrParse is returned when environment variables cannot be parsed into the config.
	ErrParse = errors.New("config: failed to parse environment")
)
