package logger

import "errors"

var (
	// ErrUnknownLevel is returned for a level zerolog does not recognise.
	ErrUnknownLevel = errors.New("unknown log level")
	// ErrUnknownFormat is returned for a format other than json, console or
	// empty.
	ErrUnknownFormat = errors.New("unknown log format")
)
