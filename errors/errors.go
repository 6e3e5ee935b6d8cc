package errors

import "errors"

// ErrFileNotFound is returned when a file is not found.
var ErrFileNotFound = errors.New("file not found")

// ErrIncorrectInput is returned when the user input is incorrect.
var ErrIncorrectInput = errors.New("incorrect input")

// ErrUnsupportedSchema is returned when the settings file declares a schema
// version this build cannot read.
var ErrUnsupportedSchema = errors.New("unsupported settings schema version")
