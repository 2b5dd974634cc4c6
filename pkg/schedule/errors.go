package schedule

import "errors"

// ErrHeadingFormat indicates a column heading with fewer than three tokens.
var ErrHeadingFormat = errors.New("malformed column heading")

// ErrGridShape indicates a grid whose rows are not all the same length.
var ErrGridShape = errors.New("grid is not rectangular")

// ErrExtension indicates an input file with an unsupported extension.
var ErrExtension = errors.New("unsupported file extension")

// ErrTimeFormat indicates a time-of-day label that could not be parsed.
var ErrTimeFormat = errors.New("invalid time label")
