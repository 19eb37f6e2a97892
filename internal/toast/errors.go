package toast

import "errors"

// Parse errors for container and cell options.
var (
	ErrUnknownAlignment = errors.New("unknown alignment")
	ErrUnknownOverlap   = errors.New("unknown overlap mode")
	ErrUnknownBorder    = errors.New("unknown border")
)
