package images

import "errors"

var (
	// ErrDegenerateGeometry reports a zero or negative width or height
	// anywhere in the computation chain.
	ErrDegenerateGeometry = errors.New("images: degenerate image geometry")
	// ErrNotAnImage reports bytes that do not decode as a supported image.
	ErrNotAnImage = errors.New("images: data is not a decodable image")
	// ErrTooLarge reports declared dimensions beyond the decode bound.
	ErrTooLarge = errors.New("images: image dimensions exceed decode bound")
)
