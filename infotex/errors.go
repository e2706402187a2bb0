package infotex

import "errors"

var (
	ErrMissingPass      = errors.New("infotex: both a face-index and a barycentric pass are required")
	ErrEmptyPass        = errors.New("infotex: pass dimensions must be at least 1x1")
	ErrPassSizeMismatch = errors.New("infotex: face-index and barycentric passes have different dimensions")
	ErrPointOutOfRange  = errors.New("infotex: screen point outside the [0,1]x[0,1] range")
	ErrFaceIndexRange   = errors.New("infotex: face index exceeds the 24-bit encoding range")
)
