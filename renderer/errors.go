package renderer

import "errors"

var (
	ErrSceneNotDefined   = errors.New("renderer: no scene defined")
	ErrCameraNotDefined  = errors.New("renderer: no camera defined")
	ErrInvalidDimensions = errors.New("renderer: frame dimensions must be at least 1x1")
	ErrUnsupportedMode   = errors.New("renderer: unsupported pass mode")
	ErrTooManyFaces      = errors.New("renderer: mesh face count exceeds the 24-bit face-index encoding")
)
