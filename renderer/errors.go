package renderer

import "errors"

var (
	ErrSceneNotDefined     = errors.New("renderer: no scene defined")
	ErrInvalidFrameDims    = errors.New("renderer: frame dimensions must be positive")
	ErrInvalidWorkerCount  = errors.New("renderer: worker count must be positive")
	ErrInvalidSectionCount = errors.New("renderer: sampler section count must be positive")
)
