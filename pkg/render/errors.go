package render

import "errors"

var (
	// ErrSizeMismatch is returned when a frame handed to Resolve does not
	// hold exactly Width*Height*4 bytes.
	ErrSizeMismatch = errors.New("frame size mismatch")

	// ErrDegenerateProjection is returned by Camera.Project when a point
	// lies on (or numerically too close to) the camera plane.
	ErrDegenerateProjection = errors.New("degenerate projection")
)
