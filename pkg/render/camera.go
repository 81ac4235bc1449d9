package render

import (
	"fmt"
	"math"

	"github.com/taigrr/scanline/pkg/math3d"
)

const (
	// minDepth is the smallest camera-space depth that still projects.
	minDepth = 1e-9

	// MaxScreenCoord bounds projected pixel coordinates. Anything further
	// out is treated as a degenerate projection rather than walked.
	MaxScreenCoord = 1 << 16
)

// Camera is a pinhole camera. It is a plain value: a draw pass copies it
// and never writes back.
type Camera struct {
	// Position in world space
	Position math3d.Vec3

	// Orientation in radians: X = pitch, Y = yaw, Z = roll.
	// An all-zero rotation skips the rotation step entirely.
	Rotation math3d.Vec3

	// Projection parameters: X and Y are the principal-point offsets,
	// Z is the focal distance.
	Projection math3d.Vec3

	// Uniform screen-space scale applied after projection.
	Scale float64
}

// NewCamera creates a camera.
func NewCamera(position, rotation, projection math3d.Vec3, scale float64) Camera {
	return Camera{
		Position:   position,
		Rotation:   rotation,
		Projection: projection,
		Scale:      scale,
	}
}

// DefaultCamera looks down +Z from 500 units back with a 200 unit focal
// distance and no scaling.
func DefaultCamera() Camera {
	return NewCamera(math3d.V3(0, 0, -500), math3d.Zero3(), math3d.V3(0, 0, 200), 1)
}

// Translate moves the camera by (x, y, z) in world space.
func (c *Camera) Translate(x, y, z float64) {
	c.Position = c.Position.Translate(x, y, z)
}

// Rotate adds the given angles (in radians) to the orientation.
func (c *Camera) Rotate(deltaPitch, deltaYaw, deltaRoll float64) {
	c.Rotation = c.Rotation.Translate(deltaPitch, deltaYaw, deltaRoll)
}

// RotationMatrix returns the view rotation as a matrix. ToCameraSpace uses
// the equivalent closed form; this exists for callers that compose
// transforms.
func (c Camera) RotationMatrix() math3d.Mat4 {
	r := c.Rotation
	return math3d.RotateX(-r.X).Mul(math3d.RotateY(-r.Y)).Mul(math3d.RotateZ(-r.Z))
}

// ToCameraSpace returns p relative to the camera, with Y flipped so that
// screen rows grow downward.
func (c Camera) ToCameraSpace(p math3d.Vec3) math3d.Vec3 {
	xp := p.X - c.Position.X
	yp := -(p.Y - c.Position.Y)
	zp := p.Z - c.Position.Z

	r := c.Rotation
	if r.IsZero() {
		return math3d.V3(xp, yp, zp)
	}

	sx, cx := math.Sincos(r.X)
	sy, cy := math.Sincos(r.Y)
	sz, cz := math.Sincos(r.Z)

	// Roll, then yaw, then pitch, folded into one expression.
	rx := sz*yp + cz*xp
	ry := cz*yp - sz*xp
	rz := cy*zp + sy*rx

	return math3d.V3(
		cy*rx-sy*zp,
		sx*rz+cx*ry,
		cx*rz-sx*ry,
	)
}

// Project maps a world point to a pixel on a width×height screen and
// returns its camera-space depth. Points on the camera plane, or points
// that land absurdly far off screen, yield ErrDegenerateProjection.
func (c Camera) Project(p math3d.Vec3, width, height int) (math3d.Point2, float64, error) {
	d := c.ToCameraSpace(p)
	if math.Abs(d.Z) < minDepth || math.IsNaN(d.Z) {
		return math3d.Point2{}, 0, fmt.Errorf("%w: depth %g at %v", ErrDegenerateProjection, d.Z, p)
	}

	f := c.Projection.Z / d.Z
	bx := f*d.X + c.Projection.X
	by := f*d.Y + c.Projection.Y

	sx := math.Floor(float64(width)/2 + bx*c.Scale)
	sy := math.Floor(float64(height)/2 + by*c.Scale)
	if !finiteWithin(sx, MaxScreenCoord) || !finiteWithin(sy, MaxScreenCoord) {
		return math3d.Point2{}, 0, fmt.Errorf("%w: %v lands at (%g, %g)", ErrDegenerateProjection, p, sx, sy)
	}

	return math3d.P2(int(sx), int(sy)), d.Z, nil
}

func finiteWithin(v, limit float64) bool {
	return !math.IsNaN(v) && v >= -limit && v <= limit
}
