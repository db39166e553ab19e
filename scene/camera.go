package scene

import (
	"github.com/chewxy/math32"

	"github.com/weiju/rosetta-raytracer/types"
)

// The camera type controls the scene viewpoint. It maps (possibly
// fractional) pixel coordinates to primary rays through a pinhole
// projection.
type Camera struct {
	Position types.Vec3
	LookAt   types.Vec3
	Up       types.Vec3

	// Vertical field of view in degrees.
	FOV float32

	frameW float32
	frameH float32

	// View basis and view plane half extents, precomputed by Setup.
	forward types.Vec3
	right   types.Vec3
	up      types.Vec3
	halfW   float32
	halfH   float32
}

func NewCamera(fov float32) *Camera {
	return &Camera{
		Position: types.XYZ(0, 0, 0),
		LookAt:   types.XYZ(0, 0, -1),
		Up:       types.XYZ(0, 1, 0),
		FOV:      fov,
	}
}

// Precompute the view basis and view plane extents for the given frame
// dimensions. Must be called before MakeRay and again after changing
// Position, LookAt, Up or FOV.
func (c *Camera) Setup(frameW, frameH uint32) {
	c.frameW = float32(frameW)
	c.frameH = float32(frameH)

	c.forward = c.LookAt.Sub(c.Position).Normalize()
	c.right = c.forward.Cross(c.Up).Normalize()
	c.up = c.right.Cross(c.forward)

	c.halfH = math32.Tan(c.FOV * math32.Pi / 360.0)
	c.halfW = c.halfH * c.frameW / c.frameH
}

// Generate a primary ray through pixel coordinate (x, y). The top-left
// corner of the frame maps to (0, 0) and the frame center to the camera
// look-at direction.
func (c *Camera) MakeRay(x, y float32) Ray {
	ndcX := 2.0*x/c.frameW - 1.0
	ndcY := 1.0 - 2.0*y/c.frameH

	dir := c.forward.
		Add(c.right.Mul(ndcX * c.halfW)).
		Add(c.up.Mul(ndcY * c.halfH))

	return NewRay(c.Position, dir)
}
