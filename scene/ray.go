package scene

import "github.com/weiju/rosetta-raytracer/types"

// Minimum hit distance along a ray. Intersections closer than this do
// not count, so rays never re-hit the surface they originate from.
const Epsilon float32 = 1e-4

// A ray with an origin and a unit direction. Rays are created once per
// (pixel, sample offset) pair and are immutable.
type Ray struct {
	Origin types.Vec3
	Dir    types.Vec3
}

// Create a ray. The direction is normalized; a zero direction yields a
// degenerate ray that intersects nothing.
func NewRay(origin, dir types.Vec3) Ray {
	return Ray{Origin: origin, Dir: dir.Normalize()}
}

// Get the point at distance t along the ray.
func (r Ray) At(t float32) types.Vec3 {
	return r.Origin.Add(r.Dir.Mul(t))
}
