package scene

import (
	"github.com/chewxy/math32"

	"github.com/weiju/rosetta-raytracer/types"
)

// An intersection between a ray and an object surface.
type Intersection struct {
	// Hit distance along the ray. Always >= Epsilon.
	T float32

	// Unit surface normal at the hit point.
	Normal types.Vec3
}

// Scene geometry is polymorphic over the intersection capability.
// Intersect reports the set of front-facing intersections with a ray in
// arbitrary order; hits closer than Epsilon are never reported.
type Object interface {
	Intersect(Ray) []Intersection
	Material() *Material
}

type Sphere struct {
	Center types.Vec3
	Radius float32

	material *Material
}

func NewSphere(center types.Vec3, radius float32, material *Material) *Sphere {
	return &Sphere{
		Center:   center,
		Radius:   radius,
		material: material,
	}
}

func (s *Sphere) Material() *Material {
	return s.material
}

// Solve the ray/sphere quadratic and report every root at or beyond
// Epsilon. Ray directions are unit length so the quadratic coefficient
// of t² is 1.
func (s *Sphere) Intersect(r Ray) []Intersection {
	oc := r.Origin.Sub(s.Center)
	halfB := oc.Dot(r.Dir)
	c := oc.Dot(oc) - s.Radius*s.Radius

	discriminant := halfB*halfB - c
	if discriminant < 0 {
		return nil
	}

	sqrtD := math32.Sqrt(discriminant)
	var hits []Intersection
	for _, t := range [2]float32{-halfB - sqrtD, -halfB + sqrtD} {
		if t < Epsilon {
			continue
		}
		normal := r.At(t).Sub(s.Center).Mul(1.0 / s.Radius)
		hits = append(hits, Intersection{T: t, Normal: normal})
	}
	return hits
}

// An infinite plane through Point with the given surface normal.
type Plane struct {
	Point  types.Vec3
	Normal types.Vec3

	material *Material
}

func NewPlane(point, normal types.Vec3, material *Material) *Plane {
	return &Plane{
		Point:    point,
		Normal:   normal.Normalize(),
		material: material,
	}
}

func (p *Plane) Material() *Material {
	return p.material
}

func (p *Plane) Intersect(r Ray) []Intersection {
	denom := p.Normal.Dot(r.Dir)
	if math32.Abs(denom) < Epsilon {
		return nil
	}

	t := p.Point.Sub(r.Origin).Dot(p.Normal) / denom
	if t < Epsilon {
		return nil
	}

	// Report the normal facing the ray origin.
	normal := p.Normal
	if denom > 0 {
		normal = normal.Mul(-1.0)
	}
	return []Intersection{{T: t, Normal: normal}}
}
