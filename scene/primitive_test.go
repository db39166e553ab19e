package scene

import (
	"testing"

	"github.com/weiju/rosetta-raytracer/types"
)

var testMaterial = &Material{
	Diffuse:      types.RGB(1, 1, 1),
	DiffuseCoeff: 1.0,
	Hardness:     1.0,
}

func TestSphereIntersectBothRoots(t *testing.T) {
	sphere := NewSphere(types.XYZ(0, 0, -5), 1.0, testMaterial)
	ray := NewRay(types.XYZ(0, 0, 0), types.XYZ(0, 0, -1))

	hits := sphere.Intersect(ray)
	if len(hits) != 2 {
		t.Fatalf("expected 2 intersections; got %d", len(hits))
	}

	if hits[0].T != 4.0 || hits[1].T != 6.0 {
		t.Fatalf("expected hits at t=4 and t=6; got t=%f and t=%f", hits[0].T, hits[1].T)
	}
	if hits[0].Normal.MaxDiff(types.XYZ(0, 0, 1)) > 1e-5 {
		t.Fatalf("expected near normal (0, 0, 1); got %v", hits[0].Normal)
	}
	if hits[1].Normal.MaxDiff(types.XYZ(0, 0, -1)) > 1e-5 {
		t.Fatalf("expected far normal (0, 0, -1); got %v", hits[1].Normal)
	}
}

func TestSphereIntersectFromInside(t *testing.T) {
	sphere := NewSphere(types.XYZ(0, 0, 0), 2.0, testMaterial)
	ray := NewRay(types.XYZ(0, 0, 0), types.XYZ(0, 0, -1))

	// The root behind the origin is filtered; only the exit point
	// counts.
	hits := sphere.Intersect(ray)
	if len(hits) != 1 {
		t.Fatalf("expected 1 intersection from inside the sphere; got %d", len(hits))
	}
	if hits[0].T != 2.0 {
		t.Fatalf("expected hit at t=2; got t=%f", hits[0].T)
	}
}

func TestSphereIntersectMiss(t *testing.T) {
	sphere := NewSphere(types.XYZ(0, 0, -5), 1.0, testMaterial)
	ray := NewRay(types.XYZ(0, 0, 0), types.XYZ(0, 1, 0))

	if hits := sphere.Intersect(ray); len(hits) != 0 {
		t.Fatalf("expected no intersections; got %d", len(hits))
	}
}

func TestSphereIntersectEpsilonFilter(t *testing.T) {
	// Ray starting on the surface and leaving the sphere reports no
	// front-facing hits.
	sphere := NewSphere(types.XYZ(0, 0, -5), 1.0, testMaterial)
	ray := NewRay(types.XYZ(0, 0, -4), types.XYZ(0, 0, 1))

	if hits := sphere.Intersect(ray); len(hits) != 0 {
		t.Fatalf("expected surface-origin ray to report no hits; got %d", len(hits))
	}
}

func TestPlaneIntersect(t *testing.T) {
	plane := NewPlane(types.XYZ(0, -1, 0), types.XYZ(0, 1, 0), testMaterial)
	ray := NewRay(types.XYZ(0, 0, 0), types.XYZ(0, -1, 0))

	hits := plane.Intersect(ray)
	if len(hits) != 1 {
		t.Fatalf("expected 1 intersection; got %d", len(hits))
	}
	if hits[0].T != 1.0 {
		t.Fatalf("expected hit at t=1; got t=%f", hits[0].T)
	}
	// Normal faces the ray origin.
	if hits[0].Normal.MaxDiff(types.XYZ(0, 1, 0)) > 1e-6 {
		t.Fatalf("expected normal (0, 1, 0); got %v", hits[0].Normal)
	}
}

func TestPlaneIntersectParallelRay(t *testing.T) {
	plane := NewPlane(types.XYZ(0, -1, 0), types.XYZ(0, 1, 0), testMaterial)
	ray := NewRay(types.XYZ(0, 0, 0), types.XYZ(1, 0, 0))

	if hits := plane.Intersect(ray); len(hits) != 0 {
		t.Fatalf("expected parallel ray to miss; got %d hits", len(hits))
	}
}

func TestRayAt(t *testing.T) {
	ray := NewRay(types.XYZ(1, 2, 3), types.XYZ(0, 0, -2))

	// Direction is normalized at construction.
	if got := ray.At(4.0); got.MaxDiff(types.XYZ(1, 2, -1)) > 1e-6 {
		t.Fatalf("expected point (1, 2, -1); got %v", got)
	}
}
