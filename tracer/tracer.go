package tracer

import (
	"github.com/chewxy/math32"

	"github.com/weiju/rosetta-raytracer/scene"
	"github.com/weiju/rosetta-raytracer/types"
)

// Find the nearest front-facing intersection between the ray and the
// scene geometry. Every object is scanned in scene order; ties between
// equal hit distances resolve to the object encountered first.
func FindClosest(sc *scene.Scene, r scene.Ray) (scene.Object, scene.Intersection, bool) {
	var closestObj scene.Object
	var closest scene.Intersection
	found := false

	for _, obj := range sc.Objects {
		for _, isect := range obj.Intersect(r) {
			if !found || isect.T < closest.T {
				found = true
				closest = isect
				closestObj = obj
			}
		}
	}

	return closestObj, closest, found
}

// Trace a primary ray to a color. Rays that miss every object map to
// the scene background color. Pure function of (scene, ray).
func TraceRay(sc *scene.Scene, r scene.Ray) types.Color {
	obj, isect, found := FindClosest(sc, r)
	if !found {
		return sc.Background
	}
	return Illuminate(sc, r, obj, isect)
}

// Compute the diffuse + ambient + Phong-specular illumination at a hit
// point. Only the first light in the scene contributes; no shadow rays
// are cast, so the light reaches every visible surface.
func Illuminate(sc *scene.Scene, r scene.Ray, obj scene.Object, isect scene.Intersection) types.Color {
	mat := obj.Material()
	light := sc.Lights[0]

	point := r.At(isect.T)
	lightVec := light.Position.Sub(point).Normalize()

	// Back faces receive no direct light.
	lDotN := math32.Max(0.0, isect.Normal.Dot(lightVec))
	diffuse := mat.Diffuse.MulColor(light.Color).Scale(mat.DiffuseCoeff * lDotN)

	ambient := sc.Ambient.Color.MulColor(mat.Diffuse).Scale(sc.Ambient.Coeff * mat.DiffuseCoeff)

	// Reflection vector: (N - L) * 2(L·N).
	reflect := isect.Normal.Sub(lightVec).Mul(2.0 * lightVec.Dot(isect.Normal))
	view := r.Origin.Sub(point).Normalize()
	rDotV := math32.Max(0.0, reflect.Dot(view))
	specular := light.Color.Scale(mat.SpecularCoeff * math32.Pow(rDotV, mat.Hardness))

	return diffuse.Add(ambient).Add(specular)
}
