package scene

import "github.com/weiju/rosetta-raytracer/types"

// Defines a surface material.
type Material struct {
	// Diffuse color.
	Diffuse types.Color

	// Diffuse reflection coefficient.
	DiffuseCoeff float32

	// Specular reflection coefficient.
	SpecularCoeff float32

	// Specular hardness exponent. Larger values concentrate the
	// highlight.
	Hardness float32
}
