package scene

import "github.com/weiju/rosetta-raytracer/types"

// A point light.
type Light struct {
	Position types.Vec3
	Color    types.Color
}
