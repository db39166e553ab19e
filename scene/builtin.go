package scene

import (
	"fmt"
	"sort"

	"github.com/weiju/rosetta-raytracer/types"
)

// Builtin demo scenes, keyed by the name accepted by the render command.
var builtinScenes = map[string]func(frameW, frameH uint32) *Scene{
	"default":     Default,
	"two-spheres": TwoSpheres,
}

// Look up a builtin scene builder by name.
func Builtin(name string, frameW, frameH uint32) (*Scene, error) {
	builder, exists := builtinScenes[name]
	if !exists {
		return nil, fmt.Errorf("scene: unknown builtin scene %q", name)
	}
	return builder(frameW, frameH), nil
}

// List the builtin scene names in stable order.
func BuiltinNames() []string {
	names := make([]string, 0, len(builtinScenes))
	for name := range builtinScenes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// A red sphere resting on a matte floor plane, lit from the upper left.
func Default(frameW, frameH uint32) *Scene {
	sc := NewScene(frameW, frameH)

	camera := NewCamera(60.0)
	camera.Position = types.XYZ(0, 1, 3)
	camera.LookAt = types.XYZ(0, 0.5, -3)
	sc.SetCamera(camera)

	red := &Material{
		Diffuse:       types.RGB(0.9, 0.1, 0.1),
		DiffuseCoeff:  0.8,
		SpecularCoeff: 0.5,
		Hardness:      32.0,
	}
	floor := &Material{
		Diffuse:      types.RGB(0.4, 0.4, 0.45),
		DiffuseCoeff: 0.9,
		Hardness:     1.0,
	}

	sc.AddObject(NewSphere(types.XYZ(0, 0.5, -3), 1.0, red))
	sc.AddObject(NewPlane(types.XYZ(0, -0.5, 0), types.XYZ(0, 1, 0), floor))

	sc.AddLight(Light{
		Position: types.XYZ(-4, 5, 1),
		Color:    types.RGB(1, 1, 1),
	})
	// Fill light; present in the scene graph but ignored by the
	// single-light shading model.
	sc.AddLight(Light{
		Position: types.XYZ(4, 2, 0),
		Color:    types.RGB(0.3, 0.3, 0.4),
	})

	sc.Ambient = Ambient{Color: types.RGB(1, 1, 1), Coeff: 0.1}
	sc.Background = types.RGB(0.2, 0.3, 0.5)
	return sc
}

// Two shiny spheres of different sizes over a dark background.
func TwoSpheres(frameW, frameH uint32) *Scene {
	sc := NewScene(frameW, frameH)

	camera := NewCamera(60.0)
	camera.LookAt = types.XYZ(0, 0, -4)
	sc.SetCamera(camera)

	green := &Material{
		Diffuse:       types.RGB(0.1, 0.8, 0.2),
		DiffuseCoeff:  0.7,
		SpecularCoeff: 0.6,
		Hardness:      64.0,
	}
	blue := &Material{
		Diffuse:       types.RGB(0.2, 0.3, 0.9),
		DiffuseCoeff:  0.8,
		SpecularCoeff: 0.3,
		Hardness:      16.0,
	}

	sc.AddObject(NewSphere(types.XYZ(-0.8, 0, -4), 1.0, green))
	sc.AddObject(NewSphere(types.XYZ(1.2, -0.3, -3), 0.5, blue))

	sc.AddLight(Light{
		Position: types.XYZ(2, 6, 2),
		Color:    types.RGB(1, 1, 1),
	})

	sc.Ambient = Ambient{Color: types.RGB(1, 1, 1), Coeff: 0.15}
	sc.Background = types.RGB(0.05, 0.05, 0.1)
	return sc
}
