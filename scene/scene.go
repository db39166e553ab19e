package scene

import (
	"fmt"

	"github.com/weiju/rosetta-raytracer/types"
)

// Constant background illumination applied to every visible surface.
type Ambient struct {
	Color types.Color
	Coeff float32
}

// A fully resolved scene graph. Scenes are constructed up front and are
// read-only for the duration of a render; no locking is required to
// share one between render workers.
type Scene struct {
	// Viewport dims.
	FrameW uint32
	FrameH uint32

	Camera  *Camera
	Objects []Object
	Lights  []Light

	Ambient    Ambient
	Background types.Color
}

func NewScene(frameW, frameH uint32) *Scene {
	return &Scene{
		FrameW:  frameW,
		FrameH:  frameH,
		Objects: make([]Object, 0),
		Lights:  make([]Light, 0),
	}
}

// Attach a camera to the scene.
func (s *Scene) SetCamera(camera *Camera) {
	s.Camera = camera
}

// Add an object to the scene. Objects are scanned in insertion order
// during intersection tests.
func (s *Scene) AddObject(obj Object) error {
	if obj.Material() == nil {
		return fmt.Errorf("scene: no material assigned to object")
	}
	s.Objects = append(s.Objects, obj)
	return nil
}

// Add a light to the scene. Shading only consults the first light that
// was added; additional lights are carried but do not contribute.
func (s *Scene) AddLight(light Light) {
	s.Lights = append(s.Lights, light)
}

// Check that the scene is renderable. Called before any render work is
// scheduled so that configuration errors surface immediately rather
// than mid-frame.
func (s *Scene) Validate() error {
	if s.FrameW == 0 || s.FrameH == 0 {
		return fmt.Errorf("scene: viewport dimensions must be positive, got %dx%d", s.FrameW, s.FrameH)
	}
	if s.Camera == nil {
		return fmt.Errorf("scene: no camera defined")
	}
	if len(s.Lights) == 0 {
		return fmt.Errorf("scene: no lights defined; shading requires at least one light")
	}
	return nil
}
