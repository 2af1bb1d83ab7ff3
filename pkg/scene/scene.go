package scene

import (
	"github.com/jdf/go-raytracer/pkg/camera"
	"github.com/jdf/go-raytracer/pkg/core"
	"github.com/jdf/go-raytracer/pkg/geometry"
)

// Scene owns everything a render needs: the camera, the world of
// hittable objects, and the sky gradient used as environment lighting.
// After construction a scene is read-only and safe to share across
// render workers.
type Scene struct {
	Camera      camera.Camera
	World       *geometry.World
	TopColor    core.Vec3 // Sky color where the ray direction points straight up
	BottomColor core.Vec3 // Sky color where the ray direction points straight down
}

// BackgroundGradient returns the sky color for a ray that escaped the
// scene: a linear blend between the bottom and top colors driven by the
// vertical component of the ray direction, remapped from [-1,1] to [0,1].
func (s *Scene) BackgroundGradient(ray core.Ray) core.Vec3 {
	unitDirection := ray.Direction.Normalize()
	t := 0.5 * (unitDirection.Y + 1.0)
	return core.Lerp(s.BottomColor, s.TopColor, t)
}
