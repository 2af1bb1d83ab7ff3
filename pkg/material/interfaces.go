package material

import (
	"github.com/jdf/go-raytracer/pkg/core"
)

// Material interface for surfaces that can scatter rays. Scatter
// returns false when the material absorbs the ray outright.
type Material interface {
	Scatter(rayIn core.Ray, hit HitRecord, sampler *core.Sampler) (ScatterResult, bool)
}

// ScatterResult contains the result of material scattering
type ScatterResult struct {
	Scattered   core.Ray  // The scattered ray, originating at the hit point
	Attenuation core.Vec3 // Component-wise color weight in [0,1]
}

// HitRecord contains information about a ray-object intersection
type HitRecord struct {
	Point     core.Vec3 // Point of intersection
	Normal    core.Vec3 // Unit surface normal, oriented against the incoming ray
	T         float64   // Parameter t along the ray
	FrontFace bool      // Whether the ray hit the front face
	Material  Material  // Material of the hit object
}

// SetFaceNormal sets the normal vector and determines front/back face.
// The outward normal must be unit length; the stored normal always
// points against the incident ray.
func (h *HitRecord) SetFaceNormal(ray core.Ray, outwardNormal core.Vec3) {
	h.FrontFace = ray.Direction.Dot(outwardNormal) < 0
	if h.FrontFace {
		h.Normal = outwardNormal
	} else {
		h.Normal = outwardNormal.Negate()
	}
}
