package material

import (
	"github.com/jdf/go-raytracer/pkg/core"
)

// Lambertian represents a perfectly diffuse material
type Lambertian struct {
	Albedo core.Vec3 // Base color/reflectance
}

// NewLambertian creates a new lambertian material
func NewLambertian(albedo core.Vec3) *Lambertian {
	return &Lambertian{Albedo: albedo}
}

// Scatter implements the Material interface for lambertian scattering.
// A lambertian surface never absorbs the ray.
func (l *Lambertian) Scatter(rayIn core.Ray, hit HitRecord, sampler *core.Sampler) (ScatterResult, bool) {
	direction := hit.Normal.Add(sampler.UnitVector())

	// The random unit vector can nearly cancel the normal, leaving a
	// degenerate direction; fall back to the bare normal
	if direction.NearZero() {
		direction = hit.Normal
	}

	return ScatterResult{
		Scattered:   core.NewRay(hit.Point, direction),
		Attenuation: l.Albedo,
	}, true
}
