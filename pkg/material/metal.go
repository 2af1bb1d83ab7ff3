package material

import (
	"github.com/jdf/go-raytracer/pkg/core"
)

// Metal represents a metallic material with specular reflection
type Metal struct {
	Albedo core.Vec3 // Metal color
	Fuzz   float64   // 0.0 = perfect mirror, 1.0 = very fuzzy
}

// NewMetal creates a new metal material. Fuzz is clamped to [0, 1].
func NewMetal(albedo core.Vec3, fuzz float64) *Metal {
	return &Metal{Albedo: albedo, Fuzz: max(0, min(1, fuzz))}
}

// Scatter implements the Material interface for metal scattering.
// Grazing or degenerate reflections that would travel into the surface
// are absorbed.
func (m *Metal) Scatter(rayIn core.Ray, hit HitRecord, sampler *core.Sampler) (ScatterResult, bool) {
	reflected := rayIn.Direction.Normalize().Reflect(hit.Normal)

	if m.Fuzz > 0 {
		reflected = reflected.Add(sampler.InUnitSphere().Multiply(m.Fuzz))
	}

	scattered := core.NewRay(hit.Point, reflected)
	scatters := scattered.Direction.Dot(hit.Normal) > 0

	return ScatterResult{
		Scattered:   scattered,
		Attenuation: m.Albedo,
	}, scatters
}
