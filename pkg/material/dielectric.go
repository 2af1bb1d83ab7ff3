package material

import (
	"math"

	"github.com/jdf/go-raytracer/pkg/core"
)

// Dielectric represents a transparent material like glass that can both
// reflect and refract
type Dielectric struct {
	RefractiveIndex float64 // Index of refraction (e.g. 1.5 for glass)
}

// NewDielectric creates a new dielectric material
func NewDielectric(refractiveIndex float64) *Dielectric {
	return &Dielectric{RefractiveIndex: refractiveIndex}
}

// Scatter implements the Material interface for dielectric scattering.
// The ray is always either reflected or refracted, never absorbed, and
// clear glass does not tint the path.
func (d *Dielectric) Scatter(rayIn core.Ray, hit HitRecord, sampler *core.Sampler) (ScatterResult, bool) {
	attenuation := core.NewVec3(1.0, 1.0, 1.0)

	// Entering the medium divides by the index, exiting multiplies
	var eta float64
	if hit.FrontFace {
		eta = 1.0 / d.RefractiveIndex
	} else {
		eta = d.RefractiveIndex
	}

	unitDirection := rayIn.Direction.Normalize()
	cosTheta := math.Min(-unitDirection.Dot(hit.Normal), 1.0)
	sinTheta := math.Sqrt(1.0 - cosTheta*cosTheta)

	// Total internal reflection: Snell's law has no solution
	mustReflect := eta*sinTheta > 1.0

	var direction core.Vec3
	if mustReflect || Reflectance(cosTheta, eta) > sampler.Uniform() {
		direction = unitDirection.Reflect(hit.Normal)
	} else {
		direction = unitDirection.Refract(hit.Normal, eta)
	}

	return ScatterResult{
		Scattered:   core.NewRay(hit.Point, direction),
		Attenuation: attenuation,
	}, true
}

// Reflectance calculates the Fresnel reflectance using Schlick's approximation
func Reflectance(cosine, eta float64) float64 {
	r0 := (1 - eta) / (1 + eta)
	r0 = r0 * r0
	return r0 + (1-r0)*math.Pow(1-cosine, 5)
}
