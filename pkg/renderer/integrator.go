package renderer

import (
	"math"

	"github.com/jdf/go-raytracer/pkg/core"
)

// tMinEpsilon is the lower bound of the intersection interval. A small
// positive floor keeps a scattered ray from immediately re-hitting the
// surface it just left (shadow acne).
const tMinEpsilon = 0.001

// RayColor traces a ray through the scene and returns its radiance.
//
// Each bounce either escapes to the sky gradient, is absorbed, or
// scatters; scattering multiplies the running attenuation product and
// continues with the new ray. The loop form keeps stack usage flat no
// matter how large the configured depth budget is. A depth budget of
// zero returns black: exhaustion is an energy cutoff, not an error.
func (r *Renderer) RayColor(ray core.Ray, sampler *core.Sampler, depth int) core.Vec3 {
	throughput := core.NewVec3(1, 1, 1)

	for ; depth > 0; depth-- {
		hit, isHit := r.scene.World.Hit(ray, tMinEpsilon, math.Inf(1))
		if !isHit {
			return throughput.MultiplyVec(r.scene.BackgroundGradient(ray))
		}

		scatter, didScatter := hit.Material.Scatter(ray, *hit, sampler)
		if !didScatter {
			return core.Vec3{}
		}

		throughput = throughput.MultiplyVec(scatter.Attenuation)
		ray = scatter.Scattered
	}

	return core.Vec3{}
}
