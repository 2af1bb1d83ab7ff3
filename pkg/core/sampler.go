package core

import (
	"math/rand"
	"time"
)

// Sampler is a uniform random source for rendering. Every concurrent
// worker owns its own Sampler; a single Sampler must not be shared
// across goroutines without external locking.
type Sampler struct {
	random *rand.Rand
}

// NewSampler creates a sampler with an explicit seed, for deterministic
// tests and reproducible tile streams.
func NewSampler(seed int64) *Sampler {
	return &Sampler{random: rand.New(rand.NewSource(seed))}
}

// NewWorkerSampler creates a sampler seeded from the current time
// combined with a worker identity, so parallel workers do not share a
// random stream.
func NewWorkerSampler(workerID int) *Sampler {
	seed := time.Now().UnixNano() ^ (int64(workerID+1) * 2654435761)
	return NewSampler(seed)
}

// Uniform returns a uniform random float64 in [0, 1)
func (s *Sampler) Uniform() float64 {
	return s.random.Float64()
}

// UniformRange returns a uniform random float64 in [minVal, maxVal)
func (s *Sampler) UniformRange(minVal, maxVal float64) float64 {
	return minVal + (maxVal-minVal)*s.random.Float64()
}

// UniformVec3 returns a vector with each component uniform in [0, 1)
func (s *Sampler) UniformVec3() Vec3 {
	return Vec3{X: s.Uniform(), Y: s.Uniform(), Z: s.Uniform()}
}

// UniformVec3Range returns a vector with each component uniform in [minVal, maxVal)
func (s *Sampler) UniformVec3Range(minVal, maxVal float64) Vec3 {
	return Vec3{
		X: s.UniformRange(minVal, maxVal),
		Y: s.UniformRange(minVal, maxVal),
		Z: s.UniformRange(minVal, maxVal),
	}
}

// InUnitSphere returns a uniform random point strictly inside the unit
// sphere, by rejection sampling of the enclosing cube.
func (s *Sampler) InUnitSphere() Vec3 {
	for {
		point := s.UniformVec3Range(-1, 1)
		if point.LengthSquared() < 1 {
			return point
		}
	}
}

// UnitVector returns a uniform random direction on the unit sphere
func (s *Sampler) UnitVector() Vec3 {
	return s.InUnitSphere().Normalize()
}

// InUnitDisk returns a uniform random point strictly inside the unit
// disk in the z=0 plane, by rejection sampling of the enclosing square
func (s *Sampler) InUnitDisk() Vec3 {
	for {
		point := Vec3{X: s.UniformRange(-1, 1), Y: s.UniformRange(-1, 1)}
		if point.LengthSquared() < 1 {
			return point
		}
	}
}
