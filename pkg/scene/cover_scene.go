package scene

import (
	"math"

	"github.com/jdf/go-raytracer/pkg/camera"
	"github.com/jdf/go-raytracer/pkg/core"
	"github.com/jdf/go-raytracer/pkg/geometry"
	"github.com/jdf/go-raytracer/pkg/material"
)

// NewCoverScene creates a field of small randomly placed and randomly
// textured spheres around three large feature spheres, rendered through
// a thin-lens camera for depth of field. The sampler drives sphere
// placement, so a seeded sampler reproduces the same layout.
func NewCoverScene(aspectRatio float64, sampler *core.Sampler) (*Scene, error) {
	cam, err := camera.NewThinLens(camera.Config{
		Origin:      core.NewVec3(13, 2, 3),
		Target:      core.NewVec3(0, 0, 0),
		Up:          core.NewVec3(0, 1, 0),
		VerticalFov: 20 * math.Pi / 180,
		AspectRatio: aspectRatio,
		Aperture:    0.1,
		FocalLength: 10.0,
	})
	if err != nil {
		return nil, err
	}

	world := geometry.NewWorld(
		geometry.NewSphere(core.NewVec3(0, -1000, 0), 1000,
			material.NewLambertian(core.NewVec3(0.5, 0.5, 0.5))),
	)

	for a := -11; a < 11; a++ {
		for b := -11; b < 11; b++ {
			center := core.NewVec3(
				float64(a)+0.9*sampler.Uniform(),
				0.2,
				float64(b)+0.9*sampler.Uniform(),
			)
			if center.Subtract(core.NewVec3(4, 0.2, 0)).Length() <= 0.9 {
				continue
			}

			var mat material.Material
			switch choice := sampler.Uniform(); {
			case choice < 0.8:
				albedo := sampler.UniformVec3().MultiplyVec(sampler.UniformVec3())
				mat = material.NewLambertian(albedo)
			case choice < 0.95:
				albedo := sampler.UniformVec3Range(0.5, 1)
				mat = material.NewMetal(albedo, sampler.UniformRange(0, 0.5))
			default:
				mat = material.NewDielectric(1.5)
			}
			world.Add(geometry.NewSphere(center, 0.2, mat))
		}
	}

	world.Add(
		geometry.NewSphere(core.NewVec3(0, 1, 0), 1.0, material.NewDielectric(1.5)),
		geometry.NewSphere(core.NewVec3(-4, 1, 0), 1.0,
			material.NewLambertian(core.NewVec3(0.4, 0.2, 0.1))),
		geometry.NewSphere(core.NewVec3(4, 1, 0), 1.0,
			material.NewMetal(core.NewVec3(0.7, 0.6, 0.5), 0.0)),
	)

	return &Scene{
		Camera:      cam,
		World:       world,
		TopColor:    core.NewVec3(0.5, 0.7, 1.0),
		BottomColor: core.NewVec3(1.0, 1.0, 1.0),
	}, nil
}
