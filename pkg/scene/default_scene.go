package scene

import (
	"math"

	"github.com/jdf/go-raytracer/pkg/camera"
	"github.com/jdf/go-raytracer/pkg/core"
	"github.com/jdf/go-raytracer/pkg/geometry"
	"github.com/jdf/go-raytracer/pkg/material"
)

// NewDefaultScene creates the built-in demo scene: a diffuse ground
// sphere, a diffuse center sphere, a metal sphere on the right, and a
// hollow glass sphere on the left, lit only by the sky gradient.
func NewDefaultScene(aspectRatio float64) (*Scene, error) {
	cam, err := camera.NewPinhole(camera.Config{
		Origin:      core.NewVec3(-2, 2, 1),
		Target:      core.NewVec3(0, 0, -1),
		Up:          core.NewVec3(0, 1, 0),
		VerticalFov: 20 * math.Pi / 180,
		AspectRatio: aspectRatio,
		FocalLength: 1.0,
	})
	if err != nil {
		return nil, err
	}

	ground := material.NewLambertian(core.NewVec3(0.8, 0.8, 0.0))
	center := material.NewLambertian(core.NewVec3(0.1, 0.2, 0.5))
	glass := material.NewDielectric(1.5)
	gold := material.NewMetal(core.NewVec3(0.8, 0.6, 0.2), 0.0)

	world := geometry.NewWorld(
		geometry.NewSphere(core.NewVec3(0, -100.5, -1), 100, ground),
		geometry.NewSphere(core.NewVec3(0, 0, -1), 0.5, center),
		geometry.NewSphere(core.NewVec3(1, 0, -1), 0.5, gold),
		// Glass sphere with a negative-radius inner shell: the flipped
		// normals turn the pair into a hollow bubble
		geometry.NewSphere(core.NewVec3(-1, 0, -1), 0.5, glass),
		geometry.NewSphere(core.NewVec3(-1, 0, -1), -0.45, glass),
	)

	return &Scene{
		Camera:      cam,
		World:       world,
		TopColor:    core.NewVec3(0.5, 0.7, 1.0),
		BottomColor: core.NewVec3(1.0, 1.0, 1.0),
	}, nil
}
