// Package camera maps normalized image-plane coordinates to world-space
// rays. Two variants share one construction contract: a pinhole camera
// with no depth of field, and a thin-lens camera that samples a finite
// aperture for depth-of-field blur.
package camera

import (
	"fmt"
	"math"

	"github.com/jdf/go-raytracer/pkg/core"
)

// Camera generates rays for normalized viewport coordinates (u, v) in
// [0, 1], with (0, 0) at the top-left corner of the image. The sampler
// is used only by lens-sampling variants; pinhole cameras ignore it.
type Camera interface {
	ShootRayAt(u, v float64, sampler *core.Sampler) core.Ray
}

// Config holds the human-facing camera parameters shared by all variants
type Config struct {
	Origin      core.Vec3 // Eye position
	Target      core.Vec3 // Look-at point
	Up          core.Vec3 // Up hint, need not be orthogonal to the view direction
	VerticalFov float64   // Vertical field of view in radians, in (0, π)
	AspectRatio float64   // Width / height, > 0
	Aperture    float64   // Lens diameter, ≥ 0 (0 = pinhole behavior)
	FocalLength float64   // Distance to the focal plane, > 0
}

// Validate checks the configuration for degenerate values so that bad
// setups fail at construction rather than mid-render.
func (c Config) Validate() error {
	if c.VerticalFov <= 0 || c.VerticalFov >= math.Pi {
		return fmt.Errorf("camera: vertical fov %v outside (0, π)", c.VerticalFov)
	}
	if c.AspectRatio <= 0 {
		return fmt.Errorf("camera: aspect ratio %v must be positive", c.AspectRatio)
	}
	if c.Aperture < 0 {
		return fmt.Errorf("camera: aperture %v must not be negative", c.Aperture)
	}
	if c.FocalLength <= 0 {
		return fmt.Errorf("camera: focal length %v must be positive", c.FocalLength)
	}
	forward := c.Target.Subtract(c.Origin)
	if forward.NearZero() {
		return fmt.Errorf("camera: target coincides with origin")
	}
	if forward.Cross(c.Up).NearZero() {
		return fmt.Errorf("camera: up vector is parallel to the view direction")
	}
	return nil
}

// viewport holds the derived world-space viewport basis shared by both
// camera variants: the orthonormal (u, v, w) frame and the viewport
// span vectors scaled to the focal plane.
type viewport struct {
	u, v, w    core.Vec3
	horizontal core.Vec3
	vertical   core.Vec3
	topLeft    core.Vec3
}

func newViewport(cfg Config) viewport {
	halfHeight := math.Tan(cfg.VerticalFov / 2)
	viewportHeight := 2.0 * halfHeight
	viewportWidth := cfg.AspectRatio * viewportHeight

	w := cfg.Target.Subtract(cfg.Origin).Normalize()
	u := w.Cross(cfg.Up).Normalize()
	v := w.Cross(u)

	horizontal := u.Multiply(cfg.FocalLength * viewportWidth)
	vertical := v.Multiply(cfg.FocalLength * viewportHeight)
	topLeft := cfg.Origin.
		Add(w.Multiply(cfg.FocalLength)).
		Subtract(horizontal.Multiply(0.5)).
		Subtract(vertical.Multiply(0.5))

	return viewport{u: u, v: v, w: w, horizontal: horizontal, vertical: vertical, topLeft: topLeft}
}

// pointAt returns the world-space viewport point for (u, v) in [0, 1]
func (vp viewport) pointAt(u, v float64) core.Vec3 {
	return vp.topLeft.Add(vp.horizontal.Multiply(u)).Add(vp.vertical.Multiply(v))
}

// Pinhole is a camera with an infinitesimal aperture: every ray leaves
// the fixed eye point, so the whole scene is in focus.
type Pinhole struct {
	origin   core.Vec3
	viewport viewport
}

// NewPinhole creates a pinhole camera from the shared configuration.
// The aperture field is ignored.
func NewPinhole(cfg Config) (*Pinhole, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Pinhole{origin: cfg.Origin, viewport: newViewport(cfg)}, nil
}

// ShootRayAt returns the ray from the eye through the viewport point
func (c *Pinhole) ShootRayAt(u, v float64, _ *core.Sampler) core.Ray {
	target := c.viewport.pointAt(u, v)
	return core.NewRay(c.origin, target.Subtract(c.origin))
}

// ThinLens is a camera with a finite aperture. Ray origins are jittered
// across a lens disk while directions still aim at the unperturbed
// viewport point, blurring geometry away from the focal plane.
type ThinLens struct {
	origin     core.Vec3
	viewport   viewport
	lensRadius float64
}

// NewThinLens creates a thin-lens camera from the shared configuration
func NewThinLens(cfg Config) (*ThinLens, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &ThinLens{
		origin:     cfg.Origin,
		viewport:   newViewport(cfg),
		lensRadius: cfg.Aperture / 2,
	}, nil
}

// ShootRayAt returns a ray from a random lens point toward the
// viewport point for (u, v)
func (c *ThinLens) ShootRayAt(u, v float64, sampler *core.Sampler) core.Ray {
	target := c.viewport.pointAt(u, v)

	lensPoint := sampler.InUnitDisk().Multiply(c.lensRadius)
	offset := c.viewport.u.Multiply(lensPoint.X).Add(c.viewport.v.Multiply(lensPoint.Y))

	origin := c.origin.Add(offset)
	return core.NewRay(origin, target.Subtract(origin))
}
