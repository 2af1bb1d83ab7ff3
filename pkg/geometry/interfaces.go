package geometry

import (
	"github.com/jdf/go-raytracer/pkg/core"
	"github.com/jdf/go-raytracer/pkg/material"
)

// Hittable interface for objects that can be hit by rays. Hit returns
// the nearest intersection with t in (tMin, tMax), or false if the ray
// misses the object within that interval.
type Hittable interface {
	Hit(ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool)
}
