package geometry

import (
	"github.com/jdf/go-raytracer/pkg/core"
	"github.com/jdf/go-raytracer/pkg/material"
)

// World aggregates hittable objects and finds the globally nearest hit
// by linear scan. It implements Hittable itself.
type World struct {
	Objects []Hittable
}

// NewWorld creates a world containing the given objects
func NewWorld(objects ...Hittable) *World {
	return &World{Objects: objects}
}

// Add appends objects to the world
func (w *World) Add(objects ...Hittable) {
	w.Objects = append(w.Objects, objects...)
}

// Hit returns the nearest intersection across all objects. The upper
// bound shrinks as closer hits are found, so the result is the global
// nearest hit rather than the first one found.
func (w *World) Hit(ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool) {
	var closest *material.HitRecord
	tNearest := tMax

	for _, object := range w.Objects {
		if hit, isHit := object.Hit(ray, tMin, tNearest); isHit {
			closest = hit
			tNearest = hit.T
		}
	}

	return closest, closest != nil
}
