package geometry

import (
	"math"

	"github.com/jdf/go-raytracer/pkg/core"
	"github.com/jdf/go-raytracer/pkg/material"
)

// Sphere represents a sphere shape
type Sphere struct {
	Center   core.Vec3
	Radius   float64
	Material material.Material
}

// NewSphere creates a new sphere
func NewSphere(center core.Vec3, radius float64, mat material.Material) *Sphere {
	return &Sphere{Center: center, Radius: radius, Material: mat}
}

// Hit tests if a ray intersects with the sphere
func (s *Sphere) Hit(ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool) {
	// Vector from sphere center to ray origin
	oc := ray.Origin.Subtract(s.Center)

	// Quadratic equation coefficients using the half-b form:
	// a*t² + 2*halfB*t + c = 0
	a := ray.Direction.LengthSquared()
	halfB := ray.Direction.Dot(oc)
	c := oc.LengthSquared() - s.Radius*s.Radius

	// Tangent rays (discriminant == 0) count as a miss, avoiding
	// degenerate normals at grazing contact
	discriminant := halfB*halfB - a*c
	if discriminant <= 0 {
		return nil, false
	}

	// Prefer the nearer root; fall back to the farther one when the
	// nearer lies outside the valid interval (ray origin inside sphere)
	sqrtD := math.Sqrt(discriminant)
	root := (-halfB - sqrtD) / a
	if root < tMin || root > tMax {
		root = (-halfB + sqrtD) / a
		if root < tMin || root > tMax {
			return nil, false
		}
	}

	hit := &material.HitRecord{
		T:        root,
		Point:    ray.At(root),
		Material: s.Material,
	}

	// Outward normal is unit length by construction
	outwardNormal := hit.Point.Subtract(s.Center).Multiply(1.0 / s.Radius)
	hit.SetFaceNormal(ray, outwardNormal)

	return hit, true
}
