package geometry

import (
	"math"

	"github.com/df07/go-path-tracer/pkg/core"
	"github.com/df07/go-path-tracer/pkg/material"
)

// Sphere represents a sphere shape, optionally moving linearly during the shutter interval
type Sphere struct {
	Center   core.Ray // Center at time 0 plus displacement reached at time 1
	Radius   float64  // Negative radius flips the normals (hollow shells)
	Material material.Material
}

// NewSphere creates a new stationary sphere
func NewSphere(center core.Vec3, radius float64, material material.Material) *Sphere {
	return &Sphere{
		Center:   core.NewRay(center, core.NewVec3(0, 0, 0)),
		Radius:   radius,
		Material: material,
	}
}

// NewMovingSphere creates a sphere whose center moves from center1 at time 0 to center2 at time 1
func NewMovingSphere(center1, center2 core.Vec3, radius float64, material material.Material) *Sphere {
	return &Sphere{
		Center:   core.NewRay(center1, center2.Subtract(center1)),
		Radius:   radius,
		Material: material,
	}
}

// IsMoving reports whether the sphere changes position over the shutter interval
func (s *Sphere) IsMoving() bool {
	return !s.Center.Direction.Equals(core.NewVec3(0, 0, 0))
}

// Hit tests if a ray intersects with the sphere
func (s *Sphere) Hit(ray core.Ray, rayT core.Interval) (*material.HitRecord, bool) {
	center := s.Center.At(ray.Time)

	// Vector from sphere center to ray origin
	oc := ray.Origin.Subtract(center)

	// Quadratic equation coefficients: at² + 2·halfB·t + c = 0
	a := ray.Direction.LengthSquared()
	halfB := oc.Dot(ray.Direction)
	c := oc.LengthSquared() - s.Radius*s.Radius

	discriminant := halfB*halfB - a*c
	if discriminant < 0 {
		return nil, false
	}

	sqrtD := math.Sqrt(discriminant)

	// Try the closer intersection point first.
	// A zero-length direction yields NaN or Inf here, which no interval surrounds.
	root := (-halfB - sqrtD) / a
	if !rayT.Surrounds(root) {
		// Try the farther intersection point
		root = (-halfB + sqrtD) / a
		if !rayT.Surrounds(root) {
			return nil, false
		}
	}

	hitRecord := &material.HitRecord{
		T:        root,
		Point:    ray.At(root),
		Material: s.Material,
	}

	// Calculate outward normal (from center to hit point)
	outwardNormal := hitRecord.Point.Subtract(center).Divide(s.Radius)
	hitRecord.SetFaceNormal(ray, outwardNormal)

	return hitRecord, true
}
