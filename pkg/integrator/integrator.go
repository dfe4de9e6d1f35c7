package integrator

import (
	"github.com/df07/go-path-tracer/pkg/core"
	"github.com/df07/go-path-tracer/pkg/geometry"
)

// Integrator defines the interface for light transport algorithms.
// Implementations are shared by all render workers and must not mutate state in RayColor.
type Integrator interface {
	// RayColor computes the radiance carried back along a camera ray
	RayColor(ray core.Ray, world geometry.Shape, sampler core.Sampler) core.Vec3
}

// Background is a vertical gradient returned for rays that escape the scene
type Background struct {
	Top    core.Vec3 // Color for rays pointing straight up
	Bottom core.Vec3 // Color for rays pointing straight down
}

// DefaultBackground returns the white-to-sky-blue gradient
func DefaultBackground() Background {
	return Background{
		Top:    core.NewVec3(0.5, 0.7, 1.0),
		Bottom: core.NewVec3(1.0, 1.0, 1.0),
	}
}

// Color returns the background color seen along the ray
func (b Background) Color(ray core.Ray) core.Vec3 {
	// Normalize the ray direction to get consistent results
	unitDirection := ray.Direction.Normalize()

	// Use the y-component to create a gradient (map from -1,1 to 0,1)
	a := 0.5 * (unitDirection.Y + 1.0)

	// Linear interpolation: (1-a)*bottom + a*top
	return b.Bottom.Multiply(1.0 - a).Add(b.Top.Multiply(a))
}
