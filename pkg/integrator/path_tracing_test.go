package integrator

import (
	"math"
	"testing"

	"github.com/df07/go-path-tracer/pkg/core"
	"github.com/df07/go-path-tracer/pkg/geometry"
	"github.com/df07/go-path-tracer/pkg/material"
)

// MockMaterial implements material.Material for testing
type MockMaterial struct {
	scatterFn func(rayIn core.Ray, hit material.HitRecord, sampler core.Sampler) (material.ScatterResult, bool)
}

func (m MockMaterial) Scatter(rayIn core.Ray, hit material.HitRecord, sampler core.Sampler) (material.ScatterResult, bool) {
	return m.scatterFn(rayIn, hit, sampler)
}

// MockShape implements geometry.Shape for testing
type MockShape struct {
	hitFn func(ray core.Ray, rayT core.Interval) (*material.HitRecord, bool)
}

func (m MockShape) Hit(ray core.Ray, rayT core.Interval) (*material.HitRecord, bool) {
	return m.hitFn(ray, rayT)
}

func vecClose(a, b core.Vec3, tolerance float64) bool {
	return a.Subtract(b).Length() <= tolerance
}

func TestBackground_Extremes(t *testing.T) {
	pt := NewPathTracingIntegrator(10, DefaultBackground())
	empty := geometry.NewHittableList()
	sampler := core.NewSeededSampler(42)

	up := pt.RayColor(core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 3, 0)), empty, sampler)
	if !up.Equals(core.NewVec3(0.5, 0.7, 1.0)) {
		t.Errorf("Expected sky blue (0.5, 0.7, 1.0) looking up, got %v", up)
	}

	down := pt.RayColor(core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, -2, 0)), empty, sampler)
	if !down.Equals(core.NewVec3(1, 1, 1)) {
		t.Errorf("Expected white looking down, got %v", down)
	}

	horizon := pt.RayColor(core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(1, 0, 0)), empty, sampler)
	if !vecClose(horizon, core.NewVec3(0.75, 0.85, 1.0), 1e-12) {
		t.Errorf("Expected halfway blend at the horizon, got %v", horizon)
	}
}

func TestPathTracingDepthTermination(t *testing.T) {
	// Mirror that always bounces straight back into itself
	mirror := MockMaterial{scatterFn: func(rayIn core.Ray, hit material.HitRecord, sampler core.Sampler) (material.ScatterResult, bool) {
		return material.ScatterResult{
			Scattered:   rayIn,
			Attenuation: core.NewVec3(1, 1, 1),
		}, true
	}}
	hits := 0
	world := MockShape{hitFn: func(ray core.Ray, rayT core.Interval) (*material.HitRecord, bool) {
		hits++
		return &material.HitRecord{T: 1, Material: mirror}, true
	}}
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))

	tests := []struct {
		name     string
		maxDepth int
	}{
		{"depth 0", 0},
		{"depth 1", 1},
		{"depth 50", 50},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hits = 0
			pt := NewPathTracingIntegrator(tt.maxDepth, DefaultBackground())
			color := pt.RayColor(ray, world, core.NewSeededSampler(1))
			if !color.Equals(core.Vec3{}) {
				t.Errorf("Expected black once depth is exhausted, got %v", color)
			}
			if hits != tt.maxDepth {
				t.Errorf("Expected %d intersection tests, got %d", tt.maxDepth, hits)
			}
		})
	}
}

func TestPathTracingAbsorption(t *testing.T) {
	world := MockShape{hitFn: func(ray core.Ray, rayT core.Interval) (*material.HitRecord, bool) {
		return &material.HitRecord{T: 1, Material: material.Nothing{}}, true
	}}
	pt := NewPathTracingIntegrator(10, DefaultBackground())

	color := pt.RayColor(core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1)), world, core.NewSeededSampler(1))
	if !color.Equals(core.Vec3{}) {
		t.Errorf("Absorbed ray should be black, got %v", color)
	}
}

func TestPathTracingAttenuationChain(t *testing.T) {
	// First hit scatters straight up with attenuation (0.5, 0.25, 1); the scattered ray escapes
	tint := MockMaterial{scatterFn: func(rayIn core.Ray, hit material.HitRecord, sampler core.Sampler) (material.ScatterResult, bool) {
		return material.ScatterResult{
			Scattered:   core.NewRay(hit.Point, core.NewVec3(0, 1, 0)),
			Attenuation: core.NewVec3(0.5, 0.25, 1),
		}, true
	}}
	world := MockShape{hitFn: func(ray core.Ray, rayT core.Interval) (*material.HitRecord, bool) {
		if rayT.Min != ShadowAcneEpsilon || !math.IsInf(rayT.Max, 1) {
			t.Errorf("Unexpected search range [%f, %f]", rayT.Min, rayT.Max)
		}
		if ray.Direction.Y > 0 {
			return nil, false
		}
		return &material.HitRecord{T: 1, Point: ray.At(1), Material: tint}, true
	}}

	pt := NewPathTracingIntegrator(5, DefaultBackground())
	color := pt.RayColor(core.NewRay(core.NewVec3(0, 1, 0), core.NewVec3(0, -1, 0)), world, core.NewSeededSampler(1))

	expected := core.NewVec3(0.5*0.5, 0.25*0.7, 1.0*1.0)
	if !vecClose(color, expected, 1e-12) {
		t.Errorf("Expected %v, got %v", expected, color)
	}
}

func TestPathTracingLambertianSphere(t *testing.T) {
	sphere := geometry.NewSphere(core.NewVec3(0, 0, -1), 0.5, material.NewLambertian(core.NewVec3(0.5, 0.5, 0.5)))
	world := geometry.NewHittableList(sphere)
	pt := NewPathTracingIntegrator(50, DefaultBackground())
	sampler := core.NewSeededSampler(42)

	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))
	for i := 0; i < 100; i++ {
		color := pt.RayColor(ray, world, sampler)
		// A single grey bounce can never exceed half of the brightest background
		for _, c := range []float64{color.X, color.Y, color.Z} {
			if c < 0 || c > 0.5+1e-12 {
				t.Fatalf("Color component out of range: %v", color)
			}
		}
	}
}
