package scene

import (
	"github.com/df07/go-path-tracer/pkg/core"
	"github.com/df07/go-path-tracer/pkg/geometry"
	"github.com/df07/go-path-tracer/pkg/integrator"
	"github.com/df07/go-path-tracer/pkg/material"
	"github.com/df07/go-path-tracer/pkg/renderer"
)

// Scene contains all the elements needed for rendering
type Scene struct {
	Name           string
	Camera         *renderer.Camera
	CameraConfig   renderer.CameraConfig
	World          *geometry.HittableList // Objects in the scene, searched linearly
	SamplingConfig renderer.SamplingConfig
	Background     integrator.Background
}

// newScene builds the camera from the default configuration merged with an optional override
func newScene(name string, defaultCameraConfig renderer.CameraConfig, samplingConfig renderer.SamplingConfig, cameraOverrides []renderer.CameraConfig) *Scene {
	cameraConfig := defaultCameraConfig
	if len(cameraOverrides) > 0 {
		cameraConfig = renderer.MergeCameraConfig(defaultCameraConfig, cameraOverrides[0])
	}

	return &Scene{
		Name:           name,
		Camera:         renderer.NewCamera(cameraConfig),
		CameraConfig:   cameraConfig,
		World:          geometry.NewHittableList(),
		SamplingConfig: samplingConfig,
		Background:     integrator.DefaultBackground(),
	}
}

// GetCamera returns the scene camera
func (s *Scene) GetCamera() *renderer.Camera {
	return s.Camera
}

// GetWorld returns everything a ray can hit
func (s *Scene) GetWorld() geometry.Shape {
	return s.World
}

// GetBackground returns the gradient seen by rays that escape
func (s *Scene) GetBackground() integrator.Background {
	return s.Background
}

// GetSamplingConfig returns the scene's preferred quality settings
func (s *Scene) GetSamplingConfig() renderer.SamplingConfig {
	return s.SamplingConfig
}

// GetPrimitiveCount returns the number of spheres in the scene
func (s *Scene) GetPrimitiveCount() int {
	return s.World.Len()
}

// AddSphere adds a static sphere to the scene
func (s *Scene) AddSphere(center core.Vec3, radius float64, mat material.Material) {
	s.World.Add(geometry.NewSphere(center, radius, mat))
}

// AddMovingSphere adds a sphere that moves from center1 to center2 while the shutter is open
func (s *Scene) AddMovingSphere(center1, center2 core.Vec3, radius float64, mat material.Material) {
	s.World.Add(geometry.NewMovingSphere(center1, center2, radius, mat))
}

// AddHollowSphere adds a glass shell of the given thickness.
// The inner sphere has a negative radius so its normals point inward.
func (s *Scene) AddHollowSphere(center core.Vec3, radius, thickness float64, mat material.Material) {
	s.AddSphere(center, radius, mat)
	s.AddSphere(center, -(radius - thickness), mat)
}

// AddGroundSphere adds a huge sphere whose top touches y = 0
func (s *Scene) AddGroundSphere(mat material.Material) {
	s.AddSphere(core.NewVec3(0, -1000, 0), 1000, mat)
}
