package scene

import (
	"github.com/df07/go-path-tracer/pkg/core"
	"github.com/df07/go-path-tracer/pkg/material"
	"github.com/df07/go-path-tracer/pkg/renderer"
)

// featureCameraConfig frames the three large spheres from the front-right
func featureCameraConfig() renderer.CameraConfig {
	return renderer.CameraConfig{
		Center:        core.NewVec3(13, 2, 3),
		LookAt:        core.NewVec3(0, 0, 0),
		Up:            core.NewVec3(0, 1, 0),
		Width:         400,
		AspectRatio:   16.0 / 9.0,
		VFov:          20.0,
		Aperture:      0.1,
		FocusDistance: 10.0,
	}
}

// addFeatureSpheres adds the glass, diffuse and metal spheres at the center of the scene
func addFeatureSpheres(s *Scene) {
	s.AddSphere(core.NewVec3(0, 1, 0), 1.0, material.NewDielectric(1.5))
	s.AddSphere(core.NewVec3(-4, 1, 0), 1.0, material.NewLambertian(core.NewVec3(0.4, 0.2, 0.1)))
	s.AddSphere(core.NewVec3(4, 1, 0), 1.0, material.NewMetal(core.NewVec3(0.7, 0.6, 0.5), 0.0))
}

// NewDefaultScene creates three large spheres of glass, diffuse and polished metal on a gray ground
func NewDefaultScene(cameraOverrides ...renderer.CameraConfig) *Scene {
	samplingConfig := renderer.SamplingConfig{
		SamplesPerPixel: 20,
		MaxDepth:        50,
	}

	s := newScene("default", featureCameraConfig(), samplingConfig, cameraOverrides)
	s.AddGroundSphere(material.NewLambertian(core.NewVec3(0.5, 0.5, 0.5)))
	addFeatureSpheres(s)

	return s
}
