package scene

import (
	"github.com/df07/go-path-tracer/pkg/core"
	"github.com/df07/go-path-tracer/pkg/material"
	"github.com/df07/go-path-tracer/pkg/renderer"
)

// NewHollowGlassScene creates a row of three spheres on a large ground sphere:
// a hollow glass bubble with a blue ball inside, a matte sphere and fuzzy gold
func NewHollowGlassScene(cameraOverrides ...renderer.CameraConfig) *Scene {
	defaultCameraConfig := renderer.CameraConfig{
		Center:        core.NewVec3(-2, 2, 1),
		LookAt:        core.NewVec3(0, 0, -1),
		Up:            core.NewVec3(0, 1, 0),
		Width:         400,
		AspectRatio:   16.0 / 9.0,
		VFov:          30.0,
		Aperture:      0.0,
		FocusDistance: 0.0, // Auto-calculate focus distance
	}

	samplingConfig := renderer.SamplingConfig{
		SamplesPerPixel: 100,
		MaxDepth:        50,
	}

	s := newScene("hollow-glass", defaultCameraConfig, samplingConfig, cameraOverrides)

	lambertianGround := material.NewLambertian(core.NewVec3(0.8, 0.8, 0.0))
	lambertianBlue := material.NewLambertian(core.NewVec3(0.1, 0.2, 0.5))
	metalGold := material.NewMetal(core.NewVec3(0.8, 0.6, 0.2), 0.3)
	glass := material.NewDielectric(1.5)

	s.AddSphere(core.NewVec3(0, -100.5, -1), 100, lambertianGround)
	s.AddSphere(core.NewVec3(0, 0, -1), 0.5, material.NewLambertian(core.NewVec3(0.7, 0.3, 0.3)))
	s.AddHollowSphere(core.NewVec3(-1, 0, -1), 0.5, 0.05, glass)
	s.AddSphere(core.NewVec3(-1, 0, -1), 0.3, lambertianBlue)
	s.AddSphere(core.NewVec3(1, 0, -1), 0.5, metalGold)

	return s
}
