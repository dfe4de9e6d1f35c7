package scene

import (
	"github.com/df07/go-path-tracer/pkg/core"
	"github.com/df07/go-path-tracer/pkg/material"
	"github.com/df07/go-path-tracer/pkg/renderer"
)

const (
	diffuseProbability = 0.8  // Share of small spheres that are diffuse
	metalProbability   = 0.15 // Share that are metal, the rest are glass
)

// NewRandomScene creates the feature spheres surrounded by a 22x22 field of small random spheres.
// The layout depends only on seed.
func NewRandomScene(seed int64, cameraOverrides ...renderer.CameraConfig) *Scene {
	samplingConfig := renderer.SamplingConfig{
		SamplesPerPixel: 20,
		MaxDepth:        50,
	}

	s := newScene("random", featureCameraConfig(), samplingConfig, cameraOverrides)
	s.AddGroundSphere(material.NewLambertian(core.NewVec3(0.5, 0.5, 0.5)))
	addRandomSpheres(s, core.NewSeededSampler(seed), false)
	addFeatureSpheres(s)

	return s
}

// NewBouncingSpheresScene is the random scene with every diffuse sphere rising during the shutter,
// which renders as motion blur
func NewBouncingSpheresScene(seed int64, cameraOverrides ...renderer.CameraConfig) *Scene {
	samplingConfig := renderer.SamplingConfig{
		SamplesPerPixel: 50,
		MaxDepth:        50,
	}

	s := newScene("bouncing", featureCameraConfig(), samplingConfig, cameraOverrides)
	s.AddGroundSphere(material.NewLambertian(core.NewVec3(0.5, 0.5, 0.5)))
	addRandomSpheres(s, core.NewSeededSampler(seed), true)
	addFeatureSpheres(s)

	return s
}

// addRandomSpheres scatters small spheres over the ground, keeping clear of the metal feature sphere
func addRandomSpheres(s *Scene, sampler core.Sampler, moving bool) {
	clearing := core.NewVec3(4, 0.2, 0)

	for a := -11; a < 11; a++ {
		for b := -11; b < 11; b++ {
			chooseMat := sampler.Get1D()
			jitter := sampler.Get2D()
			center := core.NewVec3(float64(a)+0.9*jitter.X, 0.2, float64(b)+0.9*jitter.Y)

			if center.Subtract(clearing).Length() <= 0.9 {
				continue
			}

			switch {
			case chooseMat < diffuseProbability:
				albedo := sampler.Get3D().MultiplyVec(sampler.Get3D())
				mat := material.NewLambertian(albedo)
				if moving {
					center2 := center.Add(core.NewVec3(0, core.RandomInRange(sampler, 0, 0.5), 0))
					s.AddMovingSphere(center, center2, 0.2, mat)
				} else {
					s.AddSphere(center, 0.2, mat)
				}
			case chooseMat < diffuseProbability+metalProbability:
				albedo := sampler.Get3D().Multiply(0.5).Add(core.NewVec3(0.5, 0.5, 0.5))
				fuzz := core.RandomInRange(sampler, 0, 0.5)
				s.AddSphere(center, 0.2, material.NewMetal(albedo, fuzz))
			default:
				s.AddSphere(center, 0.2, material.NewDielectric(1.5))
			}
		}
	}
}
