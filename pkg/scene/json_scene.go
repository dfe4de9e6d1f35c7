package scene

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/df07/go-path-tracer/pkg/core"
	"github.com/df07/go-path-tracer/pkg/integrator"
	"github.com/df07/go-path-tracer/pkg/loaders"
	"github.com/df07/go-path-tracer/pkg/material"
	"github.com/df07/go-path-tracer/pkg/renderer"
)

// defaultJSONCameraConfig is used for camera fields a scene file leaves out
func defaultJSONCameraConfig() renderer.CameraConfig {
	return renderer.CameraConfig{
		Center:      core.NewVec3(0, 0, 0),
		LookAt:      core.NewVec3(0, 0, -1),
		Up:          core.NewVec3(0, 1, 0),
		Width:       400,
		AspectRatio: 16.0 / 9.0,
		VFov:        90.0,
	}
}

// cameraConfigFromDescription fills in defaults. Look-from and look-at are taken together:
// if they coincide the default view is used, since no direction can be derived from them.
func cameraConfigFromDescription(desc loaders.CameraDescription) renderer.CameraConfig {
	config := defaultJSONCameraConfig()

	if desc.LookFrom != desc.LookAt {
		config.Center = desc.LookFrom.Vec3()
		config.LookAt = desc.LookAt.Vec3()
	}
	if up := desc.Up.Vec3(); up != (core.Vec3{}) {
		config.Up = up
	}

	return renderer.MergeCameraConfig(config, renderer.CameraConfig{
		Width:         desc.Width,
		AspectRatio:   desc.AspectRatio,
		VFov:          desc.VFov,
		Aperture:      desc.Aperture,
		FocusDistance: desc.FocusDistance,
	})
}

// buildMaterial turns a material description into a material
func buildMaterial(desc loaders.MaterialDescription) (material.Material, error) {
	switch desc.Type {
	case loaders.MaterialLambertian:
		return material.NewLambertian(desc.Albedo.Vec3()), nil
	case loaders.MaterialMetal:
		return material.NewMetal(desc.Albedo.Vec3(), desc.Fuzz), nil
	case loaders.MaterialDielectric:
		return material.NewDielectric(desc.RefractiveIndex), nil
	default:
		return nil, fmt.Errorf("material %q: unknown type %q", desc.ID, desc.Type)
	}
}

// NewSceneFromDescription builds a scene from a decoded scene file.
// Spheres that share a material id share one material instance.
func NewSceneFromDescription(desc *loaders.SceneDescription, cameraOverrides ...renderer.CameraConfig) (*Scene, error) {
	if err := desc.Validate(); err != nil {
		return nil, fmt.Errorf("invalid scene %q: %w", desc.Name, err)
	}

	samplingConfig := renderer.MergeSamplingConfig(renderer.DefaultSamplingConfig(), renderer.SamplingConfig{
		SamplesPerPixel: desc.Sampling.SamplesPerPixel,
		MaxDepth:        desc.Sampling.MaxDepth,
	})

	s := newScene(desc.Name, cameraConfigFromDescription(desc.Camera), samplingConfig, cameraOverrides)
	if desc.Background != nil {
		s.Background = integrator.Background{
			Top:    desc.Background.Top.Vec3(),
			Bottom: desc.Background.Bottom.Vec3(),
		}
	}

	materials := make(map[string]material.Material, len(desc.Materials))
	for _, m := range desc.Materials {
		mat, err := buildMaterial(m)
		if err != nil {
			return nil, err
		}
		materials[m.ID] = mat
	}

	for _, sphere := range desc.Spheres {
		mat := materials[sphere.Material]
		if sphere.CenterEnd != nil {
			s.AddMovingSphere(sphere.Center.Vec3(), sphere.CenterEnd.Vec3(), sphere.Radius, mat)
		} else {
			s.AddSphere(sphere.Center.Vec3(), sphere.Radius, mat)
		}
	}

	return s, nil
}

// NewSceneFromFile loads and builds a scene from a JSON file.
// Scenes without a name are named after the file.
func NewSceneFromFile(path string, cameraOverrides ...renderer.CameraConfig) (*Scene, error) {
	desc, err := loaders.LoadSceneDescription(path)
	if err != nil {
		return nil, err
	}
	if desc.Name == "" {
		desc.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	return NewSceneFromDescription(desc, cameraOverrides...)
}
