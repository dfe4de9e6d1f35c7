package loaders

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/df07/go-path-tracer/pkg/core"
)

// Triple is a JSON [x, y, z] array used for points, directions and colors
type Triple [3]float64

// Vec3 converts the triple to a vector
func (t Triple) Vec3() core.Vec3 {
	return core.NewVec3(t[0], t[1], t[2])
}

// MaterialType enumerates supported material kinds
type MaterialType string

const (
	MaterialLambertian MaterialType = "lambertian"
	MaterialMetal      MaterialType = "metal"
	MaterialDielectric MaterialType = "dielectric"
)

// SceneDescription is the on-disk form of a scene
type SceneDescription struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description,omitempty"`
	Group       string                 `json:"group,omitempty"`
	Camera      CameraDescription      `json:"camera"`
	Sampling    SamplingDescription    `json:"sampling"`
	Background  *BackgroundDescription `json:"background,omitempty"`
	Materials   []MaterialDescription  `json:"materials"`
	Spheres     []SphereDescription    `json:"spheres"`
}

// CameraDescription mirrors the renderer camera configuration.
// Zero fields fall back to the scene defaults.
type CameraDescription struct {
	LookFrom      Triple  `json:"look_from"`
	LookAt        Triple  `json:"look_at"`
	Up            Triple  `json:"up"`
	Width         int     `json:"width,omitempty"`
	AspectRatio   float64 `json:"aspect_ratio,omitempty"`
	VFov          float64 `json:"vfov,omitempty"`
	Aperture      float64 `json:"aperture,omitempty"`
	FocusDistance float64 `json:"focus_distance,omitempty"`
}

// SamplingDescription holds per-scene quality settings
type SamplingDescription struct {
	SamplesPerPixel int `json:"samples_per_pixel,omitempty"`
	MaxDepth        int `json:"max_depth,omitempty"`
}

// BackgroundDescription is the sky gradient seen by escaping rays
type BackgroundDescription struct {
	Top    Triple `json:"top"`
	Bottom Triple `json:"bottom"`
}

// MaterialDescription describes one named material
type MaterialDescription struct {
	ID              string       `json:"id"`
	Type            MaterialType `json:"type"`
	Albedo          Triple       `json:"albedo,omitempty"`           // lambertian and metal
	Fuzz            float64      `json:"fuzz,omitempty"`             // metal
	RefractiveIndex float64      `json:"refractive_index,omitempty"` // dielectric
}

// SphereDescription places a sphere. A negative radius flips the normals, which
// makes hollow glass shells. CenterEnd makes the sphere move during the shutter.
type SphereDescription struct {
	Center    Triple  `json:"center"`
	CenterEnd *Triple `json:"center_end,omitempty"`
	Radius    float64 `json:"radius"`
	Material  string  `json:"material"`
}

// LoadSceneDescription reads and validates a scene description from a JSON file
func LoadSceneDescription(path string) (*SceneDescription, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open scene: %w", err)
	}
	defer f.Close()

	desc, err := ParseSceneDescription(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return desc, nil
}

// ParseSceneDescription decodes and validates a scene description
func ParseSceneDescription(r io.Reader) (*SceneDescription, error) {
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()

	var desc SceneDescription
	if err := dec.Decode(&desc); err != nil {
		return nil, fmt.Errorf("decode scene: %w", err)
	}
	if err := desc.Validate(); err != nil {
		return nil, err
	}
	return &desc, nil
}

// Validate checks material definitions and sphere references
func (d *SceneDescription) Validate() error {
	if d.Camera.Width < 0 {
		return fmt.Errorf("camera width must not be negative, got %d", d.Camera.Width)
	}
	if d.Camera.AspectRatio < 0 {
		return fmt.Errorf("camera aspect ratio must not be negative, got %g", d.Camera.AspectRatio)
	}
	if d.Sampling.SamplesPerPixel < 0 || d.Sampling.MaxDepth < 0 {
		return fmt.Errorf("sampling settings must not be negative, got %+v", d.Sampling)
	}

	materials := make(map[string]bool, len(d.Materials))
	for i, m := range d.Materials {
		if m.ID == "" {
			return fmt.Errorf("material %d has no id", i)
		}
		if materials[m.ID] {
			return fmt.Errorf("duplicate material id %q", m.ID)
		}
		switch m.Type {
		case MaterialLambertian, MaterialMetal:
		case MaterialDielectric:
			if m.RefractiveIndex <= 0 {
				return fmt.Errorf("material %q: refractive index must be positive, got %g", m.ID, m.RefractiveIndex)
			}
		default:
			return fmt.Errorf("material %q: unknown type %q", m.ID, m.Type)
		}
		materials[m.ID] = true
	}

	for i, s := range d.Spheres {
		if s.Radius == 0 {
			return fmt.Errorf("sphere %d: radius must not be zero", i)
		}
		if !materials[s.Material] {
			return fmt.Errorf("sphere %d: unknown material %q", i, s.Material)
		}
	}

	return nil
}
