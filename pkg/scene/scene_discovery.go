package scene

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/df07/go-path-tracer/pkg/core"
	"github.com/df07/go-path-tracer/pkg/loaders"
	"github.com/df07/go-path-tracer/pkg/renderer"
)

const (
	builtinGroup = "Built-in Scenes"
	jsonPrefix   = "json:"
)

// ErrUnknownScene is returned by Create when an id names no built-in scene and no scene file
var ErrUnknownScene = errors.New("unknown scene")

// SceneInfo represents a discovered scene with its metadata
type SceneInfo struct {
	ID          string `json:"id"`          // Unique identifier, accepted by Create
	Name        string `json:"name"`        // Scene name
	DisplayName string `json:"displayName"` // Name shown in listings
	Description string `json:"description"` // Optional description
	Group       string `json:"group"`       // Grouping category
	Type        string `json:"type"`        // "builtin" or "json"
	FilePath    string `json:"filePath"`    // Path to the scene file (json type only)
}

// SceneGroup represents a group of related scenes
type SceneGroup struct {
	Name   string      `json:"name"`
	Scenes []SceneInfo `json:"scenes"`
}

// ScenesResponse lists every available scene grouped by category
type ScenesResponse struct {
	Groups []SceneGroup `json:"groups"`
}

// BuiltinScenes returns the scenes compiled into the binary
func BuiltinScenes() []SceneInfo {
	return []SceneInfo{
		{
			ID:          "default",
			Name:        "Default Scene",
			DisplayName: "Default Scene",
			Description: "Glass, diffuse and metal spheres on a gray ground",
			Group:       builtinGroup,
			Type:        "builtin",
		},
		{
			ID:          "random",
			Name:        "Random Spheres",
			DisplayName: "Random Spheres",
			Description: "Feature spheres in a field of small random spheres",
			Group:       builtinGroup,
			Type:        "builtin",
		},
		{
			ID:          "bouncing",
			Name:        "Bouncing Spheres",
			DisplayName: "Bouncing Spheres",
			Description: "Random spheres with motion-blurred diffuse spheres",
			Group:       builtinGroup,
			Type:        "builtin",
		},
		{
			ID:          "spheregrid",
			Name:        "Sphere Grid",
			DisplayName: "Sphere Grid",
			Description: "10x10 grid of rainbow-colored metallic spheres",
			Group:       builtinGroup,
			Type:        "builtin",
		},
		{
			ID:          "hollow-glass",
			Name:        "Hollow Glass",
			DisplayName: "Hollow Glass",
			Description: "Glass bubble around a diffuse sphere next to matte and gold spheres",
			Group:       builtinGroup,
			Type:        "builtin",
		},
	}
}

// findScenesDir returns the first scenes directory that exists, or "" if none does
func findScenesDir() string {
	for _, path := range []string{"scenes", "../scenes"} {
		if info, err := os.Stat(path); err == nil && info.IsDir() {
			return path
		}
	}
	return ""
}

// ListJSONScenes scans dir for *.json scene files. Files that fail to parse are
// reported to logger and left out of the result.
func ListJSONScenes(dir string, logger core.Logger) ([]SceneInfo, error) {
	if logger == nil {
		logger = renderer.NewSilentLogger()
	}
	if dir == "" {
		return []SceneInfo{}, nil
	}

	files, err := filepath.Glob(filepath.Join(dir, "*.json"))
	if err != nil {
		return nil, fmt.Errorf("failed to scan scenes directory: %w", err)
	}

	scenes := []SceneInfo{}
	for _, filePath := range files {
		sceneInfo, err := ParseJSONMetadata(filePath)
		if err != nil {
			logger.Printf("Warning: failed to parse metadata for %s: %v\n", filePath, err)
			continue
		}
		scenes = append(scenes, sceneInfo)
	}

	sort.Slice(scenes, func(i, j int) bool {
		return scenes[i].DisplayName < scenes[j].DisplayName
	})

	return scenes, nil
}

// ParseJSONMetadata reads the name, description and group of a scene file
func ParseJSONMetadata(filePath string) (SceneInfo, error) {
	filename := filepath.Base(filePath)
	nameWithoutExt := strings.TrimSuffix(filename, filepath.Ext(filename))

	sceneInfo := SceneInfo{
		ID:          jsonPrefix + nameWithoutExt,
		Name:        titleCase(nameWithoutExt),
		DisplayName: titleCase(nameWithoutExt),
		Group:       "Scene Files",
		Type:        "json",
		FilePath:    filePath,
	}

	desc, err := loaders.LoadSceneDescription(filePath)
	if err != nil {
		return sceneInfo, err
	}

	if desc.Name != "" {
		sceneInfo.Name = desc.Name
		sceneInfo.DisplayName = desc.Name
	}
	if desc.Group != "" {
		sceneInfo.Group = desc.Group
	}
	sceneInfo.Description = desc.Description

	return sceneInfo, nil
}

// ListAllScenes returns built-in and file scenes, built-ins first, other groups alphabetically
func ListAllScenes(logger core.Logger) (ScenesResponse, error) {
	var response ScenesResponse

	jsonScenes, err := ListJSONScenes(findScenesDir(), logger)
	if err != nil {
		return response, fmt.Errorf("failed to list scene files: %w", err)
	}

	allScenes := append(BuiltinScenes(), jsonScenes...)

	groupMap := make(map[string][]SceneInfo)
	for _, scene := range allScenes {
		groupMap[scene.Group] = append(groupMap[scene.Group], scene)
	}

	var groupNames []string
	for groupName := range groupMap {
		if groupName != builtinGroup {
			groupNames = append(groupNames, groupName)
		}
	}
	sort.Strings(groupNames)

	if builtInGroup, exists := groupMap[builtinGroup]; exists {
		response.Groups = append(response.Groups, SceneGroup{
			Name:   builtinGroup,
			Scenes: builtInGroup,
		})
	}

	for _, groupName := range groupNames {
		response.Groups = append(response.Groups, SceneGroup{
			Name:   groupName,
			Scenes: groupMap[groupName],
		})
	}

	return response, nil
}

// Create builds the scene with the given id. Besides the built-in ids it accepts
// a direct path to a .json file, "json:<name>" for a file in the scenes directory,
// and a bare <name> when scenes/<name>.json exists. Load and validation errors of
// a resolved file are returned as is. seed controls the layout of randomly
// generated scenes.
func Create(id string, seed int64, cameraOverrides ...renderer.CameraConfig) (*Scene, error) {
	switch id {
	case "default":
		return NewDefaultScene(cameraOverrides...), nil
	case "random":
		return NewRandomScene(seed, cameraOverrides...), nil
	case "bouncing":
		return NewBouncingSpheresScene(seed, cameraOverrides...), nil
	case "spheregrid":
		return NewSphereGridScene(SphereGridOptions{GridSize: 10}, cameraOverrides...), nil
	case "hollow-glass":
		return NewHollowGlassScene(cameraOverrides...), nil
	}

	if strings.HasSuffix(id, ".json") {
		return NewSceneFromFile(id, cameraOverrides...)
	}

	if strings.HasPrefix(id, jsonPrefix) {
		dir := findScenesDir()
		if dir == "" {
			return nil, fmt.Errorf("scene %q: no scenes directory found", id)
		}
		return NewSceneFromFile(filepath.Join(dir, strings.TrimPrefix(id, jsonPrefix)+".json"), cameraOverrides...)
	}

	if dir := findScenesDir(); dir != "" && id != "" {
		path := filepath.Join(dir, id+".json")
		if _, err := os.Stat(path); err == nil {
			return NewSceneFromFile(path, cameraOverrides...)
		}
	}

	return nil, fmt.Errorf("%w %q", ErrUnknownScene, id)
}

// titleCase converts a filename-style string to title case
// e.g., "three-spheres" -> "Three Spheres"
func titleCase(s string) string {
	s = strings.ReplaceAll(s, "-", " ")
	s = strings.ReplaceAll(s, "_", " ")

	words := strings.Fields(s)
	for i, word := range words {
		if len(word) > 0 {
			words[i] = strings.ToUpper(word[:1]) + strings.ToLower(word[1:])
		}
	}

	return strings.Join(words, " ")
}
