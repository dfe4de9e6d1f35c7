package renderer

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"time"

	"github.com/df07/go-path-tracer/pkg/core"
	"github.com/df07/go-path-tracer/pkg/geometry"
	"github.com/df07/go-path-tracer/pkg/integrator"
)

var errTaskCanceled = errors.New("task canceled before it started")

// SamplingConfig contains rendering configuration
type SamplingConfig struct {
	SamplesPerPixel int // Number of rays per pixel
	MaxDepth        int // Maximum ray bounce depth
}

// DefaultSamplingConfig returns sensible default values
func DefaultSamplingConfig() SamplingConfig {
	return SamplingConfig{
		SamplesPerPixel: 20,
		MaxDepth:        50,
	}
}

// MergeSamplingConfig returns base with every non-zero field of override applied
func MergeSamplingConfig(base, override SamplingConfig) SamplingConfig {
	result := base
	if override.SamplesPerPixel != 0 {
		result.SamplesPerPixel = override.SamplesPerPixel
	}
	if override.MaxDepth != 0 {
		result.MaxDepth = override.MaxDepth
	}
	return result
}

// Config controls how a render is parallelized
type Config struct {
	Threads int   // Worker goroutines; also the size of each task grid axis
	Seed    int64 // Base seed, task k draws from Seed + k
}

// DefaultConfig uses one thread per CPU and a fixed seed
func DefaultConfig() Config {
	return Config{
		Threads: runtime.NumCPU(),
		Seed:    42, // Deterministic by default
	}
}

// Scene interface to avoid circular imports
type Scene interface {
	GetCamera() *Camera
	GetWorld() geometry.Shape
	GetBackground() integrator.Background
	GetSamplingConfig() SamplingConfig
}

// Raytracer coordinates a parallel render of a scene
type Raytracer struct {
	scene    Scene
	config   Config
	sampling SamplingConfig
	logger   core.Logger
}

// NewRaytracer creates a raytracer using the scene's sampling configuration
func NewRaytracer(scene Scene, config Config, logger core.Logger) *Raytracer {
	if logger == nil {
		logger = NewDefaultLogger()
	}
	return &Raytracer{
		scene:    scene,
		config:   config,
		sampling: scene.GetSamplingConfig(),
		logger:   logger,
	}
}

// SetSamplingConfig replaces the sampling configuration
func (rt *Raytracer) SetSamplingConfig(config SamplingConfig) {
	rt.sampling = config
}

// MergeSamplingConfig applies the non-zero fields of override
func (rt *Raytracer) MergeSamplingConfig(override SamplingConfig) {
	rt.sampling = MergeSamplingConfig(rt.sampling, override)
}

// SamplingConfig returns the active sampling configuration
func (rt *Raytracer) SamplingConfig() SamplingConfig {
	return rt.sampling
}

// newTaskRenderer builds the shared, read-only task renderer for the current configuration
func (rt *Raytracer) newTaskRenderer() *TaskRenderer {
	integratorInst := integrator.NewPathTracingIntegrator(rt.sampling.MaxDepth, rt.scene.GetBackground())
	return NewTaskRenderer(rt.scene.GetCamera(), rt.scene.GetWorld(), integratorInst)
}

// Render traces the whole image and returns the accumulated color sums.
// Cancellation is observed between tasks: tasks already running finish, the rest are skipped
// and ctx.Err() is returned unless every task had already been merged.
func (rt *Raytracer) Render(ctx context.Context) (*Image, RenderStats, error) {
	start := time.Now()
	camera := rt.scene.GetCamera()
	width, height := camera.ImageWidth(), camera.ImageHeight()

	tasks, err := GenerateRenderTasks(width, height, rt.sampling.SamplesPerPixel, rt.config.Threads)
	if err != nil {
		return nil, RenderStats{}, fmt.Errorf("failed to partition render: %w", err)
	}

	stats := RenderStats{
		TotalPixels:     width * height,
		TotalTasks:      len(tasks),
		SamplesPerPixel: rt.sampling.SamplesPerPixel,
	}
	rt.logger.Printf("Rendering %dx%d, %d spp, max depth %d: %d tasks on %d workers\n",
		width, height, rt.sampling.SamplesPerPixel, rt.sampling.MaxDepth, len(tasks), rt.config.Threads)

	if err := ctx.Err(); err != nil {
		return nil, stats, err
	}

	pool := NewWorkerPool(rt.newTaskRenderer(), rt.config.Threads, len(tasks), rt.config.Seed)
	pool.Start()

	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-ctx.Done():
			pool.Cancel()
		case <-done:
		}
	}()

	for _, task := range tasks {
		pool.SubmitTask(task)
	}
	go pool.Stop()

	final := NewImage(width, height)
	completed := 0
	for {
		result, ok := pool.GetResult()
		if !ok {
			break
		}
		if result.Err != nil {
			continue
		}

		if err := final.Add(result.Image); err != nil {
			return nil, stats, fmt.Errorf("failed to merge task %d: %w", result.TaskID, err)
		}
		stats.addTask(result.Task)
		completed++
		rt.logger.Printf("task %d/%d: pixels %d-%d, %d samples\n",
			completed, len(tasks), result.Task.StartID, result.Task.EndID, result.Task.SamplesPerPixel)
	}

	stats.Duration = time.Since(start)
	// A cancel that lands after the last merge still leaves a complete image
	if err := ctx.Err(); err != nil && completed < len(tasks) {
		rt.logger.Printf("Render canceled after %d/%d tasks\n", completed, len(tasks))
		return nil, stats, err
	}

	rt.logger.Printf("Render complete: %s\n", stats)
	return final, stats, nil
}
