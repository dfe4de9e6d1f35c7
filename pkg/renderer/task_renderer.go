package renderer

import (
	"github.com/df07/go-path-tracer/pkg/core"
	"github.com/df07/go-path-tracer/pkg/geometry"
	"github.com/df07/go-path-tracer/pkg/integrator"
)

// TaskRenderer traces the pixels of individual render tasks.
// It only reads the camera, world and integrator, so one instance is shared by all workers.
type TaskRenderer struct {
	camera     *Camera
	world      geometry.Shape
	integrator integrator.Integrator
}

// NewTaskRenderer creates a task renderer for the given camera, world and integrator
func NewTaskRenderer(camera *Camera, world geometry.Shape, integratorInst integrator.Integrator) *TaskRenderer {
	return &TaskRenderer{
		camera:     camera,
		world:      world,
		integrator: integratorInst,
	}
}

// RenderTask returns a full-frame image holding color sums for the task's pixel range.
// Pixels outside the range stay black so images from different tasks can be added together.
func (tr *TaskRenderer) RenderTask(task RenderTask, sampler core.Sampler) *Image {
	width := tr.camera.ImageWidth()
	height := tr.camera.ImageHeight()
	img := NewImage(width, height)

	if task.IsEmpty() {
		return img
	}

	for id := task.StartID; id < task.EndID; id++ {
		i := id % width
		j := id / width

		colorAccum := core.Vec3{}
		for sample := 0; sample < task.SamplesPerPixel; sample++ {
			ray := tr.pixelRay(i, j, width, height, sampler)
			colorAccum = colorAccum.Add(tr.integrator.RayColor(ray, tr.world, sampler))
		}
		img.Pixels[id] = colorAccum
	}

	return img
}

// pixelRay jitters a camera ray inside pixel (i, j), counting j from the top row
func (tr *TaskRenderer) pixelRay(i, j, width, height int, sampler core.Sampler) core.Ray {
	jitter := sampler.Get2D()
	s := (float64(i) + jitter.X) / float64(width)
	t := (float64(height-j-1) + jitter.Y) / float64(height)
	return tr.camera.GetRay(s, t, sampler)
}
