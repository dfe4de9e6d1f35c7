package renderer

import "fmt"

// RenderTask names a half-open range of flattened pixel indices (y*width + x)
// and how many samples each of those pixels receives
type RenderTask struct {
	TaskID          int // Position in the task grid, also seeds the task's sampler
	StartID         int // First pixel index (inclusive)
	EndID           int // Last pixel index (exclusive)
	SamplesPerPixel int
}

// PixelCount returns the number of pixels covered by the task
func (t RenderTask) PixelCount() int {
	return t.EndID - t.StartID
}

// IsEmpty reports whether the task contributes nothing
func (t RenderTask) IsEmpty() bool {
	return t.PixelCount() <= 0 || t.SamplesPerPixel <= 0
}

// GenerateRenderTasks splits the image and the sample budget into a threads x threads grid.
// The image axis cuts the flattened pixel range into threads contiguous blocks and the sample
// axis cuts samplesPerPixel into threads shares; the last block and the last share absorb the
// remainders. Summing every task's contribution covers each pixel with exactly samplesPerPixel samples.
func GenerateRenderTasks(width, height, samplesPerPixel, threads int) ([]RenderTask, error) {
	if threads < 1 {
		return nil, fmt.Errorf("thread count must be at least 1, got %d", threads)
	}
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("image dimensions must be positive, got %dx%d", width, height)
	}
	if samplesPerPixel < 0 {
		return nil, fmt.Errorf("samples per pixel must not be negative, got %d", samplesPerPixel)
	}

	pixelCount := width * height
	pixelsPerThread := pixelCount / threads
	lastThreadPixels := pixelCount - pixelsPerThread*(threads-1)

	samplesPerThread := samplesPerPixel / threads
	lastThreadSamples := samplesPerPixel - samplesPerThread*(threads-1)

	tasks := make([]RenderTask, 0, threads*threads)
	for samplePart := 0; samplePart < threads; samplePart++ {
		samples := samplesPerThread
		if samplePart == threads-1 {
			samples = lastThreadSamples
		}

		for imagePart := 0; imagePart < threads; imagePart++ {
			startID := imagePart * pixelsPerThread
			endID := startID + pixelsPerThread
			if imagePart == threads-1 {
				endID = startID + lastThreadPixels
			}

			tasks = append(tasks, RenderTask{
				TaskID:          len(tasks),
				StartID:         startID,
				EndID:           endID,
				SamplesPerPixel: samples,
			})
		}
	}

	return tasks, nil
}
