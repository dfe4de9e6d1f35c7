package renderer

import (
	"fmt"
	"time"
)

// RenderStats summarizes a finished render
type RenderStats struct {
	TotalPixels     int           // Width * height
	TotalTasks      int           // Tasks in the threads x threads grid
	TotalSamples    int           // Camera rays traced over the whole image
	SamplesPerPixel int           // Samples each pixel received
	Duration        time.Duration // Wall time spent rendering
}

// addTask accounts for a completed task
func (s *RenderStats) addTask(task RenderTask) {
	s.TotalSamples += task.PixelCount() * task.SamplesPerPixel
}

// SamplesPerSecond returns throughput in camera rays per second
func (s RenderStats) SamplesPerSecond() float64 {
	if s.Duration <= 0 {
		return 0
	}
	return float64(s.TotalSamples) / s.Duration.Seconds()
}

func (s RenderStats) String() string {
	return fmt.Sprintf("%d pixels, %d tasks, %d samples (%d/pixel) in %v",
		s.TotalPixels, s.TotalTasks, s.TotalSamples, s.SamplesPerPixel, s.Duration.Round(time.Millisecond))
}
