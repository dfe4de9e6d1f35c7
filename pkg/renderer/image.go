package renderer

import (
	"bufio"
	"fmt"
	"image"
	"io"

	"github.com/df07/go-path-tracer/pkg/core"
)

// Image accumulates unnormalized color sums, one per pixel, row-major from the top-left
type Image struct {
	Width  int
	Height int
	Pixels []core.Vec3
}

// NewImage creates a black image
func NewImage(width, height int) *Image {
	return &Image{
		Width:  width,
		Height: height,
		Pixels: make([]core.Vec3, width*height),
	}
}

// At returns the accumulated color of pixel (x, y)
func (img *Image) At(x, y int) core.Vec3 {
	return img.Pixels[y*img.Width+x]
}

// Set overwrites the accumulated color of pixel (x, y)
func (img *Image) Set(x, y int, c core.Vec3) {
	img.Pixels[y*img.Width+x] = c
}

// Add sums other into img pixel by pixel
func (img *Image) Add(other *Image) error {
	if other.Width != img.Width || other.Height != img.Height {
		return fmt.Errorf("cannot add %dx%d image to %dx%d image", other.Width, other.Height, img.Width, img.Height)
	}
	for i, c := range other.Pixels {
		img.Pixels[i] = img.Pixels[i].Add(c)
	}
	return nil
}

// ToRGBA normalizes the sums by samplesPerPixel and converts them to an 8-bit image
func (img *Image) ToRGBA(samplesPerPixel int) *image.RGBA {
	rgba := image.NewRGBA(image.Rect(0, 0, img.Width, img.Height))
	for y := 0; y < img.Height; y++ {
		for x := 0; x < img.Width; x++ {
			rgba.SetRGBA(x, y, vec3ToColor(img.At(x, y), samplesPerPixel))
		}
	}
	return rgba
}

// WritePPM encodes the image as plain-text PPM (P3). Write errors are returned as is.
func (img *Image) WritePPM(w io.Writer, samplesPerPixel int) error {
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintf(bw, "P3\n%d %d\n255\n", img.Width, img.Height); err != nil {
		return err
	}
	for _, c := range img.Pixels {
		r, g, b := QuantizeColor(c, samplesPerPixel)
		if _, err := fmt.Fprintf(bw, "%d %d %d\n", r, g, b); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// AverageLuminance returns the mean luminance of the normalized, linear image
func (img *Image) AverageLuminance(samplesPerPixel int) float64 {
	if len(img.Pixels) == 0 || samplesPerPixel <= 0 {
		return 0
	}
	total := 0.0
	for _, c := range img.Pixels {
		total += c.Luminance()
	}
	return total / float64(samplesPerPixel) / float64(len(img.Pixels))
}
