package renderer

import (
	"bytes"
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/df07/go-path-tracer/pkg/core"
)

func TestQuantizeColor(t *testing.T) {
	tests := []struct {
		name    string
		sum     core.Vec3
		samples int
		r, g, b uint8
	}{
		{"black", core.NewVec3(0, 0, 0), 1, 0, 0, 0},
		{"white clamps to 255", core.NewVec3(1, 1, 1), 1, 255, 255, 255},
		{"overexposed clamps", core.NewVec3(40, 5, 2), 1, 255, 255, 255},
		{"negative is black", core.NewVec3(-1, -0.5, 0), 1, 0, 0, 0},
		// sqrt(0.25) = 0.5, 256 * 0.5 = 128
		{"quarter gamma corrected", core.NewVec3(0.25, 0.25, 0.25), 1, 128, 128, 128},
		{"divides by samples", core.NewVec3(1, 2, 4), 16, 64, 90, 128},
		{"zero samples is black", core.NewVec3(3, 3, 3), 0, 0, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, g, b := QuantizeColor(tt.sum, tt.samples)
			if r != tt.r || g != tt.g || b != tt.b {
				t.Errorf("Expected (%d, %d, %d), got (%d, %d, %d)", tt.r, tt.g, tt.b, r, g, b)
			}
		})
	}
}

func TestImage_AddSumsPixels(t *testing.T) {
	a := NewImage(2, 1)
	b := NewImage(2, 1)
	a.Set(0, 0, core.NewVec3(1, 2, 3))
	b.Set(0, 0, core.NewVec3(0.5, 0.5, 0.5))
	b.Set(1, 0, core.NewVec3(4, 0, 0))

	if err := a.Add(b); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if a.At(0, 0) != core.NewVec3(1.5, 2.5, 3.5) {
		t.Errorf("Expected (1.5, 2.5, 3.5), got %v", a.At(0, 0))
	}
	if a.At(1, 0) != core.NewVec3(4, 0, 0) {
		t.Errorf("Expected (4, 0, 0), got %v", a.At(1, 0))
	}
}

func TestImage_AddIsOrderIndependent(t *testing.T) {
	parts := []*Image{NewImage(3, 2), NewImage(3, 2), NewImage(3, 2)}
	for k, part := range parts {
		for i := range part.Pixels {
			part.Pixels[i] = core.NewVec3(float64(k+i), 0.1*float64(k), 1)
		}
	}

	forward := NewImage(3, 2)
	backward := NewImage(3, 2)
	for k := range parts {
		forward.Add(parts[k])
		backward.Add(parts[len(parts)-1-k])
	}

	for i := range forward.Pixels {
		if !vecClose(forward.Pixels[i], backward.Pixels[i], 1e-12) {
			t.Errorf("Pixel %d differs: %v vs %v", i, forward.Pixels[i], backward.Pixels[i])
		}
	}
}

func TestImage_AddRejectsMismatchedSize(t *testing.T) {
	if err := NewImage(2, 2).Add(NewImage(2, 3)); err == nil {
		t.Error("Expected an error for mismatched dimensions")
	}
}

func TestImage_WritePPM(t *testing.T) {
	img := NewImage(2, 2)
	img.Set(0, 0, core.NewVec3(2, 0, 0)) // two samples of red
	img.Set(1, 0, core.NewVec3(0, 2, 0))
	img.Set(0, 1, core.NewVec3(0, 0, 2))
	img.Set(1, 1, core.NewVec3(0.5, 0.5, 0.5))

	var buf bytes.Buffer
	if err := img.WritePPM(&buf, 2); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	expected := strings.Join([]string{
		"P3",
		"2 2",
		"255",
		"255 0 0",
		"0 255 0",
		"0 0 255",
		"128 128 128",
		"",
	}, "\n")
	if buf.String() != expected {
		t.Errorf("Expected:\n%s\ngot:\n%s", expected, buf.String())
	}
}

type failingWriter struct{}

var errDiskFull = errors.New("disk full")

func (failingWriter) Write(p []byte) (int, error) { return 0, errDiskFull }

func TestImage_WritePPMReturnsWriteError(t *testing.T) {
	img := NewImage(1, 1)
	if err := img.WritePPM(failingWriter{}, 1); !errors.Is(err, errDiskFull) {
		t.Errorf("Expected write error to be returned, got %v", err)
	}
}

func TestImage_ToRGBA(t *testing.T) {
	img := NewImage(2, 1)
	img.Set(0, 0, core.NewVec3(4, 0, 1))
	img.Set(1, 0, core.NewVec3(1, 1, 1))

	rgba := img.ToRGBA(4)
	if rgba.Bounds().Dx() != 2 || rgba.Bounds().Dy() != 1 {
		t.Fatalf("Expected 2x1 image, got %v", rgba.Bounds())
	}

	c := rgba.RGBAAt(0, 0)
	if c.R != 255 || c.G != 0 || c.B != 128 || c.A != 255 {
		t.Errorf("Expected (255, 0, 128, 255), got %v", c)
	}
	c = rgba.RGBAAt(1, 0)
	if c.R != 128 || c.G != 128 || c.B != 128 {
		t.Errorf("Expected (128, 128, 128), got %v", c)
	}
}

func TestImage_AverageLuminance(t *testing.T) {
	img := NewImage(2, 2)
	img.Set(0, 0, core.NewVec3(2, 0, 0))
	img.Set(1, 0, core.NewVec3(0, 2, 0))
	img.Set(0, 1, core.NewVec3(0, 0, 2))

	// (0.299 + 0.587 + 0.114 + 0) / 4
	expected := 0.25
	if got := img.AverageLuminance(2); math.Abs(got-expected) > 1e-9 {
		t.Errorf("Expected average luminance %f, got %f", expected, got)
	}
	if got := img.AverageLuminance(0); got != 0 {
		t.Errorf("Expected 0 for zero samples, got %f", got)
	}
}
