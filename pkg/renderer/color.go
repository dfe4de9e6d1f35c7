package renderer

import (
	"image/color"
	"math"

	"github.com/df07/go-path-tracer/pkg/core"
)

// intensity keeps quantized channels below 256
var intensity = core.NewInterval(0.0, 0.999)

// linearToGamma applies gamma 2.0 correction
func linearToGamma(linear float64) float64 {
	if linear > 0 {
		return math.Sqrt(linear)
	}
	return 0
}

// QuantizeColor turns an accumulated color sum into 8-bit channels:
// divide by the sample count, gamma correct, clamp to [0, 0.999] and scale by 256
func QuantizeColor(sum core.Vec3, samplesPerPixel int) (r, g, b uint8) {
	scale := 0.0
	if samplesPerPixel > 0 {
		scale = 1.0 / float64(samplesPerPixel)
	}
	c := sum.Multiply(scale)

	quantize := func(x float64) uint8 {
		return uint8(256 * intensity.Clamp(linearToGamma(x)))
	}
	return quantize(c.X), quantize(c.Y), quantize(c.Z)
}

// vec3ToColor converts an accumulated color sum to RGBA
func vec3ToColor(sum core.Vec3, samplesPerPixel int) color.RGBA {
	r, g, b := QuantizeColor(sum, samplesPerPixel)
	return color.RGBA{R: r, G: g, B: b, A: 255}
}
