package material

import "github.com/df07/go-path-tracer/pkg/core"

// Nothing is the placeholder material of an unresolved hit; it absorbs everything
type Nothing struct{}

// Scatter always reports absorption
func (Nothing) Scatter(rayIn core.Ray, hit HitRecord, sampler core.Sampler) (ScatterResult, bool) {
	return ScatterResult{Incoming: rayIn}, false
}
