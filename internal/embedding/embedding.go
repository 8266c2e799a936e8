// Package embedding provides the semantic-similarity capability of the
// scoring engine: text embedding backends behind a lazily-initialized
// provider that degrades to a neutral score when no backend is available.
package embedding

import (
	"context"
	"math"
)

// Embedder turns a text block into an L2-normalized vector.
type Embedder interface {
	Embed(ctx context.Context, text string) ([]float64, error)
}

// Provider hands out the process-wide embedder, or nil when the backend is
// unavailable.
type Provider interface {
	Embedder(ctx context.Context) Embedder
}

// Factory builds the backing embedder. A LazyProvider calls it at most once
// per process; model loading or client construction may be slow.
type Factory func(ctx context.Context) (Embedder, error)

// Dot returns the dot product of two vectors, which equals their cosine
// similarity when both are unit-length. Mismatched dimensions yield 0.
func Dot(a, b []float64) float64 {
	if len(a) == 0 || len(a) != len(b) {
		return 0
	}
	var sum float64
	for i := range a {
		sum += a[i] * b[i]
	}
	return sum
}

// L2Normalize scales the vector to unit length in place and returns it.
// Zero vectors are returned unchanged.
func L2Normalize(v []float64) []float64 {
	var sq float64
	for _, x := range v {
		sq += x * x
	}
	norm := math.Sqrt(sq)
	if norm == 0 {
		return v
	}
	for i := range v {
		v[i] /= norm
	}
	return v
}
