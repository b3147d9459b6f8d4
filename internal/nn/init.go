package nn

import "math"

// Rand is the random source used for weight initialization.
//
// *math/rand/v2.Rand satisfies it. Callers own the generator and pass it in
// explicitly, so a fixed seed gives a fixed set of initial weights.
type Rand interface {
	Float64() float64
}

// XavierBound returns the Xavier (Glorot) uniform bound sqrt(6) / sqrt(fanIn + fanOut).
func XavierBound(fanIn, fanOut int) float64 {
	return math.Sqrt(6) / math.Sqrt(float64(fanIn+fanOut))
}

// Xavier draws one weight from U(-bound, bound) with bound = XavierBound(fanIn, fanOut).
//
// This initialization helps maintain variance of activations across layers.
//
// Parameters:
//   - rng: Random source
//   - fanIn: Width of the edge's start layer
//   - fanOut: Width of the edge's end layer
func Xavier(rng Rand, fanIn, fanOut int) float64 {
	bound := XavierBound(fanIn, fanOut)
	return (rng.Float64()*2.0 - 1.0) * bound
}
