// Package mesh defines the indexed, vertex-colored triangle mesh produced by
// the Wavefront loader and consumed by placement and export code.
package mesh
