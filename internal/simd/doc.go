// Package simd routes element-slice arithmetic to accelerated
// implementations when the element type is plain float32 or float64.
//
// float64 and float32 slices dispatch to github.com/viterin/vek and
// its vek32 variant, which select AVX2/NEON code paths at runtime;
// float64 entrywise multiplication uses the block kernels from
// github.com/cwbudde/algo-vecmath. Every function reports false for
// any other element type (including named float types) so the caller
// falls back to its generic loop.
package simd
