// Package layout computes deterministic 3D positions and render sizes for
// the universe explorer scene.
//
// The package is organized by spatial scale, leaves first:
//
//   - scale.go: render-size resolvers (planet, moon, galaxy scale bounds)
//   - orbit.go: orbital spacing within a single solar system
//   - ring.go: concentric rings inside a single galaxy's local view
//   - field.go: placement of galaxies in the top-level scene
//
// Every function is a pure computation over structural input (counts,
// indices, radii). There is no hidden state and no randomness: identical
// inputs always produce identical output, which the render layer relies on
// for animation stability and memoization.
//
// Malformed numeric input (negative, NaN, infinite) is clamped to the
// nearest valid value rather than rejected. A slightly wrong layout is
// preferable to a crashed render loop, so nothing in this package panics
// or returns an error for numeric edge cases.
package layout
