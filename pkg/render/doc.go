// Package render groups the output sinks for an assembled scene.
//
// Two subpackages produce artifacts:
//
//   - [starmap]: a hand-built top-down SVG projection of the scene, with
//     galaxy discs, interior rings, and orbit circles.
//   - [treemap]: the content tree as a Graphviz digraph, rendered to DOT
//     text, SVG, or PNG.
//
// The scene JSON itself is the third artifact; it lives in the scene
// package since it is the canonical serialization, not a projection.
//
// [starmap]: github.com/horizonlabs/horizon/pkg/render/starmap
// [treemap]: github.com/horizonlabs/horizon/pkg/render/treemap
package render
