// Package scene assembles the complete render-ready scene for a universe:
// galaxy placements, interior rings, planet orbits and render sizes, all
// derived from the content tree's structure by the layout package.
//
// The Scene type is the canonical serialization format consumed by the
// render layer. It is designed for round-trip fidelity: build → marshal →
// unmarshal produces an identical scene.
package scene

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/horizonlabs/horizon/pkg/layout"
)

// Scene is the top-level layout of the whole universe.
type Scene struct {
	// GalaxySpacing is the spacing the galaxy field was built with.
	GalaxySpacing float64 `json:"galaxy_spacing" bson:"galaxy_spacing"`

	// BoundingRadius is the maximum distance from origin among galaxies.
	BoundingRadius float64 `json:"bounding_radius" bson:"bounding_radius"`

	// CameraDistance is the recommended top-level camera distance.
	CameraDistance float64 `json:"camera_distance" bson:"camera_distance"`

	Galaxies []GalaxyPlacement `json:"galaxies" bson:"galaxies"`
}

// GalaxyPlacement is one galaxy's position in the field plus its interior
// layout. Interior positions are local to the galaxy's own origin.
type GalaxyPlacement struct {
	ID       string             `json:"id" bson:"id"`
	Name     string             `json:"name" bson:"name"`
	Position layout.Position    `json:"position" bson:"position"`
	Scale    layout.ScaleBounds `json:"scale" bson:"scale"`

	Systems []SystemPlacement `json:"systems,omitempty" bson:"systems,omitempty"`
	Stars   []StarPlacement   `json:"stars,omitempty" bson:"stars,omitempty"`
}

// SystemPlacement is a solar system on the galaxy's inner ring together
// with its planet orbits.
type SystemPlacement struct {
	ID       string          `json:"id" bson:"id"`
	Name     string          `json:"name" bson:"name"`
	Position layout.Position `json:"position" bson:"position"`

	// OrbitSpacing is the spacing chosen by the orbital engine for this
	// system's planets.
	OrbitSpacing float64 `json:"orbit_spacing" bson:"orbit_spacing"`

	// ViewportExceeded reports that overlap avoidance forced the
	// outermost orbit past the requested viewport radius.
	ViewportExceeded bool `json:"viewport_exceeded,omitempty" bson:"viewport_exceeded,omitempty"`

	Planets []PlanetPlacement `json:"planets,omitempty" bson:"planets,omitempty"`
}

// StarPlacement is a free-floating star on the galaxy's outer ring.
type StarPlacement struct {
	ID       string          `json:"id" bson:"id"`
	Name     string          `json:"name" bson:"name"`
	Position layout.Position `json:"position" bson:"position"`
}

// PlanetPlacement is one planet's orbit and render sizes.
type PlanetPlacement struct {
	ID          string  `json:"id" bson:"id"`
	Name        string  `json:"name" bson:"name"`
	OrbitRadius float64 `json:"orbit_radius" bson:"orbit_radius"`
	Size        float64 `json:"size" bson:"size"`
	MoonCount   int     `json:"moon_count" bson:"moon_count"`
	MoonSize    float64 `json:"moon_size" bson:"moon_size"`
}

// Marshal encodes a scene as indented JSON.
func Marshal(s Scene) ([]byte, error) {
	return json.MarshalIndent(s, "", "  ")
}

// Unmarshal decodes a scene from JSON.
func Unmarshal(data []byte) (Scene, error) {
	var s Scene
	if err := json.Unmarshal(data, &s); err != nil {
		return Scene{}, fmt.Errorf("decode scene: %w", err)
	}
	return s, nil
}

// Write encodes a scene to w.
func Write(s Scene, w io.Writer) error {
	data, err := Marshal(s)
	if err != nil {
		return err
	}
	_, err = w.Write(append(data, '\n'))
	return err
}

// WriteFile writes a scene to a JSON file at path.
func WriteFile(s Scene, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return Write(s, f)
}

// ReadFile reads a scene from a JSON file at path.
func ReadFile(path string) (Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Scene{}, fmt.Errorf("read %s: %w", path, err)
	}
	return Unmarshal(data)
}
