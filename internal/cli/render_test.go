package cli

import (
	"path/filepath"
	"reflect"
	"testing"

	"github.com/horizonlabs/horizon/pkg/scene"
	"github.com/horizonlabs/horizon/pkg/universe"
)

func TestParseFormats(t *testing.T) {
	tests := []struct {
		input string
		want  []string
	}{
		{"", []string{"json"}},
		{"svg", []string{"svg"}},
		{"svg,json", []string{"svg", "json"}},
		{"json,svg,dot", []string{"json", "svg", "dot"}},
	}

	for _, tt := range tests {
		got := parseFormats(tt.input)
		if !reflect.DeepEqual(got, tt.want) {
			t.Errorf("parseFormats(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestOutputPath(t *testing.T) {
	tests := []struct {
		base   string
		format string
		exact  bool
		want   string
	}{
		{"out", "svg", false, "out.svg"},
		{"out", "json", false, "out.scene.json"},
		{"out", "dot", false, "out.dot"},
		{"custom.svg", "svg", true, "custom.svg"},
	}

	for _, tt := range tests {
		got := outputPath(tt.base, tt.format, tt.exact)
		if got != tt.want {
			t.Errorf("outputPath(%q, %q, %v) = %q, want %q", tt.base, tt.format, tt.exact, got, tt.want)
		}
	}
}

func TestReadSceneOrBuild(t *testing.T) {
	dir := t.TempDir()

	u := &universe.Universe{
		Galaxies: []universe.Galaxy{{ID: "g1", Name: "Andromeda"}},
	}
	universePath := filepath.Join(dir, "universe.json")
	if err := universe.WriteFile(u, universePath); err != nil {
		t.Fatalf("write universe: %v", err)
	}

	// A universe document builds a scene on the fly.
	s, tree, err := readSceneOrBuild(universePath)
	if err != nil {
		t.Fatalf("readSceneOrBuild(universe): %v", err)
	}
	if tree == nil {
		t.Error("universe input should return the tree")
	}
	if len(s.Galaxies) != 1 || s.GalaxySpacing <= 0 {
		t.Errorf("built scene looks wrong: %+v", s)
	}

	// A scene document loads as-is.
	scenePath := filepath.Join(dir, "scene.json")
	if err := scene.WriteFile(s, scenePath); err != nil {
		t.Fatalf("write scene: %v", err)
	}
	loaded, tree, err := readSceneOrBuild(scenePath)
	if err != nil {
		t.Fatalf("readSceneOrBuild(scene): %v", err)
	}
	if tree != nil {
		t.Error("scene input should not return a tree")
	}
	if loaded.GalaxySpacing != s.GalaxySpacing {
		t.Errorf("loaded spacing = %v, want %v", loaded.GalaxySpacing, s.GalaxySpacing)
	}
}
