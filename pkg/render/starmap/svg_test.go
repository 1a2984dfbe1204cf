package starmap

import (
	"bytes"
	"strings"
	"testing"

	"github.com/horizonlabs/horizon/pkg/scene"
	"github.com/horizonlabs/horizon/pkg/universe"
)

func testScene() scene.Scene {
	u := &universe.Universe{
		Galaxies: []universe.Galaxy{
			{
				ID:   "g1",
				Name: "Andromeda & Friends",
				SolarSystems: []universe.SolarSystem{
					{
						ID:       "s1",
						Name:     "Home",
						MainStar: universe.Star{ID: "ms1", Name: "Sol"},
						Planets:  []universe.Planet{{ID: "p1", Name: "Terra"}},
					},
				},
				Stars: []universe.Star{{ID: "st1", Name: "Wanderer"}},
			},
		},
	}
	return scene.Build(u, scene.Options{})
}

func TestRenderSVGStructure(t *testing.T) {
	svg := RenderSVG(testScene(), Options{})

	for _, want := range []string{
		`<svg xmlns="http://www.w3.org/2000/svg"`,
		`id="galaxy-g1"`,
		`id="system-s1"`,
		"</svg>",
	} {
		if !bytes.Contains(svg, []byte(want)) {
			t.Errorf("SVG missing %q", want)
		}
	}

	// One orbit circle and one planet marker for the single planet.
	if got := strings.Count(string(svg), "stroke=\"#44507a\""); got != 1 {
		t.Errorf("expected 1 orbit circle, found %d", got)
	}
}

func TestRenderSVGEscapesNames(t *testing.T) {
	svg := string(RenderSVG(testScene(), Options{}))
	if strings.Contains(svg, "Andromeda & Friends") {
		t.Error("ampersand in galaxy name must be escaped")
	}
	if !strings.Contains(svg, "Andromeda &amp; Friends") {
		t.Error("escaped galaxy name missing from output")
	}
}

func TestRenderSVGDeterministic(t *testing.T) {
	s := testScene()
	if !bytes.Equal(RenderSVG(s, Options{}), RenderSVG(s, Options{})) {
		t.Error("identical scenes must render to identical bytes")
	}
}

func TestRenderSVGEmptyScene(t *testing.T) {
	svg := RenderSVG(scene.Scene{}, Options{})
	if !bytes.Contains(svg, []byte("<svg")) || !bytes.Contains(svg, []byte("</svg>")) {
		t.Error("empty scene should still render a valid document")
	}
}

func TestRenderSVGDimensions(t *testing.T) {
	svg := string(RenderSVG(testScene(), Options{Width: 400, Height: 300}))
	if !strings.Contains(svg, `width="400"`) || !strings.Contains(svg, `height="300"`) {
		t.Error("explicit dimensions should appear in the SVG tag")
	}
}
