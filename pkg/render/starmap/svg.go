// Package starmap renders a scene as a top-down 2D SVG projection: galaxy
// discs in the field, interior rings, orbit circles and planet markers.
// The projection drops the y axis, which every in-plane layout leaves at
// zero anyway.
package starmap

import (
	"bytes"
	"fmt"
	"math"

	"github.com/horizonlabs/horizon/pkg/layout"
	"github.com/horizonlabs/horizon/pkg/scene"
)

// Options configures the SVG output size.
type Options struct {
	// Width and Height are the SVG pixel dimensions. Zero values fall
	// back to the defaults.
	Width  float64
	Height float64
}

// Default SVG dimensions.
const (
	DefaultWidth  = 800.0
	DefaultHeight = 800.0
)

// margin pads the viewBox so outermost discs are not clipped.
const margin = 1.1

// RenderSVG draws the scene as a standalone SVG document. Output is
// byte-stable for identical scenes.
func RenderSVG(s scene.Scene, opts Options) []byte {
	if opts.Width <= 0 {
		opts.Width = DefaultWidth
	}
	if opts.Height <= 0 {
		opts.Height = DefaultHeight
	}

	// World extent: the field bounding radius plus the largest disc.
	extent := s.BoundingRadius
	for _, g := range s.Galaxies {
		if r := g.Position.DistanceFromOrigin() + g.Scale.MaxRadius + layout.OuterRingRadius; r > extent {
			extent = r
		}
	}
	if extent == 0 {
		extent = 1
	}
	extent *= margin

	var buf bytes.Buffer
	fmt.Fprintf(&buf,
		`<svg xmlns="http://www.w3.org/2000/svg" viewBox="%.2f %.2f %.2f %.2f" width="%.0f" height="%.0f">`+"\n",
		-extent, -extent, 2*extent, 2*extent, opts.Width, opts.Height)
	buf.WriteString(`  <rect x="-50%" y="-50%" width="100%" height="100%" fill="#05070f"/>` + "\n")

	for _, g := range s.Galaxies {
		renderGalaxy(&buf, g)
	}

	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

func renderGalaxy(buf *bytes.Buffer, g scene.GalaxyPlacement) {
	cx, cy := g.Position.X, g.Position.Z

	fmt.Fprintf(buf, "  <g id=%q>\n", "galaxy-"+g.ID)
	fmt.Fprintf(buf,
		`    <circle cx="%.3f" cy="%.3f" r="%.3f" fill="#1b2a5e" fill-opacity="0.35"/>`+"\n",
		cx, cy, g.Scale.MaxRadius)
	fmt.Fprintf(buf,
		`    <circle cx="%.3f" cy="%.3f" r="%.3f" fill="#8ea4ff" fill-opacity="0.6"/>`+"\n",
		cx, cy, g.Scale.MinRadius)
	fmt.Fprintf(buf,
		`    <text x="%.3f" y="%.3f" fill="#c8d2ff" font-size="%.2f" text-anchor="middle">%s</text>`+"\n",
		cx, cy-g.Scale.MaxRadius-1, g.Scale.MaxRadius/3, escape(g.Name))

	for _, sys := range g.Systems {
		renderSystem(buf, cx, cy, sys)
	}
	for _, star := range g.Stars {
		fmt.Fprintf(buf,
			`    <circle cx="%.3f" cy="%.3f" r="0.4" fill="#fff3b0"/>`+"\n",
			cx+star.Position.X, cy+star.Position.Z)
	}

	buf.WriteString("  </g>\n")
}

func renderSystem(buf *bytes.Buffer, gx, gy float64, sys scene.SystemPlacement) {
	cx, cy := gx+sys.Position.X, gy+sys.Position.Z

	fmt.Fprintf(buf, "    <g id=%q>\n", "system-"+sys.ID)
	fmt.Fprintf(buf, `      <circle cx="%.3f" cy="%.3f" r="0.6" fill="#ffd166"/>`+"\n", cx, cy)

	for i, p := range sys.Planets {
		fmt.Fprintf(buf,
			`      <circle cx="%.3f" cy="%.3f" r="%.3f" fill="none" stroke="#44507a" stroke-width="0.08"/>`+"\n",
			cx, cy, p.OrbitRadius)

		// Spread planets around their orbits for readability; the angle
		// carries no meaning, only the radius does.
		angle := 2 * math.Pi * float64(i) / float64(len(sys.Planets))
		px := cx + math.Cos(angle)*p.OrbitRadius
		py := cy + math.Sin(angle)*p.OrbitRadius
		fmt.Fprintf(buf,
			`      <circle cx="%.3f" cy="%.3f" r="%.3f" fill="#7fc8a9"/>`+"\n",
			px, py, p.Size)
	}

	buf.WriteString("    </g>\n")
}

// escape handles the XML special characters that can appear in names.
func escape(s string) string {
	var b bytes.Buffer
	for _, r := range s {
		switch r {
		case '&':
			b.WriteString("&amp;")
		case '<':
			b.WriteString("&lt;")
		case '>':
			b.WriteString("&gt;")
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}
