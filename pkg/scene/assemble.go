package scene

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/horizonlabs/horizon/pkg/layout"
	"github.com/horizonlabs/horizon/pkg/universe"
)

// Options configures scene assembly.
type Options struct {
	// GalaxySpacing is the center-to-center galaxy distance. Zero or
	// negative values fall back to layout.DefaultGalaxySpacing.
	GalaxySpacing float64

	// ViewportRadius caps each solar system's outermost orbit. Zero
	// disables viewport fitting. When overlap avoidance conflicts with
	// the cap, the cap loses and the placement is flagged.
	ViewportRadius float64

	// Logger receives a warning when a system exceeds the viewport.
	// Nil discards.
	Logger *log.Logger
}

// Build assembles the scene for a universe. The result depends only on
// the tree's structure (IDs, order, counts), so identical trees always
// produce identical scenes.
func Build(u *universe.Universe, opts Options) Scene {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	if opts.GalaxySpacing <= 0 {
		opts.GalaxySpacing = layout.DefaultGalaxySpacing
	}

	ids := u.GalaxyIDs()
	field := layout.Galaxies(ids, opts.GalaxySpacing)
	scale := layout.GalaxyScale(len(ids))

	s := Scene{
		GalaxySpacing:  opts.GalaxySpacing,
		BoundingRadius: field.BoundingRadius,
		CameraDistance: layout.CameraDistance(field.BoundingRadius, scale.MaxRadius),
		Galaxies:       make([]GalaxyPlacement, len(u.Galaxies)),
	}

	for i, g := range u.Galaxies {
		s.Galaxies[i] = buildGalaxy(g, field.Positions[g.ID], scale, opts, logger)
	}
	return s
}

func buildGalaxy(g universe.Galaxy, pos layout.Position, scale layout.ScaleBounds, opts Options, logger *log.Logger) GalaxyPlacement {
	rings := layout.Rings(g.SystemIDs(), g.StarIDs())

	placement := GalaxyPlacement{
		ID:       g.ID,
		Name:     g.Name,
		Position: pos,
		Scale:    scale,
		Systems:  make([]SystemPlacement, len(g.SolarSystems)),
		Stars:    make([]StarPlacement, len(g.Stars)),
	}

	for i, sys := range g.SolarSystems {
		placement.Systems[i] = buildSystem(sys, rings.Positions[sys.ID], opts, logger)
	}
	for i, star := range g.Stars {
		placement.Stars[i] = StarPlacement{
			ID:       star.ID,
			Name:     star.Name,
			Position: rings.Positions[star.ID],
		}
	}
	return placement
}

func buildSystem(sys universe.SolarSystem, pos layout.Position, opts Options, logger *log.Logger) SystemPlacement {
	sizes := make([]layout.PlanetSizeInfo, len(sys.Planets))
	for i, p := range sys.Planets {
		sizes[i] = layout.PlanetSizeInfo{Index: i, Radius: layout.PlanetSize(len(p.Moons))}
	}

	spacing := layout.DynamicSpacing(sizes, 0, opts.ViewportRadius)

	exceeded := opts.ViewportRadius > 0 && !layout.FitsViewport(sizes, spacing, opts.ViewportRadius)
	if exceeded {
		// Overlap avoidance won over viewport fitting; the render layer
		// has to zoom instead.
		logger.Warn("orbit layout exceeds viewport",
			"system", sys.Name,
			"planets", len(sys.Planets),
			"viewport", opts.ViewportRadius,
			"spacing", spacing)
	}

	placement := SystemPlacement{
		ID:               sys.ID,
		Name:             sys.Name,
		Position:         pos,
		OrbitSpacing:     spacing,
		ViewportExceeded: exceeded,
		Planets:          make([]PlanetPlacement, len(sys.Planets)),
	}

	for i, p := range sys.Planets {
		placement.Planets[i] = PlanetPlacement{
			ID:          p.ID,
			Name:        p.Name,
			OrbitRadius: layout.DynamicOrbitRadius(i, spacing),
			Size:        sizes[i].Radius,
			MoonCount:   len(p.Moons),
			MoonSize:    layout.MoonSize(),
		}
	}
	return placement
}
