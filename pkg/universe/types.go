// Package universe defines the content tree of the explorer and the stores
// that load it.
//
// The tree is read-only input to the layout engine: Universe → Galaxy →
// SolarSystem → Planet → Moon, plus free-floating Stars per galaxy. The
// layout engine only ever consumes IDs and counts from it; validation and
// persistence live here, positions do not.
package universe

import "github.com/google/uuid"

// Universe is the root of the content tree.
type Universe struct {
	Galaxies []Galaxy `json:"galaxies" bson:"galaxies"`
}

// Galaxy groups solar systems and free-floating stars.
type Galaxy struct {
	ID           string        `json:"id" bson:"id"`
	Name         string        `json:"name" bson:"name"`
	Description  string        `json:"description,omitempty" bson:"description,omitempty"`
	Stars        []Star        `json:"stars,omitempty" bson:"stars,omitempty"`
	SolarSystems []SolarSystem `json:"solarSystems,omitempty" bson:"solar_systems,omitempty"`
}

// SolarSystem holds a central star and its planets. Planet order assigns
// orbital slots: the first planet gets the innermost orbit.
type SolarSystem struct {
	ID       string   `json:"id" bson:"id"`
	Name     string   `json:"name" bson:"name"`
	MainStar Star     `json:"mainStar" bson:"main_star"`
	Planets  []Planet `json:"planets,omitempty" bson:"planets,omitempty"`
}

// Planet is a body orbiting a solar system's main star.
type Planet struct {
	ID          string   `json:"id" bson:"id"`
	Name        string   `json:"name" bson:"name"`
	Description string   `json:"description,omitempty" bson:"description,omitempty"`
	Links       []string `json:"links,omitempty" bson:"links,omitempty"`
	Moons       []Moon   `json:"moons,omitempty" bson:"moons,omitempty"`
}

// Moon orbits a planet. Moons render at a fixed size; their count drives
// the parent planet's size.
type Moon struct {
	ID          string `json:"id" bson:"id"`
	Name        string `json:"name" bson:"name"`
	Description string `json:"description,omitempty" bson:"description,omitempty"`
}

// Star is either a system's central star or a free-floating galaxy star.
type Star struct {
	ID    string `json:"id" bson:"id"`
	Name  string `json:"name" bson:"name"`
	Color string `json:"color,omitempty" bson:"color,omitempty"`
}

// GalaxyIDs returns the galaxy IDs in document order. Document order is
// what assigns layout slots, so it is preserved everywhere.
func (u *Universe) GalaxyIDs() []string {
	ids := make([]string, len(u.Galaxies))
	for i, g := range u.Galaxies {
		ids[i] = g.ID
	}
	return ids
}

// SystemIDs returns the solar-system IDs of a galaxy in document order.
func (g *Galaxy) SystemIDs() []string {
	ids := make([]string, len(g.SolarSystems))
	for i, s := range g.SolarSystems {
		ids[i] = s.ID
	}
	return ids
}

// StarIDs returns the free-floating-star IDs of a galaxy in document order.
func (g *Galaxy) StarIDs() []string {
	ids := make([]string, len(g.Stars))
	for i, s := range g.Stars {
		ids[i] = s.ID
	}
	return ids
}

// GalaxyCount returns the number of galaxies.
func (u *Universe) GalaxyCount() int {
	return len(u.Galaxies)
}

// SystemCount returns the total number of solar systems across all galaxies.
func (u *Universe) SystemCount() int {
	n := 0
	for _, g := range u.Galaxies {
		n += len(g.SolarSystems)
	}
	return n
}

// PlanetCount returns the total number of planets across all systems.
func (u *Universe) PlanetCount() int {
	n := 0
	for _, g := range u.Galaxies {
		for _, s := range g.SolarSystems {
			n += len(s.Planets)
		}
	}
	return n
}

// Normalize fills defaults in place and returns the universe. Every entity
// ends up with an ID (a fresh UUID when absent) and a name, so downstream
// code never deals with partially-populated entities. Field-by-field
// defaulting is deliberate: no merge-over-defaults tricks.
func Normalize(u *Universe) *Universe {
	for gi := range u.Galaxies {
		g := &u.Galaxies[gi]
		g.ID = orUUID(g.ID)
		g.Name = orDefault(g.Name, "Unnamed Galaxy")

		for si := range g.Stars {
			s := &g.Stars[si]
			s.ID = orUUID(s.ID)
			s.Name = orDefault(s.Name, "Unnamed Star")
		}

		for si := range g.SolarSystems {
			sys := &g.SolarSystems[si]
			sys.ID = orUUID(sys.ID)
			sys.Name = orDefault(sys.Name, "Unnamed System")
			sys.MainStar.ID = orUUID(sys.MainStar.ID)
			sys.MainStar.Name = orDefault(sys.MainStar.Name, sys.Name)

			for pi := range sys.Planets {
				p := &sys.Planets[pi]
				p.ID = orUUID(p.ID)
				p.Name = orDefault(p.Name, "Unnamed Planet")

				for mi := range p.Moons {
					m := &p.Moons[mi]
					m.ID = orUUID(m.ID)
					m.Name = orDefault(m.Name, "Unnamed Moon")
				}
			}
		}
	}
	return u
}

func orUUID(id string) string {
	if id != "" {
		return id
	}
	return uuid.NewString()
}

func orDefault(s, def string) string {
	if s != "" {
		return s
	}
	return def
}
