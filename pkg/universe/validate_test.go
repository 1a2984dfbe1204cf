package universe

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func validTree() *Universe {
	return &Universe{
		Galaxies: []Galaxy{
			{
				ID:   "g1",
				Name: "Andromeda",
				Stars: []Star{
					{ID: "st1", Name: "Wanderer"},
				},
				SolarSystems: []SolarSystem{
					{
						ID:       "s1",
						Name:     "Home",
						MainStar: Star{ID: "ms1", Name: "Sol"},
						Planets: []Planet{
							{
								ID:    "p1",
								Name:  "Terra",
								Links: []string{"https://example.com/terra"},
								Moons: []Moon{{ID: "m1", Name: "Luna"}},
							},
						},
					},
				},
			},
		},
	}
}

func TestValidateCleanTree(t *testing.T) {
	errs := Validate(validTree())
	assert.Empty(t, errs)
}

func TestValidateCollectsAllErrors(t *testing.T) {
	u := validTree()
	u.Galaxies[0].Name = ""
	u.Galaxies[0].SolarSystems[0].Planets[0].Name = ""
	u.Galaxies[0].SolarSystems[0].Planets[0].Moons[0].Name = "  "

	errs := Validate(u)

	// Fail soft: every problem shows up in one pass.
	assert.Len(t, errs, 3)
}

func TestValidateBottomUpOrder(t *testing.T) {
	u := validTree()
	u.Galaxies[0].Name = ""
	u.Galaxies[0].SolarSystems[0].Planets[0].Moons[0].Name = ""

	errs := Validate(u)
	if assert.Len(t, errs, 2) {
		// Moon errors come before the enclosing galaxy's.
		assert.Contains(t, errs[0], "moon")
		assert.Contains(t, errs[1], "galaxy")
	}
}

func TestValidatePathPrefixes(t *testing.T) {
	u := validTree()
	u.Galaxies[0].SolarSystems[0].Planets[0].Moons[0].Name = ""

	errs := Validate(u)
	if assert.Len(t, errs, 1) {
		assert.Contains(t, errs[0], `galaxy "Andromeda"`)
		assert.Contains(t, errs[0], `system "Home"`)
		assert.Contains(t, errs[0], `planet "Terra"`)
	}
}

func TestValidateLinks(t *testing.T) {
	tests := []struct {
		name  string
		links []string
		want  string // substring of the single expected error, "" for none
	}{
		{"valid https", []string{"https://example.com"}, ""},
		{"valid http", []string{"http://example.com/a"}, ""},
		{"missing scheme", []string{"example.com"}, "malformed link"},
		{"bad scheme", []string{"ftp://example.com"}, "malformed link"},
		{"no host", []string{"https://"}, "malformed link"},
		{"duplicate", []string{"https://example.com", "https://example.com"}, "duplicate link"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u := validTree()
			u.Galaxies[0].SolarSystems[0].Planets[0].Links = tt.links

			errs := Validate(u)
			if tt.want == "" {
				assert.Empty(t, errs)
				return
			}
			if assert.Len(t, errs, 1) {
				assert.Contains(t, errs[0], tt.want)
			}
		})
	}
}

func TestValidateDuplicateIDs(t *testing.T) {
	u := validTree()
	u.Galaxies[0].Stars[0].ID = "p1" // collides with the planet

	errs := Validate(u)
	if assert.Len(t, errs, 1) {
		assert.Contains(t, errs[0], `id "p1" already used`)
	}
}

func TestValidateMainStarRequired(t *testing.T) {
	u := validTree()
	u.Galaxies[0].SolarSystems[0].MainStar = Star{}

	errs := Validate(u)
	if assert.Len(t, errs, 1) {
		assert.True(t, strings.Contains(errs[0], "main star"))
	}
}

func TestValidateEmptyUniverse(t *testing.T) {
	assert.Empty(t, Validate(&Universe{}))
}
