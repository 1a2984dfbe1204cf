package universe

import (
	"fmt"
	"net/url"
	"strings"
)

// Validate checks the content tree and returns every problem found, one
// message per entry. Validation fails soft: it never stops at the first
// error, so an editor can surface the complete list in one pass.
//
// Errors are collected bottom-up (moon → planet → solar system → galaxy →
// universe) and each message carries the path to the offending entity.
func Validate(u *Universe) []string {
	var errs []string
	seenIDs := make(map[string]string)

	for gi, g := range u.Galaxies {
		gPath := fmt.Sprintf("galaxy %s", displayRef(g.Name, gi))

		for si, sys := range g.SolarSystems {
			sPath := fmt.Sprintf("%s > system %s", gPath, displayRef(sys.Name, si))

			for pi, p := range sys.Planets {
				pPath := fmt.Sprintf("%s > planet %s", sPath, displayRef(p.Name, pi))

				for mi, m := range p.Moons {
					mPath := fmt.Sprintf("%s > moon %s", pPath, displayRef(m.Name, mi))
					errs = append(errs, validateName(mPath, m.Name)...)
					errs = append(errs, checkID(seenIDs, m.ID, mPath)...)
				}

				errs = append(errs, validateName(pPath, p.Name)...)
				errs = append(errs, validateLinks(pPath, p.Links)...)
				errs = append(errs, checkID(seenIDs, p.ID, pPath)...)
			}

			errs = append(errs, validateName(sPath, sys.Name)...)
			if sys.MainStar.Name == "" {
				errs = append(errs, sPath+": main star name is required")
			}
			errs = append(errs, checkID(seenIDs, sys.ID, sPath)...)
		}

		for si, s := range g.Stars {
			stPath := fmt.Sprintf("%s > star %s", gPath, displayRef(s.Name, si))
			errs = append(errs, validateName(stPath, s.Name)...)
			errs = append(errs, checkID(seenIDs, s.ID, stPath)...)
		}

		errs = append(errs, validateName(gPath, g.Name)...)
		errs = append(errs, checkID(seenIDs, g.ID, gPath)...)
	}

	return errs
}

// validateName flags empty or whitespace-only names.
func validateName(path, name string) []string {
	if strings.TrimSpace(name) == "" {
		return []string{path + ": name is required"}
	}
	return nil
}

// validateLinks flags malformed URLs and duplicate links on one planet.
func validateLinks(path string, links []string) []string {
	var errs []string
	seen := make(map[string]bool, len(links))

	for _, link := range links {
		if seen[link] {
			errs = append(errs, fmt.Sprintf("%s: duplicate link %q", path, link))
			continue
		}
		seen[link] = true

		parsed, err := url.Parse(link)
		if err != nil || (parsed.Scheme != "http" && parsed.Scheme != "https") || parsed.Host == "" {
			errs = append(errs, fmt.Sprintf("%s: malformed link %q", path, link))
		}
	}
	return errs
}

// checkID flags IDs reused anywhere in the tree. Empty IDs are skipped;
// Normalize backfills those.
func checkID(seen map[string]string, id, path string) []string {
	if id == "" {
		return nil
	}
	if prev, ok := seen[id]; ok {
		return []string{fmt.Sprintf("%s: id %q already used by %s", path, id, prev)}
	}
	seen[id] = path
	return nil
}

// displayRef names an entity by its own name when present, or by position
// when the name is missing (which is itself reported separately).
func displayRef(name string, index int) string {
	if strings.TrimSpace(name) != "" {
		return fmt.Sprintf("%q", name)
	}
	return fmt.Sprintf("#%d", index)
}
