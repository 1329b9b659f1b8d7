package catalog

import (
	"fmt"
	"sort"

	perrors "github.com/schmitthub/plugin-editions/internal/errors"
	"github.com/schmitthub/plugin-editions/internal/versions"
)

type PlatformRelease struct {
	Version versions.Version
	// Date is the release date as YYYY-MM-DD, empty when unknown.
	Date string
	LTS  bool
}

// PlatformCatalog is an immutable, ascending set of platform releases.
// Derived views are recomputed on every call.
type PlatformCatalog struct {
	releases []PlatformRelease
}

// NewPlatformCatalog sorts releases ascending. Duplicate versions and more
// than one LTS release are configuration errors.
func NewPlatformCatalog(releases []PlatformRelease) (*PlatformCatalog, error) {
	sorted := make([]PlatformRelease, 0, len(releases))
	var lts *PlatformRelease

	for i := range releases {
		release := releases[i]
		if release.Version.IsZero() {
			return nil, perrors.NewConfigError("platform", "platform release without a version", nil)
		}
		for _, existing := range sorted {
			if existing.Version.Equal(release.Version) {
				return nil, perrors.NewConfigError(release.Version.String(),
					fmt.Sprintf("duplicate platform release %s (already declared as %s)", release.Version, existing.Version), nil)
			}
		}
		if release.LTS {
			if lts != nil {
				return nil, perrors.NewConfigError(release.Version.String(),
					fmt.Sprintf("platform releases %s and %s are both flagged LTS", lts.Version, release.Version), nil)
			}
			lts = &releases[i]
		}
		sorted = append(sorted, release)
	}

	sortReleases(sorted)
	return &PlatformCatalog{releases: sorted}, nil
}

// Releases returns every release in ascending order.
func (c *PlatformCatalog) Releases() []PlatformRelease {
	return append([]PlatformRelease(nil), c.releases...)
}

// MajorReleases returns, in ascending order, the greatest release of each
// major.minor line.
func (c *PlatformCatalog) MajorReleases() []PlatformRelease {
	byLine := make(map[string]int)
	out := make([]PlatformRelease, 0)

	for _, release := range c.releases {
		line := release.Version.MajorMinor()
		index, ok := byLine[line]
		if !ok {
			byLine[line] = len(out)
			out = append(out, release)
			continue
		}
		if release.Version.GreaterThan(out[index].Version) {
			out[index] = release
		}
	}

	sortReleases(out)
	return out
}

// MajorRelease returns the greatest release of the given major.minor line.
func (c *PlatformCatalog) MajorRelease(line string) (PlatformRelease, bool) {
	for _, release := range c.MajorReleases() {
		if release.Version.MajorMinor() == line {
			return release, true
		}
	}
	return PlatformRelease{}, false
}

func (c *PlatformCatalog) LTSRelease() (PlatformRelease, bool) {
	for _, release := range c.releases {
		if release.LTS {
			return release, true
		}
	}
	return PlatformRelease{}, false
}

// IsLTS reports whether v is the LTS release.
func (c *PlatformCatalog) IsLTS(v versions.Version) bool {
	lts, ok := c.LTSRelease()
	return ok && lts.Version.Equal(v)
}

// SupportedMajorReleases is MajorReleases without the lines below floor.
// A zero floor keeps everything.
func (c *PlatformCatalog) SupportedMajorReleases(floor versions.Version) []PlatformRelease {
	all := c.MajorReleases()
	if floor.IsZero() {
		return all
	}

	out := make([]PlatformRelease, 0, len(all))
	for _, release := range all {
		if release.Version.LessThan(floor) {
			continue
		}
		out = append(out, release)
	}
	return out
}

func sortReleases(releases []PlatformRelease) {
	sort.SliceStable(releases, func(i, j int) bool {
		return releases[i].Version.LessThan(releases[j].Version)
	})
}
