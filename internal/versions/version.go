// Package versions parses and orders platform and plugin version labels.
//
// A label has the form MAJOR[.MINOR[.PATCH]][-QUALIFIER]. Missing numeric
// parts count as zero, so "6.7" and "6.7.0" are equal. A label without a
// qualifier sorts after the same numbers with any qualifier; two qualifiers
// compare as plain strings.
package versions

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	semver "github.com/Masterminds/semver/v3"
)

// Version is a platform or plugin release version. It keeps the label it was
// parsed from; the zero value means "no version".
type Version struct {
	raw    string
	parsed *semver.Version
}

// Parse reads MAJOR[.MINOR[.PATCH]][-QUALIFIER]. A "v" prefix, build metadata
// and a fourth numeric part are rejected.
func Parse(raw string) (Version, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return Version{}, fmt.Errorf("empty version")
	}
	if strings.HasPrefix(raw, "v") || strings.HasPrefix(raw, "V") {
		return Version{}, fmt.Errorf("invalid version %q: unexpected prefix", raw)
	}
	if strings.Contains(raw, "+") {
		return Version{}, fmt.Errorf("invalid version %q: build metadata is not supported", raw)
	}

	parsed, err := semver.NewVersion(raw)
	if err != nil {
		return Version{}, fmt.Errorf("invalid version %q: %w", raw, err)
	}

	return Version{raw: raw, parsed: parsed}, nil
}

// MustParse is Parse for known-good literals; it panics on error.
func MustParse(raw string) Version {
	v, err := Parse(raw)
	if err != nil {
		panic(err)
	}
	return v
}

// ParseAll parses every label and fails on the first invalid one.
func ParseAll(raws []string) ([]Version, error) {
	out := make([]Version, 0, len(raws))
	for _, raw := range raws {
		v, err := Parse(raw)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

func (v Version) IsZero() bool {
	return v.parsed == nil
}

// String returns the label as it was written.
func (v Version) String() string {
	return v.raw
}

func (v Version) Major() uint64 {
	if v.parsed == nil {
		return 0
	}
	return v.parsed.Major()
}

func (v Version) Minor() uint64 {
	if v.parsed == nil {
		return 0
	}
	return v.parsed.Minor()
}

func (v Version) Patch() uint64 {
	if v.parsed == nil {
		return 0
	}
	return v.parsed.Patch()
}

func (v Version) Qualifier() string {
	if v.parsed == nil {
		return ""
	}
	return v.parsed.Prerelease()
}

// MajorMinor is the "major.minor" key used to group releases.
func (v Version) MajorMinor() string {
	return strconv.FormatUint(v.Major(), 10) + "." + strconv.FormatUint(v.Minor(), 10)
}

func (v Version) Compare(other Version) int {
	if c := compareUint(v.Major(), other.Major()); c != 0 {
		return c
	}
	if c := compareUint(v.Minor(), other.Minor()); c != 0 {
		return c
	}
	if c := compareUint(v.Patch(), other.Patch()); c != 0 {
		return c
	}

	left, right := v.Qualifier(), other.Qualifier()
	switch {
	case left == right:
		return 0
	case left == "":
		return 1
	case right == "":
		return -1
	default:
		return strings.Compare(left, right)
	}
}

func (v Version) Equal(other Version) bool {
	return v.Compare(other) == 0
}

func (v Version) LessThan(other Version) bool {
	return v.Compare(other) < 0
}

func (v Version) GreaterThan(other Version) bool {
	return v.Compare(other) > 0
}

func compareUint(a, b uint64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func Sort(values []Version) {
	sort.SliceStable(values, func(i, j int) bool {
		return values[i].LessThan(values[j])
	})
}

func Contains(values []Version, target Version) bool {
	for _, value := range values {
		if value.Equal(target) {
			return true
		}
	}
	return false
}
