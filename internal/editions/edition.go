package editions

import (
	"strings"

	"github.com/schmitthub/plugin-editions/internal/versions"
)

// Edition is one template resolved against one platform major release.
// It is immutable; accessors return copies.
type Edition struct {
	key               string
	name              string
	textDescription   string
	homeURL           string
	licenseRequestURL string
	platform          versions.Version
	jars              []string
}

// New builds an edition for platform. Duplicate jar names are dropped,
// keeping the first occurrence.
func New(t Template, platform versions.Version, jars []string) Edition {
	seen := make(map[string]struct{}, len(jars))
	unique := make([]string, 0, len(jars))
	for _, jar := range jars {
		if _, dup := seen[jar]; dup {
			continue
		}
		seen[jar] = struct{}{}
		unique = append(unique, jar)
	}

	return Edition{
		key:               t.Key,
		name:              t.Name,
		textDescription:   t.TextDescription,
		homeURL:           t.HomeURL,
		licenseRequestURL: t.LicenseRequestURL,
		platform:          platform,
		jars:              unique,
	}
}

func (e Edition) Key() string               { return e.key }
func (e Edition) Name() string              { return e.name }
func (e Edition) TextDescription() string   { return e.textDescription }
func (e Edition) HomeURL() string           { return e.homeURL }
func (e Edition) LicenseRequestURL() string { return e.licenseRequestURL }

// PlatformVersion is the major release this edition targets.
func (e Edition) PlatformVersion() versions.Version { return e.platform }

func (e Edition) Jars() []string {
	return append([]string(nil), e.jars...)
}

func (e Edition) HasZip() bool {
	return len(e.jars) > 0
}

// ZipFileName is "<key>-edition-<platform>.zip", or empty when the edition
// has no jars.
func (e Edition) ZipFileName() string {
	if !e.HasZip() {
		return ""
	}
	return e.key + "-edition-" + e.platform.String() + ".zip"
}

// DownloadURL joins base and the zip file name with exactly one slash. It is
// empty when the edition has no zip. An empty base yields the bare file name.
func (e Edition) DownloadURL(base string) string {
	zip := e.ZipFileName()
	if zip == "" {
		return ""
	}
	base = strings.TrimRight(strings.TrimSpace(base), "/")
	if base == "" {
		return zip
	}
	return base + "/" + zip
}
