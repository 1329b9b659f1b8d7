package catalog

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	perrors "github.com/schmitthub/plugin-editions/internal/errors"
	"github.com/schmitthub/plugin-editions/internal/versions"
)

func mustVersions(t *testing.T, raws ...string) []versions.Version {
	t.Helper()
	out, err := versions.ParseAll(raws)
	require.NoError(t, err)
	return out
}

func labels(releases []PlatformRelease) []string {
	out := make([]string, 0, len(releases))
	for _, r := range releases {
		out = append(out, r.Version.String())
	}
	return out
}

func platformOf(t *testing.T, raws ...string) *PlatformCatalog {
	t.Helper()
	releases := make([]PlatformRelease, 0, len(raws))
	for _, v := range mustVersions(t, raws...) {
		releases = append(releases, PlatformRelease{Version: v})
	}
	c, err := NewPlatformCatalog(releases)
	require.NoError(t, err)
	return c
}

func TestMajorReleasesPicksGreatestPatch(t *testing.T) {
	c := platformOf(t, "6.7.1", "5.6", "6.7", "7.0", "6.7.4", "5.6.7")

	assert.Equal(t, []string{"5.6.7", "6.7.4", "7.0"}, labels(c.MajorReleases()))
	assert.Equal(t, []string{"5.6", "5.6.7", "6.7", "6.7.1", "6.7.4", "7.0"}, labels(c.Releases()))
}

func TestMajorReleasesQualifierLosesToFinal(t *testing.T) {
	c := platformOf(t, "7.1-RC1", "7.1")

	major, ok := c.MajorRelease("7.1")
	require.True(t, ok)
	assert.Equal(t, "7.1", major.Version.String())

	_, ok = c.MajorRelease("9.9")
	assert.False(t, ok)
}

func TestMajorReleasesEmpty(t *testing.T) {
	c := platformOf(t)
	assert.Empty(t, c.MajorReleases())
	_, ok := c.LTSRelease()
	assert.False(t, ok)
}

func TestLTSRelease(t *testing.T) {
	c, err := NewPlatformCatalog([]PlatformRelease{
		{Version: versions.MustParse("6.7.1"), LTS: true},
		{Version: versions.MustParse("7.0")},
	})
	require.NoError(t, err)

	lts, ok := c.LTSRelease()
	require.True(t, ok)
	assert.Equal(t, "6.7.1", lts.Version.String())
	assert.True(t, c.IsLTS(versions.MustParse("6.7.1")))
	assert.False(t, c.IsLTS(versions.MustParse("7.0")))
}

func TestNewPlatformCatalogRejects(t *testing.T) {
	tests := []struct {
		name     string
		releases []PlatformRelease
		subject  string
	}{
		{
			name: "two LTS",
			releases: []PlatformRelease{
				{Version: versions.MustParse("6.7"), LTS: true},
				{Version: versions.MustParse("7.9"), LTS: true},
			},
			subject: "7.9",
		},
		{
			name: "duplicate",
			releases: []PlatformRelease{
				{Version: versions.MustParse("6.7")},
				{Version: versions.MustParse("6.7.0")},
			},
			subject: "6.7.0",
		},
		{
			name:     "zero version",
			releases: []PlatformRelease{{}},
			subject:  "platform",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewPlatformCatalog(tt.releases)
			require.Error(t, err)
			assert.True(t, errors.Is(err, perrors.ErrConfig))
			assert.Contains(t, err.Error(), tt.subject)
		})
	}
}

func TestSupportedMajorReleases(t *testing.T) {
	c := platformOf(t, "5.6", "6.7", "6.7.2", "7.0")

	assert.Equal(t, []string{"6.7.2", "7.0"}, labels(c.SupportedMajorReleases(versions.MustParse("6.6"))))
	assert.Equal(t, []string{"7.0"}, labels(c.SupportedMajorReleases(versions.MustParse("6.7.3"))))
	assert.Equal(t, []string{"5.6", "6.7.2", "7.0"}, labels(c.SupportedMajorReleases(versions.Version{})))
	assert.Empty(t, c.SupportedMajorReleases(versions.MustParse("8.0")))
}

func newPlugin(t *testing.T, key string, releases map[string][]string) *Plugin {
	t.Helper()
	out := make([]PluginRelease, 0, len(releases))
	for version, platforms := range releases {
		out = append(out, PluginRelease{
			Version:   versions.MustParse(version),
			Platforms: mustVersions(t, platforms...),
			Filename:  key + "-" + version + ".jar",
		})
	}
	p, err := NewPlugin(key, "", out)
	require.NoError(t, err)
	return p
}

func TestLatestCompatibleExactMembership(t *testing.T) {
	p := newPlugin(t, "cobol", map[string][]string{
		"1.0": {"5.6", "6.7"},
		"1.1": {"6.7", "7.0"},
	})

	release, ok := p.LatestCompatible(versions.MustParse("6.7"))
	require.True(t, ok)
	assert.Equal(t, "1.1", release.Version.String(), "higher version wins a tie")

	release, ok = p.LatestCompatible(versions.MustParse("5.6"))
	require.True(t, ok)
	assert.Equal(t, "1.0", release.Version.String())

	_, ok = p.LatestCompatible(versions.MustParse("6.8"))
	assert.False(t, ok, "6.8 lies between declared versions but is not a member")

	release, ok = p.LatestCompatible(versions.MustParse("7.0.0"))
	require.True(t, ok)
	assert.Equal(t, "cobol-1.1.jar", release.Filename)
}

func TestPluginDefaultsNameToKey(t *testing.T) {
	p := newPlugin(t, "cobol", nil)
	assert.Equal(t, "cobol", p.Name)
	assert.Empty(t, p.Releases())
	_, ok := p.LatestCompatible(versions.MustParse("6.7"))
	assert.False(t, ok)
}

func TestNewPluginRejects(t *testing.T) {
	tests := []struct {
		name     string
		key      string
		releases []PluginRelease
	}{
		{"empty key", " ", nil},
		{"duplicate release", "cobol", []PluginRelease{
			{Version: versions.MustParse("1.0"), Filename: "a.jar"},
			{Version: versions.MustParse("1.0.0"), Filename: "b.jar"},
		}},
		{"missing filename", "cobol", []PluginRelease{{Version: versions.MustParse("1.0")}}},
		{"nested filename", "cobol", []PluginRelease{{Version: versions.MustParse("1.0"), Filename: "lib/a.jar"}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewPlugin(tt.key, "", tt.releases)
			require.Error(t, err)
			assert.True(t, errors.Is(err, perrors.ErrConfig))
		})
	}
}

func TestPluginCatalogLookup(t *testing.T) {
	cobol := newPlugin(t, "cobol", map[string][]string{"1.1": {"6.7"}})
	governance := newPlugin(t, "governance", map[string][]string{"1.0": {"6.7"}})

	c, err := NewPluginCatalog(governance, cobol)
	require.NoError(t, err)

	got, err := c.Lookup("cobol")
	require.NoError(t, err)
	assert.Same(t, cobol, got)
	assert.Equal(t, []string{"cobol", "governance"}, c.Keys())
	assert.Equal(t, 2, c.Len())

	_, err = c.Lookup("wat")
	require.Error(t, err)
	assert.True(t, errors.Is(err, perrors.ErrUnknownPlugin))
	assert.Contains(t, err.Error(), `"wat"`)
}

func TestPluginCatalogRejectsDuplicateKey(t *testing.T) {
	a := newPlugin(t, "cobol", nil)
	b := newPlugin(t, "cobol", nil)

	_, err := NewPluginCatalog(a, b)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cobol")
}

func TestArtifacts(t *testing.T) {
	cobol := newPlugin(t, "cobol", map[string][]string{"1.1": {"6.7"}, "1.0": {"5.6"}})
	abap := newPlugin(t, "abap", map[string][]string{"3.0": {"6.7"}})

	c, err := NewPluginCatalog(cobol, abap)
	require.NoError(t, err)

	artifacts := c.Artifacts()
	require.Len(t, artifacts, 3)
	assert.Equal(t, "abap-3.0.jar", artifacts[0].Filename)
	assert.Equal(t, "cobol-1.0.jar", artifacts[1].Filename)
	assert.Equal(t, "cobol-1.1.jar", artifacts[2].Filename)
}
