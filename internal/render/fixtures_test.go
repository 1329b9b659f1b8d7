package render

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"

	"github.com/schmitthub/plugin-editions/internal/catalog"
	"github.com/schmitthub/plugin-editions/internal/editions"
	"github.com/schmitthub/plugin-editions/internal/versions"
)

func editionTemplate(key string) editions.Template {
	return editions.Template{
		Key:               key,
		Name:              key + " edition",
		TextDescription:   "Governance & <COBOL>",
		HomeURL:           "https://example.com/" + key,
		LicenseRequestURL: "https://example.com/" + key + "/license",
	}
}

func edition(key, platform string, jars ...string) editions.Edition {
	return editions.New(editionTemplate(key), versions.MustParse(platform), jars)
}

func outFs(t *testing.T) afero.Fs {
	t.Helper()
	fs := afero.NewMemMapFs()
	require.NoError(t, fs.MkdirAll("/out", 0o755))
	return fs
}

type platformSpec struct {
	version string
	date    string
	lts     bool
}

func platformCatalog(t *testing.T, specs ...platformSpec) *catalog.PlatformCatalog {
	t.Helper()
	releases := make([]catalog.PlatformRelease, 0, len(specs))
	for _, s := range specs {
		releases = append(releases, catalog.PlatformRelease{
			Version: versions.MustParse(s.version),
			Date:    s.date,
			LTS:     s.lts,
		})
	}
	c, err := catalog.NewPlatformCatalog(releases)
	require.NoError(t, err)
	return c
}
